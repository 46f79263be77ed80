package solver

import "github.com/corey/hue/internal/domain/lexicon"

// SolveDP computes the best total score over all colourings:
//
//	dp[0][c] = score(t0, c)
//	dp[i][c] = score(ti, c) + max_j(dp[i-1][j] + transition(j, c))
//
// A state is unreachable when its term score is missing or, for i > 0, when
// no predecessor state is reachable; a token is never scored on its own after
// an unreachable prefix. The answer is the best reachable state at the last
// token, or unset. Colours are not reconstructed.
//
// Runs in O(tokens × NumColours²).
func SolveDP(p *Problem) Solution {
	n := len(p.Tokens)
	s := NewSolution(n)
	if n == 0 {
		return s
	}

	prev := make([]lexicon.Score, lexicon.NumColours)
	cur := make([]lexicon.Score, lexicon.NumColours)
	for _, c := range lexicon.Palette() {
		prev[c] = p.scoreFor(0, c)
	}

	for i := 1; i < n; i++ {
		for _, c := range lexicon.Palette() {
			cur[c] = lexicon.NoData
			unigram := p.scoreFor(i, c)
			if !unigram.Valid() {
				continue
			}
			best := lexicon.NoData
			for _, j := range lexicon.Palette() {
				if !prev[j].Valid() {
					continue
				}
				best = best.Max(prev[j].Add(p.Transitions.Score(j, c)))
			}
			if best.Valid() {
				cur[c] = best.Add(unigram.Value())
			}
		}
		prev, cur = cur, prev
	}

	for _, c := range lexicon.Palette() {
		s.Score = s.Score.Max(prev[c])
	}
	return s
}
