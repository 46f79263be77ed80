package solver

import "github.com/corey/hue/internal/domain/lexicon"

// SolveGreedy walks the tokens left to right and picks, for each, the colour
// maximizing its own score plus the transition from the colour just chosen.
// Earlier choices are never revisited, so the result is locally rather than
// globally optimal. Colours without a term score are skipped; when none has
// one the token gets NoColour, which then becomes the previous colour. The
// score is left unset.
func SolveGreedy(p *Problem) Solution {
	s := NewSolution(len(p.Tokens))
	prev := lexicon.Start
	for i := range p.Tokens {
		best := lexicon.NoData
		colour := lexicon.NoColour
		for _, c := range lexicon.Palette() {
			score := p.scoreFor(i, c)
			if !score.Valid() {
				continue
			}
			combined := score.Add(p.Transitions.Score(prev, c))
			if !best.Valid() || combined.Value() > best.Value() {
				best, colour = combined, c
			}
		}
		s.assign(i, colour)
		prev = colour
	}
	return s
}
