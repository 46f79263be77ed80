package solver

import "github.com/corey/hue/internal/domain/lexicon"

// SolveIndependent gives each token its best-scoring colour, ignoring its
// neighbours. The first maximum in palette order wins; a token with no scored
// colour gets NoColour. The score is left unset.
func SolveIndependent(p *Problem) Solution {
	s := NewSolution(len(p.Tokens))
	for i := range p.Tokens {
		best := lexicon.NoData
		colour := lexicon.NoColour
		for _, c := range lexicon.Palette() {
			score := p.scoreFor(i, c)
			if !score.Valid() {
				continue
			}
			if !best.Valid() || score.Value() > best.Value() {
				best, colour = score, c
			}
		}
		s.assign(i, colour)
	}
	return s
}
