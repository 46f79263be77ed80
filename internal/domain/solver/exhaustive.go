package solver

import (
	"errors"
	"fmt"

	"github.com/corey/hue/internal/domain/lexicon"
)

// MaxExhaustiveTokens bounds SolveExhaustive: NumColours^10 is about a
// million colourings.
const MaxExhaustiveTokens = 10

// ErrTooManyTokens is returned by SolveExhaustive above MaxExhaustiveTokens.
var ErrTooManyTokens = errors.New("too many tokens for exhaustive search")

// SolveExhaustive tries every colouring that uses only scored term/colour
// pairs and returns the best one with its score. The total is the sum of term
// scores plus the transitions between adjacent tokens; the first token has no
// incoming transition. Ties keep the lexicographically smallest colouring. If
// no colouring is feasible the solution is unset.
func SolveExhaustive(p *Problem) (Solution, error) {
	n := len(p.Tokens)
	if n > MaxExhaustiveTokens {
		return Solution{}, fmt.Errorf("%w: %d > %d", ErrTooManyTokens, n, MaxExhaustiveTokens)
	}
	best := NewSolution(n)
	if n == 0 {
		return best, nil
	}

	// Per-token allowed colours, so the odometer never visits infeasible
	// digits.
	allowed := make([][]lexicon.Colour, n)
	for i := range p.Tokens {
		for _, c := range lexicon.Palette() {
			if p.scoreFor(i, c).Valid() {
				allowed[i] = append(allowed[i], c)
			}
		}
		if len(allowed[i]) == 0 {
			return best, nil
		}
	}

	digits := make([]int, n)
	colours := make([]lexicon.Colour, n)
	for {
		for i, d := range digits {
			colours[i] = allowed[i][d]
		}
		total := p.total(colours)
		if !best.Score.Valid() || total > best.Score.Value() {
			best.Score = lexicon.Some(total)
			for i, c := range colours {
				best.assign(i, c)
			}
		}

		// Increment with the last token least significant.
		i := n - 1
		for ; i >= 0; i-- {
			digits[i]++
			if digits[i] < len(allowed[i]) {
				break
			}
			digits[i] = 0
		}
		if i < 0 {
			return best, nil
		}
	}
}

// total scores a feasible colouring.
func (p *Problem) total(colours []lexicon.Colour) int {
	sum := 0
	for i, c := range colours {
		sum += p.scoreFor(i, c).Value()
		if i > 0 {
			sum += p.Transitions.Score(colours[i-1], c)
		}
	}
	return sum
}
