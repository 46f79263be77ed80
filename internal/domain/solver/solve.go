package solver

import "fmt"

// Optimizer fills a solution for a problem.
type Optimizer func(p *Problem) Solution

var optimizers = map[Variant]Optimizer{
	VariantA: SolveIndependent,
	VariantB: SolveGreedy,
	VariantE: SolveDP,
	VariantF: SolveF,
}

// Solve runs the optimizer selected by p.Variant.
func Solve(p *Problem) (Solution, error) {
	opt, ok := optimizers[p.Variant]
	if !ok {
		return Solution{}, fmt.Errorf("%w: %q", ErrUnknownVariant, p.Variant.String())
	}
	if p.Variant.NeedsTransitions() && p.Transitions == nil {
		return Solution{}, fmt.Errorf("variant %s: %w", p.Variant, ErrMissingTransitions)
	}
	return opt(p), nil
}
