package nn

import (
	"github.com/descent-ml/descent/internal/tensor"
)

// ParamGrad pairs a mutable parameter with the gradient computed for it in
// the current iteration.
type ParamGrad struct {
	Param *Parameter
	Grad  *tensor.Tensor
}

// Source produces the ordered sequence of (parameter, gradient) pairs an
// optimizer consumes. The order must be stable for the duration of one
// optimizer step: the optimizer flattens all gradients into a single vector
// and relies on the same order to slice the computed step back into
// per-parameter blocks.
type Source interface {
	// ParamsAndGrads returns the current (parameter, gradient) pairs.
	// Gradients are read-only snapshots valid until the call returns to
	// the training loop.
	ParamsAndGrads() []ParamGrad
}

// ParamGroup is the simplest Source: a fixed, ordered collection of
// parameters. Each call pairs every parameter with its currently attached
// gradient; parameters whose gradient slot is empty are skipped.
type ParamGroup []*Parameter

// ParamsAndGrads implements Source.
func (g ParamGroup) ParamsAndGrads() []ParamGrad {
	pairs := make([]ParamGrad, 0, len(g))
	for _, p := range g {
		if p.Grad() == nil {
			continue
		}
		pairs = append(pairs, ParamGrad{Param: p, Grad: p.Grad()})
	}
	return pairs
}

// ZeroGrad clears the gradient of every parameter in the group.
func (g ParamGroup) ZeroGrad() {
	for _, p := range g {
		p.ZeroGrad()
	}
}
