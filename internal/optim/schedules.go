package optim

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned when a scheduler is constructed with
// parameters the policy cannot honor. Validation happens at construction,
// never deferred to the first Step.
var ErrInvalidConfig = errors.New("optim: invalid configuration")

// StepLR

// StepLR multiplies the learning rate by gamma every stepSize calls.
//
// The comparison is against the absolute step counter: with StepSize 2 the
// rate decays on the 2nd, 4th, 6th, ... call.
type StepLR struct {
	scheduler
	stepSize int
	gamma    float64
}

// StepLRConfig holds configuration for StepLR.
type StepLRConfig struct {
	StepSize int     // Interval between decays in steps (required, >= 1)
	Gamma    float64 // Multiplicative decay factor (default: 0.1)
}

// NewStepLR creates a StepLR schedule wrapping opt.
func NewStepLR(opt Optimizer, config StepLRConfig) (*StepLR, error) {
	if config.StepSize < 1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "step size must be >= 1, got %d", config.StepSize)
	}
	if config.Gamma == 0 {
		config.Gamma = 0.1
	}
	s := &StepLR{stepSize: config.StepSize, gamma: config.Gamma}
	s.scheduler = newScheduler(opt, s)
	return s, nil
}

func (s *StepLR) computeLR() float64 {
	if s.t%s.stepSize == 0 {
		return s.gamma * s.LR()
	}
	return s.LR()
}

// MultiStepLR

// MultiStepLR multiplies the learning rate by gamma on each call whose
// counter value is one of the configured milestones, and leaves it
// untouched otherwise. Milestones are absolute counter values: [2, 4]
// decays exactly on the 2nd and 4th call and never again.
type MultiStepLR struct {
	scheduler
	milestones []int
	gamma      float64
}

// MultiStepLRConfig holds configuration for MultiStepLR.
type MultiStepLRConfig struct {
	Milestones []int   // Step counts at which to decay (required, strictly increasing)
	Gamma      float64 // Multiplicative decay factor (default: 0.1)
}

// NewMultiStepLR creates a MultiStepLR schedule wrapping opt.
//
// Milestones must be strictly increasing; they are never reordered.
func NewMultiStepLR(opt Optimizer, config MultiStepLRConfig) (*MultiStepLR, error) {
	for i := 1; i < len(config.Milestones); i++ {
		if config.Milestones[i-1] >= config.Milestones[i] {
			return nil, errors.Wrapf(ErrInvalidConfig,
				"milestones must be strictly increasing, got %v", config.Milestones)
		}
	}
	if config.Gamma == 0 {
		config.Gamma = 0.1
	}
	milestones := make([]int, len(config.Milestones))
	copy(milestones, config.Milestones)

	m := &MultiStepLR{milestones: milestones, gamma: config.Gamma}
	m.scheduler = newScheduler(opt, m)
	return m, nil
}

func (m *MultiStepLR) computeLR() float64 {
	for _, milestone := range m.milestones {
		if m.t == milestone {
			return m.gamma * m.LR()
		}
	}
	return m.LR()
}

// ExponentialLR

// ExponentialLR decays the learning rate exponentially from the initial
// rate while the counter is within decaySteps:
//
//	lr = initialLR * decayRate^(t/decaySteps)
//
// The boundary t == decaySteps still applies the formula; past it the rate
// is frozen at whatever the last evaluation produced rather than being
// recomputed from the initial rate.
type ExponentialLR struct {
	scheduler
	decaySteps int
	decayRate  float64
}

// ExponentialLRConfig holds configuration for ExponentialLR.
type ExponentialLRConfig struct {
	DecaySteps int     // Length of the decay window in steps (required, >= 1)
	DecayRate  float64 // Total decay factor over the window (default: 1/e)
}

// NewExponentialLR creates an ExponentialLR schedule wrapping opt.
func NewExponentialLR(opt Optimizer, config ExponentialLRConfig) (*ExponentialLR, error) {
	if config.DecaySteps < 1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "decay steps must be >= 1, got %d", config.DecaySteps)
	}
	if config.DecayRate == 0 {
		config.DecayRate = 1 / math.E
	}
	e := &ExponentialLR{decaySteps: config.DecaySteps, decayRate: config.DecayRate}
	e.scheduler = newScheduler(opt, e)
	return e, nil
}

func (e *ExponentialLR) computeLR() float64 {
	if e.t <= e.decaySteps {
		return e.initialLR * math.Pow(e.decayRate, float64(e.t)/float64(e.decaySteps))
	}
	return e.LR()
}

// LinearLR

// LinearLR decays the learning rate by a fixed increment on every call
// whose counter falls in (startStep, startStep+decaySteps]. The increment
// is (finalLR - initialLR) / decaySteps, computed once at construction and
// added to the current rate, not the initial one: if something else
// mutates the rate inside the window, later values drift accordingly.
type LinearLR struct {
	scheduler
	decaySteps int
	startStep  int
	delta      float64
}

// LinearLRConfig holds configuration for LinearLR.
type LinearLRConfig struct {
	DecaySteps int     // Length of the decay window in steps (required, >= 1)
	FinalLR    float64 // Target learning rate, must be below the current rate
	StartStep  int     // Steps to wait before decaying (default: 0)
}

// NewLinearLR creates a LinearLR schedule wrapping opt.
//
// FinalLR must be strictly less than the optimizer's learning rate at
// construction time.
func NewLinearLR(opt Optimizer, config LinearLRConfig) (*LinearLR, error) {
	if config.DecaySteps < 1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "decay steps must be >= 1, got %d", config.DecaySteps)
	}
	if config.FinalLR >= opt.LR() {
		return nil, errors.Wrapf(ErrInvalidConfig,
			"final lr %v must be less than the initial lr %v", config.FinalLR, opt.LR())
	}
	l := &LinearLR{
		decaySteps: config.DecaySteps,
		startStep:  config.StartStep,
		delta:      (config.FinalLR - opt.LR()) / float64(config.DecaySteps),
	}
	l.scheduler = newScheduler(opt, l)
	return l, nil
}

func (l *LinearLR) computeLR() float64 {
	if l.t > l.startStep && l.t <= l.startStep+l.decaySteps {
		return l.LR() + l.delta
	}
	return l.LR()
}
