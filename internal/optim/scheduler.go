package optim

import (
	"k8s.io/klog/v2"
)

// Scheduler adjusts the learning rate of a wrapped optimizer over the
// course of training. Each call to Step advances the schedule by one and
// writes the recomputed rate into the optimizer, which remains the single
// source of truth for the value.
//
// Schedulers are not safe for concurrent use.
type Scheduler interface {
	// Step advances the schedule, installs the new learning rate on the
	// wrapped optimizer and returns it.
	Step() float64

	// LR returns the wrapped optimizer's current learning rate
	// (read-through, never cached).
	LR() float64

	// T returns the number of Step calls so far.
	T() int
}

// lrPolicy is the decay formula behind a scheduler variant. It may read
// the counter, the initial rate and the optimizer's current rate, but must
// not write to the optimizer; only scheduler.Step commits the value.
type lrPolicy interface {
	computeLR() float64
}

// scheduler carries the state shared by all policy variants: the wrapped
// optimizer, the learning rate captured at construction and the step
// counter. Variants embed scheduler and install themselves as its policy.
type scheduler struct {
	opt       Optimizer
	initialLR float64
	t         int
	policy    lrPolicy
}

func newScheduler(opt Optimizer, policy lrPolicy) scheduler {
	return scheduler{opt: opt, initialLR: opt.LR(), policy: policy}
}

// Step increments the counter, recomputes the learning rate via the policy
// and writes it into the wrapped optimizer.
func (s *scheduler) Step() float64 {
	s.t++
	lr := s.policy.computeLR()
	s.opt.SetLR(lr)
	klog.V(2).InfoS("scheduler step", "optimizer", s.opt.Name(), "t", s.t, "lr", lr)
	return s.opt.LR()
}

// LR returns the wrapped optimizer's current learning rate.
func (s *scheduler) LR() float64 { return s.opt.LR() }

// T returns the number of Step calls so far.
func (s *scheduler) T() int { return s.t }

// InitialLR returns the learning rate captured at construction.
func (s *scheduler) InitialLR() float64 { return s.initialLR }
