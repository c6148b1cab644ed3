package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/descent-ml/descent/internal/optim"
)

func collect(sched optim.Scheduler, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = sched.Step()
	}
	return out
}

func TestStepLR_Sequence(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 1.0})
	sched, err := optim.NewStepLR(opt, optim.StepLRConfig{StepSize: 2, Gamma: 0.5})
	require.NoError(t, err)

	got := collect(sched, 4)
	want := []float64{1.0, 0.5, 0.5, 0.25}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "t=%d", i+1)
	}
	assert.Equal(t, 4, sched.T())
}

func TestStepLR_InvalidStepSize(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 1.0})
	_, err := optim.NewStepLR(opt, optim.StepLRConfig{StepSize: 0})
	require.ErrorIs(t, err, optim.ErrInvalidConfig)
}

func TestMultiStepLR_Sequence(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 1.0})
	sched, err := optim.NewMultiStepLR(opt, optim.MultiStepLRConfig{
		Milestones: []int{2, 4},
		Gamma:      0.1,
	})
	require.NoError(t, err)

	got := collect(sched, 5)
	want := []float64{1.0, 0.1, 0.1, 0.01, 0.01}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "t=%d", i+1)
	}

	// Milestones are absolute: past the last one, the rate never decays
	// again.
	for i := 0; i < 5; i++ {
		assert.InDelta(t, 0.01, sched.Step(), 1e-12)
	}
}

func TestMultiStepLR_RejectsNonIncreasing(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 1.0})

	_, err := optim.NewMultiStepLR(opt, optim.MultiStepLRConfig{Milestones: []int{4, 2}})
	require.ErrorIs(t, err, optim.ErrInvalidConfig)

	_, err = optim.NewMultiStepLR(opt, optim.MultiStepLRConfig{Milestones: []int{2, 2}})
	require.ErrorIs(t, err, optim.ErrInvalidConfig)
}

func TestMultiStepLR_EmptyMilestonesIsConstant(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 1.0})
	sched, err := optim.NewMultiStepLR(opt, optim.MultiStepLRConfig{Milestones: nil})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, sched.Step())
	}
}

func TestExponentialLR_DecayAndFreeze(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 1.0})
	sched, err := optim.NewExponentialLR(opt, optim.ExponentialLRConfig{
		DecaySteps: 2,
		DecayRate:  0.25,
	})
	require.NoError(t, err)

	// Inside the window (the boundary t == decaySteps included) the rate
	// follows initialLR * rate^(t/steps).
	assert.InDelta(t, 0.5, sched.Step(), 1e-12)  // 1 * 0.25^(1/2)
	assert.InDelta(t, 0.25, sched.Step(), 1e-12) // 1 * 0.25^(2/2)

	// Past the window the value is frozen, not recomputed.
	assert.InDelta(t, 0.25, sched.Step(), 1e-12)
	assert.InDelta(t, 0.25, sched.Step(), 1e-12)
}

func TestExponentialLR_FreezeTracksExternalMutation(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 1.0})
	sched, err := optim.NewExponentialLR(opt, optim.ExponentialLRConfig{
		DecaySteps: 1,
		DecayRate:  0.5,
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, sched.Step(), 1e-12)

	// After the decay window the policy reads the current rate back
	// rather than reapplying the formula, so an external write sticks.
	opt.SetLR(0.7)
	assert.InDelta(t, 0.7, sched.Step(), 1e-12)
}

func TestExponentialLR_DefaultRate(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 1.0})
	sched, err := optim.NewExponentialLR(opt, optim.ExponentialLRConfig{DecaySteps: 1})
	require.NoError(t, err)

	assert.InDelta(t, 1/math.E, sched.Step(), 1e-12)
}

func TestLinearLR_Sequence(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 1.0})
	sched, err := optim.NewLinearLR(opt, optim.LinearLRConfig{
		DecaySteps: 4,
		FinalLR:    0.0,
	})
	require.NoError(t, err)

	got := collect(sched, 5)
	want := []float64{0.75, 0.5, 0.25, 0.0, 0.0}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "t=%d", i+1)
	}
}

func TestLinearLR_StartStepDelaysDecay(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 1.0})
	sched, err := optim.NewLinearLR(opt, optim.LinearLRConfig{
		DecaySteps: 2,
		FinalLR:    0.5,
		StartStep:  2,
	})
	require.NoError(t, err)

	got := collect(sched, 5)
	want := []float64{1.0, 1.0, 0.75, 0.5, 0.5}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "t=%d", i+1)
	}
}

// TestLinearLR_AdditiveDrift pins the strictly additive behavior: the delta
// is applied to the current rate, so an external mutation inside the decay
// window shifts every later value instead of being corrected.
func TestLinearLR_AdditiveDrift(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 1.0})
	sched, err := optim.NewLinearLR(opt, optim.LinearLRConfig{
		DecaySteps: 4,
		FinalLR:    0.0,
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.75, sched.Step(), 1e-12)

	opt.SetLR(0.5)
	assert.InDelta(t, 0.25, sched.Step(), 1e-12)
	assert.InDelta(t, 0.0, sched.Step(), 1e-12)
	assert.InDelta(t, -0.25, sched.Step(), 1e-12)

	// Outside the window the drifted value is kept as-is.
	assert.InDelta(t, -0.25, sched.Step(), 1e-12)
}

func TestLinearLR_RejectsFinalAboveInitial(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 0.01})

	_, err := optim.NewLinearLR(opt, optim.LinearLRConfig{DecaySteps: 10, FinalLR: 0.01})
	require.ErrorIs(t, err, optim.ErrInvalidConfig)

	_, err = optim.NewLinearLR(opt, optim.LinearLRConfig{DecaySteps: 10, FinalLR: 0.1})
	require.ErrorIs(t, err, optim.ErrInvalidConfig)

	_, err = optim.NewLinearLR(opt, optim.LinearLRConfig{DecaySteps: 0, FinalLR: 0.001})
	require.ErrorIs(t, err, optim.ErrInvalidConfig)
}

// TestLR_ReadIsIdempotent verifies reading the rate never changes it.
func TestLR_ReadIsIdempotent(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 1.0})
	sched, err := optim.NewStepLR(opt, optim.StepLRConfig{StepSize: 1, Gamma: 0.5})
	require.NoError(t, err)

	sched.Step()
	for i := 0; i < 10; i++ {
		assert.Equal(t, 0.5, sched.LR())
	}
	assert.Equal(t, 1, sched.T())
}

// TestScheduler_WritesThroughToOptimizer verifies the optimizer's field is
// the single source of truth for the rate.
func TestScheduler_WritesThroughToOptimizer(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 1.0})
	sched, err := optim.NewStepLR(opt, optim.StepLRConfig{StepSize: 1, Gamma: 0.1})
	require.NoError(t, err)

	got := sched.Step()
	assert.Equal(t, got, opt.LR())
	assert.Equal(t, opt.LR(), sched.LR())
}
