// Package main provides the descent training demo CLI.
//
// It fits a one-dimensional linear model y = w*x + b to synthetic data with
// hand-computed least-squares gradients, exercising the optimizer and
// scheduler stack end to end.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/descent-ml/descent/nn"
	"github.com/descent-ml/descent/optim"
	"github.com/descent-ml/descent/tensor"
)

var (
	flagOptimizer = flag.String("optimizer", "adam", "optimizer: sgd, momentum, rmsprop or adam")
	flagLR        = flag.Float64("lr", 0.1, "initial learning rate")
	flagEpochs    = flag.Int("epochs", 200, "training epochs")
	flagSamples   = flag.Int("samples", 256, "synthetic samples to generate")
	flagSeed      = flag.Int64("seed", 1, "random seed for the synthetic data")
)

func newOptimizer(name string, lr float64) (optim.Optimizer, error) {
	switch name {
	case "sgd":
		return optim.NewSGD(optim.SGDConfig{LR: lr}), nil
	case "momentum":
		return optim.NewMomentum(optim.MomentumConfig{LR: lr, Momentum: 0.9}), nil
	case "rmsprop":
		return optim.NewRMSProp(optim.RMSPropConfig{LR: lr}), nil
	case "adam":
		return optim.NewAdam(optim.AdamConfig{LR: lr}), nil
	default:
		return nil, fmt.Errorf("unknown optimizer %q", name)
	}
}

func run() error {
	rng := rand.New(rand.NewSource(*flagSeed))

	// Synthetic data: y = 3x - 2 plus a little noise.
	n := *flagSamples
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = rng.Float64()*4 - 2
		ys[i] = 3*xs[i] - 2 + rng.NormFloat64()*0.1
	}

	w := nn.NewParameter("w", tensor.Zeros(tensor.Shape{1}))
	b := nn.NewParameter("b", tensor.Zeros(tensor.Shape{1}))
	group := nn.ParamGroup{w, b}

	opt, err := newOptimizer(*flagOptimizer, *flagLR)
	if err != nil {
		return err
	}
	sched, err := optim.NewMultiStepLR(opt, optim.MultiStepLRConfig{
		Milestones: []int{*flagEpochs / 2, *flagEpochs * 3 / 4},
		Gamma:      0.1,
	})
	if err != nil {
		return err
	}

	bar := progressbar.Default(int64(*flagEpochs), "training")
	for epoch := 1; epoch <= *flagEpochs; epoch++ {
		// Mean squared error and its gradients over the whole batch.
		var loss, dw, db float64
		wv, bv := w.Tensor().Item(), b.Tensor().Item()
		for i := range xs {
			diff := wv*xs[i] + bv - ys[i]
			loss += diff * diff
			dw += 2 * diff * xs[i]
			db += 2 * diff
		}
		inv := 1 / float64(n)
		loss *= inv

		gw, _ := tensor.FromSlice([]float64{dw * inv}, tensor.Shape{1})
		gb, _ := tensor.FromSlice([]float64{db * inv}, tensor.Shape{1})
		w.SetGrad(gw)
		b.SetGrad(gb)

		if _, err := opt.Step(group); err != nil {
			return err
		}
		group.ZeroGrad()
		sched.Step()

		klog.V(1).InfoS("epoch done", "epoch", epoch, "loss", loss, "lr", opt.LR())
		_ = bar.Add(1)
	}

	fmt.Printf("\nfitted: y = %.4f*x + %.4f (target 3x - 2)\n", w.Tensor().Item(), b.Tensor().Item())
	fmt.Printf("%s final lr: %g\n", opt.Name(), opt.LR())
	return nil
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "descent:", err)
		os.Exit(1)
	}
}
