// Package proxfit trains linear least-squares models online with the
// incremental proximal method.
//
// Samples are drawn uniformly at random with replacement from a fixed
// dataset; each one drives a closed-form proximal update of the
// running parameter estimate. With a reference parameter supplied, the
// run records a per-step convergence trace.
//
// # Basic Usage
//
// Fitting against an existing dataset:
//
//	ds, _ := dataset.New(x, y) // x is d×n, one sample per column
//	est, _ := estimator.New(d, 1.0)
//	sampler, _ := dataset.NewUniformSampler(rand.NewSource(seed), n)
//
//	result, err := proxfit.Fit(ds, est, sampler, 10000,
//	    proxfit.WithReference(trueTheta))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Trace.Summarize())
//
// One-call synthetic experiments:
//
//	result, trueTheta, err := proxfit.FitSynthetic(synthetic.DefaultConfig(), 1.0, 10000, seed)
//
// The subpackages hold the moving parts: estimator implements the
// update recursion, dataset the sampling boundary, synthetic the data
// generation collaborator, and trace the diagnostics record.
package proxfit

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/odakyildiz/proxfit/dataset"
	"github.com/odakyildiz/proxfit/estimator"
	"github.com/odakyildiz/proxfit/internal/options"
	"github.com/odakyildiz/proxfit/synthetic"
	"github.com/odakyildiz/proxfit/trace"
)

// ErrBadRun reports invalid driver-loop arguments.
var ErrBadRun = errors.New("invalid fit configuration")

// Result holds the outcome of a training run.
type Result struct {
	// Theta is the final parameter estimate.
	Theta []float64
	// Trace is the per-step distance trace, nil when no reference
	// parameter was supplied.
	Trace *trace.Trace
	// Fingerprint identifies the dataset the run was trained on.
	Fingerprint uint64
	// Steps is the number of update steps performed.
	Steps int
}

type fitConfig struct {
	reference []float64
	trace     *trace.Trace
}

// FitOption configures a training run.
type FitOption = options.Option[*fitConfig]

// WithReference supplies the reference (ground-truth) parameter used
// for diagnostic distance tracking. The slice is copied. The reference
// never influences the update itself.
func WithReference(theta []float64) FitOption {
	return options.New(func(cfg *fitConfig) error {
		if len(theta) == 0 {
			return fmt.Errorf("%w: empty reference parameter", ErrBadRun)
		}
		cfg.reference = make([]float64, len(theta))
		copy(cfg.reference, theta)

		return nil
	})
}

// WithTrace appends distances into a caller-owned trace instead of a
// freshly allocated one. Only meaningful together with WithReference.
func WithTrace(tr *trace.Trace) FitOption {
	return options.New(func(cfg *fitConfig) error {
		if tr == nil {
			return fmt.Errorf("%w: nil trace", ErrBadRun)
		}
		cfg.trace = tr

		return nil
	})
}

// Fit runs the incremental proximal training loop for the given number
// of steps: each step draws a sample index, applies the estimator
// update, and, when a reference was supplied, appends the distance to
// the reference to the trace.
//
// steps is independent of the dataset size; any positive value is
// valid. Errors from a broken sampler or a shape mismatch abort the
// run immediately.
func Fit(ds *dataset.Dataset, est *estimator.Estimator, sampler dataset.Sampler, steps int, opts ...FitOption) (*Result, error) {
	if ds == nil || est == nil || sampler == nil {
		return nil, fmt.Errorf("%w: dataset, estimator and sampler are all required", ErrBadRun)
	}
	if steps <= 0 {
		return nil, fmt.Errorf("%w: step count must be positive, got %d", ErrBadRun, steps)
	}

	d, _ := ds.Dims()
	if d != est.Dim() {
		return nil, fmt.Errorf("%w: dataset dimension %d, estimator dimension %d", ErrBadRun, d, est.Dim())
	}

	cfg := &fitConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.reference != nil && len(cfg.reference) != d {
		return nil, fmt.Errorf("%w: reference has %d components, dimension is %d", ErrBadRun, len(cfg.reference), d)
	}

	var tr *trace.Trace
	if cfg.reference != nil {
		tr = cfg.trace
		if tr == nil {
			tr = trace.New(steps)
		}
	}

	x := make([]float64, d)
	for t := 0; t < steps; t++ {
		k := sampler.NextIndex()
		if err := ds.SampleInto(x, k); err != nil {
			return nil, fmt.Errorf("step %d: %w", t, err)
		}
		y, err := ds.Label(k)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", t, err)
		}

		if err := est.Update(x, y); err != nil {
			return nil, fmt.Errorf("step %d: %w", t, err)
		}

		if tr != nil {
			dist, err := est.DistanceTo(cfg.reference)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", t, err)
			}
			tr.Append(dist)
		}
	}

	return &Result{
		Theta:       est.Theta(),
		Trace:       tr,
		Fingerprint: ds.Fingerprint(),
		Steps:       steps,
	}, nil
}

// FitSynthetic generates a synthetic dataset, trains a fresh estimator
// on it, and tracks convergence against the generated ground truth.
// The single seed derives the generation, initialization and sampling
// streams, so equal inputs reproduce the run exactly.
//
// Returns the training result and the ground-truth parameter vector.
func FitSynthetic(cfg synthetic.Config, lambda float64, steps int, seed uint64) (*Result, []float64, error) {
	ds, trueTheta, err := synthetic.Generate(cfg, rand.NewSource(seed))
	if err != nil {
		return nil, nil, err
	}

	est, err := estimator.New(cfg.Dim, lambda,
		estimator.WithRandomInit(rand.NewSource(seed+1), cfg.CoefBound))
	if err != nil {
		return nil, nil, err
	}

	_, n := ds.Dims()
	sampler, err := dataset.NewUniformSampler(rand.NewSource(seed+2), n)
	if err != nil {
		return nil, nil, err
	}

	result, err := Fit(ds, est, sampler, steps, WithReference(trueTheta))
	if err != nil {
		return nil, nil, err
	}

	return result, trueTheta, nil
}
