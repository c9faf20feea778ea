package estimator

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/odakyildiz/proxfit/internal/options"
)

var (
	// ErrDimMismatch reports a vector whose length does not match the
	// estimator dimension. It indicates a caller contract violation and
	// the estimator state is guaranteed untouched.
	ErrDimMismatch = errors.New("dimension mismatch")

	// ErrBadConfig reports invalid construction parameters.
	ErrBadConfig = errors.New("invalid estimator configuration")

	// ErrInvariant reports a broken numeric invariant during an update,
	// e.g. a non-positive or non-finite normalizer. It cannot occur with
	// a valid lambda and finite inputs.
	ErrInvariant = errors.New("numeric invariant violated")
)

// Estimator maintains the running parameter estimate of the
// incremental proximal method for least-squares regression.
//
// Each Update solves the proximal sub-problem
//
//	min_θ (y - xᵀθ)² + λ‖θ - θ_prev‖²
//
// in closed form. The rank-one structure of the sub-problem collapses
// the d×d solve to a single scalar division, so every step is O(d) and
// exact, with no inner optimization loop.
//
// An Estimator is not safe for concurrent use: the recursion is
// inherently sequential because each residual depends on the previous
// step's estimate.
type Estimator struct {
	theta  []float64
	lambda float64
}

// Option configures an Estimator at construction time.
type Option = options.Option[*Estimator]

// WithInitial sets the initial parameter estimate. The slice is copied
// and must match the estimator dimension.
func WithInitial(theta []float64) Option {
	return options.New(func(e *Estimator) error {
		if len(theta) != len(e.theta) {
			return fmt.Errorf("%w: initial estimate has %d components, estimator dimension is %d",
				ErrDimMismatch, len(theta), len(e.theta))
		}
		copy(e.theta, theta)

		return nil
	})
}

// WithRandomInit initializes the estimate with components drawn
// uniformly from [-bound, bound] using the given source.
func WithRandomInit(src rand.Source, bound float64) Option {
	return options.New(func(e *Estimator) error {
		if src == nil {
			return fmt.Errorf("%w: nil random source", ErrBadConfig)
		}
		if bound <= 0 || math.IsInf(bound, 0) || math.IsNaN(bound) {
			return fmt.Errorf("%w: init bound must be a positive finite number, got %v", ErrBadConfig, bound)
		}
		rnd := rand.New(src)
		for i := range e.theta {
			e.theta[i] = bound * (2*rnd.Float64() - 1)
		}

		return nil
	})
}

// New creates an Estimator of the given dimension with regularization
// strength lambda. The estimate starts at the zero vector unless an
// initialization option is supplied.
//
// dim must be at least 1 and lambda strictly positive; lambda > 0 is
// what guarantees the per-step normalizer λ + xᵀx never reaches zero.
func New(dim int, lambda float64, opts ...Option) (*Estimator, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: dimension must be positive, got %d", ErrBadConfig, dim)
	}
	if lambda <= 0 || math.IsInf(lambda, 0) || math.IsNaN(lambda) {
		return nil, fmt.Errorf("%w: lambda must be a positive finite number, got %v", ErrBadConfig, lambda)
	}

	e := &Estimator{
		theta:  make([]float64, dim),
		lambda: lambda,
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Update performs one step of the incremental proximal recursion for
// the sample (x, y), replacing the estimate in place with the exact
// minimizer of (y - xᵀθ)² + λ‖θ - θ_prev‖².
//
// The residual is computed against the estimate from before this call;
// on any error the estimate is left unchanged.
func (e *Estimator) Update(x []float64, y float64) error {
	if len(x) != len(e.theta) {
		return fmt.Errorf("%w: sample has %d components, estimator dimension is %d",
			ErrDimMismatch, len(x), len(e.theta))
	}

	r := y - floats.Dot(x, e.theta)
	s := e.lambda + floats.Dot(x, x)
	if !(s > 0) || math.IsInf(s, 0) || math.IsNaN(s) {
		return fmt.Errorf("%w: normalizer λ+xᵀx = %v", ErrInvariant, s)
	}

	floats.AddScaled(e.theta, r/s, x)

	return nil
}

// DistanceTo returns the Euclidean distance between the current
// estimate and ref. Pure read, used for convergence diagnostics; it
// never feeds back into the update.
func (e *Estimator) DistanceTo(ref []float64) (float64, error) {
	if len(ref) != len(e.theta) {
		return 0, fmt.Errorf("%w: reference has %d components, estimator dimension is %d",
			ErrDimMismatch, len(ref), len(e.theta))
	}

	return floats.Distance(ref, e.theta, 2), nil
}

// Theta returns a copy of the current parameter estimate.
func (e *Estimator) Theta() []float64 {
	out := make([]float64, len(e.theta))
	copy(out, e.theta)

	return out
}

// Dim returns the fixed dimension of the parameter vector.
func (e *Estimator) Dim() int {
	return len(e.theta)
}

// Lambda returns the regularization strength.
func (e *Estimator) Lambda() float64 {
	return e.lambda
}
