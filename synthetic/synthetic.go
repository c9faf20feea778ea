// Package synthetic generates labeled regression datasets with a known
// ground-truth parameter vector.
//
// Features are drawn from a standard Gaussian and labels are the true
// linear response plus Gaussian noise, which makes the ground truth an
// exact convergence reference for training diagnostics.
package synthetic

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/odakyildiz/proxfit/dataset"
)

// ErrBadConfig reports invalid generation parameters.
var ErrBadConfig = errors.New("invalid synthetic config")

// Config describes the dataset to generate.
type Config struct {
	// Dim is the feature dimension d.
	Dim int
	// Samples is the sample count n.
	Samples int
	// NoiseSigma is the standard deviation of the Gaussian label noise.
	// Zero produces noise-free labels.
	NoiseSigma float64
	// CoefBound bounds the ground-truth coefficients, drawn uniformly
	// from [-CoefBound, CoefBound].
	CoefBound float64
}

// DefaultConfig returns a config suitable for convergence experiments:
// a modest dimension, enough samples for one pass to converge, and
// mild label noise.
func DefaultConfig() Config {
	return Config{
		Dim:        10,
		Samples:    10000,
		NoiseSigma: 0.1,
		CoefBound:  2.0,
	}
}

func (cfg Config) validate() error {
	if cfg.Dim < 1 {
		return fmt.Errorf("%w: dimension must be positive, got %d", ErrBadConfig, cfg.Dim)
	}
	if cfg.Samples < 1 {
		return fmt.Errorf("%w: sample count must be positive, got %d", ErrBadConfig, cfg.Samples)
	}
	if cfg.NoiseSigma < 0 || math.IsInf(cfg.NoiseSigma, 0) || math.IsNaN(cfg.NoiseSigma) {
		return fmt.Errorf("%w: noise sigma must be finite and non-negative, got %v", ErrBadConfig, cfg.NoiseSigma)
	}
	if cfg.CoefBound <= 0 || math.IsInf(cfg.CoefBound, 0) || math.IsNaN(cfg.CoefBound) {
		return fmt.Errorf("%w: coefficient bound must be a positive finite number, got %v", ErrBadConfig, cfg.CoefBound)
	}

	return nil
}

// Generate builds a dataset per cfg using the given randomness source
// and returns it together with the ground-truth parameter vector.
//
// Each feature column is drawn i.i.d. from N(0, I_d) and each label
// from N(xᵀθ*, NoiseSigma²).
func Generate(cfg Config, src rand.Source) (*dataset.Dataset, []float64, error) {
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}
	if src == nil {
		return nil, nil, fmt.Errorf("%w: nil random source", ErrBadConfig)
	}

	rnd := rand.New(src)
	feature := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	trueTheta := make([]float64, cfg.Dim)
	for i := range trueTheta {
		trueTheta[i] = cfg.CoefBound * (2*rnd.Float64() - 1)
	}

	x := mat.NewDense(cfg.Dim, cfg.Samples, nil)
	y := make([]float64, cfg.Samples)
	col := make([]float64, cfg.Dim)

	var noise distuv.Normal
	if cfg.NoiseSigma > 0 {
		noise = distuv.Normal{Mu: 0, Sigma: cfg.NoiseSigma, Src: src}
	}

	for k := 0; k < cfg.Samples; k++ {
		response := 0.0
		for i := 0; i < cfg.Dim; i++ {
			col[i] = feature.Rand()
			response += col[i] * trueTheta[i]
		}
		x.SetCol(k, col)

		if cfg.NoiseSigma > 0 {
			response += noise.Rand()
		}
		y[k] = response
	}

	ds, err := dataset.New(x, y)
	if err != nil {
		return nil, nil, err
	}

	return ds, trueTheta, nil
}
