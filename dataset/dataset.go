package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrBadShape reports inconsistent or empty dataset dimensions.
	ErrBadShape = errors.New("invalid dataset shape")

	// ErrIndexRange reports a sample index outside [0, n). A sampler
	// producing such an index is broken and the run must stop.
	ErrIndexRange = errors.New("sample index out of range")
)

// Dataset wraps an immutable feature matrix X and label vector y for
// random-access sampling. X is d×n with one sample per column, so
// column k and y[k] together form the k-th labeled sample.
//
// The data is read-only after construction; a Dataset is safe for
// concurrent readers.
type Dataset struct {
	x *mat.Dense
	y []float64
	d int
	n int
}

// New creates a Dataset from a d×n feature matrix and a length-n label
// vector. Both are retained by reference and must not be mutated by
// the caller afterward.
func New(x *mat.Dense, y []float64) (*Dataset, error) {
	if x == nil {
		return nil, fmt.Errorf("%w: nil feature matrix", ErrBadShape)
	}
	d, n := x.Dims()
	if d < 1 || n < 1 {
		return nil, fmt.Errorf("%w: feature matrix is %dx%d, need at least 1x1", ErrBadShape, d, n)
	}
	if len(y) != n {
		return nil, fmt.Errorf("%w: %d labels for %d samples", ErrBadShape, len(y), n)
	}

	return &Dataset{x: x, y: y, d: d, n: n}, nil
}

// Dims returns the feature dimension d and the sample count n.
func (ds *Dataset) Dims() (d, n int) {
	return ds.d, ds.n
}

// Sample returns a copy of the k-th feature column and its label.
// Pure lookup with no side effects.
func (ds *Dataset) Sample(k int) (x []float64, y float64, err error) {
	x = make([]float64, ds.d)
	if err := ds.SampleInto(x, k); err != nil {
		return nil, 0, err
	}

	return x, ds.y[k], nil
}

// SampleInto copies the k-th feature column into dst, avoiding the
// per-step allocation of Sample in tight training loops. dst must have
// length d.
func (ds *Dataset) SampleInto(dst []float64, k int) error {
	if k < 0 || k >= ds.n {
		return fmt.Errorf("%w: index %d with %d samples", ErrIndexRange, k, ds.n)
	}
	if len(dst) != ds.d {
		return fmt.Errorf("%w: destination has %d components, feature dimension is %d", ErrBadShape, len(dst), ds.d)
	}
	mat.Col(dst, k, ds.x)

	return nil
}

// Label returns the k-th label.
func (ds *Dataset) Label(k int) (float64, error) {
	if k < 0 || k >= ds.n {
		return 0, fmt.Errorf("%w: index %d with %d samples", ErrIndexRange, k, ds.n)
	}

	return ds.y[k], nil
}

// Fingerprint returns a 64-bit xxHash of the dataset contents,
// including its dimensions. Two datasets with identical shape and
// values share a fingerprint, giving runs a stable dataset identity
// for reproducibility bookkeeping.
func (ds *Dataset) Fingerprint() uint64 {
	digest := xxhash.New()

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(ds.d))
	_, _ = digest.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(ds.n))
	_, _ = digest.Write(buf[:])

	raw := ds.x.RawMatrix()
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		for _, v := range row {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = digest.Write(buf[:])
		}
	}
	for _, v := range ds.y {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = digest.Write(buf[:])
	}

	return digest.Sum64()
}
