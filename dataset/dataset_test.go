package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

func testDataset(t *testing.T) *Dataset {
	t.Helper()

	// 2x3: columns (1,0), (0,1), (1,1); labels 1, 1, 2.
	x := mat.NewDense(2, 3, []float64{
		1, 0, 1,
		0, 1, 1,
	})
	ds, err := New(x, []float64{1, 1, 2})
	require.NoError(t, err)

	return ds
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, []float64{1})
	require.ErrorIs(t, err, ErrBadShape)

	x := mat.NewDense(2, 3, nil)
	_, err = New(x, []float64{1, 2})
	require.ErrorIs(t, err, ErrBadShape)

	_, err = New(x, []float64{1, 2, 3, 4})
	require.ErrorIs(t, err, ErrBadShape)
}

func TestSample(t *testing.T) {
	ds := testDataset(t)

	d, n := ds.Dims()
	require.Equal(t, 2, d)
	require.Equal(t, 3, n)

	x, y, err := ds.Sample(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0}, x)
	require.Equal(t, 1.0, y)

	x, y, err = ds.Sample(2)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1}, x)
	require.Equal(t, 2.0, y)

	_, _, err = ds.Sample(-1)
	require.ErrorIs(t, err, ErrIndexRange)
	_, _, err = ds.Sample(3)
	require.ErrorIs(t, err, ErrIndexRange)
}

func TestSampleInto(t *testing.T) {
	ds := testDataset(t)

	dst := make([]float64, 2)
	require.NoError(t, ds.SampleInto(dst, 1))
	require.Equal(t, []float64{0, 1}, dst)

	require.ErrorIs(t, ds.SampleInto(make([]float64, 3), 1), ErrBadShape)
	require.ErrorIs(t, ds.SampleInto(dst, 5), ErrIndexRange)
}

func TestLabel(t *testing.T) {
	ds := testDataset(t)

	y, err := ds.Label(2)
	require.NoError(t, err)
	require.Equal(t, 2.0, y)

	_, err = ds.Label(3)
	require.ErrorIs(t, err, ErrIndexRange)
}

func TestFingerprint(t *testing.T) {
	ds := testDataset(t)
	other := testDataset(t)
	require.Equal(t, ds.Fingerprint(), other.Fingerprint(), "identical data must share a fingerprint")

	x := mat.NewDense(2, 3, []float64{
		1, 0, 1,
		0, 1, 1,
	})
	changed, err := New(x, []float64{1, 1, 2.0001})
	require.NoError(t, err)
	require.NotEqual(t, ds.Fingerprint(), changed.Fingerprint())
}

func TestUniformSampler(t *testing.T) {
	const n = 5
	s, err := NewUniformSampler(rand.NewSource(11), n)
	require.NoError(t, err)

	seen := make(map[int]int)
	for i := 0; i < 10000; i++ {
		k := s.NextIndex()
		require.GreaterOrEqual(t, k, 0)
		require.Less(t, k, n)
		seen[k]++
	}

	// Every index should show up over 10000 uniform draws from 5 bins.
	require.Len(t, seen, n)
	for k, count := range seen {
		require.Greater(t, count, 1000, "index %d drawn too rarely", k)
	}
}

func TestUniformSamplerSeeded(t *testing.T) {
	a, err := NewUniformSampler(rand.NewSource(99), 100)
	require.NoError(t, err)
	b, err := NewUniformSampler(rand.NewSource(99), 100)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		require.Equal(t, a.NextIndex(), b.NextIndex())
	}
}

func TestUniformSamplerValidation(t *testing.T) {
	_, err := NewUniformSampler(nil, 5)
	require.ErrorIs(t, err, ErrBadShape)

	_, err = NewUniformSampler(rand.NewSource(1), 0)
	require.ErrorIs(t, err, ErrBadShape)
}
