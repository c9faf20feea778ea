package trace

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrOutOfRange reports an access outside the recorded trace.
var ErrOutOfRange = errors.New("trace index out of range")

// Trace is the append-only diagnostic distance trace of a training
// run: one entry per update step, in step order, each holding the
// Euclidean distance between the estimate and the reference parameter
// after that step.
type Trace struct {
	distances []float64
}

// New creates an empty trace with capacity for the given number of
// steps. A negative hint is treated as zero.
func New(capacityHint int) *Trace {
	if capacityHint < 0 {
		capacityHint = 0
	}

	return &Trace{distances: make([]float64, 0, capacityHint)}
}

// Append records the distance for the next step.
func (tr *Trace) Append(distance float64) {
	tr.distances = append(tr.distances, distance)
}

// Len returns the number of recorded steps.
func (tr *Trace) Len() int {
	return len(tr.distances)
}

// At returns the distance recorded at step i.
func (tr *Trace) At(i int) (float64, error) {
	if i < 0 || i >= len(tr.distances) {
		return 0, fmt.Errorf("%w: index %d with %d entries", ErrOutOfRange, i, len(tr.distances))
	}

	return tr.distances[i], nil
}

// Last returns the most recent distance, or 0 and false when the trace
// is empty.
func (tr *Trace) Last() (float64, bool) {
	if len(tr.distances) == 0 {
		return 0, false
	}

	return tr.distances[len(tr.distances)-1], true
}

// Values returns a copy of the recorded distances in step order.
func (tr *Trace) Values() []float64 {
	out := make([]float64, len(tr.distances))
	copy(out, tr.distances)

	return out
}

// Summary condenses a trace for convergence reporting.
type Summary struct {
	// Steps is the number of recorded entries.
	Steps int
	// First is the distance after the first step.
	First float64
	// Last is the distance after the final step.
	Last float64
	// Min is the smallest distance seen at any step.
	Min float64
	// Mean is the average distance across all steps.
	Mean float64
}

// String returns a one-line human-readable summary.
func (s Summary) String() string {
	return fmt.Sprintf("Summary{Steps: %d, First: %.4g, Last: %.4g, Min: %.4g, Mean: %.4g}",
		s.Steps, s.First, s.Last, s.Min, s.Mean)
}

// Summarize computes summary statistics over the recorded distances.
// The zero Summary is returned for an empty trace.
func (tr *Trace) Summarize() Summary {
	if len(tr.distances) == 0 {
		return Summary{}
	}

	return Summary{
		Steps: len(tr.distances),
		First: tr.distances[0],
		Last:  tr.distances[len(tr.distances)-1],
		Min:   floats.Min(tr.distances),
		Mean:  stat.Mean(tr.distances, nil),
	}
}
