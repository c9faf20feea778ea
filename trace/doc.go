// Package trace records the per-step diagnostic distances of a
// training run.
//
// The driver loop appends one Euclidean distance to the reference
// parameter after every update; the resulting trace is the convergence
// record consumers inspect after the run. Summarize condenses it for
// quick reporting, and Snapshot serializes it into a compact,
// optionally compressed blob for offline plotting tools.
package trace
