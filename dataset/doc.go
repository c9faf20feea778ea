// Package dataset provides random-access sampling over a fixed
// regression dataset.
//
// A Dataset wraps an immutable d×n feature matrix (one sample per
// column) and its length-n label vector. A Sampler chooses which
// column the training loop sees next; the default UniformSampler draws
// uniformly at random with replacement from a seedable source.
//
// Datasets also expose a 64-bit content fingerprint so experiment
// results can be tied back to the exact data they were trained on.
package dataset
