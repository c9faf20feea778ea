// Package estimator implements the incremental proximal method for
// online least-squares regression.
//
// The method maintains a running parameter estimate θ and, for each
// streamed sample (x, y), replaces it with the exact minimizer of
//
//	g(θ) = (y - xᵀθ)² + λ‖θ - θ_prev‖²
//
// λ > 0 acts as a trust region pulling each step toward the previous
// estimate. The sub-problem is a strictly convex quadratic whose
// Hessian correction xxᵀ has rank one, so the gradient-zero condition
// reduces to a scalar solve and the whole step costs O(d):
//
//	θ ← θ + (y - xᵀθ) / (λ + xᵀx) · x
//
// # Basic Usage
//
//	est, err := estimator.New(dim, 1.0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, sample := range stream {
//	    if err := est.Update(sample.X, sample.Y); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	theta := est.Theta()
//
// DistanceTo reports the Euclidean distance to a reference parameter
// vector, which the driver loop records after each step to build a
// convergence trace.
//
// The recursion is strictly sequential: each residual depends on the
// previous step's estimate, so there is no data-parallel form of the
// update without changing the algorithm.
package estimator
