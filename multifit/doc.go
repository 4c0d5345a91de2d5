// SPDX-License-Identifier: MIT

// Package multifit exposes the free-standing helpers of GSL's least-squares
// fitting: the covariance of a fit from its Jacobian, the step convergence
// test, the gradient Jᵀf, and the regularization (L-curve) utilities of
// the linear solver.
//
// The iterative solvers themselves take user callbacks and are not covered.
package multifit
