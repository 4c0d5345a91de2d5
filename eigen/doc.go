// SPDX-License-Identifier: MIT

// Package eigen calls the real symmetric eigensolvers of GSL
// (gsl_eigen_symm, gsl_eigen_symmv) and the eigenpair sort helpers.
//
// A workspace is allocated for one order n and only accepts n×n matrices.
// The solvers destroy the input matrix, so A is borrowed exclusively along
// with the outputs; passing the same vector as two outputs is a borrow
// conflict.
//
//	ws, _ := eigen.NewSymmv(3)
//	defer ws.Close()
//	err := ws.Symmv(a, eval, evec)
//	err = eigen.SymmvSort(eval, evec, enums.SortValAsc)
package eigen
