// Copyright 2017 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fwd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/edp1096/sparse"
	"github.com/vladimir-ch/iterative"

	"github.com/krismaclennan/simpeg/inp"
)

// Solver solves the assembled system A phi = q, possibly for many
// right-hand sides after a single Init
type Solver interface {
	Init(sys *System, cfg *inp.LinSolData) error
	Solve(phi, q []float64) error
	Free()
}

// solverAllocators holds all available solvers
var solverAllocators = make(map[string]func() Solver)

// NewSolver returns a solver by name
func NewSolver(name string) Solver {
	if alloc, ok := solverAllocators[name]; ok {
		return alloc()
	}
	chk.Panic("cannot find linear solver named %q", name)
	return nil
}

func init() {
	solverAllocators["bicgstab"] = func() Solver { return new(Bicgstab) }
	solverAllocators["sparselu"] = func() Solver { return new(SparseLu) }
	solverAllocators["umfpack"] = func() Solver { return new(Umfpack) }
}

// Bicgstab //////////////////////////////////////////////////////////////////////////////////////

// Bicgstab solves the system iteratively with a Jacobi (inverse diagonal)
// left preconditioner, as bicgstab(P*A, P*q)
type Bicgstab struct {
	sys *System
	cfg *inp.LinSolData
	p   []float64 // inverse of diag(A)
	w   []float64 // workspace: A*src
}

// Init prepares the preconditioner
func (o *Bicgstab) Init(sys *System, cfg *inp.LinSolData) (err error) {
	o.sys = sys
	o.cfg = cfg
	nc := len(sys.Diag)
	o.p = make([]float64, nc)
	o.w = make([]float64, nc)
	for i := 0; i < nc; i++ {
		if sys.Diag[i] == 0 {
			return chk.Err("cannot build Jacobi preconditioner: zero diagonal at cell %d", i)
		}
		o.p[i] = 1.0 / sys.Diag[i]
	}
	return
}

// Solve runs the iterative solution for one right-hand side
func (o *Bicgstab) Solve(phi, q []float64) (err error) {
	b := make([]float64, len(q))
	for i := 0; i < len(q); i++ {
		b[i] = o.p[i] * q[i]
	}
	ops := iterative.MatrixOps{
		MatVec: func(dst, src []float64) {
			la.SpMatVecMul(o.w, 1, o.sys.Am, src)
			for i := 0; i < len(dst); i++ {
				dst[i] = o.p[i] * o.w[i]
			}
		},
	}
	res, err := iterative.LinearSolve(ops, b, &iterative.BiCGSTAB{}, iterative.Settings{
		Tolerance:     o.cfg.Tol,
		MaxIterations: o.cfg.NmaxIt,
	})
	if err != nil {
		return chk.Err("bicgstab failed:\n%v", err)
	}
	if o.cfg.Verbose {
		io.Pf("bicgstab: %d iterations, residual = %g\n", res.Stats.Iterations, res.Stats.ResidualNorm)
	}
	copy(phi, res.X)
	return nil
}

// Free releases resources
func (o *Bicgstab) Free() {}

// SparseLu //////////////////////////////////////////////////////////////////////////////////////

// SparseLu solves the system directly with a sparse LU factorisation
// (Sparse 1.3). The factorisation is computed once, in Init.
type SparseLu struct {
	mat *sparse.Matrix
	n   int
}

// Init stamps and factorises the matrix
func (o *SparseLu) Init(sys *System, cfg *inp.LinSolData) (err error) {
	o.n = len(sys.Diag)
	config := &sparse.Configuration{
		Real:           true,
		Expandable:     true,
		TiesMultiplier: 5,
		PrinterWidth:   140,
	}
	o.mat, err = sparse.Create(int64(o.n), config)
	if err != nil {
		return chk.Err("cannot create sparse matrix:\n%v", err)
	}
	o.mat.Clear()
	sys.Stamp(func(i, j int, v float64) {
		o.mat.GetElement(int64(i+1), int64(j+1)).Real += v // 1-based
	})
	err = o.mat.Factor()
	if err != nil {
		return chk.Err("sparse LU factorisation failed:\n%v", err)
	}
	return
}

// Solve performs back substitution for one right-hand side
func (o *SparseLu) Solve(phi, q []float64) (err error) {
	rhs := make([]float64, o.n+1) // 1-based
	for i := 0; i < o.n; i++ {
		rhs[i+1] = q[i]
	}
	sol, err := o.mat.Solve(rhs)
	if err != nil {
		return chk.Err("sparse LU solve failed:\n%v", err)
	}
	for i := 0; i < o.n; i++ {
		phi[i] = sol[i+1]
	}
	return nil
}

// Free releases the factorisation
func (o *SparseLu) Free() {
	if o.mat != nil {
		o.mat.Destroy()
	}
}

// Umfpack ///////////////////////////////////////////////////////////////////////////////////////

// Umfpack wraps the gosl direct solvers (CGO)
type Umfpack struct {
	ls la.SparseSolver
}

// Init factorises the assembled triplet. The gosl solvers panic on
// failure instead of returning errors.
func (o *Umfpack) Init(sys *System, cfg *inp.LinSolData) (err error) {
	o.ls = la.NewSparseSolver("umfpack")
	o.ls.Init(&sys.A, &la.SpArgs{Verbose: cfg.Verbose})
	o.ls.Fact()
	return
}

// Solve performs back substitution for one right-hand side
func (o *Umfpack) Solve(phi, q []float64) (err error) {
	o.ls.Solve(phi, q, false)
	return
}

// Free releases the factorisation
func (o *Umfpack) Free() {
	if o.ls != nil {
		o.ls.Free()
	}
}
