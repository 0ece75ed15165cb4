// Copyright 2017 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fwd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/krismaclennan/simpeg/msh"
)

// System holds the discrete Poisson-like operator of the DC problem:
//
//   A = Div * Msig * Grad
//
// where Div is the face divergence, Grad the cell gradient with zero
// (Neumann) boundary faces, and Msig the diagonal of face conductivities
// obtained from the inverse-averaged cell conductivities. The corner entry
// A[0,0] is pinned to 1 to remove the Neumann nullspace.
type System struct {
	Msh  *msh.Mesh    // the mesh
	Sig  []float64    // cell conductivities [ncells]
	A    la.Triplet   // assembled operator
	Am   *la.CCMatrix // compressed form of A
	Diag []float64    // diagonal of A, including the corner pin
}

// NewSystem assembles the operator for mesh m and conductivities sig
func NewSystem(m *msh.Mesh, sig []float64) (o *System) {
	nc := m.NumCells()
	if len(sig) != nc {
		chk.Panic("conductivity field must have one value per cell. len(sig)=%d ncells=%d", len(sig), nc)
	}
	o = new(System)
	o.Msh = m
	o.Sig = sig
	o.Diag = make([]float64, nc)
	nfi := (m.Nx-1)*m.Ny*m.Nz + m.Nx*(m.Ny-1)*m.Nz + m.Nx*m.Ny*(m.Nz-1)
	o.A.Init(nc, nc, 4*nfi+1)
	o.Stamp(func(i, j int, v float64) {
		if i == j {
			o.Diag[i] += v
		}
		o.A.Put(i, j, v)
	})
	o.Am = o.A.ToMatrix(nil)
	return
}

// Stamp runs the assembly, handing every matrix contribution to put.
// Contributions to the same (i,j) entry must be added together. The last
// call pins the corner entry so that the accumulated A[0,0] equals 1.
func (o *System) Stamp(put func(i, j int, v float64)) {
	m := o.Msh
	var diag0 float64
	add := func(i, j int, v float64) {
		if i == 0 && j == 0 {
			diag0 += v
		}
		put(i, j, v)
	}

	// one interior face: cells cl (lower) and cr (upper) along one axis
	// with face area ar and centre-to-centre distance d
	face := func(cl, cr int, ar, d float64) {
		ms := faceSig(o.Sig[cl], o.Sig[cr])
		k := ar * ms / d
		add(cl, cl, -k/m.Vols[cl])
		add(cl, cr, +k/m.Vols[cl])
		add(cr, cr, -k/m.Vols[cr])
		add(cr, cl, +k/m.Vols[cr])
	}

	// x faces
	for k := 0; k < m.Nz; k++ {
		for j := 0; j < m.Ny; j++ {
			for i := 1; i < m.Nx; i++ {
				face(m.CellIndex(i-1, j, k), m.CellIndex(i, j, k), m.Hy[j]*m.Hz[k], (m.Hx[i-1]+m.Hx[i])/2.0)
			}
		}
	}

	// y faces
	for k := 0; k < m.Nz; k++ {
		for j := 1; j < m.Ny; j++ {
			for i := 0; i < m.Nx; i++ {
				face(m.CellIndex(i, j-1, k), m.CellIndex(i, j, k), m.Hx[i]*m.Hz[k], (m.Hy[j-1]+m.Hy[j])/2.0)
			}
		}
	}

	// z faces
	for k := 1; k < m.Nz; k++ {
		for j := 0; j < m.Ny; j++ {
			for i := 0; i < m.Nx; i++ {
				face(m.CellIndex(i, j, k-1), m.CellIndex(i, j, k), m.Hx[i]*m.Hy[j], (m.Hz[k-1]+m.Hz[k])/2.0)
			}
		}
	}

	// nullspace pin
	put(0, 0, 1.0-diag0)
}

// AddSource scatters a point current source of the given strength at loc
// into the right-hand side q. The source is normalised by the volume of
// the closest cell and distributed with interpolation weights.
func (o *System) AddSource(q []float64, loc []float64, strength float64) {
	ind := o.Msh.ClosestCell(loc)
	s := strength / o.Msh.Vols[ind]
	cells, w := o.Msh.InterpCC(loc)
	for i, c := range cells {
		q[c] += w[i] * s
	}
}

// SampleCC interpolates the cell-centred field phi at loc
func (o *System) SampleCC(phi []float64, loc []float64) (val float64) {
	cells, w := o.Msh.InterpCC(loc)
	for i, c := range cells {
		val += w[i] * phi[c]
	}
	return
}

// faceSig returns the face conductivity from the two adjacent cell values.
// It inverts the face-to-cell-centre average of the cell resistivities,
// with the 3D averaging weight of 1/6 per adjacent cell.
func faceSig(sl, sr float64) float64 {
	w := 1.0 / 6.0
	return 1.0 / (w/sl + w/sr)
}
