// Copyright 2017 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements a cell-centred tensor mesh for finite volume
// simulations on orthogonal grids
package msh

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Expansion defines a group of cells along one axis: Num cells with base
// width W, each one expanded by a factor |Fac| with respect to the previous
// one. A negative Fac reverses the group so that the largest cell comes
// first; this is the usual way to pad a core region towards the boundary.
// Fac = 0 or |Fac| = 1 gives Num uniform cells of width W.
type Expansion struct {
	W   float64 // base cell width
	Num int     // number of cells
	Fac float64 // expansion factor; negative to reverse
}

// Widths returns the cell widths of this expansion group
func (o Expansion) Widths() (w []float64) {
	if o.Num < 1 {
		chk.Panic("expansion group must have at least one cell. Num=%d is invalid", o.Num)
	}
	w = make([]float64, o.Num)
	f := math.Abs(o.Fac)
	if f == 0 {
		f = 1
	}
	cur := o.W
	for i := 0; i < o.Num; i++ {
		cur *= f
		w[i] = cur
	}
	if o.Fac < 0 {
		for i, j := 0, o.Num-1; i < j; i, j = i+1, j-1 {
			w[i], w[j] = w[j], w[i]
		}
	}
	return
}

// Mesh holds a 3D tensor mesh defined by cell widths along each axis.
// Cells are numbered with the x index changing fastest:
//   c = i + j*Nx + k*Nx*Ny
type Mesh struct {

	// essential
	Hx, Hy, Hz []float64 // cell widths along each axis
	Nx, Ny, Nz int       // number of cells along each axis
	X0, Y0, Z0 float64   // coordinates of the minimum corner

	// derived
	Nodex, Nodey, Nodez []float64 // node coordinates [n+1] per axis
	Cx, Cy, Cz          []float64 // cell centre coordinates per axis
	Vols                []float64 // cell volumes [Nx*Ny*Nz]
}

// NewMesh creates a tensor mesh from expansion groups and an origin code.
// The origin code has one character per axis:
//   "C" -- domain centred about zero
//   "0" -- domain starts at zero
//   "N" -- domain ends at zero ("negative"; e.g. underground along z)
// For instance "CCN" centres x and y and puts the top of the mesh at z=0.
func NewMesh(hx, hy, hz []Expansion, origin string) (o *Mesh) {
	if len(origin) != 3 {
		chk.Panic("origin code must have 3 characters; e.g. %q. %q is invalid", "CCN", origin)
	}
	o = new(Mesh)
	o.Hx = joinWidths(hx)
	o.Hy = joinWidths(hy)
	o.Hz = joinWidths(hz)
	o.Nx, o.Ny, o.Nz = len(o.Hx), len(o.Hy), len(o.Hz)
	o.X0 = originShift(origin[0], o.Hx)
	o.Y0 = originShift(origin[1], o.Hy)
	o.Z0 = originShift(origin[2], o.Hz)
	o.Nodex, o.Cx = axisCoords(o.X0, o.Hx)
	o.Nodey, o.Cy = axisCoords(o.Y0, o.Hy)
	o.Nodez, o.Cz = axisCoords(o.Z0, o.Hz)
	o.Vols = make([]float64, o.Nx*o.Ny*o.Nz)
	for k := 0; k < o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				o.Vols[o.CellIndex(i, j, k)] = o.Hx[i] * o.Hy[j] * o.Hz[k]
			}
		}
	}
	return
}

// NumCells returns the total number of cells
func (o *Mesh) NumCells() int {
	return o.Nx * o.Ny * o.Nz
}

// CellIndex returns the global cell index of cell (i,j,k)
func (o *Mesh) CellIndex(i, j, k int) int {
	return i + j*o.Nx + k*o.Nx*o.Ny
}

// CellCenter returns the centre coordinates of cell c
func (o *Mesh) CellCenter(c int) (x, y, z float64) {
	i := c % o.Nx
	j := (c / o.Nx) % o.Ny
	k := c / (o.Nx * o.Ny)
	return o.Cx[i], o.Cy[j], o.Cz[k]
}

// TopZ returns the z coordinate of the top of the mesh
func (o *Mesh) TopZ() float64 {
	return o.Nodez[o.Nz]
}

// ClosestCell returns the index of the cell whose centre is closest to p.
// Points outside the mesh are clamped to the boundary cells.
func (o *Mesh) ClosestCell(p []float64) int {
	i := closestIdx(o.Cx, p[0])
	j := closestIdx(o.Cy, p[1])
	k := closestIdx(o.Cz, p[2])
	return o.CellIndex(i, j, k)
}

// SnapToGrid returns the centre of the cell closest to p
func (o *Mesh) SnapToGrid(p []float64) []float64 {
	x, y, z := o.CellCenter(o.ClosestCell(p))
	return []float64{x, y, z}
}

// InterpCC computes the trilinear interpolation of a cell-centred field at
// point p. It returns up to 8 cell indices with the corresponding weights.
// The weights add up to one; points beyond the outermost cell centres are
// clamped (constant extrapolation).
func (o *Mesh) InterpCC(p []float64) (cells []int, weights []float64) {
	i0, i1, wi := bracket(o.Cx, p[0])
	j0, j1, wj := bracket(o.Cy, p[1])
	k0, k1, wk := bracket(o.Cz, p[2])
	is := [2]int{i0, i1}
	js := [2]int{j0, j1}
	ks := [2]int{k0, k1}
	wis := [2]float64{wi, 1 - wi}
	wjs := [2]float64{wj, 1 - wj}
	wks := [2]float64{wk, 1 - wk}
	for c := 0; c < 2; c++ {
		for b := 0; b < 2; b++ {
			for a := 0; a < 2; a++ {
				w := wis[a] * wjs[b] * wks[c]
				if w == 0 {
					continue
				}
				cells = append(cells, o.CellIndex(is[a], js[b], ks[c]))
				weights = append(weights, w)
			}
		}
	}
	return
}

// String returns a short description of this mesh
func (o *Mesh) String() string {
	return io.Sf("Mesh{nx=%d ny=%d nz=%d ncells=%d x=[%g,%g] y=[%g,%g] z=[%g,%g]}",
		o.Nx, o.Ny, o.Nz, o.NumCells(),
		o.Nodex[0], o.Nodex[o.Nx], o.Nodey[0], o.Nodey[o.Ny], o.Nodez[0], o.Nodez[o.Nz])
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

func joinWidths(groups []Expansion) (h []float64) {
	if len(groups) < 1 {
		chk.Panic("at least one expansion group is required per axis")
	}
	for _, g := range groups {
		h = append(h, g.Widths()...)
	}
	return
}

func originShift(code byte, h []float64) float64 {
	var tot float64
	for _, w := range h {
		tot += w
	}
	switch code {
	case 'C':
		return -tot / 2.0
	case '0':
		return 0
	case 'N':
		return -tot
	}
	chk.Panic("origin code character must be 'C', '0' or 'N'. %q is invalid", string(code))
	return 0
}

func axisCoords(x0 float64, h []float64) (nodes, centres []float64) {
	n := len(h)
	nodes = make([]float64, n+1)
	centres = make([]float64, n)
	nodes[0] = x0
	for i := 0; i < n; i++ {
		nodes[i+1] = nodes[i] + h[i]
		centres[i] = nodes[i] + h[i]/2.0
	}
	return
}

func closestIdx(c []float64, x float64) int {
	best, dmin := 0, math.Abs(x-c[0])
	for i := 1; i < len(c); i++ {
		if d := math.Abs(x - c[i]); d < dmin {
			best, dmin = i, d
		}
	}
	return best
}

// bracket finds the pair of consecutive centres enclosing x and the weight
// of the lower one. Outside the centres range the nearest cell gets weight 1.
func bracket(c []float64, x float64) (i0, i1 int, w0 float64) {
	n := len(c)
	if x <= c[0] {
		return 0, 0, 1
	}
	if x >= c[n-1] {
		return n - 1, n - 1, 1
	}
	for i := 1; i < n; i++ {
		if x <= c[i] {
			i0, i1 = i-1, i
			w0 = (c[i1] - x) / (c[i1] - c[i0])
			return
		}
	}
	return n - 1, n - 1, 1
}
