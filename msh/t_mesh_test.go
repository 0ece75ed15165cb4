// Copyright 2017 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_expansion01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("expansion01. cell width groups")

	// uniform group
	w := Expansion{W: 5, Num: 3, Fac: 0}.Widths()
	chk.Array(tst, "uniform", 1e-15, w, []float64{5, 5, 5})

	// expanding group
	w = Expansion{W: 2, Num: 3, Fac: 1.5}.Widths()
	chk.Array(tst, "expanding", 1e-15, w, []float64{3, 4.5, 6.75})

	// reversed group (padding before the core)
	w = Expansion{W: 2, Num: 3, Fac: -1.5}.Widths()
	chk.Array(tst, "reversed", 1e-15, w, []float64{6.75, 4.5, 3})
}

func Test_mesh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh01. tensor mesh geometry")

	m := NewMesh(
		[]Expansion{{5, 2, -2}, {5, 3, 0}, {5, 2, 2}},
		[]Expansion{{10, 4, 0}},
		[]Expansion{{10, 2, -2}, {10, 2, 0}},
		"CCN",
	)
	io.Pforan("%v\n", m)

	// widths: 5*2^2, 5*2 reversed => 20, 10 | 5 5 5 | 10 20
	chk.Array(tst, "Hx", 1e-15, m.Hx, []float64{20, 10, 5, 5, 5, 10, 20})
	chk.IntAssert(m.Nx, 7)
	chk.IntAssert(m.Ny, 4)
	chk.IntAssert(m.Nz, 4)
	chk.IntAssert(m.NumCells(), 7*4*4)

	// origin: x centred, y centred, z ends at zero
	chk.Float64(tst, "X0", 1e-15, m.X0, -37.5)
	chk.Float64(tst, "Y0", 1e-15, m.Y0, -20)
	chk.Float64(tst, "Z0", 1e-15, m.Z0, -80)
	chk.Float64(tst, "TopZ", 1e-15, m.TopZ(), 0)

	// nodes and centres
	chk.Array(tst, "Nodex", 1e-15, m.Nodex, []float64{-37.5, -17.5, -7.5, -2.5, 2.5, 7.5, 17.5, 37.5})
	chk.Array(tst, "Cy", 1e-15, m.Cy, []float64{-15, -5, 5, 15})
	chk.Array(tst, "Cz", 1e-15, m.Cz, []float64{-60, -30, -15, -5})

	// volumes
	chk.Float64(tst, "vol(0,0,0)", 1e-15, m.Vols[m.CellIndex(0, 0, 0)], 20*10*40)
	chk.Float64(tst, "vol(2,1,3)", 1e-15, m.Vols[m.CellIndex(2, 1, 3)], 5*10*10)
}

func Test_mesh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh02. closest cells and interpolation")

	m := NewMesh(
		[]Expansion{{10, 6, 0}},
		[]Expansion{{10, 4, 0}},
		[]Expansion{{10, 4, 0}},
		"CCN",
	)

	// closest cell and snapping
	c := m.ClosestCell([]float64{-24, 14, -4})
	x, y, z := m.CellCenter(c)
	chk.Float64(tst, "snap x", 1e-15, x, -25)
	chk.Float64(tst, "snap y", 1e-15, y, 15)
	chk.Float64(tst, "snap z", 1e-15, z, -5)

	// points outside are clamped
	c = m.ClosestCell([]float64{-1000, 1000, 10})
	x, y, z = m.CellCenter(c)
	chk.Float64(tst, "clamp x", 1e-15, x, -25)
	chk.Float64(tst, "clamp y", 1e-15, y, 15)
	chk.Float64(tst, "clamp z", 1e-15, z, -5)

	// interpolation at a cell centre hits one cell with weight one
	cells, w := m.InterpCC([]float64{-25, 15, -5})
	chk.IntAssert(len(cells), 1)
	chk.Float64(tst, "w single", 1e-15, w[0], 1)
	chk.IntAssert(cells[0], m.ClosestCell([]float64{-25, 15, -5}))

	// halfway between two centres along x: two cells, half weight each
	cells, w = m.InterpCC([]float64{-20, 15, -5})
	chk.IntAssert(len(cells), 2)
	chk.Float64(tst, "w half A", 1e-15, w[0], 0.5)
	chk.Float64(tst, "w half B", 1e-15, w[1], 0.5)

	// weights always add up to one
	pts := [][]float64{{-24, 13, -6}, {0, 0, -33}, {29, -19, -39}, {-300, 0, 5}}
	for _, p := range pts {
		_, w = m.InterpCC(p)
		sum := 0.0
		for _, v := range w {
			sum += v
		}
		chk.Float64(tst, io.Sf("sum(w) @ %v", p), 1e-14, sum, 1)
	}
}
