// Copyright 2017 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/krismaclennan/simpeg/inp"
	"github.com/krismaclennan/simpeg/msh"
	"github.com/krismaclennan/simpeg/survey"
)

// PlotModel draws a vertical slice of log10(conductivity) through the
// middle of the mesh (the plane of the sphere centres), with the sphere
// outlines and the first transmitter/receiver locations for reference
func PlotModel(sim *inp.Simulation, m *msh.Mesh, sig []float64, srv *survey.Survey) {

	// slice at the middle y index
	j := m.Ny / 2
	X := utl.Alloc(m.Nz, m.Nx)
	Y := utl.Alloc(m.Nz, m.Nx)
	Z := utl.Alloc(m.Nz, m.Nx)
	for k := 0; k < m.Nz; k++ {
		for i := 0; i < m.Nx; i++ {
			X[k][i] = m.Cx[i]
			Y[k][i] = m.Cz[k]
			Z[k][i] = math.Log10(sig[m.CellIndex(i, j, k)])
		}
	}
	plt.ContourF(X, Y, Z, nil)

	// sphere outlines
	for _, sph := range sim.Mdl.Spheres {
		plt.Circle(sph.C[0], sph.C[2], sph.R, &plt.A{Ec: "white", Fc: "none", Lw: 3})
	}

	// first transmitter and receivers
	if len(srv.Srcs) > 0 {
		src := srv.Srcs[0]
		plt.PlotOne(src.A[0], src.A[2], &plt.A{C: "g", M: "v", Ms: 8})
		for _, rx := range src.Rx {
			plt.PlotOne(rx.M[0], rx.M[2], &plt.A{C: "y", M: "o", Ms: 6})
		}
	}

	dx := m.Hx[m.Nx/2]
	plt.Equal()
	plt.AxisRange(-sim.Plot.Xlim, sim.Plot.Xlim, -sim.Plot.Zlim, m.TopZ()+dx)
	plt.Title("3-D model", nil)
	plt.Gll("$x$", "$z$", nil)
}

// PlotPseudoSection draws the pseudo-section of the gathered data in the
// requested unit type, with the sphere outlines for reference
func PlotPseudoSection(sim *inp.Simulation, m *msh.Mesh, dat *survey.Data) {
	X, Y, Z := PseudoGrid(dat, sim.Srv.Unit)
	plt.ContourF(X, Y, Z, nil)
	for _, sph := range sim.Mdl.Spheres {
		plt.Circle(sph.C[0], sph.C[2], sph.R, &plt.A{Ec: "k", Fc: "none", Lw: 3})
	}
	dx := m.Hx[m.Nx/2]
	plt.Equal()
	plt.AxisRange(-sim.Plot.Xlim, sim.Plot.Xlim, -sim.Plot.Zlim, m.TopZ()+dx)
	plt.Title(pseudoTitle(sim.Srv.Unit), nil)
	plt.Gll("$x$", "$n$", nil)
}

// Draw draws both subplots and saves the figure as <fnkey>.png in the
// output directory
func Draw(sim *inp.Simulation, m *msh.Mesh, sig []float64, dat *survey.Data) {
	plt.Reset(true, &plt.A{Prop: 1.2})
	plt.Subplot(2, 1, 1)
	PlotModel(sim, m, sig, dat.Srv)
	plt.Subplot(2, 1, 2)
	PlotPseudoSection(sim, m, dat)
	plt.Save(sim.Data.DirOut, sim.Data.Fnkey)
}

func pseudoTitle(unit string) string {
	switch unit {
	case survey.UnitAppRes:
		return "Apparent Resistivity data"
	case survey.UnitAppCond:
		return "Apparent Conductivity data"
	}
	return "Potential data"
}
