// Copyright 2017 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fwd implements the DC resistivity forward solver
package fwd

import (
	"math"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/krismaclennan/simpeg/inp"
	"github.com/krismaclennan/simpeg/msh"
	"github.com/krismaclennan/simpeg/survey"
)

// Main holds all data for one forward modelling run
type Main struct {
	Sim     *inp.Simulation // simulation data
	Msh     *msh.Mesh       // tensor mesh
	Sig     []float64       // cell conductivities
	Srv     *survey.Survey  // survey geometry
	Sys     *System         // assembled system
	Sol     Solver          // linear solver
	ShowMsg bool            // show messages
}

// NewMain reads a simulation file and prepares a forward modelling run:
// mesh, conductivity model, survey geometry, system assembly and linear
// solver initialisation. Invalid input panics before any numerical work.
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   verbose     -- show messages
func NewMain(simfilepath string, verbose bool) (o *Main) {
	return NewMainSim(inp.ReadSim(simfilepath), verbose)
}

// NewMainSim prepares a forward modelling run from in-memory input
func NewMainSim(sim *inp.Simulation, verbose bool) (o *Main) {

	// check input again: callers may have edited the structure
	if err := sim.Check(); err != nil {
		chk.Panic("invalid simulation data:\n%v", err)
	}

	// new Main object
	o = new(Main)
	o.Sim = sim
	o.ShowMsg = verbose

	// mesh and conductivity model
	o.Msh = sim.Mesh()
	o.Sig = sim.Conductivity(o.Msh)
	if o.ShowMsg {
		io.Pf("> %v\n", o.Msh)
	}

	// survey line: endpoints snapped to the closest cell centres, on top
	// of the mesh
	top := o.Msh.TopZ()
	end0 := o.Msh.SnapToGrid([]float64{sim.Srv.Ends[0][0], sim.Srv.Ends[0][1], top})
	end1 := o.Msh.SnapToGrid([]float64{sim.Srv.Ends[1][0], sim.Srv.Ends[1][1], top})
	end0[2], end1[2] = top, top
	var err error
	o.Srv, err = survey.Gen(end0, end1, sim.Srv.Type, sim.Srv.A, sim.Srv.B, sim.Srv.N)
	if err != nil {
		chk.Panic("cannot generate survey:\n%v", err)
	}
	if o.ShowMsg {
		io.Pf("> %v\n", o.Srv)
	}

	// assemble system and initialise solver
	o.Sys = NewSystem(o.Msh, o.Sig)
	o.Sol = NewSolver(sim.LinSol.Name)
	err = o.Sol.Init(o.Sys, &sim.LinSol)
	if err != nil {
		chk.Panic("cannot initialise linear solver:\n%v", err)
	}
	return
}

// Run solves the system for every transmitter and gathers the potential
// differences at the receivers. The returned data holds one value per
// transmitter-receiver combination, in survey order.
func (o *Main) Run() (dat *survey.Data, err error) {
	cputime := time.Now()
	nc := o.Msh.NumCells()
	q := la.NewVector(nc)
	phi := la.NewVector(nc)
	dobs := make([]float64, 0, o.Srv.NumData())
	for ii, src := range o.Srv.Srcs {
		t0 := time.Now()

		// source term: current dipole, or pole with a remote return
		// electrode two line lengths down the line. A carries -1 and B
		// carries +1 so that the potential is positive around the
		// injection electrode A (the operator has a negative diagonal)
		q.Fill(0)
		o.Sys.AddSource(q, src.A, -1)
		if src.B != nil {
			o.Sys.AddSource(q, src.B, +1)
		} else {
			rem := []float64{
				src.A[0] + o.Srv.Dirx*2.0*o.Srv.Len,
				src.A[1] + o.Srv.Diry*2.0*o.Srv.Len,
				src.A[2],
			}
			o.Sys.AddSource(q, rem, +1)
		}

		// solve for the potential everywhere
		phi.Fill(0)
		err = o.Sol.Solve(phi, q)
		if err != nil {
			return nil, chk.Err("solve failed for transmitter %d:\n%v", ii+1, err)
		}

		// potential differences at the receivers; the factor pi comes
		// from the infinite line source assumption
		for _, rx := range src.Rx {
			v := o.Sys.SampleCC(phi, rx.M)
			if rx.N != nil {
				v -= o.Sys.SampleCC(phi, rx.N)
			}
			dobs = append(dobs, v*math.Pi)
		}
		if o.ShowMsg {
			io.Pf("transmitter %d of %d -> time: %v\n", ii+1, len(o.Srv.Srcs), time.Now().Sub(t0))
		}
	}
	if o.ShowMsg {
		io.Pf("> Forward completed\n")
		io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
	}
	return survey.NewData(o.Srv, dobs), nil
}

// Clean releases solver resources
func (o *Main) Clean() {
	if o.Sol != nil {
		o.Sol.Free()
	}
}
