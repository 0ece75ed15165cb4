// Copyright 2017 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/krismaclennan/simpeg/survey"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. two-spheres simulation file")

	sim := ReadSim("data/twospheres.sim")
	io.Pforan("desc = %q\n", sim.Data.Desc)

	chk.StrAssert(sim.Data.Fnkey, "twospheres")
	chk.StrAssert(sim.Srv.Type, survey.DipoleDipole)
	chk.StrAssert(sim.Srv.Unit, survey.UnitAppCond)
	chk.Float64(tst, "a", 1e-15, sim.Srv.A, 30)
	chk.Float64(tst, "b", 1e-15, sim.Srv.B, 30)
	chk.IntAssert(sim.Srv.N, 5)
	chk.IntAssert(len(sim.Mdl.Spheres), 2)
	chk.Float64(tst, "sigbck", 1e-15, sim.Mdl.SigBck, 1e-2)
	chk.Float64(tst, "sig sphere 1", 1e-15, sim.Mdl.Spheres[0].Sig, 1e-1)
	chk.Float64(tst, "sig sphere 2", 1e-15, sim.Mdl.Spheres[1].Sig, 1e-3)
	chk.StrAssert(sim.Msh.Origin, "CCN")
	chk.StrAssert(sim.LinSol.Name, "bicgstab")
	chk.Float64(tst, "tol", 1e-15, sim.LinSol.Tol, 1e-5)

	// the mesh of the documented configuration: 105 x 40 x 30 cells
	m := sim.Mesh()
	io.Pfcyan("%v\n", m)
	chk.IntAssert(m.Nx, 105)
	chk.IntAssert(m.Ny, 40)
	chk.IntAssert(m.Nz, 30)
	chk.Float64(tst, "top", 1e-12, m.TopZ(), 0)
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. defaults match the simulation file")

	def := Default()
	sim := ReadSim("data/twospheres.sim")
	chk.StrAssert(def.Srv.Type, sim.Srv.Type)
	chk.StrAssert(def.Srv.Unit, sim.Srv.Unit)
	chk.Float64(tst, "a", 1e-15, def.Srv.A, sim.Srv.A)
	chk.IntAssert(def.Srv.N, sim.Srv.N)
	chk.Float64(tst, "sigbck", 1e-15, def.Mdl.SigBck, sim.Mdl.SigBck)
	chk.IntAssert(len(def.Mdl.Spheres), 2)
	if err := def.Check(); err != nil {
		tst.Errorf("default simulation must be valid:\n%v", err)
		return
	}
}

func Test_check01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("check01. fail-fast input validation")

	// every valid selector combination passes
	for _, stype := range []string{survey.DipoleDipole, survey.PoleDipole, survey.PolePole} {
		for _, unit := range []string{survey.UnitAppRes, survey.UnitAppCond, survey.UnitVolt} {
			sim := Default()
			sim.Srv.Type = stype
			sim.Srv.Unit = unit
			if err := sim.Check(); err != nil {
				tst.Errorf("type=%q unit=%q must be valid:\n%v", stype, unit, err)
				return
			}
		}
	}

	// invalid survey types fail before any mesh or solve work
	for _, stype := range []string{"dipole-pole", "gradient", "schlumberger", ""} {
		sim := Default()
		sim.Srv.Type = stype
		if err := sim.Check(); err == nil {
			tst.Errorf("type %q must be rejected", stype)
			return
		}
	}

	// invalid unit types fail as well
	for _, unit := range []string{"ohm.m", "appCond", ""} {
		sim := Default()
		sim.Srv.Unit = unit
		if err := sim.Check(); err == nil {
			tst.Errorf("unit %q must be rejected", unit)
			return
		}
	}

	// other input errors
	sim := Default()
	sim.LinSol.Name = "mumps"
	if err := sim.Check(); err == nil {
		tst.Errorf("unknown solvers must be rejected")
		return
	}
	sim = Default()
	sim.Mdl.SigBck = -1
	if err := sim.Check(); err == nil {
		tst.Errorf("negative background conductivity must be rejected")
		return
	}
	sim = Default()
	sim.Srv.Ends = [][]float64{{0, 0}}
	if err := sim.Check(); err == nil {
		tst.Errorf("missing line endpoint must be rejected")
		return
	}
}
