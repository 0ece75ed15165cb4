// Copyright 2017 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/krismaclennan/simpeg/mdl"
	"github.com/krismaclennan/simpeg/msh"
	"github.com/krismaclennan/simpeg/survey"
)

// Data holds global data for simulations
type Data struct {
	Desc   string `json:"desc"`   // description of simulation
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/simpeg
	Fnkey  string // filename key; automatically set by ReadSim
}

// MeshData holds the tensor mesh definition: per-axis lists of
// {width, count, factor} expansion groups and the origin code
type MeshData struct {
	Hx     [][]float64 `json:"hx"`     // expansion groups along x
	Hy     [][]float64 `json:"hy"`     // expansion groups along y
	Hz     [][]float64 `json:"hz"`     // expansion groups along z
	Origin string      `json:"origin"` // origin code; e.g. "CCN"
}

// ModelData holds the conductivity model definition
type ModelData struct {
	SigBck  float64       `json:"sigbck"`  // background conductivity [S/m]
	Spheres []*mdl.Sphere `json:"spheres"` // spherical anomalies
}

// SurveyData holds the survey line definition
type SurveyData struct {
	Type string      `json:"type"` // survey type; e.g. "dipole-dipole"
	Unit string      `json:"unit"` // measurement unit; e.g. "appConductivity"
	Ends [][]float64 `json:"ends"` // two xy endpoints of the line (at the surface)
	A    float64     `json:"a"`    // electrode station spacing
	B    float64     `json:"b"`    // receiver dipole length
	N    int         `json:"n"`    // number of receiver separations per source
}

// LinSolData holds data for linear solvers
type LinSolData struct {
	Name    string  `json:"name"`    // "bicgstab", "sparselu" or "umfpack"
	Tol     float64 `json:"tol"`     // iterative solver tolerance
	NmaxIt  int     `json:"nmaxit"`  // max number of iterations
	Verbose bool    `json:"verbose"` // verbose?
	Timing  bool    `json:"timing"`  // show timing statistics
}

// PlotData holds plotting options
type PlotData struct {
	Active bool    `json:"active"` // generate plots after the run
	Xlim   float64 `json:"xlim"`   // half-width of the plotted core region
	Zlim   float64 `json:"zlim"`   // depth of the plotted core region
}

// Simulation holds all simulation data
type Simulation struct {
	Data   Data       `json:"data"`   // global data
	Msh    MeshData   `json:"mesh"`   // tensor mesh
	Mdl    ModelData  `json:"model"`  // conductivity model
	Srv    SurveyData `json:"survey"` // survey line
	LinSol LinSolData `json:"linsol"` // linear solver
	Plot   PlotData   `json:"plot"`   // plotting
}

// ReadSim reads a simulation file, sets default values and checks the
// input. It panics on errors so that invalid input fails fast, before any
// mesh or solve work begins.
func ReadSim(simfilepath string) (o *Simulation) {
	b := io.ReadFile(simfilepath)
	o = new(Simulation)
	err := json.Unmarshal(b, o)
	if err != nil {
		chk.Panic("cannot parse simulation file %q:\n%v", simfilepath, err)
	}
	o.Data.Fnkey = io.FnKey(filepath.Base(simfilepath))
	o.SetDefaults()
	err = o.Check()
	if err != nil {
		chk.Panic("invalid simulation file %q:\n%v", simfilepath, err)
	}
	return
}

// Default returns the documented two-spheres configuration: a 5 m core
// mesh padded by 15 expanding cells per side, spheres of 25 m radius at
// (-50,0,-50) and (50,0,-50), and a 30 m dipole-dipole line from
// (-175,0) to (175,0) with 5 receiver separations.
func Default() (o *Simulation) {
	o = new(Simulation)
	o.Data.Fnkey = "twospheres"
	o.SetDefaults()
	return
}

// SetDefaults fills in default values for all unset (zero) fields
func (o *Simulation) SetDefaults() {
	if o.Data.DirOut == "" {
		o.Data.DirOut = "/tmp/simpeg"
	}
	if len(o.Msh.Hx) < 1 {
		o.Msh.Hx = [][]float64{{5, 15, -1.3}, {5, 75, 0}, {5, 15, 1.3}}
	}
	if len(o.Msh.Hy) < 1 {
		o.Msh.Hy = [][]float64{{5, 15, -1.3}, {5, 10, 0}, {5, 15, 1.3}}
	}
	if len(o.Msh.Hz) < 1 {
		o.Msh.Hz = [][]float64{{5, 15, -1.3}, {5, 15, 0}}
	}
	if o.Msh.Origin == "" {
		o.Msh.Origin = "CCN"
	}
	if o.Mdl.SigBck == 0 {
		o.Mdl.SigBck = 1e-2
	}
	if len(o.Mdl.Spheres) < 1 {
		o.Mdl.Spheres = []*mdl.Sphere{
			{C: []float64{-50, 0, -50}, R: 25, Sig: 1e-1},
			{C: []float64{50, 0, -50}, R: 25, Sig: 1e-3},
		}
	}
	if o.Srv.Type == "" {
		o.Srv.Type = survey.DipoleDipole
	}
	if o.Srv.Unit == "" {
		o.Srv.Unit = survey.UnitAppCond
	}
	if len(o.Srv.Ends) < 2 {
		o.Srv.Ends = [][]float64{{-175, 0}, {175, 0}}
	}
	if o.Srv.A == 0 {
		o.Srv.A = 30
	}
	if o.Srv.B == 0 {
		o.Srv.B = 30
	}
	if o.Srv.N == 0 {
		o.Srv.N = 5
	}
	if o.LinSol.Name == "" {
		o.LinSol.Name = "bicgstab"
	}
	if o.LinSol.Tol == 0 {
		o.LinSol.Tol = 1e-5
	}
	if o.LinSol.NmaxIt == 0 {
		o.LinSol.NmaxIt = 1000
	}
	if o.Plot.Xlim == 0 {
		o.Plot.Xlim = 200
	}
	if o.Plot.Zlim == 0 {
		o.Plot.Zlim = 100
	}
}

// Check validates the input options. Survey type and unit type failures
// surface here, before any numerical work.
func (o *Simulation) Check() (err error) {
	err = survey.CheckType(o.Srv.Type)
	if err != nil {
		return
	}
	err = survey.CheckUnit(o.Srv.Unit)
	if err != nil {
		return
	}
	if len(o.Srv.Ends) != 2 || len(o.Srv.Ends[0]) != 2 || len(o.Srv.Ends[1]) != 2 {
		return chk.Err("survey line must have two xy endpoints. ends=%v is invalid", o.Srv.Ends)
	}
	if o.Srv.A <= 0 || o.Srv.B <= 0 || o.Srv.N < 1 {
		return chk.Err("survey parameters must be positive. a=%g b=%g n=%d", o.Srv.A, o.Srv.B, o.Srv.N)
	}
	if o.Mdl.SigBck <= 0 {
		return chk.Err("background conductivity must be positive. sigbck=%g is invalid", o.Mdl.SigBck)
	}
	switch o.LinSol.Name {
	case "bicgstab", "sparselu", "umfpack":
	default:
		return chk.Err("linear solver must be 'bicgstab', 'sparselu' or 'umfpack'. %q is invalid", o.LinSol.Name)
	}
	for _, g := range [][][]float64{o.Msh.Hx, o.Msh.Hy, o.Msh.Hz} {
		for _, t := range g {
			if len(t) != 3 {
				return chk.Err("mesh expansion groups must be {width, count, factor} triples. %v is invalid", t)
			}
		}
	}
	return
}

// Expansions converts the raw {width, count, factor} triples of one axis
// into mesh expansion groups
func Expansions(triples [][]float64) (groups []msh.Expansion) {
	for _, t := range triples {
		groups = append(groups, msh.Expansion{W: t[0], Num: int(t[1]), Fac: t[2]})
	}
	return
}

// Mesh builds the tensor mesh defined by this input
func (o *Simulation) Mesh() *msh.Mesh {
	return msh.NewMesh(Expansions(o.Msh.Hx), Expansions(o.Msh.Hy), Expansions(o.Msh.Hz), o.Msh.Origin)
}

// Conductivity builds the cell-centred conductivity model on mesh m
func (o *Simulation) Conductivity(m *msh.Mesh) []float64 {
	return mdl.Conductivity(m, o.Mdl.SigBck, o.Mdl.Spheres)
}
