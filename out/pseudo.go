// Copyright 2017 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements plotting of models and pseudo-sections
package out

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/krismaclennan/simpeg/survey"
)

// PseudoGrid arranges the pseudo-section into 2D arrays ready for
// contouring: rows are receiver separation levels, columns are sources.
// X and Y hold the midpoint and (negative) pseudo-depth coordinates along
// the projected line; Z holds the values in the requested unit type.
// Positions without a measurement (sources near the end of the line have
// fewer receivers) are filled with NaN.
func PseudoGrid(dat *survey.Data, unit string) (X, Y, Z [][]float64) {
	srv2d := dat.Srv.To2D()
	d2 := &survey.Data{Srv: srv2d, Dobs: dat.Dobs}
	xs, zs := d2.PseudoCoords()
	vals := dat.Values(unit)

	nsrc := len(srv2d.Srcs)
	nlev := 0
	for _, src := range srv2d.Srcs {
		if len(src.Rx) > nlev {
			nlev = len(src.Rx)
		}
	}
	X = nanGrid(nlev, nsrc)
	Y = nanGrid(nlev, nsrc)
	Z = nanGrid(nlev, nsrc)
	iv := 0
	for j, src := range srv2d.Srcs {
		for i := range src.Rx {
			X[i][j] = xs[iv]
			Y[i][j] = zs[iv]
			Z[i][j] = vals[iv]
			iv++
		}
	}

	// contouring needs full coordinate grids: extrapolate the missing
	// trailing positions of each level from the survey geometry
	for i := 0; i < nlev; i++ {
		for j := 0; j < nsrc; j++ {
			if !math.IsNaN(X[i][j]) {
				continue
			}
			X[i][j] = lastValid(X[i], j)
			Y[i][j] = firstValid(Y[i])
		}
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

func nanGrid(nrow, ncol int) (g [][]float64) {
	g = utl.Alloc(nrow, ncol)
	for i := 0; i < nrow; i++ {
		for j := 0; j < ncol; j++ {
			g[i][j] = math.NaN()
		}
	}
	return
}

func lastValid(row []float64, j int) float64 {
	for k := j - 1; k >= 0; k-- {
		if !math.IsNaN(row[k]) {
			return row[k]
		}
	}
	return 0
}

func firstValid(row []float64) float64 {
	for _, v := range row {
		if !math.IsNaN(v) {
			return v
		}
	}
	return 0
}
