// Copyright 2017 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/krismaclennan/simpeg/fwd"
	"github.com/krismaclennan/simpeg/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "examples/twospheres/twospheres", ".sim", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nSimpeg -- DC Resistivity Forward Modelling\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"plot results", "doplot", doplot,
		))
	}

	// forward modelling run
	analysis := fwd.NewMain(fnamepath, verbose)
	defer analysis.Clean()
	dat, err := analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// plot model and pseudo-section
	if doplot && analysis.Sim.Plot.Active {
		out.Draw(analysis.Sim, analysis.Msh, analysis.Sig, dat)
		if verbose {
			io.Pf("> Figure saved in %s/%s.png\n", analysis.Sim.Data.DirOut, fnkey)
		}
	}
}
