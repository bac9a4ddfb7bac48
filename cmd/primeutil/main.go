package main

//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

import (
	"flag"
	"fmt"
	"os"

	primus "github.com/bfix/primus"
	gmath "github.com/bfix/primus/math"
	"github.com/bfix/primus/rng"
)

func main() {
	var factor bool
	var probOnly bool
	var verbosity int
	flag.BoolVar(&factor, "factor", false, "factor the argument instead of testing primality")
	flag.BoolVar(&probOnly, "prob", false, "stop at a BPSW probable-prime verdict; skip the full proof")
	flag.IntVar(&verbosity, "v", 0, "trace verbosity (0=silent)")
	flag.Parse()

	rng.SetVerbosity(verbosity)

	args := flag.Args()
	if len(args) == 0 {
		fmt.Println("usage: primeutil [-factor] [-prob] [-v N] <number>...")
		os.Exit(1)
	}

	for _, arg := range args {
		n := gmath.NewIntFromString(arg)
		switch {
		case factor:
			runFactor(n)
		case probOnly:
			runProbable(n)
		default:
			runProve(n)
		}
	}
}

func runFactor(n *gmath.Int) {
	factors := primus.Factor(n)
	fmt.Printf("%s =", n)
	for _, f := range factors {
		fmt.Printf(" %s", f)
	}
	fmt.Println()
}

func runProbable(n *gmath.Int) {
	if primus.IsProbPrime(n) {
		fmt.Printf("%s: probable prime\n", n)
	} else {
		fmt.Printf("%s: composite\n", n)
	}
}

func runProve(n *gmath.Int) {
	v, cert := primus.IsProvablePrime(n, true)
	switch v {
	case primus.VerdictComposite:
		fmt.Printf("%s: composite\n", n)
	case primus.VerdictProbablePrime:
		fmt.Printf("%s: probable prime (no certificate found)\n", n)
	case primus.VerdictPrime:
		fmt.Printf("%s: prime\n", n)
		if cert != "" {
			fmt.Print(cert)
		}
	}
}
