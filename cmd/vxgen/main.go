// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command vxgen generates the per-shape constructors and conversions of
// package vx: SplatN, OfN, LoadN, JoinN, CastN, ToHalfN, FromHalfN and
// LrintN for every lane count N.
//
// Go generics cannot infer the lane type of a recursive Pair from its
// half-width type, so each shape gets plain wrapper functions instead.
//
// Usage:
//
//	vxgen -output zz_shapes.go -shapes 1,2,4,8,16
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/vxgen -output zz_shapes.go
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "zz_shapes.go", "Output Go file")
	shapes     = flag.String("shapes", "1,2,4,8,16", "Comma-separated lane counts: powers of two starting at 1, including 4")
	packageOut = flag.String("pkg", "vx", "Output package name")
)

func main() {
	flag.Parse()

	lanes, err := parseShapes(*shapes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	src, err := generate(*packageOut, lanes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %d shapes into %s\n", len(lanes), *outputFile)
}
