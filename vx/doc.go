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

// Package vx provides fixed-width SIMD vector values with a lane count that
// is a power of two, and the numeric kernels built on them.
//
// A vector of N lanes is two vectors of N/2 lanes (Lo and Hi), bottoming out
// at Vec1. Every operation picks the first available implementation:
//
//  1. a hardware intrinsic for the exact shape (amd64 AVX2 through
//     simd/archsimd when built with GOEXPERIMENT=simd),
//  2. a flat loop over the contiguous lane array,
//  3. recursion into the two halves.
//
// Building with the vxscalar tag removes the first two paths so that every
// operation recurses down to scalar lanes. Results do not depend on the path.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-skvx/vx"
//
//	a := vx.Of4[float32](1, 2, 3, 4)
//	b := vx.Splat4[float32](10)
//	c := a.Mul(b).Add(a)          // {11, 22, 33, 44}
//	m := c.GtS(20)                // mask lanes: all bits set or all clear
//	d := vx.IfThenElse(m, c, a)   // {1, 22, 33, 44}
//
// Operators are methods (Add, Sub, Mul, Div, And, Or, Xor, Shl, Shr, Eq, Lt,
// ...); the S-suffixed forms take a scalar right operand. Comparisons return a
// mask with the same shape as their operands; BitCast views a float mask as
// integer lanes.
package vx

//go:generate go run ../cmd/vxgen -output zz_shapes.go
