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

package vx

import (
	"fmt"
	"math"
)

// ScaledDividerU32 divides many uint32 values by the same divisor with a
// multiply and a shift. Add Half to a numerator before dividing to round:
//
//	Divide(n + Half()) == floor(n/d + 1/2)
//
// to within one. The largest numerator that can be rounded this way is
// math.MaxUint32 - Half(). A ScaledDividerU32 is immutable and safe for
// concurrent use.
type ScaledDividerU32 struct {
	factor uint32
	half   uint32
}

// NewScaledDividerU32 prepares division by divisor, which must be greater
// than 1.
func NewScaledDividerU32(divisor uint32) ScaledDividerU32 {
	if divisor <= 1 {
		panic(fmt.Sprintf("vx: ScaledDividerU32 divisor %d must be greater than 1", divisor))
	}
	return ScaledDividerU32{
		factor: uint32(math.Round(1.0 / float64(divisor) * (1 << 32))),
		half:   uint32((uint64(divisor) + 1) >> 1),
	}
}

// Divide returns (n * DivisorFactor()) >> 32 for each lane, computed in 64
// bits.
func (d ScaledDividerU32) Divide(n Vec4[uint32]) Vec4[uint32] {
	return Cast4[uint32](Cast4[uint64](n).MulS(uint64(d.factor)).Shr(32))
}

// Half returns the rounding bias, (divisor+1)/2 computed without wrapping,
// so it is 1<<31 for math.MaxUint32.
func (d ScaledDividerU32) Half() uint32 { return d.half }

// DivisorFactor returns round(2^32 / divisor).
func (d ScaledDividerU32) DivisorFactor() uint32 { return d.factor }

// DivideRounded writes the rounded quotient of every src value into dst,
// adding Half before dividing. dst must be at least as long as src.
func (d ScaledDividerU32) DivideRounded(dst, src []uint32) {
	checkLen("DivideRounded", len(dst), len(src))
	bias := Splat4(d.half)
	i := 0
	for ; i+4 <= len(src); i += 4 {
		d.Divide(Load4(src[i:]).Add(bias)).Store(dst[i:])
	}
	for ; i < len(src); i++ {
		dst[i] = uint32(uint64(src[i]+d.half) * uint64(d.factor) >> 32)
	}
}
