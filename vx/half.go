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

import "math"

// Float16 is an IEEE 754 binary16 value stored as its bit pattern.
//
//	S | EEEEE | MMMMMMMMMM
//
// Vector conversions work on uint16 lanes; Float16 is the scalar view of one
// such lane.
type Float16 uint16

// Float16 constants for special values.
const (
	Float16Zero      Float16 = 0x0000
	Float16NegZero   Float16 = 0x8000
	Float16One       Float16 = 0x3C00
	Float16MaxValue  Float16 = 0x7BFF // 65504
	Float16MinNormal Float16 = 0x0400 // 2^-14
	Float16MinValue  Float16 = 0x0001 // 2^-24
	Float16Inf       Float16 = 0x7C00
	Float16NegInf    Float16 = 0xFC00
	Float16NaN       Float16 = 0x7E00 // quiet
)

// Float32ToFloat16 converts f with round-to-nearest-even. Values too large
// for binary16 become infinity, values too small become zero (or a
// subnormal), and NaN becomes a quiet NaN with f's sign.
func Float32ToFloat16(f float32) Float16 {
	b := math.Float32bits(f)
	sign := uint32(b>>16) & 0x8000
	exp := int32(b>>23) & 0xff
	mant := b & 0x7fffff

	if exp == 0xff {
		if mant != 0 {
			return Float16(sign | uint32(Float16NaN))
		}
		return Float16(sign | uint32(Float16Inf))
	}
	e := exp - 127 + 15
	if e >= 0x1f {
		return Float16(sign | uint32(Float16Inf))
	}
	if e <= 0 {
		if e < -10 {
			return Float16(sign)
		}
		// Subnormal: the value is m * 2^-24 with the implicit bit restored.
		return Float16(sign | roundShift(mant|0x800000, uint32(14-e)))
	}
	// A carry out of the mantissa bumps the exponent, possibly to infinity.
	return Float16(sign | (uint32(e)<<10 + roundShift(mant, 13)))
}

// roundShift returns m >> s rounded to nearest, ties to even.
func roundShift(m, s uint32) uint32 {
	q := m >> s
	rem := m & (1<<s - 1)
	half := uint32(1) << (s - 1)
	if rem > half || rem == half && q&1 == 1 {
		q++
	}
	return q
}

// Float16ToFloat32 converts h exactly, preserving infinities and NaN
// payloads.
func Float16ToFloat32(h Float16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1f
	mant := uint32(h) & 0x3ff
	switch exp {
	case 0x1f:
		return math.Float32frombits(sign | 0x7f800000 | mant<<13)
	case 0:
		// Subnormal (or zero): mant * 2^-24 is exact in float32.
		return math.Float32frombits(sign | math.Float32bits(float32(mant)*(1.0/(1<<24))))
	}
	return math.Float32frombits(sign | (exp+127-15)<<23 | mant<<13)
}

// Float32 returns h as a float32.
func (h Float16) Float32() float32 { return Float16ToFloat32(h) }

// IsNaN reports whether h is a NaN.
func (h Float16) IsNaN() bool { return h&0x7c00 == 0x7c00 && h&0x3ff != 0 }

// IsInf reports whether h is an infinity of either sign.
func (h Float16) IsInf() bool { return h&0x7fff == 0x7c00 }

// IsZero reports whether h is a zero of either sign.
func (h Float16) IsZero() bool { return h&0x7fff == 0 }

// toHalf4 is the vector conversion that ToHalfN is built from. It works on
// the float bits with integer and float lane operations only:
//
//   - clamp |x| to 65536, which encodes to binary16 infinity;
//   - add a magic number two to the thirteenth times |x| (but at least 1/2),
//     which rounds away the 13 mantissa bits binary16 cannot hold;
//   - rebias the exponent from 127 to 15.
//
// NaN lanes become a quiet NaN with the input's sign.
func toHalf4(x Vec4[float32]) Vec4[uint16] {
	sem := BitCast[Vec4[int32]](x)
	s := sem.AndS(math.MinInt32)
	em := sem.Xor(s).Min(Splat4[int32](0x4780_0000))
	fem := BitCast[Vec4[float32]](em)
	magic := BitCast[Vec4[int32]](fem.MulS(8192).Max(Splat4[float32](0.5))).AndS(255 << 23)
	rounded := BitCast[Vec4[int32]](fem.Add(BitCast[Vec4[float32]](magic)))
	// Undo the 13 added to the exponent and the implicit 1, then rebias.
	exp := magic.Shr(13).SubS((127 - 15 + 13 + 1) << 10)
	f16 := rounded.Add(exp)
	sign := s.Shr(16)
	nan := BitCast[Vec4[int32]](x.Ne(x))
	h := nan.Select(sign.OrS(int32(Float16NaN)), sign.Or(f16))
	return Cast4[uint16](h)
}

// fromHalf4 widens binary16 lanes to float32 exactly.
func fromHalf4(h Vec4[uint16]) Vec4[float32] {
	wide := Cast4[int32](h)
	s := wide.AndS(0x8000)
	em := wide.Xor(s)
	// Fills the 8-bit exponent for infinity and NaN.
	infOrNaN := em.GeS(31 << 10).AndS(255 << 23)
	isNorm := em.GtS(0x3ff)
	// A subnormal is 2^-24 times its mantissa.
	sub := BitCast[Vec4[int32]](Cast4[float32](em).MulS(1.0 / (1 << 24)))
	norm := em.Shl(13).AddS((127 - 15) << 23)
	finite := isNorm.Select(norm, sub)
	return BitCast[Vec4[float32]](s.Shl(16).Or(finite).Or(infOrNaN))
}
