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

//go:build amd64 && goexperiment.simd && !vxscalar

package vx

import (
	"simd/archsimd"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// This file lowers the 256-bit shapes to AVX2 registers through archsimd.
// Every helper reports false when it has no instruction for the shape, and
// the caller falls back to the flat loop.

var hasAVX2 = cpu.X86.HasAVX && cpu.X86.HasAVX2

// splitForSIMD reports whether v is wider than a register, in which case
// recursing into its halves reaches the intrinsics.
func splitForSIMD[V any](v V) bool {
	return hasAVX2 && unsafe.Sizeof(v) > 32
}

func loadF32x8[V any](v *V) archsimd.Float32x8 {
	return archsimd.LoadFloat32x8Slice(lanesOf[float32](v))
}

func loadF64x4[V any](v *V) archsimd.Float64x4 {
	return archsimd.LoadFloat64x4Slice(lanesOf[float64](v))
}

func loadI32x8[V any](v *V) archsimd.Int32x8 {
	return archsimd.LoadInt32x8Slice(lanesOf[int32](v))
}

func loadI64x4[V any](v *V) archsimd.Int64x4 {
	return archsimd.LoadInt64x4Slice(unsafe.Slice((*int64)(unsafe.Pointer(v)), 4))
}

func storeF32x8[V any](x archsimd.Float32x8) V {
	var r V
	x.StoreSlice(lanesOf[float32](&r))
	return r
}

func storeF64x4[V any](x archsimd.Float64x4) V {
	var r V
	x.StoreSlice(lanesOf[float64](&r))
	return r
}

func storeI32x8[V any](x archsimd.Int32x8) V {
	var r V
	x.StoreSlice(lanesOf[int32](&r))
	return r
}

func storeI64x4[V any](x archsimd.Int64x4) V {
	var r V
	x.StoreSlice(unsafe.Slice((*int64)(unsafe.Pointer(&r)), 4))
	return r
}

// maskF32x8 expands a comparison result to all-ones or all-zeros lanes.
func maskF32x8(m archsimd.Mask32x8) archsimd.Int32x8 {
	return archsimd.BroadcastInt32x8(-1).Merge(archsimd.BroadcastInt32x8(0), m)
}

func maskF64x4(m archsimd.Mask64x4) archsimd.Float64x4 {
	ones := archsimd.BroadcastInt64x4(-1).AsFloat64x4()
	return ones.Merge(archsimd.BroadcastFloat64x4(0), m)
}

func simdBinary[V any](op binOp, a, b V) (V, bool) {
	if !hasAVX2 || unsafe.Sizeof(a) != 32 {
		return a, false
	}
	if op.bitwise() {
		x, y := loadI64x4(&a), loadI64x4(&b)
		switch op {
		case opAnd:
			return storeI64x4[V](x.And(y)), true
		case opOr:
			return storeI64x4[V](x.Or(y)), true
		case opXor:
			return storeI64x4[V](x.Xor(y)), true
		case opAndNot:
			return storeI64x4[V](x.And(y.Xor(archsimd.BroadcastInt64x4(-1)))), true
		}
		return a, false
	}
	switch any(a).(type) {
	case Vec8[float32]:
		x, y := loadF32x8(&a), loadF32x8(&b)
		switch op {
		case opAdd:
			return storeF32x8[V](x.Add(y)), true
		case opSub:
			return storeF32x8[V](x.Sub(y)), true
		case opMul:
			return storeF32x8[V](x.Mul(y)), true
		case opDiv:
			return storeF32x8[V](x.Div(y)), true
		case opEq:
			return storeI32x8[V](maskF32x8(x.Equal(y))), true
		case opNe:
			return storeI32x8[V](maskF32x8(x.Equal(y)).Xor(archsimd.BroadcastInt32x8(-1))), true
		case opLt:
			return storeI32x8[V](maskF32x8(x.Less(y))), true
		case opLe:
			return storeI32x8[V](maskF32x8(x.Less(y).Or(x.Equal(y)))), true
		case opGt:
			return storeI32x8[V](maskF32x8(x.Greater(y))), true
		case opGe:
			return storeI32x8[V](maskF32x8(x.Greater(y).Or(x.Equal(y)))), true
		}
	case Vec4[float64]:
		x, y := loadF64x4(&a), loadF64x4(&b)
		switch op {
		case opAdd:
			return storeF64x4[V](x.Add(y)), true
		case opSub:
			return storeF64x4[V](x.Sub(y)), true
		case opMul:
			return storeF64x4[V](x.Mul(y)), true
		case opDiv:
			return storeF64x4[V](x.Div(y)), true
		case opEq:
			return storeF64x4[V](maskF64x4(x.Equal(y))), true
		case opLt:
			return storeF64x4[V](maskF64x4(x.Less(y))), true
		case opGt:
			return storeF64x4[V](maskF64x4(x.Greater(y))), true
		}
	case Vec8[int32]:
		x, y := loadI32x8(&a), loadI32x8(&b)
		switch op {
		case opAdd:
			return storeI32x8[V](x.Add(y)), true
		case opSub:
			return storeI32x8[V](x.Sub(y)), true
		case opEq:
			return storeI32x8[V](maskF32x8(x.Equal(y))), true
		case opGt:
			return storeI32x8[V](maskF32x8(x.Greater(y))), true
		case opLt:
			return storeI32x8[V](maskF32x8(y.Greater(x))), true
		}
	}
	return a, false
}

func simdSqrt[V any](a V) (V, bool) {
	if !hasAVX2 {
		return a, false
	}
	switch any(a).(type) {
	case Vec8[float32]:
		return storeF32x8[V](loadF32x8(&a).Sqrt()), true
	case Vec4[float64]:
		return storeF64x4[V](loadF64x4(&a).Sqrt()), true
	}
	return a, false
}

// simdSelect blends without a dedicated instruction: e ^ ((e ^ t) & c) takes
// t's bits wherever c is set, for any lane width.
func simdSelect[V any](c, t, e V) (V, bool) {
	if !hasAVX2 || unsafe.Sizeof(c) != 32 {
		return c, false
	}
	m, x, y := loadI64x4(&c), loadI64x4(&t), loadI64x4(&e)
	return storeI64x4[V](y.Xor(y.Xor(x).And(m))), true
}

// simdAny tests the whole register against zero: a lane is non-zero exactly
// when one of the words overlapping it is.
func simdAny[V any](v V) (res, ok bool) {
	if !hasAVX2 || unsafe.Sizeof(v) != 32 {
		return false, false
	}
	eq := loadI64x4(&v).Equal(archsimd.BroadcastInt64x4(0))
	return eq.ToBits() != 0xf, true
}

// simdAll needs a comparison at the lane width, so only 32- and 64-bit
// lanes are lowered.
func simdAll[T Lanes, V any](v V) (res, ok bool) {
	if !hasAVX2 || unsafe.Sizeof(v) != 32 {
		return false, false
	}
	switch bitWidth[T]() {
	case 32:
		return loadI32x8(&v).Equal(archsimd.BroadcastInt32x8(0)).ToBits() == 0, true
	case 64:
		return loadI64x4(&v).Equal(archsimd.BroadcastInt64x4(0)).ToBits() == 0, true
	}
	return false, false
}

func simdSaturatedAdd[V any](a, b V) (V, bool) {
	if !hasAVX2 {
		return a, false
	}
	if _, ok := any(a).(Vec16[uint8]); !ok {
		return a, false
	}
	x := archsimd.LoadUint8x16Slice(lanesOf[uint8](&a))
	y := archsimd.LoadUint8x16Slice(lanesOf[uint8](&b))
	var r V
	x.AddSaturated(y).StoreSlice(lanesOf[uint8](&r))
	return r, true
}
