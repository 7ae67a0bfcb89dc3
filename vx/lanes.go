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
	"unsafe"
)

// This file holds the per-lane scalar operations shared by every dispatch
// path, and the bit-level views of lanes and vectors.

// BitCast reinterprets the bits of s as a D. D and S must have the same size;
// BitCast panics otherwise. Use it to view a float mask as integer lanes:
//
//	m := vx.BitCast[vx.Vec4[int32]](x.Lt(y))
func BitCast[D, S any](s S) D {
	var d D
	if unsafe.Sizeof(d) != unsafe.Sizeof(s) {
		panic(fmt.Sprintf("vx: BitCast between %T (%d bytes) and %T (%d bytes)",
			d, unsafe.Sizeof(d), s, unsafe.Sizeof(s)))
	}
	copy(bytesOf(&d), bytesOf(&s))
	return d
}

func bytesOf[V any](v *V) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// lanesOf views the contiguous lanes of v.
func lanesOf[T Lanes, V any](v *V) []T {
	var t T
	return unsafe.Slice((*T)(unsafe.Pointer(v)), unsafe.Sizeof(*v)/unsafe.Sizeof(t))
}

func laneCount[T Lanes, V any](v V) int {
	var t T
	return int(unsafe.Sizeof(v) / unsafe.Sizeof(t))
}

func checkLane(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("vx: lane index %d out of range [0,%d)", i, n))
	}
}

func checkLen(op string, have, need int) {
	if have < need {
		panic(fmt.Sprintf("vx: %s needs %d lanes, slice has %d", op, need, have))
	}
}

func splatOf[V any, T Lanes](x T) V {
	var r V
	l := lanesOf[T](&r)
	for i := range l {
		l[i] = x
	}
	return r
}

func mapLanes[V any, T Lanes](v V, f func(T) T) V {
	var r V
	src, dst := lanesOf[T](&v), lanesOf[T](&r)
	for i := range dst {
		dst[i] = f(src[i])
	}
	return r
}

func zipLanes[V any, T Lanes](v, w V, f func(a, b T) T) V {
	var r V
	a, b, dst := lanesOf[T](&v), lanesOf[T](&w), lanesOf[T](&r)
	for i := range dst {
		dst[i] = f(a[i], b[i])
	}
	return r
}

func zip3Lanes[V any, T Lanes](u, v, w V, f func(a, b, c T) T) V {
	var r V
	a, b, c, dst := lanesOf[T](&u), lanesOf[T](&v), lanesOf[T](&w), lanesOf[T](&r)
	for i := range dst {
		dst[i] = f(a[i], b[i], c[i])
	}
	return r
}

// toBits returns the bit pattern of x, zero-extended to 64 bits.
func toBits[T Lanes](x T) uint64 {
	p := unsafe.Pointer(&x)
	switch unsafe.Sizeof(x) {
	case 1:
		return uint64(*(*uint8)(p))
	case 2:
		return uint64(*(*uint16)(p))
	case 4:
		return uint64(*(*uint32)(p))
	default:
		return *(*uint64)(p)
	}
}

// fromBits returns the T whose bit pattern is the low bits of u.
func fromBits[T Lanes](u uint64) T {
	var x T
	p := unsafe.Pointer(&x)
	switch unsafe.Sizeof(x) {
	case 1:
		*(*uint8)(p) = uint8(u)
	case 2:
		*(*uint16)(p) = uint16(u)
	case 4:
		*(*uint32)(p) = uint32(u)
	default:
		*(*uint64)(p) = u
	}
	return x
}

func bitWidth[T Lanes]() uint {
	var x T
	return uint(unsafe.Sizeof(x)) * 8
}

func isFloat[T Lanes]() bool {
	var one T = 1
	return one/2 != 0
}

func isSigned[T Lanes]() bool {
	var zero T
	return zero-1 < zero
}

// signBit is the mask of the top bit of a T.
func signBit[T Lanes]() uint64 {
	return 1 << (bitWidth[T]() - 1)
}

// maxValue and minValue are the integer limits of T.
func maxValue[T Integers]() T {
	if isSigned[T]() {
		return fromBits[T](signBit[T]() - 1)
	}
	return fromBits[T](math.MaxUint64)
}

func minValue[T Integers]() T {
	if isSigned[T]() {
		return fromBits[T](signBit[T]())
	}
	return 0
}

// maskOf converts a lane predicate to the mask convention: all bits set for
// true, all bits clear for false.
func maskOf[T Lanes](b bool) T {
	if b {
		return fromBits[T](math.MaxUint64)
	}
	var zero T
	return zero
}

func addLane[T Lanes](a, b T) T { return a + b }
func subLane[T Lanes](a, b T) T { return a - b }
func negLane[T Lanes](a T) T    { return -a }

// mulLane converts explicitly so that a product is never fused with a
// following add.
func mulLane[T Lanes](a, b T) T { return T(a * b) }

// divLane panics on integer division by zero.
func divLane[T Lanes](a, b T) T { return a / b }

func andLane[T Lanes](a, b T) T    { return fromBits[T](toBits(a) & toBits(b)) }
func orLane[T Lanes](a, b T) T     { return fromBits[T](toBits(a) | toBits(b)) }
func xorLane[T Lanes](a, b T) T    { return fromBits[T](toBits(a) ^ toBits(b)) }
func andNotLane[T Lanes](a, b T) T { return fromBits[T](toBits(a) &^ toBits(b)) }
func notLane[T Lanes](a T) T       { return fromBits[T](^toBits(a)) }

func logicalNotLane[T Lanes](a T) T { return maskOf[T](toBits(a) == 0) }

func selectLane[T Lanes](c, t, e T) T {
	m := toBits(c)
	return fromBits[T](m&toBits(t) | ^m&toBits(e))
}

func shlLane[T Lanes](a T, k uint) T {
	if isFloat[T]() {
		panic("vx: shift of floating-point lanes")
	}
	return fromBits[T](toBits(a) << k)
}

// shrLane shifts arithmetically for signed lanes and logically for unsigned
// lanes. Counts of at least the lane width yield all sign bits.
func shrLane[T Lanes](a T, k uint) T {
	if isFloat[T]() {
		panic("vx: shift of floating-point lanes")
	}
	if !isSigned[T]() {
		return fromBits[T](toBits(a) >> k)
	}
	w := 64 - bitWidth[T]()
	s := int64(toBits(a)<<w) >> w
	return fromBits[T](uint64(s >> k))
}

func eqLane[T Lanes](a, b T) T { return maskOf[T](a == b) }
func neLane[T Lanes](a, b T) T { return maskOf[T](a != b) }
func ltLane[T Lanes](a, b T) T { return maskOf[T](a < b) }
func leLane[T Lanes](a, b T) T { return maskOf[T](a <= b) }
func gtLane[T Lanes](a, b T) T { return maskOf[T](a > b) }
func geLane[T Lanes](a, b T) T { return maskOf[T](a >= b) }

// minLane and maxLane prefer a unless b is strictly ordered before (after)
// it, so a NaN in a wins and a NaN in b loses.
func minLane[T Lanes](a, b T) T {
	if b < a {
		return b
	}
	return a
}

func maxLane[T Lanes](a, b T) T {
	if a < b {
		return b
	}
	return a
}

func truthy[T Lanes](a T) bool { return toBits(a) != 0 }
