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

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vector is implemented by every vector shape: Vec1[T] and Pair[H, T] for
// any H that is itself a Vector. V is the implementing type.
//
// The interface is sealed; the only implementations are the ones in this
// package.
type Vector[V any, T Lanes] interface {
	// Len returns the lane count.
	Len() int
	// Lane returns lane i. It panics if i is outside [0, Len()).
	Lane(i int) T

	Add(w V) V
	Sub(w V) V
	Mul(w V) V
	Div(w V) V
	Neg() V

	And(w V) V
	Or(w V) V
	Xor(w V) V
	AndNot(w V) V
	Not() V
	LogicalNot() V

	Shl(k uint) V
	Shr(k uint) V

	Eq(w V) V
	Ne(w V) V
	Lt(w V) V
	Le(w V) V
	Gt(w V) V
	Ge(w V) V

	// Select treats the receiver as a mask and picks t's bits where the
	// mask bits are set and e's bits elsewhere.
	Select(t, e V) V
	Any() bool
	All() bool

	MinLane() T
	MaxLane() T

	SaturatedAdd(w V) V
	SaturatedSub(w V) V

	Sqrt() V
	Abs() V
	Floor() V
	Ceil() V
	Trunc() V
	Round() V
	Fma(b, c V) V

	stridedLoad2(src []T) (V, V)
	stridedLoad4(src []T) (V, V, V, V)
}

// Vec1 is a vector of one lane. It is the base of the recursive shapes.
type Vec1[T Lanes] struct {
	Val T
}

// Pair is a vector made of two equal halves. Lanes of Lo come first in
// memory and in lane order, followed by the lanes of Hi.
//
// Pair values have no padding: the size of a Pair is exactly the lane count
// times the size of T, and the lanes can be viewed as a contiguous []T.
type Pair[H Vector[H, T], T Lanes] struct {
	Lo, Hi H
}

// Power-of-two shapes.
type (
	Vec2[T Lanes]  = Pair[Vec1[T], T]
	Vec4[T Lanes]  = Pair[Vec2[T], T]
	Vec8[T Lanes]  = Pair[Vec4[T], T]
	Vec16[T Lanes] = Pair[Vec8[T], T]
)

// Common shapes.
type (
	Float2  = Vec2[float32]
	Float4  = Vec4[float32]
	Float8  = Vec8[float32]
	Double2 = Vec2[float64]
	Double4 = Vec4[float64]
	Int4    = Vec4[int32]
	Int8    = Vec8[int32]
	Uint4   = Vec4[uint32]
	Byte4   = Vec4[uint8]
	Byte8   = Vec8[uint8]
	Byte16  = Vec16[uint8]
	Half4   = Vec4[uint16]
	Half8   = Vec8[uint16]
)
