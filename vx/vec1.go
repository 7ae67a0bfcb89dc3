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

// Vec1 operates on its single lane directly; it is where every recursive
// operation ends.

// Len returns 1.
func (v Vec1[T]) Len() int { return 1 }

// Lane returns the value of lane i, which must be 0.
func (v Vec1[T]) Lane(i int) T {
	checkLane(i, 1)
	return v.Val
}

// SetLane sets lane i, which must be 0.
func (v *Vec1[T]) SetLane(i int, x T) {
	checkLane(i, 1)
	v.Val = x
}

// Store writes the lane to dst[0].
func (v Vec1[T]) Store(dst []T) {
	checkLen("Store", len(dst), 1)
	dst[0] = v.Val
}

// Lanes returns a copy of the lanes.
func (v Vec1[T]) Lanes() []T { return []T{v.Val} }

func (v Vec1[T]) Add(w Vec1[T]) Vec1[T] { return Vec1[T]{addLane(v.Val, w.Val)} }
func (v Vec1[T]) Sub(w Vec1[T]) Vec1[T] { return Vec1[T]{subLane(v.Val, w.Val)} }
func (v Vec1[T]) Mul(w Vec1[T]) Vec1[T] { return Vec1[T]{mulLane(v.Val, w.Val)} }
func (v Vec1[T]) Div(w Vec1[T]) Vec1[T] { return Vec1[T]{divLane(v.Val, w.Val)} }
func (v Vec1[T]) Neg() Vec1[T]          { return Vec1[T]{negLane(v.Val)} }

func (v Vec1[T]) And(w Vec1[T]) Vec1[T]    { return Vec1[T]{andLane(v.Val, w.Val)} }
func (v Vec1[T]) Or(w Vec1[T]) Vec1[T]     { return Vec1[T]{orLane(v.Val, w.Val)} }
func (v Vec1[T]) Xor(w Vec1[T]) Vec1[T]    { return Vec1[T]{xorLane(v.Val, w.Val)} }
func (v Vec1[T]) AndNot(w Vec1[T]) Vec1[T] { return Vec1[T]{andNotLane(v.Val, w.Val)} }
func (v Vec1[T]) Not() Vec1[T]             { return Vec1[T]{notLane(v.Val)} }
func (v Vec1[T]) LogicalNot() Vec1[T]      { return Vec1[T]{logicalNotLane(v.Val)} }

func (v Vec1[T]) Shl(k uint) Vec1[T] { return Vec1[T]{shlLane(v.Val, k)} }
func (v Vec1[T]) Shr(k uint) Vec1[T] { return Vec1[T]{shrLane(v.Val, k)} }

func (v Vec1[T]) Eq(w Vec1[T]) Vec1[T] { return Vec1[T]{eqLane(v.Val, w.Val)} }
func (v Vec1[T]) Ne(w Vec1[T]) Vec1[T] { return Vec1[T]{neLane(v.Val, w.Val)} }
func (v Vec1[T]) Lt(w Vec1[T]) Vec1[T] { return Vec1[T]{ltLane(v.Val, w.Val)} }
func (v Vec1[T]) Le(w Vec1[T]) Vec1[T] { return Vec1[T]{leLane(v.Val, w.Val)} }
func (v Vec1[T]) Gt(w Vec1[T]) Vec1[T] { return Vec1[T]{gtLane(v.Val, w.Val)} }
func (v Vec1[T]) Ge(w Vec1[T]) Vec1[T] { return Vec1[T]{geLane(v.Val, w.Val)} }

// Select returns t where v's bits are set and e elsewhere.
func (v Vec1[T]) Select(t, e Vec1[T]) Vec1[T] {
	return Vec1[T]{selectLane(v.Val, t.Val, e.Val)}
}

// Any reports whether the lane has any bit set.
func (v Vec1[T]) Any() bool { return truthy(v.Val) }

// All reports whether the lane has any bit set.
func (v Vec1[T]) All() bool { return truthy(v.Val) }

func (v Vec1[T]) MinLane() T { return v.Val }
func (v Vec1[T]) MaxLane() T { return v.Val }

func (v Vec1[T]) SaturatedAdd(w Vec1[T]) Vec1[T] { return Vec1[T]{saturatedAdd(v.Val, w.Val)} }
func (v Vec1[T]) SaturatedSub(w Vec1[T]) Vec1[T] { return Vec1[T]{saturatedSub(v.Val, w.Val)} }

func (v Vec1[T]) Sqrt() Vec1[T]  { return Vec1[T]{sqrtLane(v.Val)} }
func (v Vec1[T]) Abs() Vec1[T]   { return Vec1[T]{absLane(v.Val)} }
func (v Vec1[T]) Floor() Vec1[T] { return Vec1[T]{floorLane(v.Val)} }
func (v Vec1[T]) Ceil() Vec1[T]  { return Vec1[T]{ceilLane(v.Val)} }
func (v Vec1[T]) Trunc() Vec1[T] { return Vec1[T]{truncLane(v.Val)} }
func (v Vec1[T]) Round() Vec1[T] { return Vec1[T]{roundLane(v.Val)} }

func (v Vec1[T]) Fma(b, c Vec1[T]) Vec1[T] { return Vec1[T]{fmaLane(v.Val, b.Val, c.Val)} }

func (v Vec1[T]) AddS(x T) Vec1[T]  { return v.Add(Vec1[T]{x}) }
func (v Vec1[T]) SubS(x T) Vec1[T]  { return v.Sub(Vec1[T]{x}) }
func (v Vec1[T]) MulS(x T) Vec1[T]  { return v.Mul(Vec1[T]{x}) }
func (v Vec1[T]) DivS(x T) Vec1[T]  { return v.Div(Vec1[T]{x}) }
func (v Vec1[T]) RSubS(x T) Vec1[T] { return Vec1[T]{x}.Sub(v) }
func (v Vec1[T]) RDivS(x T) Vec1[T] { return Vec1[T]{x}.Div(v) }
func (v Vec1[T]) AndS(x T) Vec1[T]  { return v.And(Vec1[T]{x}) }
func (v Vec1[T]) OrS(x T) Vec1[T]   { return v.Or(Vec1[T]{x}) }
func (v Vec1[T]) XorS(x T) Vec1[T]  { return v.Xor(Vec1[T]{x}) }
func (v Vec1[T]) EqS(x T) Vec1[T]   { return v.Eq(Vec1[T]{x}) }
func (v Vec1[T]) NeS(x T) Vec1[T]   { return v.Ne(Vec1[T]{x}) }
func (v Vec1[T]) LtS(x T) Vec1[T]   { return v.Lt(Vec1[T]{x}) }
func (v Vec1[T]) LeS(x T) Vec1[T]   { return v.Le(Vec1[T]{x}) }
func (v Vec1[T]) GtS(x T) Vec1[T]   { return v.Gt(Vec1[T]{x}) }
func (v Vec1[T]) GeS(x T) Vec1[T]   { return v.Ge(Vec1[T]{x}) }

func (v *Vec1[T]) AddAssign(w Vec1[T]) { *v = v.Add(w) }
func (v *Vec1[T]) SubAssign(w Vec1[T]) { *v = v.Sub(w) }
func (v *Vec1[T]) MulAssign(w Vec1[T]) { *v = v.Mul(w) }
func (v *Vec1[T]) DivAssign(w Vec1[T]) { *v = v.Div(w) }
func (v *Vec1[T]) AndAssign(w Vec1[T]) { *v = v.And(w) }
func (v *Vec1[T]) OrAssign(w Vec1[T])  { *v = v.Or(w) }
func (v *Vec1[T]) XorAssign(w Vec1[T]) { *v = v.Xor(w) }
func (v *Vec1[T]) ShlAssign(k uint)    { *v = v.Shl(k) }
func (v *Vec1[T]) ShrAssign(k uint)    { *v = v.Shr(k) }

// Min returns w if w < v, else v.
func (v Vec1[T]) Min(w Vec1[T]) Vec1[T] { return w.Lt(v).Select(w, v) }

// Max returns w if v < w, else v.
func (v Vec1[T]) Max(w Vec1[T]) Vec1[T] { return v.Lt(w).Select(w, v) }

// Pin clamps v to [lo, hi].
func (v Vec1[T]) Pin(lo, hi Vec1[T]) Vec1[T] { return lo.Max(v.Min(hi)) }

func (v Vec1[T]) MinS(x T) Vec1[T]  { return v.Min(Vec1[T]{x}) }
func (v Vec1[T]) MaxS(x T) Vec1[T]  { return v.Max(Vec1[T]{x}) }
func (v Vec1[T]) RMinS(x T) Vec1[T] { return Vec1[T]{x}.Min(v) }
func (v Vec1[T]) RMaxS(x T) Vec1[T] { return Vec1[T]{x}.Max(v) }

func (v Vec1[T]) Dot(w Vec1[T]) T { return v.Mul(w).Val }

func (v Vec1[T]) Length() T { return T(math.Sqrt(float64(v.Dot(v)))) }

func (v Vec1[T]) Normalize() Vec1[T] { return v.DivS(v.Length()) }

func (v Vec1[T]) Fract() Vec1[T] { return v.Sub(v.Floor()) }

// IsFinite reports whether the lane is neither infinite nor NaN.
func (v Vec1[T]) IsFinite() bool {
	d := v.Dot(Vec1[T]{})
	return d*0 == 0
}

// Permute returns the lanes of v in the order given by idx, which must hold
// exactly one index.
func (v Vec1[T]) Permute(idx ...int) Vec1[T] {
	if len(idx) != 1 {
		panic("vx: Permute needs one index per lane")
	}
	checkLane(idx[0], 1)
	return v
}

func (v Vec1[T]) stridedLoad2(src []T) (Vec1[T], Vec1[T]) {
	return Vec1[T]{src[0]}, Vec1[T]{src[1]}
}

func (v Vec1[T]) stridedLoad4(src []T) (Vec1[T], Vec1[T], Vec1[T], Vec1[T]) {
	return Vec1[T]{src[0]}, Vec1[T]{src[1]}, Vec1[T]{src[2]}, Vec1[T]{src[3]}
}
