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

// binOp names the lane-wise binary operations that have intrinsic lowerings.
type binOp uint8

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opAnd
	opOr
	opXor
	opAndNot
	opEq
	opNe
	opLt
	opLe
	opGt
	opGe
)

// bitwise ops do not depend on the lane type.
func (op binOp) bitwise() bool {
	return op >= opAnd && op <= opAndNot
}

// flat reports whether v should be computed with one loop over its lanes
// rather than by recursing into its halves.
func flat[V any](v V) bool {
	return portable && !splitForSIMD(v)
}

// binary applies op to each lane pair: intrinsic first, then a flat loop,
// then recursion into the halves.
func (v Pair[H, T]) binary(op binOp, w Pair[H, T], lane func(a, b T) T, half func(a, b H) H) Pair[H, T] {
	if r, ok := simdBinary(op, v, w); ok {
		return r
	}
	if flat(v) {
		return zipLanes(v, w, lane)
	}
	return Pair[H, T]{half(v.Lo, w.Lo), half(v.Hi, w.Hi)}
}

func (v Pair[H, T]) unary(lane func(a T) T, half func(a H) H) Pair[H, T] {
	if flat(v) {
		return mapLanes(v, lane)
	}
	return Pair[H, T]{half(v.Lo), half(v.Hi)}
}

// Len returns the number of lanes.
func (v Pair[H, T]) Len() int { return 2 * v.Lo.Len() }

// Lane returns the value of lane i. It panics if i is out of range.
func (v Pair[H, T]) Lane(i int) T {
	l := lanesOf[T](&v)
	checkLane(i, len(l))
	return l[i]
}

// SetLane sets lane i to x. It panics if i is out of range.
func (v *Pair[H, T]) SetLane(i int, x T) {
	l := lanesOf[T](v)
	checkLane(i, len(l))
	l[i] = x
}

// Store writes the lanes to dst, which must hold at least Len() values.
func (v Pair[H, T]) Store(dst []T) {
	l := lanesOf[T](&v)
	checkLen("Store", len(dst), len(l))
	copy(dst, l)
}

// Lanes returns a copy of the lanes.
func (v Pair[H, T]) Lanes() []T {
	return append([]T(nil), lanesOf[T](&v)...)
}

// String formats the lanes like a slice.
func (v Pair[H, T]) String() string {
	return fmt.Sprint(lanesOf[T](&v))
}

func (v Pair[H, T]) Add(w Pair[H, T]) Pair[H, T] {
	return v.binary(opAdd, w, addLane[T], H.Add)
}

func (v Pair[H, T]) Sub(w Pair[H, T]) Pair[H, T] {
	return v.binary(opSub, w, subLane[T], H.Sub)
}

func (v Pair[H, T]) Mul(w Pair[H, T]) Pair[H, T] {
	return v.binary(opMul, w, mulLane[T], H.Mul)
}

// Div divides lane-wise. Integer division by zero panics.
func (v Pair[H, T]) Div(w Pair[H, T]) Pair[H, T] {
	return v.binary(opDiv, w, divLane[T], H.Div)
}

func (v Pair[H, T]) Neg() Pair[H, T] { return v.unary(negLane[T], H.Neg) }

// And, Or, Xor, AndNot and Not act on the bit patterns of the lanes, so they
// apply to float lanes as well. AndNot computes v &^ w.

func (v Pair[H, T]) And(w Pair[H, T]) Pair[H, T] {
	return v.binary(opAnd, w, andLane[T], H.And)
}

func (v Pair[H, T]) Or(w Pair[H, T]) Pair[H, T] {
	return v.binary(opOr, w, orLane[T], H.Or)
}

func (v Pair[H, T]) Xor(w Pair[H, T]) Pair[H, T] {
	return v.binary(opXor, w, xorLane[T], H.Xor)
}

func (v Pair[H, T]) AndNot(w Pair[H, T]) Pair[H, T] {
	return v.binary(opAndNot, w, andNotLane[T], H.AndNot)
}

func (v Pair[H, T]) Not() Pair[H, T] { return v.unary(notLane[T], H.Not) }

// LogicalNot sets every bit of the lanes that are zero and clears the rest.
func (v Pair[H, T]) LogicalNot() Pair[H, T] {
	return v.unary(logicalNotLane[T], H.LogicalNot)
}

// Shl shifts integer lanes left by k. It panics for float lanes.
func (v Pair[H, T]) Shl(k uint) Pair[H, T] {
	return v.unary(func(a T) T { return shlLane(a, k) }, func(h H) H { return h.Shl(k) })
}

// Shr shifts integer lanes right by k, arithmetically for signed lanes. It
// panics for float lanes.
func (v Pair[H, T]) Shr(k uint) Pair[H, T] {
	return v.unary(func(a T) T { return shrLane(a, k) }, func(h H) H { return h.Shr(k) })
}

// Comparisons return a mask: every bit of a lane is set where the relation
// holds and clear where it does not. Comparisons involving NaN are false
// except Ne.

func (v Pair[H, T]) Eq(w Pair[H, T]) Pair[H, T] { return v.binary(opEq, w, eqLane[T], H.Eq) }
func (v Pair[H, T]) Ne(w Pair[H, T]) Pair[H, T] { return v.binary(opNe, w, neLane[T], H.Ne) }
func (v Pair[H, T]) Lt(w Pair[H, T]) Pair[H, T] { return v.binary(opLt, w, ltLane[T], H.Lt) }
func (v Pair[H, T]) Le(w Pair[H, T]) Pair[H, T] { return v.binary(opLe, w, leLane[T], H.Le) }
func (v Pair[H, T]) Gt(w Pair[H, T]) Pair[H, T] { return v.binary(opGt, w, gtLane[T], H.Gt) }
func (v Pair[H, T]) Ge(w Pair[H, T]) Pair[H, T] { return v.binary(opGe, w, geLane[T], H.Ge) }

// Select treats v as a mask and returns t's bits where v's bits are set and
// e's bits where they are clear.
func (v Pair[H, T]) Select(t, e Pair[H, T]) Pair[H, T] {
	if r, ok := simdSelect(v, t, e); ok {
		return r
	}
	if flat(v) {
		return zip3Lanes(v, t, e, selectLane[T])
	}
	return Pair[H, T]{v.Lo.Select(t.Lo, e.Lo), v.Hi.Select(t.Hi, e.Hi)}
}

// Any reports whether some lane has a bit set.
func (v Pair[H, T]) Any() bool {
	if r, ok := simdAny(v); ok {
		return r
	}
	if flat(v) {
		for _, x := range lanesOf[T](&v) {
			if truthy(x) {
				return true
			}
		}
		return false
	}
	return v.Lo.Any() || v.Hi.Any()
}

// All reports whether every lane has a bit set.
func (v Pair[H, T]) All() bool {
	if r, ok := simdAll[T](v); ok {
		return r
	}
	if flat(v) {
		for _, x := range lanesOf[T](&v) {
			if !truthy(x) {
				return false
			}
		}
		return true
	}
	return v.Lo.All() && v.Hi.All()
}

// MinLane returns the smallest lane, reducing the halves pairwise with the
// same NaN rule as Min.
func (v Pair[H, T]) MinLane() T { return minLane(v.Lo.MinLane(), v.Hi.MinLane()) }

// MaxLane returns the largest lane, reducing the halves pairwise with the
// same NaN rule as Max.
func (v Pair[H, T]) MaxLane() T { return maxLane(v.Lo.MaxLane(), v.Hi.MaxLane()) }

// SaturatedAdd adds lanes, clamping integer results to the lane type's range
// instead of wrapping. For example, uint8: 250 + 10 = 255.
func (v Pair[H, T]) SaturatedAdd(w Pair[H, T]) Pair[H, T] {
	if r, ok := simdSaturatedAdd(v, w); ok {
		return r
	}
	if flat(v) {
		return zipLanes(v, w, saturatedAdd[T])
	}
	return Pair[H, T]{v.Lo.SaturatedAdd(w.Lo), v.Hi.SaturatedAdd(w.Hi)}
}

// SaturatedSub subtracts lanes, clamping integer results to the lane type's
// range. For example, uint8: 10 - 20 = 0.
func (v Pair[H, T]) SaturatedSub(w Pair[H, T]) Pair[H, T] {
	if flat(v) {
		return zipLanes(v, w, saturatedSub[T])
	}
	return Pair[H, T]{v.Lo.SaturatedSub(w.Lo), v.Hi.SaturatedSub(w.Hi)}
}

func (v Pair[H, T]) Sqrt() Pair[H, T] {
	if r, ok := simdSqrt(v); ok {
		return r
	}
	return v.unary(sqrtLane[T], H.Sqrt)
}

// Abs clears the sign bit of float lanes and negates negative integer lanes.
func (v Pair[H, T]) Abs() Pair[H, T]   { return v.unary(absLane[T], H.Abs) }
func (v Pair[H, T]) Floor() Pair[H, T] { return v.unary(floorLane[T], H.Floor) }
func (v Pair[H, T]) Ceil() Pair[H, T]  { return v.unary(ceilLane[T], H.Ceil) }
func (v Pair[H, T]) Trunc() Pair[H, T] { return v.unary(truncLane[T], H.Trunc) }

// Round rounds float lanes to the nearest integer, halfway cases away from
// zero.
func (v Pair[H, T]) Round() Pair[H, T] { return v.unary(roundLane[T], H.Round) }

// Fma returns v*b + c.
func (v Pair[H, T]) Fma(b, c Pair[H, T]) Pair[H, T] {
	if flat(v) {
		return zip3Lanes(v, b, c, fmaLane[T])
	}
	return Pair[H, T]{v.Lo.Fma(b.Lo, c.Lo), v.Hi.Fma(b.Hi, c.Hi)}
}

// Scalar operands are broadcast to every lane. The R forms put the scalar on
// the left: v.RSubS(x) is x - v.

func (v Pair[H, T]) splat(x T) Pair[H, T] { return splatOf[Pair[H, T]](x) }

func (v Pair[H, T]) AddS(x T) Pair[H, T]  { return v.Add(v.splat(x)) }
func (v Pair[H, T]) SubS(x T) Pair[H, T]  { return v.Sub(v.splat(x)) }
func (v Pair[H, T]) MulS(x T) Pair[H, T]  { return v.Mul(v.splat(x)) }
func (v Pair[H, T]) DivS(x T) Pair[H, T]  { return v.Div(v.splat(x)) }
func (v Pair[H, T]) RSubS(x T) Pair[H, T] { return v.splat(x).Sub(v) }
func (v Pair[H, T]) RDivS(x T) Pair[H, T] { return v.splat(x).Div(v) }
func (v Pair[H, T]) AndS(x T) Pair[H, T]  { return v.And(v.splat(x)) }
func (v Pair[H, T]) OrS(x T) Pair[H, T]   { return v.Or(v.splat(x)) }
func (v Pair[H, T]) XorS(x T) Pair[H, T]  { return v.Xor(v.splat(x)) }
func (v Pair[H, T]) EqS(x T) Pair[H, T]   { return v.Eq(v.splat(x)) }
func (v Pair[H, T]) NeS(x T) Pair[H, T]   { return v.Ne(v.splat(x)) }
func (v Pair[H, T]) LtS(x T) Pair[H, T]   { return v.Lt(v.splat(x)) }
func (v Pair[H, T]) LeS(x T) Pair[H, T]   { return v.Le(v.splat(x)) }
func (v Pair[H, T]) GtS(x T) Pair[H, T]   { return v.Gt(v.splat(x)) }
func (v Pair[H, T]) GeS(x T) Pair[H, T]   { return v.Ge(v.splat(x)) }

func (v *Pair[H, T]) AddAssign(w Pair[H, T]) { *v = v.Add(w) }
func (v *Pair[H, T]) SubAssign(w Pair[H, T]) { *v = v.Sub(w) }
func (v *Pair[H, T]) MulAssign(w Pair[H, T]) { *v = v.Mul(w) }
func (v *Pair[H, T]) DivAssign(w Pair[H, T]) { *v = v.Div(w) }
func (v *Pair[H, T]) AndAssign(w Pair[H, T]) { *v = v.And(w) }
func (v *Pair[H, T]) OrAssign(w Pair[H, T])  { *v = v.Or(w) }
func (v *Pair[H, T]) XorAssign(w Pair[H, T]) { *v = v.Xor(w) }
func (v *Pair[H, T]) ShlAssign(k uint)       { *v = v.Shl(k) }
func (v *Pair[H, T]) ShrAssign(k uint)       { *v = v.Shr(k) }

// Min returns, per lane, w if w < v and v otherwise. A NaN in v is kept and
// a NaN in w is dropped: Min(NaN, 5) is NaN and Min(5, NaN) is 5.
func (v Pair[H, T]) Min(w Pair[H, T]) Pair[H, T] { return w.Lt(v).Select(w, v) }

// Max returns, per lane, w if v < w and v otherwise, with the same NaN rule
// as Min.
func (v Pair[H, T]) Max(w Pair[H, T]) Pair[H, T] { return v.Lt(w).Select(w, v) }

// MinS and MaxS compare against a broadcast scalar with the same NaN rule.
// RMinS and RMaxS put the scalar first: v.RMinS(x) is Min(splat(x), v).
func (v Pair[H, T]) MinS(x T) Pair[H, T]  { return v.Min(v.splat(x)) }
func (v Pair[H, T]) MaxS(x T) Pair[H, T]  { return v.Max(v.splat(x)) }
func (v Pair[H, T]) RMinS(x T) Pair[H, T] { return v.splat(x).Min(v) }
func (v Pair[H, T]) RMaxS(x T) Pair[H, T] { return v.splat(x).Max(v) }

// Pin clamps v to [lo, hi] as lo.Max(v.Min(hi)). NaN lanes become lo.
func (v Pair[H, T]) Pin(lo, hi Pair[H, T]) Pair[H, T] { return lo.Max(v.Min(hi)) }

// Dot returns the sum of the lane products, added in lane order.
func (v Pair[H, T]) Dot(w Pair[H, T]) T {
	ab := v.Mul(w)
	l := lanesOf[T](&ab)
	switch len(l) {
	case 2:
		return l[0] + l[1]
	case 4:
		return l[0] + l[1] + l[2] + l[3]
	}
	sum := l[0]
	for _, x := range l[1:] {
		sum += x
	}
	return sum
}

// Length returns sqrt(v.Dot(v)).
func (v Pair[H, T]) Length() T { return T(math.Sqrt(float64(v.Dot(v)))) }

// Normalize divides v by its length. A zero vector yields NaN lanes.
func (v Pair[H, T]) Normalize() Pair[H, T] { return v.DivS(v.Length()) }

// Fract returns v - v.Floor().
func (v Pair[H, T]) Fract() Pair[H, T] { return v.Sub(v.Floor()) }

// IsFinite reports whether no lane is infinite or NaN.
func (v Pair[H, T]) IsFinite() bool {
	d := v.Dot(Pair[H, T]{})
	return d*0 == 0
}

// Permute returns a vector whose lane i is v's lane idx[i]. idx must have one
// entry per lane.
func (v Pair[H, T]) Permute(idx ...int) Pair[H, T] {
	var r Pair[H, T]
	src, dst := lanesOf[T](&v), lanesOf[T](&r)
	if len(idx) != len(dst) {
		panic(fmt.Sprintf("vx: Permute of %d lanes given %d indices", len(dst), len(idx)))
	}
	for i, j := range idx {
		checkLane(j, len(src))
		dst[i] = src[j]
	}
	return r
}

func (v Pair[H, T]) stridedLoad2(src []T) (a, b Pair[H, T]) {
	n := v.Lo.Len()
	a.Lo, b.Lo = v.Lo.stridedLoad2(src)
	a.Hi, b.Hi = v.Hi.stridedLoad2(src[2*n:])
	return a, b
}

func (v Pair[H, T]) stridedLoad4(src []T) (a, b, c, d Pair[H, T]) {
	n := v.Lo.Len()
	a.Lo, b.Lo, c.Lo, d.Lo = v.Lo.stridedLoad4(src)
	a.Hi, b.Hi, c.Hi, d.Hi = v.Hi.stridedLoad4(src[4*n:])
	return a, b, c, d
}
