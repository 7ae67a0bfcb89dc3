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

// Free-function forms of the kernels. They accept any shape, including
// Vec1.

type selecter[V any] interface {
	Select(t, e V) V
}

type orderer[V any] interface {
	selecter[V]
	Lt(w V) V
}

type reducer interface {
	Any() bool
	All() bool
}

// IfThenElse returns, per lane, t's bits where cond's bits are set and e's
// bits where they are clear. cond is normally a comparison result.
func IfThenElse[V selecter[V]](cond, t, e V) V {
	return cond.Select(t, e)
}

// Min returns IfThenElse(y.Lt(x), y, x): Min(NaN, 5) is NaN and Min(5, NaN)
// is 5.
func Min[V orderer[V]](x, y V) V {
	return IfThenElse(y.Lt(x), y, x)
}

// Max returns IfThenElse(x.Lt(y), y, x): Max(NaN, 5) is NaN and Max(5, NaN)
// is 5.
func Max[V orderer[V]](x, y V) V {
	return IfThenElse(x.Lt(y), y, x)
}

// Pin clamps x to [lo, hi] as Max(lo, Min(x, hi)), so NaN lanes become lo.
func Pin[V orderer[V]](x, lo, hi V) V {
	return Max(lo, Min(x, hi))
}

// Any reports whether some lane of m has a bit set.
func Any(m reducer) bool { return m.Any() }

// All reports whether every lane of m has a bit set.
func All(m reducer) bool { return m.All() }

// Cross returns the z component of the 2D cross product, a.x*b.y - a.y*b.x.
func Cross[T Lanes](a, b Vec2[T]) T {
	x := a.Mul(b.Permute(1, 0))
	return x.Lo.Val - x.Hi.Val
}

// Load reads one vector's worth of lanes from the front of src. It panics
// if src is too short.
//
//	v := vx.Load[vx.Vec8[uint8]](pixels)
func Load[V Vector[V, T], T Lanes](src []T) V {
	var v V
	l := lanesOf[T](&v)
	checkLen("Load", len(src), len(l))
	copy(l, src)
	return v
}

// StridedLoad2 de-interleaves 2*N values from src: lane i of a is src[2i]
// and lane i of b is src[2i+1].
func StridedLoad2[V Vector[V, T], T Lanes](src []T) (a, b V) {
	n := a.Len()
	checkLen("StridedLoad2", len(src), 2*n)
	if !flat(a) {
		return a.stridedLoad2(src)
	}
	la, lb := lanesOf[T](&a), lanesOf[T](&b)
	for i := range n {
		la[i] = src[2*i]
		lb[i] = src[2*i+1]
	}
	return a, b
}

// StridedLoad4 de-interleaves 4*N values from src, for example RGBA pixels
// into per-channel vectors: lane i of a, b, c and d is src[4i], src[4i+1],
// src[4i+2] and src[4i+3].
func StridedLoad4[V Vector[V, T], T Lanes](src []T) (a, b, c, d V) {
	n := a.Len()
	checkLen("StridedLoad4", len(src), 4*n)
	if !flat(a) {
		return a.stridedLoad4(src)
	}
	la, lb, lc, ld := lanesOf[T](&a), lanesOf[T](&b), lanesOf[T](&c), lanesOf[T](&d)
	for i := range n {
		la[i] = src[4*i]
		lb[i] = src[4*i+1]
		lc[i] = src[4*i+2]
		ld[i] = src[4*i+3]
	}
	return a, b, c, d
}
