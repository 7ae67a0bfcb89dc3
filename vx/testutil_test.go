package vx

import (
	"math"
	"math/rand/v2"
	"testing"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x5eed, 0xface))
}

// specials are the edge values every lane type is tested with.
func specials[T Lanes]() []T {
	if !isFloat[T]() {
		return []T{0, 1, 2, 7, fromBits[T](math.MaxUint64), fromBits[T](signBit[T]()), fromBits[T](signBit[T]() - 1)}
	}
	fs := []float64{0, math.Copysign(0, -1), 1, -1, 0.5, -3.75, 65504, 65520, 1e-8,
		math.Inf(1), math.Inf(-1), math.NaN()}
	out := make([]T, 0, len(fs)+3)
	for _, f := range fs {
		out = append(out, T(f))
	}
	// Smallest subnormal, largest finite, smallest normal.
	if bitWidth[T]() == 32 {
		return append(out, fromBits[T](1), fromBits[T](0x7f7fffff), fromBits[T](0x00800000))
	}
	return append(out, fromBits[T](1), fromBits[T](0x7fefffffffffffff), fromBits[T](0x0010000000000000))
}

// sample returns n lane values: a mix of edge values and random bit patterns.
func sample[T Lanes](r *rand.Rand, n int) []T {
	sp := specials[T]()
	out := make([]T, n)
	for i := range out {
		if r.IntN(3) == 0 {
			out[i] = sp[r.IntN(len(sp))]
			continue
		}
		out[i] = fromBits[T](r.Uint64())
	}
	return out
}

func vecOf[V Vector[V, T], T Lanes](l []T) V {
	return Load[V](l)
}

func lanesOfVec[V Vector[V, T], T Lanes](v V) []T {
	out := make([]T, v.Len())
	for i := range out {
		out[i] = v.Lane(i)
	}
	return out
}

func isNaN[T Lanes](x T) bool { return x != x }

// checkLanes compares lane bit patterns. With exact false, any NaN matches
// any other NaN: hardware and scalar code may pick different payloads when
// both operands are NaN.
func checkLanes[T Lanes](t *testing.T, name string, want, got []T, exact bool) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("%s: got %d lanes, want %d", name, len(got), len(want))
	}
	for i := range want {
		if toBits(want[i]) == toBits(got[i]) {
			continue
		}
		if !exact && isNaN(want[i]) && isNaN(got[i]) {
			continue
		}
		t.Errorf("%s: lane %d: got %v (%#x), want %v (%#x)", name, i, got[i], toBits(got[i]), want[i], toBits(want[i]))
	}
}
