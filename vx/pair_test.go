package vx

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFloat4(t *testing.T) {
	got := Of4[float32](1, 2, 3, 4).Add(Of4[float32](5, 6, 7, 8))
	want := []float32{6, 8, 10, 12}
	if diff := cmp.Diff(want, got.Lanes()); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}
}

func TestArithmeticInt32(t *testing.T) {
	a := Of4[int32](10, -20, 30, 40)
	b := Of4[int32](3, 4, -5, 6)

	tests := []struct {
		name string
		got  Vec4[int32]
		want []int32
	}{
		{"Add", a.Add(b), []int32{13, -16, 25, 46}},
		{"Sub", a.Sub(b), []int32{7, -24, 35, 34}},
		{"Mul", a.Mul(b), []int32{30, -80, -150, 240}},
		{"Div", a.Div(b), []int32{3, -5, -6, 6}},
		{"Neg", a.Neg(), []int32{-10, 20, -30, -40}},
		{"AddS", a.AddS(1), []int32{11, -19, 31, 41}},
		{"RSubS", a.RSubS(100), []int32{90, 120, 70, 60}},
		{"RDivS", b.RDivS(60), []int32{20, 15, -12, 10}},
		{"And", a.And(b), []int32{10 & 3, -20 & 4, 30 & -5, 40 & 6}},
		{"Or", a.Or(b), []int32{10 | 3, -20 | 4, 30 | -5, 40 | 6}},
		{"Xor", a.Xor(b), []int32{10 ^ 3, -20 ^ 4, 30 ^ -5, 40 ^ 6}},
		{"AndNot", a.AndNot(b), []int32{10 &^ 3, -20 &^ 4, 30 &^ -5, 40 &^ 6}},
		{"Not", a.Not(), []int32{^10, ^-20, ^30, ^40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Lanes())
		})
	}
}

func TestComparisonMasks(t *testing.T) {
	a := Of4[int32](1, 2, 3, 4)
	b := Of4[int32](4, 2, 1, 4)

	tests := []struct {
		name string
		got  Vec4[int32]
		want []int32
	}{
		{"Eq", a.Eq(b), []int32{0, -1, 0, -1}},
		{"Ne", a.Ne(b), []int32{-1, 0, -1, 0}},
		{"Lt", a.Lt(b), []int32{-1, 0, 0, 0}},
		{"Le", a.Le(b), []int32{-1, -1, 0, -1}},
		{"Gt", a.Gt(b), []int32{0, 0, -1, 0}},
		{"Ge", a.Ge(b), []int32{0, -1, -1, -1}},
		{"LogicalNot", Of4[int32](0, 1, -1, 0).LogicalNot(), []int32{-1, 0, 0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Lanes())
		})
	}
}

func TestFloatMaskBits(t *testing.T) {
	nan := float32(math.NaN())
	negZero := float32(math.Copysign(0, -1))
	x := Of4[float32](1, nan, 3, negZero)
	y := Of4[float32](2, nan, 3, 0)

	lt := BitCast[Vec4[int32]](x.Lt(y))
	assert.Equal(t, []int32{-1, 0, 0, 0}, lt.Lanes())

	eq := BitCast[Vec4[int32]](x.Eq(y))
	assert.Equal(t, []int32{0, 0, -1, -1}, eq.Lanes(), "NaN is unequal to itself and -0 equals 0")

	ne := BitCast[Vec4[int32]](x.Ne(y))
	assert.Equal(t, []int32{-1, -1, 0, 0}, ne.Lanes())

	d := BitCast[Vec4[int64]](Of4(1.0, 2.0, 3.0, 4.0).GeS(3))
	assert.Equal(t, []int64{0, 0, -1, -1}, d.Lanes())
}

func TestShifts(t *testing.T) {
	s := Of4[int8](-128, -1, 64, 1)
	assert.Equal(t, []int8{-64, -1, 32, 0}, s.Shr(1).Lanes(), "signed shift is arithmetic")
	assert.Equal(t, []int8{-1, -1, 0, 0}, s.Shr(8).Lanes())
	assert.Equal(t, []int8{0, -2, -128, 2}, s.Shl(1).Lanes())

	u := Of4[uint8](128, 255, 64, 1)
	assert.Equal(t, []uint8{64, 127, 32, 0}, u.Shr(1).Lanes(), "unsigned shift is logical")
	assert.Equal(t, []uint8{0, 0, 0, 0}, u.Shl(8).Lanes())

	w := Of2[uint64](1, 1<<63)
	assert.Equal(t, []uint64{1 << 40, 0}, w.Shl(40).Lanes())

	require.Panics(t, func() { Of4[float32](1, 2, 3, 4).Shl(1) })
	require.Panics(t, func() { Of1[float64](1).Shr(1) })
}

func TestSelect(t *testing.T) {
	a := Of8[float32](1, 2, 3, 4, 5, 6, 7, 8)
	b := Splat8[float32](4.5)
	got := IfThenElse(a.Lt(b), a, b)
	assert.Equal(t, []float32{1, 2, 3, 4, 4.5, 4.5, 4.5, 4.5}, got.Lanes())

	// Partial masks pick individual bits.
	m := Of4[uint16](0xff00, 0x00ff, 0, 0xffff)
	sel := m.Select(Splat4[uint16](0x1234), Splat4[uint16](0xabcd))
	assert.Equal(t, []uint16{0x12cd, 0xab34, 0xabcd, 0x1234}, sel.Lanes())
}

func TestCompoundAssign(t *testing.T) {
	v := Of4[int32](1, 2, 3, 4)
	v.AddAssign(Splat4[int32](10))
	v.MulAssign(Splat4[int32](2))
	v.SubAssign(Splat4[int32](2))
	v.ShlAssign(1)
	v.ShrAssign(2)
	v.XorAssign(Splat4[int32](1))
	v.OrAssign(Splat4[int32](0x100))
	v.AndAssign(Splat4[int32](0x1ff))
	v.DivAssign(Splat4[int32](1))
	assert.Equal(t, []int32{0x10b, 0x10a, 0x10d, 0x10c}, v.Lanes())

	v.SetLane(2, 7)
	assert.Equal(t, int32(7), v.Lane(2))

	var one Vec1[float64]
	one.AddAssign(Vec1[float64]{2.5})
	one.MulAssign(Vec1[float64]{2})
	assert.Equal(t, 5.0, one.Val)
}

// testPathEquivalence checks every lane-wise operation of V against the same
// operation applied to each lane as a Vec1, and against recursion into the
// halves through Lo and Hi.
func testPathEquivalence[V Vector[V, T], T Lanes](t *testing.T) {
	r := newRand()
	for iter := range 50 {
		var zero V
		n := zero.Len()
		a := vecOf[V](sample[T](r, n))
		b := vecOf[V](sample[T](r, n))
		if iter == 0 {
			b = a
		}
		nonzero := b
		if !isFloat[T]() {
			nonzero = b.Eq(zero).Select(vecOf[V](fill[T](n, 1)), b)
		}

		binary := []struct {
			name  string
			vec   func(V, V) V
			one   func(Vec1[T], Vec1[T]) Vec1[T]
			exact bool
		}{
			{"Add", V.Add, Vec1[T].Add, false},
			{"Sub", V.Sub, Vec1[T].Sub, false},
			{"Mul", V.Mul, Vec1[T].Mul, false},
			{"And", V.And, Vec1[T].And, true},
			{"Or", V.Or, Vec1[T].Or, true},
			{"Xor", V.Xor, Vec1[T].Xor, true},
			{"AndNot", V.AndNot, Vec1[T].AndNot, true},
			{"Eq", V.Eq, Vec1[T].Eq, true},
			{"Ne", V.Ne, Vec1[T].Ne, true},
			{"Lt", V.Lt, Vec1[T].Lt, true},
			{"Le", V.Le, Vec1[T].Le, true},
			{"Gt", V.Gt, Vec1[T].Gt, true},
			{"Ge", V.Ge, Vec1[T].Ge, true},
			{"SaturatedAdd", V.SaturatedAdd, Vec1[T].SaturatedAdd, false},
			{"SaturatedSub", V.SaturatedSub, Vec1[T].SaturatedSub, false},
		}
		for _, op := range binary {
			want := make([]T, n)
			for i := range want {
				want[i] = op.one(Vec1[T]{a.Lane(i)}, Vec1[T]{b.Lane(i)}).Val
			}
			checkLanes(t, op.name, want, lanesOfVec(op.vec(a, b)), op.exact)
		}

		div := make([]T, n)
		for i := range div {
			div[i] = Vec1[T]{a.Lane(i)}.Div(Vec1[T]{nonzero.Lane(i)}).Val
		}
		checkLanes(t, "Div", div, lanesOfVec(a.Div(nonzero)), false)

		unary := []struct {
			name  string
			vec   func(V) V
			one   func(Vec1[T]) Vec1[T]
			exact bool
		}{
			{"Neg", V.Neg, Vec1[T].Neg, true},
			{"Not", V.Not, Vec1[T].Not, true},
			{"LogicalNot", V.LogicalNot, Vec1[T].LogicalNot, true},
			{"Abs", V.Abs, Vec1[T].Abs, true},
			{"Floor", V.Floor, Vec1[T].Floor, false},
			{"Ceil", V.Ceil, Vec1[T].Ceil, false},
			{"Trunc", V.Trunc, Vec1[T].Trunc, false},
			{"Round", V.Round, Vec1[T].Round, false},
		}
		if isFloat[T]() {
			unary = append(unary, struct {
				name  string
				vec   func(V) V
				one   func(Vec1[T]) Vec1[T]
				exact bool
			}{"Sqrt", V.Sqrt, Vec1[T].Sqrt, false})
		}
		for _, op := range unary {
			want := make([]T, n)
			for i := range want {
				want[i] = op.one(Vec1[T]{a.Lane(i)}).Val
			}
			checkLanes(t, op.name, want, lanesOfVec(op.vec(a)), op.exact)
		}

		if !isFloat[T]() {
			for _, k := range []uint{0, 1, 3, bitWidth[T]() - 1, bitWidth[T](), 70} {
				shl, shr := make([]T, n), make([]T, n)
				for i := range shl {
					shl[i] = Vec1[T]{a.Lane(i)}.Shl(k).Val
					shr[i] = Vec1[T]{a.Lane(i)}.Shr(k).Val
				}
				checkLanes(t, fmt.Sprintf("Shl(%d)", k), shl, lanesOfVec(a.Shl(k)), true)
				checkLanes(t, fmt.Sprintf("Shr(%d)", k), shr, lanesOfVec(a.Shr(k)), true)
			}
		}

		mask := a.Lt(b)
		sel := make([]T, n)
		for i := range sel {
			sel[i] = Vec1[T]{mask.Lane(i)}.Select(Vec1[T]{a.Lane(i)}, Vec1[T]{b.Lane(i)}).Val
		}
		checkLanes(t, "Select", sel, lanesOfVec(mask.Select(a, b)), true)

		anyLane, allLanes := false, true
		for i := range n {
			anyLane = anyLane || Vec1[T]{a.Lane(i)}.Any()
			allLanes = allLanes && Vec1[T]{a.Lane(i)}.All()
		}
		assert.Equal(t, anyLane, a.Any(), "Any")
		assert.Equal(t, allLanes, a.All(), "All")
		assert.Equal(t, anyLane, mask.Select(a, zero).Any() || mask.LogicalNot().Select(a, zero).Any(), "Any of split masks")

		checkLanes(t, "MinLane", []T{refMinLane(lanesOfVec(a))}, []T{a.MinLane()}, true)
		checkLanes(t, "MaxLane", []T{refMaxLane(lanesOfVec(a))}, []T{a.MaxLane()}, true)
	}
}

func fill[T Lanes](n int, x T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = x
	}
	return out
}

func refMinLane[T Lanes](l []T) T {
	if len(l) == 1 {
		return l[0]
	}
	h := len(l) / 2
	return minLane(refMinLane(l[:h]), refMinLane(l[h:]))
}

func refMaxLane[T Lanes](l []T) T {
	if len(l) == 1 {
		return l[0]
	}
	h := len(l) / 2
	return maxLane(refMaxLane(l[:h]), refMaxLane(l[h:]))
}

func TestPathEquivalence(t *testing.T) {
	t.Run("Vec2[float32]", testPathEquivalence[Vec2[float32], float32])
	t.Run("Vec4[float32]", testPathEquivalence[Vec4[float32], float32])
	t.Run("Vec8[float32]", testPathEquivalence[Vec8[float32], float32])
	t.Run("Vec16[float32]", testPathEquivalence[Vec16[float32], float32])
	t.Run("Vec2[float64]", testPathEquivalence[Vec2[float64], float64])
	t.Run("Vec4[float64]", testPathEquivalence[Vec4[float64], float64])
	t.Run("Vec8[float64]", testPathEquivalence[Vec8[float64], float64])
	t.Run("Vec4[int32]", testPathEquivalence[Vec4[int32], int32])
	t.Run("Vec8[int32]", testPathEquivalence[Vec8[int32], int32])
	t.Run("Vec16[int32]", testPathEquivalence[Vec16[int32], int32])
	t.Run("Vec4[uint32]", testPathEquivalence[Vec4[uint32], uint32])
	t.Run("Vec8[int16]", testPathEquivalence[Vec8[int16], int16])
	t.Run("Vec16[uint16]", testPathEquivalence[Vec16[uint16], uint16])
	t.Run("Vec8[int8]", testPathEquivalence[Vec8[int8], int8])
	t.Run("Vec16[uint8]", testPathEquivalence[Vec16[uint8], uint8])
	t.Run("Vec2[int64]", testPathEquivalence[Vec2[int64], int64])
	t.Run("Vec4[int64]", testPathEquivalence[Vec4[int64], int64])
	t.Run("Vec4[uint64]", testPathEquivalence[Vec4[uint64], uint64])
}

// testSplitJoin checks that an 8-lane operation equals the same operation on
// its two 4-lane halves, joined.
func testSplitJoin[T Lanes](t *testing.T) {
	r := newRand()
	for range 20 {
		a := Load8(sample[T](r, 8))
		b := Load8(sample[T](r, 8))
		ops := []struct {
			name string
			full func(a, b Vec8[T]) Vec8[T]
			half func(a, b Vec4[T]) Vec4[T]
		}{
			{"Add", Vec8[T].Add, Vec4[T].Add},
			{"Sub", Vec8[T].Sub, Vec4[T].Sub},
			{"Mul", Vec8[T].Mul, Vec4[T].Mul},
			{"Xor", Vec8[T].Xor, Vec4[T].Xor},
			{"Lt", Vec8[T].Lt, Vec4[T].Lt},
			{"Eq", Vec8[T].Eq, Vec4[T].Eq},
			{"Min", Vec8[T].Min, Vec4[T].Min},
			{"Max", Vec8[T].Max, Vec4[T].Max},
			{"SaturatedAdd", Vec8[T].SaturatedAdd, Vec4[T].SaturatedAdd},
		}
		for _, op := range ops {
			joined := Join8(op.half(a.Lo, b.Lo), op.half(a.Hi, b.Hi))
			checkLanes(t, op.name, joined.Lanes(), op.full(a, b).Lanes(), false)
		}
	}
}

func TestSplitJoin(t *testing.T) {
	t.Run("float32", testSplitJoin[float32])
	t.Run("float64", testSplitJoin[float64])
	t.Run("int32", testSplitJoin[int32])
	t.Run("uint8", testSplitJoin[uint8])
	t.Run("int16", testSplitJoin[int16])
}

func TestMathLanes(t *testing.T) {
	v := Of4[float32](-1.5, 2.5, -0.25, 4)
	assert.Equal(t, []float32{1.5, 2.5, 0.25, 4}, v.Abs().Lanes())
	assert.Equal(t, []float32{-2, 2, -1, 4}, v.Floor().Lanes())
	assert.Equal(t, []float32{-1, 3, 0, 4}, v.Ceil().Lanes())
	assert.Equal(t, []float32{-1, 2, 0, 4}, v.Trunc().Lanes())
	assert.Equal(t, []float32{-2, 3, 0, 4}, v.Round().Lanes())
	assert.Equal(t, []float32{0.5, 0.5, 0.75, 0}, v.Fract().Lanes())
	assert.Equal(t, []float32{1, 2, 3, 4}, Of4[float32](1, 4, 9, 16).Sqrt().Lanes())
	assert.Equal(t, []float32{-0.5, 3.5, 0.75, 5}, v.Fma(Splat4[float32](1), Splat4[float32](1)).Lanes())

	i := Of4[int32](-3, 3, -2147483647, 0)
	assert.Equal(t, []int32{3, 3, 2147483647, 0}, i.Abs().Lanes())
	assert.Equal(t, i.Lanes(), i.Floor().Lanes(), "integer lanes do not round")
}

func TestPermute(t *testing.T) {
	v := Of4[int32](10, 20, 30, 40)
	assert.Equal(t, []int32{40, 30, 20, 10}, v.Permute(3, 2, 1, 0).Lanes())
	assert.Equal(t, []int32{10, 10, 20, 20}, v.Permute(0, 0, 1, 1).Lanes())
	require.Panics(t, func() { v.Permute(0, 1) })
	require.Panics(t, func() { v.Permute(0, 1, 2, 4) })
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 2 3 4]", Of4[int32](1, 2, 3, 4).String())
}
