package vx

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		name      string
		size      uintptr
		wantSize  uintptr
		align     uintptr
		wantAlign uintptr
	}{
		{"Vec1[float32]", unsafe.Sizeof(Vec1[float32]{}), 4, unsafe.Alignof(Vec1[float32]{}), 4},
		{"Vec2[float32]", unsafe.Sizeof(Vec2[float32]{}), 8, unsafe.Alignof(Vec2[float32]{}), 4},
		{"Vec4[float32]", unsafe.Sizeof(Vec4[float32]{}), 16, unsafe.Alignof(Vec4[float32]{}), 4},
		{"Vec8[float32]", unsafe.Sizeof(Vec8[float32]{}), 32, unsafe.Alignof(Vec8[float32]{}), 4},
		{"Vec16[float32]", unsafe.Sizeof(Vec16[float32]{}), 64, unsafe.Alignof(Vec16[float32]{}), 4},
		{"Vec4[float64]", unsafe.Sizeof(Vec4[float64]{}), 32, unsafe.Alignof(Vec4[float64]{}), unsafe.Alignof(float64(0))},
		{"Vec16[uint8]", unsafe.Sizeof(Vec16[uint8]{}), 16, unsafe.Alignof(Vec16[uint8]{}), 1},
		{"Vec2[uint8]", unsafe.Sizeof(Vec2[uint8]{}), 2, unsafe.Alignof(Vec2[uint8]{}), 1},
		{"Vec8[int16]", unsafe.Sizeof(Vec8[int16]{}), 16, unsafe.Alignof(Vec8[int16]{}), 2},
		{"Vec2[uint64]", unsafe.Sizeof(Vec2[uint64]{}), 16, unsafe.Alignof(Vec2[uint64]{}), unsafe.Alignof(uint64(0))},
	}
	for _, tt := range tests {
		if tt.size != tt.wantSize {
			t.Errorf("Sizeof(%s) = %d, want %d", tt.name, tt.size, tt.wantSize)
		}
		if tt.align != tt.wantAlign {
			t.Errorf("Alignof(%s) = %d, want %d", tt.name, tt.align, tt.wantAlign)
		}
	}
}

func TestLaneOrder(t *testing.T) {
	v := Of8[int32](0, 1, 2, 3, 4, 5, 6, 7)
	assert.Equal(t, []int32{0, 1, 2, 3}, v.Lo.Lanes())
	assert.Equal(t, []int32{4, 5, 6, 7}, v.Hi.Lanes())
	assert.Equal(t, int32(5), v.Hi.Lo.Hi.Val)

	// Lanes are contiguous in memory in index order.
	raw := (*[8]int32)(unsafe.Pointer(&v))
	assert.Equal(t, [8]int32{0, 1, 2, 3, 4, 5, 6, 7}, *raw)

	assert.Equal(t, v, Join8(v.Lo, v.Hi))
}

func TestConstruction(t *testing.T) {
	assert.Equal(t, []float64{2.5, 2.5, 2.5, 2.5}, Splat4(2.5).Lanes())
	assert.Equal(t, []uint8{9}, Splat1[uint8](9).Lanes())
	assert.Equal(t, []int16{1, 2, 0, 0}, Of4[int16](1, 2).Lanes(), "missing lanes are zero")
	assert.Equal(t, make([]float32, 16), Vec16[float32]{}.Lanes())

	src := []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, src[:8], Load8(src).Lanes())
	assert.Equal(t, src[1:5], Load4(src[1:]).Lanes())
	assert.Equal(t, src[:2], Load[Vec2[uint32]](src).Lanes())

	require.Panics(t, func() { Of2[int32](1, 2, 3) })
	require.Panics(t, func() { Load16(src) })
	require.Panics(t, func() { Load[Vec4[uint32]](src[7:]) })
}

func TestLaneAccess(t *testing.T) {
	v := Of4[float32](1, 2, 3, 4)
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, float32(3), v.Lane(2))
	require.Panics(t, func() { v.Lane(4) })
	require.Panics(t, func() { v.Lane(-1) })

	v.SetLane(0, 10)
	v.SetLane(3, 40)
	assert.Equal(t, []float32{10, 2, 3, 40}, v.Lanes())
	require.Panics(t, func() { v.SetLane(4, 0) })

	dst := make([]float32, 6)
	v.Store(dst[1:])
	assert.Equal(t, []float32{0, 10, 2, 3, 40, 0}, dst)
	require.Panics(t, func() { v.Store(dst[3:]) })

	one := Of1[int8](-5)
	assert.Equal(t, 1, one.Len())
	assert.Equal(t, int8(-5), one.Lane(0))
	require.Panics(t, func() { one.Lane(1) })
}

func TestBitCast(t *testing.T) {
	f := Of4[float32](1, -0.5, float32(math.Inf(1)), 0)
	bits := BitCast[Vec4[uint32]](f)
	assert.Equal(t, []uint32{0x3f800000, 0xbf000000, 0x7f800000, 0}, bits.Lanes())
	assert.Equal(t, f, BitCast[Vec4[float32]](bits))

	// Wider lanes see the same bytes in little-endian order.
	assert.Equal(t, uint32(0x04030201), BitCast[Vec1[uint32]](Of4[uint8](1, 2, 3, 4)).Val)
	assert.Equal(t, [2]uint64{1, 2}, BitCast[[2]uint64](Of2[uint64](1, 2)))

	require.Panics(t, func() { BitCast[Vec8[float32]](f) })
	require.Panics(t, func() { BitCast[Vec2[uint32]](Vec4[uint16]{}.Lo.Lo) })
}

func TestMaskBits(t *testing.T) {
	assert.Equal(t, uint64(math.MaxUint32), toBits(maskOf[float32](true)))
	assert.Equal(t, uint64(0), toBits(maskOf[float64](false)))
	assert.Equal(t, int8(-1), maskOf[int8](true))
	assert.Equal(t, uint16(0xffff), maskOf[uint16](true))

	assert.True(t, isFloat[float32]())
	assert.False(t, isFloat[int64]())
	assert.True(t, isSigned[int8]())
	assert.False(t, isSigned[uint32]())
	assert.True(t, isSigned[float64]())

	assert.Equal(t, int16(math.MaxInt16), maxValue[int16]())
	assert.Equal(t, int16(math.MinInt16), minValue[int16]())
	assert.Equal(t, uint32(math.MaxUint32), maxValue[uint32]())
	assert.Equal(t, uint32(0), minValue[uint32]())
}
