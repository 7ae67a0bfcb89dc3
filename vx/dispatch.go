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

// Level identifies the fastest implementation path this build uses.
type Level int

const (
	// LevelScalar indicates every operation recurses down to one-lane
	// vectors. Selected by the vxscalar build tag.
	LevelScalar Level = iota

	// LevelPortable indicates flat loops over the lane array, which the
	// compiler may vectorize.
	LevelPortable

	// LevelAVX2 indicates 256-bit AVX2 intrinsics for the shapes that match
	// a register exactly, with flat loops for the rest.
	LevelAVX2
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelPortable:
		return "portable"
	case LevelAVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// CurrentLevel returns the implementation path in use.
func CurrentLevel() Level {
	switch {
	case !portable:
		return LevelScalar
	case hasAVX2:
		return LevelAVX2
	default:
		return LevelPortable
	}
}

// CurrentWidth returns the widest register in bytes that an operation can
// be lowered to: 32 for AVX2, 0 when every lane is computed on its own.
func CurrentWidth() int {
	if CurrentLevel() == LevelAVX2 {
		return 32
	}
	return 0
}

// MaxLanes returns how many lanes of T fit in the widest register, or 1 when
// there is no vector register in use.
func MaxLanes[T Lanes]() int {
	w := CurrentWidth()
	if w == 0 {
		return 1
	}
	return w / int(bitWidth[T]()/8)
}
