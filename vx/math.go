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

// Lane maps for the math methods. Integer lanes pass through the rounding
// functions unchanged.

func sqrtLane[T Lanes](a T) T {
	return T(math.Sqrt(float64(a)))
}

func absLane[T Lanes](a T) T {
	if isFloat[T]() {
		return fromBits[T](toBits(a) &^ signBit[T]())
	}
	if a < 0 {
		return -a
	}
	return a
}

func floorLane[T Lanes](a T) T {
	if !isFloat[T]() {
		return a
	}
	return T(math.Floor(float64(a)))
}

func ceilLane[T Lanes](a T) T {
	if !isFloat[T]() {
		return a
	}
	return T(math.Ceil(float64(a)))
}

func truncLane[T Lanes](a T) T {
	if !isFloat[T]() {
		return a
	}
	return T(math.Trunc(float64(a)))
}

// roundLane rounds halfway cases away from zero.
func roundLane[T Lanes](a T) T {
	if !isFloat[T]() {
		return a
	}
	return T(math.Round(float64(a)))
}

// rintLane rounds halfway cases to even, like lrint in the default rounding
// mode.
func rintLane(a float32) int32 {
	return int32(math.RoundToEven(float64(a)))
}

// fmaLane computes a*b+c. float64 lanes round once; float32 lanes are
// computed in float64 and rounded back.
func fmaLane[T Lanes](a, b, c T) T {
	if !isFloat[T]() {
		return a*b + c
	}
	return T(math.FMA(float64(a), float64(b), float64(c)))
}
