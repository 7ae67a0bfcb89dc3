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

// Saturated operations clamp results to the lane type's valid range instead
// of wrapping. Float lanes have no range to clamp to and use plain IEEE
// arithmetic.

// saturatedAdd clamps a+b. For example, uint8: 250 + 10 = 255 (not 4).
func saturatedAdd[T Lanes](a, b T) T {
	sum := a + b
	switch {
	case isFloat[T]():
		return sum
	case !isSigned[T]():
		if sum < a {
			return maskOf[T](true)
		}
		return sum
	case a > 0 && b > 0 && sum < 0:
		return fromBits[T](signBit[T]() - 1)
	case a < 0 && b < 0 && sum >= 0:
		return fromBits[T](signBit[T]())
	}
	return sum
}

// saturatedSub clamps a-b. For example, uint8: 10 - 20 = 0 (not 246).
func saturatedSub[T Lanes](a, b T) T {
	diff := a - b
	switch {
	case isFloat[T]():
		return diff
	case !isSigned[T]():
		if b > a {
			return 0
		}
		return diff
	case a >= 0 && b < 0 && diff < 0:
		return fromBits[T](signBit[T]() - 1)
	case a < 0 && b > 0 && diff >= 0:
		return fromBits[T](signBit[T]())
	}
	return diff
}
