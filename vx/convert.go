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

import "fmt"

// ofLanes builds a V from xs in lane order, zero-filling the lanes xs does
// not reach.
func ofLanes[V any, T Lanes](xs []T) V {
	var v V
	l := lanesOf[T](&v)
	if len(xs) > len(l) {
		panic(fmt.Sprintf("vx: %d values given for %d lanes", len(xs), len(l)))
	}
	copy(l, xs)
	return v
}

// castLanes converts each lane of v from S to D with Go conversion rules:
// integers truncate or extend, floats truncate toward zero when converted
// to integers.
func castLanes[VD any, D Lanes, VS any, S Lanes](v VS) VD {
	var r VD
	src, dst := lanesOf[S](&v), lanesOf[D](&r)
	for i := range dst {
		dst[i] = D(src[i])
	}
	return r
}

// lrintLanes rounds each float32 lane of v to the nearest int32, halfway
// cases to even.
func lrintLanes[VD, VS any](v VS) VD {
	var r VD
	src, dst := lanesOf[float32](&v), lanesOf[int32](&r)
	for i := range dst {
		dst[i] = rintLane(src[i])
	}
	return r
}
