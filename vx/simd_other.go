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

//go:build !amd64 || !goexperiment.simd || vxscalar

package vx

// No intrinsics on this target: every helper declines.

const hasAVX2 = false

func splitForSIMD[V any](V) bool { return false }

func simdBinary[V any](_ binOp, a, _ V) (V, bool) { return a, false }

func simdSqrt[V any](a V) (V, bool) { return a, false }

func simdSelect[V any](c, _, _ V) (V, bool) { return c, false }

func simdAny[V any](V) (bool, bool) { return false, false }

func simdAll[T Lanes, V any](V) (bool, bool) { return false, false }

func simdSaturatedAdd[V any](a, _ V) (V, bool) { return a, false }
