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

package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// shape is one lane count and its neighbours in the recursion.
type shape struct {
	N      int
	Half   int
	Double int
}

// parseShapes accepts lane counts 1, 2, 4, ... in order, with no gaps. The
// half-float conversions of narrow shapes pad to 4 lanes, so 4 is required.
func parseShapes(s string) ([]shape, error) {
	var out []shape
	for i, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad lane count %q: %w", p, err)
		}
		if n != 1<<i {
			return nil, fmt.Errorf("lane count %d at position %d, want %d", n, i, 1<<i)
		}
		out = append(out, shape{N: n, Half: n / 2, Double: n * 2})
	}
	if len(out) < 3 {
		return nil, fmt.Errorf("shapes must reach 4 lanes, got %q", s)
	}
	return out, nil
}

func generate(pkg string, lanes []shape) ([]byte, error) {
	var buf bytes.Buffer
	err := shapesTemplate.Execute(&buf, struct {
		Package string
		Shapes  []shape
	}{pkg, lanes})
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	out, err := imports.Process("zz_shapes.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting output: %w\n%s", err, buf.Bytes())
	}
	return out, nil
}

var shapesTemplate = template.Must(template.New("shapes").Parse(`// Code generated by vxgen. DO NOT EDIT.

package {{.Package}}
{{range .Shapes}}
// Splat{{.N}} returns a vector with all {{.N}} lanes set to x.
func Splat{{.N}}[T Lanes](x T) Vec{{.N}}[T] {
	return splatOf[Vec{{.N}}[T]](x)
}

// Of{{.N}} returns a vector holding xs in lane order. Lanes past len(xs) are
// zero; more than {{.N}} values panic.
func Of{{.N}}[T Lanes](xs ...T) Vec{{.N}}[T] {
	return ofLanes[Vec{{.N}}[T]](xs)
}

// Load{{.N}} reads {{.N}} lanes from the front of src.
func Load{{.N}}[T Lanes](src []T) Vec{{.N}}[T] {
	return Load[Vec{{.N}}[T]](src)
}
{{if gt .N 1}}
// Join{{.N}} returns the vector whose lanes are lo's followed by hi's.
func Join{{.N}}[T Lanes](lo, hi Vec{{.Half}}[T]) Vec{{.N}}[T] {
	return Vec{{.N}}[T]{Lo: lo, Hi: hi}
}
{{end}}
// Cast{{.N}} converts each lane to D with Go conversion rules.
func Cast{{.N}}[D, S Lanes](v Vec{{.N}}[S]) Vec{{.N}}[D] {
{{- if eq .N 1}}
	return Vec1[D]{D(v.Val)}
{{- else}}
	if flat(v) {
		return castLanes[Vec{{.N}}[D], D, Vec{{.N}}[S], S](v)
	}
	return Join{{.N}}(Cast{{.Half}}[D](v.Lo), Cast{{.Half}}[D](v.Hi))
{{- end}}
}

// ToHalf{{.N}} converts float32 lanes to binary16 bit patterns, rounding to
// nearest even.
func ToHalf{{.N}}(v Vec{{.N}}[float32]) Vec{{.N}}[uint16] {
{{- if eq .N 4}}
	return toHalf4(v)
{{- else if lt .N 4}}
	return ToHalf{{.Double}}(Join{{.Double}}(v, Vec{{.N}}[float32]{})).Lo
{{- else}}
	return Join{{.N}}(ToHalf{{.Half}}(v.Lo), ToHalf{{.Half}}(v.Hi))
{{- end}}
}

// FromHalf{{.N}} widens binary16 bit patterns to float32 exactly.
func FromHalf{{.N}}(v Vec{{.N}}[uint16]) Vec{{.N}}[float32] {
{{- if eq .N 4}}
	return fromHalf4(v)
{{- else if lt .N 4}}
	return FromHalf{{.Double}}(Join{{.Double}}(v, Vec{{.N}}[uint16]{})).Lo
{{- else}}
	return Join{{.N}}(FromHalf{{.Half}}(v.Lo), FromHalf{{.Half}}(v.Hi))
{{- end}}
}

// Lrint{{.N}} rounds float32 lanes to the nearest int32, halfway cases to even.
func Lrint{{.N}}(v Vec{{.N}}[float32]) Vec{{.N}}[int32] {
{{- if eq .N 1}}
	return Vec1[int32]{rintLane(v.Val)}
{{- else}}
	if flat(v) {
		return lrintLanes[Vec{{.N}}[int32]](v)
	}
	return Join{{.N}}(Lrint{{.Half}}(v.Lo), Lrint{{.Half}}(v.Hi))
{{- end}}
}

// Mull{{.N}} multiplies uint8 lanes into uint16 products, which cannot
// overflow.
func Mull{{.N}}(x, y Vec{{.N}}[uint8]) Vec{{.N}}[uint16] {
	return Cast{{.N}}[uint16](x).Mul(Cast{{.N}}[uint16](y))
}

// MullWide{{.N}} multiplies uint16 lanes into uint32 products.
func MullWide{{.N}}(x, y Vec{{.N}}[uint16]) Vec{{.N}}[uint32] {
	return Cast{{.N}}[uint32](x).Mul(Cast{{.N}}[uint32](y))
}

// Mulhi{{.N}} returns the high 16 bits of the 32-bit products of x and y.
func Mulhi{{.N}}(x, y Vec{{.N}}[uint16]) Vec{{.N}}[uint16] {
	return Cast{{.N}}[uint16](MullWide{{.N}}(x, y).Shr(16))
}

// Div255x{{.N}} computes (x+127)/255, a rounding divide by 255, and packs the
// result to bytes. The sum wraps for x above 65408.
func Div255x{{.N}}(x Vec{{.N}}[uint16]) Vec{{.N}}[uint8] {
	return Cast{{.N}}[uint8](x.AddS(127).DivS(255))
}

// ApproxScale{{.N}} approximates Div255x{{.N}}(Mull{{.N}}(x, y)) to within one
// as (x*y + x)/256. It is exact when x or y is 0 or 255.
func ApproxScale{{.N}}(x, y Vec{{.N}}[uint8]) Vec{{.N}}[uint8] {
	wx, wy := Cast{{.N}}[uint16](x), Cast{{.N}}[uint16](y)
	return Cast{{.N}}[uint8](wx.Mul(wy).Add(wx).Shr(8))
}

// FloatMask{{.N}} views a float32 comparison result as int32 lanes: -1 where
// the comparison held and 0 elsewhere.
func FloatMask{{.N}}(m Vec{{.N}}[float32]) Vec{{.N}}[int32] {
	return BitCast[Vec{{.N}}[int32]](m)
}

// DoubleMask{{.N}} views a float64 comparison result as int64 lanes.
func DoubleMask{{.N}}(m Vec{{.N}}[float64]) Vec{{.N}}[int64] {
	return BitCast[Vec{{.N}}[int64]](m)
}
{{end}}`))
