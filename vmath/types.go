// Copyright 2025 go-vecmath Authors
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

// Package vmath provides fixed-size 2, 3 and 4 component vectors over any
// numeric scalar type.
//
// Vec3 and Vec4 of float32 take a 128-bit packed-float path when the build
// enables it (amd64, GOAMD64=v3, GOEXPERIMENT=simd, no purego tag). The
// choice is made by build constraints, never by querying the CPU at runtime;
// every other build compiles the scalar bodies only. To test and benchmark
// the packed bodies against the scalar ones:
//
//	GOEXPERIMENT=simd GOAMD64=v3 go test -bench Paths ./vmath/
//
// Operations that only make sense for some scalar types are free functions
// with a narrower constraint, so misuse fails to compile:
//
//	v := vmath.NewVec3[float32](1, 2, 3)
//	n := vmath.Vec3Normalized(v)        // Floats only
//	u := vmath.Vec3Negate(v)            // Signed only
//	d := vmath.Dot3(v, n)
//	w := vmath.Cross(v, u).Add(v)
//	st := w.ZX()                         // swizzle to a Vec2
package vmath

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Signed is a constraint for types that support unary negation.
type Signed interface {
	SignedInts | Floats
}

// Scalar is a constraint for all vector component types.
type Scalar interface {
	Integers | Floats
}

// sqrt is correctly rounded for both widths.
func sqrt[T Floats](x T) T {
	if unsafe.Sizeof(x) == 4 {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}
