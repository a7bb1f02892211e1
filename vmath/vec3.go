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

package vmath

import (
	"fmt"
	"unsafe"
)

// Vec3 is a three component vector followed by one component of padding.
//
// The padding lets the float32 path move X, Y and Z through a 4-lane
// register without reading or writing past the value. Its content is
// unspecified: arithmetic may leave anything in it, and it never takes part
// in equality, hashing or serialization.
type Vec3[T Scalar] struct {
	X, Y, Z T
	pad     T
}

type (
	Vec3f = Vec3[float32]
	Vec3i = Vec3[int32]
	Vec3u = Vec3[uint32]
)

// NewVec3 returns (x, y, z).
func NewVec3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Vec3AssignToAll returns a vector with every component set to f.
func Vec3AssignToAll[T Scalar](f T) Vec3[T] {
	var r Vec3[T]
	if vectorizable[T]() {
		broadcastF32x4(lanes(&r), f32(&f))
		return r
	}
	r.X, r.Y, r.Z = f, f, f
	return r
}

// Vec3Cast converts every component to T2 with a Go numeric conversion.
func Vec3Cast[T2, T Scalar](v Vec3[T]) Vec3[T2] {
	if vectorizable[T]() && vectorizable[T2]() {
		var r Vec3[T2]
		copyF32x4(lanes(&r), lanes(&v))
		return r
	}
	return Vec3[T2]{X: T2(v.X), Y: T2(v.Y), Z: T2(v.Z)}
}

// AsArray returns X, Y and Z as an array sharing v's storage.
func (v *Vec3[T]) AsArray() *[3]T {
	return (*[3]T)(unsafe.Pointer(v))
}

// At returns component i. i must be in [0, 3).
func (v Vec3[T]) At(i int) T {
	return v.AsArray()[i]
}

// Ptr returns a pointer to component i. i must be in [0, 3).
func (v *Vec3[T]) Ptr(i int) *T {
	return &v.AsArray()[i]
}

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	if vectorizable[T]() {
		var r Vec3[T]
		addF32x4(lanes(&r), lanes(&v), lanes(&o))
		return r
	}
	return Vec3[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// AddAssign sets v to v + o.
func (v *Vec3[T]) AddAssign(o Vec3[T]) {
	if vectorizable[T]() {
		addF32x4(lanes(v), lanes(v), lanes(&o))
		return
	}
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	if vectorizable[T]() {
		var r Vec3[T]
		subF32x4(lanes(&r), lanes(&v), lanes(&o))
		return r
	}
	return Vec3[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// SubAssign sets v to v - o.
func (v *Vec3[T]) SubAssign(o Vec3[T]) {
	if vectorizable[T]() {
		subF32x4(lanes(v), lanes(v), lanes(&o))
		return
	}
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

// Mul returns the component-wise product.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] {
	if vectorizable[T]() {
		var r Vec3[T]
		mulF32x4(lanes(&r), lanes(&v), lanes(&o))
		return r
	}
	return Vec3[T]{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// Scale returns v * f.
func (v Vec3[T]) Scale(f T) Vec3[T] {
	if vectorizable[T]() {
		var r Vec3[T]
		scaleF32x4(lanes(&r), lanes(&v), f32(&f))
		return r
	}
	return Vec3[T]{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

// ScaleAssign sets v to v * f.
func (v *Vec3[T]) ScaleAssign(f T) {
	if vectorizable[T]() {
		scaleF32x4(lanes(v), lanes(v), f32(&f))
		return
	}
	v.X *= f
	v.Y *= f
	v.Z *= f
}

// Div returns v / f.
func (v Vec3[T]) Div(f T) Vec3[T] {
	if vectorizable[T]() {
		var r Vec3[T]
		divF32x4(lanes(&r), lanes(&v), f32(&f))
		return r
	}
	return Vec3[T]{X: v.X / f, Y: v.Y / f, Z: v.Z / f}
}

// DivAssign sets v to v / f.
func (v *Vec3[T]) DivAssign(f T) {
	if vectorizable[T]() {
		divF32x4(lanes(v), lanes(v), f32(&f))
		return
	}
	v.X /= f
	v.Y /= f
	v.Z /= f
}

// Vec3MulScalar returns v * f computed in R, the promoted scalar type.
func Vec3MulScalar[R, T, V Scalar](v Vec3[T], f V) Vec3[R] {
	if vectorizable[R]() && vectorizable[T]() && vectorizable[V]() {
		var r Vec3[R]
		scaleF32x4(lanes(&r), lanes(&v), f32(&f))
		return r
	}
	s := R(f)
	return Vec3[R]{X: R(v.X) * s, Y: R(v.Y) * s, Z: R(v.Z) * s}
}

// Vec3ScalarMul returns f * v computed in R. It equals Vec3MulScalar.
func Vec3ScalarMul[R, V, T Scalar](f V, v Vec3[T]) Vec3[R] {
	if vectorizable[R]() && vectorizable[T]() && vectorizable[V]() {
		var r Vec3[R]
		scaleF32x4(lanes(&r), lanes(&v), f32(&f))
		return r
	}
	s := R(f)
	return Vec3[R]{X: s * R(v.X), Y: s * R(v.Y), Z: s * R(v.Z)}
}

// Vec3DivScalar returns v / f computed in R.
func Vec3DivScalar[R, T, V Scalar](v Vec3[T], f V) Vec3[R] {
	if vectorizable[R]() && vectorizable[T]() && vectorizable[V]() {
		var r Vec3[R]
		divF32x4(lanes(&r), lanes(&v), f32(&f))
		return r
	}
	s := R(f)
	return Vec3[R]{X: R(v.X) / s, Y: R(v.Y) / s, Z: R(v.Z) / s}
}

// Vec3MulScalarAssign multiplies in R and stores the result back as T.
func Vec3MulScalarAssign[R, T, V Scalar](v *Vec3[T], f V) {
	*v = Vec3Cast[T](Vec3MulScalar[R](*v, f))
}

// Vec3DivScalarAssign divides in R and stores the result back as T.
func Vec3DivScalarAssign[R, T, V Scalar](v *Vec3[T], f V) {
	*v = Vec3Cast[T](Vec3DivScalar[R](*v, f))
}

// Vec3Negate returns -v. Only the sign bits change, so -0 and NaN payloads
// come out the same on both paths.
func Vec3Negate[T Signed](v Vec3[T]) Vec3[T] {
	if vectorizable[T]() {
		var r Vec3[T]
		negF32x4(lanes(&r), lanes(&v))
		return r
	}
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Length2 returns the squared length in T. The padding lane is excluded.
func (v Vec3[T]) Length2() T {
	return Dot3(v, v)
}

// Vec3Length returns the Euclidean length of v.
func Vec3Length[T Floats](v Vec3[T]) T {
	return sqrt(v.Length2())
}

// Vec3Normalized returns v divided by its length; v is unchanged.
func Vec3Normalized[T Floats](v Vec3[T]) Vec3[T] {
	return v.Div(Vec3Length(v))
}

// Vec3Normalize divides v by its length and returns the length it had.
func Vec3Normalize[T Floats](v *Vec3[T]) T {
	length := Vec3Length(*v)
	v.DivAssign(length)
	return length
}

// Equal reports whether X, Y and Z are bit-for-bit identical.
func (v Vec3[T]) Equal(o Vec3[T]) bool {
	if vectorizable[T]() {
		return equalF32x4(lanes(&v), lanes(&o), 0b0111)
	}
	return bitsEqual(&v.X, &o.X, 3)
}

// NotEqual is !Equal.
func (v Vec3[T]) NotEqual(o Vec3[T]) bool {
	return !v.Equal(o)
}

// SetZero sets X, Y and Z to zero.
func (v *Vec3[T]) SetZero() {
	v.X = 0
	v.Y = 0
	v.Z = 0
}

// Texture (u/v/w, s/t/q) and color (r/g/b) names for X, Y and Z.

func (v Vec3[T]) U() T { return v.X }
func (v Vec3[T]) V() T { return v.Y }
func (v Vec3[T]) W() T { return v.Z }
func (v Vec3[T]) R() T { return v.X }
func (v Vec3[T]) G() T { return v.Y }
func (v Vec3[T]) B() T { return v.Z }
func (v Vec3[T]) S() T { return v.X }
func (v Vec3[E]) T() E { return v.Y }
func (v Vec3[T]) Q() T { return v.Z }

func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
