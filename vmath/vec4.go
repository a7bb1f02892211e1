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

// Vec4 is a four component vector.
//
// The named fields and the array returned by AsArray are the same storage.
// For float32 the same 16 bytes are also what the packed path loads and
// stores, so all views always observe identical bits.
type Vec4[T Scalar] struct {
	X, Y, Z, W T
}

type (
	Vec4f = Vec4[float32]
	Vec4i = Vec4[int32]
	Vec4u = Vec4[uint32]
)

// NewVec4 returns (x, y, z, w).
func NewVec4[T Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// Vec4AssignToAll returns a vector with every component set to f.
func Vec4AssignToAll[T Scalar](f T) Vec4[T] {
	if vectorizable[T]() {
		var r Vec4[T]
		broadcastF32x4(lanes(&r), f32(&f))
		return r
	}
	return Vec4[T]{X: f, Y: f, Z: f, W: f}
}

// Vec4Cast converts every component to T2 with a Go numeric conversion.
func Vec4Cast[T2, T Scalar](v Vec4[T]) Vec4[T2] {
	if vectorizable[T]() && vectorizable[T2]() {
		var r Vec4[T2]
		copyF32x4(lanes(&r), lanes(&v))
		return r
	}
	return Vec4[T2]{X: T2(v.X), Y: T2(v.Y), Z: T2(v.Z), W: T2(v.W)}
}

// AsArray returns the components as an array sharing v's storage.
func (v *Vec4[T]) AsArray() *[4]T {
	return (*[4]T)(unsafe.Pointer(v))
}

// At returns component i. i must be in [0, 4).
func (v Vec4[T]) At(i int) T {
	return v.AsArray()[i]
}

// Ptr returns a pointer to component i. i must be in [0, 4).
func (v *Vec4[T]) Ptr(i int) *T {
	return &v.AsArray()[i]
}

// Add returns v + o.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	if vectorizable[T]() {
		var r Vec4[T]
		addF32x4(lanes(&r), lanes(&v), lanes(&o))
		return r
	}
	return Vec4[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z, W: v.W + o.W}
}

// AddAssign sets v to v + o.
func (v *Vec4[T]) AddAssign(o Vec4[T]) {
	if vectorizable[T]() {
		addF32x4(lanes(v), lanes(v), lanes(&o))
		return
	}
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
	v.W += o.W
}

// Sub returns v - o.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	if vectorizable[T]() {
		var r Vec4[T]
		subF32x4(lanes(&r), lanes(&v), lanes(&o))
		return r
	}
	return Vec4[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z, W: v.W - o.W}
}

// SubAssign sets v to v - o.
func (v *Vec4[T]) SubAssign(o Vec4[T]) {
	if vectorizable[T]() {
		subF32x4(lanes(v), lanes(v), lanes(&o))
		return
	}
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
	v.W -= o.W
}

// Mul returns the component-wise product.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	if vectorizable[T]() {
		var r Vec4[T]
		mulF32x4(lanes(&r), lanes(&v), lanes(&o))
		return r
	}
	return Vec4[T]{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z, W: v.W * o.W}
}

// Scale returns v * f.
func (v Vec4[T]) Scale(f T) Vec4[T] {
	if vectorizable[T]() {
		var r Vec4[T]
		scaleF32x4(lanes(&r), lanes(&v), f32(&f))
		return r
	}
	return Vec4[T]{X: v.X * f, Y: v.Y * f, Z: v.Z * f, W: v.W * f}
}

// ScaleAssign sets v to v * f.
func (v *Vec4[T]) ScaleAssign(f T) {
	if vectorizable[T]() {
		scaleF32x4(lanes(v), lanes(v), f32(&f))
		return
	}
	v.X *= f
	v.Y *= f
	v.Z *= f
	v.W *= f
}

// Div returns v / f.
func (v Vec4[T]) Div(f T) Vec4[T] {
	if vectorizable[T]() {
		var r Vec4[T]
		divF32x4(lanes(&r), lanes(&v), f32(&f))
		return r
	}
	return Vec4[T]{X: v.X / f, Y: v.Y / f, Z: v.Z / f, W: v.W / f}
}

// DivAssign sets v to v / f.
func (v *Vec4[T]) DivAssign(f T) {
	if vectorizable[T]() {
		divF32x4(lanes(v), lanes(v), f32(&f))
		return
	}
	v.X /= f
	v.Y /= f
	v.Z /= f
	v.W /= f
}

// Vec4MulScalar returns v * f computed in R, the promoted scalar type.
func Vec4MulScalar[R, T, V Scalar](v Vec4[T], f V) Vec4[R] {
	if vectorizable[R]() && vectorizable[T]() && vectorizable[V]() {
		var r Vec4[R]
		scaleF32x4(lanes(&r), lanes(&v), f32(&f))
		return r
	}
	s := R(f)
	return Vec4[R]{X: R(v.X) * s, Y: R(v.Y) * s, Z: R(v.Z) * s, W: R(v.W) * s}
}

// Vec4ScalarMul returns f * v computed in R. It equals Vec4MulScalar.
func Vec4ScalarMul[R, V, T Scalar](f V, v Vec4[T]) Vec4[R] {
	if vectorizable[R]() && vectorizable[T]() && vectorizable[V]() {
		var r Vec4[R]
		scaleF32x4(lanes(&r), lanes(&v), f32(&f))
		return r
	}
	s := R(f)
	return Vec4[R]{X: s * R(v.X), Y: s * R(v.Y), Z: s * R(v.Z), W: s * R(v.W)}
}

// Vec4DivScalar returns v / f computed in R.
func Vec4DivScalar[R, T, V Scalar](v Vec4[T], f V) Vec4[R] {
	if vectorizable[R]() && vectorizable[T]() && vectorizable[V]() {
		var r Vec4[R]
		divF32x4(lanes(&r), lanes(&v), f32(&f))
		return r
	}
	s := R(f)
	return Vec4[R]{X: R(v.X) / s, Y: R(v.Y) / s, Z: R(v.Z) / s, W: R(v.W) / s}
}

// Vec4MulScalarAssign multiplies in R and stores the result back as T.
func Vec4MulScalarAssign[R, T, V Scalar](v *Vec4[T], f V) {
	*v = Vec4Cast[T](Vec4MulScalar[R](*v, f))
}

// Vec4DivScalarAssign divides in R and stores the result back as T.
func Vec4DivScalarAssign[R, T, V Scalar](v *Vec4[T], f V) {
	*v = Vec4Cast[T](Vec4DivScalar[R](*v, f))
}

// Vec4Negate returns -v. Only the sign bits change, so -0 and NaN payloads
// come out the same on both paths.
func Vec4Negate[T Signed](v Vec4[T]) Vec4[T] {
	if vectorizable[T]() {
		var r Vec4[T]
		negF32x4(lanes(&r), lanes(&v))
		return r
	}
	return Vec4[T]{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Length2 returns the squared length in T, W included.
func (v Vec4[T]) Length2() T {
	return Dot4(v, v)
}

// Vec4Length returns the Euclidean length of v over all four components.
func Vec4Length[T Floats](v Vec4[T]) T {
	return sqrt(v.Length2())
}

// Equal reports whether all four components are bit-for-bit identical.
func (v Vec4[T]) Equal(o Vec4[T]) bool {
	if vectorizable[T]() {
		return equalF32x4(lanes(&v), lanes(&o), 0b1111)
	}
	return bitsEqual(&v.X, &o.X, 4)
}

// NotEqual is !Equal.
func (v Vec4[T]) NotEqual(o Vec4[T]) bool {
	return !v.Equal(o)
}

// SetZero sets every component to zero.
func (v *Vec4[T]) SetZero() {
	*v = Vec4[T]{}
}

func (v Vec4[T]) R() T { return v.X }
func (v Vec4[T]) G() T { return v.Y }
func (v Vec4[T]) B() T { return v.Z }
func (v Vec4[T]) A() T { return v.W }

func (v Vec4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}
