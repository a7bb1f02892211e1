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

//go:generate go run ../cmd/swizzlegen --output swizzle_gen.go

import (
	"fmt"
	"unsafe"
)

// Vec2 is a two component vector. X and Y are contiguous with no padding.
type Vec2[T Scalar] struct {
	X, Y T
}

type (
	Vec2f = Vec2[float32]
	Vec2i = Vec2[int32]
	Vec2u = Vec2[uint32]
)

// NewVec2 returns (x, y).
func NewVec2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Vec2AssignToAll returns a vector with both components set to f.
func Vec2AssignToAll[T Scalar](f T) Vec2[T] {
	return Vec2[T]{X: f, Y: f}
}

// Vec2Cast converts every component to T2 with a Go numeric conversion.
func Vec2Cast[T2, T Scalar](v Vec2[T]) Vec2[T2] {
	return Vec2[T2]{X: T2(v.X), Y: T2(v.Y)}
}

// AsArray returns the components as an array sharing v's storage.
func (v *Vec2[T]) AsArray() *[2]T {
	return (*[2]T)(unsafe.Pointer(v))
}

// At returns component i. i must be 0 or 1.
func (v Vec2[T]) At(i int) T {
	return v.AsArray()[i]
}

// Ptr returns a pointer to component i. i must be 0 or 1.
func (v *Vec2[T]) Ptr(i int) *T {
	return &v.AsArray()[i]
}

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// AddAssign sets v to v + o.
func (v *Vec2[T]) AddAssign(o Vec2[T]) {
	v.X += o.X
	v.Y += o.Y
}

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// SubAssign sets v to v - o.
func (v *Vec2[T]) SubAssign(o Vec2[T]) {
	v.X -= o.X
	v.Y -= o.Y
}

// Mul returns the component-wise product.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X * o.X, Y: v.Y * o.Y}
}

// Scale returns v * f.
func (v Vec2[T]) Scale(f T) Vec2[T] {
	return Vec2[T]{X: v.X * f, Y: v.Y * f}
}

// ScaleAssign sets v to v * f.
func (v *Vec2[T]) ScaleAssign(f T) {
	*v = v.Scale(f)
}

// Div returns v / f.
func (v Vec2[T]) Div(f T) Vec2[T] {
	return Vec2[T]{X: v.X / f, Y: v.Y / f}
}

// DivAssign sets v to v / f.
func (v *Vec2[T]) DivAssign(f T) {
	*v = v.Div(f)
}

// Vec2MulScalar returns v * f computed in R, the promoted scalar type.
func Vec2MulScalar[R, T, V Scalar](v Vec2[T], f V) Vec2[R] {
	s := R(f)
	return Vec2[R]{X: R(v.X) * s, Y: R(v.Y) * s}
}

// Vec2ScalarMul returns f * v computed in R. It equals Vec2MulScalar.
func Vec2ScalarMul[R, V, T Scalar](f V, v Vec2[T]) Vec2[R] {
	s := R(f)
	return Vec2[R]{X: s * R(v.X), Y: s * R(v.Y)}
}

// Vec2DivScalar returns v / f computed in R.
func Vec2DivScalar[R, T, V Scalar](v Vec2[T], f V) Vec2[R] {
	s := R(f)
	return Vec2[R]{X: R(v.X) / s, Y: R(v.Y) / s}
}

// Vec2MulScalarAssign multiplies in R and stores the result back as T.
func Vec2MulScalarAssign[R, T, V Scalar](v *Vec2[T], f V) {
	*v = Vec2Cast[T](Vec2MulScalar[R](*v, f))
}

// Vec2DivScalarAssign divides in R and stores the result back as T.
func Vec2DivScalarAssign[R, T, V Scalar](v *Vec2[T], f V) {
	*v = Vec2Cast[T](Vec2DivScalar[R](*v, f))
}

// Vec2Negate returns -v.
func Vec2Negate[T Signed](v Vec2[T]) Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

// Length2 returns the squared length in T.
func (v Vec2[T]) Length2() T {
	return Dot2(v, v)
}

// Vec2Length returns the Euclidean length of v.
func Vec2Length[T Floats](v Vec2[T]) T {
	return sqrt(v.Length2())
}

// Vec2Normalize divides v by its length and returns the length it had.
// A zero vector becomes NaN.
func Vec2Normalize[T Floats](v *Vec2[T]) T {
	length := Vec2Length(*v)
	v.DivAssign(length)
	return length
}

// Equal reports whether both components are bit-for-bit identical.
func (v Vec2[T]) Equal(o Vec2[T]) bool {
	return bitsEqual(&v.X, &o.X, 2)
}

// NotEqual is !Equal.
func (v Vec2[T]) NotEqual(o Vec2[T]) bool {
	return !v.Equal(o)
}

// SetZero sets both components to zero.
func (v *Vec2[T]) SetZero() {
	v.X = 0
	v.Y = 0
}

func (v Vec2[T]) U() T { return v.X }
func (v Vec2[T]) V() T { return v.Y }
func (v Vec2[T]) S() T { return v.X }

// T returns Y under the s/t texture naming.
func (v Vec2[E]) T() E { return v.Y }

func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
