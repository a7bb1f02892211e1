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

// Dot2 returns a.X*b.X + a.Y*b.Y. Vec2 has no packed body.
func Dot2[T Scalar](a, b Vec2[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Dot3 returns the sum of the pairwise products of X, Y and Z.
// The padding lane never reaches the result.
func Dot3[T Scalar](a, b Vec3[T]) T {
	if vectorizable[T]() {
		return T(dotF32x4(lanes(&a), lanes(&b), 3))
	}
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Dot4 returns the sum of the pairwise products of all four components.
func Dot4[T Scalar](a, b Vec4[T]) T {
	if vectorizable[T]() {
		return T(dotF32x4(lanes(&a), lanes(&b), 4))
	}
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross returns the right-handed cross product a × b.
func Cross[T Scalar](a, b Vec3[T]) Vec3[T] {
	if vectorizable[T]() {
		var r Vec3[T]
		crossF32x4(lanes(&r), lanes(&a), lanes(&b))
		return r
	}
	return Vec3[T]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Blendable is satisfied by float vectors: Vec2, Vec3 and Vec4 of F.
type Blendable[V any, F Floats] interface {
	Scale(F) V
	Add(V) V
}

// Lerp returns begin*(1-t) + end*t for float vectors. t is not clamped, so
// values outside [0, 1] extrapolate. Vec2Lerp, Vec3Lerp and Vec4Lerp accept
// integer components.
func Lerp[V Blendable[V, F], F Floats](begin, end V, t F) V {
	return begin.Scale(1 - t).Add(end.Scale(t))
}

// LerpScalar is Lerp for a bare float.
func LerpScalar[F Floats](begin, end, t F) F {
	return begin*(1-t) + end*t
}

// Vec2Lerp blends vectors of any component type with a float factor.
// The result has the factor's type, e.g. Vec2Lerp(a, b, float32(0.5)) on
// two Vec2[uint8] returns a Vec2[float32].
func Vec2Lerp[R Floats, T Scalar](begin, end Vec2[T], t R) Vec2[R] {
	return Vec2MulScalar[R](begin, 1-t).Add(Vec2MulScalar[R](end, t))
}

// Vec3Lerp is Vec2Lerp for Vec3.
func Vec3Lerp[R Floats, T Scalar](begin, end Vec3[T], t R) Vec3[R] {
	return Vec3MulScalar[R](begin, 1-t).Add(Vec3MulScalar[R](end, t))
}

// Vec4Lerp is Vec2Lerp for Vec4.
func Vec4Lerp[R Floats, T Scalar](begin, end Vec4[T], t R) Vec4[R] {
	return Vec4MulScalar[R](begin, 1-t).Add(Vec4MulScalar[R](end, t))
}

// LerpIntScalar interpolates with the integer ratio t/base:
// (begin*(base-t) + end*t) / base, evaluated in R. R must hold
// max(begin, end)*base; for 8-bit colour channels int32 is enough.
// t == 0 yields begin and t == base yields end.
func LerpIntScalar[R, I Integers](begin, end I, base, t R) R {
	return (R(begin)*(base-t) + R(end)*t) / base
}

// Vec2LerpInt is LerpIntScalar applied to each component.
func Vec2LerpInt[R, T Integers](begin, end Vec2[T], base, t R) Vec2[R] {
	return Vec2MulScalar[R](begin, base-t).Add(Vec2MulScalar[R](end, t)).Div(base)
}

// Vec3LerpInt is LerpIntScalar applied to each component.
func Vec3LerpInt[R, T Integers](begin, end Vec3[T], base, t R) Vec3[R] {
	return Vec3MulScalar[R](begin, base-t).Add(Vec3MulScalar[R](end, t)).Div(base)
}

// Vec4LerpInt is LerpIntScalar applied to each component.
func Vec4LerpInt[R, T Integers](begin, end Vec4[T], base, t R) Vec4[R] {
	return Vec4MulScalar[R](begin, base-t).Add(Vec4MulScalar[R](end, t)).Div(base)
}

// BilinearInterp interpolates x00-x01 and x10-x11 along s, then
// interpolates between the two results along t.
func BilinearInterp[V Blendable[V, F], F Floats](x00, x01, x10, x11 V, s, t F) V {
	y0 := Lerp(x00, x01, s)
	y1 := Lerp(x10, x11, s)
	return Lerp(y0, y1, t)
}

// BilinearInterpScalar is BilinearInterp for a bare float.
func BilinearInterpScalar[F Floats](x00, x01, x10, x11, s, t F) F {
	y0 := LerpScalar(x00, x01, s)
	y1 := LerpScalar(x10, x11, s)
	return LerpScalar(y0, y1, t)
}

// Vec2BilinearInterp is BilinearInterp over any component type, computed
// and returned in R.
func Vec2BilinearInterp[R Floats, T Scalar](x00, x01, x10, x11 Vec2[T], s, t R) Vec2[R] {
	return Lerp(Vec2Lerp(x00, x01, s), Vec2Lerp(x10, x11, s), t)
}

// Vec3BilinearInterp is Vec2BilinearInterp for Vec3.
func Vec3BilinearInterp[R Floats, T Scalar](x00, x01, x10, x11 Vec3[T], s, t R) Vec3[R] {
	return Lerp(Vec3Lerp(x00, x01, s), Vec3Lerp(x10, x11, s), t)
}

// Vec4BilinearInterp is Vec2BilinearInterp for Vec4.
func Vec4BilinearInterp[R Floats, T Scalar](x00, x01, x10, x11 Vec4[T], s, t R) Vec4[R] {
	return Lerp(Vec4Lerp(x00, x01, s), Vec4Lerp(x10, x11, s), t)
}

// MakeVec2 returns (x, y).
func MakeVec2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// MakeVec3 returns (x, y, z).
func MakeVec3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// MakeVec3XY returns (xy.X, xy.Y, z).
func MakeVec3XY[T Scalar](xy Vec2[T], z T) Vec3[T] {
	return MakeVec3(xy.X, xy.Y, z)
}

// MakeVec3YZ returns (x, yz.X, yz.Y).
func MakeVec3YZ[T Scalar](x T, yz Vec2[T]) Vec3[T] {
	return MakeVec3(x, yz.X, yz.Y)
}

// MakeVec4 returns (x, y, z, w).
func MakeVec4[T Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// MakeVec4XY returns (xy.X, xy.Y, z, w).
func MakeVec4XY[T Scalar](xy Vec2[T], z, w T) Vec4[T] {
	return MakeVec4(xy.X, xy.Y, z, w)
}

// MakeVec4YZ returns (x, yz.X, yz.Y, w).
func MakeVec4YZ[T Scalar](x T, yz Vec2[T], w T) Vec4[T] {
	return MakeVec4(x, yz.X, yz.Y, w)
}

// MakeVec4ZW returns (x, y, zw.X, zw.Y).
func MakeVec4ZW[T Scalar](x, y T, zw Vec2[T]) Vec4[T] {
	return MakeVec4(x, y, zw.X, zw.Y)
}

// MakeVec4XYZW returns (xy.X, xy.Y, zw.X, zw.Y).
func MakeVec4XYZW[T Scalar](xy, zw Vec2[T]) Vec4[T] {
	return MakeVec4(xy.X, xy.Y, zw.X, zw.Y)
}

// MakeVec4XYZ returns (xyz.X, xyz.Y, xyz.Z, w).
func MakeVec4XYZ[T Scalar](xyz Vec3[T], w T) Vec4[T] {
	return MakeVec4(xyz.X, xyz.Y, xyz.Z, w)
}

// MakeVec4YZW returns (x, yzw.X, yzw.Y, yzw.Z).
func MakeVec4YZW[T Scalar](x T, yzw Vec3[T]) Vec4[T] {
	return MakeVec4(x, yzw.X, yzw.Y, yzw.Z)
}
