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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// approxEqual32 reports whether a and b agree within a relative epsilon.
func approxEqual32(a, b, epsilon float32) bool {
	if a == b {
		return true
	}
	diff := float32(math.Abs(float64(a - b)))
	largest := float32(math.Max(math.Abs(float64(a)), math.Abs(float64(b))))
	return diff <= largest*epsilon
}

func TestDot(t *testing.T) {
	assert.Equal(t, float32(11), Dot2(Vec2f{X: 1, Y: 2}, Vec2f{X: 3, Y: 4}))
	assert.Equal(t, float32(32), Dot3(NewVec3[float32](1, 2, 3), NewVec3[float32](4, 5, 6)))
	assert.Equal(t, float32(70), Dot4(NewVec4[float32](1, 2, 3, 4), NewVec4[float32](5, 6, 7, 8)))

	assert.Equal(t, int32(32), Dot3(NewVec3[int32](1, 2, 3), NewVec3[int32](4, 5, 6)))
	assert.Equal(t, uint16(11), Dot2(Vec2[uint16]{X: 1, Y: 2}, Vec2[uint16]{X: 3, Y: 4}))
	assert.Equal(t, -1.0, Dot2(Vec2[float64]{X: 1, Y: -1}, Vec2[float64]{X: 0, Y: 1}))
}

func TestDotMatchesLength2(t *testing.T) {
	for _, v := range []Vec3f{
		NewVec3[float32](1, 2, 3),
		NewVec3[float32](0.1, -0.7, 3.3),
		NewVec3[float32](1e3, 1e-3, -5),
	} {
		assert.Equal(t, v.Length2(), Dot3(v, v))
	}
	v2 := Vec2f{X: 0.3, Y: -1.7}
	assert.Equal(t, v2.Length2(), Dot2(v2, v2))
	v4 := NewVec4[float32](0.3, -1.7, 2.9, 11)
	assert.Equal(t, v4.Length2(), Dot4(v4, v4))
}

func TestCross(t *testing.T) {
	a := NewVec3[float32](1, 2, 3)
	b := NewVec3[float32](4, 5, 6)

	tests := []struct {
		name string
		got  Vec3f
		want Vec3f
	}{
		{"AxB", Cross(a, b), NewVec3[float32](-3, 6, -3)},
		{"BxA", Cross(b, a), NewVec3[float32](3, -6, 3)},
		{"XxY", Cross(NewVec3[float32](1, 0, 0), NewVec3[float32](0, 1, 0)), NewVec3[float32](0, 0, 1)},
		{"YxZ", Cross(NewVec3[float32](0, 1, 0), NewVec3[float32](0, 0, 1)), NewVec3[float32](1, 0, 0)},
		{"ZxX", Cross(NewVec3[float32](0, 0, 1), NewVec3[float32](1, 0, 0)), NewVec3[float32](0, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("Cross mismatch (-want +got):\n%s", diff)
			}
		})
	}

	assert.Equal(t, NewVec3[int32](-3, 6, -3), Cross(NewVec3[int32](1, 2, 3), NewVec3[int32](4, 5, 6)))
}

func TestCrossAnticommutative(t *testing.T) {
	pairs := [][2]Vec3f{
		{NewVec3[float32](1, 2, 3), NewVec3[float32](4, 5, 6)},
		{NewVec3[float32](-2, 0.5, 7), NewVec3[float32](3, 9, -1)},
		{NewVec3[float32](0.25, -8, 2), NewVec3[float32](16, 1, 0.5)},
	}
	for _, p := range pairs {
		ab := Cross(p[0], p[1])
		ba := Cross(p[1], p[0])
		assert.True(t, ab.Equal(Vec3Negate(ba)), "%v x %v = %v, -(%v)", p[0], p[1], ab, ba)
		assert.Equal(t, float32(0), Dot3(ab, p[0]))
		assert.Equal(t, float32(0), Dot3(ab, p[1]))
	}
}

// Anticommutativity holds numerically, not bitwise: when a component of
// a×b is zero it is +0 while the same component of -(b×a) is -0.
func TestCrossAnticommutativeSignedZeros(t *testing.T) {
	a := NewVec3[float32](1, 0, 0)
	b := NewVec3[float32](2, 0, 0)
	ab := Cross(a, b)
	nba := Vec3Negate(Cross(b, a))

	assert.True(t, ab.Equal(Vec3f{}))
	assert.False(t, ab.Equal(nba), "+0 and -0 differ under bitwise equality")
	for i := range 3 {
		assert.True(t, ab.At(i) == nba.At(i), "component %d compares equal with ==", i)
		assert.True(t, math.Signbit(float64(nba.At(i))))
	}
}

func TestLerp(t *testing.T) {
	begin := NewVec3[float32](1, 2, 3)
	end := NewVec3[float32](5, 6, 7)

	assert.True(t, Lerp(begin, end, float32(0)).Equal(begin))
	assert.True(t, Lerp(begin, end, float32(1)).Equal(end))
	assert.True(t, Lerp(begin, end, float32(0.5)).Equal(NewVec3[float32](3, 4, 5)))
	assert.True(t, Lerp(begin, end, float32(2)).Equal(NewVec3[float32](9, 10, 11)), "t is not clamped")

	b2, e2 := Vec2[float64]{X: 1, Y: 2}, Vec2[float64]{X: 3, Y: 6}
	assert.Equal(t, b2, Lerp(b2, e2, 0.0))
	assert.Equal(t, e2, Lerp(b2, e2, 1.0))
	assert.Equal(t, Vec2[float64]{X: 2, Y: 4}, Lerp(b2, e2, 0.5))

	b4, e4 := NewVec4[float32](0, 0, 0, 1), NewVec4[float32](4, 8, 12, 1)
	assert.Equal(t, NewVec4[float32](1, 2, 3, 1), Lerp(b4, e4, float32(0.25)))

	assert.Equal(t, float32(2.5), LerpScalar[float32](0, 10, 0.25))
	assert.Equal(t, 10.0, LerpScalar(0.0, 10.0, 1.0))
}

func TestLerpInt(t *testing.T) {
	begin := Vec2i{X: 0, Y: 0}
	end := Vec2i{X: 10, Y: 20}

	assert.Equal(t, begin, Vec2LerpInt(begin, end, int32(4), int32(0)))
	assert.Equal(t, end, Vec2LerpInt(begin, end, int32(4), int32(4)))
	assert.Equal(t, Vec2i{X: 2, Y: 5}, Vec2LerpInt(begin, end, int32(4), int32(1)))

	v3 := Vec3LerpInt(NewVec3[int32](10, 20, 30), NewVec3[int32](20, 40, 60), int32(10), int32(5))
	assert.Equal(t, NewVec3[int32](15, 30, 45), v3)

	assert.Equal(t, int32(30), LerpIntScalar[int32](int32(0), int32(100), 10, 3))
	assert.Equal(t, int32(7), LerpIntScalar[int32](uint8(7), uint8(9), 3, 0))
}

// 8-bit colours must be blended in a wider type: begin*(base-t) overflows
// uint8 long before the divide.
func TestLerpIntNarrowComponents(t *testing.T) {
	c0 := NewVec4[uint8](200, 100, 40, 255)
	c1 := NewVec4[uint8](100, 50, 20, 255)

	got := Vec4LerpInt(c0, c1, int32(255), int32(128))
	assert.Equal(t, NewVec4[int32](149, 74, 29, 255), got)
	assert.Equal(t, NewVec4[uint8](149, 74, 29, 255), Vec4Cast[uint8](got))

	assert.Equal(t, Vec4Cast[int32](c0), Vec4LerpInt(c0, c1, int32(255), int32(0)))
	assert.Equal(t, Vec4Cast[int32](c1), Vec4LerpInt(c0, c1, int32(255), int32(255)))

	rgb := Vec3LerpInt(NewVec3[uint8](255, 0, 255), NewVec3[uint8](255, 255, 0), int32(256), int32(64))
	assert.Equal(t, NewVec3[int32](255, 63, 191), rgb)

	uv := Vec2LerpInt(Vec2[int16]{X: 300, Y: -300}, Vec2[int16]{X: 200, Y: 300}, int32(256), int32(128))
	assert.Equal(t, Vec2i{X: 250, Y: 0}, uv)

	assert.Equal(t, int32(250), LerpIntScalar[int32](int16(300), int16(200), 256, 128))
	assert.Equal(t, int32(149), LerpIntScalar[int32](uint8(200), uint8(100), 255, 128))
}

func TestLerpIntegerComponents(t *testing.T) {
	black := NewVec4[uint8](0, 0, 0, 255)
	orange := NewVec4[uint8](200, 100, 40, 255)

	mid := Vec4Lerp(black, orange, float32(0.5))
	assert.Equal(t, NewVec4[float32](100, 50, 20, 255), mid)
	assert.Equal(t, Vec4Cast[float32](black), Vec4Lerp(black, orange, float32(0)))
	assert.Equal(t, Vec4Cast[float32](orange), Vec4Lerp(black, orange, float32(1)))

	v3 := Vec3Lerp(NewVec3[int32](0, 4, 8), NewVec3[int32](4, 8, 12), 0.25)
	assert.True(t, v3.Equal(NewVec3[float64](1, 5, 9)))

	v2 := Vec2Lerp(Vec2[uint16]{X: 10, Y: 20}, Vec2[uint16]{X: 30, Y: 60}, float32(0.75))
	assert.Equal(t, Vec2f{X: 25, Y: 50}, v2)

	f := NewVec3[float32](1, 2, 3)
	g := NewVec3[float32](5, 6, 7)
	assert.True(t, Vec3Lerp(f, g, float32(0.5)).Equal(Lerp(f, g, float32(0.5))))
}

func TestBilinearInterpIntegerComponents(t *testing.T) {
	x00, x01 := NewVec4[uint8](0, 0, 0, 255), NewVec4[uint8](200, 0, 0, 255)
	x10, x11 := NewVec4[uint8](0, 100, 0, 255), NewVec4[uint8](200, 100, 40, 255)

	got := Vec4BilinearInterp(x00, x01, x10, x11, float32(0.5), float32(0.5))
	assert.Equal(t, NewVec4[float32](100, 50, 10, 255), got)
	assert.Equal(t, Vec4Cast[float32](x11), Vec4BilinearInterp(x00, x01, x10, x11, float32(1), float32(1)))

	v2 := Vec2BilinearInterp(Vec2i{}, Vec2i{X: 4}, Vec2i{Y: 8}, Vec2i{X: 4, Y: 8}, 0.5, 0.25)
	assert.Equal(t, Vec2[float64]{X: 2, Y: 2}, v2)

	v3 := Vec3BilinearInterp(NewVec3[int16](0, 0, 0), NewVec3[int16](8, 0, 0),
		NewVec3[int16](0, 8, 0), NewVec3[int16](8, 8, 8), float32(0.25), float32(0.5))
	assert.True(t, v3.Equal(NewVec3[float32](2, 4, 1)))
}

func TestBilinearInterp(t *testing.T) {
	x00, x01 := Vec2f{X: 0, Y: 0}, Vec2f{X: 4, Y: 0}
	x10, x11 := Vec2f{X: 0, Y: 8}, Vec2f{X: 4, Y: 8}

	assert.Equal(t, Vec2f{X: 2, Y: 2}, BilinearInterp(x00, x01, x10, x11, float32(0.5), float32(0.25)))
	assert.Equal(t, x00, BilinearInterp(x00, x01, x10, x11, float32(0), float32(0)))
	assert.Equal(t, x11, BilinearInterp(x00, x01, x10, x11, float32(1), float32(1)))

	assert.Equal(t, 1.5, BilinearInterpScalar(0.0, 1.0, 2.0, 3.0, 0.5, 0.5))
	got := BilinearInterpScalar[float32](1, 2, 3, 4, 0.3, 0.7)
	assert.True(t, approxEqual32(got, 1+0.3+2*0.7, 1e-5), "got %v", got)
}

func TestMakeVec(t *testing.T) {
	const x, y, z, w = float32(1), float32(2), float32(3), float32(4)
	xy := MakeVec2(x, y)
	yz := MakeVec2(y, z)
	zw := MakeVec2(z, w)
	xyz := MakeVec3(x, y, z)
	yzw := MakeVec3(y, z, w)
	want3 := NewVec3(x, y, z)
	want4 := NewVec4(x, y, z, w)

	assert.Equal(t, Vec2f{X: 1, Y: 2}, xy)
	assert.True(t, MakeVec3XY(xy, z).Equal(want3))
	assert.True(t, MakeVec3YZ(x, yz).Equal(want3))

	for name, got := range map[string]Vec4f{
		"MakeVec4":     MakeVec4(x, y, z, w),
		"MakeVec4XY":   MakeVec4XY(xy, z, w),
		"MakeVec4YZ":   MakeVec4YZ(x, yz, w),
		"MakeVec4ZW":   MakeVec4ZW(x, y, zw),
		"MakeVec4XYZW": MakeVec4XYZW(xy, zw),
		"MakeVec4XYZ":  MakeVec4XYZ(xyz, w),
		"MakeVec4YZW":  MakeVec4YZW(x, yzw),
	} {
		assert.Equal(t, want4, got, name)
	}
}
