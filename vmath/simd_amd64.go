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

//go:build amd64 && amd64.v3 && goexperiment.simd && !purego

package vmath

import "simd/archsimd"

// This file holds the packed float32 bodies. Every helper works on a whole
// 16-byte vector; for Vec3 lane 3 is padding and its result is don't-care
// except where noted.

const (
	simdEnabled   = true
	compiledLevel = DispatchSSE
)

func loadF32x4(p *[4]float32) archsimd.Float32x4 {
	return archsimd.LoadFloat32x4Slice(p[:])
}

func copyF32x4(dst, src *[4]float32) {
	loadF32x4(src).StoreSlice(dst[:])
}

func broadcastF32x4(dst *[4]float32, f float32) {
	archsimd.BroadcastFloat32x4(f).StoreSlice(dst[:])
}

func addF32x4(dst, a, b *[4]float32) {
	loadF32x4(a).Add(loadF32x4(b)).StoreSlice(dst[:])
}

func subF32x4(dst, a, b *[4]float32) {
	loadF32x4(a).Sub(loadF32x4(b)).StoreSlice(dst[:])
}

func mulF32x4(dst, a, b *[4]float32) {
	loadF32x4(a).Mul(loadF32x4(b)).StoreSlice(dst[:])
}

// negF32x4 flips the sign bit of every lane.
func negF32x4(dst, a *[4]float32) {
	sign := archsimd.BroadcastInt32x4(int32(-0x80000000))
	loadF32x4(a).AsInt32x4().Xor(sign).AsFloat32x4().StoreSlice(dst[:])
}

func scaleF32x4(dst, a *[4]float32, f float32) {
	loadF32x4(a).Mul(archsimd.BroadcastFloat32x4(f)).StoreSlice(dst[:])
}

func divF32x4(dst, a *[4]float32, f float32) {
	loadF32x4(a).Div(archsimd.BroadcastFloat32x4(f)).StoreSlice(dst[:])
}

// dotF32x4 multiplies lane-wise and sums lanes [0, n) left to right.
// Lanes at or past n never reach the result.
func dotF32x4(a, b *[4]float32, n int) float32 {
	var p [4]float32
	loadF32x4(a).Mul(loadF32x4(b)).StoreSlice(p[:])
	sum := p[0]
	for i := 1; i < n; i++ {
		sum += p[i]
	}
	return sum
}

// equalF32x4 compares lanes as raw bits; mask selects the lanes that count.
func equalF32x4(a, b *[4]float32, mask uint8) bool {
	eq := loadF32x4(a).AsInt32x4().Equal(loadF32x4(b).AsInt32x4())
	return eq.ToBits()&mask == mask
}

// rotateF32x4 loads (p1, p2, p0, p3): x,y,z rotated left by one lane.
func rotateF32x4(p *[4]float32) archsimd.Float32x4 {
	r := [4]float32{p[1], p[2], p[0], p[3]}
	return loadF32x4(&r)
}

// crossF32x4 computes a*rot(b) - b*rot(a), which yields the cross product
// rotated left by one lane, then rotates it back. Lane 3 is don't-care.
func crossF32x4(dst, a, b *[4]float32) {
	var c [4]float32
	loadF32x4(a).Mul(rotateF32x4(b)).Sub(loadF32x4(b).Mul(rotateF32x4(a))).StoreSlice(c[:])
	*dst = [4]float32{c[1], c[2], c[0], c[3]}
}
