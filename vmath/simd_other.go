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

//go:build !amd64 || !amd64.v3 || !goexperiment.simd || purego

package vmath

import "unsafe"

// Lane helpers for builds without a packed float path. vectorizable is
// constant false here, so the vector types never call these; they keep the
// same lane semantics as simd_amd64.go so both builds share one test suite.

const (
	simdEnabled   = false
	compiledLevel = DispatchScalar
)

func copyF32x4(dst, src *[4]float32) {
	*dst = *src
}

func broadcastF32x4(dst *[4]float32, f float32) {
	*dst = [4]float32{f, f, f, f}
}

func addF32x4(dst, a, b *[4]float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subF32x4(dst, a, b *[4]float32) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulF32x4(dst, a, b *[4]float32) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func negF32x4(dst, a *[4]float32) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

func scaleF32x4(dst, a *[4]float32, f float32) {
	for i := range dst {
		dst[i] = a[i] * f
	}
}

func divF32x4(dst, a *[4]float32, f float32) {
	for i := range dst {
		dst[i] = a[i] / f
	}
}

func dotF32x4(a, b *[4]float32, n int) float32 {
	var p [4]float32
	mulF32x4(&p, a, b)
	sum := p[0]
	for i := 1; i < n; i++ {
		sum += p[i]
	}
	return sum
}

func equalF32x4(a, b *[4]float32, mask uint8) bool {
	ab := (*[4]uint32)(unsafe.Pointer(a))
	bb := (*[4]uint32)(unsafe.Pointer(b))
	for i := range 4 {
		if mask&(1<<i) != 0 && ab[i] != bb[i] {
			return false
		}
	}
	return true
}

func crossF32x4(dst, a, b *[4]float32) {
	ax, ay, az := a[0], a[1], a[2]
	bx, by, bz := b[0], b[1], b[2]
	*dst = [4]float32{ay*bz - az*by, az*bx - ax*bz, ax*by - ay*bx, a[3]}
}
