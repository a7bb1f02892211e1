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
	"bytes"
	"unsafe"
)

// componentBytes returns the in-memory bytes of n consecutive components
// starting at p. For Vec3 callers pass n = 3 so the padding is never seen.
func componentBytes[T Scalar](p *T, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n*int(unsafe.Sizeof(*p)))
}

// bitsEqual compares n components as raw bits: NaN equals an identical NaN,
// and +0 differs from -0.
func bitsEqual[T Scalar](a, b *T, n int) bool {
	return bytes.Equal(componentBytes(a, n), componentBytes(b, n))
}
