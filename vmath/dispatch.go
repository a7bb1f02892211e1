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

import "unsafe"

// DispatchLevel identifies the code path compiled into the vector operations.
type DispatchLevel int

const (
	// DispatchScalar indicates the portable per-component bodies.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE indicates 128-bit packed float32 instructions on amd64.
	// The archsimd forms are VEX encoded, so the build requires GOAMD64=v3.
	DispatchSSE

	// DispatchNEON indicates ARM Advanced SIMD (128-bit).
	// Reserved: no build currently compiles a NEON body.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE:
		return "sse"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes used by the level, 0 for scalar.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchSSE, DispatchNEON:
		return 16
	default:
		return 0
	}
}

// CompiledLevel returns the code path selected when this package was built.
// It is a constant of the build; nothing is checked at runtime.
func CompiledLevel() DispatchLevel {
	return compiledLevel
}

// CompiledName returns a human-readable name for CompiledLevel.
func CompiledName() string {
	return compiledLevel.String()
}

// Vectorizable reports whether vectors of T take the packed path in this build.
// Only exact float32 qualifies; defined types over float32 use the scalar path.
func Vectorizable[T Scalar]() bool {
	return vectorizable[T]()
}

// vectorizable is constant false on scalar builds. On the packed build the
// assertion goes through the instantiation's dictionary, since float32 shares
// its GC shape with defined float32 types; that costs one compare per call.
func vectorizable[T Scalar]() bool {
	if !simdEnabled {
		return false
	}
	_, ok := any((*T)(nil)).(*float32)
	return ok
}

// lanes views a 16-byte float32 vector as four packed lanes.
// Callers must have checked vectorizable first.
func lanes[V any](p *V) *[4]float32 {
	return (*[4]float32)(unsafe.Pointer(p))
}

// f32 reinterprets a scalar already known to be float32.
func f32[T Scalar](p *T) float32 {
	return *(*float32)(unsafe.Pointer(p))
}
