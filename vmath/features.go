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

// Features describes host CPU capabilities relevant to the packed float path.
//
// The vector types never consult Features: the code path is fixed at build
// time. HostFeatures exists so tools and tests can confirm that the compiled
// path is executable on the machine they run on.
type Features struct {
	// x86/amd64
	HasSSE2 bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasAVX  bool // VEX encoding, required by the archsimd 128-bit forms
	HasAVX2 bool // Advanced Vector Extensions 2

	// arm64
	HasASIMD bool // ARM Advanced SIMD (NEON)

	// Architecture is runtime.GOARCH.
	Architecture string
}

// HostFeatures returns the capabilities reported by the running CPU.
func HostFeatures() Features {
	return detectFeatures()
}

// Supports reports whether code compiled for level can execute with f.
func (f Features) Supports(level DispatchLevel) bool {
	switch level {
	case DispatchScalar:
		return true
	case DispatchSSE:
		return f.HasSSE2 && f.HasAVX
	case DispatchNEON:
		return f.HasASIMD
	default:
		return false
	}
}
