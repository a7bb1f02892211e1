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
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		name  string
		width int
	}{
		{DispatchScalar, "scalar", 0},
		{DispatchSSE, "sse", 16},
		{DispatchNEON, "neon", 16},
		{DispatchLevel(99), "unknown", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.level.String())
			assert.Equal(t, tt.width, tt.level.Width())
		})
	}
}

func TestCompiledLevel(t *testing.T) {
	t.Logf("compiled: %s", CompiledName())
	assert.Equal(t, CompiledLevel().String(), CompiledName())
	if simdEnabled {
		assert.Equal(t, DispatchSSE, CompiledLevel())
	} else {
		assert.Equal(t, DispatchScalar, CompiledLevel())
	}
	assert.NotEqual(t, DispatchNEON, CompiledLevel(), "no build compiles a NEON body")
}

func TestVectorizable(t *testing.T) {
	assert.Equal(t, simdEnabled, Vectorizable[float32]())
	assert.False(t, Vectorizable[float64]())
	assert.False(t, Vectorizable[int32]())
	assert.False(t, Vectorizable[uint32]())
	assert.False(t, Vectorizable[meters](), "defined types take the scalar path")
}

func TestHostFeatures(t *testing.T) {
	f := HostFeatures()
	t.Logf("host: %+v", f)
	assert.Equal(t, runtime.GOARCH, f.Architecture)
	assert.True(t, f.Supports(DispatchScalar))
	assert.False(t, f.Supports(DispatchLevel(99)))

	// The running binary was built for CompiledLevel, so the host must
	// be able to execute it.
	assert.True(t, f.Supports(CompiledLevel()))

	switch runtime.GOARCH {
	case "amd64":
		assert.True(t, f.HasSSE2, "SSE2 is part of the amd64 baseline")
		assert.False(t, f.HasASIMD)
	case "arm64":
		assert.False(t, f.Supports(DispatchSSE))
	}
}

func TestFeaturesSupports(t *testing.T) {
	assert.True(t, Features{HasSSE2: true, HasAVX: true}.Supports(DispatchSSE))
	assert.False(t, Features{HasSSE2: true}.Supports(DispatchSSE))
	assert.True(t, Features{HasASIMD: true}.Supports(DispatchNEON))
	assert.False(t, Features{}.Supports(DispatchNEON))
}
