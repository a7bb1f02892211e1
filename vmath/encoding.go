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
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// Only the meaningful components are ever hashed or serialized; the Vec3
// padding is neither written nor read.

var (
	// ErrShortBuffer is returned when binary input holds fewer bytes than
	// the vector's components need.
	ErrShortBuffer = errors.New("vmath: short buffer")

	// ErrTrailingData is returned when binary input is longer than one vector.
	ErrTrailingData = errors.New("vmath: trailing data")

	// ErrComponentCount is returned when a YAML sequence has the wrong length.
	ErrComponentCount = errors.New("vmath: wrong number of components")
)

// Hash returns the xxhash of the in-memory component bytes. Values that are
// Equal hash identically. The result depends on host byte order, so it is
// meant for in-process maps and caches rather than persistence.
func (v Vec2[T]) Hash() uint64 { return xxhash.Sum64(componentBytes(&v.X, 2)) }

// Hash returns the xxhash of X, Y and Z. The padding is excluded.
func (v Vec3[T]) Hash() uint64 { return xxhash.Sum64(componentBytes(&v.X, 3)) }

// Hash returns the xxhash of all four components.
func (v Vec4[T]) Hash() uint64 { return xxhash.Sum64(componentBytes(&v.X, 4)) }

// AppendBinary appends X and Y little-endian, each at the width of T.
func (v Vec2[T]) AppendBinary(b []byte) ([]byte, error) {
	return binary.Append(b, binary.LittleEndian, [2]T{v.X, v.Y})
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Vec2[T]) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(nil)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Vec2[T]) UnmarshalBinary(data []byte) error {
	var c [2]T
	if err := decodeBinary(data, &c, "Vec2"); err != nil {
		return err
	}
	v.X, v.Y = c[0], c[1]
	return nil
}

// AppendBinary appends X, Y and Z little-endian. The padding is not written.
func (v Vec3[T]) AppendBinary(b []byte) ([]byte, error) {
	return binary.Append(b, binary.LittleEndian, [3]T{v.X, v.Y, v.Z})
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Vec3[T]) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(nil)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It sets X, Y and Z
// and leaves the padding alone.
func (v *Vec3[T]) UnmarshalBinary(data []byte) error {
	var c [3]T
	if err := decodeBinary(data, &c, "Vec3"); err != nil {
		return err
	}
	v.X, v.Y, v.Z = c[0], c[1], c[2]
	return nil
}

// AppendBinary appends X, Y, Z and W little-endian.
func (v Vec4[T]) AppendBinary(b []byte) ([]byte, error) {
	return binary.Append(b, binary.LittleEndian, [4]T{v.X, v.Y, v.Z, v.W})
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Vec4[T]) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(nil)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Vec4[T]) UnmarshalBinary(data []byte) error {
	var c [4]T
	if err := decodeBinary(data, &c, "Vec4"); err != nil {
		return err
	}
	*v = Vec4[T]{X: c[0], Y: c[1], Z: c[2], W: c[3]}
	return nil
}

// decodeBinary reads exactly one array of components from data.
func decodeBinary[A any](data []byte, dst *A, name string) error {
	size := binary.Size(dst)
	switch {
	case len(data) < size:
		return fmt.Errorf("decode %s: need %d bytes, have %d: %w", name, size, len(data), ErrShortBuffer)
	case len(data) > size:
		return fmt.Errorf("decode %s: %d bytes past the end: %w", name, len(data)-size, ErrTrailingData)
	}
	if _, err := binary.Decode(data, binary.LittleEndian, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// MarshalYAML writes the vector as a flow sequence, e.g. [1, 2].
func (v Vec2[T]) MarshalYAML() (any, error) {
	return flowSequence(v.X, v.Y)
}

// UnmarshalYAML reads a two element sequence.
func (v *Vec2[T]) UnmarshalYAML(n *yaml.Node) error {
	return decodeSequence(n, "Vec2", &v.X, &v.Y)
}

// MarshalYAML writes X, Y and Z as a flow sequence.
func (v Vec3[T]) MarshalYAML() (any, error) {
	return flowSequence(v.X, v.Y, v.Z)
}

// UnmarshalYAML reads a three element sequence into X, Y and Z.
func (v *Vec3[T]) UnmarshalYAML(n *yaml.Node) error {
	return decodeSequence(n, "Vec3", &v.X, &v.Y, &v.Z)
}

// MarshalYAML writes the vector as a flow sequence.
func (v Vec4[T]) MarshalYAML() (any, error) {
	return flowSequence(v.X, v.Y, v.Z, v.W)
}

// UnmarshalYAML reads a four element sequence.
func (v *Vec4[T]) UnmarshalYAML(n *yaml.Node) error {
	return decodeSequence(n, "Vec4", &v.X, &v.Y, &v.Z, &v.W)
}

func flowSequence[T Scalar](c ...T) (*yaml.Node, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, x := range c {
		// One scalar node per component, whatever T is.
		var n yaml.Node
		if err := n.Encode(x); err != nil {
			return nil, err
		}
		seq.Content = append(seq.Content, &n)
	}
	return seq, nil
}

func decodeSequence[T Scalar](n *yaml.Node, name string, dst ...*T) error {
	if n.Kind != yaml.SequenceNode {
		return fmt.Errorf("decode %s at line %d: expected a sequence", name, n.Line)
	}
	if len(n.Content) != len(dst) {
		return fmt.Errorf("decode %s at line %d: got %d, want %d: %w", name, n.Line, len(n.Content), len(dst), ErrComponentCount)
	}
	c := make([]T, len(dst))
	for i, item := range n.Content {
		if err := item.Decode(&c[i]); err != nil {
			return fmt.Errorf("decode %s component %d: %w", name, i, err)
		}
	}
	for i, p := range dst {
		*p = c[i]
	}
	return nil
}
