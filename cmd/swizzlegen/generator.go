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

package main

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/tools/imports"
)

// fieldNames are the struct fields of the vector types, in component order.
var fieldNames = []string{"X", "Y", "Z", "W"}

// SwizzleSet describes one group of swizzle methods: every pattern is
// emitted once per alphabet on the Source type.
type SwizzleSet struct {
	Source    string   // receiver type, e.g. "Vec4"
	Width     int      // component count of Source
	Alphabets []string // one lower-case letter per component, e.g. "rgba"
	Patterns  [][]int  // source component index for each output component
}

// DefaultTable is the swizzle surface of the vmath vector types.
var DefaultTable = []SwizzleSet{
	{Source: "Vec2", Width: 2, Alphabets: []string{"xy", "uv", "st"}, Patterns: [][]int{{1, 0}}},
	{Source: "Vec3", Width: 3, Alphabets: []string{"xyz", "rgb", "uvw", "stq"}, Patterns: distinct(3, 2)},
	{Source: "Vec4", Width: 4, Alphabets: []string{"xyzw", "rgba"}, Patterns: slices.Concat(distinct(4, 2), repeated(4, 2))},
	{Source: "Vec4", Width: 4, Alphabets: []string{"xyzw", "rgba"}, Patterns: slices.Concat(distinct(4, 3), repeated(4, 3))},
}

// distinct returns every ordered selection of k distinct indices from [0, n)
// in lexicographic order.
func distinct(n, k int) [][]int {
	var out [][]int
	var walk func(prefix []int)
	walk = func(prefix []int) {
		if len(prefix) == k {
			out = append(out, slices.Clone(prefix))
			return
		}
		for i := range n {
			if !lo.Contains(prefix, i) {
				walk(append(prefix, i))
			}
		}
	}
	walk(nil)
	return out
}

// repeated returns the k-fold repetition of each index in [0, n).
func repeated(n, k int) [][]int {
	return lo.Times(n, func(i int) []int {
		return lo.RepeatBy(k, func(int) int { return i })
	})
}

// Swizzle is one generated method.
type Swizzle struct {
	Source string
	Name   string
	Fields []string // source field read for each output component
}

// Result returns the vector type the method returns.
func (s Swizzle) Result() string {
	return fmt.Sprintf("Vec%d", len(s.Fields))
}

// Expand turns the table into methods, keeping table order. Sets whose
// Source is not in types are skipped; an empty types keeps everything.
func Expand(table []SwizzleSet, types []string) ([]Swizzle, error) {
	var out []Swizzle
	for _, set := range table {
		if len(types) > 0 && !lo.Contains(types, set.Source) {
			continue
		}
		for _, alphabet := range set.Alphabets {
			if len(alphabet) != set.Width {
				return nil, fmt.Errorf("%s: alphabet %q has %d letters, want %d", set.Source, alphabet, len(alphabet), set.Width)
			}
			for _, p := range set.Patterns {
				if len(p) < 2 || len(p) > 4 {
					return nil, fmt.Errorf("%s: pattern %v: result width must be 2 to 4", set.Source, p)
				}
				if lo.SomeBy(p, func(i int) bool { return i < 0 || i >= set.Width }) {
					return nil, fmt.Errorf("%s: pattern %v: index out of range", set.Source, p)
				}
				out = append(out, Swizzle{
					Source: set.Source,
					Name:   strings.ToUpper(string(lo.Map(p, func(i int, _ int) byte { return alphabet[i] }))),
					Fields: lo.Map(p, func(i int, _ int) string { return fieldNames[i] }),
				})
			}
		}
	}

	for source, group := range lo.GroupBy(out, func(s Swizzle) string { return s.Source }) {
		names := lo.Map(group, func(s Swizzle, _ int) string { return s.Name })
		if dups := lo.FindDuplicates(names); len(dups) > 0 {
			return nil, fmt.Errorf("%s: duplicate swizzle methods %v", source, dups)
		}
	}
	return out, nil
}

// Render returns the formatted Go source for the given methods.
func Render(pkg string, swizzles []Swizzle) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by swizzlegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", pkg)

	source := ""
	for _, s := range swizzles {
		if s.Source != source {
			source = s.Source
			fmt.Fprintf(&buf, "\n// %s swizzles.\n\n", source)
		}
		elems := make([]string, len(s.Fields))
		for i, f := range s.Fields {
			elems[i] = fmt.Sprintf("%s: v.%s", fieldNames[i], f)
		}
		fmt.Fprintf(&buf, "func (v %s[T]) %s() %s[T] { return %s[T]{%s} }\n",
			s.Source, s.Name, s.Result(), s.Result(), strings.Join(elems, ", "))
	}

	formatted, err := imports.Process("swizzle_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return formatted, nil
}

// Generator writes the swizzle file for one package.
type Generator struct {
	Output  string
	Package string
	Types   []string
	Table   []SwizzleSet
}

// Run expands the table, renders it and writes Output.
func (g *Generator) Run() (int, error) {
	table := g.Table
	if table == nil {
		table = DefaultTable
	}
	swizzles, err := Expand(table, g.Types)
	if err != nil {
		return 0, fmt.Errorf("expand table: %w", err)
	}
	src, err := Render(g.Package, swizzles)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(g.Output, src, 0644); err != nil {
		return 0, fmt.Errorf("write %s: %w", g.Output, err)
	}
	return len(swizzles), nil
}
