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

// Command swizzlegen generates the component swizzle methods of the vmath
// vector types from a declarative table.
//
// Usage:
//
//	swizzlegen --output swizzle_gen.go
//	swizzlegen --output swizzle_gen.go --types Vec3,Vec4
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/swizzlegen --output swizzle_gen.go
//
// Each method copies the selected components into a new Vec2 or Vec3, e.g.
// Vec3.ZX returns (Z, X) and Vec4.BGR returns (Z, Y, X).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	gen := &Generator{}
	cmd := &cobra.Command{
		Use:           "swizzlegen",
		Short:         "Generate swizzle methods for Vec2, Vec3 and Vec4",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := gen.Run()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully generated %d swizzles in %s\n", n, gen.Output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&gen.Output, "output", "o", "swizzle_gen.go", "Output file")
	cmd.Flags().StringVar(&gen.Package, "package", "vmath", "Output package name")
	cmd.Flags().StringSliceVar(&gen.Types, "types", nil, "Comma-separated receiver types to generate (default: all)")
	return cmd
}
