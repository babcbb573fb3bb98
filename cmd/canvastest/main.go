// seehuhn.de/go/canvas - a 2D drawing surface and visual test harness
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command canvastest lists and renders the visual test cases for the
// canvas drawing context.
//
// Usage:
//
//	canvastest list
//	canvastest render [--backend NAME] [--out DIR] [--trace] [test ...]
//	canvastest view [--backend NAME]
//
// Settings are taken from the command line, then from CANVASTEST_*
// environment variables, then from a canvastest.yaml file in the working
// directory.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seehuhn.de/go/canvas/internal/tui"
	"seehuhn.de/go/canvas/testcases"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("canvastest: ")
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "canvastest",
		Short:         "Visual test cases for the canvas drawing context",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v)
		},
	}
	root.PersistentFlags().String("backend", "raster",
		"rendering backend ("+strings.Join(backendNames(), ", ")+")")
	must(v.BindPFlag("backend", root.PersistentFlags().Lookup("backend")))

	root.AddCommand(newListCmd(), newRenderCmd(v), newViewCmd(v))
	return root
}

// loadConfig sets up the environment and file sources of v.  A missing
// config file is not an error.
func loadConfig(v *viper.Viper) error {
	v.SetEnvPrefix("CANVASTEST")
	v.AutomaticEnv()

	v.SetConfigName("canvastest")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the test cases by category",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, category := range testcases.Categories() {
				fmt.Fprintln(out, category+":")
				for _, tc := range testcases.All[category] {
					fmt.Fprintf(out, "  %-20s %dx%d\n", tc.Name, tc.Width, tc.Height)
				}
			}
		},
	}
}

func newRenderCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [test ...]",
		Short: "Render test cases to image files",
		Long: "Render the named test cases, or all test cases, to\n" +
			"DIR/<category>_<name>.png (or .pdf for the pdf backend).",
		RunE: func(cmd *cobra.Command, args []string) error {
			tests, err := testcases.Select(args...)
			if err != nil {
				return err
			}
			backend, err := lookupBackend(v.GetString("backend"))
			if err != nil {
				return err
			}
			outDir := v.GetString("out")
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return err
			}

			var errs []error
			for _, tc := range tests {
				_, category, _ := testcases.Lookup(tc.Name)
				fileName := filepath.Join(outDir, category+"_"+tc.Name+backend.ext)
				err := renderFile(backend, tc, fileName, v.GetBool("trace"))
				if err != nil {
					errs = append(errs, err)
					continue
				}
				log.Printf("wrote %s", fileName)
			}
			return errors.Join(errs...)
		},
	}
	cmd.Flags().String("out", "out", "output directory")
	cmd.Flags().Bool("trace", false, "log every drawing command")
	must(v.BindPFlag("out", cmd.Flags().Lookup("out")))
	must(v.BindPFlag("trace", cmd.Flags().Lookup("trace")))
	return cmd
}

func newViewCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the test cases in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := lookupBackend(v.GetString("backend"))
			if err != nil {
				return err
			}
			if backend.newImage == nil {
				return fmt.Errorf("backend %q cannot be used for viewing", backend.name)
			}
			return tui.Run(backend.renderImage)
		},
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
