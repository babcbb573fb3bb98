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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/canvas/testcases"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"transform:", "star", "path_transform", "dash"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output is missing %q", want)
		}
	}
}

func TestRender(t *testing.T) {
	for _, name := range backendNames() {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			_, err := run(t, "render", "--backend", name, "--out", dir, "star")
			if err != nil {
				t.Fatal(err)
			}
			b, _ := lookupBackend(name)
			fileName := filepath.Join(dir, "transform_star"+b.ext)
			info, err := os.Stat(fileName)
			if err != nil {
				t.Fatal(err)
			}
			if info.Size() == 0 {
				t.Error("empty output file")
			}
		})
	}
}

func TestRenderFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CANVASTEST_BACKEND", "pdf")
	t.Setenv("CANVASTEST_OUT", dir)
	if _, err := run(t, "render", "arc"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "curve_arc.pdf")); err != nil {
		t.Error(err)
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(t, "render", "--out", dir, "no_such_test"); err == nil {
		t.Error("unknown test accepted")
	}
	if _, err := run(t, "render", "--backend", "crayon", "--out", dir); err == nil {
		t.Error("unknown backend accepted")
	}
	if _, err := run(t, "view", "--backend", "pdf"); err == nil {
		t.Error("pdf backend accepted for viewing")
	}
}

func TestRenderImage(t *testing.T) {
	b, err := lookupBackend("raster")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"star", "bubble"} {
		tc, _, _ := testcases.Lookup(name)
		img, err := b.renderImage(tc)
		if err != nil {
			t.Fatal(err)
		}
		if got := img.Bounds().Dx(); got != tc.Width {
			t.Errorf("%s: image width %d, want %d", name, got, tc.Width)
		}
	}
}
