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
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/canvas/ggcanvas"
	"seehuhn.de/go/canvas/pdfcanvas"
	"seehuhn.de/go/canvas/recorder"
	"seehuhn.de/go/canvas/rxcanvas"
	"seehuhn.de/go/canvas/testcases"
)

// backend describes one way of rendering test cases.
type backend struct {
	name string
	ext  string

	// newImage returns a fresh surface, and a function which gives the
	// image drawn on it.  This is nil for backends which do not produce
	// images.
	newImage func(width, height int) (canvas.Surface, func() image.Image)
}

var backends = []*backend{
	{
		name: "raster",
		ext:  ".png",
		newImage: func(width, height int) (canvas.Surface, func() image.Image) {
			s := canvas.NewImageSurface(width, height)
			return s, func() image.Image { return s.Image }
		},
	},
	{
		name: "rasterx",
		ext:  ".png",
		newImage: func(width, height int) (canvas.Surface, func() image.Image) {
			s := rxcanvas.NewSurface(width, height)
			return s, func() image.Image { return s.Image }
		},
	},
	{
		name: "gg",
		ext:  ".png",
		newImage: func(width, height int) (canvas.Surface, func() image.Image) {
			s := ggcanvas.NewSurface(width, height)
			return s, s.Image
		},
	},
	{
		name: "pdf",
		ext:  ".pdf",
	},
}

func backendNames() []string {
	var names []string
	for _, b := range backends {
		names = append(names, b.name)
	}
	return names
}

func lookupBackend(name string) (*backend, error) {
	for _, b := range backends {
		if b.name == name {
			return b, nil
		}
	}
	return nil, fmt.Errorf("unknown backend %q", name)
}

// renderImage draws tc and returns the image.
func (b *backend) renderImage(tc testcases.TestCase) (image.Image, error) {
	s, img := b.newImage(tc.Width, tc.Height)
	if err := draw(s, tc, false); err != nil {
		return nil, err
	}
	return img(), nil
}

// renderFile draws tc into the named file.
func renderFile(b *backend, tc testcases.TestCase, fileName string, trace bool) error {
	if b.newImage == nil {
		s, err := pdfcanvas.Create(fileName, tc.Width, tc.Height)
		if err != nil {
			return err
		}
		drawErr := draw(s, tc, trace)
		err = s.Close()
		if drawErr != nil {
			return drawErr
		}
		return err
	}

	s, img := b.newImage(tc.Width, tc.Height)
	if err := draw(s, tc, trace); err != nil {
		return err
	}

	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = png.Encode(f, img())
	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}

// draw runs tc on s.  With trace set, every drawing command is logged.
func draw(s canvas.Surface, tc testcases.TestCase, trace bool) error {
	if trace {
		if ctx, ok := s.Context2D(); ok {
			rs := recorder.NewSurface(ctx)
			rs.Rec.OnOp = func(op recorder.Op) {
				log.Printf("%s: %s", tc.Name, op)
			}
			s = rs
		}
	}
	doc := canvas.NewDocument()
	doc.Add(tc.Name, s)
	return testcases.Draw(doc, tc)
}
