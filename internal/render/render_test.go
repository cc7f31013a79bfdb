/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gocanvas/internal/vector"
)

func sampleFrame() Frame {
	f := EmptyFrame()
	f.Shapes = []ShapeView{
		{ID: "a", Rect: vector.R(10, 10, 60, 40), Style: vector.Style{Line: vector.Black, Fill: vector.Color{R: 255, A: 255}, StrokeWidth: 2}},
		{ID: "b", Rect: vector.R(80, 20, 120, 70), Style: vector.DefaultStyle, Selected: true},
	}
	f.Boundary = vector.R(75, 15, 125, 75)
	f.Handles[0] = vector.Square(vector.Pt{X: 75, Y: 15}, 5)
	return f
}

func TestEmptyFrameHasNoBounds(t *testing.T) {
	f := EmptyFrame()
	if _, ok := f.Bounds(); ok {
		t.Fatalf("empty frame must not report bounds")
	}
	for i, h := range f.Handles {
		if !h.IsNone() {
			t.Fatalf("handle %d should be None", i)
		}
	}
}

func TestFrameBoundsIncludesOverlays(t *testing.T) {
	b, ok := sampleFrame().Bounds()
	if !ok {
		t.Fatalf("expected bounds")
	}
	if b != vector.R(10, 10, 125, 75) {
		t.Fatalf("unexpected bounds %+v", b)
	}
}

func TestRasterizeFillAndOutline(t *testing.T) {
	img := Rasterize(sampleFrame(), Options{Width: 140, Height: 90})
	if b := img.Bounds(); b.Dx() != 140 || b.Dy() != 90 {
		t.Fatalf("unexpected size %v", b)
	}
	// inside the filled shape
	if c := img.NRGBAAt(35, 25); c.R != 255 || c.G != 0 || c.B != 0 {
		t.Fatalf("filled interior = %+v", c)
	}
	// inside the outline-only shape stays background
	if c := img.NRGBAAt(100, 45); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Fatalf("outline interior = %+v", c)
	}
	// on the outline's left edge
	if c := img.NRGBAAt(80, 45); c.R > 200 {
		t.Fatalf("outline edge not drawn: %+v", c)
	}
}

func TestPNGDerivesSizeFromBounds(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, sampleFrame(), Options{Padding: 5}); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 130 || b.Dy() != 80 {
		t.Fatalf("unexpected size %v", b)
	}
}

func TestPDFWritesDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := PDF(&buf, sampleFrame(), DefaultOptions()); err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestWriteFileByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"snap.png", "snap.pdf"} {
		p := filepath.Join(dir, "out", name)
		if err := WriteFile(p, sampleFrame(), DefaultOptions()); err != nil {
			t.Fatalf("WriteFile(%s): %v", name, err)
		}
		if st, err := os.Stat(p); err != nil || st.Size() == 0 {
			t.Fatalf("%s not written: %v", name, err)
		}
	}
	if err := WriteFile(filepath.Join(dir, "snap.gif"), sampleFrame(), DefaultOptions()); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

func TestWriteFileRejectsUnknownExtensionBeforeCreating(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh")
	p := filepath.Join(dir, "snap.svg")
	if err := WriteFile(p, sampleFrame(), DefaultOptions()); err == nil {
		t.Fatalf("expected unsupported format error")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("unsupported format left %s behind: %v", dir, err)
	}
}

func TestRasterizeKeepsNegativeShapesInView(t *testing.T) {
	red := vector.Color{R: 255, A: 255}
	f := EmptyFrame()
	f.Shapes = []ShapeView{{ID: "neg", Rect: vector.R(-50, -30, 10, 20), Style: vector.Style{Fill: red}}}
	img := Rasterize(f, Options{})
	if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 50 {
		t.Fatalf("size = %dx%d, want 60x50", b.Dx(), b.Dy())
	}
	for _, p := range [][2]int{{2, 2}, {57, 47}, {30, 25}} {
		if c := img.NRGBAAt(p[0], p[1]); c.R != 255 || c.G != 0 {
			t.Fatalf("pixel %v = %+v, want red", p, c)
		}
	}

	var buf bytes.Buffer
	if err := PDF(&buf, f, Options{Padding: 4}); err != nil || buf.Len() == 0 {
		t.Fatalf("PDF with negative shape: %v", err)
	}
}

func TestLayoutClampsHugeBounds(t *testing.T) {
	f := EmptyFrame()
	f.Shapes = []ShapeView{{ID: "big", Rect: vector.R(-1e7, 0, 1e7, 1e9), Style: vector.DefaultStyle}}
	origin, w, h := DefaultOptions().layout(f)
	if w != MaxSide || h != MaxSide {
		t.Fatalf("size = %dx%d, want %d", w, h, MaxSide)
	}
	if origin.X >= 0 || origin.Y != 0 {
		t.Fatalf("origin = %+v", origin)
	}
	if _, w, h = (Options{Width: 30, Height: 20}).layout(f); w != 30 || h != 20 {
		t.Fatalf("explicit size ignored: %dx%d", w, h)
	}
}
