/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gocanvas/internal/vector"
)

// Options controls snapshot output. Zero values get reasonable defaults.
type Options struct {
	// Width and Height of the surface in canvas units. When zero, the frame
	// bounds plus Padding are used.
	Width, Height int
	Padding       int
	Background    vector.Color
	// Overlay colours the rubber band, boundary, handles and preview.
	Overlay vector.Color
	// Overlays disables drawing of everything except shapes when false.
	Overlays bool
}

// DefaultOptions renders shapes and overlays on white.
func DefaultOptions() Options {
	return Options{Padding: 20, Background: vector.White, Overlay: vector.Color{R: 0, G: 120, B: 215, A: 255}, Overlays: true}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Background == (vector.Color{}) {
		o.Background = d.Background
	}
	if o.Overlay == (vector.Color{}) {
		o.Overlay = d.Overlay
	}
	if o.Padding < 0 {
		o.Padding = 0
	}
	return o
}

// MaxSide caps each side of a surface derived from the frame bounds.
const MaxSide = 8192

// layout resolves the surface size in canvas units and the canvas point that
// lands on its top-left corner. Derived sides grow to take in shapes at
// negative coordinates.
func (o Options) layout(f Frame) (origin vector.Pt, w, h int) {
	w, h = o.Width, o.Height
	if w > 0 && h > 0 {
		return vector.Pt{}, w, h
	}
	b, ok := f.Bounds()
	if !ok {
		return vector.Pt{}, max(w, 1), max(h, 1)
	}
	pad := float32(o.Padding)
	if w <= 0 {
		origin.X = min(0, b.Left-pad)
		w = side(b.Right + pad - origin.X)
	}
	if h <= 0 {
		origin.Y = min(0, b.Top-pad)
		h = side(b.Bottom + pad - origin.Y)
	}
	return origin, w, h
}

func side(v float32) int {
	c := math.Ceil(float64(v))
	switch {
	case math.IsNaN(c) || c < 1:
		return 1
	case c > MaxSide:
		return MaxSide
	}
	return int(c)
}

// WriteFile renders f to path, choosing PNG or PDF by extension. Unknown
// extensions fail before anything is created on disk.
func WriteFile(path string, f Frame, opt Options) error {
	var encode func(io.Writer, Frame, Options) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = PNG
	case ".pdf":
		encode = PDF
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure out dir: %w", err)
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	err = encode(out, f, opt)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close %s: %w", filepath.Base(path), cerr)
	}
	return err
}
