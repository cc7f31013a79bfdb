/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package render turns an editor Frame into pixels or pages. Frames are
// plain values so rendering can never observe a half-applied input event.
package render

import (
	"gocanvas/internal/scene"
	"gocanvas/internal/vector"
)

// ShapeView is the renderer's copy of one scene shape.
type ShapeView struct {
	ID       string
	Rect     vector.Rect
	Style    vector.Style
	Selected bool
}

// Frame is everything a renderer needs for one redraw. Absent overlays use
// the vector.None sentinel.
type Frame struct {
	Shapes     []ShapeView // bottom to top
	RubberBand vector.Rect
	Boundary   vector.Rect
	Handles    [scene.NumHandles]vector.Rect
	Preview    vector.Rect
}

// EmptyFrame has no shapes and no overlays.
func EmptyFrame() Frame {
	f := Frame{RubberBand: vector.None, Boundary: vector.None, Preview: vector.None}
	for i := range f.Handles {
		f.Handles[i] = vector.None
	}
	return f
}

// Bounds is the union of all shapes and visible overlays, or false when the
// frame draws nothing.
func (f Frame) Bounds() (vector.Rect, bool) {
	var (
		u  vector.Rect
		ok bool
	)
	add := func(r vector.Rect) {
		if r.IsNone() {
			return
		}
		if !ok {
			u, ok = r, true
			return
		}
		u = u.Union(r)
	}
	for _, s := range f.Shapes {
		add(s.Rect)
	}
	add(f.RubberBand)
	add(f.Boundary)
	for _, h := range f.Handles {
		add(h)
	}
	add(f.Preview)
	return u, ok
}
