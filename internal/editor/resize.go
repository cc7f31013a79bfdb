/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package editor

import (
	"log/slog"

	"gocanvas/internal/scene"
	"gocanvas/internal/vector"
)

// resize applies the pointer delta since the last move to the selection.
// A single shape follows the handle's edges directly; several shapes are
// scaled proportionally about the point opposite the handle.
func (s *Session) resize(p vector.Pt) {
	d := p.Sub(s.dragStart)
	if d.X == 0 && d.Y == 0 {
		return
	}
	b, ok := s.sel.Boundary()
	if !ok || s.activeHandle == scene.DirNone {
		s.log.Warn("resize without boundary or handle", slog.String("handle", s.activeHandle.String()))
		return
	}
	edges := s.activeHandle.Edges()

	if h, single := s.sel.Only(); single {
		if sh, ok := s.store.Get(h); ok {
			sh.SetRect(edges.Apply(sh.Rect, d.X, d.Y))
		}
		s.sel.SetBoundary(edges.Apply(b, d.X, d.Y))
	} else {
		dx, dy := nudgeZero(s.activeHandle, d.X, d.Y)
		s.resizeProportional(b, dx, dy)
	}
	s.dragStart = p
	s.touch()
}

// resizeProportional moves every coordinate of every selected shape by its
// distance from the fixed point as a fraction of the boundary extent, times
// the delta. The boundary itself takes the raw delta on the dragged edges.
func (s *Session) resizeProportional(b vector.Rect, dx, dy float32) {
	edges := s.activeHandle.Edges()
	anchor := s.activeHandle.Anchor(b)
	w, h := b.Width(), b.Height()
	for _, hd := range s.sel.Selected() {
		sh, ok := s.store.Get(hd)
		if !ok {
			continue
		}
		r := sh.Rect
		if edges.Horizontal() && w != 0 {
			r.Left += abs(anchor.X-r.Left) / w * dx
			r.Right += abs(anchor.X-r.Right) / w * dx
		}
		if edges.Vertical() && h != 0 {
			r.Top += abs(anchor.Y-r.Top) / h * dy
			r.Bottom += abs(anchor.Y-r.Bottom) / h * dy
		}
		sh.SetRect(r)
	}
	s.sel.SetBoundary(edges.Apply(b, dx, dy))
}

// nudgeZero replaces a zero component of a corner drag with ±1 so the
// proportional resize never stalls on one axis. The sign follows the handle
// diagonal: NW and SE keep both components equal in sign, NE and SW opposite.
// It is unclear whether this was intended anti-stall logic or a rounding
// artifact of earlier integer coordinates; it is kept until that is decided.
func nudgeZero(d scene.Dir, dx, dy float32) (float32, float32) {
	if !d.Corner() || (dx == 0) == (dy == 0) {
		return dx, dy
	}
	same := d == scene.DirNW || d == scene.DirSE
	if dx == 0 {
		dx = sign(dy)
		if !same {
			dx = -dx
		}
	} else {
		dy = sign(dx)
		if !same {
			dy = -dy
		}
	}
	return dx, dy
}

// finishResize puts every resized shape back into canonical form and
// resyncs the boundary with the shapes.
func (s *Session) finishResize() {
	for _, h := range s.sel.Selected() {
		if sh, ok := s.store.Get(h); ok {
			sh.SetRect(sh.Rect.Canon())
		}
	}
	s.sel.Recompute()
	s.touch()
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}
