/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scene

import "gocanvas/internal/vector"

// Dir names one of the eight resize handles around the selection boundary.
// The order is also the hit-test order.
type Dir int8

const (
	DirNone Dir = iota - 1
	DirNW
	DirN
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW

	NumHandles = 8
)

var dirNames = [NumHandles]string{"nw", "n", "ne", "e", "se", "s", "sw", "w"}

func (d Dir) String() string {
	if d < 0 || int(d) >= NumHandles {
		return "none"
	}
	return dirNames[d]
}

// Corner reports whether d is one of the four corner handles.
func (d Dir) Corner() bool { return d == DirNW || d == DirNE || d == DirSE || d == DirSW }

// Edges is the direction vector of a handle: 1 for every rect edge that the
// handle drags, 0 for edges it leaves alone.
type Edges struct{ Left, Top, Right, Bottom float32 }

// Edges maps the handle to the rect edges it controls; a north handle only
// moves the top edge, a north-west handle moves left and top.
func (d Dir) Edges() Edges {
	switch d {
	case DirNW:
		return Edges{Left: 1, Top: 1}
	case DirN:
		return Edges{Top: 1}
	case DirNE:
		return Edges{Right: 1, Top: 1}
	case DirE:
		return Edges{Right: 1}
	case DirSE:
		return Edges{Right: 1, Bottom: 1}
	case DirS:
		return Edges{Bottom: 1}
	case DirSW:
		return Edges{Left: 1, Bottom: 1}
	case DirW:
		return Edges{Left: 1}
	}
	return Edges{}
}

// Apply adds the pointer delta to the controlled edges of r.
func (e Edges) Apply(r vector.Rect, dx, dy float32) vector.Rect {
	r.Left += e.Left * dx
	r.Right += e.Right * dx
	r.Top += e.Top * dy
	r.Bottom += e.Bottom * dy
	return r
}

// Horizontal and Vertical report whether the handle drags along that axis.
func (e Edges) Horizontal() bool { return e.Left != 0 || e.Right != 0 }
func (e Edges) Vertical() bool   { return e.Top != 0 || e.Bottom != 0 }

// Anchor is the point of b that stays fixed while dragging d: the corner or
// edge opposite the handle.
func (d Dir) Anchor(b vector.Rect) vector.Pt {
	e := d.Edges()
	p := b.Center()
	switch {
	case e.Left != 0:
		p.X = b.Right
	case e.Right != 0:
		p.X = b.Left
	}
	switch {
	case e.Top != 0:
		p.Y = b.Bottom
	case e.Bottom != 0:
		p.Y = b.Top
	}
	return p
}

// layoutHandles positions the eight handle squares around boundary b.
// Edge-midpoint handles are only placed when single is true.
func layoutHandles(b vector.Rect, half float32, single bool) [NumHandles]vector.Rect {
	var hs [NumHandles]vector.Rect
	for i := range hs {
		hs[i] = vector.None
	}
	if b.IsNone() {
		return hs
	}
	c := b.Center()
	hs[DirNW] = vector.Square(vector.Pt{X: b.Left, Y: b.Top}, half)
	hs[DirNE] = vector.Square(vector.Pt{X: b.Right, Y: b.Top}, half)
	hs[DirSE] = vector.Square(vector.Pt{X: b.Right, Y: b.Bottom}, half)
	hs[DirSW] = vector.Square(vector.Pt{X: b.Left, Y: b.Bottom}, half)
	if single {
		hs[DirN] = vector.Square(vector.Pt{X: c.X, Y: b.Top}, half)
		hs[DirE] = vector.Square(vector.Pt{X: b.Right, Y: c.Y}, half)
		hs[DirS] = vector.Square(vector.Pt{X: c.X, Y: b.Bottom}, half)
		hs[DirW] = vector.Square(vector.Pt{X: b.Left, Y: c.Y}, half)
	}
	return hs
}
