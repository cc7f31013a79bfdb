/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

// Basic 2D geometry for the drawing surface.
// Float values use float32 for compactness and to align with many UI libs.

// Pt is a 2D point.
type Pt struct{ X, Y float32 }

// Sub returns p-q.
func (p Pt) Sub(q Pt) Pt { return Pt{p.X - q.X, p.Y - q.Y} }

// Rect is an axis-aligned rectangle defined by its four edges.
// A canonical rect has Left <= Right and Top <= Bottom.
type Rect struct {
	Left, Top     float32
	Right, Bottom float32
}

// NonePoint is the coordinate used by the None sentinel. It lies outside the
// drawing surface, which starts at the origin.
const NonePoint float32 = -10

// None marks "no geometry" for optional rects handed to renderers.
var None = Rect{Left: NonePoint, Top: NonePoint, Right: NonePoint, Bottom: NonePoint}

func R(left, top, right, bottom float32) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// FromPoints builds the canonical rect spanned by two corners.
func FromPoints(a, b Pt) Rect { return Rect{a.X, a.Y, b.X, b.Y}.Canon() }

// IsNone reports whether r is the None sentinel.
func (r Rect) IsNone() bool { return r == None }

func (r Rect) Width() float32  { return r.Right - r.Left }
func (r Rect) Height() float32 { return r.Bottom - r.Top }
func (r Rect) Center() Pt      { return Pt{(r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2} }

// Empty reports a rect without area.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Canon swaps edges so that Left <= Right and Top <= Bottom.
func (r Rect) Canon() Rect {
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

// Offset translates both corners.
func (r Rect) Offset(dx, dy float32) Rect {
	return Rect{r.Left + dx, r.Top + dy, r.Right + dx, r.Bottom + dy}
}

// Inflate grows the rect by m on all sides (negative shrinks).
func (r Rect) Inflate(m float32) Rect {
	return Rect{r.Left - m, r.Top - m, r.Right + m, r.Bottom + m}
}

// Contains is inclusive on all edges.
func (r Rect) Contains(p Pt) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// ContainsRect reports whether all four edges of o lie inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.Left >= r.Left && o.Right <= r.Right && o.Top >= r.Top && o.Bottom <= r.Bottom
}

// Union returns the minimal rect containing both.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Left:   min(r.Left, o.Left),
		Top:    min(r.Top, o.Top),
		Right:  max(r.Right, o.Right),
		Bottom: max(r.Bottom, o.Bottom),
	}
}

// Square returns the square of half-size h centered at c.
func Square(c Pt, h float32) Rect { return Rect{c.X - h, c.Y - h, c.X + h, c.Y + h} }
