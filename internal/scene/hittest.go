/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scene

import (
	"fmt"

	"gocanvas/internal/vector"
)

// HitKind classifies what a pointer position landed on.
type HitKind uint8

const (
	HitNone HitKind = iota
	HitShape
	HitHandle
	HitBoundary
)

func (k HitKind) String() string {
	switch k {
	case HitShape:
		return "shape"
	case HitHandle:
		return "handle"
	case HitBoundary:
		return "boundary"
	default:
		return "none"
	}
}

// Hit is the result of a hit test. Shape is set for HitShape, Dir for HitHandle.
type Hit struct {
	Kind  HitKind
	Shape Handle
	Dir   Dir
}

func (h Hit) String() string {
	switch h.Kind {
	case HitShape:
		return fmt.Sprintf("shape#%d", h.Shape)
	case HitHandle:
		return "handle:" + h.Dir.String()
	default:
		return h.Kind.String()
	}
}

// HitShapeAt reports whether p selects sh given the hit margin.
// Filled shapes are hit anywhere inside their rect grown by margin. Shapes
// without fill are hit only on a band of width margin around their outline.
func HitShapeAt(sh *Shape, p vector.Pt, margin float32) bool {
	r := sh.Rect
	if !r.Inflate(margin).Contains(p) {
		return false
	}
	if !sh.Style.OutlineOnly() {
		return true
	}
	near := func(v, edge float32) bool { return v >= edge-margin && v <= edge+margin }
	return near(p.Y, r.Top) || near(p.Y, r.Bottom) || near(p.X, r.Left) || near(p.X, r.Right)
}

// ShapeAt returns the topmost shape hit by p.
func (s *Store) ShapeAt(p vector.Pt, margin float32) (Handle, bool) {
	for i := len(s.order) - 1; i >= 0; i-- {
		h := s.order[i]
		if HitShapeAt(s.shapes[h], p, margin) {
			return h, true
		}
	}
	return NoHandle, false
}

// HitTest classifies p against the current state. With selectionLive set the
// resize handles are tried first, then the boundary grown by the object
// margin; the scene shapes are scanned last, topmost first.
func HitTest(store *Store, sel *Selection, selectionLive bool, p vector.Pt) Hit {
	if selectionLive {
		if d, ok := sel.HandleAt(p); ok {
			return Hit{Kind: HitHandle, Dir: d}
		}
		if b, ok := sel.Boundary(); ok && b.Inflate(sel.metrics.ObjectMargin).Contains(p) {
			return Hit{Kind: HitBoundary, Dir: DirNone}
		}
	}
	if h, ok := store.ShapeAt(p, sel.metrics.ObjectMargin); ok {
		return Hit{Kind: HitShape, Shape: h, Dir: DirNone}
	}
	return Hit{Kind: HitNone, Dir: DirNone}
}
