/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scene

import "gocanvas/internal/vector"

// Selection tracks the selected shapes of a Store and derives the selection
// boundary and the resize handles from them.
//
// The boundary is vector.None exactly when nothing is selected.
type Selection struct {
	store   *Store
	metrics Metrics

	set   map[Handle]struct{}
	order []Handle

	boundary vector.Rect
	handles  [NumHandles]vector.Rect
}

func NewSelection(store *Store, m Metrics) *Selection {
	s := &Selection{store: store, metrics: m, set: make(map[Handle]struct{})}
	s.setBoundary(vector.None)
	return s
}

func (s *Selection) Len() int { return len(s.order) }

func (s *Selection) Has(h Handle) bool {
	_, ok := s.set[h]
	return ok
}

// Selected returns the selected handles in selection order.
func (s *Selection) Selected() []Handle { return append([]Handle(nil), s.order...) }

// Only returns the selected shape when exactly one is selected.
func (s *Selection) Only() (Handle, bool) {
	if len(s.order) != 1 {
		return NoHandle, false
	}
	return s.order[0], true
}

// Boundary returns the boundary rect and false when nothing is selected.
func (s *Selection) Boundary() (vector.Rect, bool) { return s.boundary, !s.boundary.IsNone() }

// Handles returns the handle squares; disabled handles are vector.None.
func (s *Selection) Handles() [NumHandles]vector.Rect { return s.handles }

// Clear empties the selection and resets the boundary.
func (s *Selection) Clear() {
	clear(s.set)
	s.order = s.order[:0]
	s.setBoundary(vector.None)
}

// SetSingle replaces the selection with h alone.
func (s *Selection) SetSingle(h Handle) {
	s.Clear()
	sh, ok := s.store.Get(h)
	if !ok {
		return
	}
	s.add(h)
	s.setBoundary(sh.Rect.Inflate(s.metrics.SelectionMargin))
}

// SetFromDragRegion updates the selection incrementally so that it holds
// exactly the shapes fully inside region. Shapes already selected and still
// inside stay selected. It returns the resulting selection size.
func (s *Selection) SetFromDragRegion(region vector.Rect) int {
	region = region.Canon()
	s.store.Each(func(h Handle, sh *Shape) bool {
		inside := region.ContainsRect(sh.Rect)
		switch {
		case inside && !s.Has(h):
			s.add(h)
		case !inside && s.Has(h):
			s.remove(h)
		}
		return true
	})
	s.Recompute()
	return len(s.order)
}

// Remove drops h from the selection and recomputes the boundary.
func (s *Selection) Remove(h Handle) {
	if !s.Has(h) {
		return
	}
	s.remove(h)
	s.Recompute()
}

// Move translates every selected shape and the boundary by the same delta.
func (s *Selection) Move(dx, dy float32) {
	if len(s.order) == 0 {
		return
	}
	for _, h := range s.order {
		if sh, ok := s.store.Get(h); ok {
			sh.Move(dx, dy)
		}
	}
	s.setBoundary(s.boundary.Offset(dx, dy))
}

// Recompute derives the boundary from the union of the selected shapes.
func (s *Selection) Recompute() {
	var (
		u     vector.Rect
		found bool
	)
	for _, h := range s.order {
		sh, ok := s.store.Get(h)
		if !ok {
			continue
		}
		if !found {
			u, found = sh.Rect, true
			continue
		}
		u = u.Union(sh.Rect)
	}
	if !found {
		s.setBoundary(vector.None)
		return
	}
	s.setBoundary(u.Inflate(s.metrics.SelectionMargin))
}

// SetBoundary overrides the boundary, used while resizing where the
// boundary follows the pointer rather than the union of the shapes.
func (s *Selection) SetBoundary(b vector.Rect) {
	if len(s.order) == 0 {
		b = vector.None
	}
	s.setBoundary(b)
}

// HandleAt returns the first enabled handle containing p, in Dir order.
func (s *Selection) HandleAt(p vector.Pt) (Dir, bool) {
	for i, r := range s.handles {
		if r.IsNone() {
			continue
		}
		if r.Contains(p) {
			return Dir(i), true
		}
	}
	return DirNone, false
}

func (s *Selection) add(h Handle) {
	s.set[h] = struct{}{}
	s.order = append(s.order, h)
}

func (s *Selection) remove(h Handle) {
	delete(s.set, h)
	for i, o := range s.order {
		if o == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

func (s *Selection) setBoundary(b vector.Rect) {
	s.boundary = b
	s.handles = layoutHandles(b, s.metrics.HandleHalf, len(s.order) == 1)
}
