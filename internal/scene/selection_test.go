/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scene

import (
	"testing"

	"gocanvas/internal/vector"
)

func newTestSelection() (*Store, *Selection) {
	st := NewStore()
	return st, NewSelection(st, DefaultMetrics)
}

func TestSetSingleBoundaryAndHandles(t *testing.T) {
	st, sel := newTestSelection()
	h := st.Insert(Shape{Rect: vector.R(100, 100, 200, 150)})
	sel.SetSingle(h)
	b, ok := sel.Boundary()
	if !ok {
		t.Fatalf("expected a boundary")
	}
	if want := vector.R(95, 95, 205, 155); b != want {
		t.Fatalf("boundary = %+v, want %+v", b, want)
	}
	hs := sel.Handles()
	for i, r := range hs {
		if r.IsNone() {
			t.Fatalf("handle %s disabled for single selection", Dir(i))
		}
	}
	if c := hs[DirN].Center(); c != (vector.Pt{X: 150, Y: 95}) {
		t.Fatalf("north handle centered at %+v", c)
	}
	if c := hs[DirSE].Center(); c != (vector.Pt{X: 205, Y: 155}) {
		t.Fatalf("south-east handle centered at %+v", c)
	}
}

func TestEmptySelectionHasNoBoundary(t *testing.T) {
	_, sel := newTestSelection()
	if _, ok := sel.Boundary(); ok {
		t.Fatalf("empty selection must not have a boundary")
	}
	for i, r := range sel.Handles() {
		if !r.IsNone() {
			t.Fatalf("handle %s enabled without selection", Dir(i))
		}
	}
}

func TestDragRegionIdempotent(t *testing.T) {
	st, sel := newTestSelection()
	st.Insert(Shape{Rect: vector.R(10, 10, 20, 20)})
	st.Insert(Shape{Rect: vector.R(30, 30, 40, 40)})
	st.Insert(Shape{Rect: vector.R(300, 300, 400, 400)})
	region := vector.R(0, 0, 100, 100)
	n1 := sel.SetFromDragRegion(region)
	first := sel.Selected()
	n2 := sel.SetFromDragRegion(region)
	second := sel.Selected()
	if n1 != 2 || n2 != 2 {
		t.Fatalf("expected 2 selected both times, got %d and %d", n1, n2)
	}
	if len(first) != len(second) || first[0] != second[0] || first[1] != second[1] {
		t.Fatalf("selection changed between identical calls: %v vs %v", first, second)
	}
}

func TestDragRegionShrinkDropsShape(t *testing.T) {
	st, sel := newTestSelection()
	a := st.Insert(Shape{Rect: vector.R(10, 10, 20, 20)})
	b := st.Insert(Shape{Rect: vector.R(50, 50, 60, 60)})
	if n := sel.SetFromDragRegion(vector.R(0, 0, 100, 100)); n != 2 {
		t.Fatalf("expected both selected, got %d", n)
	}
	hs := sel.Handles()
	if !hs[DirN].IsNone() {
		t.Fatalf("edge handles must be disabled for multi selection")
	}
	if hs[DirNW].IsNone() {
		t.Fatalf("corner handles must stay enabled for multi selection")
	}
	if n := sel.SetFromDragRegion(vector.R(0, 0, 30, 30)); n != 1 {
		t.Fatalf("expected one selected after shrink, got %d", n)
	}
	if !sel.Has(a) || sel.Has(b) {
		t.Fatalf("expected only A selected")
	}
	bnd, _ := sel.Boundary()
	if want := vector.R(5, 5, 25, 25); bnd != want {
		t.Fatalf("boundary = %+v, want %+v", bnd, want)
	}
	if sel.Handles()[DirN].IsNone() {
		t.Fatalf("edge handles must come back for a single shape")
	}
	if n := sel.SetFromDragRegion(vector.R(200, 200, 210, 210)); n != 0 {
		t.Fatalf("expected empty selection, got %d", n)
	}
	if _, ok := sel.Boundary(); ok {
		t.Fatalf("empty region must reset boundary to none")
	}
}

func TestDragRegionRequiresFullContainment(t *testing.T) {
	st, sel := newTestSelection()
	st.Insert(Shape{Rect: vector.R(10, 10, 50, 50)})
	if n := sel.SetFromDragRegion(vector.R(0, 0, 49, 100)); n != 0 {
		t.Fatalf("partially covered shape must not be selected")
	}
	if n := sel.SetFromDragRegion(vector.R(60, 60, 0, 0)); n != 1 {
		t.Fatalf("inverted region should be canonicalised, got %d", n)
	}
}

func TestMoveTranslatesShapesAndBoundary(t *testing.T) {
	st, sel := newTestSelection()
	a := st.Insert(Shape{Rect: vector.R(10, 10, 20, 20)})
	b := st.Insert(Shape{Rect: vector.R(40, 40, 60, 60)})
	sel.SetFromDragRegion(vector.R(0, 0, 100, 100))
	before, _ := sel.Boundary()
	sel.Move(5, -3)
	sa, _ := st.Get(a)
	sb, _ := st.Get(b)
	if sa.Rect != vector.R(15, 7, 25, 17) || sb.Rect != vector.R(45, 37, 65, 57) {
		t.Fatalf("shapes not translated: %+v %+v", sa.Rect, sb.Rect)
	}
	after, _ := sel.Boundary()
	if after != before.Offset(5, -3) {
		t.Fatalf("boundary not translated: %+v -> %+v", before, after)
	}
}

func TestDirAnchorAndEdges(t *testing.T) {
	b := vector.R(0, 0, 100, 50)
	if p := DirNW.Anchor(b); p != (vector.Pt{X: 100, Y: 50}) {
		t.Fatalf("NW anchor = %+v", p)
	}
	if p := DirE.Anchor(b); p != (vector.Pt{X: 0, Y: 25}) {
		t.Fatalf("E anchor = %+v", p)
	}
	r := DirN.Edges().Apply(b, 7, 9)
	if r != vector.R(0, 9, 100, 50) {
		t.Fatalf("north handle moved other edges: %+v", r)
	}
}
