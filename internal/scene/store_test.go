/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scene

import (
	"errors"
	"testing"

	"gocanvas/internal/vector"
)

func TestInsertCanonicalisesAndAssignsID(t *testing.T) {
	s := NewStore()
	h := s.Insert(Shape{Rect: vector.R(100, 90, 10, 20), Style: vector.DefaultStyle})
	sh, ok := s.Get(h)
	if !ok {
		t.Fatalf("inserted shape not found")
	}
	if sh.Rect != vector.R(10, 20, 100, 90) {
		t.Fatalf("rect not canonical: %+v", sh.Rect)
	}
	if sh.Rect.Left > sh.Rect.Right || sh.Rect.Top > sh.Rect.Bottom {
		t.Fatalf("edges out of order: %+v", sh.Rect)
	}
	if sh.ID == "" {
		t.Fatalf("expected generated ID")
	}
}

func TestIdenticalGeometryIsDistinct(t *testing.T) {
	s := NewStore()
	a := s.Insert(Shape{Rect: vector.R(0, 0, 10, 10)})
	b := s.Insert(Shape{Rect: vector.R(0, 0, 10, 10)})
	if a == b {
		t.Fatalf("two inserts must yield distinct handles")
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 shapes, got %d", s.Len())
	}
	if !s.Remove(a) || !s.Contains(b) {
		t.Fatalf("removing one must keep the other")
	}
}

func TestRemoveKeepsOrderAndReportsMissing(t *testing.T) {
	s := NewStore()
	a := s.Insert(Shape{Rect: vector.R(0, 0, 1, 1)})
	b := s.Insert(Shape{Rect: vector.R(0, 0, 2, 2)})
	c := s.Insert(Shape{Rect: vector.R(0, 0, 3, 3)})
	if !s.Remove(b) {
		t.Fatalf("remove of member returned false")
	}
	got := s.Handles()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Fatalf("unexpected order after remove: %v", got)
	}
	if s.Remove(b) {
		t.Fatalf("second remove must report false")
	}
}

func TestRemoveStrictPanics(t *testing.T) {
	s := NewStore()
	s.Strict = true
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNotInScene) {
			t.Fatalf("expected ErrNotInScene panic, got %v", r)
		}
	}()
	s.Remove(42)
}

func TestClearDoesNotReuseHandles(t *testing.T) {
	s := NewStore()
	a := s.Insert(Shape{})
	s.Clear()
	if s.Len() != 0 || s.Contains(a) {
		t.Fatalf("clear left shapes behind")
	}
	if b := s.Insert(Shape{}); b == a {
		t.Fatalf("handle %d reused after clear", b)
	}
}

func TestEachStopsEarly(t *testing.T) {
	s := NewStore()
	for i := 0; i < 5; i++ {
		s.Insert(Shape{})
	}
	n := 0
	s.Each(func(Handle, *Shape) bool {
		n++
		return n < 3
	})
	if n != 3 {
		t.Fatalf("expected 3 visits, got %d", n)
	}
}

func TestInsertAssignsUniqueIDsAndFindResolvesThem(t *testing.T) {
	s := NewStore()
	a := s.Insert(Shape{})
	b := s.Insert(Shape{})
	k := s.Insert(Shape{ID: "keep"})
	sa, _ := s.Get(a)
	sb, _ := s.Get(b)
	if sa.ID == "" || sa.ID == sb.ID {
		t.Fatalf("generated IDs must be non-empty and distinct: %q %q", sa.ID, sb.ID)
	}
	if h, ok := s.Find("keep"); !ok || h != k {
		t.Fatalf("Find(keep) = %d,%v want %d", h, ok, k)
	}
	if h, ok := s.Find(sb.ID); !ok || h != b {
		t.Fatalf("Find(generated) = %d,%v want %d", h, ok, b)
	}
	s.Remove(k)
	if _, ok := s.Find("keep"); ok {
		t.Fatalf("removed shape still found")
	}
}
