/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package editor

import (
	"testing"

	"gocanvas/internal/scene"
	"gocanvas/internal/vector"
)

func TestNudgeZero(t *testing.T) {
	cases := []struct {
		d              scene.Dir
		dx, dy, wx, wy float32
	}{
		{scene.DirSE, 0, 4, 1, 4},
		{scene.DirSE, -3, 0, -3, -1},
		{scene.DirNW, 0, -2, -1, -2},
		{scene.DirNE, 0, 4, -1, 4},
		{scene.DirSW, 5, 0, 5, -1},
		{scene.DirSE, 2, 3, 2, 3},
		{scene.DirSE, 0, 0, 0, 0},
		{scene.DirE, 0, 4, 0, 4},
	}
	for _, c := range cases {
		gx, gy := nudgeZero(c.d, c.dx, c.dy)
		if gx != c.wx || gy != c.wy {
			t.Fatalf("nudgeZero(%s, %v, %v) = (%v, %v), want (%v, %v)", c.d, c.dx, c.dy, gx, gy, c.wx, c.wy)
		}
	}
}

func TestCursorFeedback(t *testing.T) {
	s := New(DefaultConfig())
	if s.Cursor() != CursorArrow {
		t.Fatalf("idle cursor should be arrow")
	}
	s.Insert(vector.R(100, 100, 200, 150), solid)
	click(s, pt(150, 125))
	s.Hover(pt(205, 125))
	if s.Cursor() != CursorResizeEW {
		t.Fatalf("expected east-west cursor over east handle, got %d", s.Cursor())
	}
	s.Hover(pt(150, 125))
	if s.Cursor() != CursorMove {
		t.Fatalf("expected move cursor over boundary, got %d", s.Cursor())
	}
	s.Do(ActionRectTool)
	if s.Cursor() != CursorCrosshair {
		t.Fatalf("expected crosshair with rect tool")
	}
}
