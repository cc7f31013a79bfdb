/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package editor

import "gocanvas/internal/scene"

// Cursor is the pointer feedback a frontend should show. It is derived from
// the session and never stored.
type Cursor uint8

const (
	CursorArrow Cursor = iota
	CursorMove
	CursorCrosshair
	CursorResizeNS
	CursorResizeEW
	CursorResizeNWSE
	CursorResizeNESW
)

func cursorFor(d scene.Dir) Cursor {
	switch d {
	case scene.DirN, scene.DirS:
		return CursorResizeNS
	case scene.DirE, scene.DirW:
		return CursorResizeEW
	case scene.DirNW, scene.DirSE:
		return CursorResizeNWSE
	case scene.DirNE, scene.DirSW:
		return CursorResizeNESW
	}
	return CursorArrow
}

// Cursor reports the feedback for the last known pointer position.
func (s *Session) Cursor() Cursor {
	switch s.mode {
	case ModeDrawRect:
		return CursorCrosshair
	case ModeResize:
		return cursorFor(s.activeHandle)
	case ModeSelected:
		hit := scene.HitTest(s.store, s.sel, true, s.pointer)
		switch hit.Kind {
		case scene.HitHandle:
			return cursorFor(hit.Dir)
		case scene.HitBoundary:
			return CursorMove
		}
	}
	return CursorArrow
}
