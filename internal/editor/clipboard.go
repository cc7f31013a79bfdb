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

// ObjectInfo is the copy/paste payload: size and style of a shape, without
// identity or position.
type ObjectInfo struct {
	Width  float32
	Height float32
	Style  vector.Style
}

// Clipboard returns a copy of the paste buffer.
func (s *Session) Clipboard() []ObjectInfo { return append([]ObjectInfo(nil), s.clipboard...) }

// copySelection replaces the paste buffer with the selected shapes.
func (s *Session) copySelection() {
	s.clipboard = s.clipboard[:0]
	for _, h := range s.sel.Selected() {
		sh, ok := s.store.Get(h)
		if !ok {
			continue
		}
		s.clipboard = append(s.clipboard, ObjectInfo{Width: sh.Width(), Height: sh.Height(), Style: sh.Style})
	}
	s.log.Debug("copied", slog.Int("count", len(s.clipboard)))
}

// paste inserts the single buffered object centered on the pointer. The new
// shape is not selected.
func (s *Session) paste() {
	if len(s.clipboard) != 1 {
		s.log.Debug("paste skipped", slog.Int("buffered", len(s.clipboard)))
		return
	}
	o := s.clipboard[0]
	c := s.pointer
	r := vector.R(c.X-o.Width/2, c.Y-o.Height/2, c.X+o.Width/2, c.Y+o.Height/2)
	h := s.store.Insert(scene.Shape{Rect: r, Style: o.Style})
	s.log.Debug("pasted", slog.Int("handle", int(h)), slog.String("id", s.shapeID(h)))
	s.touch()
}
