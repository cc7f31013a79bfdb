/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package scene holds the live shapes of the drawing surface together with
// the selection state and the hit-testing rules used by the editor.
// It is UI-agnostic and deterministic so it can be unit tested headless.
package scene

import "gocanvas/internal/vector"

// Handle addresses a shape inside a Store. Handles are stable for the
// lifetime of the shape and never reused by the same store.
type Handle uint32

// NoHandle is the zero handle; no shape is ever stored under it.
const NoHandle Handle = 0

// Shape is an axis-aligned rectangle with line/fill styling.
// Identity is the Handle under which the Store keeps it, not its geometry.
type Shape struct {
	ID    string
	Rect  vector.Rect
	Style vector.Style
}

func (s *Shape) Width() float32        { return s.Rect.Width() }
func (s *Shape) Height() float32       { return s.Rect.Height() }
func (s *Shape) Center() vector.Pt     { return s.Rect.Center() }
func (s *Shape) SetRect(r vector.Rect) { s.Rect = r }

// Move translates both corners.
func (s *Shape) Move(dx, dy float32) { s.Rect = s.Rect.Offset(dx, dy) }

// Metrics are the fixed distances used for hit-testing and selection visuals.
type Metrics struct {
	// ObjectMargin widens shape hit areas and the boundary hit area. It is
	// also the offset applied to duplicates.
	ObjectMargin float32
	// SelectionMargin separates the selection boundary from the selected shapes.
	SelectionMargin float32
	// HandleHalf is half the edge length of a resize handle square.
	HandleHalf float32
}

// DefaultMetrics mirrors the values the canvas has always shipped with.
var DefaultMetrics = Metrics{ObjectMargin: 10, SelectionMargin: 5, HandleHalf: 5}
