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
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	applog "gocanvas/internal/log"
)

// ErrNotInScene is reported when an operation targets a handle the store does not own.
var ErrNotInScene = errors.New("shape not in scene")

// Store owns the live shapes. It is an arena addressed by Handle and keeps
// insertion order, which doubles as z-order (later shapes are on top).
// Store is not safe for concurrent use; the editor drives it from one goroutine.
type Store struct {
	shapes map[Handle]*Shape
	order  []Handle
	next   Handle

	// Strict turns invariant violations (removing a shape that is not in the
	// scene) into panics. Release builds leave it off and only log.
	Strict bool

	log *slog.Logger
}

func NewStore() *Store {
	return &Store{
		shapes: make(map[Handle]*Shape, 256),
		next:   1,
		log:    applog.WithComponent("scene"),
	}
}

// Insert canonicalises the rect, assigns an ID when missing and takes
// ownership of the shape.
func (s *Store) Insert(sh Shape) Handle {
	sh.Rect = sh.Rect.Canon()
	if sh.ID == "" {
		sh.ID = uuid.NewString()
	}
	h := s.next
	s.next++
	s.shapes[h] = &sh
	s.order = append(s.order, h)
	return h
}

// Remove deletes the shape and reports whether it was present.
func (s *Store) Remove(h Handle) bool {
	if _, ok := s.shapes[h]; !ok {
		err := fmt.Errorf("remove handle %d: %w", h, ErrNotInScene)
		if s.Strict {
			panic(err)
		}
		s.log.Warn("invariant violation", slog.Any("err", err))
		return false
	}
	delete(s.shapes, h)
	for i, o := range s.order {
		if o == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the shape for h. The pointer stays valid until h is removed.
func (s *Store) Get(h Handle) (*Shape, bool) {
	sh, ok := s.shapes[h]
	return sh, ok
}

// Find returns the handle of the shape with the given ID.
func (s *Store) Find(id string) (Handle, bool) {
	for _, h := range s.order {
		if s.shapes[h].ID == id {
			return h, true
		}
	}
	return 0, false
}

func (s *Store) Contains(h Handle) bool {
	_, ok := s.shapes[h]
	return ok
}

func (s *Store) Len() int { return len(s.order) }

// Handles returns a copy of the handles in z-order (bottom first).
func (s *Store) Handles() []Handle { return append([]Handle(nil), s.order...) }

// Each visits shapes bottom to top until fn returns false.
func (s *Store) Each(fn func(Handle, *Shape) bool) {
	for _, h := range s.order {
		if !fn(h, s.shapes[h]) {
			return
		}
	}
}

// Clear drops every shape. Handles are not reused afterwards.
func (s *Store) Clear() {
	clear(s.shapes)
	s.order = s.order[:0]
}
