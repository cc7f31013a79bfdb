/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package editor implements the interaction state machine of the canvas:
// pointer and key events come in, the scene and the selection are mutated,
// and a redraw is requested once the event has been fully applied.
package editor

import (
	"log/slog"

	applog "gocanvas/internal/log"
	"gocanvas/internal/render"
	"gocanvas/internal/scene"
	"gocanvas/internal/vector"
)

// Config controls the geometry constants and the style of new shapes.
type Config struct {
	Metrics scene.Metrics
	// Style is applied to shapes created with the rectangle tool.
	Style vector.Style
	// Strict makes invariant violations panic instead of being logged.
	Strict bool
}

// DefaultConfig returns the shipped metrics and the default outline style.
func DefaultConfig() Config {
	return Config{Metrics: scene.DefaultMetrics, Style: vector.DefaultStyle}
}

// Session is the editor state for one drawing surface. It is driven from a
// single goroutine; every exported event method runs to completion before
// OnChange is invoked.
type Session struct {
	cfg   Config
	store *scene.Store
	sel   *scene.Selection
	log   *slog.Logger

	mode         Mode
	buttonDown   bool
	dragStart    vector.Pt
	dragEnd      vector.Pt
	pointer      vector.Pt
	activeHandle scene.Dir
	rubberBand   vector.Rect
	preview      vector.Rect
	clipboard    []ObjectInfo

	// OnChange is called synchronously after an event changed what a
	// renderer would draw. Redraws must be idempotent.
	OnChange func()
	dirty    bool
}

func New(cfg Config) *Session {
	if cfg.Metrics == (scene.Metrics{}) {
		cfg.Metrics = scene.DefaultMetrics
	}
	if cfg.Style == (vector.Style{}) {
		cfg.Style = vector.DefaultStyle
	}
	st := scene.NewStore()
	st.Strict = cfg.Strict
	return &Session{
		cfg:          cfg,
		store:        st,
		sel:          scene.NewSelection(st, cfg.Metrics),
		log:          applog.WithComponent("editor"),
		mode:         ModeSelect,
		activeHandle: scene.DirNone,
		rubberBand:   vector.None,
		preview:      vector.None,
	}
}

func (s *Session) Mode() Mode                      { return s.mode }
func (s *Session) Store() *scene.Store             { return s.store }
func (s *Session) Selection() *scene.Selection     { return s.sel }
func (s *Session) Pointer() vector.Pt              { return s.pointer }
func (s *Session) ButtonDown() bool                { return s.buttonDown }
func (s *Session) ActiveHandle() scene.Dir         { return s.activeHandle }
func (s *Session) Metrics() scene.Metrics          { return s.cfg.Metrics }
func (s *Session) RubberBand() (vector.Rect, bool) { return s.rubberBand, !s.rubberBand.IsNone() }
func (s *Session) Preview() (vector.Rect, bool)    { return s.preview, !s.preview.IsNone() }

// Insert adds a shape spanning r (canonicalised) with the given style.
// It does not change the selection.
func (s *Session) Insert(r vector.Rect, st vector.Style) scene.Handle {
	return s.InsertShape(scene.Shape{Rect: r, Style: st})
}

// InsertShape is Insert for a prepared shape; a non-empty ID is kept.
func (s *Session) InsertShape(sh scene.Shape) scene.Handle {
	defer s.flush()
	h := s.store.Insert(sh)
	s.touch()
	return h
}

// PointerDown starts a gesture at p.
func (s *Session) PointerDown(p vector.Pt) {
	defer s.flush()
	if s.buttonDown {
		s.log.Warn("pointer down while button already held", slog.String("mode", s.mode.String()))
	}
	s.buttonDown = true
	s.pointer = p
	s.dragStart, s.dragEnd = p, p

	switch s.mode {
	case ModeDrawRect:
		return
	case ModeResize:
		// resizing always ends on pointer up
		s.log.Warn("pointer down in resize mode")
		s.activeHandle = scene.DirNone
		s.setMode(ModeSelected)
	}

	hit := scene.HitTest(s.store, s.sel, s.mode == ModeSelected, p)
	s.log.Debug("pointer down", slog.String("hit", hit.String()), slog.String("mode", s.mode.String()))
	switch hit.Kind {
	case scene.HitNone:
		if s.sel.Len() > 0 {
			s.sel.Clear()
			s.touch()
		}
		s.setMode(ModeSelect)
	case scene.HitHandle:
		s.activeHandle = hit.Dir
		s.setMode(ModeResize)
	case scene.HitBoundary:
		// group move; the following moves translate the selection
	case scene.HitShape:
		s.sel.SetSingle(hit.Shape)
		s.setMode(ModeSelected)
		s.touch()
	}
}

// PointerMove tracks the pointer. Without a held button it only records the
// position, which is where Paste places new shapes.
func (s *Session) PointerMove(p vector.Pt) {
	defer s.flush()
	s.pointer = p
	if !s.buttonDown {
		return
	}
	s.dragEnd = p

	switch s.mode {
	case ModeSelect:
		s.rubberBand = vector.FromPoints(s.dragStart, p)
		s.sel.SetFromDragRegion(s.rubberBand)
		s.touch()
	case ModeSelected:
		d := p.Sub(s.dragStart)
		if d.X != 0 || d.Y != 0 {
			s.sel.Move(d.X, d.Y)
			s.touch()
		}
		s.dragStart = p
	case ModeResize:
		s.resize(p)
	case ModeDrawRect:
		s.preview = vector.FromPoints(s.dragStart, p)
		s.touch()
	}
}

// Hover is a PointerMove that never drags.
func (s *Session) Hover(p vector.Pt) { s.pointer = p }

// PointerUp finishes the current gesture.
func (s *Session) PointerUp(p vector.Pt) {
	defer s.flush()
	s.pointer = p
	if !s.buttonDown {
		s.log.Warn("pointer up without pointer down", slog.String("mode", s.mode.String()))
		return
	}
	s.buttonDown = false
	s.dragEnd = p

	switch s.mode {
	case ModeSelect:
		if !s.rubberBand.IsNone() {
			s.rubberBand = vector.None
			s.touch()
		}
		if s.sel.Len() > 0 {
			s.setMode(ModeSelected)
		}
	case ModeResize:
		s.finishResize()
		s.activeHandle = scene.DirNone
		s.setMode(ModeSelected)
	case ModeDrawRect:
		s.preview = vector.None
		r := vector.FromPoints(s.dragStart, s.dragEnd)
		if r.Width() > 0 || r.Height() > 0 {
			h := s.store.Insert(scene.Shape{Rect: r, Style: s.cfg.Style})
			s.log.Debug("shape drawn", slog.Int("handle", int(h)), slog.String("id", s.shapeID(h)))
		}
		s.touch()
		s.setMode(ModeSelect)
	}
}

// Do applies a logical key action. Actions do not depend on the mode.
func (s *Session) Do(a Action) {
	defer s.flush()
	s.log.Debug("action", slog.String("action", a.String()), slog.String("mode", s.mode.String()))
	switch a {
	case ActionSelectTool:
		if s.sel.Len() > 0 {
			s.setMode(ModeSelected)
		} else {
			s.setMode(ModeSelect)
		}
	case ActionRectTool:
		if s.sel.Len() > 0 {
			s.sel.Clear()
			s.touch()
		}
		s.setMode(ModeDrawRect)
	case ActionDelete:
		s.deleteSelected()
	case ActionCopy:
		s.copySelection()
	case ActionPaste:
		s.paste()
	case ActionDuplicate:
		s.duplicate()
	default:
		s.log.Warn("unknown action", slog.Int("action", int(a)))
	}
}

// deleteSelected removes the selection. It always ends in Select mode with no
// boundary, whatever mode it was invoked from.
func (s *Session) deleteSelected() {
	if s.sel.Len() > 0 {
		for _, h := range s.sel.Selected() {
			s.log.Debug("shape deleted", slog.Int("handle", int(h)), slog.String("id", s.shapeID(h)))
			s.store.Remove(h)
		}
		s.touch()
	}
	s.sel.Clear()
	s.setMode(ModeSelect)
}

func (s *Session) duplicate() {
	h, ok := s.sel.Only()
	if !ok {
		return
	}
	sh, ok := s.store.Get(h)
	if !ok {
		return
	}
	m := s.cfg.Metrics.ObjectMargin
	nh := s.store.Insert(scene.Shape{Rect: sh.Rect.Offset(m, m), Style: sh.Style})
	s.log.Debug("shape duplicated", slog.String("from", sh.ID), slog.String("id", s.shapeID(nh)))
	s.sel.SetSingle(nh)
	s.setMode(ModeSelected)
	s.touch()
}

func (s *Session) setMode(m Mode) {
	if s.mode == m {
		return
	}
	s.log.Debug("mode change", slog.String("from", s.mode.String()), slog.String("to", m.String()))
	if s.mode == ModeResize {
		// leaving resize by any path ends the handle drag
		s.activeHandle = scene.DirNone
	}
	s.mode = m
	s.dirty = true
}

func (s *Session) touch() { s.dirty = true }

func (s *Session) shapeID(h scene.Handle) string {
	if sh, ok := s.store.Get(h); ok {
		return sh.ID
	}
	return ""
}

func (s *Session) flush() {
	if !s.dirty {
		return
	}
	s.dirty = false
	if s.OnChange != nil {
		s.OnChange()
	}
}

// Frame snapshots the state for a renderer.
func (s *Session) Frame() render.Frame {
	f := render.Frame{
		Shapes:     make([]render.ShapeView, 0, s.store.Len()),
		RubberBand: s.rubberBand,
		Preview:    s.preview,
		Handles:    s.sel.Handles(),
	}
	f.Boundary, _ = s.sel.Boundary()
	s.store.Each(func(h scene.Handle, sh *scene.Shape) bool {
		f.Shapes = append(f.Shapes, render.ShapeView{ID: sh.ID, Rect: sh.Rect, Style: sh.Style, Selected: s.sel.Has(h)})
		return true
	})
	return f
}
