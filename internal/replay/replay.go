/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package replay drives an editor session from a YAML event script.
//
// Example:
//
//	shapes:
//	  - id: box
//	    rect: [100, 100, 200, 150]
//	steps:
//	  - key: "2"
//	  - drag: [10, 10, 60, 40]
//	  - down: [150, 100]
//	  - up: [150, 100]
//	    expect: {selected_ids: [box]}
//	  - key: ctrl+d
//	    expect: {shapes: 3, selected: 1, mode: selected}
package replay

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"gocanvas/internal/editor"
	"gocanvas/internal/input"
	applog "gocanvas/internal/log"
	"gocanvas/internal/scene"
	"gocanvas/internal/vector"
)

// Script is a list of seed shapes followed by input steps.
type Script struct {
	Shapes []Seed `yaml:"shapes,omitempty"`
	Steps  []Step `yaml:"steps"`
}

// Seed is a shape inserted before the first step.
// An empty ID gets a generated one.
type Seed struct {
	ID   string     `yaml:"id,omitempty"`
	Rect [4]float32 `yaml:"rect"`
	Fill string     `yaml:"fill,omitempty"`
	Line string     `yaml:"line,omitempty"`
}

// Step holds exactly one event. Expect is checked after the event.
type Step struct {
	Down   *[2]float32 `yaml:"down,omitempty"`
	Move   *[2]float32 `yaml:"move,omitempty"`
	Up     *[2]float32 `yaml:"up,omitempty"`
	Hover  *[2]float32 `yaml:"hover,omitempty"`
	Drag   *[4]float32 `yaml:"drag,omitempty"`
	Key    string      `yaml:"key,omitempty"`
	Action string      `yaml:"action,omitempty"`
	Expect *Expect     `yaml:"expect,omitempty"`
}

// Expect checks session state. SelectedIDs lists shape IDs in z-order.
type Expect struct {
	Shapes      *int     `yaml:"shapes,omitempty"`
	Selected    *int     `yaml:"selected,omitempty"`
	SelectedIDs []string `yaml:"selected_ids,omitempty"`
	Mode        string   `yaml:"mode,omitempty"`
}

// ErrExpectation marks a failed expect block.
var ErrExpectation = errors.New("expectation failed")

// Parse decodes and checks a script.
func Parse(data []byte) (Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Script{}, fmt.Errorf("parse script: %w", err)
	}
	var errs []error
	for i, st := range sc.Steps {
		if n := st.events(); n != 1 {
			errs = append(errs, fmt.Errorf("step %d: want exactly one event, got %d", i+1, n))
		}
	}
	return sc, errors.Join(errs...)
}

// Load reads a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}
	return Parse(data)
}

func (st Step) events() int {
	n := 0
	for _, set := range []bool{st.Down != nil, st.Move != nil, st.Up != nil, st.Hover != nil, st.Drag != nil, st.Key != "", st.Action != ""} {
		if set {
			n++
		}
	}
	return n
}

func pt(v *[2]float32) vector.Pt { return vector.Pt{X: v[0], Y: v[1]} }

// Run feeds the script into s. Keys go through km; unbound keys are skipped
// with a warning, like an unmapped key press in the UI.
func Run(s *editor.Session, sc Script, km input.Keymap) error {
	log := applog.WithOperation(applog.WithComponent("replay"), "run")
	for i, seed := range sc.Shapes {
		style := vector.DefaultStyle
		if seed.Fill != "" {
			c, err := vector.ParseHex(seed.Fill)
			if err != nil {
				return fmt.Errorf("shape %d: fill: %w", i+1, err)
			}
			style.Fill = c
		}
		if seed.Line != "" {
			c, err := vector.ParseHex(seed.Line)
			if err != nil {
				return fmt.Errorf("shape %d: line: %w", i+1, err)
			}
			style.Line = c
		}
		r := seed.Rect
		if seed.ID != "" {
			if _, dup := s.Store().Find(seed.ID); dup {
				return fmt.Errorf("shape %d: duplicate id %q", i+1, seed.ID)
			}
		}
		s.InsertShape(scene.Shape{ID: seed.ID, Rect: vector.R(r[0], r[1], r[2], r[3]), Style: style})
	}
	for i, st := range sc.Steps {
		switch {
		case st.Down != nil:
			s.PointerDown(pt(st.Down))
		case st.Move != nil:
			s.PointerMove(pt(st.Move))
		case st.Up != nil:
			s.PointerUp(pt(st.Up))
		case st.Hover != nil:
			s.Hover(pt(st.Hover))
		case st.Drag != nil:
			d := st.Drag
			s.PointerDown(vector.Pt{X: d[0], Y: d[1]})
			s.PointerMove(vector.Pt{X: d[2], Y: d[3]})
			s.PointerUp(vector.Pt{X: d[2], Y: d[3]})
		case st.Key != "":
			c, err := input.ParseChord(st.Key)
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			a, ok := km.Translate(c)
			if !ok {
				log.Warn("unbound key", "step", i+1, "key", c.String())
				break
			}
			s.Do(a)
		case st.Action != "":
			a, err := editor.ParseAction(st.Action)
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			s.Do(a)
		}
		if st.Expect != nil {
			if err := check(s, *st.Expect); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
	}
	log.Debug("replay finished", "steps", len(sc.Steps), "shapes", s.Store().Len())
	return nil
}

func check(s *editor.Session, e Expect) error {
	if e.Shapes != nil && s.Store().Len() != *e.Shapes {
		return fmt.Errorf("%w: shapes = %d, want %d", ErrExpectation, s.Store().Len(), *e.Shapes)
	}
	if e.Selected != nil && s.Selection().Len() != *e.Selected {
		return fmt.Errorf("%w: selected = %d, want %d", ErrExpectation, s.Selection().Len(), *e.Selected)
	}
	if e.SelectedIDs != nil {
		if got := selectedIDs(s); !slices.Equal(got, e.SelectedIDs) {
			return fmt.Errorf("%w: selected ids = %v, want %v", ErrExpectation, got, e.SelectedIDs)
		}
	}
	if m := strings.ToLower(strings.TrimSpace(e.Mode)); m != "" && s.Mode().String() != m {
		return fmt.Errorf("%w: mode = %s, want %s", ErrExpectation, s.Mode(), m)
	}
	return nil
}

func selectedIDs(s *editor.Session) []string {
	ids := []string{}
	s.Store().Each(func(h scene.Handle, sh *scene.Shape) bool {
		if s.Selection().Has(h) {
			ids = append(ids, sh.ID)
		}
		return true
	})
	return ids
}
