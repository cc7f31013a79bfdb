/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package input maps physical key chords to editor actions.
package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gocanvas/internal/editor"
)

// Chord is a key name plus the control modifier. Key names are lower case.
type Chord struct {
	Key  string
	Ctrl bool
}

func (c Chord) String() string {
	if c.Ctrl {
		return "ctrl+" + c.Key
	}
	return c.Key
}

// ParseChord accepts "x", "ctrl+x" and "control+x" in any case.
func ParseChord(s string) (Chord, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	var c Chord
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if i < len(parts)-1 {
			switch p {
			case "ctrl", "control", "cmd":
				c.Ctrl = true
			default:
				return Chord{}, fmt.Errorf("unknown modifier %q in %q", p, s)
			}
			continue
		}
		c.Key = p
	}
	if c.Key == "" {
		return Chord{}, fmt.Errorf("empty key in %q", s)
	}
	return c, nil
}

// Keymap translates chords to actions.
type Keymap map[Chord]editor.Action

// DefaultKeymap is the shipped key table.
func DefaultKeymap() Keymap {
	return Keymap{
		{Key: "1"}:             editor.ActionSelectTool,
		{Key: "2"}:             editor.ActionRectTool,
		{Key: "backspace"}:     editor.ActionDelete,
		{Key: "delete"}:        editor.ActionDelete,
		{Key: "c", Ctrl: true}: editor.ActionCopy,
		{Key: "v", Ctrl: true}: editor.ActionPaste,
		{Key: "d", Ctrl: true}: editor.ActionDuplicate,
	}
}

// FromConfig layers user bindings on top of the defaults. Binding a chord to
// "none" removes it. All invalid entries are reported together; valid ones
// are still applied.
func FromConfig(bindings map[string]string) (Keymap, error) {
	km := DefaultKeymap()
	var errs []error
	for k, v := range bindings {
		c, err := ParseChord(k)
		if err != nil {
			errs = append(errs, fmt.Errorf("keys.%s: %w", k, err))
			continue
		}
		if strings.EqualFold(strings.TrimSpace(v), "none") {
			delete(km, c)
			continue
		}
		a, err := editor.ParseAction(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("keys.%s: %w", k, err))
			continue
		}
		km[c] = a
	}
	return km, errors.Join(errs...)
}

// Translate looks up the action bound to c.
func (k Keymap) Translate(c Chord) (editor.Action, bool) {
	a, ok := k[c]
	return a, ok && a != editor.ActionNone
}

// Bindings lists the table sorted by chord, for help output.
func (k Keymap) Bindings() []string {
	out := make([]string, 0, len(k))
	for c, a := range k {
		out = append(out, fmt.Sprintf("%-12s %s", c, a))
	}
	sort.Strings(out)
	return out
}
