/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package input

import (
	"strings"
	"testing"

	"gocanvas/internal/editor"
)

func TestParseChord(t *testing.T) {
	cases := map[string]Chord{
		"1":          {Key: "1"},
		"Ctrl+C":     {Key: "c", Ctrl: true},
		" control+d": {Key: "d", Ctrl: true},
		"BackSpace":  {Key: "backspace"},
	}
	for in, want := range cases {
		got, err := ParseChord(in)
		if err != nil || got != want {
			t.Fatalf("ParseChord(%q) = %+v, %v; want %+v", in, got, err, want)
		}
	}
	for _, bad := range []string{"", "ctrl+", "alt+x"} {
		if _, err := ParseChord(bad); err == nil {
			t.Fatalf("ParseChord(%q) should fail", bad)
		}
	}
}

func TestDefaultKeymapTable(t *testing.T) {
	km := DefaultKeymap()
	want := map[string]editor.Action{
		"1": editor.ActionSelectTool, "2": editor.ActionRectTool,
		"backspace": editor.ActionDelete, "ctrl+c": editor.ActionCopy,
		"ctrl+v": editor.ActionPaste, "ctrl+d": editor.ActionDuplicate,
	}
	for k, a := range want {
		c, _ := ParseChord(k)
		got, ok := km.Translate(c)
		if !ok || got != a {
			t.Fatalf("%s -> %v,%v; want %v", k, got, ok, a)
		}
	}
	if _, ok := km.Translate(Chord{Key: "c"}); ok {
		t.Fatalf("plain c must not be bound")
	}
}

func TestFromConfigOverridesAndErrors(t *testing.T) {
	km, err := FromConfig(map[string]string{
		"ctrl+x":    "delete",
		"backspace": "none",
		"alt+q":     "copy",
		"ctrl+k":    "explode",
	})
	if err == nil {
		t.Fatalf("expected joined error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "alt+q") || !strings.Contains(msg, "ctrl+k") {
		t.Fatalf("both bad entries must be reported: %v", msg)
	}
	if a, ok := km.Translate(Chord{Key: "x", Ctrl: true}); !ok || a != editor.ActionDelete {
		t.Fatalf("ctrl+x not bound: %v %v", a, ok)
	}
	if _, ok := km.Translate(Chord{Key: "backspace"}); ok {
		t.Fatalf("backspace should be unbound")
	}
	if len(km.Bindings()) != len(km) {
		t.Fatalf("Bindings length mismatch")
	}
}
