/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import "testing"

func TestRectContainsAndInflate(t *testing.T) {
	r := R(10, 20, 110, 70)
	if !r.Contains(Pt{10, 20}) || !r.Contains(Pt{110, 70}) {
		t.Fatalf("expected edge points to be contained")
	}
	in := r.Inflate(-5)
	if in != R(15, 25, 105, 65) {
		t.Fatalf("unexpected inflate: %+v", in)
	}
	if r.Width() != 100 || r.Height() != 50 {
		t.Fatalf("unexpected size %vx%v", r.Width(), r.Height())
	}
	if c := r.Center(); c != (Pt{60, 45}) {
		t.Fatalf("unexpected center %+v", c)
	}
}

func TestCanonAndFromPoints(t *testing.T) {
	r := R(50, 80, 10, 20).Canon()
	if r != R(10, 20, 50, 80) {
		t.Fatalf("canon did not swap edges: %+v", r)
	}
	if got := FromPoints(Pt{30, 5}, Pt{0, 40}); got != R(0, 5, 30, 40) {
		t.Fatalf("FromPoints = %+v", got)
	}
}

func TestNoneIsNotZeroRect(t *testing.T) {
	if !None.IsNone() {
		t.Fatalf("None must report IsNone")
	}
	if (Rect{}).IsNone() {
		t.Fatalf("zero rect at origin must not be mistaken for None")
	}
}

func TestUnionAndContainsRect(t *testing.T) {
	a := R(0, 0, 10, 10)
	b := R(20, 5, 30, 40)
	u := a.Union(b)
	if u != R(0, 0, 30, 40) {
		t.Fatalf("unexpected union %+v", u)
	}
	if !u.ContainsRect(a) || !u.ContainsRect(b) {
		t.Fatalf("union must contain both inputs")
	}
	if a.ContainsRect(b) {
		t.Fatalf("a must not contain b")
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff000080")
	if err != nil {
		t.Fatalf("ParseHex error: %v", err)
	}
	if c != (Color{255, 0, 0, 128}) {
		t.Fatalf("unexpected color %+v", c)
	}
	c, err = ParseHex("0f0")
	if err != nil || c != (Color{0, 255, 0, 255}) {
		t.Fatalf("short form: %+v %v", c, err)
	}
	if c.Hex() != "#00ff00ff" {
		t.Fatalf("Hex() = %s", c.Hex())
	}
	if _, err := ParseHex("nothex"); err == nil {
		t.Fatalf("expected error for invalid color")
	}
}

func TestOutlineOnly(t *testing.T) {
	if !DefaultStyle.OutlineOnly() {
		t.Fatalf("default style has transparent fill")
	}
	s := Style{Fill: Color{1, 2, 3, 1}}
	if s.OutlineOnly() {
		t.Fatalf("any fill alpha makes the shape filled")
	}
}
