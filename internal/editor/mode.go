/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package editor

import (
	"fmt"
	"strings"
)

// Mode is the interaction state of a Session.
type Mode uint8

const (
	// ModeSelect is idle or rubber-band selecting.
	ModeSelect Mode = iota
	// ModeSelected has one or more shapes chosen with live handles.
	ModeSelected
	// ModeResize is dragging a resize handle.
	ModeResize
	// ModeDrawRect has the rectangle tool armed.
	ModeDrawRect
)

func (m Mode) String() string {
	switch m {
	case ModeSelect:
		return "select"
	case ModeSelected:
		return "selected"
	case ModeResize:
		return "resize"
	case ModeDrawRect:
		return "rect"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Action is a logical key command, produced by the input translation layer.
type Action uint8

const (
	ActionNone Action = iota
	ActionSelectTool
	ActionRectTool
	ActionDelete
	ActionCopy
	ActionPaste
	ActionDuplicate
)

var actionNames = map[Action]string{
	ActionSelectTool: "select",
	ActionRectTool:   "rect",
	ActionDelete:     "delete",
	ActionCopy:       "copy",
	ActionPaste:      "paste",
	ActionDuplicate:  "duplicate",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "none"
}

// ParseAction accepts the names printed by Action.String, case-insensitive.
func ParseAction(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for a, name := range actionNames {
		if name == s {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", s)
}

// Actions lists every bindable action in a stable order.
func Actions() []Action {
	return []Action{ActionSelectTool, ActionRectTool, ActionDelete, ActionCopy, ActionPaste, ActionDuplicate}
}
