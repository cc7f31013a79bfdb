/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package crash turns a panic at the program boundary into a report file
// and, when a canvas is open, a last picture of it.
package crash

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	applog "gocanvas/internal/log"
	"gocanvas/internal/render"
	"gocanvas/internal/version"
)

// exitFn is used to allow testing of Recover without terminating the test process.
var exitFn = os.Exit

// Target describes where reports go and how to snapshot the canvas.
type Target struct {
	// Dir receives the report; empty means os.TempDir().
	Dir string
	// Frame, when set, is rendered to a PNG next to the report.
	Frame func() render.Frame
}

// Recover captures a panic, logs an error with stacktrace,
// writes an error report file, and attempts a crash snapshot
// of the canvas (if a frame source is provided).
//
// Usage: defer crash.Recover(&crash.Target{Frame: sess.Frame})
func Recover(t *Target) {
	if r := recover(); r != nil {
		l := applog.WithComponent("crash")
		stack := debug.Stack()
		l.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(stack)))

		var tg Target
		if t != nil {
			tg = *t
		}
		reportPath, err := writeReport(tg.Dir, r, stack)
		if err != nil {
			l.Error("write crash report failed", slog.Any("err", err))
		}
		if tg.Frame != nil {
			if path, err := writeSnapshot(tg, reportPath); err != nil {
				l.Error("crash snapshot failed", slog.Any("err", err))
			} else {
				l.Info("crash snapshot written", slog.String("path", path))
			}
		}

		if _, err := fmt.Fprintf(os.Stderr, "A fatal error occurred. A crash report was saved to: %s\n", reportPath); err != nil {
			l.Error("failed to write crash message to stderr", slog.Any("err", err))
		}
		if _, err := fmt.Fprintf(os.Stderr, "Version: %s\nOS/Arch: %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH); err != nil {
			l.Error("failed to write version info to stderr", slog.Any("err", err))
		}
		// Exit with a non-zero code to indicate failure in CLI context.
		exitFn(2)
	}
}

func writeReport(dir string, panicVal any, stack []byte) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	_ = os.MkdirAll(dir, 0o755)
	stamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("gocanvas-crash-%s.log", stamp))

	var buf bytes.Buffer
	_, _ = fmt.Fprintf(&buf, "gocanvas Crash Report\n")
	_, _ = fmt.Fprintf(&buf, "Timestamp: %s\n", time.Now().Format(time.RFC3339))
	_, _ = fmt.Fprintf(&buf, "Version: %s\n", version.String())
	_, _ = fmt.Fprintf(&buf, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	_, _ = fmt.Fprintf(&buf, "\nPanic: %v\n\n", panicVal)
	_, _ = fmt.Fprintf(&buf, "Stack:\n%s\n", string(stack))

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return path, err
	}
	return path, nil
}

// writeSnapshot renders the frame source into <report>.png. The frame source
// runs against state that may be inconsistent, so its own panic is contained.
func writeSnapshot(t Target, reportPath string) (path string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("frame source panicked: %v", r)
		}
	}()
	path = reportPath[:len(reportPath)-len(filepath.Ext(reportPath))] + ".png"
	return path, render.WriteFile(path, t.Frame(), render.DefaultOptions())
}
