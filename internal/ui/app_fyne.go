//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"gocanvas/internal/config"
	"gocanvas/internal/crash"
	"gocanvas/internal/editor"
	"gocanvas/internal/input"
	applog "gocanvas/internal/log"
	"gocanvas/internal/render"
)

// Run opens the editor window and blocks until it is closed.
func Run(cfg config.AppConfig) error {
	l := applog.WithComponent("ui")
	l.Info("starting UI")

	ecfg, err := cfg.EditorConfig()
	if err != nil {
		l.Warn("editor config", slog.Any("err", err))
	}
	keys, err := input.FromConfig(cfg.Keys)
	if err != nil {
		l.Warn("key bindings", slog.Any("err", err))
	}
	sess := editor.New(ecfg)
	defer crash.Recover(&crash.Target{Frame: sess.Frame})

	fyneApp := app.NewWithID("gocanvas")
	w := fyneApp.NewWindow("gocanvas")
	winW, winH := cfg.WindowSize()
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	status := widget.NewLabel("Ready")
	cw := NewCanvasWidget(sess, keys)
	cw.OnStatus = status.SetText
	status.SetText(cw.Status())

	do := func(a editor.Action) func() {
		return func() {
			sess.Do(a)
			w.Canvas().Focus(cw)
		}
	}
	toolbar := container.NewHBox(
		widget.NewButton("Select (1)", do(editor.ActionSelectTool)),
		widget.NewButton("Rectangle (2)", do(editor.ActionRectTool)),
		widget.NewSeparator(),
		widget.NewButtonWithIcon("", theme.ContentCopyIcon(), do(editor.ActionCopy)),
		widget.NewButtonWithIcon("", theme.ContentPasteIcon(), do(editor.ActionPaste)),
		widget.NewButton("Duplicate", do(editor.ActionDuplicate)),
		widget.NewButtonWithIcon("", theme.DeleteIcon(), do(editor.ActionDelete)),
		widget.NewSeparator(),
		widget.NewButtonWithIcon("Export…", theme.DocumentSaveIcon(), func() { exportDialog(w, sess, l) }),
	)

	// Keys typed while nothing has focus still reach the canvas.
	w.Canvas().SetOnTypedKey(cw.TypedKey)
	w.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyD, Modifier: fyne.KeyModifierShortcutDefault}, cw.TypedShortcut)

	w.SetContent(container.NewBorder(toolbar, status, nil, nil, cw))
	w.Canvas().Focus(cw)
	w.ShowAndRun()
	l.Info("UI closed")
	return nil
}

func exportDialog(w fyne.Window, sess *editor.Session, l *slog.Logger) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if wc == nil {
			return
		}
		defer func() { _ = wc.Close() }()
		f := sess.Frame()
		opt := render.DefaultOptions()
		opt.Overlays = false
		if strings.EqualFold(wc.URI().Extension(), ".pdf") {
			err = render.PDF(wc, f, opt)
		} else {
			err = render.PNG(wc, f, opt)
		}
		if err != nil {
			l.Error("export failed", slog.Any("err", err))
			dialog.ShowError(fmt.Errorf("export: %w", err), w)
			return
		}
		l.Info("exported", slog.String("uri", wc.URI().String()))
	}, w)
	d.SetFileName("canvas.png")
	d.Show()
}
