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
	"image/color"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"gocanvas/internal/editor"
	"gocanvas/internal/input"
	applog "gocanvas/internal/log"
	"gocanvas/internal/render"
	"gocanvas/internal/scene"
	"gocanvas/internal/vector"
)

// CanvasWidget forwards pointer and key input to an editor session and draws
// the session's frame. Widget coordinates are canvas coordinates.
type CanvasWidget struct {
	widget.BaseWidget

	sess   *editor.Session
	keys   input.Keymap
	log    *slog.Logger
	last   fyne.Position
	bg     color.Color
	accent color.Color

	// OnStatus receives a one-line summary after every change.
	OnStatus func(string)
}

var (
	_ desktop.Mouseable  = (*CanvasWidget)(nil)
	_ desktop.Hoverable  = (*CanvasWidget)(nil)
	_ desktop.Cursorable = (*CanvasWidget)(nil)
	_ fyne.Draggable     = (*CanvasWidget)(nil)
	_ fyne.Focusable     = (*CanvasWidget)(nil)
	_ fyne.Shortcutable  = (*CanvasWidget)(nil)
)

func NewCanvasWidget(sess *editor.Session, keys input.Keymap) *CanvasWidget {
	c := &CanvasWidget{
		sess:   sess,
		keys:   keys,
		log:    applog.WithComponent("ui"),
		bg:     color.White,
		accent: color.NRGBA{R: 0, G: 120, B: 215, A: 255},
	}
	sess.OnChange = c.changed
	c.ExtendBaseWidget(c)
	return c
}

func (c *CanvasWidget) changed() {
	c.Refresh()
	if c.OnStatus != nil {
		c.OnStatus(c.Status())
	}
}

// Status summarises mode and counts for the status bar.
func (c *CanvasWidget) Status() string {
	return statusLine(c.sess)
}

func statusLine(s *editor.Session) string {
	return fmt.Sprintf("Mode: %s  Shapes: %d  Selected: %d", s.Mode(), s.Store().Len(), s.Selection().Len())
}

func toPt(p fyne.Position) vector.Pt { return vector.Pt{X: p.X, Y: p.Y} }

func (c *CanvasWidget) MinSize() fyne.Size { return fyne.NewSize(400, 300) }

// Pointer input

func (c *CanvasWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.requestFocus()
	c.last = e.Position
	c.sess.PointerDown(toPt(e.Position))
}

func (c *CanvasWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !c.sess.ButtonDown() {
		return
	}
	c.last = e.Position
	c.sess.PointerUp(toPt(e.Position))
}

func (c *CanvasWidget) Dragged(e *fyne.DragEvent) {
	if !c.sess.ButtonDown() {
		return
	}
	c.last = e.Position
	c.sess.PointerMove(toPt(e.Position))
}

// DragEnd closes a gesture whose MouseUp was not delivered to us.
func (c *CanvasWidget) DragEnd() {
	if c.sess.ButtonDown() {
		c.sess.PointerUp(toPt(c.last))
	}
}

func (c *CanvasWidget) MouseIn(e *desktop.MouseEvent) { c.sess.Hover(toPt(e.Position)) }
func (c *CanvasWidget) MouseOut()                     {}

func (c *CanvasWidget) MouseMoved(e *desktop.MouseEvent) {
	c.last = e.Position
	if c.sess.ButtonDown() {
		c.sess.PointerMove(toPt(e.Position))
		return
	}
	c.sess.Hover(toPt(e.Position))
}

// Cursor maps the session's feedback onto the cursors fyne provides; fyne
// has no diagonal resize cursor.
func (c *CanvasWidget) Cursor() desktop.Cursor {
	switch c.sess.Cursor() {
	case editor.CursorMove:
		return desktop.PointerCursor
	case editor.CursorCrosshair, editor.CursorResizeNWSE, editor.CursorResizeNESW:
		return desktop.CrosshairCursor
	case editor.CursorResizeNS:
		return desktop.VResizeCursor
	case editor.CursorResizeEW:
		return desktop.HResizeCursor
	default:
		return desktop.DefaultCursor
	}
}

// Key input

func (c *CanvasWidget) FocusGained()     {}
func (c *CanvasWidget) FocusLost()       {}
func (c *CanvasWidget) TypedRune(_ rune) {}

func (c *CanvasWidget) TypedKey(e *fyne.KeyEvent) {
	c.press(input.Chord{Key: strings.ToLower(string(e.Name))})
}

func (c *CanvasWidget) TypedShortcut(s fyne.Shortcut) {
	ch, ok := shortcutChord(s)
	if !ok {
		return
	}
	c.press(ch)
}

func (c *CanvasWidget) press(ch input.Chord) {
	a, ok := c.keys.Translate(ch)
	if !ok {
		c.log.Debug("unbound key", slog.String("key", ch.String()))
		return
	}
	c.sess.Do(a)
}

func shortcutChord(s fyne.Shortcut) (input.Chord, bool) {
	switch sc := s.(type) {
	case *fyne.ShortcutCopy:
		return input.Chord{Key: "c", Ctrl: true}, true
	case *fyne.ShortcutPaste:
		return input.Chord{Key: "v", Ctrl: true}, true
	case *fyne.ShortcutCut:
		return input.Chord{Key: "x", Ctrl: true}, true
	case *desktop.CustomShortcut:
		if sc.Modifier&(fyne.KeyModifierControl|fyne.KeyModifierSuper) == 0 {
			return input.Chord{}, false
		}
		return input.Chord{Key: strings.ToLower(string(sc.KeyName)), Ctrl: true}, true
	}
	return input.Chord{}, false
}

func (c *CanvasWidget) requestFocus() {
	if app := fyne.CurrentApp(); app != nil {
		if cv := app.Driver().CanvasForObject(c); cv != nil {
			cv.Focus(c)
		}
	}
}

// Rendering

func (c *CanvasWidget) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(c.bg)
	r := &canvasRenderer{cw: c, bg: bg}
	r.band = overlayRect(c.accent, color.NRGBA{R: 0, G: 120, B: 215, A: 40})
	r.boundary = overlayRect(c.accent, color.Transparent)
	r.preview = overlayRect(c.accent, color.Transparent)
	for i := range r.handles {
		r.handles[i] = overlayRect(c.accent, color.White)
	}
	r.Refresh()
	return r
}

func overlayRect(stroke, fill color.Color) *canvas.Rectangle {
	o := canvas.NewRectangle(fill)
	o.StrokeColor = stroke
	o.StrokeWidth = 1
	o.Hide()
	return o
}

type canvasRenderer struct {
	cw       *CanvasWidget
	bg       *canvas.Rectangle
	shapes   []*canvas.Rectangle
	band     *canvas.Rectangle
	boundary *canvas.Rectangle
	preview  *canvas.Rectangle
	handles  [scene.NumHandles]*canvas.Rectangle
	objects  []fyne.CanvasObject
}

func (r *canvasRenderer) Destroy()                     {}
func (r *canvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *canvasRenderer) MinSize() fyne.Size           { return r.cw.MinSize() }

func (r *canvasRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
}

func (r *canvasRenderer) Refresh() {
	f := r.cw.sess.Frame()
	for len(r.shapes) < len(f.Shapes) {
		r.shapes = append(r.shapes, canvas.NewRectangle(color.Transparent))
	}
	r.shapes = r.shapes[:len(f.Shapes)]
	for i, sv := range f.Shapes {
		paintShape(r.shapes[i], sv)
	}
	place(r.preview, f.Preview)
	place(r.band, f.RubberBand)
	place(r.boundary, f.Boundary)
	for i, h := range f.Handles {
		place(r.handles[i], h)
	}

	r.objects = r.objects[:0]
	r.objects = append(r.objects, r.bg)
	for _, s := range r.shapes {
		r.objects = append(r.objects, s)
	}
	r.objects = append(r.objects, r.preview, r.band, r.boundary)
	for _, h := range r.handles {
		r.objects = append(r.objects, h)
	}
	r.Layout(r.cw.Size())
	canvas.Refresh(r.cw)
}

func paintShape(o *canvas.Rectangle, sv render.ShapeView) {
	o.FillColor = sv.Style.Fill.RGBA()
	o.StrokeColor = sv.Style.Line.RGBA()
	o.StrokeWidth = sv.Style.StrokeWidth
	place(o, sv.Rect)
}

// place positions o on r, hiding it for the None sentinel.
func place(o *canvas.Rectangle, r vector.Rect) {
	if r.IsNone() {
		o.Hide()
		return
	}
	r = r.Canon()
	o.Move(fyne.NewPos(r.Left, r.Top))
	o.Resize(fyne.NewSize(r.Width(), r.Height()))
	o.Show()
	o.Refresh()
}
