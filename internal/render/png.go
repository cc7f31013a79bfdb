/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	xvector "golang.org/x/image/vector"

	"gocanvas/internal/vector"
)

// PNG rasterises f with anti-aliasing and encodes it to w.
func PNG(w io.Writer, f Frame, opt Options) error {
	img := Rasterize(f, opt)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Rasterize draws f into a new image, one canvas unit per pixel. Pixel (0,0)
// shows the layout origin, which is left of or above the canvas origin when
// shapes sit at negative coordinates.
func Rasterize(f Frame, opt Options) *image.NRGBA {
	opt = opt.withDefaults()
	origin, w, h := opt.layout(f)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(opt.Background.RGBA()), image.Point{}, draw.Src)

	p := &painter{img: img, z: xvector.NewRasterizer(w, h), origin: origin}
	for _, s := range f.Shapes {
		if !s.Style.OutlineOnly() {
			p.fill(s.Rect, s.Style.Fill)
		}
		if s.Style.StrokeWidth > 0 && s.Style.Line.A > 0 {
			p.stroke(s.Rect, s.Style.StrokeWidth, s.Style.Line)
		}
	}
	if !opt.Overlays {
		return img
	}
	if !f.Preview.IsNone() {
		p.stroke(f.Preview, 1, opt.Overlay)
	}
	if !f.RubberBand.IsNone() {
		band := opt.Overlay
		band.A = 48
		p.fill(f.RubberBand, band)
		p.stroke(f.RubberBand, 1, opt.Overlay)
	}
	if !f.Boundary.IsNone() {
		p.stroke(f.Boundary, 1, opt.Overlay)
	}
	for _, hr := range f.Handles {
		if hr.IsNone() {
			continue
		}
		p.fill(hr, vector.White)
		p.stroke(hr, 1, opt.Overlay)
	}
	return img
}

type painter struct {
	img    *image.NRGBA
	z      *xvector.Rasterizer
	origin vector.Pt
}

func (p *painter) reset() {
	b := p.img.Bounds()
	p.z.Reset(b.Dx(), b.Dy())
}

func (p *painter) path(r vector.Rect, clockwise bool) {
	if clockwise {
		p.z.MoveTo(r.Left, r.Top)
		p.z.LineTo(r.Right, r.Top)
		p.z.LineTo(r.Right, r.Bottom)
		p.z.LineTo(r.Left, r.Bottom)
	} else {
		p.z.MoveTo(r.Left, r.Top)
		p.z.LineTo(r.Left, r.Bottom)
		p.z.LineTo(r.Right, r.Bottom)
		p.z.LineTo(r.Right, r.Top)
	}
	p.z.ClosePath()
}

func (p *painter) draw(c vector.Color) {
	p.z.DrawOp = draw.Over
	p.z.Draw(p.img, p.img.Bounds(), image.NewUniform(c.RGBA()), image.Point{})
}

func (p *painter) fill(r vector.Rect, c vector.Color) {
	r = r.Canon().Offset(-p.origin.X, -p.origin.Y)
	if r.Empty() {
		return
	}
	p.reset()
	p.path(r, true)
	p.draw(c)
}

// stroke paints a ring of width sw centred on the rect edges. The inner
// contour runs the other way so it cancels out of the coverage.
func (p *painter) stroke(r vector.Rect, sw float32, c vector.Color) {
	r = r.Canon().Offset(-p.origin.X, -p.origin.Y)
	half := sw / 2
	outer := r.Inflate(half)
	p.reset()
	p.path(outer, true)
	if inner := r.Inflate(-half); !inner.Empty() {
		p.path(inner, false)
	}
	p.draw(c)
}
