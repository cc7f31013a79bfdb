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
	"io"

	"github.com/jung-kurt/gofpdf"

	"gocanvas/internal/vector"
)

// PDF writes f as a single-page vector PDF. One canvas unit maps to one
// point; the page origin is top-left like the canvas.
func PDF(w io.Writer, f Frame, opt Options) error {
	opt = opt.withDefaults()
	origin, pw, ph := opt.layout(f)
	size := gofpdf.SizeType{Wd: float64(pw), Ht: float64(ph)}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt", Size: size})
	pdf.SetTitle("gocanvas snapshot", false)
	pdf.SetCreator("gocanvas", false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPageFormat("", size)

	setFill(pdf, opt.Background)
	pdf.Rect(0, 0, size.Wd, size.Ht, "F")

	pdf.TransformBegin()
	pdf.TransformTranslate(float64(-origin.X), float64(-origin.Y))

	for _, s := range f.Shapes {
		style := ""
		pdf.SetAlpha(1, "Normal")
		if !s.Style.OutlineOnly() {
			setFill(pdf, s.Style.Fill)
			style += "F"
		}
		if s.Style.StrokeWidth > 0 && s.Style.Line.A > 0 {
			setDraw(pdf, s.Style.Line)
			pdf.SetLineWidth(float64(s.Style.StrokeWidth))
			style += "D"
		}
		if style == "" {
			continue
		}
		rect(pdf, s.Rect, style)
	}
	pdf.SetAlpha(1, "Normal")

	if opt.Overlays {
		setDraw(pdf, opt.Overlay)
		pdf.SetLineWidth(1)
		if !f.Preview.IsNone() {
			rect(pdf, f.Preview, "D")
		}
		if !f.RubberBand.IsNone() {
			pdf.SetDashPattern([]float64{3, 2}, 0)
			rect(pdf, f.RubberBand, "D")
			pdf.SetDashPattern(nil, 0)
		}
		if !f.Boundary.IsNone() {
			rect(pdf, f.Boundary, "D")
		}
		setFill(pdf, vector.White)
		for _, hr := range f.Handles {
			if !hr.IsNone() {
				rect(pdf, hr, "FD")
			}
		}
	}

	pdf.TransformEnd()

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func rect(pdf *gofpdf.Fpdf, r vector.Rect, style string) {
	r = r.Canon()
	pdf.Rect(float64(r.Left), float64(r.Top), float64(r.Width()), float64(r.Height()), style)
}

// gofpdf has a single alpha for fill and stroke; the fill alpha wins.
func setFill(pdf *gofpdf.Fpdf, c vector.Color) {
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	pdf.SetAlpha(float64(c.A)/255, "Normal")
}

func setDraw(pdf *gofpdf.Fpdf, c vector.Color) {
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}
