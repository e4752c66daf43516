package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/ease"
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// FillRect paints r with c using "over" compositing.
func FillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, &image.Uniform{C: c}, image.Point{}, draw.Over)
}

// StrokeRect outlines r (exclusive max) with a border width px thick,
// drawn inward.
func StrokeRect(dst draw.Image, r image.Rectangle, width int, c color.Color) {
	if width <= 0 || r.Empty() {
		return
	}
	for i := 0; i < width; i++ {
		in := image.Rect(r.Min.X+i, r.Min.Y+i, r.Max.X-i, r.Max.Y-i)
		if in.Empty() {
			return
		}
		FillRect(dst, image.Rect(in.Min.X, in.Min.Y, in.Max.X, in.Min.Y+1), c)
		FillRect(dst, image.Rect(in.Min.X, in.Max.Y-1, in.Max.X, in.Max.Y), c)
		FillRect(dst, image.Rect(in.Min.X, in.Min.Y+1, in.Min.X+1, in.Max.Y-1), c)
		FillRect(dst, image.Rect(in.Max.X-1, in.Min.Y+1, in.Max.X, in.Max.Y-1), c)
	}
}

// StrokeLine draws an antialiased line of the given width.
func StrokeLine(dst *image.RGBA, x0, y0, x1, y1, width float64, c color.Color) {
	dc := gg.NewContextForRGBA(dst)
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.SetLineCapButt()
	dc.DrawLine(x0, y0, x1, y1)
	dc.Stroke()
}

// FillPolygon fills the closed polygon through pts.
func FillPolygon(dst *image.RGBA, pts []image.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	dc := gg.NewContextForRGBA(dst)
	dc.SetColor(c)
	dc.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, p := range pts[1:] {
		dc.LineTo(float64(p.X), float64(p.Y))
	}
	dc.ClosePath()
	dc.Fill()
}

// FillRoundedRect fills r with corners of the given radius.
func FillRoundedRect(dst *image.RGBA, r image.Rectangle, radius float64, c color.Color) {
	dc := gg.NewContextForRGBA(dst)
	dc.SetColor(c)
	dc.DrawRoundedRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), radius)
	dc.Fill()
}

// VerticalGradient paints r row by row from top to bottom, blending in RGB
// space along the easing curve fn. A nil fn is linear.
func VerticalGradient(dst draw.Image, r image.Rectangle, top, bottom color.Color, fn func(float64) float64) {
	if r.Empty() {
		return
	}
	if fn == nil {
		fn = ease.Linear
	}
	from, _ := colorful.MakeColor(top)
	to, _ := colorful.MakeColor(bottom)
	_, _, _, a := top.RGBA()
	rows := r.Dy()
	for i := 0; i < rows; i++ {
		t := 0.0
		if rows > 1 {
			t = float64(i) / float64(rows-1)
		}
		cr, cg, cb := from.BlendRgb(to, fn(t)).Clamped().RGB255()
		row := image.Rect(r.Min.X, r.Min.Y+i, r.Max.X, r.Min.Y+i+1)
		FillRect(dst, row, color.NRGBA{R: cr, G: cg, B: cb, A: uint8(a >> 8)})
	}
}
