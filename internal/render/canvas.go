package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas is an opaque raster owned by a single render call.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a width x height canvas filled with bg.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	c.Fill(bg)
	return c
}

// Fill paints the whole canvas with col.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Image exposes the backing buffer for direct drawing.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Blend selects how a Layer is merged onto a Canvas.
type Blend int

const (
	// AlphaOver is Porter-Duff "over".
	AlphaOver Blend = iota
	// Additive adds the layer's premultiplied color to the canvas,
	// saturating at white. Used for bloom.
	Additive
)

// Layer is a transparent scratch buffer the size of a canvas. It is single
// use: Composite releases the buffer.
type Layer struct {
	img *image.RGBA
}

// NewLayer allocates a transparent layer covering bounds.
func NewLayer(bounds image.Rectangle) *Layer {
	return &Layer{img: image.NewRGBA(bounds)}
}

// Image returns the layer buffer, or nil once the layer was composited.
func (l *Layer) Image() *image.RGBA { return l.img }

// Composite merges the layer onto canvas and releases it.
func (l *Layer) Composite(onto *Canvas, blend Blend) {
	if l.img == nil {
		return
	}
	src := l.img
	l.img = nil

	r := src.Bounds().Intersect(onto.img.Bounds())
	if r.Empty() {
		return
	}
	switch blend {
	case Additive:
		addOnto(onto.img, src, r)
	default:
		draw.Draw(onto.img, r, src, r.Min, draw.Over)
	}
}

func addOnto(dst, src *image.RGBA, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		so := src.PixOffset(r.Min.X, y)
		do := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, so, do = x+1, so+4, do+4 {
			if src.Pix[so+3] == 0 {
				continue
			}
			for i := 0; i < 3; i++ {
				v := int(dst.Pix[do+i]) + int(src.Pix[so+i])
				if v > 0xff {
					v = 0xff
				}
				dst.Pix[do+i] = uint8(v)
			}
		}
	}
}
