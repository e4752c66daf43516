package anim

import (
	"image"
	"image/color"
	"math"

	"github.com/Zentaurios/basex402/internal/render"
	"github.com/Zentaurios/basex402/internal/tier"
)

// motionStyle tunes the effects drawn behind one moving glyph. Distances are
// in reference-canvas pixels.
type motionStyle struct {
	lineAlpha  uint8   // speed line opacity
	trailStep  int     // spacing between ghost copies
	trailReach float64 // trail length at full speed
	fadePerPx  int     // ghost alpha lost per pixel behind the glyph
	blur       int     // vertical blur offsets either side of a ghost
	glowAlpha  float64 // glow opacity at full speed
	glowRadius int     // manhattan radius of the glow diamond
}

var (
	glyphMotion   = motionStyle{lineAlpha: 120, trailStep: 15, trailReach: 200, fadePerPx: 8, blur: 2, glowAlpha: 100, glowRadius: 4}
	numeralMotion = motionStyle{lineAlpha: 100, trailStep: 12, trailReach: 180, fadePerPx: 10, blur: 1, glowAlpha: 80, glowRadius: 3}
)

const (
	speedLines      = 8
	speedLineLength = 40
	speedLineGrow   = 15
	speedLineStride = 20
	speedLineWidth  = 3
)

// mover is one glyph in flight.
type mover struct {
	face  render.TextFace
	text  string
	at    image.Point     // displaced anchor
	home  int             // resting anchor x
	ink   image.Rectangle // displaced ink box
	color color.RGBA
	style motionStyle
	reach float64 // effective speed driving the trail length
}

// shoot draws the departing logo at shoot progress q.
func (f *frame) shoot(q float64) {
	v := Speed(q)
	dGlyph, dNumeral := ShootOffsets(q, f.canvas.Bounds().Dx())
	l := f.logo

	f.drawMover(mover{
		face:  l.GlyphFace,
		text:  GlyphText,
		at:    l.GlyphAt.Sub(image.Pt(dGlyph, 0)),
		home:  l.GlyphAt.X,
		ink:   l.GlyphInk.Sub(image.Pt(dGlyph, 0)),
		color: f.pal[tier.Glyph],
		style: glyphMotion,
		reach: v,
	}, v)
	f.drawMover(mover{
		face:  l.NumeralFace,
		text:  NumeralText,
		at:    l.NumeralAt.Sub(image.Pt(dNumeral, 0)),
		home:  l.NumeralAt.X,
		ink:   l.NumeralInk.Sub(image.Pt(dNumeral, 0)),
		color: f.pal[tier.Numeral],
		style: numeralMotion,
		reach: math.Max(0, v-numeralDelay),
	}, v)
}

// drawMover layers speed lines, trail and glow under the crisp glyph.
func (f *frame) drawMover(m mover, speed float64) {
	if m.ink.Max.X < f.canvas.Bounds().Min.X {
		return
	}
	trail := f.pal[tier.Trail]

	f.speedLines(m, trail)
	f.trail(m, speed, trail)
	if speed > glowThreshold {
		f.glow(m, speed, trail)
	}
	m.face.DrawText(f.canvas.Image(), m.text, m.at.X, m.at.Y, m.color)
}

// speedLines strokes horizontal dashes trailing to the right of the glyph,
// each one longer than the last.
func (f *frame) speedLines(m mover, c color.RGBA) {
	bounds := f.canvas.Bounds()
	layer := render.NewLayer(bounds)
	lc := withAlpha(c, m.style.lineAlpha)
	for i := 0; i < speedLines; i++ {
		startX := m.ink.Max.X + f.px(float64(speedLineStride*i))
		if startX >= bounds.Max.X {
			continue
		}
		y := m.ink.Min.Y + m.ink.Dy()*(i+1)/(speedLines+1)
		if y <= bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		length := f.px(float64(speedLineLength + speedLineGrow*i))
		render.StrokeLine(layer.Image(), float64(startX), float64(y), float64(startX+length), float64(y),
			float64(f.px(speedLineWidth)), lc)
	}
	layer.Composite(f.canvas, render.AlphaOver)
}

// trail draws ghost copies sampled backward along the path toward the
// resting position. Each ghost is smeared vertically.
func (f *frame) trail(m mover, speed float64, c color.RGBA) {
	reach := int(m.reach * m.style.trailReach)
	if reach <= m.style.trailStep {
		return
	}
	layer := render.NewLayer(f.canvas.Bounds())
	for off := m.style.trailStep; off < reach; off += m.style.trailStep {
		x := m.at.X + f.px(float64(off))
		if x > m.home {
			break
		}
		alpha := int(float64(max(0, 255-off*m.style.fadePerPx)) * (1 + speed))
		alpha = min(255, alpha)
		if alpha <= 20 {
			continue
		}
		for b := -m.style.blur; b <= m.style.blur; b++ {
			ba := alpha / (abs(b) + 1)
			if ba <= 10 {
				continue
			}
			m.face.DrawText(layer.Image(), m.text, x, m.at.Y+b, withAlpha(c, uint8(ba)))
		}
	}
	layer.Composite(f.canvas, render.AlphaOver)
}

// glow redraws the glyph in a small diamond of offsets and adds the result
// onto the canvas.
func (f *frame) glow(m mover, speed float64, c color.RGBA) {
	a := int(m.style.glowAlpha*speed) / 3
	if a <= 0 {
		return
	}
	layer := render.NewLayer(f.canvas.Bounds())
	gc := withAlpha(c, uint8(a))
	r := m.style.glowRadius
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if abs(dx)+abs(dy) > r {
				continue
			}
			m.face.DrawText(layer.Image(), m.text, m.at.X+dx, m.at.Y+dy, gc)
		}
	}
	layer.Composite(f.canvas, render.Additive)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
