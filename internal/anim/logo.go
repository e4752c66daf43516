package anim

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/Zentaurios/basex402/internal/render"
)

// LogoPlacement positions the "X" glyph above the "402" numeral. Anchors are
// the top-left points passed to TextFace.DrawText; Ink boxes are absolute.
type LogoPlacement struct {
	GlyphFace, NumeralFace render.TextFace

	GlyphAt, NumeralAt   image.Point
	GlyphInk, NumeralInk image.Rectangle
}

const (
	GlyphText   = "X"
	NumeralText = "402"
)

// PlaceLogo centers the glyph ink horizontally in bounds, lifted by lift
// pixels above the vertical center, and puts the numeral gap pixels below
// it. Positions come from the faces' measured ink so any loaded font lays
// out correctly.
func PlaceLogo(glyphFace, numeralFace render.TextFace, bounds image.Rectangle, lift, gap int) LogoPlacement {
	gm := glyphFace.MeasureText(GlyphText)
	nm := numeralFace.MeasureText(NumeralText)

	cx := bounds.Min.X + bounds.Dx()/2
	glyphTop := bounds.Min.Y + (bounds.Dy()-gm.Ink.Dy())/2 - lift
	glyphAt := image.Pt(cx-gm.Ink.Dx()/2-gm.Ink.Min.X, glyphTop-gm.Ink.Min.Y)
	numeralTop := glyphTop + gm.Ink.Dy() + gap
	numeralAt := image.Pt(cx-nm.Ink.Dx()/2-nm.Ink.Min.X, numeralTop-nm.Ink.Min.Y)

	return LogoPlacement{
		GlyphFace:   glyphFace,
		NumeralFace: numeralFace,
		GlyphAt:     glyphAt,
		NumeralAt:   numeralAt,
		GlyphInk:    gm.Ink.Add(glyphAt),
		NumeralInk:  nm.Ink.Add(numeralAt),
	}
}

// Draw paints both glyphs at their resting position.
func (l LogoPlacement) Draw(dst draw.Image, glyph, numeral color.Color) {
	l.GlyphFace.DrawText(dst, GlyphText, l.GlyphAt.X, l.GlyphAt.Y, glyph)
	l.NumeralFace.DrawText(dst, NumeralText, l.NumeralAt.X, l.NumeralAt.Y, numeral)
}

// Bounds is the union of both ink boxes.
func (l LogoPlacement) Bounds() image.Rectangle {
	return l.GlyphInk.Union(l.NumeralInk)
}

// CenterLogo places the glyph and numeral so the stacked pair is centered
// in bounds.
func CenterLogo(glyphFace, numeralFace render.TextFace, bounds image.Rectangle, gap int) LogoPlacement {
	nh := numeralFace.MeasureText(NumeralText).Ink.Dy()
	return PlaceLogo(glyphFace, numeralFace, bounds, (nh+gap)/2, gap)
}
