package art

import (
	"image"
	"image/draw"
	"math"

	"github.com/Zentaurios/basex402/internal/anim"
	"github.com/Zentaurios/basex402/internal/render"
)

// Logo proportions relative to the square's side.
const (
	logoRadius       = 0.079
	logoGlyphRatio   = 0.75
	logoNumeralRatio = 0.375
	logoSpacing      = 0.03
	logoStrokeRatio  = 0.004

	faviconNumeralRatio = 0.5
	// Favicons at or below this size show only the numeral.
	faviconSimpleMax = 48
	// Squares below this size are not rounded.
	faviconRoundMin = 32
)

// LogoSquare draws the brand logo on a size x size canvas: a rounded blue
// square with a black X over a white 402. The transparent variant drops the
// square and draws a blue X outlined in white.
func (a *Artist) LogoSquare(size int, transparent bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if !transparent {
		render.FillRoundedRect(img, img.Bounds(), float64(size)*logoRadius, render.BrandBlue)
	}

	s := float64(size)
	logo := anim.CenterLogo(a.face(s*logoGlyphRatio), a.face(s*logoNumeralRatio), img.Bounds(), int(s*logoSpacing))

	glyph := render.BrandBlack
	if transparent {
		glyph = render.BrandBlue
		stroke := max(1, int(s*logoStrokeRatio))
		for dx := -stroke; dx <= stroke; dx++ {
			for dy := -stroke; dy <= stroke; dy++ {
				if dx != 0 || dy != 0 {
					logo.GlyphFace.DrawText(img, anim.GlyphText, logo.GlyphAt.X+dx, logo.GlyphAt.Y+dy, render.BrandWhite)
				}
			}
		}
	}
	logo.Draw(img, glyph, render.BrandWhite)
	return img
}

// Favicon draws a size x size icon. Small icons carry only the numeral on
// a blue square; larger ones are the full logo.
func (a *Artist) Favicon(size int) *image.RGBA {
	if size > faviconSimpleMax {
		return a.LogoSquare(size, false)
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size >= faviconRoundMin {
		render.FillRoundedRect(img, img.Bounds(), float64(size)*logoRadius, render.BrandBlue)
	} else {
		draw.Draw(img, img.Bounds(), image.NewUniform(render.BrandBlue), image.Point{}, draw.Src)
	}

	face := a.face(math.Max(1, float64(size)*faviconNumeralRatio))
	m := face.MeasureText(anim.NumeralText)
	x := (size-m.Ink.Dx())/2 - m.Ink.Min.X
	y := (size-m.Ink.Dy())/2 - m.Ink.Min.Y
	face.DrawText(img, anim.NumeralText, x, y, render.BrandWhite)
	return img
}
