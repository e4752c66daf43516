package art

import (
	"bufio"
	"image"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/Zentaurios/basex402/internal/anim"
	"github.com/Zentaurios/basex402/internal/render"
	"github.com/Zentaurios/basex402/internal/tier"
	svg "github.com/ajstarks/svgo"
)

// HeaderText titles every tier image.
const HeaderText = "x402 PROTOCOL"

// Reference layout of the 512px static tier image.
const (
	tierBorder       = 6
	tierHeaderSize   = 20
	tierHeaderTop    = 15
	tierCodeSize     = 18
	tierCodeLeft     = 20
	tierRequestTop   = 45
	tierLineStep     = 22
	tierGlyphSize    = 160
	tierNumeralSize  = 80
	tierLogoLift     = 20
	tierLogoGap      = 15
	tierResponseGap  = 20
	tierResponseMax  = 110 // lowest response start, from the bottom
	tierNameSize     = 28
	tierNameBottom   = 35
	tierCornerInset  = 10
	tierCornerLength = 25
)

// TierPNG draws the static artwork of cfg on a size x size canvas.
func (a *Artist) TierPNG(cfg tier.Config, size int) (*image.RGBA, error) {
	pal, err := cfg.Palette(tier.StaticRoles...)
	if err != nil {
		return nil, err
	}
	size, _ = render.Size(size, size)
	scale := float64(size) / render.DefaultWidth
	px := func(v float64) int { return int(math.Round(v * scale)) }

	canvas := render.NewCanvas(size, size, pal[tier.Background])
	img := canvas.Image()
	if cfg.GoldBorder() {
		anim.DrawGoldBorder(img)
	} else {
		render.StrokeRect(img, img.Bounds(), px(tierBorder), pal[tier.Border])
	}

	render.DrawTextCentered(img, a.face(tierHeaderSize*scale), HeaderText, size/2, px(tierHeaderTop), pal[tier.Accent])

	code := a.face(tierCodeSize * scale)
	for i, line := range anim.RequestLines {
		code.DrawText(img, line, px(tierCodeLeft), px(tierRequestTop+float64(i*tierLineStep)), pal[tier.Code])
	}

	logo := anim.PlaceLogo(a.face(tierGlyphSize*scale), a.face(tierNumeralSize*scale), img.Bounds(), px(tierLogoLift), px(tierLogoGap))
	logo.Draw(img, pal[tier.Glyph], pal[tier.Numeral])

	top := max(logo.NumeralInk.Max.Y+px(tierResponseGap), size-px(tierResponseMax))
	for i, line := range anim.ResponseLines {
		code.DrawText(img, line, px(tierCodeLeft), top+px(float64(i*tierLineStep)), pal[tier.Code])
	}

	name := a.face(tierNameSize * scale)
	render.DrawTextCentered(img, name, strings.ToUpper(cfg.Name()), size/2, size-px(tierNameBottom), pal[tier.Accent])

	for _, tri := range cornerTriangles(size, px(tierCornerInset), px(tierCornerLength)) {
		render.FillPolygon(img, tri, pal[tier.Accent])
	}
	return img, nil
}

// cornerTriangles returns one right triangle per corner with its right
// angle inset px from the canvas corner.
func cornerTriangles(size, inset, length int) [][]image.Point {
	lo, hi := inset, size-inset
	return [][]image.Point{
		{image.Pt(lo, lo), image.Pt(lo+length, lo), image.Pt(lo, lo+length)},
		{image.Pt(hi, lo), image.Pt(hi-length, lo), image.Pt(hi, lo+length)},
		{image.Pt(lo, hi), image.Pt(lo+length, hi), image.Pt(lo, hi-length)},
		{image.Pt(hi, hi), image.Pt(hi-length, hi), image.Pt(hi, hi-length)},
	}
}

// TierSVG writes a vector rendition of the tier artwork. Text is left to
// the viewer's monospace font.
func TierSVG(w io.Writer, cfg tier.Config, size int) error {
	pal, err := cfg.Palette(tier.StaticRoles...)
	if err != nil {
		return err
	}
	size, _ = render.Size(size, size)
	scale := float64(size) / render.DefaultWidth
	px := func(v float64) int { return int(math.Round(v * scale)) }
	hex := func(r tier.Role) string { return tier.Hex(pal[r]) }
	font := func(sizePx float64, weight string) string {
		return "font-family:Monaco,'DejaVu Sans Mono',monospace;white-space:pre;font-size:" +
			strconv.Itoa(px(sizePx)) + "px;font-weight:" + weight
	}

	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Title(cfg.Name() + " - " + HeaderText)
	canvas.Rect(0, 0, size, size, "fill:"+hex(tier.Background))

	canvas.Rect(0, 0, size, size, "fill:none;stroke-width:"+strconv.Itoa(px(tierBorder))+";stroke:"+hex(tier.Border))
	if cfg.GoldBorder() {
		gold := tier.Hex(tier.GoldAccent)
		canvas.Rect(px(12), px(12), size-px(24), size-px(24), "fill:none;stroke-width:"+strconv.Itoa(px(3))+";stroke:"+gold)
		canvas.Rect(px(26), px(26), size-px(52), size-px(52), "fill:none;stroke-width:"+strconv.Itoa(px(3))+";stroke:"+gold)
	}

	canvas.Text(size/2, px(30), HeaderText, "text-anchor:middle;fill:"+hex(tier.Accent)+";"+font(tierHeaderSize, "bold"))

	canvas.Gstyle("fill:" + hex(tier.Code) + ";" + font(16, "normal"))
	for i, line := range anim.RequestLines {
		canvas.Text(px(tierCodeLeft), px(65+float64(i*tierLineStep)), line)
	}
	for i, line := range anim.ResponseLines {
		canvas.Text(px(tierCodeLeft), px(380+float64(i*tierLineStep)), line)
	}
	canvas.Gend()

	canvas.Text(size/2, px(220), anim.GlyphText, "text-anchor:middle;fill:"+hex(tier.Glyph)+";"+font(tierGlyphSize, "bold"))
	canvas.Text(size/2, px(320), anim.NumeralText, "text-anchor:middle;fill:"+hex(tier.Numeral)+";"+font(tierNumeralSize, "bold"))
	canvas.Text(size/2, size-px(20), strings.ToUpper(cfg.Name()), "text-anchor:middle;fill:"+hex(tier.Accent)+";"+font(tierNameSize, "bold"))

	for _, tri := range cornerTriangles(size, px(tierCornerInset), px(tierCornerLength)) {
		xs := make([]int, len(tri))
		ys := make([]int, len(tri))
		for i, p := range tri {
			xs[i], ys[i] = p.X, p.Y
		}
		canvas.Polygon(xs, ys, "fill:"+hex(tier.Accent))
	}
	canvas.End()
	return nil
}

// WriteTierSVG writes the SVG rendition of cfg to path.
func WriteTierSVG(path string, cfg tier.Config, size int) error {
	if _, err := cfg.Palette(tier.StaticRoles...); err != nil {
		return err
	}
	return writeFile(path, func(w *bufio.Writer) error { return TierSVG(w, cfg, size) })
}
