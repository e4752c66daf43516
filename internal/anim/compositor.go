package anim

import (
	"image"
	"image/color"
	"math"

	"github.com/Zentaurios/basex402/internal/render"
	"github.com/Zentaurios/basex402/internal/tier"
)

// Text of the request/response exchange.
var (
	RequestLines = []string{
		`POST /api/x402/payment`,
		`{ "amount": 0.001,`,
		`  "to": "0x742d35C...",`,
		`  "protocol": "x402" }`,
	}
	ResponseLines = []string{
		`200 OK`,
		`{ "status": "confirmed",`,
		`  "txHash": "0x8f2a..." }`,
	}
)

// Font sizes and offsets on the 512px reference canvas.
const (
	codeSize    = 24
	glyphSize   = 200
	numeralSize = 100

	codeLeft       = 30
	requestTop     = 50
	lineStep       = 30
	responseBottom = 120 // distance of the first response line from the bottom
	logoLift       = 50
	logoGap        = 20
)

// Compositor renders frames of the payment flash animation.
type Compositor struct {
	Fonts    *render.Fonts
	Timeline Timeline
}

// NewCompositor returns a compositor with the default timeline.
func NewCompositor(fonts *render.Fonts) *Compositor {
	return &Compositor{Fonts: fonts, Timeline: DefaultTimeline()}
}

// frame carries everything one RenderFrame call derives from its inputs.
type frame struct {
	canvas *render.Canvas
	pal    map[tier.Role]color.RGBA
	scale  float64
	code   render.TextFace
	logo   LogoPlacement
}

func (f *frame) px(v float64) int { return int(math.Round(v * f.scale)) }

// RenderFrame draws frame frameIndex of cfg's animation. Non-positive
// sizes fall back to 512x512. The result is opaque and depends only on the
// arguments.
func (c *Compositor) RenderFrame(cfg tier.Config, frameIndex, width, height int) (*image.RGBA, error) {
	pal, err := cfg.Palette(tier.AnimationRoles...)
	if err != nil {
		return nil, err
	}
	tl := c.Timeline
	if tl.Validate() != nil {
		tl = DefaultTimeline()
	}
	fonts := c.Fonts
	if fonts == nil {
		fonts = render.BitmapFonts()
	}

	width, height = render.Size(width, height)
	f := &frame{
		canvas: render.NewCanvas(width, height, pal[tier.Background]),
		pal:    pal,
		scale:  float64(min(width, height)) / float64(render.DefaultWidth),
	}
	f.code = fonts.Face(float64(f.px(codeSize)))
	f.logo = PlaceLogo(
		fonts.Face(float64(f.px(glyphSize))), fonts.Face(float64(f.px(numeralSize))),
		f.canvas.Bounds(), f.px(logoLift), f.px(logoGap),
	)

	if cfg.GoldBorder() {
		DrawGoldBorder(f.canvas.Image())
	}

	switch ph := tl.PhaseAt(frameIndex).(type) {
	case Typing:
		f.drawRequest(revealLines(RequestLines, requestStagger, ph.Progress))
	case FadeIn:
		f.drawRequest(RequestLines)
		f.drawResponse(revealLines(ResponseLines, responseStagger, ph.Progress))
		f.fadeLogo(fadeAlpha(ph.Progress))
	case Settle, Hold:
		f.drawRequest(RequestLines)
		f.drawResponse(ResponseLines)
		f.drawLogo()
	case Shoot:
		f.drawRequest(RequestLines)
		f.drawResponse(ResponseLines)
		f.shoot(ph.Progress)
	}
	return f.canvas.Image(), nil
}

func (f *frame) drawRequest(lines []string) {
	for i, line := range lines {
		f.code.DrawText(f.canvas.Image(), line, f.px(codeLeft), f.px(requestTop+float64(i*lineStep)), f.pal[tier.Code])
	}
}

func (f *frame) drawResponse(lines []string) {
	top := f.canvas.Bounds().Max.Y - f.px(responseBottom)
	for i, line := range lines {
		f.code.DrawText(f.canvas.Image(), line, f.px(codeLeft), top+f.px(float64(i*lineStep)), f.pal[tier.Code])
	}
}

func (f *frame) drawLogo() {
	f.logo.Draw(f.canvas.Image(), f.pal[tier.Glyph], f.pal[tier.Numeral])
}

// fadeLogo draws the logo at alpha through a layer.
func (f *frame) fadeLogo(alpha uint8) {
	if alpha == 0 {
		return
	}
	if alpha == 0xff {
		f.drawLogo()
		return
	}
	layer := render.NewLayer(f.canvas.Bounds())
	f.logo.Draw(layer.Image(), withAlpha(f.pal[tier.Glyph], alpha), withAlpha(f.pal[tier.Numeral], alpha))
	layer.Composite(f.canvas, render.AlphaOver)
}

func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
