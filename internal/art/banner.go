package art

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/Zentaurios/basex402/internal/anim"
	"github.com/Zentaurios/basex402/internal/render"
	"github.com/Zentaurios/basex402/internal/render/layout"
	"github.com/Zentaurios/basex402/internal/tier"
	"github.com/disintegration/imaging"
	"github.com/fogleman/ease"
)

// Collection banner dimensions.
const (
	BannerWidth  = 2560
	BannerHeight = 1440
)

const (
	bannerTitle    = "x402 PROTOCOL PIONEERS"
	bannerSubtitle = "Micropayment Protocol • Base Network"

	bannerPreviewW   = 200
	bannerPreviewH   = 120
	bannerPreviewGap = 30
	bannerSideAlpha  = 180
)

var bannerCode = []string{
	"POST /api/x402/payment",
	"{ amount: 0.001, protocol: 'x402' }",
	"200 OK { status: 'confirmed' }",
}

// CollectionBanner draws the 2560x1440 marketplace banner: a blue to gray
// gradient, the collection title in the safe center area, translucent logos
// on both sides and one preview per tier along the bottom.
func (a *Artist) CollectionBanner(reg *tier.Registry) (image.Image, error) {
	canvas := render.NewCanvas(BannerWidth, BannerHeight, render.BrandBlue)
	img := canvas.Image()
	render.VerticalGradient(img, img.Bounds(), render.BrandBlue, render.Gray80, ease.InOutQuad)

	a.bannerCode(canvas)

	core := layout.Center(img.Bounds(), BannerWidth*40/100, BannerHeight*60/100)
	titleY := core.Min.Y + 50
	render.DrawTextCentered(img, a.face(120), bannerTitle, BannerWidth/2, titleY, render.BrandWhite)
	subtitleY := titleY + 150
	render.DrawTextCentered(img, a.face(48), bannerSubtitle, BannerWidth/2, subtitleY, render.Gray30)
	supply := fmt.Sprintf("%d Total Supply • %d Rarity Tiers", reg.Supply(), reg.Len())
	render.DrawTextCentered(img, a.face(48), supply, BannerWidth/2, subtitleY+80, render.Yellow)

	a.bannerSideLogos(canvas)

	if err := a.bannerPreviews(img, reg); err != nil {
		return nil, err
	}
	return img, nil
}

// bannerCode writes faint payment snippets into the top corners.
func (a *Artist) bannerCode(canvas *render.Canvas) {
	layer := render.NewLayer(canvas.Bounds())
	face := a.face(32)
	for i, line := range bannerCode {
		y := 100 + i*40
		face.DrawText(layer.Image(), line, 80, y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 40})
		face.DrawText(layer.Image(), line, BannerWidth-500, y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 25})
	}
	layer.Composite(canvas, render.AlphaOver)
}

// bannerSideLogos draws a translucent logo near each side edge.
func (a *Artist) bannerSideLogos(canvas *render.Canvas) {
	layer := render.NewLayer(canvas.Bounds())
	glyph := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: bannerSideAlpha}
	numeral := color.NRGBA{R: render.Yellow.R, G: render.Yellow.G, B: render.Yellow.B, A: bannerSideAlpha}
	gf, nf := a.face(200), a.face(100)
	for _, x := range []int{200, BannerWidth - 400} {
		y := BannerHeight/2 - 100
		gf.DrawText(layer.Image(), anim.GlyphText, x, y, glyph)
		nf.DrawText(layer.Image(), anim.NumeralText, x, y+150, numeral)
	}
	layer.Composite(canvas, render.AlphaOver)
}

// bannerPreviews lays a thumbnail of every tier's artwork in a centered row
// with the tier name above and its token count below.
func (a *Artist) bannerPreviews(dst *image.RGBA, reg *tier.Registry) error {
	tiers := reg.All()
	y := BannerHeight - bannerPreviewH - 40
	cells := layout.Row(dst.Bounds(), len(tiers), bannerPreviewW, bannerPreviewH, bannerPreviewGap, y)
	name := a.face(24)
	count := a.face(20)
	for i, cfg := range tiers {
		full, err := a.TierPNG(cfg, render.DefaultWidth)
		if err != nil {
			return err
		}
		thumb := imaging.Fill(full, bannerPreviewW, bannerPreviewH, imaging.Center, imaging.Lanczos)
		draw.Draw(dst, cells[i], thumb, thumb.Bounds().Min, draw.Src)

		label := render.Gray30
		if cfg.GoldBorder() {
			label = render.Yellow
		}
		nm := name.MeasureText(cfg.Name())
		name.DrawText(dst, strings.ToUpper(cfg.Name()), cells[i].Min.X, cells[i].Min.Y-nm.Height-6, label)
		count.DrawText(dst, fmt.Sprintf("%d tokens", cfg.TokenCount()), cells[i].Min.X, cells[i].Max.Y+6, render.Gray50)
	}
	return nil
}
