package art

import (
	"image"
	"image/color"

	"github.com/Zentaurios/basex402/internal/render"
	"github.com/Zentaurios/basex402/internal/render/layout"
	"github.com/disintegration/imaging"
	"github.com/fogleman/ease"
)

// OpenGraph card dimensions.
const (
	OGWidth  = 1200
	OGHeight = 630
)

// OGCard is one social share image.
type OGCard struct {
	Name     string // file name without extension
	Title    string
	Subtitle string
	// QRPayload, when set, is rendered as a QR code in the bottom-right
	// corner.
	QRPayload string
}

// DefaultOGCards are the share images of the collection site.
var DefaultOGCards = []OGCard{
	{Name: "og-default", Title: "x402 Pioneers", Subtitle: "x402 Micropayments on Base"},
	{Name: "og-home", Title: "x402 Pioneers", Subtitle: "Limited Edition NFTs • Base Blockchain"},
	{Name: "og-mint", Title: "Mint x402 NFTs", Subtitle: "Only 402 Available • $1 USDC Each", QRPayload: "https://basex402.com/mint"},
}

const qrMargin = 40

// OGImage draws a 1200x630 share card: the logo on the left, title and
// subtitle on the right, and an optional QR code.
func (a *Artist) OGImage(card OGCard) (image.Image, error) {
	canvas := render.NewCanvas(OGWidth, OGHeight, render.BrandBlue)
	img := canvas.Image()

	logoSize := OGHeight / 2
	logoCol, textCol := layout.SplitVertical(img.Bounds(), OGWidth*12/100+logoSize+OGWidth*8/100)
	logoAt := image.Pt(logoCol.Min.X+OGWidth*12/100, logoCol.Min.Y+(logoCol.Dy()-logoSize)/2)
	textX := textCol.Min.X
	maxText := textCol.Dx() - qrMargin

	title := a.fitFace(card.Title, OGHeight*0.12, maxText)
	tm := title.MeasureText(card.Title)
	titleY := OGHeight/2 - int(float64(tm.Height)*0.7)
	strokedText(img, title, card.Title, textX, titleY, 2, render.BrandWhite, render.BrandBlue)

	subtitle := a.fitFace(card.Subtitle, OGHeight*0.055, maxText)
	subtitleY := titleY + tm.Height + OGHeight*6/100
	strokedText(img, subtitle, card.Subtitle, textX, subtitleY, 1, render.BrandWhite, render.BrandBlue)

	out := imaging.Overlay(img, a.LogoSquare(logoSize, false), logoAt, 1.0)

	if card.QRPayload != "" {
		side := OGHeight / 4
		qr, err := render.QRCodeImage(card.QRPayload, side, render.BrandBlue, render.BrandWhite)
		if err != nil {
			return nil, err
		}
		out = imaging.Paste(out, qr, image.Pt(OGWidth-side-qrMargin, OGHeight-side-qrMargin))
	}
	return out, nil
}

// Logo banner dimensions.
const (
	LogoBannerWidth  = 1200
	LogoBannerHeight = 400
)

// logoBannerShade is the darkening applied at the bottom edge. The field
// stays close to brand blue through the title and darkens near the edge.
const logoBannerShade = 30

// LogoBanner draws the 1200x400 collection header: a blue field darkening
// toward the bottom, the logo on the left and the collection title.
func (a *Artist) LogoBanner() image.Image {
	canvas := render.NewCanvas(LogoBannerWidth, LogoBannerHeight, render.BrandBlue)
	img := canvas.Image()
	bottom := shade(render.BrandBlue, logoBannerShade)
	render.VerticalGradient(img, img.Bounds(), render.BrandBlue, bottom, ease.InQuad)

	logoSize := LogoBannerHeight * 55 / 100
	logoCol, textCol := layout.SplitVertical(img.Bounds(), LogoBannerWidth*8/100+logoSize+LogoBannerWidth*6/100)
	logoAt := image.Pt(logoCol.Min.X+LogoBannerWidth*8/100, logoCol.Min.Y+(logoCol.Dy()-logoSize)/2)
	textX := textCol.Min.X
	maxText := textCol.Dx() - 20

	const title = "x402 Collection"
	tf := a.fitFace(title, LogoBannerHeight*0.18, maxText)
	tm := tf.MeasureText(title)
	titleY := LogoBannerHeight/2 - int(float64(tm.Height)*0.8)
	strokedText(img, tf, title, textX, titleY, 2, render.BrandWhite, render.Gray100)

	const subtitle = "Limited to 402 • x402 Protocol • Base"
	sf := a.fitFace(subtitle, LogoBannerHeight*0.08, maxText)
	strokedText(img, sf, subtitle, textX, titleY+tm.Height+LogoBannerHeight*8/100, 1, render.BrandWhite, render.Gray100)

	return imaging.Overlay(img, a.LogoSquare(logoSize, false), logoAt, 1.0)
}

// shade darkens c as if black at alpha were drawn over it.
func shade(c color.RGBA, alpha uint8) color.RGBA {
	k := func(v uint8) uint8 { return uint8(int(v) * (255 - int(alpha)) / 255) }
	return color.RGBA{R: k(c.R), G: k(c.G), B: k(c.B), A: c.A}
}
