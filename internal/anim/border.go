package anim

import (
	"image/draw"

	"github.com/Zentaurios/basex402/internal/render"
	"github.com/Zentaurios/basex402/internal/render/layout"
	"github.com/Zentaurios/basex402/internal/tier"
)

const (
	goldBandWidth    = 15
	goldAccentRings  = 8
	goldInnerInset   = 25
	goldInnerRingsPx = 3
)

// DrawGoldBorder strokes the gold frame: an accent band on the outer 8
// rings, a highlight band on the next 7, and a thin accent rectangle
// further in.
func DrawGoldBorder(dst draw.Image) {
	r := dst.Bounds()
	for i := 0; i < goldBandWidth; i++ {
		c := tier.GoldHighlight
		if i < goldAccentRings {
			c = tier.GoldAccent
		}
		render.StrokeRect(dst, layout.Inset(r, i), 1, c)
	}
	render.StrokeRect(dst, layout.Inset(r, goldInnerInset), goldInnerRingsPx, tier.GoldAccent)
}
