package anim

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/Zentaurios/basex402/internal/render"
	"github.com/Zentaurios/basex402/internal/tier"
	"golang.org/x/image/font/gofont/gomono"
)

func testCompositor(t *testing.T) *Compositor {
	t.Helper()
	fonts := render.ResolveFonts([]render.FontSource{{Name: "gomono", Data: gomono.TTF}}, nil)
	if fonts.Bitmap() {
		t.Fatal("embedded gomono failed to load")
	}
	return NewCompositor(fonts)
}

func mustTier(t *testing.T, slug string) tier.Config {
	t.Helper()
	cfg, ok := tier.Default().Get(slug)
	if !ok {
		t.Fatalf("tier %q missing", slug)
	}
	return cfg
}

func render512(t *testing.T, c *Compositor, cfg tier.Config, frame int) *image.RGBA {
	t.Helper()
	img, err := c.RenderFrame(cfg, frame, 512, 512)
	if err != nil {
		t.Fatalf("RenderFrame(%s, %d): %v", cfg.Slug(), frame, err)
	}
	return img
}

func TestRenderFrame_Deterministic(t *testing.T) {
	c := testCompositor(t)
	cfg := mustTier(t, "early-adopter")
	for _, frame := range []int{12, 40, 55, 92} {
		a := render512(t, c, cfg, frame)
		b := render512(t, c, cfg, frame)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("frame %d differs between calls", frame)
		}
	}
}

func TestRenderFrame_WrapsModuloTotal(t *testing.T) {
	c := testCompositor(t)
	cfg := mustTier(t, "pioneer")
	zero := render512(t, c, cfg, 0)
	for _, k := range []int{1, 3} {
		got := render512(t, c, cfg, k*c.Timeline.Total)
		if !bytes.Equal(zero.Pix, got.Pix) {
			t.Errorf("frame %d differs from frame 0", k*c.Timeline.Total)
		}
	}
	if !bytes.Equal(render512(t, c, cfg, 37).Pix, render512(t, c, cfg, 137).Pix) {
		t.Error("frame 137 differs from frame 37")
	}
}

func TestRenderFrame_Opaque(t *testing.T) {
	c := testCompositor(t)
	cfg := mustTier(t, "genesis")
	for _, frame := range []int{40, 95} {
		img := render512(t, c, cfg, frame)
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] != 0xff {
				t.Fatalf("frame %d has translucent pixel at offset %d", frame, i)
			}
		}
	}
}

func TestRenderFrame_ProtocolUserFirstFrameIsBlank(t *testing.T) {
	c := testCompositor(t)
	cfg := mustTier(t, "protocol-user")
	bg, _ := cfg.Color(tier.Background)
	img := render512(t, c, cfg, 0)

	for _, p := range []image.Point{{0, 0}, {511, 0}, {0, 511}, {511, 511}} {
		if got := img.RGBAAt(p.X, p.Y); got != bg {
			t.Errorf("corner %v = %v, want %v", p, got, bg)
		}
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				t.Fatalf("pixel (%d,%d) = %v, want background; text revealed on frame 0", x, y, img.RGBAAt(x, y))
			}
		}
	}
}

func TestRenderFrame_GenesisGoldBorder(t *testing.T) {
	c := testCompositor(t)
	cfg := mustTier(t, "genesis")
	img := render512(t, c, cfg, 0)

	tests := []struct {
		name string
		at   image.Point
		want color.RGBA
	}{
		{"outer top-left", image.Pt(0, 0), tier.GoldAccent},
		{"outer band left edge", image.Pt(7, 256), tier.GoldAccent},
		{"inner band top edge", image.Pt(256, 8), tier.GoldHighlight},
		{"inner band right edge", image.Pt(511-14, 300), tier.GoldHighlight},
		{"inner accent bottom", image.Pt(256, 511-25), tier.GoldAccent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.at.X, tt.at.Y); got != tt.want {
				t.Errorf("pixel %v = %v, want %v", tt.at, got, tt.want)
			}
		})
	}

	bg, _ := cfg.Color(tier.Background)
	if got := img.RGBAAt(20, 256); got != bg {
		t.Errorf("gap between bands = %v, want background %v", got, bg)
	}
}

func TestRenderFrame_GoldBorderSmallCanvas(t *testing.T) {
	c := testCompositor(t)
	cfg := mustTier(t, "genesis")
	img, err := c.RenderFrame(cfg, 0, 40, 40)
	if err != nil {
		t.Fatal(err)
	}
	bg, _ := cfg.Color(tier.Background)

	tests := []struct {
		name string
		at   image.Point
		want color.RGBA
	}{
		{"outer band", image.Pt(0, 0), tier.GoldAccent},
		{"inner band", image.Pt(10, 20), tier.GoldHighlight},
		{"innermost ring", image.Pt(14, 20), tier.GoldHighlight},
		// The inset-25 accent does not fit on a 40px canvas.
		{"inside the rings", image.Pt(16, 20), bg},
		{"center", image.Pt(20, 20), bg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.at.X, tt.at.Y); got != tt.want {
				t.Errorf("pixel %v = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestRenderFrame_NoBorderWithoutFlag(t *testing.T) {
	c := testCompositor(t)
	cfg := mustTier(t, "pioneer")
	bg, _ := cfg.Color(tier.Background)
	img := render512(t, c, cfg, 0)
	if got := img.RGBAAt(0, 0); got != bg {
		t.Errorf("corner = %v, want background", got)
	}
}

func TestRenderFrame_PhaseContinuity(t *testing.T) {
	c := testCompositor(t)
	cfg := mustTier(t, "early-adopter")
	tl := c.Timeline

	// The last fade frame is fully opaque and matches the settled logo.
	if !bytes.Equal(render512(t, c, cfg, tl.FadeEnd-1).Pix, render512(t, c, cfg, tl.FadeEnd).Pix) {
		t.Error("last fade frame differs from first settle frame")
	}
	// Settle and hold draw the same static composition.
	if !bytes.Equal(render512(t, c, cfg, tl.FadeEnd).Pix, render512(t, c, cfg, tl.HoldEnd-1).Pix) {
		t.Error("hold frame differs from settle frame")
	}
	// The logo is moving by the end of the shoot window.
	if bytes.Equal(render512(t, c, cfg, tl.HoldEnd-1).Pix, render512(t, c, cfg, tl.Total-1).Pix) {
		t.Error("last shoot frame identical to hold frame")
	}
}

func TestRenderFrame_TypingRevealsText(t *testing.T) {
	c := testCompositor(t)
	cfg := mustTier(t, "protocol-user")
	bg, _ := cfg.Color(tier.Background)
	img := render512(t, c, cfg, c.Timeline.TypingEnd-1)

	// The request block sits in the upper-left quadrant.
	found := false
	for y := 40; y < 180 && !found; y++ {
		for x := 20; x < 300; x++ {
			if img.RGBAAt(x, y) != bg {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no request text drawn on the last typing frame")
	}
}

func TestRenderFrame_MissingRole(t *testing.T) {
	c := testCompositor(t)
	cfg := tier.MustConfig(tier.Spec{
		Slug:   "partial",
		Colors: map[tier.Role]string{tier.Background: "#000000", tier.Glyph: "#ffffff", tier.Numeral: "#ffffff", tier.Code: "#ffffff"},
	})
	_, err := c.RenderFrame(cfg, 0, 64, 64)
	var cerr *tier.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("RenderFrame() error = %v, want *tier.ConfigError", err)
	}
	if cerr.Role != tier.Trail {
		t.Errorf("missing role = %q, want %q", cerr.Role, tier.Trail)
	}
}

func TestRenderFrame_DefaultSize(t *testing.T) {
	c := testCompositor(t)
	img, err := c.RenderFrame(mustTier(t, "pioneer"), 5, 0, -1)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 512 || img.Bounds().Dy() != 512 {
		t.Errorf("size = %v, want 512x512", img.Bounds())
	}
}

func TestRenderFrame_BitmapFallback(t *testing.T) {
	c := NewCompositor(render.BitmapFonts())
	cfg := mustTier(t, "genesis")
	for _, frame := range []int{0, 29, 45, 60, 80, 99} {
		if _, err := c.RenderFrame(cfg, frame, 256, 256); err != nil {
			t.Fatalf("frame %d: %v", frame, err)
		}
	}
}

func TestPlaceLogo_StacksNumeralBelowGlyph(t *testing.T) {
	fonts := render.ResolveFonts([]render.FontSource{{Name: "gomono", Data: gomono.TTF}}, nil)
	bounds := image.Rect(0, 0, 512, 512)
	l := PlaceLogo(fonts.Face(200), fonts.Face(100), bounds, 50, 20)

	if l.NumeralInk.Min.Y != l.GlyphInk.Max.Y+20 {
		t.Errorf("numeral top = %d, want %d", l.NumeralInk.Min.Y, l.GlyphInk.Max.Y+20)
	}
	gc := (l.GlyphInk.Min.X + l.GlyphInk.Max.X) / 2
	nc := (l.NumeralInk.Min.X + l.NumeralInk.Max.X) / 2
	if d := gc - 256; d < -1 || d > 1 {
		t.Errorf("glyph center x = %d", gc)
	}
	if d := nc - 256; d < -1 || d > 1 {
		t.Errorf("numeral center x = %d", nc)
	}
	if !l.Bounds().In(bounds) {
		t.Errorf("logo %v outside canvas", l.Bounds())
	}
}
