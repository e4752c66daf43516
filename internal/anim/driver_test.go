package anim

import (
	"bytes"
	"errors"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/Zentaurios/basex402/internal/render"
	"github.com/Zentaurios/basex402/internal/tier"
)

func smallDriver() *Driver {
	return &Driver{Compositor: NewCompositor(render.BitmapFonts()), Width: 64, Height: 64}
}

func TestDriver_EncodeFrameCountAndDelay(t *testing.T) {
	d := smallDriver()
	cfg, _ := tier.Default().Get("genesis")
	frames, err := d.RenderAll(cfg)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := d.Encode(&buf, frames, Palette(cfg)); err != nil {
		t.Fatal(err)
	}

	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(g.Image) != DefaultTimeline().Total {
		t.Errorf("frames = %d, want %d", len(g.Image), DefaultTimeline().Total)
	}
	for i, delay := range g.Delay {
		if delay != 5 {
			t.Fatalf("delay[%d] = %d, want 5", i, delay)
		}
	}
	if g.LoopCount != 0 {
		t.Errorf("LoopCount = %d, want 0 (forever)", g.LoopCount)
	}
}

func TestDriver_BackgroundSurvivesQuantization(t *testing.T) {
	d := smallDriver()
	cfg, _ := tier.Default().Get("early-adopter")
	frames, err := d.RenderAll(cfg)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := d.Encode(&buf, frames[:1], Palette(cfg)); err != nil {
		t.Fatal(err)
	}
	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	bg, _ := cfg.Color(tier.Background)
	r, gr, b, _ := g.Image[0].At(32, 32).RGBA()
	if uint8(r>>8) != bg.R || uint8(gr>>8) != bg.G || uint8(b>>8) != bg.B {
		t.Errorf("center pixel = %v, want %v", g.Image[0].At(32, 32), bg)
	}
}

func TestDriver_GenerateAllIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	// A directory where pioneer.gif should go makes that write fail.
	if err := os.MkdirAll(filepath.Join(dir, "pioneer.gif"), 0o755); err != nil {
		t.Fatal(err)
	}
	reg := tier.Default()
	pioneer, _ := reg.Get("pioneer")
	genesis, _ := reg.Get("genesis")

	sum := smallDriver().GenerateAll([]tier.Config{pioneer, genesis}, dir)
	if len(sum.Results) != 2 {
		t.Fatalf("results = %d", len(sum.Results))
	}
	if sum.OK() {
		t.Fatal("summary reports success")
	}
	failed := sum.Failed()
	if len(failed) != 1 || failed[0].Tier != "pioneer" {
		t.Fatalf("failed = %+v", failed)
	}
	var eerr *EncodeError
	if !errors.As(failed[0].Err, &eerr) {
		t.Errorf("error = %v, want *EncodeError", failed[0].Err)
	}

	ok := sum.Results[1]
	if ok.Err != nil || ok.Frames != DefaultTimeline().Total {
		t.Fatalf("genesis result = %+v", ok)
	}
	f, err := os.Open(ok.Path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != DefaultTimeline().Total {
		t.Errorf("genesis.gif frames = %d", len(g.Image))
	}
}

func TestDriver_ConfigErrorIsNotEncodeError(t *testing.T) {
	cfg := tier.MustConfig(tier.Spec{Slug: "broken", Colors: map[tier.Role]string{tier.Background: "#000000"}})
	sum := smallDriver().GenerateAll([]tier.Config{cfg}, t.TempDir())
	err := sum.Results[0].Err
	var cerr *tier.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v, want *tier.ConfigError", err)
	}
}

func TestPalette(t *testing.T) {
	for _, cfg := range tier.Default().All() {
		t.Run(cfg.Slug(), func(t *testing.T) {
			pal := Palette(cfg)
			if len(pal) == 0 || len(pal) > 256 {
				t.Fatalf("palette size = %d", len(pal))
			}
			for _, role := range tier.AnimationRoles {
				c, _ := cfg.Color(role)
				if !containsColor(pal, c) {
					t.Errorf("palette lacks %s %v", role, c)
				}
			}
			if cfg.GoldBorder() && !containsColor(pal, tier.GoldHighlight) {
				t.Error("palette lacks gold highlight")
			}
		})
	}
}

func containsColor(pal color.Palette, want color.RGBA) bool {
	for _, c := range pal {
		if c == color.Color(want) {
			return true
		}
	}
	return false
}
