package tier

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

func TestDefault_HasFourTiers(t *testing.T) {
	reg := Default()
	want := []string{"protocol-user", "early-adopter", "pioneer", "genesis"}
	got := reg.Slugs()
	if len(got) != len(want) {
		t.Fatalf("Slugs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slugs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if reg.Supply() != MaxTokenID {
		t.Errorf("Supply() = %d, want %d", reg.Supply(), MaxTokenID)
	}
}

func TestDefault_AnimationRolesPresent(t *testing.T) {
	for _, cfg := range Default().All() {
		if _, err := cfg.Palette(AnimationRoles...); err != nil {
			t.Errorf("%s: %v", cfg.Slug(), err)
		}
		if _, err := cfg.Palette(StaticRoles...); err != nil {
			t.Errorf("%s: %v", cfg.Slug(), err)
		}
	}
}

func TestRegistry_ForToken(t *testing.T) {
	tests := []struct {
		token   int
		want    string
		wantErr bool
	}{
		{token: 1, want: "genesis"},
		{token: 10, want: "genesis"},
		{token: 11, want: "pioneer"},
		{token: 100, want: "pioneer"},
		{token: 101, want: "early-adopter"},
		{token: 225, want: "early-adopter"},
		{token: 226, want: "protocol-user"},
		{token: 402, want: "protocol-user"},
		{token: 0, wantErr: true},
		{token: 403, wantErr: true},
	}
	reg := Default()
	for _, tt := range tests {
		cfg, err := reg.ForToken(tt.token)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ForToken(%d) = %s, want error", tt.token, cfg.Slug())
			}
			continue
		}
		if err != nil {
			t.Errorf("ForToken(%d) error: %v", tt.token, err)
			continue
		}
		if cfg.Slug() != tt.want {
			t.Errorf("ForToken(%d) = %s, want %s", tt.token, cfg.Slug(), tt.want)
		}
	}
}

func TestConfig_PaletteMissingRole(t *testing.T) {
	cfg := MustConfig(Spec{Slug: "bare", Colors: map[Role]string{Background: "#000000"}})
	_, err := cfg.Palette(AnimationRoles...)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("Palette() error = %v, want *ConfigError", err)
	}
	if cerr.Role != Glyph {
		t.Errorf("missing role = %q, want %q", cerr.Role, Glyph)
	}
}

func TestConfig_ColorsIsCopy(t *testing.T) {
	cfg, _ := Default().Get("pioneer")
	colors := cfg.Colors()
	colors[Background] = color.RGBA{1, 2, 3, 255}
	bg, _ := cfg.Color(Background)
	if bg == (color.RGBA{1, 2, 3, 255}) {
		t.Fatal("mutating Colors() result changed the config")
	}
}

func TestNewConfig_InvalidHex(t *testing.T) {
	_, err := NewConfig(Spec{Slug: "x", Colors: map[Role]string{Code: "#zzzzzz"}})
	var cerr *ConfigError
	if !errors.As(err, &cerr) || cerr.Role != Code {
		t.Fatalf("NewConfig() error = %v, want ConfigError on code", err)
	}
}

func TestNewRegistry_Overlap(t *testing.T) {
	a := MustConfig(Spec{Slug: "a", FirstToken: 1, LastToken: 10})
	b := MustConfig(Spec{Slug: "b", FirstToken: 10, LastToken: 20})
	if _, err := NewRegistry(a, b); err == nil {
		t.Fatal("expected overlap error")
	}
	if _, err := NewRegistry(a, a); err == nil {
		t.Fatal("expected duplicate slug error")
	}
}

func TestLoadOverrides(t *testing.T) {
	src := `
tiers:
  pioneer:
    name: Trailblazer
    gold_border: true
    colors:
      trail: "#ff0000"
`
	reg, err := LoadOverrides(Default(), strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	cfg, _ := reg.Get("pioneer")
	if cfg.Name() != "Trailblazer" || !cfg.GoldBorder() {
		t.Errorf("override not applied: name=%q gold=%v", cfg.Name(), cfg.GoldBorder())
	}
	if c, _ := cfg.Color(Trail); c != (color.RGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("trail = %v", c)
	}
	if c, _ := cfg.Color(Background); Hex(c) != "#0000ff" {
		t.Errorf("background changed to %s", Hex(c))
	}

	orig, _ := Default().Get("pioneer")
	if c, _ := orig.Color(Trail); Hex(c) != "#ffffff" {
		t.Errorf("default registry mutated: trail = %s", Hex(c))
	}
}

func TestLoadOverrides_UnknownTier(t *testing.T) {
	_, err := LoadOverrides(Default(), strings.NewReader("tiers:\n  mythic:\n    colors: {}\n"))
	if err == nil {
		t.Fatal("expected error for unknown tier")
	}
}
