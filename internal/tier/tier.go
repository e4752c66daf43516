package tier

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Role names one colored element of a tier's artwork.
type Role string

const (
	Background Role = "background"
	Glyph      Role = "glyph"   // the large "X"
	Numeral    Role = "numeral" // the "402" label
	Code       Role = "code"
	Trail      Role = "trail"
	Accent     Role = "accent"
	Border     Role = "border"
)

// AnimationRoles are the roles the frame compositor cannot render without.
var AnimationRoles = []Role{Background, Glyph, Numeral, Code, Trail}

// StaticRoles are the roles the static artwork needs.
var StaticRoles = []Role{Background, Glyph, Numeral, Code, Accent, Border}

// Gold border band colors shared by every tier that enables the border.
var (
	GoldAccent    = color.RGBA{R: 0xff, G: 0xd1, B: 0x2f, A: 0xff} // #ffd12f
	GoldHighlight = color.RGBA{R: 0xb6, G: 0xf5, B: 0x69, A: 0xff} // #b6f569
)

// Rarity describes a tier's place in the collection.
type Rarity struct {
	Rank  string
	Score int
}

// Config is one tier's immutable palette and collection metadata.
// The zero value is unusable; build with NewConfig.
type Config struct {
	slug       string
	name       string
	colors     map[Role]color.RGBA
	goldBorder bool
	firstToken int
	lastToken  int
	rarity     Rarity
}

// Spec is the mutable description a Config is built from.
type Spec struct {
	Slug       string
	Name       string
	Colors     map[Role]string // hex, "#rrggbb"
	GoldBorder bool
	FirstToken int
	LastToken  int
	Rarity     Rarity
}

// NewConfig validates spec and freezes it into a Config. Colors that fail
// to parse are reported as a ConfigError; missing roles are only reported
// when a renderer asks for them.
func NewConfig(spec Spec) (Config, error) {
	slug := strings.TrimSpace(spec.Slug)
	if slug == "" {
		return Config{}, &ConfigError{Tier: spec.Name, Reason: "empty slug"}
	}
	colors := make(map[Role]color.RGBA, len(spec.Colors))
	for role, hex := range spec.Colors {
		c, err := ParseHex(hex)
		if err != nil {
			return Config{}, &ConfigError{Tier: slug, Role: role, Reason: "invalid color", Err: err}
		}
		colors[role] = c
	}
	if spec.FirstToken > spec.LastToken {
		return Config{}, &ConfigError{Tier: slug, Reason: fmt.Sprintf("token range %d-%d is inverted", spec.FirstToken, spec.LastToken)}
	}
	name := spec.Name
	if name == "" {
		name = slug
	}
	return Config{
		slug:       slug,
		name:       name,
		colors:     colors,
		goldBorder: spec.GoldBorder,
		firstToken: spec.FirstToken,
		lastToken:  spec.LastToken,
		rarity:     spec.Rarity,
	}, nil
}

// MustConfig is NewConfig for compiled-in tables.
func MustConfig(spec Spec) Config {
	cfg, err := NewConfig(spec)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c Config) Slug() string     { return c.slug }
func (c Config) Name() string     { return c.name }
func (c Config) GoldBorder() bool { return c.goldBorder }
func (c Config) Rarity() Rarity   { return c.rarity }

// TokenRange returns the inclusive token id range of the tier.
func (c Config) TokenRange() (first, last int) {
	return c.firstToken, c.lastToken
}

// TokenCount is the number of token ids assigned to the tier.
func (c Config) TokenCount() int {
	if c.lastToken == 0 {
		return 0
	}
	return c.lastToken - c.firstToken + 1
}

// Color returns the color of role and whether it was configured.
func (c Config) Color(role Role) (color.RGBA, bool) {
	col, ok := c.colors[role]
	return col, ok
}

// Palette resolves every role in roles, failing on the first missing one.
func (c Config) Palette(roles ...Role) (map[Role]color.RGBA, error) {
	out := make(map[Role]color.RGBA, len(roles))
	for _, role := range roles {
		col, ok := c.colors[role]
		if !ok {
			return nil, &ConfigError{Tier: c.slug, Role: role, Reason: "missing color role"}
		}
		out[role] = col
	}
	return out, nil
}

// Colors returns a copy of every configured role.
func (c Config) Colors() map[Role]color.RGBA {
	out := make(map[Role]color.RGBA, len(c.colors))
	for role, col := range c.colors {
		out[role] = col
	}
	return out
}

// withColors returns a copy of c with overrides applied on top.
func (c Config) withColors(overrides map[Role]color.RGBA) Config {
	out := c
	out.colors = c.Colors()
	for role, col := range overrides {
		out.colors[role] = col
	}
	return out
}

// ParseHex parses "#rrggbb" (or "rrggbb") into an opaque RGBA.
func ParseHex(hex string) (color.RGBA, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
