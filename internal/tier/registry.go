package tier

import (
	"fmt"
	"sort"
)

// MaxTokenID is the last mintable token of the collection.
const MaxTokenID = 402

// Registry is an ordered, immutable set of tiers keyed by slug.
type Registry struct {
	tiers  []Config
	bySlug map[string]int
}

// NewRegistry builds a registry. Slugs must be unique and token ranges must
// not overlap.
func NewRegistry(tiers ...Config) (*Registry, error) {
	reg := &Registry{tiers: make([]Config, 0, len(tiers)), bySlug: make(map[string]int, len(tiers))}
	for _, cfg := range tiers {
		if cfg.slug == "" {
			return nil, &ConfigError{Reason: "tier without slug"}
		}
		if _, dup := reg.bySlug[cfg.slug]; dup {
			return nil, &ConfigError{Tier: cfg.slug, Reason: "duplicate slug"}
		}
		for _, other := range reg.tiers {
			if cfg.TokenCount() > 0 && other.TokenCount() > 0 &&
				cfg.firstToken <= other.lastToken && other.firstToken <= cfg.lastToken {
				return nil, &ConfigError{Tier: cfg.slug, Reason: "token range overlaps " + other.slug}
			}
		}
		reg.bySlug[cfg.slug] = len(reg.tiers)
		reg.tiers = append(reg.tiers, cfg)
	}
	return reg, nil
}

// Get looks a tier up by slug.
func (r *Registry) Get(slug string) (Config, bool) {
	i, ok := r.bySlug[slug]
	if !ok {
		return Config{}, false
	}
	return r.tiers[i], true
}

// All returns the tiers in registration order.
func (r *Registry) All() []Config {
	out := make([]Config, len(r.tiers))
	copy(out, r.tiers)
	return out
}

func (r *Registry) Len() int { return len(r.tiers) }

// Slugs returns the slugs in registration order.
func (r *Registry) Slugs() []string {
	out := make([]string, len(r.tiers))
	for i, cfg := range r.tiers {
		out[i] = cfg.slug
	}
	return out
}

// ByRarity returns the tiers ordered from the most common to the rarest.
func (r *Registry) ByRarity() []Config {
	out := r.All()
	sort.SliceStable(out, func(i, j int) bool { return out[i].rarity.Score < out[j].rarity.Score })
	return out
}

// ForToken resolves the tier a token id belongs to.
func (r *Registry) ForToken(tokenID int) (Config, error) {
	if tokenID < 1 || tokenID > MaxTokenID {
		return Config{}, fmt.Errorf("token id %d out of range 1-%d", tokenID, MaxTokenID)
	}
	for _, cfg := range r.tiers {
		if cfg.TokenCount() > 0 && tokenID >= cfg.firstToken && tokenID <= cfg.lastToken {
			return cfg, nil
		}
	}
	return Config{}, fmt.Errorf("token id %d is not assigned to a tier", tokenID)
}

// Supply is the total number of tokens covered by the registry.
func (r *Registry) Supply() int {
	total := 0
	for _, cfg := range r.tiers {
		total += cfg.TokenCount()
	}
	return total
}

var defaultRegistry = mustRegistry(
	MustConfig(Spec{
		Slug: "protocol-user",
		Name: "Protocol User",
		Colors: map[Role]string{
			Background: "#ffffff",
			Glyph:      "#0a0b0d",
			Numeral:    "#0000ff",
			Code:       "#5b616e",
			Trail:      "#b1b7c3",
			Accent:     "#0000ff",
			Border:     "#0000ff",
		},
		FirstToken: 226,
		LastToken:  402,
		Rarity:     Rarity{Rank: "Common", Score: 25},
	}),
	MustConfig(Spec{
		Slug: "early-adopter",
		Name: "Early Adopter",
		Colors: map[Role]string{
			Background: "#0a0b0d",
			Glyph:      "#0000ff",
			Numeral:    "#ffffff",
			Code:       "#0000ff",
			Trail:      "#3c8aff",
			Accent:     "#3c8aff",
			Border:     "#0000ff",
		},
		FirstToken: 101,
		LastToken:  225,
		Rarity:     Rarity{Rank: "Rare", Score: 50},
	}),
	MustConfig(Spec{
		Slug: "pioneer",
		Name: "Pioneer",
		Colors: map[Role]string{
			Background: "#0000ff",
			Glyph:      "#0a0b0d",
			Numeral:    "#ffffff",
			Code:       "#ffffff",
			Trail:      "#ffffff",
			Accent:     "#ffffff",
			Border:     "#ffffff",
		},
		FirstToken: 11,
		LastToken:  100,
		Rarity:     Rarity{Rank: "Epic", Score: 75},
	}),
	MustConfig(Spec{
		Slug: "genesis",
		Name: "Genesis",
		Colors: map[Role]string{
			Background: "#0000ff",
			Glyph:      "#0a0b0d",
			Numeral:    "#ffffff",
			Code:       "#ffd12f",
			Trail:      "#ffd12f",
			Accent:     "#ffd12f",
			Border:     "#ffd12f",
		},
		GoldBorder: true,
		FirstToken: 1,
		LastToken:  10,
		Rarity:     Rarity{Rank: "Legendary", Score: 100},
	}),
)

// Default returns the built-in collection tiers.
func Default() *Registry { return defaultRegistry }

func mustRegistry(tiers ...Config) *Registry {
	reg, err := NewRegistry(tiers...)
	if err != nil {
		panic(err)
	}
	return reg
}
