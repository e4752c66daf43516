package tier

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// overrideFile is the on-disk shape of a palette override file:
//
//	tiers:
//	  genesis:
//	    gold_border: true
//	    colors:
//	      trail: "#ffd12f"
type overrideFile struct {
	Tiers map[string]tierOverride `yaml:"tiers"`
}

type tierOverride struct {
	Name       string            `yaml:"name"`
	GoldBorder *bool             `yaml:"gold_border"`
	Colors     map[string]string `yaml:"colors"`
}

// LoadOverrides decodes a YAML override file and applies it on top of base.
// Only tiers already present in base can be overridden.
func LoadOverrides(base *Registry, r io.Reader) (*Registry, error) {
	var file overrideFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode tier overrides: %w", err)
	}

	tiers := base.All()
	for slug, o := range file.Tiers {
		i, ok := base.bySlug[slug]
		if !ok {
			return nil, &ConfigError{Tier: slug, Reason: "unknown tier in overrides"}
		}
		colors := make(map[Role]color.RGBA, len(o.Colors))
		for role, hex := range o.Colors {
			c, err := ParseHex(hex)
			if err != nil {
				return nil, &ConfigError{Tier: slug, Role: Role(role), Reason: "invalid color", Err: err}
			}
			colors[Role(role)] = c
		}
		cfg := tiers[i].withColors(colors)
		if o.Name != "" {
			cfg.name = o.Name
		}
		if o.GoldBorder != nil {
			cfg.goldBorder = *o.GoldBorder
		}
		tiers[i] = cfg
	}
	return NewRegistry(tiers...)
}

// LoadOverridesFile is LoadOverrides on a file path. An empty path returns base.
func LoadOverridesFile(base *Registry, path string) (*Registry, error) {
	if path == "" {
		return base, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadOverrides(base, f)
}
