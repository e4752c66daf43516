package anim

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Zentaurios/basex402/internal/tier"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultFrameDelay is the display time of one frame, 20 fps.
const DefaultFrameDelay = 50 * time.Millisecond

// EncodeError reports an animation that could not be written.
type EncodeError struct {
	Tier string
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s animation to %s: %v", e.Tier, e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Driver renders every frame of a tier and encodes the result as a looping
// GIF.
type Driver struct {
	Compositor *Compositor
	Width      int
	Height     int
	Delay      time.Duration
	// Dither enables Floyd-Steinberg error diffusion when quantizing.
	Dither bool
	Logger logger
}

func (d *Driver) delay() time.Duration {
	if d.Delay <= 0 {
		return DefaultFrameDelay
	}
	return d.Delay
}

// RenderAll renders frames 0..T-1 of cfg in order.
func (d *Driver) RenderAll(cfg tier.Config) ([]*image.RGBA, error) {
	total := d.Compositor.Timeline.Total
	if d.Compositor.Timeline.Validate() != nil {
		total = DefaultTimeline().Total
	}
	frames := make([]*image.RGBA, 0, total)
	for i := 0; i < total; i++ {
		img, err := d.Compositor.RenderFrame(cfg, i, d.Width, d.Height)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return frames, nil
}

// Encode writes frames as an infinitely looping GIF quantized to pal.
func (d *Driver) Encode(w io.Writer, frames []*image.RGBA, pal color.Palette) error {
	if len(frames) == 0 {
		return errors.New("no frames to encode")
	}
	centis := int(d.delay() / (10 * time.Millisecond))
	if centis < 1 {
		centis = 1
	}
	g := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		g.Image = append(g.Image, quantize(frame, pal, d.Dither))
		g.Delay = append(g.Delay, centis)
	}
	return gif.EncodeAll(w, g)
}

func quantize(src *image.RGBA, pal color.Palette, dither bool) *image.Paletted {
	b := src.Bounds()
	dst := image.NewPaletted(b, pal)
	if dither {
		draw.FloydSteinberg.Draw(dst, b, src, b.Min)
	} else {
		draw.Draw(dst, b, src, b.Min, draw.Src)
	}
	return dst
}

// WriteTier renders cfg and writes the GIF to path, creating parent
// directories. Render failures are returned as is; write failures as
// *EncodeError.
func (d *Driver) WriteTier(cfg tier.Config, path string) (int, error) {
	frames, err := d.RenderAll(cfg)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, &EncodeError{Tier: cfg.Slug(), Path: path, Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, &EncodeError{Tier: cfg.Slug(), Path: path, Err: err}
	}
	bw := bufio.NewWriter(f)
	err = d.Encode(bw, frames, Palette(cfg))
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, &EncodeError{Tier: cfg.Slug(), Path: path, Err: err}
	}
	return len(frames), nil
}

// Result is the outcome of one tier.
type Result struct {
	Tier   string
	Path   string
	Frames int
	Err    error
}

// Summary collects per-tier results of GenerateAll.
type Summary struct {
	Results []Result
}

// Failed returns the results that carry an error.
func (s Summary) Failed() []Result {
	var out []Result
	for _, r := range s.Results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// OK reports whether every tier was written.
func (s Summary) OK() bool { return len(s.Failed()) == 0 }

// GenerateAll writes <dir>/<slug>.gif for every tier. A failing tier does
// not stop the others.
func (d *Driver) GenerateAll(tiers []tier.Config, dir string) Summary {
	var sum Summary
	for _, cfg := range tiers {
		path := filepath.Join(dir, cfg.Slug()+".gif")
		start := time.Now()
		n, err := d.WriteTier(cfg, path)
		if err != nil {
			if d.Logger != nil {
				d.Logger.Errorf("anim", "%s: %v", cfg.Slug(), err)
			}
		} else if d.Logger != nil {
			d.Logger.Infof("anim", "%s: %d frames -> %s (%s)", cfg.Slug(), n, path, time.Since(start).Round(time.Millisecond))
		}
		sum.Results = append(sum.Results, Result{Tier: cfg.Slug(), Path: path, Frames: n, Err: err})
	}
	return sum
}

const (
	maxPaletteSize = 256
	maxRampSteps   = 32
)

// Palette builds the GIF palette for cfg: every tier color, the gold border
// colors when used, white for additive glow, and RGB ramps between each
// pair so antialiased edges and translucent effects quantize smoothly.
func Palette(cfg tier.Config) color.Palette {
	var base []colorful.Color
	seen := map[color.RGBA]bool{}
	add := func(c color.RGBA) {
		c.A = 0xff
		if seen[c] {
			return
		}
		seen[c] = true
		base = append(base, colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255})
	}
	for _, role := range tier.AnimationRoles {
		if c, ok := cfg.Color(role); ok {
			add(c)
		}
	}
	if cfg.GoldBorder() {
		add(tier.GoldAccent)
		add(tier.GoldHighlight)
	}
	add(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	pal := make(color.Palette, 0, maxPaletteSize)
	for _, c := range base {
		pal = append(pal, toRGBA(c))
	}
	pairs := len(base) * (len(base) - 1) / 2
	if pairs == 0 {
		return pal
	}
	steps := (maxPaletteSize - len(pal)) / pairs
	if steps > maxRampSteps {
		steps = maxRampSteps
	}
	for i := 0; i < len(base); i++ {
		for j := i + 1; j < len(base); j++ {
			for s := 1; s <= steps; s++ {
				c := toRGBA(base[i].BlendRgb(base[j], float64(s)/float64(steps+1)))
				if !seen[c] && len(pal) < maxPaletteSize {
					seen[c] = true
					pal = append(pal, c)
				}
			}
		}
	}
	return pal
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
