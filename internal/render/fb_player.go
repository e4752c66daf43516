package render

import (
	"context"
	"errors"
	"image"
	"image/color"
	"time"

	"github.com/Zentaurios/basex402/internal/render/layout"
	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
)

// FBPlayer plays frame sequences on the Linux framebuffer.
type FBPlayer struct {
	// Path of the framebuffer device; defaults to /dev/fb0.
	Path   string
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	dev    *fb.Device
	screen *image.RGBA
}

func NewFBPlayer() *FBPlayer { return &FBPlayer{Path: "/dev/fb0"} }

// Open opens the framebuffer device.
func (p *FBPlayer) Open() error {
	path := p.Path
	if path == "" {
		path = "/dev/fb0"
	}
	dev, err := fb.Open(path)
	if err != nil {
		return err
	}
	p.dev = dev
	bounds := dev.Bounds()
	p.screen = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	if p.Logger != nil {
		p.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}
	return nil
}

func (p *FBPlayer) Close() error {
	if p.dev != nil {
		p.dev.Close()
		p.dev = nil
	}
	return nil
}

// Play shows frames in order every delay, repeating loops times (forever
// when loops <= 0) until ctx is done.
func (p *FBPlayer) Play(ctx context.Context, frames []image.Image, delay time.Duration, loops int) error {
	if p.dev == nil {
		return errors.New("framebuffer not open")
	}
	if len(frames) == 0 {
		return nil
	}
	if delay <= 0 {
		delay = 50 * time.Millisecond
	}
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	shown := 0
	for {
		p.blit(frames[shown%len(frames)])
		shown++
		if loops > 0 && shown >= loops*len(frames) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// blit letterboxes frame onto the device with nearest-neighbor scaling.
func (p *FBPlayer) blit(frame image.Image) {
	src := frame.Bounds()
	dst := layout.Fit(p.screen.Bounds(), src.Dx(), src.Dy())
	xdraw.NearestNeighbor.Scale(p.screen, dst, frame, src, xdraw.Src, nil)

	bounds := p.dev.Bounds()
	for y := 0; y < p.screen.Bounds().Dy(); y++ {
		for x := 0; x < p.screen.Bounds().Dx(); x++ {
			pixel := p.screen.RGBAAt(x, y)
			p.dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
