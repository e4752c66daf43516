// Package art draws the static collection artwork: tier images, logos,
// favicons, social cards and banners.
package art

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/Zentaurios/basex402/internal/render"
)

// Artist draws artwork with one resolved font.
type Artist struct {
	Fonts *render.Fonts
}

func New(fonts *render.Fonts) *Artist {
	if fonts == nil {
		fonts = render.BitmapFonts()
	}
	return &Artist{Fonts: fonts}
}

// face returns the font at size pixels, never below 1.
func (a *Artist) face(size float64) render.TextFace {
	return a.Fonts.Face(math.Max(1, math.Round(size)))
}

// fitFace returns the largest face no bigger than size whose rendering of
// text fits in maxWidth pixels.
func (a *Artist) fitFace(text string, size float64, maxWidth int) render.TextFace {
	for s := math.Round(size); s > 6; s-- {
		f := a.face(s)
		if f.MeasureText(text).Width <= maxWidth {
			return f
		}
	}
	return a.face(6)
}

// strokedText draws text with an outline of the given offsets behind it.
func strokedText(dst draw.Image, face render.TextFace, text string, x, y, width int, fill, outline color.Color) {
	if width <= 0 {
		face.DrawText(dst, text, x, y, fill)
		return
	}
	for dx := -width; dx <= width; dx += width {
		for dy := -width; dy <= width; dy += width {
			if dx == 0 && dy == 0 {
				continue
			}
			face.DrawText(dst, text, x+dx, y+dy, outline)
		}
	}
	face.DrawText(dst, text, x, y, fill)
}

// EncodeError reports an artifact that could not be written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// WritePNG encodes img to path, creating parent directories.
func WritePNG(path string, img image.Image) error {
	return writeFile(path, func(w *bufio.Writer) error { return png.Encode(w, img) })
}

func writeFile(path string, encode func(*bufio.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	bw := bufio.NewWriter(f)
	err = encode(bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}
