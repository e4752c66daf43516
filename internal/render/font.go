package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextFace is the text capability artwork is drawn through. Renderers never
// branch on the concrete font backend; every position is derived from the
// metrics the loaded face reports.
type TextFace interface {
	MeasureText(text string) TextMetrics
	// DrawText draws text with its line box anchored at the top-left (x, y).
	DrawText(dst draw.Image, text string, x, y int, c color.Color)
}

// TextMetrics describes one line of text relative to its top-left anchor.
type TextMetrics struct {
	Width      int // advance width
	Height     int // ascent + descent
	Ascent     int
	Descent    int
	LineHeight int
	// Ink is the tight bounding box of the drawn pixels relative to the
	// anchor. It is empty for empty or blank strings.
	Ink image.Rectangle
}

// FontSource is one candidate in a font resolution chain. Exactly one of
// Path or Data is set.
type FontSource struct {
	Name string
	Path string
	Data []byte
}

func (s FontSource) label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Path
}

// DefaultFontCandidates lists the monospace faces tried in order. The
// embedded Go Mono face keeps output stable on hosts without system fonts.
var DefaultFontCandidates = []FontSource{
	{Path: "/System/Library/Fonts/Monaco.ttc"},
	{Path: "/System/Library/Fonts/Courier.ttc"},
	{Path: "/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf"},
	{Path: "/usr/share/fonts/TTF/DejaVuSansMono.ttf"},
	{Name: "gomono", Data: gomono.TTF},
}

// ResourceError reports a font candidate that could not be used.
type ResourceError struct {
	Resource string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("font %s unavailable: %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

type fontLogger interface {
	Infof(component string, format string, args ...interface{})
	Warnf(component string, format string, args ...interface{})
}

// Fonts is a resolved font from which faces of any pixel size are built.
// Faces are cached per size; a Fonts value must not be shared between
// goroutines.
type Fonts struct {
	name  string
	otf   *opentype.Font
	tt    *truetype.Font
	faces map[float64]TextFace
}

// ResolveFonts walks candidates in order and keeps the first one that
// parses. When none does, the built-in 7x13 bitmap face is used and every
// size maps to it. Failures are logged as warnings, never returned.
func ResolveFonts(candidates []FontSource, logger fontLogger) *Fonts {
	for _, src := range candidates {
		fonts, err := loadFonts(src)
		if err != nil {
			if logger != nil {
				logger.Warnf("font", "%v", err)
			}
			continue
		}
		if logger != nil {
			logger.Infof("font", "using %s", fonts.name)
		}
		return fonts
	}
	if logger != nil {
		logger.Warnf("font", "no font candidate loaded, using basicfont 7x13")
	}
	return BitmapFonts()
}

// BitmapFonts returns the built-in bitmap fallback.
func BitmapFonts() *Fonts {
	return &Fonts{name: "basicfont", faces: map[float64]TextFace{}}
}

func loadFonts(src FontSource) (*Fonts, error) {
	data := src.Data
	if data == nil {
		if src.Path == "" {
			return nil, &ResourceError{Resource: src.label(), Err: errors.New("empty font source")}
		}
		raw, err := os.ReadFile(src.Path)
		if err != nil {
			return nil, &ResourceError{Resource: src.label(), Err: err}
		}
		data = raw
	}
	name := src.label()
	if src.Name == "" {
		name = filepath.Base(src.Path)
	}

	if strings.EqualFold(filepath.Ext(src.Path), ".ttc") {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, &ResourceError{Resource: src.label(), Err: err}
		}
		f, err := coll.Font(0)
		if err != nil {
			return nil, &ResourceError{Resource: src.label(), Err: err}
		}
		return &Fonts{name: name, otf: f, faces: map[float64]TextFace{}}, nil
	}

	f, err := opentype.Parse(data)
	if err == nil {
		return &Fonts{name: name, otf: f, faces: map[float64]TextFace{}}, nil
	}
	// Some older TrueType files only parse with the freetype reader.
	tt, terr := truetype.Parse(data)
	if terr != nil {
		return nil, &ResourceError{Resource: src.label(), Err: errors.Join(err, terr)}
	}
	return &Fonts{name: name, tt: tt, faces: map[float64]TextFace{}}, nil
}

// Name identifies the loaded font.
func (f *Fonts) Name() string { return f.name }

// Bitmap reports whether the bitmap fallback is in use.
func (f *Fonts) Bitmap() bool { return f.otf == nil && f.tt == nil }

// Face returns a face rendering at size pixels.
func (f *Fonts) Face(size float64) TextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	var ff font.Face = basicfont.Face7x13
	switch {
	case f.otf != nil:
		face, err := opentype.NewFace(f.otf, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
		if err == nil {
			ff = face
		}
	case f.tt != nil:
		ff = truetype.NewFace(f.tt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	}
	face := NewTextFace(ff)
	f.faces[size] = face
	return face
}

// NewTextFace adapts any x/image font.Face to TextFace.
func NewTextFace(face font.Face) TextFace { return fontFace{face: face} }

type fontFace struct {
	face font.Face
}

func (f fontFace) MeasureText(text string) TextMetrics {
	metrics := f.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	lineHeight := metrics.Height.Ceil()
	if lineHeight <= 0 {
		lineHeight = ascent + descent
	}
	bounds, advance := font.BoundString(f.face, text)
	ink := image.Rect(
		bounds.Min.X.Floor(), bounds.Min.Y.Floor()+ascent,
		bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()+ascent,
	)
	if ink.Dx() <= 0 || ink.Dy() <= 0 {
		ink = image.Rectangle{}
	}
	return TextMetrics{
		Width:      advance.Ceil(),
		Height:     ascent + descent,
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: lineHeight,
		Ink:        ink,
	}
}

func (f fontFace) DrawText(dst draw.Image, text string, x, y int, c color.Color) {
	if text == "" {
		return
	}
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.P(x, y+f.face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(text)
}

// DrawTextCentered draws text horizontally centered on cx using its ink box.
func DrawTextCentered(dst draw.Image, face TextFace, text string, cx, y int, c color.Color) TextMetrics {
	m := face.MeasureText(text)
	x := cx - m.Ink.Dx()/2 - m.Ink.Min.X
	face.DrawText(dst, text, x, y, c)
	return m
}
