package render

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

type recordingLogger struct {
	infos, warns []string
}

func (l *recordingLogger) Infof(component, format string, args ...interface{}) {
	l.infos = append(l.infos, component)
}

func (l *recordingLogger) Warnf(component, format string, args ...interface{}) {
	l.warns = append(l.warns, component)
}

func TestResolveFonts_FallsBackToBitmap(t *testing.T) {
	log := &recordingLogger{}
	fonts := ResolveFonts([]FontSource{{Path: "/nonexistent/a.ttf"}, {Path: "/nonexistent/b.ttc"}}, log)
	if !fonts.Bitmap() {
		t.Fatalf("expected bitmap fallback, got %s", fonts.Name())
	}
	// one warning per failed candidate plus the fallback notice
	if len(log.warns) != 3 {
		t.Errorf("warnings = %d, want 3", len(log.warns))
	}
	m := fonts.Face(200).MeasureText("X")
	if m.Width != 7 || m.Height != 13 {
		t.Errorf("bitmap metrics = %+v", m)
	}
}

func TestResolveFonts_FirstLoadableWins(t *testing.T) {
	fonts := ResolveFonts([]FontSource{
		{Path: "/nonexistent/a.ttf"},
		{Name: "gomono", Data: gomono.TTF},
		{Name: "broken", Data: []byte("not a font")},
	}, nil)
	if fonts.Bitmap() || fonts.Name() != "gomono" {
		t.Fatalf("resolved %q", fonts.Name())
	}
}

func TestLoadFonts_ResourceError(t *testing.T) {
	_, err := loadFonts(FontSource{Path: "/nonexistent/font.ttf"})
	var rerr *ResourceError
	if !errors.As(err, &rerr) {
		t.Fatalf("error = %v, want *ResourceError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error does not wrap ErrNotExist: %v", err)
	}
}

func TestFace_MetricsScaleWithSize(t *testing.T) {
	fonts := ResolveFonts([]FontSource{{Name: "gomono", Data: gomono.TTF}}, nil)
	small := fonts.Face(24).MeasureText("402")
	large := fonts.Face(100).MeasureText("402")
	if large.Width <= small.Width || large.Ink.Dy() <= small.Ink.Dy() {
		t.Errorf("small=%+v large=%+v", small, large)
	}
	if small.Ink.Empty() {
		t.Error("ink box empty")
	}
	if fonts.Face(24) != fonts.Face(24) {
		t.Error("faces are not cached")
	}
	if m := fonts.Face(24).MeasureText(""); !m.Ink.Empty() || m.Width != 0 {
		t.Errorf("empty string metrics = %+v", m)
	}
}

func TestDrawText_InkWithinMeasuredBox(t *testing.T) {
	fonts := ResolveFonts([]FontSource{{Name: "gomono", Data: gomono.TTF}}, nil)
	face := fonts.Face(40)
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	face.DrawText(img, "X", 50, 20, color.White)

	m := face.MeasureText("X")
	ink := m.Ink.Add(image.Pt(50, 20))
	drawn := image.Rectangle{}
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y).A != 0 {
				drawn = drawn.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	if drawn.Empty() {
		t.Fatal("nothing drawn")
	}
	if !drawn.In(ink.Inset(-1)) {
		t.Errorf("drawn %v outside measured ink %v", drawn, ink)
	}
}

func TestLayer_CompositeOver(t *testing.T) {
	c := NewCanvas(4, 4, color.RGBA{0, 0, 0xff, 0xff})
	l := NewLayer(c.Bounds())
	l.Image().Set(1, 1, color.RGBA{0xff, 0, 0, 0xff})
	l.Composite(c, AlphaOver)

	if got := c.Image().RGBAAt(1, 1); got != (color.RGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("over pixel = %v", got)
	}
	if got := c.Image().RGBAAt(0, 0); got != (color.RGBA{0, 0, 0xff, 0xff}) {
		t.Errorf("untouched pixel = %v", got)
	}
	if l.Image() != nil {
		t.Error("layer still holds its buffer after Composite")
	}
	// A second composite is a no-op.
	l.Composite(c, AlphaOver)
}

func TestLayer_CompositeAdditiveSaturates(t *testing.T) {
	c := NewCanvas(2, 1, color.RGBA{0xc0, 0x10, 0x00, 0xff})
	l := NewLayer(c.Bounds())
	l.Image().SetRGBA(0, 0, color.RGBA{0x80, 0x20, 0x00, 0x80})
	l.Composite(c, Additive)

	if got := c.Image().RGBAAt(0, 0); got != (color.RGBA{0xff, 0x30, 0x00, 0xff}) {
		t.Errorf("additive pixel = %v", got)
	}
	if got := c.Image().RGBAAt(1, 0); got != (color.RGBA{0xc0, 0x10, 0x00, 0xff}) {
		t.Errorf("transparent layer pixel changed canvas: %v", got)
	}
}

func TestStrokeRect(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	red := color.RGBA{0xff, 0, 0, 0xff}
	StrokeRect(img, img.Bounds(), 2, red)

	tests := []struct {
		p    image.Point
		want bool
	}{
		{image.Pt(0, 0), true},
		{image.Pt(9, 9), true},
		{image.Pt(1, 5), true},
		{image.Pt(8, 5), true},
		{image.Pt(2, 2), false},
		{image.Pt(5, 5), false},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.p.X, tt.p.Y) == red; got != tt.want {
			t.Errorf("pixel %v stroked = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestVerticalGradient(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 11))
	VerticalGradient(img, img.Bounds(), color.RGBA{0, 0, 0, 0xff}, color.RGBA{200, 100, 0, 0xff}, nil)
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("top = %v", got)
	}
	if got := img.RGBAAt(0, 10); got != (color.RGBA{200, 100, 0, 0xff}) {
		t.Errorf("bottom = %v", got)
	}
	if got := img.RGBAAt(0, 5); got != (color.RGBA{100, 50, 0, 0xff}) {
		t.Errorf("middle = %v", got)
	}
}

func TestQRCodeImage(t *testing.T) {
	img, err := QRCodeImage("", 100, color.Black, color.White)
	if err != nil || img != nil {
		t.Fatalf("empty payload = %v, %v", img, err)
	}
	img, err = QRCodeImage("https://x402.example/mint", 120, color.Black, color.White)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 120 {
		t.Errorf("size = %v", img.Bounds())
	}
}
