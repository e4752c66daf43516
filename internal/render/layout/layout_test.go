package layout

import (
	"image"
	"testing"
)

func TestInset(t *testing.T) {
	tests := []struct {
		name    string
		rect    image.Rectangle
		padding int
		want    image.Rectangle
	}{
		{"regular", image.Rect(0, 0, 512, 512), 15, image.Rect(15, 15, 497, 497)},
		{"zero padding", image.Rect(0, 0, 512, 512), 0, image.Rect(0, 0, 512, 512)},
		{"negative padding", image.Rect(0, 0, 512, 512), -3, image.Rect(0, 0, 512, 512)},
		{"over-inset collapses", image.Rect(0, 0, 10, 10), 20, image.Rect(5, 5, 5, 5)},
		{"exact collapse", image.Rect(0, 0, 10, 10), 5, image.Rect(5, 5, 5, 5)},
		{"one axis consumed", image.Rect(0, 0, 100, 40), 25, image.Rect(50, 20, 50, 20)},
		{"offset origin", image.Rect(10, 20, 50, 40), 4, image.Rect(14, 24, 46, 36)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Inset(tt.rect, tt.padding)
			if got != tt.want {
				t.Errorf("Inset(%v, %d) = %v, want %v", tt.rect, tt.padding, got, tt.want)
			}
			if !got.In(tt.rect) && !got.Empty() {
				t.Errorf("Inset(%v, %d) = %v grows past the input", tt.rect, tt.padding, got)
			}
		})
	}
}

func TestCenter(t *testing.T) {
	got := Center(image.Rect(0, 0, 100, 50), 20, 10)
	if got != image.Rect(40, 20, 60, 30) {
		t.Errorf("Center() = %v", got)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		srcW, srcH int
		want       image.Rectangle
	}{
		{"wide target", image.Rect(0, 0, 800, 480), 512, 512, image.Rect(160, 0, 640, 480)},
		{"tall target", image.Rect(0, 0, 200, 400), 100, 100, image.Rect(0, 100, 200, 300)},
		{"invalid source", image.Rect(0, 0, 10, 10), 0, 5, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fit(tt.rect, tt.srcW, tt.srcH); got != tt.want {
				t.Errorf("Fit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRow(t *testing.T) {
	cells := Row(image.Rect(0, 0, 1000, 100), 4, 200, 120, 30, 10)
	if len(cells) != 4 {
		t.Fatalf("len = %d", len(cells))
	}
	// total = 4*200 + 3*30 = 890, left margin 55
	if cells[0].Min.X != 55 || cells[3].Max.X != 945 {
		t.Errorf("row spans %d..%d", cells[0].Min.X, cells[3].Max.X)
	}
	if cells[1].Min.X-cells[0].Max.X != 30 {
		t.Errorf("gap = %d", cells[1].Min.X-cells[0].Max.X)
	}
}

func TestSplitVertical_Clamps(t *testing.T) {
	left, right := SplitVertical(image.Rect(0, 0, 100, 10), 150)
	if left.Dx() != 100 || !right.Empty() {
		t.Errorf("left=%v right=%v", left, right)
	}
}
