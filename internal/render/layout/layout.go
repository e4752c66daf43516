package layout

import "image"

// Inset shrinks rect by paddingPx on all sides. When the padding consumes
// either axis the result is the empty rectangle at rect's center.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	rect = Normalize(rect)
	if 2*paddingPx >= rect.Dx() || 2*paddingPx >= rect.Dy() {
		c := rect.Min.Add(rect.Size().Div(2))
		return image.Rectangle{Min: c, Max: c}
	}
	return image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Center returns a widthPx x heightPx rectangle centered in rect.
func Center(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	x := rect.Min.X + (rect.Dx()-widthPx)/2
	y := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(x, y, x+widthPx, y+heightPx)
}

// Fit scales a srcW x srcH box to the largest size that fits in rect while
// keeping its aspect ratio, and centers it.
func Fit(rect image.Rectangle, srcW, srcH int) image.Rectangle {
	rect = Normalize(rect)
	if srcW <= 0 || srcH <= 0 {
		return image.Rectangle{}
	}
	w, h := rect.Dx(), srcH*rect.Dx()/srcW
	if h > rect.Dy() {
		w, h = srcW*rect.Dy()/srcH, rect.Dy()
	}
	return Center(rect, w, h)
}

// SplitVertical splits rect into left and right parts.
// leftWidthPx is clamped to [0, rect.Dx()].
func SplitVertical(rect image.Rectangle, leftWidthPx int) (left image.Rectangle, right image.Rectangle) {
	rect = Normalize(rect)
	width := rect.Dx()
	if leftWidthPx < 0 {
		leftWidthPx = 0
	}
	if leftWidthPx > width {
		leftWidthPx = width
	}
	left = image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+leftWidthPx, rect.Max.Y)
	right = image.Rect(rect.Min.X+leftWidthPx, rect.Min.Y, rect.Max.X, rect.Max.Y)
	return left, right
}

// Row lays out n cells of cellW x cellH separated by gap, centered
// horizontally in rect with their top edge at y.
func Row(rect image.Rectangle, n, cellW, cellH, gap, y int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	total := n*cellW + (n-1)*gap
	x := rect.Min.X + (rect.Dx()-total)/2
	out := make([]image.Rectangle, n)
	for i := range out {
		out[i] = image.Rect(x, y, x+cellW, y+cellH)
		x += cellW + gap
	}
	return out
}
