package render

import "image/color"

// Default canvas size for collection artwork.
const (
	DefaultWidth  = 512
	DefaultHeight = 512
)

// Brand colors shared by the logo, favicon and banner artwork.
var (
	BrandBlue  = color.RGBA{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF} // #0000ff
	BrandBlack = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	BrandWhite = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Gray100    = color.RGBA{R: 0x0A, G: 0x0B, B: 0x0D, A: 0xFF} // #0a0b0d
	Gray80     = color.RGBA{R: 0x32, G: 0x35, B: 0x3D, A: 0xFF} // #32353d
	Gray60     = color.RGBA{R: 0x5B, G: 0x61, B: 0x6E, A: 0xFF} // #5b616e
	Gray50     = color.RGBA{R: 0x71, G: 0x78, B: 0x86, A: 0xFF} // #717886
	Gray30     = color.RGBA{R: 0xB1, G: 0xB7, B: 0xC3, A: 0xFF} // #b1b7c3
	Yellow     = color.RGBA{R: 0xFF, G: 0xD1, B: 0x2F, A: 0xFF} // #ffd12f
)

// Size returns width and height, substituting the defaults for
// non-positive values.
func Size(width, height int) (int, int) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}
