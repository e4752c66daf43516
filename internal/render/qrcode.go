package render

import (
	"image"
	"image/color"

	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 256

// QRCodeImage returns a QR code for payload drawn in fg on bg.
// If payload is empty, it returns (nil, nil).
func QRCodeImage(payload string, sizePx int, fg, bg color.Color) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	qrCode.ForegroundColor = fg
	qrCode.BackgroundColor = bg
	qrCode.DisableBorder = true

	return qrCode.Image(sizePx), nil
}
