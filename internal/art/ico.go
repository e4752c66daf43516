package art

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
)

// ICO directory layout.
const (
	icoHeaderLen = 6
	icoEntryLen  = 16
	icoMaxSide   = 256
)

// WriteICO encodes images into a Windows icon with PNG payloads, one
// directory entry per image in the given order.
func WriteICO(w io.Writer, images []image.Image) error {
	if len(images) == 0 {
		return errors.New("ico: no images")
	}
	payloads := make([][]byte, len(images))
	for i, img := range images {
		b := img.Bounds()
		if b.Dx() > icoMaxSide || b.Dy() > icoMaxSide || b.Empty() {
			return fmt.Errorf("ico: image %d is %dx%d, sides must be 1-%d", i, b.Dx(), b.Dy(), icoMaxSide)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("ico: encode image %d: %w", i, err)
		}
		payloads[i] = buf.Bytes()
	}

	le := binary.LittleEndian
	header := make([]byte, icoHeaderLen+icoEntryLen*len(images))
	le.PutUint16(header[2:], 1) // type: icon
	le.PutUint16(header[4:], uint16(len(images)))

	offset := len(header)
	for i, img := range images {
		e := header[icoHeaderLen+i*icoEntryLen:]
		b := img.Bounds()
		e[0] = icoSide(b.Dx())
		e[1] = icoSide(b.Dy())
		le.PutUint16(e[4:], 1)  // color planes
		le.PutUint16(e[6:], 32) // bits per pixel
		le.PutUint32(e[8:], uint32(len(payloads[i])))
		le.PutUint32(e[12:], uint32(offset))
		offset += len(payloads[i])
	}

	if _, err := w.Write(header); err != nil {
		return err
	}
	for _, p := range payloads {
		if _, err := w.Write(p); err != nil {
			return err
		}
	}
	return nil
}

// icoSide stores 256 as 0.
func icoSide(v int) byte {
	if v >= icoMaxSide {
		return 0
	}
	return byte(v)
}

// WriteICOFile writes the icon to path.
func WriteICOFile(path string, images []image.Image) error {
	return writeFile(path, func(w *bufio.Writer) error { return WriteICO(w, images) })
}
