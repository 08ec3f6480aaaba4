package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	qrcode "github.com/skip2/go-qrcode"
)

// EndCard builds a white outW x outH frame with a centered QR code for link.
// The engine appends copies of it after the camera has returned to full
// view, so the code stays on screen long enough to scan.
func EndCard(link string, outW, outH int) (*image.RGBA, error) {
	qr, err := qrcode.New(link, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("%w: qr code: %v", ErrRenderFailure, err)
	}

	size := outW
	if outH < size {
		size = outH
	}
	size /= 2

	card := image.NewRGBA(image.Rect(0, 0, outW, outH))
	draw.Draw(card, card.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	code := qr.Image(size)
	offset := image.Pt((outW-size)/2, (outH-size)/2)
	draw.Draw(card, code.Bounds().Add(offset), code, code.Bounds().Min, draw.Src)
	return card, nil
}
