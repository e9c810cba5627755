package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

var ErrDecode = errors.New("image cannot be decoded")

// Decode принимает PNG, JPEG, GIF, BMP и TIFF.
func Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// Composite накладывает слой поверх фото обычным альфа-смешиванием "over".
func Composite(base, overlay image.Image) *image.NRGBA {
	return imaging.Overlay(base, overlay, base.Bounds().Min, 1.0)
}

func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
