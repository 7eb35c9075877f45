package imaging

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"intake-report-service/internal/pkg/exceptions"

	"golang.org/x/image/draw"
)

// SquareCrop center-crops the encoded image to a square and scales it to
// side pixels, returning PNG bytes. Non-square inputs lose the longer
// dimension symmetrically.
func SquareCrop(encoded []byte, side int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(encoded))
	if err != nil {
		return nil, exceptions.ErrImageDecode(err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	cropSide := width
	if height < width {
		cropSide = height
	}
	offsetX := bounds.Min.X + (width-cropSide)/2
	offsetY := bounds.Min.Y + (height-cropSide)/2
	cropRect := image.Rect(offsetX, offsetY, offsetX+cropSide, offsetY+cropSide)

	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, cropRect, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, exceptions.ErrImageDecode(err)
	}

	return buf.Bytes(), nil
}
