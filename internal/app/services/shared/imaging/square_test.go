package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestImage(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSquareCropProducesRequestedSide(t *testing.T) {
	for _, dims := range []struct{ w, h int }{
		{300, 300},
		{640, 360},
		{120, 500},
	} {
		out, err := SquareCrop(encodeTestImage(t, dims.w, dims.h), 220)
		require.NoError(t, err)

		decoded, err := png.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 220, decoded.Bounds().Dx())
		assert.Equal(t, 220, decoded.Bounds().Dy())
	}
}

func TestSquareCropRejectsGarbage(t *testing.T) {
	_, err := SquareCrop([]byte("not an image"), 220)
	assert.Error(t, err)
}
