package photo

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beautylink/salon-scheduler/internal/httperr"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcess_OutputIsSquareWebP(t *testing.T) {
	out, err := Process("image/png", pngBytes(t, 800, 600))
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, OutputSize, img.Bounds().Dx())
	assert.Equal(t, OutputSize, img.Bounds().Dy())
}

func TestProcess_UpscalesSmallPhotos(t *testing.T) {
	out, err := Process("image/png", pngBytes(t, 100, 100))
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, OutputSize, img.Bounds().Dx())
}

func TestProcess_RejectsUnsupportedType(t *testing.T) {
	_, err := Process("image/gif", pngBytes(t, 10, 10))
	assert.True(t, httperr.IsBusiness(err, "unsupported_photo_format"))
}

func TestProcess_RejectsOversized(t *testing.T) {
	_, err := Process("image/png", make([]byte, MaxUploadBytes+1))
	assert.True(t, httperr.IsBusiness(err, "photo_too_large"))
}

func TestProcess_RejectsCorruptData(t *testing.T) {
	_, err := Process("image/png", []byte("definitely not a png"))
	assert.True(t, httperr.IsBusiness(err, "invalid_photo"))
}

func TestAllowedContentType(t *testing.T) {
	assert.True(t, AllowedContentType("image/jpeg"))
	assert.True(t, AllowedContentType("image/png"))
	assert.True(t, AllowedContentType("image/webp"))
	assert.False(t, AllowedContentType("image/gif"))
	assert.False(t, AllowedContentType("application/pdf"))
}
