package images

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBase64(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDecodeBase64StripsDataURIPrefix(t *testing.T) {
	photo := pngBase64(t, 4, 4)

	plain, err := DecodeBase64(photo)
	require.NoError(t, err)

	prefixed, err := DecodeBase64("data:image/png;base64," + photo)
	require.NoError(t, err)

	assert.Equal(t, plain, prefixed)
	assert.Equal(t, "image/png", ContentType(plain))
}

func TestDecodeBase64RejectsGarbage(t *testing.T) {
	_, err := DecodeBase64("não é base64!!!")
	assert.Error(t, err)
}

func TestThumbnailScalesDownLargeImages(t *testing.T) {
	photo := pngBase64(t, 512, 300)

	thumb, err := Thumbnail(photo)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(thumb)
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, 256, b.Dx())
	assert.Equal(t, 150, b.Dy())
}

func TestThumbnailKeepsSmallImages(t *testing.T) {
	thumb, err := Thumbnail(pngBase64(t, 100, 80))
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(thumb)
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, 100, b.Dx())
	assert.Equal(t, 80, b.Dy())
}

func TestThumbnailRejectsNonImageBlob(t *testing.T) {
	blob := base64.StdEncoding.EncodeToString([]byte("plain text"))

	_, err := Thumbnail(blob)
	assert.Error(t, err)
}
