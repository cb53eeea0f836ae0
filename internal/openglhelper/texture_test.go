package openglhelper

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeStripes(t *testing.T) []byte {
	t.Helper()
	// 2x3: red, green, blue rows from top to bottom
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	rows := []color.NRGBA{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}}
	for y, c := range rows {
		for x := range 2 {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeRGBA(t *testing.T) {
	rgba, err := DecodeRGBA(bytes.NewReader(encodeStripes(t)), FormatPNG, false)
	require.NoError(t, err)

	assert.Equal(t, 2, rgba.Rect.Dx())
	assert.Equal(t, 3, rgba.Rect.Dy())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, rgba.RGBAAt(1, 2))
}

func TestDecodeRGBA_Flip(t *testing.T) {
	rgba, err := DecodeRGBA(bytes.NewReader(encodeStripes(t)), FormatPNG, true)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{0, 0, 255, 255}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, rgba.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgba.RGBAAt(1, 2))
}

func TestDecodeRGBA_Garbage(t *testing.T) {
	_, err := DecodeRGBA(bytes.NewReader([]byte("not an image")), FormatPNG, true)
	assert.Error(t, err)
}

func TestDecodeRGBA_UnknownFormat(t *testing.T) {
	_, err := DecodeRGBA(bytes.NewReader(encodeStripes(t)), ImageFormat("bmp"), false)
	assert.ErrorContains(t, err, "unsupported")
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected ImageFormat
	}{
		{"textures/barrel_diffuse.png", FormatPNG},
		{"textures/tile_floor.jpg", FormatJPEG},
		{"textures/photo.JPEG", FormatJPEG},
		{"textures/AMF.tga", FormatTGA},
	}
	for _, tt := range tests {
		format, err := FormatFromPath(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.expected, format, tt.path)
	}

	_, err := FormatFromPath("textures/sky.hdr")
	assert.Error(t, err)
}
