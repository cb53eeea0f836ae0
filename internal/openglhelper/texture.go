package openglhelper

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"github.com/go-gl/gl/v4.6-core/gl"
	"golang.org/x/image/draw"
)

// Texture is a mipmapped 2D texture.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// ImageFormat selects the decoder for a texture file
type ImageFormat string

const (
	FormatPNG  ImageFormat = "png"
	FormatJPEG ImageFormat = "jpeg"
	FormatTGA  ImageFormat = "tga"
)

// FormatFromPath picks the image format from the file extension.
// TGA files carry no magic number, so sniffing the content is not an option.
func FormatFromPath(path string) (ImageFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".tga":
		return FormatTGA, nil
	}
	return "", fmt.Errorf("unsupported image format %q", filepath.Ext(path))
}

func decode(r io.Reader, format ImageFormat) (image.Image, error) {
	switch format {
	case FormatPNG:
		return png.Decode(r)
	case FormatJPEG:
		return jpeg.Decode(r)
	case FormatTGA:
		return tga.Decode(r)
	}
	return nil, fmt.Errorf("unsupported image format %q", format)
}

// DecodeRGBA decodes an image into tightly packed RGBA.
// With flipV the rows are reversed so that row 0 is the bottom of the
// image, which is what GL texture coordinates expect.
func DecodeRGBA(r io.Reader, format ImageFormat, flipV bool) (*image.RGBA, error) {
	img, err := decode(r, format)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	if flipV {
		flipRows(rgba)
	}
	return rgba, nil
}

func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]byte, img.Stride)
	for y := range h / 2 {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

// LoadTexture reads an image file and uploads it as a texture.
func LoadTexture(path string, flipV bool) (*Texture, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file %s: %w", path, err)
	}
	defer file.Close()

	rgba, err := DecodeRGBA(file, format, flipV)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture image %s: %w", path, err)
	}

	return NewTexture(rgba), nil
}

// NewTexture uploads RGBA pixels and generates mipmaps.
func NewTexture(rgba *image.RGBA) *Texture {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	size := rgba.Rect.Size()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(size.X), int32(size.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{ID: id, Width: size.X, Height: size.Y}
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Unbind clears the given texture unit.
func (t *Texture) Unbind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Delete releases the texture.
func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
}
