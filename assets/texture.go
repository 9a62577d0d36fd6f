package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// TextureFormat describes the pixel layout of TextureAsset.Data.
type TextureFormat uint8

const (
	// TextureFormatRGBA8 is 8 bit per channel, non premultiplied RGBA. All loaders produce this format.
	TextureFormatRGBA8 TextureFormat = iota

	// TextureFormatRGB8 is 8 bit per channel RGB without alpha.
	TextureFormatRGB8
)

func (f TextureFormat) String() string {
	switch f {
	case TextureFormatRGBA8:
		return "RGBA8"
	case TextureFormatRGB8:
		return "RGB8"
	default:
		return fmt.Sprintf("TextureFormat(%d)", uint8(f))
	}
}

// BytesPerPixel returns the number of bytes a single pixel occupies in this format.
func (f TextureFormat) BytesPerPixel() int {
	if f == TextureFormatRGB8 {
		return 3
	}

	return 4
}

// TextureAsset holds tightly packed pixel data in row major order.
type TextureAsset struct {
	Width, Height uint32
	Data          []byte
	Format        TextureFormat
}

// ToRGBA8 returns the texture in TextureFormatRGBA8, expanding RGB8 data
// with an opaque alpha channel. An RGBA8 texture is returned as is.
func (t TextureAsset) ToRGBA8() TextureAsset {
	if t.Format == TextureFormatRGBA8 {
		return t
	}

	return TextureAsset{
		Width:  t.Width,
		Height: t.Height,
		Data:   expandRGB8(t.Data),
		Format: TextureFormatRGBA8,
	}
}

func expandRGB8(pixels []byte) []byte {
	rgba := make([]byte, 0, len(pixels)/3*4)

	for len(pixels) >= 3 {
		rgba = append(rgba, pixels[0], pixels[1], pixels[2], 255)
		pixels = pixels[3:]
	}

	return rgba
}

// LoadTexture loads an image file and converts it to an RGBA8 texture.
func LoadTexture(path string) (TextureAsset, error) {
	fp, err := os.Open(path)
	if err != nil {
		return TextureAsset{}, ioError(path, err)
	}

	defer fp.Close()

	texture, err := DecodeTexture(fp)
	switch {
	case errors.Is(err, image.ErrFormat):
		return TextureAsset{}, unsupportedFormat(path, err)
	case err != nil:
		return TextureAsset{}, imageLoadFailed(path, err)
	}

	return texture, nil
}

// DecodeTexture decodes an image in any of the registered formats
// and converts it to an RGBA8 texture.
func DecodeTexture(r io.Reader) (TextureAsset, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return TextureAsset{}, err
	}

	return textureOf(img), nil
}

func decodeTextureBytes(buf []byte) (TextureAsset, error) {
	return DecodeTexture(bytes.NewReader(buf))
}

func textureOf(img image.Image) TextureAsset {
	bounds := img.Bounds()

	return TextureAsset{
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
		Data:   toNRGBA(img).Pix,
		Format: TextureFormatRGBA8,
	}
}

// toNRGBA returns an image with a tightly packed NRGBA pixel buffer starting at the origin.
func toNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()

	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) && nrgba.Stride == 4*bounds.Dx() {
		return nrgba
	}

	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)

	return dst
}
