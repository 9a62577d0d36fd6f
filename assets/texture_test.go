package assets

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextureAsset_ToRGBA8(t *testing.T) {
	t.Run("expands rgb", func(t *testing.T) {
		texture := TextureAsset{
			Width:  2,
			Height: 1,
			Data:   []byte{1, 2, 3, 4, 5, 6},
			Format: TextureFormatRGB8,
		}

		rgba := texture.ToRGBA8()
		require.Equal(t, TextureFormatRGBA8, rgba.Format)
		require.Equal(t, []byte{1, 2, 3, 255, 4, 5, 6, 255}, rgba.Data)
		require.Equal(t, texture.Width, rgba.Width)
	})

	t.Run("rgba unchanged", func(t *testing.T) {
		texture := TextureAsset{Width: 1, Height: 1, Data: []byte{1, 2, 3, 4}}
		require.Equal(t, texture, texture.ToRGBA8())
	})
}

func TestLoadTexture(t *testing.T) {
	dir := t.TempDir()

	t.Run("png", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "image.png"), encodePNG(t, testImage()))

		texture, err := LoadTexture(path)
		require.NoError(t, err)
		require.Equal(t, uint32(2), texture.Width)
		require.Equal(t, uint32(1), texture.Height)
		require.Equal(t, TextureFormatRGBA8, texture.Format)
		require.Equal(t, []byte{255, 0, 0, 255, 0, 0, 255, 128}, texture.Data)
	})

	t.Run("grayscale is converted", func(t *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 1, 1))
		img.SetGray(0, 0, color.Gray{Y: 42})

		path := writeFile(t, filepath.Join(dir, "gray.png"), encodePNG(t, img))

		texture, err := LoadTexture(path)
		require.NoError(t, err)
		require.Equal(t, []byte{42, 42, 42, 255}, texture.Data)
	})

	t.Run("jpeg", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "image.jpg"), encodeJPEG(t, image.NewRGBA(image.Rect(0, 0, 4, 3))))

		texture, err := LoadTexture(path)
		require.NoError(t, err)
		require.Equal(t, uint32(4), texture.Width)
		require.Equal(t, uint32(3), texture.Height)
		require.Len(t, texture.Data, 4*3*4)
	})

	t.Run("unknown format", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "notes.png"), []byte("definitely not an image"))

		_, err := LoadTexture(path)
		require.ErrorIs(t, err, ErrUnsupportedFormat)
		require.ErrorIs(t, err, image.ErrFormat)
		require.ErrorIs(t, err, ErrImageLoadFailed)
		require.False(t, errors.Is(err, ErrGltfLoadFailed))
	})

	t.Run("corrupt", func(t *testing.T) {
		// png signature followed by garbage
		path := writeFile(t, filepath.Join(dir, "corrupt.png"), []byte("\x89PNG\r\n\x1a\ngarbage"))

		_, err := LoadTexture(path)
		require.ErrorIs(t, err, ErrImageLoadFailed)
		require.False(t, errors.Is(err, ErrUnsupportedFormat))

		var assetErr *Error
		require.True(t, errors.As(err, &assetErr))
		require.Equal(t, path, assetErr.Path)
		require.NotEmpty(t, assetErr.Reason)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadTexture(filepath.Join(dir, "missing.png"))
		require.ErrorIs(t, err, ErrIo)
	})
}
