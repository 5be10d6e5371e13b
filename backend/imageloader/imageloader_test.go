package imageloader

import (
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"vincit.fi/image-gallery/api/apitype"
)

func writeTestImage(t *testing.T, dir string, name string, width int, height int) *apitype.Handle {
	img := imaging.New(width, height, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	require.Nil(t, imaging.Save(img, filepath.Join(dir, name)))
	return apitype.NewHandle(dir, name)
}

func writeBrokenImage(t *testing.T, dir string, name string) *apitype.Handle {
	require.Nil(t, os.WriteFile(filepath.Join(dir, name), []byte("not an image"), 0644))
	return apitype.NewHandle(dir, name)
}

func TestLibJPEGImageLoader_LoadImage(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	loader := NewImageLoader()

	t.Run("JPEG", func(t *testing.T) {
		img, err := loader.LoadImage(writeTestImage(t, dir, "horizontal.jpg", 64, 48))

		a.Nil(err)
		a.Equal(64, img.Bounds().Dx())
		a.Equal(48, img.Bounds().Dy())
	})
	t.Run("PNG", func(t *testing.T) {
		img, err := loader.LoadImage(writeTestImage(t, dir, "vertical.png", 30, 60))

		a.Nil(err)
		a.Equal(30, img.Bounds().Dx())
		a.Equal(60, img.Bounds().Dy())
	})
	t.Run("Unsupported format", func(t *testing.T) {
		img, err := loader.LoadImage(apitype.NewHandle(dir, "animation.gif"))

		a.ErrorIs(err, ErrUnsupportedFormat)
		a.Nil(img)
	})
	t.Run("Invalid handle", func(t *testing.T) {
		_, err := loader.LoadImage(apitype.GetEmptyHandle())

		a.ErrorIs(err, ErrInvalidHandle)
	})
	t.Run("Missing file", func(t *testing.T) {
		_, err := loader.LoadImage(apitype.NewHandle(dir, "no_image.jpg"))

		a.NotNil(err)
	})
}

func TestLibJPEGImageLoader_LoadImageScaled(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	loader := NewImageLoader()
	handle := writeTestImage(t, dir, "large.jpg", 800, 600)

	img, err := loader.LoadImageScaled(handle, apitype.SizeOf(1, 1))

	a.Nil(err)
	a.Equal(100, img.Bounds().Dx(), "smallest size libjpeg can decode to")
	a.Equal(75, img.Bounds().Dy())
}

func TestLibJPEGImageLoader_LoadImageSize(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	loader := NewImageLoader()

	size, err := loader.LoadImageSize(writeTestImage(t, dir, "image.jpg", 320, 200))
	a.Nil(err)
	a.Equal(apitype.SizeOf(320, 200), size)

	size, err = loader.LoadImageSize(writeTestImage(t, dir, "image.png", 20, 10))
	a.Nil(err)
	a.Equal(apitype.SizeOf(20, 10), size)

	_, err = loader.LoadImageSize(writeBrokenImage(t, dir, "broken.png"))
	a.NotNil(err)
}

func TestToRgba(t *testing.T) {
	a := assert.New(t)

	source := imaging.New(4, 2, color.NRGBA{R: 255, A: 255})
	rgba := toRgba(source)

	a.Equal(image.Rect(0, 0, 4, 2), rgba.Bounds())
	a.Equal(color.RGBA{R: 255, A: 255}, rgba.RGBAAt(3, 1))
	a.Same(rgba, toRgba(rgba))
}
