package imageloader

import (
	"github.com/stretchr/testify/assert"
	"image"
	"testing"
	"vincit.fi/image-gallery/api/apitype"
)

func TestInstance_GetFull(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	loader := NewImageLoader()

	t.Run("Loaded as RGBA", func(t *testing.T) {
		instance := NewInstance(writeTestImage(t, dir, "horizontal.jpg", 64, 48), loader, 100)

		full, err := instance.GetFull()

		a.Nil(err)
		a.IsType(&image.RGBA{}, full)
		a.Equal(64, full.Bounds().Dx())
		a.Equal(48, full.Bounds().Dy())
		a.Equal(64*48*4, instance.GetByteLength())
	})
	t.Run("Cached", func(t *testing.T) {
		instance := NewInstance(writeTestImage(t, dir, "cached.png", 64, 48), loader, 100)

		first, _ := instance.GetFull()
		second, err := instance.GetFull()

		a.Nil(err)
		a.Same(first, second)
	})
	t.Run("No image", func(t *testing.T) {
		instance := NewInstance(apitype.NewHandle(dir, "no_image.jpg"), loader, 100)

		full, err := instance.GetFull()

		a.NotNil(err)
		a.Nil(full)
		a.Equal(0, instance.GetByteLength())
	})
}

func TestInstance_LoadSize(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	handle := writeTestImage(t, dir, "size.jpg", 120, 80)
	instance := NewInstance(handle, NewImageLoader(), 100)

	size, err := instance.LoadSize()

	a.Nil(err)
	a.Equal(apitype.SizeOf(120, 80), size)
	a.Greater(handle.ByteSize(), int64(0))
	a.Equal(0, instance.GetByteLength(), "nothing is decoded")
}

func TestInstance_GetScaled(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	instance := NewInstance(writeTestImage(t, dir, "wide.jpg", 800, 400), NewImageLoader(), 100)

	scaled, err := instance.GetScaled(apitype.SizeOf(400, 400))
	a.Nil(err)
	a.Equal(400, scaled.Bounds().Dx())
	a.Equal(200, scaled.Bounds().Dy())

	again, err := instance.GetScaled(apitype.SizeOf(400, 400))
	a.Nil(err)
	a.Same(scaled, again)

	smaller, err := instance.GetScaled(apitype.SizeOf(200, 200))
	a.Nil(err)
	a.Equal(200, smaller.Bounds().Dx())
	a.Equal(100, smaller.Bounds().Dy())
}

func TestInstance_GetThumbnail(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()

	t.Run("Width is fixed", func(t *testing.T) {
		instance := NewInstance(writeTestImage(t, dir, "wide.jpg", 800, 400), NewImageLoader(), 100)

		thumbnail, err := instance.GetThumbnail()

		a.Nil(err)
		a.Equal(100, thumbnail.Bounds().Dx())
		a.Equal(50, thumbnail.Bounds().Dy())
	})
	t.Run("Purge keeps thumbnail", func(t *testing.T) {
		instance := NewInstance(writeTestImage(t, dir, "purge.png", 200, 100), NewImageLoader(), 50)

		thumbnail, err := instance.GetThumbnail()
		a.Nil(err)
		_, err = instance.GetFull()
		a.Nil(err)

		instance.Purge()

		a.Equal(50*25*4, instance.GetByteLength())
		cached, _ := instance.GetThumbnail()
		a.Same(thumbnail, cached)
	})
	t.Run("Invalid handle", func(t *testing.T) {
		instance := NewInstance(apitype.GetEmptyHandle(), NewImageLoader(), 100)

		_, err := instance.GetThumbnail()

		a.NotNil(err)
	})
}
