package gallery

import (
	"github.com/stretchr/testify/assert"
	"image/color"
	"testing"
	"vincit.fi/image-gallery/common"
)

func TestOptionsFromConfig(t *testing.T) {
	a := assert.New(t)

	t.Run("Defaults", func(t *testing.T) {
		options, err := OptionsFromConfig(&common.Config{})

		a.Nil(err)
		a.Equal(DefaultOptions(), options)
	})
	t.Run("Values", func(t *testing.T) {
		options, err := OptionsFromConfig(&common.Config{
			Thumbnails:     true,
			ViewportWidth:  400,
			ThumbnailWidth: 80,
			Style:          common.StyleConfig{DotActiveColor: "#00f"},
		})

		a.Nil(err)
		a.True(options.ShowThumbnails)
		a.Equal(400, options.ViewportWidth)
		a.Equal(80, options.ThumbnailWidth)
		a.Equal(color.RGBA{B: 0xff, A: 0xff}, options.Style.DotActiveColor)
	})
	t.Run("Invalid colour", func(t *testing.T) {
		_, err := OptionsFromConfig(&common.Config{Style: common.StyleConfig{DotColor: "blue"}})

		a.NotNil(err)
	})
}

func TestNewGallery_Options(t *testing.T) {
	a := assert.New(t)

	sut := NewGallery(newMockSender(), &Options{ThumbnailWidth: 0, ShowThumbnails: true})
	a.Nil(sut.Initialize(loadedImages(2, 400, 200)))

	view := sut.Render()
	a.Equal(DefaultThumbnailWidth, view.Thumbnails[0].Size.Width())
	a.Equal(50, view.Thumbnails[0].Size.Height())
	a.True(view.ShowThumbnails)
}
