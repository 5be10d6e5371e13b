package gallery

import (
	"github.com/stretchr/testify/assert"
	"image/color"
	"testing"
	"vincit.fi/image-gallery/common"
)

func TestDefaultStyle(t *testing.T) {
	a := assert.New(t)

	style := DefaultStyle()

	a.Equal(color.RGBA{R: 255, G: 255, B: 255, A: 255}, style.ControlsBackground)
	a.Equal(color.RGBA{R: 0, G: 0, B: 0, A: 255}, style.ControlsColor)
	a.Equal(color.RGBA{R: 255, G: 255, B: 255, A: 255}, style.DotColor)
	a.Equal(color.RGBA{R: 255, G: 0, B: 0, A: 255}, style.DotActiveColor)
}

func TestParseStyle(t *testing.T) {
	a := assert.New(t)

	t.Run("Empty keeps defaults", func(t *testing.T) {
		style, err := ParseStyle(common.StyleConfig{})

		a.Nil(err)
		a.Equal(DefaultStyle(), style)
	})
	t.Run("Long and short hex", func(t *testing.T) {
		style, err := ParseStyle(common.StyleConfig{
			ControlsBackground: "#102030",
			DotActiveColor:     "#0F0",
		})

		a.Nil(err)
		a.Equal(color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}, style.ControlsBackground)
		a.Equal(color.RGBA{R: 0, G: 255, B: 0, A: 255}, style.DotActiveColor)
		a.Equal(DefaultStyle().ControlsColor, style.ControlsColor)
		a.Equal(DefaultStyle().DotColor, style.DotColor)
	})
	t.Run("Invalid colour", func(t *testing.T) {
		style, err := ParseStyle(common.StyleConfig{DotColor: "tomato"})

		a.NotNil(err)
		a.Contains(err.Error(), "dot-color")
		a.Equal(DefaultStyle(), style)
	})
}
