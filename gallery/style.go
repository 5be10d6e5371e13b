package gallery

import (
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
	"image/color"
	"strings"
	"vincit.fi/image-gallery/common"
)

// Style holds the colours an embedding application may replace. None of
// them affect behaviour.
type Style struct {
	ControlsBackground color.RGBA
	ControlsColor      color.RGBA
	DotColor           color.RGBA
	DotActiveColor     color.RGBA
}

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	red   = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
)

func DefaultStyle() Style {
	return Style{
		ControlsBackground: white,
		ControlsColor:      black,
		DotColor:           white,
		DotActiveColor:     red,
	}
}

// ParseStyle reads CSS style hex colours (#rgb or #rrggbb). Empty values
// keep the defaults.
func ParseStyle(config common.StyleConfig) (Style, error) {
	style := DefaultStyle()

	values := []struct {
		name   string
		value  string
		target *color.RGBA
	}{
		{name: "controls-background", value: config.ControlsBackground, target: &style.ControlsBackground},
		{name: "controls-color", value: config.ControlsColor, target: &style.ControlsColor},
		{name: "dot-color", value: config.DotColor, target: &style.DotColor},
		{name: "dot-active-color", value: config.DotActiveColor, target: &style.DotActiveColor},
	}
	for _, v := range values {
		value := strings.TrimSpace(v.value)
		if value == "" {
			continue
		}
		parsed, err := parseColor(value)
		if err != nil {
			return DefaultStyle(), fmt.Errorf("invalid %s '%s': %w", v.name, value, err)
		}
		*v.target = parsed
	}
	return style, nil
}

func parseColor(value string) (color.RGBA, error) {
	parsed, err := colorful.Hex(strings.ToLower(value))
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := parsed.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
