package gallery

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestThumbnailShift(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		name          string
		thumbOffset   int
		viewportWidth int
		sliderWidth   int
		shift         int
	}{
		{name: "First thumbnail", thumbOffset: 0, viewportWidth: 400, sliderWidth: 1000, shift: 0},
		{name: "Inside the first half", thumbOffset: 200, viewportWidth: 400, sliderWidth: 1000, shift: 0},
		{name: "Past the first half", thumbOffset: 300, viewportWidth: 400, sliderWidth: 1000, shift: -500},
		{name: "Clamped to the right edge", thumbOffset: 500, viewportWidth: 400, sliderWidth: 1000, shift: -600},
		{name: "Last thumbnail", thumbOffset: 900, viewportWidth: 400, sliderWidth: 1000, shift: -600},
		{name: "Everything fits", thumbOffset: 300, viewportWidth: 400, sliderWidth: 400, shift: 0},
		{name: "Strip narrower than viewport", thumbOffset: 200, viewportWidth: 400, sliderWidth: 300, shift: 0},
		{name: "Odd viewport width", thumbOffset: 201, viewportWidth: 401, sliderWidth: 2000, shift: -401},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a.Equal(tt.shift, ThumbnailShift(tt.thumbOffset, tt.viewportWidth, tt.sliderWidth))
		})
	}
}

func TestThumbnailShift_StaysWithinStrip(t *testing.T) {
	a := assert.New(t)

	for viewportWidth := 1; viewportWidth <= 500; viewportWidth += 37 {
		for sliderWidth := viewportWidth; sliderWidth <= 1500; sliderWidth += 53 {
			for thumbOffset := 0; thumbOffset <= sliderWidth; thumbOffset += 29 {
				shift := ThumbnailShift(thumbOffset, viewportWidth, sliderWidth)

				a.GreaterOrEqual(-shift, 0)
				a.LessOrEqual(-shift, sliderWidth-viewportWidth,
					"offset %d viewport %d slider %d", thumbOffset, viewportWidth, sliderWidth)
			}
		}
	}
}
