package apitype

import (
	"github.com/stretchr/testify/assert"
	"image"
	"testing"
)

func TestScaleToFit(t *testing.T) {
	a := assert.New(t)
	type args struct {
		sourceWidth  int
		sourceHeight int
		targetWidth  int
		targetHeight int
	}
	tests := []struct {
		name   string
		args   args
		width  int
		height int
	}{
		{name: "100x100->100x100", args: args{sourceWidth: 100, sourceHeight: 100, targetWidth: 100, targetHeight: 100}, width: 100, height: 100},
		// Downscale
		{name: "200x200->100x100", args: args{sourceWidth: 200, sourceHeight: 200, targetWidth: 100, targetHeight: 100}, width: 100, height: 100},
		{name: "400x300->100x100", args: args{sourceWidth: 400, sourceHeight: 300, targetWidth: 100, targetHeight: 100}, width: 100, height: 75},
		{name: "300x400->100x50", args: args{sourceWidth: 300, sourceHeight: 400, targetWidth: 100, targetHeight: 50}, width: 37, height: 50},
		// Upscale
		{name: "40x30  ->400x400", args: args{sourceWidth: 40, sourceHeight: 30, targetWidth: 400, targetHeight: 400}, width: 400, height: 300},
		{name: "30x40  ->400x100", args: args{sourceWidth: 30, sourceHeight: 40, targetWidth: 400, targetHeight: 100}, width: 75, height: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ScaleToFit(tt.args.sourceWidth, tt.args.sourceHeight, tt.args.targetWidth, tt.args.targetHeight)
			a.Equal(tt.width, w)
			a.Equal(tt.height, h)
		})
	}
}

func TestSize_ScaleToWidth(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		name   string
		size   Size
		width  int
		height int
	}{
		{name: "Landscape", size: SizeOf(400, 300), width: 100, height: 75},
		{name: "Portrait", size: SizeOf(300, 600), width: 100, height: 200},
		{name: "Square", size: SizeOf(300, 300), width: 100, height: 100},
		{name: "Zero width", size: SizeOf(0, 300), width: 100, height: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.size.ScaleToWidth(100)
			a.Equal(tt.width, got.Width())
			a.Equal(tt.height, got.Height())
		})
	}
}

func TestSizeFromRectangle(t *testing.T) {
	a := assert.New(t)

	size := SizeFromRectangle(image.Rect(10, 20, 310, 220))

	a.Equal(300, size.Width())
	a.Equal(200, size.Height())
	a.Equal("300x200", size.String())
	a.False(size.IsZero())
	a.True(ZeroSize.IsZero())
}
