package apitype

import (
	"fmt"
	"image"
)

type Size struct {
	width  int
	height int
}

var ZeroSize = Size{}

func (s Size) Width() int {
	return s.width
}

func (s Size) Height() int {
	return s.height
}

func (s Size) IsZero() bool {
	return s.width <= 0 || s.height <= 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.width, s.height)
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func SizeFromRectangle(rectangle image.Rectangle) Size {
	return Size{
		width:  rectangle.Dx(),
		height: rectangle.Dy(),
	}
}

// ScaleToWidth keeps the aspect ratio; the gallery thumbnails use a fixed
// width and an automatic height.
func (s Size) ScaleToWidth(width int) Size {
	if s.width <= 0 {
		return Size{width: width, height: 0}
	}
	return Size{
		width:  width,
		height: int(float32(s.height) * float32(width) / float32(s.width)),
	}
}

func ScaleToFit(sourceWidth int, sourceHeight int, targetWidth int, targetHeight int) (int, int) {
	ratio := float32(sourceWidth) / float32(sourceHeight)
	newWidth := int(float32(targetHeight) * ratio)
	newHeight := targetHeight

	if newWidth > targetWidth {
		newWidth = targetWidth
		newHeight = int(float32(targetWidth) / ratio)
	}
	return newWidth, newHeight
}

func RectangleOfScaledToFit(source image.Rectangle, target Size) Size {
	width, height := ScaleToFit(source.Dx(), source.Dy(), target.Width(), target.Height())
	return SizeOf(width, height)
}
