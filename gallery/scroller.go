package gallery

// ThumbnailShift returns the horizontal shift of the thumbnail strip that
// keeps the thumbnail starting at thumbOffset visible inside a viewport of
// viewportWidth pixels. The result is never positive and never scrolls
// past the right edge of a strip that is sliderWidth pixels wide.
func ThumbnailShift(thumbOffset int, viewportWidth int, sliderWidth int) int {
	halfViewport := viewportWidth / 2

	shift := 0
	if 2*thumbOffset > viewportWidth {
		shift = -(thumbOffset + halfViewport)
	}

	if -shift+viewportWidth > sliderWidth {
		shift = -(sliderWidth - viewportWidth)
	}
	if shift > 0 {
		shift = 0
	}
	return shift
}
