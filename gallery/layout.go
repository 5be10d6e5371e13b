package gallery

// Element is anything laid out side by side in a strip.
type Element interface {
	EffectiveWidth() int
}

type fixedWidth int

func (s fixedWidth) EffectiveWidth() int {
	return int(s)
}

// Widths adapts plain pixel widths to elements.
func Widths(widths ...int) []Element {
	elements := make([]Element, len(widths))
	for i, width := range widths {
		elements[i] = fixedWidth(width)
	}
	return elements
}

// ComputeOffsets returns the total width of the strip and the offset of
// the left edge of every element. The offsets have one extra entry, the
// total width, so offsets[i+1]-offsets[i] is the width of element i.
// Negative widths count as zero.
func ComputeOffsets(elements []Element) (int, []int) {
	offsets := make([]int, 0, len(elements)+1)
	offsets = append(offsets, 0)

	totalWidth := 0
	for _, element := range elements {
		if width := element.EffectiveWidth(); width > 0 {
			totalWidth += width
		}
		offsets = append(offsets, totalWidth)
	}
	return totalWidth, offsets
}
