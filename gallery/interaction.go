package gallery

import (
	"sort"
	"vincit.fi/image-gallery/common/logger"
)

// Indicator strip geometry in pixels.
const (
	IndicatorSize    = 8
	IndicatorSpacing = 16
	IndicatorPadding = 16
)

type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetPrevious
	TargetNext
	TargetIndicator
	TargetThumbnail
)

// Target is a resolved user interaction.
type Target struct {
	Kind  TargetKind
	Index int
}

// Activate performs the navigation a target stands for. Targets that are
// not controls, indicators or thumbnails are ignored.
func (s *Gallery) Activate(target Target) {
	switch target.Kind {
	case TargetPrevious:
		s.Previous()
	case TargetNext:
		s.Next()
	case TargetIndicator, TargetThumbnail:
		s.GoTo(target.Index)
	default:
		logger.Trace.Printf("Gallery %s: ignoring target %d", s.id, target.Kind)
	}
}

// ThumbnailAt resolves an x coordinate relative to the left edge of the
// thumbnail viewport to the thumbnail drawn there.
func (s *Gallery) ThumbnailAt(x int) (int, bool) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if !s.initialized || x < 0 || x >= s.viewportWidth {
		return -1, false
	}
	return indexAtOffset(s.thumbOffsets, x-s.thumbnailShift)
}

// IndicatorAt resolves an x coordinate relative to the left edge of the
// indicator strip. The gaps between the dots do not belong to any dot.
func (s *Gallery) IndicatorAt(x int) (int, bool) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if !s.initialized {
		return -1, false
	}
	return indicatorAt(x, len(s.indicators))
}

func indicatorAt(x int, count int) (int, bool) {
	x -= IndicatorPadding
	if x < 0 {
		return -1, false
	}
	const pitch = IndicatorSize + IndicatorSpacing
	index := x / pitch
	if index >= count || x%pitch >= IndicatorSize {
		return -1, false
	}
	return index, true
}

// IndicatorStripWidth is the width needed to draw count indicators.
func IndicatorStripWidth(count int) int {
	if count <= 0 {
		return 0
	}
	return IndicatorPadding + count*(IndicatorSize+IndicatorSpacing)
}

func indexAtOffset(offsets []int, x int) (int, bool) {
	count := len(offsets) - 1
	if count <= 0 || x < 0 || x >= offsets[count] {
		return -1, false
	}
	// First element whose right edge is past x
	index := sort.Search(count, func(i int) bool {
		return offsets[i+1] > x
	})
	return index, index < count
}
