package gallery

import (
	"github.com/google/uuid"
	"vincit.fi/image-gallery/api/apitype"
)

type ImageView struct {
	Index  int
	Source *apitype.GalleryImage
	Offset int
	Width  int
}

// View describes what to draw for the current state. Offsets are in
// pixels relative to the left edge of their strip.
type View struct {
	GalleryId uuid.UUID
	// Size of the whole gallery, taken from the first image.
	Size     apitype.Size
	Revealed bool

	CurrentIndex int
	ImageCount   int

	TrackOffset int
	TrackWidth  int
	Images      []ImageView

	Indicators []IndicatorItem

	ShowThumbnails bool
	ViewportWidth  int
	SliderWidth    int
	ThumbnailShift int
	Thumbnails     []ThumbnailItem

	Style Style
}

func (s *View) ActiveImage() *apitype.GalleryImage {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Images) {
		return nil
	}
	return s.Images[s.CurrentIndex].Source
}
