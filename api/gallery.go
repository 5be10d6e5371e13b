package api

import "vincit.fi/image-gallery/api/apitype"

// Gallery is the part of the gallery the backend drives: it supplies the
// image set and forwards navigation requests.
type Gallery interface {
	Initialize(images []*apitype.GalleryImage) error
	GoTo(index int)
	Previous()
	Next()
	SetShowThumbnails(show bool)
	CurrentIndex() int
	ImageCount() int
}
