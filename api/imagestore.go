package api

import (
	"image"
	"vincit.fi/image-gallery/api/apitype"
)

type ImageStore interface {
	Initialize([]*apitype.Handle, ProgressReporter) []*apitype.GalleryImage
	GetFull(*apitype.Handle) (image.Image, error)
	GetScaled(*apitype.Handle, apitype.Size) (image.Image, error)
	GetThumbnail(*apitype.Handle) (image.Image, error)
	GetByteSize() uint64
	GetSizeInMB() float64
	Purge()
}
