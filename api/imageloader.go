package api

import (
	"image"
	"vincit.fi/image-gallery/api/apitype"
)

type ImageLoader interface {
	LoadImage(*apitype.Handle) (image.Image, error)
	LoadImageScaled(*apitype.Handle, apitype.Size) (image.Image, error)
	LoadImageSize(*apitype.Handle) (apitype.Size, error)
	LoadExifData(*apitype.Handle) (*apitype.ExifData, error)
}
