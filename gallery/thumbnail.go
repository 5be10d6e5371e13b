package gallery

import "vincit.fi/image-gallery/api/apitype"

// ThumbnailItem is the thumbnail strip entry of one image. It shares the
// source image and only differs in size.
type ThumbnailItem struct {
	Index  int
	Source *apitype.GalleryImage
	Size   apitype.Size
	Offset int
	Active bool
}

func (s ThumbnailItem) EffectiveWidth() int {
	return s.Size.Width()
}

type IndicatorItem struct {
	Index  int
	Active bool
}

func newThumbnails(images []*apitype.GalleryImage, thumbnailWidth int) []ThumbnailItem {
	thumbnails := make([]ThumbnailItem, len(images))
	for i, image := range images {
		thumbnails[i] = ThumbnailItem{
			Index:  i,
			Source: image,
			Size:   image.NaturalSize().ScaleToWidth(thumbnailWidth),
		}
	}
	return thumbnails
}

func newIndicators(count int) []IndicatorItem {
	indicators := make([]IndicatorItem, count)
	for i := range indicators {
		indicators[i] = IndicatorItem{Index: i}
	}
	return indicators
}

func thumbnailElements(thumbnails []ThumbnailItem) []Element {
	elements := make([]Element, len(thumbnails))
	for i, thumbnail := range thumbnails {
		elements[i] = thumbnail
	}
	return elements
}

func imageElements(images []*apitype.GalleryImage) []Element {
	elements := make([]Element, len(images))
	for i, image := range images {
		elements[i] = image
	}
	return elements
}
