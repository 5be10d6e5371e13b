package api

import (
	"github.com/google/uuid"
	"vincit.fi/image-gallery/api/apitype"
)

type ErrorCommand struct {
	Message string
}

type UpdateProgressCommand struct {
	Name    string
	Current int
	Total   int
}

type DirectoryChangedCommand struct {
	Directory string
}

// GalleryReadyCommand is sent once per gallery, after its first
// successful initialization.
type GalleryReadyCommand struct {
	GalleryId  uuid.UUID
	ImageCount int
}

// ImageChangedCommand is sent on every actual change of the active image.
type ImageChangedCommand struct {
	GalleryId uuid.UUID
	Index     int
	Total     int
	Image     *apitype.GalleryImage
}

type ImageAtQuery struct {
	Index int
}

type ShowThumbnailsCommand struct {
	Show bool
}

type Gui interface {
	Ready(*GalleryReadyCommand)
	ImageChanged(*ImageChangedCommand)
	DirectoryChanged(*DirectoryChangedCommand)
	UpdateProgress(*UpdateProgressCommand)
	ShowError(*ErrorCommand)
	Run()
}
