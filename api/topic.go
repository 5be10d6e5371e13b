package api

type Topic string

const (
	DirectoryChanged      = Topic("event-directory-changed")
	GalleryReady          = Topic("event-gallery-ready")
	GalleryImageChanged   = Topic("event-gallery-image-changed")
	GalleryRequestNext    = Topic("event-gallery-request-next")
	GalleryRequestPrev    = Topic("event-gallery-request-previous")
	GalleryRequestAtIndex = Topic("event-gallery-request-at-index")
	ThumbnailsToggled     = Topic("event-thumbnails-toggled")
	ProcessStatusUpdated  = Topic("event-process-status-updated")
	ShowError             = Topic("event-show-error")
)
