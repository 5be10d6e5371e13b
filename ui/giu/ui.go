package ui

import (
	"fmt"
	"github.com/AllenDang/giu"
	"sync"
	"time"
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/common"
	"vincit.fi/image-gallery/common/logger"
	"vincit.fi/image-gallery/gallery"
	"vincit.fi/image-gallery/ui/giu/widget"
)

const (
	defaultWindowWidth  = 1024
	defaultWindowHeight = 768
)

type Ui struct {
	win      *giu.MasterWindow
	sender   api.Sender
	gallery  *gallery.Gallery
	textures *widget.TextureCache
	rootPath string

	progress *api.UpdateProgressCommand
	mux      sync.Mutex

	api.Gui
}

func NewUi(params *common.Params, broker api.Sender, galleryInstance *gallery.Gallery, imageCache api.ImageStore) *Ui {
	return &Ui{
		win:      giu.NewMasterWindow("Image Gallery", defaultWindowWidth, defaultWindowHeight, 0),
		sender:   broker,
		gallery:  galleryInstance,
		textures: widget.NewTextureCache(imageCache),
		rootPath: params.RootPath(),
	}
}

func (s *Ui) Run() {
	s.sender.SendCommandToTopic(api.DirectoryChanged, &api.DirectoryChangedCommand{Directory: s.rootPath})
	s.win.Run(func() {
		renderStart := time.Now()
		view := s.gallery.Render()

		giu.SingleWindow().
			Layout(
				widget.Gallery(view, s.textures, s.gallery, s.activate),
				giu.Label(s.statusText(view)),
				giu.PrepareMsgbox(),
			)

		renderTime := time.Since(renderStart)
		if renderTime >= time.Millisecond && logger.IsLogLevel(logger.TRACE) {
			logger.Trace.Printf("Rendered UI in %s", renderTime)
		} else if renderTime >= 10*time.Millisecond {
			logger.Debug.Printf("Rendered UI in %s", renderTime)
		}
		s.handleKeyPress(view)
	})
}

// activate routes interactions through the broker like key presses so the
// gallery is only driven by the backend.
func (s *Ui) activate(target gallery.Target) {
	switch target.Kind {
	case gallery.TargetPrevious:
		s.sender.SendToTopic(api.GalleryRequestPrev)
	case gallery.TargetNext:
		s.sender.SendToTopic(api.GalleryRequestNext)
	case gallery.TargetIndicator, gallery.TargetThumbnail:
		s.sender.SendCommandToTopic(api.GalleryRequestAtIndex, &api.ImageAtQuery{Index: target.Index})
	}
}

func (s *Ui) handleKeyPress(view *gallery.View) {
	if giu.IsKeyPressed(giu.KeyLeft) {
		logger.Debug.Printf("Previous")
		s.activate(gallery.Target{Kind: gallery.TargetPrevious})
	}
	if giu.IsKeyPressed(giu.KeyRight) {
		logger.Debug.Printf("Next")
		s.activate(gallery.Target{Kind: gallery.TargetNext})
	}
	if giu.IsKeyPressed(giu.KeyHome) {
		s.sender.SendCommandToTopic(api.GalleryRequestAtIndex, &api.ImageAtQuery{Index: 0})
	}
	if giu.IsKeyPressed(giu.KeyEnd) {
		s.sender.SendCommandToTopic(api.GalleryRequestAtIndex, &api.ImageAtQuery{Index: view.ImageCount - 1})
	}
	if giu.IsKeyPressed(giu.KeyT) {
		logger.Debug.Printf("Toggle thumbnails")
		s.sender.SendCommandToTopic(api.ThumbnailsToggled, &api.ShowThumbnailsCommand{Show: !view.ShowThumbnails})
	}
}

func (s *Ui) statusText(view *gallery.View) string {
	s.mux.Lock()
	defer s.mux.Unlock()
	if !view.Revealed {
		if s.progress != nil && s.progress.Total > 0 {
			return fmt.Sprintf("%s %d/%d", s.progress.Name, s.progress.Current, s.progress.Total)
		}
		return "Loading..."
	}
	if image := view.ActiveImage(); image != nil {
		return fmt.Sprintf("%d / %d  %s", view.CurrentIndex+1, view.ImageCount, image.Handle().File())
	}
	return ""
}

func (s *Ui) Ready(command *api.GalleryReadyCommand) {
	logger.Info.Printf("Gallery %s ready with %d images", command.GalleryId, command.ImageCount)
}

func (s *Ui) ImageChanged(command *api.ImageChangedCommand) {
	logger.Debug.Printf("Showing image %d/%d %s", command.Index+1, command.Total, command.Image)
}

// DirectoryChanged drops the textures of the previous image set.
func (s *Ui) DirectoryChanged(command *api.DirectoryChangedCommand) {
	logger.Debug.Printf("Reloading textures for '%s'", command.Directory)
	s.textures.Reset()
	s.UpdateProgress(&api.UpdateProgressCommand{})
}

func (s *Ui) UpdateProgress(command *api.UpdateProgressCommand) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.progress = command
}

func (s *Ui) ShowError(command *api.ErrorCommand) {
	logger.Error.Printf("Error: %s", command.Message)
	giu.Msgbox("Error", command.Message)
}
