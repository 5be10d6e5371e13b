package library

import (
	"errors"
	"fmt"
	"sync"
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/logger"
)

var (
	ErrNoDirectory = errors.New("no directory given")
	errNoImages    = errors.New("no supported images")
)

// Service turns directory changes and navigation requests coming from the
// event bus into calls to the gallery.
type Service struct {
	sender     api.Sender
	gallery    api.Gallery
	imageStore api.ImageStore
	reporter   api.ProgressReporter
	directory  string
	mux        sync.Mutex
}

func NewGalleryService(sender api.Sender, gallery api.Gallery, imageStore api.ImageStore) *Service {
	return &Service{
		sender:     sender,
		gallery:    gallery,
		imageStore: imageStore,
		reporter:   api.NewSenderProgressReporter(sender),
	}
}

// InitializeFromDirectory scans the directory and initializes the gallery
// with its images. It blocks until the gallery has been initialized so
// directory changes are handled one at a time.
func (s *Service) InitializeFromDirectory(command *api.DirectoryChangedCommand) {
	if err := s.initializeFromDirectory(command.Directory); err != nil {
		logger.Error.Printf("Could not open directory '%s': %s", command.Directory, err)
	}
}

func (s *Service) initializeFromDirectory(directory string) error {
	if directory == "" {
		return ErrNoDirectory
	}

	handles, err := apitype.LoadImageHandles(directory)
	if err != nil {
		s.reporter.Error(fmt.Sprintf("Could not read directory '%s'", directory), err)
		return err
	}
	if len(handles) == 0 {
		s.reporter.Error(fmt.Sprintf("No images in '%s'", directory), nil)
		return fmt.Errorf("'%s': %w", directory, errNoImages)
	}

	s.mux.Lock()
	s.directory = directory
	s.mux.Unlock()

	logger.Info.Printf("Opening %d images from '%s'", len(handles), directory)
	images := s.imageStore.Initialize(handles, s.reporter)
	return s.gallery.Initialize(images)
}

func (s *Service) RequestNextImage() {
	s.gallery.Next()
}

func (s *Service) RequestPreviousImage() {
	s.gallery.Previous()
}

func (s *Service) RequestImageAt(query *api.ImageAtQuery) {
	s.gallery.GoTo(query.Index)
}

func (s *Service) SetShowThumbnails(command *api.ShowThumbnailsCommand) {
	s.gallery.SetShowThumbnails(command.Show)
}

func (s *Service) Directory() string {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.directory
}

func (s *Service) Close() {
	logger.Info.Printf("Shutting down library, releasing %.2f MB of cached images", s.imageStore.GetSizeInMB())
	s.imageStore.Purge()
}
