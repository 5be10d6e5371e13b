package backend

import (
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/backend/imageloader"
	"vincit.fi/image-gallery/backend/library"
	"vincit.fi/image-gallery/backend/watcher"
	"vincit.fi/image-gallery/common/event"
	"vincit.fi/image-gallery/common/logger"
)

type Services struct {
	GalleryService *library.Service
	ImageLoader    api.ImageLoader
	ImageCache     api.ImageStore
	Watcher        *watcher.DirectoryWatcher
}

func (s *Services) Close() {
	defer s.GalleryService.Close()
	if s.Watcher != nil {
		defer func() {
			if err := s.Watcher.Close(); err != nil {
				logger.Warn.Printf("Could not close watcher: %s", err)
			}
		}()
	}
}

type Brokers struct {
	Broker *event.Broker
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker: event.InitBus(eventBusQueueSize),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

func InitializeServices(thumbnailWidth int, brokers *Brokers, gallery api.Gallery) *Services {
	logger.Debug.Printf("Initialize services...")
	imageLoader := imageloader.NewImageLoader()
	imageCache := imageloader.NewImageCache(imageLoader, thumbnailWidth)

	services := &Services{
		GalleryService: library.NewGalleryService(brokers.Broker, gallery, imageCache),
		ImageLoader:    imageLoader,
		ImageCache:     imageCache,
	}
	logger.Debug.Printf("Services initialized")
	return services
}

// Subscribe connects the services to the backend topics. GUI topics are
// connected by the GUI itself.
func (s *Services) Subscribe(broker *event.Broker) {
	broker.Subscribe(api.DirectoryChanged, s.GalleryService.InitializeFromDirectory)
	broker.Subscribe(api.GalleryRequestNext, s.GalleryService.RequestNextImage)
	broker.Subscribe(api.GalleryRequestPrev, s.GalleryService.RequestPreviousImage)
	broker.Subscribe(api.GalleryRequestAtIndex, s.GalleryService.RequestImageAt)
	broker.Subscribe(api.ThumbnailsToggled, s.GalleryService.SetShowThumbnails)
}

// WatchDirectory reloads the gallery whenever images in the directory change.
func (s *Services) WatchDirectory(brokers *Brokers, directory string) error {
	directoryWatcher, err := watcher.NewDirectoryWatcher(brokers.Broker, watcher.DefaultDebounceDuration)
	if err != nil {
		return err
	}
	if err := directoryWatcher.Watch(directory); err != nil {
		_ = directoryWatcher.Close()
		return err
	}
	s.Watcher = directoryWatcher
	return nil
}
