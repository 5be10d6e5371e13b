package imageloader

import (
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
	"image"
	"runtime"
	"sync"
	"time"
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/logger"
)

const progressName = "Loading images"

type DefaultImageStore struct {
	imageCache     map[apitype.ImageId]*Instance
	mux            sync.Mutex
	imageLoader    api.ImageLoader
	thumbnailWidth int

	api.ImageStore
}

func NewImageCache(imageLoader api.ImageLoader, thumbnailWidth int) *DefaultImageStore {
	logger.Debug.Printf("Initialize image cache...")
	return &DefaultImageStore{
		imageCache:     map[apitype.ImageId]*Instance{},
		imageLoader:    imageLoader,
		thumbnailWidth: thumbnailWidth,
	}
}

// Initialize replaces the cached images and returns one pending gallery
// image per handle. The images are settled in the background as soon as
// their size and thumbnail are known.
func (s *DefaultImageStore) Initialize(handles []*apitype.Handle, reporter api.ProgressReporter) []*apitype.GalleryImage {
	s.mux.Lock()
	s.imageCache = map[apitype.ImageId]*Instance{}
	instances := make([]*Instance, len(handles))
	images := make([]*apitype.GalleryImage, len(handles))
	for i, handle := range handles {
		instances[i] = NewInstance(handle, s.imageLoader, s.thumbnailWidth)
		s.imageCache[handle.Id()] = instances[i]
		images[i] = apitype.NewGalleryImage(handle)
	}
	s.mux.Unlock()

	go s.loadInstances(instances, images, reporter)
	return images
}

func (s *DefaultImageStore) loadInstances(instances []*Instance, images []*apitype.GalleryImage, reporter api.ProgressReporter) {
	numOfImages := len(instances)
	if numOfImages == 0 {
		return
	}
	logger.Debug.Printf("Start loading %d image instances in cache...", numOfImages)
	startTime := time.Now()
	reporter.Update(progressName, 0, numOfImages)

	loaded := atomic.NewInt32(0)
	group := new(errgroup.Group)
	group.SetLimit(runtime.NumCPU())
	for i := range instances {
		instance, galleryImage := instances[i], images[i]
		group.Go(func() error {
			if err := loadInstance(instance, galleryImage); err != nil {
				logger.Warn.Printf("Could not load '%s': %s", instance.Handle().Path(), err)
				galleryImage.MarkFailed(err)
			}
			reporter.Update(progressName, int(loaded.Inc()), numOfImages)
			return nil
		})
	}
	_ = group.Wait()

	totalTime := time.Since(startTime)
	avg := totalTime / time.Duration(numOfImages)
	logger.Debug.Printf("All %d instances loaded in cache in %s (avg. %s)", numOfImages, totalTime, avg)
	runtime.GC()
}

func loadInstance(instance *Instance, galleryImage *apitype.GalleryImage) error {
	size, err := instance.LoadSize()
	if err != nil {
		return err
	}
	if _, err := instance.GetThumbnail(); err != nil {
		return err
	}
	galleryImage.MarkLoaded(size)
	return nil
}

func (s *DefaultImageStore) GetFull(handle *apitype.Handle) (image.Image, error) {
	return s.getImage(handle).GetFull()
}

func (s *DefaultImageStore) GetScaled(handle *apitype.Handle, size apitype.Size) (image.Image, error) {
	return s.getImage(handle).GetScaled(size)
}

func (s *DefaultImageStore) GetThumbnail(handle *apitype.Handle) (image.Image, error) {
	return s.getImage(handle).GetThumbnail()
}

func (s *DefaultImageStore) getImage(handle *apitype.Handle) *Instance {
	s.mux.Lock()
	defer s.mux.Unlock()
	if !handle.IsValid() {
		return &emptyInstance
	}
	if existingInstance, ok := s.imageCache[handle.Id()]; ok {
		return existingInstance
	}
	instance := NewInstance(handle, s.imageLoader, s.thumbnailWidth)
	s.imageCache[handle.Id()] = instance
	return instance
}

func (s *DefaultImageStore) Purge() {
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, instance := range s.imageCache {
		instance.Purge()
	}
}

func (s *DefaultImageStore) GetByteSize() (byteSize uint64) {
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, instance := range s.imageCache {
		byteSize += uint64(instance.GetByteLength())
	}
	return
}

func (s *DefaultImageStore) GetSizeInMB() (mbSize float64) {
	return float64(s.GetByteSize()) / (1024 * 1024)
}
