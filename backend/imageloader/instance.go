package imageloader

import (
	"errors"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"image"
	"os"
	"sync"
	"time"
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/logger"
)

var emptyInstance = Instance{}

type Instance struct {
	handle         *apitype.Handle
	full           image.Image
	thumbnail      image.Image
	scaled         image.Image
	exifData       *apitype.ExifData
	imageLoader    api.ImageLoader
	thumbnailWidth int
	mux            sync.Mutex
}

func NewInstance(handle *apitype.Handle, imageLoader api.ImageLoader, thumbnailWidth int) *Instance {
	exifData, err := imageLoader.LoadExifData(handle)
	if err != nil {
		logger.Trace.Printf("Exif data not loaded for '%s'", handle.Path())
	} else {
		logger.Trace.Printf("'%s': Exif orientation %d", handle.Path(), exifData.Orientation())
	}

	return &Instance{
		handle:         handle,
		exifData:       exifData,
		imageLoader:    imageLoader,
		thumbnailWidth: thumbnailWidth,
	}
}

func (s *Instance) IsValid() bool {
	return s.handle != nil && s.imageLoader != nil
}

func (s *Instance) Handle() *apitype.Handle {
	return s.handle
}

// LoadSize resolves the upright size of the image without decoding it.
func (s *Instance) LoadSize() (apitype.Size, error) {
	if !s.IsValid() {
		return apitype.ZeroSize, errors.New("invalid instance")
	}
	size, err := s.imageLoader.LoadImageSize(s.handle)
	if err != nil {
		return apitype.ZeroSize, err
	}

	if fileStat, err := os.Stat(s.handle.Path()); err == nil {
		s.handle.SetByteSize(fileStat.Size())
	} else {
		logger.Warn.Printf("Could not load statistic for '%s'", s.handle.Path())
	}

	if s.exifData != nil {
		return s.exifData.OrientedSize(size), nil
	}
	return size, nil
}

func (s *Instance) GetFull() (image.Image, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.full != nil {
		logger.Trace.Print("Use cached full image")
		return s.full, nil
	}

	startTime := time.Now()
	full, err := s.loadImageWithExifCorrection(nil)
	if err != nil {
		logger.Error.Printf("Could not load full image '%s': %s", s.handle.Path(), err)
		return nil, err
	}
	s.full = full
	logger.Trace.Printf("'%s': Full loaded in %s", s.handle.Path(), time.Since(startTime))
	return s.full, nil
}

// GetScaled fits the full image inside size keeping the aspect ratio.
func (s *Instance) GetScaled(size apitype.Size) (image.Image, error) {
	if !s.IsValid() {
		return nil, errors.New("invalid instance")
	}

	startTime := time.Now()
	full, err := s.GetFull()
	if err != nil {
		return nil, err
	}

	newSize := apitype.RectangleOfScaledToFit(full.Bounds(), size)

	s.mux.Lock()
	defer s.mux.Unlock()
	if s.scaled != nil && newSize == apitype.SizeFromRectangle(s.scaled.Bounds()) {
		logger.Trace.Print("Use cached scaled image")
		return s.scaled, nil
	}
	scaled := resize.Resize(uint(newSize.Width()), uint(newSize.Height()), full, resize.Bilinear)
	s.scaled = toRgba(scaled)
	logger.Trace.Printf("'%s': Scaled to %s in %s", s.handle.Path(), newSize, time.Since(startTime))
	return s.scaled, nil
}

// GetThumbnail returns the image scaled to the thumbnail width. The height
// follows the aspect ratio.
func (s *Instance) GetThumbnail() (image.Image, error) {
	if !s.IsValid() || !s.handle.IsValid() {
		return nil, errors.New("invalid handle")
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	if s.thumbnail != nil {
		logger.Trace.Print("Use cached thumbnail")
		return s.thumbnail, nil
	}

	startTime := time.Now()
	target := apitype.SizeOf(s.thumbnailWidth, s.thumbnailWidth)
	loaded, err := s.loadImageWithExifCorrection(&target)
	if err != nil {
		logger.Error.Printf("Could not load thumbnail '%s': %s", s.handle.Path(), err)
		return nil, err
	}
	s.thumbnail = toRgba(imaging.Resize(loaded, s.thumbnailWidth, 0, imaging.Linear))
	logger.Trace.Printf("'%s': Thumbnail loaded in %s", s.handle.Path(), time.Since(startTime))
	return s.thumbnail, nil
}

func (s *Instance) Purge() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.full = nil
	s.scaled = nil
}

func (s *Instance) GetByteLength() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	var byteLength = 0
	byteLength += GetByteLength(s.full)
	byteLength += GetByteLength(s.scaled)
	byteLength += GetByteLength(s.thumbnail)
	return byteLength
}

func GetByteLength(img image.Image) int {
	if img != nil {
		// Approximation using the image size
		const bytesPerPixel = 4
		bounds := img.Bounds()
		return bounds.Dx() * bounds.Dy() * bytesPerPixel
	} else {
		return 0
	}
}

func (s *Instance) loadImageWithExifCorrection(size *apitype.Size) (image.Image, error) {
	if s.imageLoader == nil {
		return nil, errors.New("no valid loader")
	}

	var loadedImage image.Image
	var err error
	if size != nil {
		loadedImage, err = s.imageLoader.LoadImageScaled(s.handle, *size)
	} else {
		loadedImage, err = s.imageLoader.LoadImage(s.handle)
	}
	if err != nil {
		return nil, err
	}

	return toRgba(apitype.ExifRotateImage(loadedImage, s.exifData)), nil
}
