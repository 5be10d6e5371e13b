package gallery

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
	"sync"
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/logger"
)

var (
	ErrNoImages = errors.New("gallery needs at least one image")
	ErrNilImage = errors.New("gallery image must not be nil")
)

// Gallery keeps the image track, the indicator strip and the thumbnail
// strip in sync with a single active index. It does not draw anything;
// Render describes the current state for a UI adapter.
type Gallery struct {
	id     uuid.UUID
	sender api.Sender

	viewportWidthOption int
	thumbnailWidth      int
	showThumbnails      bool
	style               Style

	initialized    bool
	revealed       bool
	images         []*apitype.GalleryImage
	thumbnails     []ThumbnailItem
	indicators     []IndicatorItem
	imageOffsets   []int
	thumbOffsets   []int
	size           apitype.Size
	viewportWidth  int
	sliderWidth    int
	currentIndex   int
	trackOffset    int
	thumbnailShift int

	ready *atomic.Bool
	mux   sync.Mutex

	api.Gallery
}

func NewGallery(sender api.Sender, options *Options) *Gallery {
	if options == nil {
		options = DefaultOptions()
	}
	thumbnailWidth := options.ThumbnailWidth
	if thumbnailWidth <= 0 {
		thumbnailWidth = DefaultThumbnailWidth
	}

	return &Gallery{
		id:                  uuid.New(),
		sender:              sender,
		viewportWidthOption: options.ViewportWidth,
		thumbnailWidth:      thumbnailWidth,
		showThumbnails:      options.ShowThumbnails,
		style:               options.Style,
		ready:               atomic.NewBool(false),
	}
}

func (s *Gallery) Id() uuid.UUID {
	return s.id
}

// Initialize waits until every image has loaded or failed and then lays the
// gallery out for the new image set, replacing any earlier one. If any image
// fails nothing is changed and the failure is reported and returned.
func (s *Gallery) Initialize(images []*apitype.GalleryImage) error {
	if len(images) == 0 {
		logger.Error.Printf("Gallery %s: %s", s.id, ErrNoImages)
		return ErrNoImages
	}
	for i, image := range images {
		if image == nil {
			err := fmt.Errorf("image at index %d: %w", i, ErrNilImage)
			logger.Error.Printf("Gallery %s: %s", s.id, err)
			return err
		}
	}

	logger.Debug.Printf("Gallery %s: waiting for %d/%d images", s.id, countPending(images), len(images))
	if err := waitForImages(images); err != nil {
		err = fmt.Errorf("gallery initialization aborted: %w", err)
		s.sender.SendError("Could not initialize gallery", err)
		return err
	}

	s.mux.Lock()
	s.setup(images)
	imageCount := len(s.images)
	s.mux.Unlock()

	logger.Debug.Printf("Gallery %s: initialized with %d images", s.id, imageCount)
	if s.ready.CompareAndSwap(false, true) {
		s.sender.SendCommandToTopic(api.GalleryReady, &api.GalleryReadyCommand{
			GalleryId:  s.id,
			ImageCount: imageCount,
		})
	}
	return nil
}

// waitForImages joins the completion of all images. The first failure
// ends the wait without waiting for the rest.
func waitForImages(images []*apitype.GalleryImage) error {
	group, ctx := errgroup.WithContext(context.Background())
	for _, image := range images {
		image := image
		group.Go(func() error {
			select {
			case <-image.Done():
				if err := image.Err(); err != nil {
					return fmt.Errorf("'%s': %w", image.Handle().Path(), err)
				}
				return nil
			case <-ctx.Done():
				return nil
			}
		})
	}
	return group.Wait()
}

func countPending(images []*apitype.GalleryImage) (pending int) {
	for _, image := range images {
		if !image.State().IsSettled() {
			pending++
		}
	}
	return
}

func (s *Gallery) setup(images []*apitype.GalleryImage) {
	s.images = make([]*apitype.GalleryImage, len(images))
	copy(s.images, images)

	var trackWidth int
	trackWidth, s.imageOffsets = ComputeOffsets(imageElements(s.images))

	first := s.images[0]
	s.size = apitype.SizeOf(first.EffectiveWidth(), first.NaturalSize().Height())

	s.thumbnails = newThumbnails(s.images, s.thumbnailWidth)
	s.sliderWidth, s.thumbOffsets = ComputeOffsets(thumbnailElements(s.thumbnails))
	for i := range s.thumbnails {
		s.thumbnails[i].Offset = s.thumbOffsets[i]
	}
	s.indicators = newIndicators(len(s.images))

	s.viewportWidth = s.viewportWidthOption
	if s.viewportWidth <= 0 {
		s.viewportWidth = s.size.Width()
	}

	logger.Trace.Printf("Gallery %s: track width %d, slider width %d, viewport %d",
		s.id, trackWidth, s.sliderWidth, s.viewportWidth)

	s.currentIndex = 0
	s.initialized = true
	s.revealed = true
	s.syncViews()
}

// GoTo clamps the index into the image range and shows that image. Going to
// the image already shown does nothing.
func (s *Gallery) GoTo(index int) {
	s.mux.Lock()
	command := s.goTo(index)
	s.mux.Unlock()
	s.sendImageChanged(command)
}

func (s *Gallery) Previous() {
	s.mux.Lock()
	command := s.goTo(s.currentIndex - 1)
	s.mux.Unlock()
	s.sendImageChanged(command)
}

func (s *Gallery) Next() {
	s.mux.Lock()
	command := s.goTo(s.currentIndex + 1)
	s.mux.Unlock()
	s.sendImageChanged(command)
}

// goTo must be called with the lock held. It returns nil when nothing changed.
func (s *Gallery) goTo(index int) *api.ImageChangedCommand {
	if !s.initialized {
		logger.Debug.Printf("Gallery %s: not initialized, ignoring navigation to %d", s.id, index)
		return nil
	}

	newIndex := clamp(index, len(s.images))
	if newIndex == s.currentIndex {
		logger.Trace.Printf("Gallery %s: already at %d", s.id, newIndex)
		return nil
	}

	s.currentIndex = newIndex
	s.syncViews()
	return &api.ImageChangedCommand{
		GalleryId: s.id,
		Index:     s.currentIndex,
		Total:     len(s.images),
		Image:     s.images[s.currentIndex],
	}
}

func (s *Gallery) sendImageChanged(command *api.ImageChangedCommand) {
	if command == nil {
		return
	}
	logger.Debug.Printf("Gallery %s: showing image %d/%d", s.id, command.Index+1, command.Total)
	s.sender.SendCommandToTopic(api.GalleryImageChanged, command)
}

func clamp(index int, count int) int {
	if index < 0 {
		return 0
	} else if index >= count-1 {
		return count - 1
	}
	return index
}

func (s *Gallery) syncViews() {
	s.trackOffset = -s.imageOffsets[s.currentIndex]
	s.thumbnailShift = ThumbnailShift(s.thumbOffsets[s.currentIndex], s.viewportWidth, s.sliderWidth)

	for i := range s.indicators {
		s.indicators[i].Active = i == s.currentIndex
	}
	for i := range s.thumbnails {
		s.thumbnails[i].Active = i == s.currentIndex
	}
}

func (s *Gallery) SetShowThumbnails(show bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.showThumbnails = show
}

func (s *Gallery) ShowThumbnails() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.showThumbnails
}

func (s *Gallery) CurrentIndex() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.currentIndex
}

func (s *Gallery) ImageCount() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.images)
}

func (s *Gallery) IsReady() bool {
	return s.ready.Load()
}

func (s *Gallery) ImageOffsets() []int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return copyInts(s.imageOffsets)
}

func (s *Gallery) ThumbOffsets() []int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return copyInts(s.thumbOffsets)
}

func (s *Gallery) ViewportWidth() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.viewportWidth
}

func (s *Gallery) ThumbnailShiftValue() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.thumbnailShift
}

// Render returns a snapshot of the state for drawing.
func (s *Gallery) Render() *View {
	s.mux.Lock()
	defer s.mux.Unlock()

	view := &View{
		GalleryId:      s.id,
		Size:           s.size,
		Revealed:       s.revealed,
		CurrentIndex:   s.currentIndex,
		ImageCount:     len(s.images),
		TrackOffset:    s.trackOffset,
		ShowThumbnails: s.showThumbnails,
		ViewportWidth:  s.viewportWidth,
		SliderWidth:    s.sliderWidth,
		ThumbnailShift: s.thumbnailShift,
		Style:          s.style,
	}
	if !s.initialized {
		return view
	}

	view.TrackWidth = s.imageOffsets[len(s.images)]
	view.Images = make([]ImageView, len(s.images))
	for i, image := range s.images {
		view.Images[i] = ImageView{
			Index:  i,
			Source: image,
			Offset: s.imageOffsets[i],
			Width:  s.imageOffsets[i+1] - s.imageOffsets[i],
		}
	}
	view.Indicators = make([]IndicatorItem, len(s.indicators))
	copy(view.Indicators, s.indicators)
	view.Thumbnails = make([]ThumbnailItem, len(s.thumbnails))
	copy(view.Thumbnails, s.thumbnails)
	return view
}

func copyInts(values []int) []int {
	if values == nil {
		return nil
	}
	result := make([]int, len(values))
	copy(result, values)
	return result
}
