package apitype

import (
	"errors"
	"sync"
)

// GalleryImage is one image supplied to a gallery. The gallery only
// observes its load lifecycle; whoever created the image settles it with
// MarkLoaded or MarkFailed.
type GalleryImage struct {
	handle       *Handle
	naturalSize  Size
	renderedSize Size
	state        LoadState
	err          error
	done         chan struct{}
	once         sync.Once
	mux          sync.RWMutex
}

var ErrLoadFailed = errors.New("image could not be loaded")

func NewGalleryImage(handle *Handle) *GalleryImage {
	return &GalleryImage{
		handle: handle,
		state:  Pending,
		done:   make(chan struct{}),
	}
}

func NewLoadedGalleryImage(handle *Handle, naturalSize Size) *GalleryImage {
	image := NewGalleryImage(handle)
	image.MarkLoaded(naturalSize)
	return image
}

func (s *GalleryImage) Handle() *Handle {
	return s.handle
}

func (s *GalleryImage) Id() ImageId {
	return s.handle.Id()
}

func (s *GalleryImage) String() string {
	if s == nil {
		return "GalleryImage<nil>"
	}
	return "GalleryImage{" + s.handle.File() + ", " + s.State().String() + "}"
}

// MarkLoaded settles the image with its natural size. Only the first
// MarkLoaded or MarkFailed call has any effect.
func (s *GalleryImage) MarkLoaded(naturalSize Size) {
	s.once.Do(func() {
		s.mux.Lock()
		s.naturalSize = naturalSize
		s.state = Loaded
		s.mux.Unlock()
		close(s.done)
	})
}

func (s *GalleryImage) MarkFailed(err error) {
	if err == nil {
		err = ErrLoadFailed
	}
	s.once.Do(func() {
		s.mux.Lock()
		s.err = err
		s.state = Failed
		s.mux.Unlock()
		close(s.done)
	})
}

// Done is closed once the image has either loaded or failed.
func (s *GalleryImage) Done() <-chan struct{} {
	return s.done
}

func (s *GalleryImage) Err() error {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.err
}

func (s *GalleryImage) State() LoadState {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.state
}

func (s *GalleryImage) NaturalSize() Size {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.naturalSize
}

func (s *GalleryImage) RenderedSize() Size {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.renderedSize
}

// SetRenderedSize records the size the image is actually drawn with when
// it differs from the natural size.
func (s *GalleryImage) SetRenderedSize(size Size) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.renderedSize = size
}

// EffectiveWidth is the larger of the natural and the rendered width so an
// image drawn narrower than its native resolution still gets its full slot.
func (s *GalleryImage) EffectiveWidth() int {
	s.mux.RLock()
	defer s.mux.RUnlock()
	if s.renderedSize.width > s.naturalSize.width {
		return s.renderedSize.width
	}
	return s.naturalSize.width
}
