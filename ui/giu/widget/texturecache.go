package widget

import (
	"github.com/AllenDang/giu"
	"image"
	"sync"
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/logger"
)

type TexturedImage struct {
	Texture   *giu.Texture
	Width     float32
	Height    float32
	IsLoading bool
}

func newLoadingTexturedImage() *TexturedImage {
	return &TexturedImage{IsLoading: true}
}

func (s *TexturedImage) setLoaded(texture *giu.Texture, bounds image.Rectangle) {
	s.Texture = texture
	s.Width = float32(bounds.Dx())
	s.Height = float32(bounds.Dy())
	s.IsLoading = false
}

type scaledEntry struct {
	texture *TexturedImage
	size    apitype.Size
}

// TextureCache uploads thumbnails and scaled images as GPU textures in the
// background. A nil texture is returned until the upload has finished.
type TextureCache struct {
	imageCache api.ImageStore
	thumbnails map[apitype.ImageId]*TexturedImage
	scaled     map[apitype.ImageId]*scaledEntry
	mux        sync.Mutex
}

func NewTextureCache(imageCache api.ImageStore) *TextureCache {
	return &TextureCache{
		imageCache: imageCache,
		thumbnails: map[apitype.ImageId]*TexturedImage{},
		scaled:     map[apitype.ImageId]*scaledEntry{},
	}
}

func (s *TextureCache) GetThumbnailTexture(handle *apitype.Handle) *TexturedImage {
	s.mux.Lock()
	defer s.mux.Unlock()

	if texture, ok := s.thumbnails[handle.Id()]; ok {
		return texture
	}
	newEntry := newLoadingTexturedImage()
	s.thumbnails[handle.Id()] = newEntry
	go func() {
		thumbnail, err := s.imageCache.GetThumbnail(handle)
		if err != nil {
			logger.Error.Print(err)
			return
		}
		uploadTexture(thumbnail, newEntry)
	}()
	return newEntry
}

// GetScaledTexture returns the texture of the image fitted into size. The
// previous texture of the image is kept on screen while a new size loads.
func (s *TextureCache) GetScaledTexture(handle *apitype.Handle, size apitype.Size) *TexturedImage {
	s.mux.Lock()
	defer s.mux.Unlock()

	if entry, ok := s.scaled[handle.Id()]; ok && entry.size == size {
		return entry.texture
	}

	newEntry := &scaledEntry{texture: newLoadingTexturedImage(), size: size}
	if previous, ok := s.scaled[handle.Id()]; ok {
		newEntry.texture.Texture = previous.texture.Texture
	}
	s.scaled[handle.Id()] = newEntry
	go func() {
		scaled, err := s.imageCache.GetScaled(handle, size)
		if err != nil {
			logger.Error.Print(err)
			return
		}
		uploadTexture(scaled, newEntry.texture)
	}()
	return newEntry.texture
}

// Reset drops every texture, for example when the image set changes.
func (s *TextureCache) Reset() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.thumbnails = map[apitype.ImageId]*TexturedImage{}
	s.scaled = map[apitype.ImageId]*scaledEntry{}
}

func uploadTexture(img image.Image, entry *TexturedImage) {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		logger.Error.Printf("Unexpected image type %T", img)
		return
	}
	giu.NewTextureFromRgba(rgba, func(texture *giu.Texture) {
		entry.setLoaded(texture, rgba.Bounds())
		giu.Update()
	})
}
