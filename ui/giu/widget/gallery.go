package widget

import (
	"github.com/AllenDang/giu"
	"image"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/gallery"
)

const (
	controlWidth         = 32
	indicatorStripHeight = gallery.IndicatorSize + gallery.IndicatorPadding
)

// Resolver maps pointer positions to gallery elements.
type Resolver interface {
	ThumbnailAt(x int) (int, bool)
	IndicatorAt(x int) (int, bool)
}

// GalleryWidget draws a gallery.View: the image track between the
// previous and next controls, the indicator strip and the optional
// thumbnail strip.
type GalleryWidget struct {
	view     *gallery.View
	textures *TextureCache
	resolver Resolver
	onTarget func(gallery.Target)
}

func Gallery(view *gallery.View, textures *TextureCache, resolver Resolver, onTarget func(gallery.Target)) *GalleryWidget {
	return &GalleryWidget{
		view:     view,
		textures: textures,
		resolver: resolver,
		onTarget: onTarget,
	}
}

func (s *GalleryWidget) Build() {
	if !s.view.Revealed || s.view.ImageCount == 0 {
		return
	}

	availableWidth, availableHeight := giu.GetAvailableRegion()

	thumbnailStripHeight := float32(0)
	if s.view.ShowThumbnails {
		thumbnailStripHeight = float32(thumbnailStripHeightOf(s.view.Thumbnails))
	}

	scale := fitScale(s.view.Size,
		availableWidth-2*controlWidth,
		availableHeight-indicatorStripHeight-thumbnailStripHeight)
	trackWidth := float32(s.view.Size.Width()) * scale
	trackHeight := float32(s.view.Size.Height()) * scale

	previousButton := giu.Button("<").Size(controlWidth, trackHeight).OnClick(func() {
		s.onTarget(gallery.Target{Kind: gallery.TargetPrevious})
	})
	nextButton := giu.Button(">").Size(controlWidth, trackHeight).OnClick(func() {
		s.onTarget(gallery.Target{Kind: gallery.TargetNext})
	})

	layout := []giu.Widget{
		giu.Row(
			s.controlStyle().To(previousButton),
			s.track(trackWidth, trackHeight, scale),
			s.controlStyle().To(nextButton),
		),
		Indicators(s.view, s.resolver, s.onTarget).Width(trackWidth + 2*controlWidth),
	}
	if s.view.ShowThumbnails {
		layout = append(layout, Thumbnails(s.view, s.textures, s.resolver, s.onTarget).
			Size(availableWidth, thumbnailStripHeight))
	}
	giu.Column(layout...).Build()
}

func (s *GalleryWidget) controlStyle() *giu.StyleSetter {
	return giu.Style().
		SetColor(giu.StyleColorButton, s.view.Style.ControlsBackground).
		SetColor(giu.StyleColorText, s.view.Style.ControlsColor)
}

func (s *GalleryWidget) track(width float32, height float32, scale float32) giu.Widget {
	return giu.Child().
		Layout(giu.Custom(func() {
			pos := giu.GetCursorScreenPos()
			canvas := giu.GetCanvas()

			for _, imageView := range s.view.Images {
				x := float32(s.view.TrackOffset+imageView.Offset) * scale
				slotWidth := float32(imageView.Width) * scale
				if x+slotWidth <= 0 || x >= width {
					continue
				}

				naturalSize := imageView.Source.NaturalSize()
				drawnWidth := float32(naturalSize.Width()) * scale
				drawnHeight := float32(naturalSize.Height()) * scale
				if drawnWidth < 1 || drawnHeight < 1 {
					continue
				}

				texture := s.textures.GetScaledTexture(imageView.Source.Handle(),
					apitype.SizeOf(int(drawnWidth), int(drawnHeight)))
				if texture.Texture == nil {
					continue
				}
				start := pos.Add(image.Pt(int(x+(slotWidth-drawnWidth)/2), int((height-drawnHeight)/2)))
				end := start.Add(image.Pt(int(drawnWidth), int(drawnHeight)))
				canvas.AddImage(texture.Texture, start, end)
			}
		})).
		Border(false).
		Size(width, height).
		Flags(giu.WindowFlagsNoScrollbar | giu.WindowFlagsNoScrollWithMouse)
}

// fitScale shrinks the gallery to the available area. Galleries are never
// enlarged.
func fitScale(size apitype.Size, width float32, height float32) float32 {
	if size.IsZero() || width <= 0 || height <= 0 {
		return 1
	}
	scale := float32(1)
	if horizontal := width / float32(size.Width()); horizontal < scale {
		scale = horizontal
	}
	if vertical := height / float32(size.Height()); vertical < scale {
		scale = vertical
	}
	return scale
}
