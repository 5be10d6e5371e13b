package widget

import (
	"github.com/AllenDang/giu"
	"image"
	"image/color"
	"vincit.fi/image-gallery/gallery"
)

const activeBorderWidth = 2

var (
	imageHoverOverlayColor = color.RGBA{R: 255, G: 255, B: 255, A: 64}
	activeBorderColor      = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

type ThumbnailsWidget struct {
	view     *gallery.View
	textures *TextureCache
	resolver Resolver
	onTarget func(gallery.Target)
	width    float32
	height   float32
}

func Thumbnails(view *gallery.View, textures *TextureCache, resolver Resolver, onTarget func(gallery.Target)) *ThumbnailsWidget {
	return &ThumbnailsWidget{
		view:     view,
		textures: textures,
		resolver: resolver,
		onTarget: onTarget,
	}
}

func (s *ThumbnailsWidget) Size(width float32, height float32) *ThumbnailsWidget {
	s.width = width
	s.height = height
	return s
}

func (s *ThumbnailsWidget) Build() {
	viewportWidth := float32(s.view.ViewportWidth)
	if viewportWidth > s.width {
		viewportWidth = s.width
	}

	giu.Child().
		Layout(giu.Custom(func() {
			pos := giu.GetCursorScreenPos()
			canvas := giu.GetCanvas()
			mousePos := giu.GetMousePos()

			hovered, isHovered := -1, false
			if mousePos.Y >= pos.Y && float32(mousePos.Y) < float32(pos.Y)+s.height {
				hovered, isHovered = s.resolver.ThumbnailAt(mousePos.X - pos.X)
			}

			for _, thumbnail := range s.view.Thumbnails {
				x := s.view.ThumbnailShift + thumbnail.Offset
				if float32(x) >= viewportWidth || x+thumbnail.Size.Width() <= 0 {
					continue
				}

				start := pos.Add(image.Pt(x, activeBorderWidth))
				end := start.Add(image.Pt(thumbnail.Size.Width(), thumbnail.Size.Height()))

				texture := s.textures.GetThumbnailTexture(thumbnail.Source.Handle())
				if texture.Texture != nil {
					canvas.AddImage(texture.Texture, start, end)
				}
				if thumbnail.Active {
					drawBorder(canvas, start, end, activeBorderColor, activeBorderWidth)
				}
				if isHovered && hovered == thumbnail.Index {
					canvas.AddRectFilled(start, end, imageHoverOverlayColor, 0, giu.DrawFlagsNone)
				}
			}

			if isHovered {
				giu.SetMouseCursor(giu.MouseCursorHand)
				if giu.IsMouseClicked(giu.MouseButtonLeft) {
					s.onTarget(gallery.Target{Kind: gallery.TargetThumbnail, Index: hovered})
				}
			}
		})).
		Border(false).
		Size(viewportWidth, s.height).
		Flags(giu.WindowFlagsNoScrollbar | giu.WindowFlagsNoScrollWithMouse).
		Build()
}

// drawBorder draws the border inside the rectangle so neighbouring
// thumbnails do not overlap it.
func drawBorder(canvas *giu.Canvas, start image.Point, end image.Point, borderColor color.Color, width int) {
	canvas.AddRectFilled(start, image.Pt(end.X, start.Y+width), borderColor, 0, giu.DrawFlagsNone)
	canvas.AddRectFilled(image.Pt(start.X, end.Y-width), end, borderColor, 0, giu.DrawFlagsNone)
	canvas.AddRectFilled(start, image.Pt(start.X+width, end.Y), borderColor, 0, giu.DrawFlagsNone)
	canvas.AddRectFilled(image.Pt(end.X-width, start.Y), end, borderColor, 0, giu.DrawFlagsNone)
}

func thumbnailStripHeightOf(thumbnails []gallery.ThumbnailItem) int {
	height := 0
	for _, thumbnail := range thumbnails {
		if thumbnail.Size.Height() > height {
			height = thumbnail.Size.Height()
		}
	}
	return height + 2*activeBorderWidth
}
