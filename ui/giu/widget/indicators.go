package widget

import (
	"github.com/AllenDang/giu"
	"image"
	"vincit.fi/image-gallery/gallery"
)

type IndicatorsWidget struct {
	view     *gallery.View
	resolver Resolver
	onTarget func(gallery.Target)
	width    float32
}

func Indicators(view *gallery.View, resolver Resolver, onTarget func(gallery.Target)) *IndicatorsWidget {
	return &IndicatorsWidget{
		view:     view,
		resolver: resolver,
		onTarget: onTarget,
	}
}

func (s *IndicatorsWidget) Width(width float32) *IndicatorsWidget {
	s.width = width
	return s
}

func (s *IndicatorsWidget) Build() {
	stripWidth := gallery.IndicatorStripWidth(len(s.view.Indicators))
	left := int(s.width-float32(stripWidth)) / 2
	if left < 0 {
		left = 0
	}

	giu.Column(
		giu.Custom(func() {
			pos := giu.GetCursorScreenPos()
			canvas := giu.GetCanvas()
			top := pos.Y + gallery.IndicatorPadding/2

			const pitch = gallery.IndicatorSize + gallery.IndicatorSpacing
			for i, indicator := range s.view.Indicators {
				dotColor := s.view.Style.DotColor
				if indicator.Active {
					dotColor = s.view.Style.DotActiveColor
				}
				start := image.Pt(pos.X+left+gallery.IndicatorPadding+i*pitch, top)
				end := start.Add(image.Pt(gallery.IndicatorSize, gallery.IndicatorSize))
				canvas.AddRectFilled(start, end, dotColor, gallery.IndicatorSize/2, giu.DrawFlagsNone)
			}

			mousePos := giu.GetMousePos()
			if mousePos.Y < top || mousePos.Y >= top+gallery.IndicatorSize {
				return
			}
			if index, ok := s.resolver.IndicatorAt(mousePos.X - pos.X - left); ok {
				giu.SetMouseCursor(giu.MouseCursorHand)
				if giu.IsMouseClicked(giu.MouseButtonLeft) {
					s.onTarget(gallery.Target{Kind: gallery.TargetIndicator, Index: index})
				}
			}
		}),
		giu.Dummy(s.width, indicatorStripHeight),
	).Build()
}
