package gallery

import "vincit.fi/image-gallery/common"

const DefaultThumbnailWidth = 100

type Options struct {
	// ViewportWidth of the thumbnail strip. Zero uses the gallery width.
	ViewportWidth  int
	ThumbnailWidth int
	ShowThumbnails bool
	Style          Style
}

func DefaultOptions() *Options {
	return &Options{
		ViewportWidth:  0,
		ThumbnailWidth: DefaultThumbnailWidth,
		ShowThumbnails: false,
		Style:          DefaultStyle(),
	}
}

func OptionsFromConfig(config *common.Config) (*Options, error) {
	style, err := ParseStyle(config.Style)
	if err != nil {
		return nil, err
	}

	options := DefaultOptions()
	options.ViewportWidth = config.ViewportWidth
	if config.ThumbnailWidth > 0 {
		options.ThumbnailWidth = config.ThumbnailWidth
	}
	options.ShowThumbnails = config.Thumbnails
	options.Style = style
	return options, nil
}
