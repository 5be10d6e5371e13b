package imageloader

import (
	"errors"
	"github.com/pixiv/go-libjpeg/jpeg"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrInvalidHandle     = errors.New("invalid image handle")
)

var options = &jpeg.DecoderOptions{}

func NewImageLoader() api.ImageLoader {
	return &LibJPEGImageLoader{}
}

// LibJPEGImageLoader decodes JPEG files with libjpeg and PNG files with
// the standard decoder. It does not apply the EXIF orientation.
type LibJPEGImageLoader struct {
	api.ImageLoader
}

func (s *LibJPEGImageLoader) LoadImage(handle *apitype.Handle) (image.Image, error) {
	return s.decode(handle, options)
}

// LoadImageScaled lets libjpeg decode directly to the smallest DCT scale
// that still covers the size. PNG files are always decoded at full size.
func (s *LibJPEGImageLoader) LoadImageScaled(handle *apitype.Handle, size apitype.Size) (image.Image, error) {
	return s.decode(handle, &jpeg.DecoderOptions{
		ScaleTarget: image.Rect(0, 0, size.Width(), size.Height()),
	})
}

// LoadImageSize reads only the header of the file.
func (s *LibJPEGImageLoader) LoadImageSize(handle *apitype.Handle) (apitype.Size, error) {
	file, format, err := openImage(handle)
	if err != nil {
		return apitype.ZeroSize, err
	}
	defer file.Close()

	var config image.Config
	switch format {
	case ".jpg", ".jpeg":
		config, err = jpeg.DecodeConfig(file)
	case ".png":
		config, err = png.DecodeConfig(file)
	}
	if err != nil {
		return apitype.ZeroSize, err
	}
	return apitype.SizeOf(config.Width, config.Height), nil
}

func (s *LibJPEGImageLoader) LoadExifData(handle *apitype.Handle) (*apitype.ExifData, error) {
	return apitype.LoadExifData(handle)
}

func (s *LibJPEGImageLoader) decode(handle *apitype.Handle, decoderOptions *jpeg.DecoderOptions) (image.Image, error) {
	file, format, err := openImage(handle)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	switch format {
	case ".jpg", ".jpeg":
		return jpeg.Decode(file, decoderOptions)
	default:
		return png.Decode(file)
	}
}

func openImage(handle *apitype.Handle) (io.ReadCloser, string, error) {
	if !handle.IsValid() {
		return nil, "", ErrInvalidHandle
	}
	format := strings.ToLower(filepath.Ext(handle.File()))
	if !apitype.IsSupported(format) {
		return nil, "", ErrUnsupportedFormat
	}

	file, err := os.Open(handle.Path())
	if err != nil {
		return nil, "", err
	}
	return file, format, nil
}

// toRgba returns the image as RGBA since textures are uploaded from RGBA
// pixel data.
func toRgba(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}
