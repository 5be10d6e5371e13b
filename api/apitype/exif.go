package apitype

import (
	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"image"
	"os"
	"vincit.fi/image-gallery/common/logger"
)

type ExifData struct {
	orientation uint8
	rotation    float64
	flipped     bool
}

const exifUnchangedOrientation = 1

var unchangedExifData = ExifData{orientation: exifUnchangedOrientation}

func NewExifData(orientation int) *ExifData {
	angle, flip := ExifOrientationToAngleAndFlip(orientation)
	if orientation < 1 || orientation > 8 {
		orientation = exifUnchangedOrientation
	}
	return &ExifData{
		orientation: uint8(orientation),
		rotation:    angle,
		flipped:     flip,
	}
}

func (s *ExifData) Orientation() uint8 {
	return s.orientation
}

// Rotation is the counter-clockwise angle needed to display the image upright.
func (s *ExifData) Rotation() float64 {
	return s.rotation
}

func (s *ExifData) IsFlipped() bool {
	return s.flipped
}

// SwapsAxes tells if the displayed width is the stored height.
func (s *ExifData) SwapsAxes() bool {
	return s.rotation == left90 || s.rotation == right90
}

// OrientedSize returns the size of the image once rotated upright.
func (s *ExifData) OrientedSize(stored Size) Size {
	if s.SwapsAxes() {
		return SizeOf(stored.Height(), stored.Width())
	}
	return stored
}

func GetInt(decodedExif *exif.Exif, tagName exif.FieldName) (int, error) {
	if tag, err := decodedExif.Get(tagName); err != nil {
		return 0, err
	} else {
		return tag.Int(0)
	}
}

// LoadExifData never returns nil; images without EXIF data (all PNGs) get
// the unchanged orientation together with the decode error.
func LoadExifData(handle *Handle) (*ExifData, error) {
	fileForExif, err := os.Open(handle.Path())
	if err != nil {
		data := unchangedExifData
		return &data, err
	}
	defer fileForExif.Close()

	if decodedExif, err := exif.Decode(fileForExif); err != nil {
		logger.Trace.Printf("No Exif data for '%s': %s", handle.Path(), err)
		data := unchangedExifData
		return &data, err
	} else if orientation, err := GetInt(decodedExif, exif.Orientation); err != nil {
		logger.Debug.Printf("Could not resolve orientation for '%s': %s", handle.Path(), err)
		data := unchangedExifData
		return &data, err
	} else {
		return NewExifData(orientation), nil
	}
}

const (
	noRotate  = 0
	rotate180 = 180
	left90    = 90
	right90   = 270

	noHorizontalFlip = false
	horizontalFlip   = true
)

func ExifOrientationToAngleAndFlip(orientation int) (float64, bool) {
	switch orientation {
	case 1:
		return noRotate, noHorizontalFlip
	case 2:
		return noRotate, horizontalFlip
	case 3:
		return rotate180, noHorizontalFlip
	case 4:
		return rotate180, horizontalFlip
	case 5:
		return right90, horizontalFlip
	case 6:
		return right90, noHorizontalFlip
	case 7:
		return left90, horizontalFlip
	case 8:
		return left90, noHorizontalFlip
	default:
		return noRotate, noHorizontalFlip
	}
}

func ExifRotateImage(loadedImage image.Image, exifData *ExifData) image.Image {
	if exifData == nil {
		return loadedImage
	}

	switch exifData.rotation {
	case left90:
		loadedImage = imaging.Rotate90(loadedImage)
	case rotate180:
		loadedImage = imaging.Rotate180(loadedImage)
	case right90:
		loadedImage = imaging.Rotate270(loadedImage)
	}
	if exifData.flipped {
		return imaging.FlipH(loadedImage)
	}
	return loadedImage
}
