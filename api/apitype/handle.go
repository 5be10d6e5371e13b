package apitype

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"vincit.fi/image-gallery/common/logger"
)

type ImageId string

const NoImage = ImageId("")

type Handle struct {
	id       ImageId
	filename string
	path     string
	byteSize int64
}

var (
	EmptyHandle          = Handle{id: NoImage, path: ""}
	supportedFileEndings = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}
)

func NewHandle(fileDir string, fileName string) *Handle {
	path := filepath.Join(fileDir, fileName)
	id := ImageId(path)
	if fileName == "" {
		id = NoImage
	}
	return &Handle{
		id:       id,
		filename: fileName,
		path:     path,
	}
}

func GetEmptyHandle() *Handle {
	return &EmptyHandle
}

func (s *Handle) IsValid() bool {
	return s != nil && s.id != NoImage
}

func (s *Handle) Id() ImageId {
	if s != nil {
		return s.id
	} else {
		return NoImage
	}
}

func (s *Handle) String() string {
	if s != nil {
		if s.IsValid() {
			return "Handle{" + s.filename + "}"
		} else {
			return "Handle<invalid>"
		}
	} else {
		return "Handle<nil>"
	}
}

func (s *Handle) Path() string {
	if s != nil {
		return s.path
	} else {
		return ""
	}
}

func (s *Handle) File() string {
	if s != nil {
		return s.filename
	} else {
		return ""
	}
}

func (s *Handle) SetByteSize(length int64) {
	s.byteSize = length
}

func (s *Handle) ByteSize() int64 {
	if s != nil {
		return s.byteSize
	} else {
		return 0
	}
}

// LoadImageHandles lists the supported images of a directory ordered by
// file name. Sub directories are not scanned.
func LoadImageHandles(dir string) ([]*Handle, error) {
	var handles []*Handle
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	logger.Debug.Printf("Scanning directory '%s'", dir)
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		extension := filepath.Ext(file.Name())
		if IsSupported(extension) {
			handles = append(handles, NewHandle(dir, file.Name()))
		}
	}
	sort.Slice(handles, func(i, j int) bool {
		return handles[i].filename < handles[j].filename
	})
	logger.Debug.Printf("Found %d images", len(handles))

	return handles, nil
}

func IsSupported(extension string) bool {
	return supportedFileEndings[strings.ToLower(extension)]
}
