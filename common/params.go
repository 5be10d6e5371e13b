package common

import (
	"flag"
	"path/filepath"
)

const (
	defaultEventQueueSize = 100
	configFileName        = "gallery.yaml"
)

type Params struct {
	showThumbnails bool
	logLevel       string
	configPath     string
	watch          bool
	viewportWidth  int
	thumbnailWidth int
	eventQueueSize int
	rootPath       string
	explicit       map[string]bool
}

func NewEmptyParams() *Params {
	return &Params{
		showThumbnails: false,
		logLevel:       "",
		configPath:     "",
		watch:          false,
		viewportWidth:  0,
		thumbnailWidth: 0,
		eventQueueSize: defaultEventQueueSize,
		rootPath:       "",
		explicit:       map[string]bool{},
	}
}

func ParseParams() *Params {
	showThumbnails := flag.Bool("thumbs", false, "Show the thumbnail strip")
	logLevel := flag.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, Trace")
	configPath := flag.String("config", "", "Gallery YAML configuration. Defaults to <dir>/"+configFileName)
	watch := flag.Bool("watch", false, "Reload the gallery when the directory changes")
	viewportWidth := flag.Int("viewportWidth", 0, "Thumbnail viewport width in pixels. 0 uses the gallery width")
	thumbnailWidth := flag.Int("thumbnailWidth", 0, "Thumbnail width in pixels. 0 uses the default")
	eventQueueSize := flag.Int("eventQueueSize", defaultEventQueueSize, "Event bus queue size per subscriber")

	flag.Parse()
	rootPath := flag.Arg(0)

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	return &Params{
		showThumbnails: *showThumbnails,
		logLevel:       *logLevel,
		configPath:     *configPath,
		watch:          *watch,
		viewportWidth:  *viewportWidth,
		thumbnailWidth: *thumbnailWidth,
		eventQueueSize: *eventQueueSize,
		rootPath:       rootPath,
		explicit:       explicit,
	}
}

func (s *Params) ShowThumbnails() bool {
	return s.showThumbnails
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

// ConfigPath falls back to the configuration file inside the root directory.
func (s *Params) ConfigPath() string {
	if s.configPath != "" {
		return s.configPath
	}
	if s.rootPath == "" {
		return ""
	}
	return filepath.Join(s.rootPath, configFileName)
}

func (s *Params) Watch() bool {
	return s.watch
}

func (s *Params) ViewportWidth() int {
	return s.viewportWidth
}

func (s *Params) ThumbnailWidth() int {
	return s.thumbnailWidth
}

func (s *Params) EventQueueSize() int {
	if s.eventQueueSize <= 0 {
		return defaultEventQueueSize
	}
	return s.eventQueueSize
}

func (s *Params) RootPath() string {
	return s.rootPath
}

func (s *Params) SetRootPath(rootPath string) {
	s.rootPath = rootPath
}

func (s *Params) isExplicit(name string) bool {
	return s.explicit[name]
}
