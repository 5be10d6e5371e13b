package watcher

import (
	"github.com/fsnotify/fsnotify"
	"path/filepath"
	"sync"
	"time"
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/logger"
)

// DirectoryWatcher sends DirectoryChanged whenever supported images are
// added, removed or renamed in the watched directory. Bursts of file
// events result in a single message.
type DirectoryWatcher struct {
	sender    api.Sender
	watcher   *fsnotify.Watcher
	debouncer *Debouncer
	directory string
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

func NewDirectoryWatcher(sender api.Sender, debounce time.Duration) (*DirectoryWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &DirectoryWatcher{
		sender:    sender,
		watcher:   watcher,
		debouncer: NewDebouncer(debounce),
		done:      make(chan struct{}),
	}, nil
}

func (s *DirectoryWatcher) Watch(directory string) error {
	if err := s.watcher.Add(directory); err != nil {
		return err
	}
	s.directory = directory
	logger.Info.Printf("Watching '%s' for changes", directory)

	s.wg.Add(1)
	go s.run()
	return nil
}

func (s *DirectoryWatcher) run() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if isRelevant(event) {
				logger.Trace.Printf("Directory event %s", event)
				s.debouncer.Trigger(s.sendChanged)
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn.Printf("Watcher error for '%s': %s", s.directory, err)
		}
	}
}

func (s *DirectoryWatcher) sendChanged() {
	logger.Debug.Printf("Directory '%s' changed", s.directory)
	s.sender.SendCommandToTopic(api.DirectoryChanged, &api.DirectoryChangedCommand{
		Directory: s.directory,
	})
}

func isRelevant(event fsnotify.Event) bool {
	if !apitype.IsSupported(filepath.Ext(event.Name)) {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

func (s *DirectoryWatcher) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		s.debouncer.Cancel()
		err = s.watcher.Close()
		s.wg.Wait()
	})
	return err
}
