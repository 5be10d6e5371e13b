package library

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
)

type MockSender struct {
	api.Sender
	mock.Mock
}

func (s *MockSender) SendToTopic(topic api.Topic) {
	s.Called(topic)
}

func (s *MockSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.Called(topic, command)
}

func (s *MockSender) SendError(message string, err error) {
	s.Called(message, err)
}

type MockGallery struct {
	api.Gallery
	mock.Mock
}

func (s *MockGallery) Initialize(images []*apitype.GalleryImage) error {
	return s.Called(images).Error(0)
}

func (s *MockGallery) GoTo(index int) {
	s.Called(index)
}

func (s *MockGallery) Previous() {
	s.Called()
}

func (s *MockGallery) Next() {
	s.Called()
}

func (s *MockGallery) SetShowThumbnails(show bool) {
	s.Called(show)
}

type MockImageStore struct {
	api.ImageStore
	mock.Mock
}

func (s *MockImageStore) Initialize(handles []*apitype.Handle, reporter api.ProgressReporter) []*apitype.GalleryImage {
	return s.Called(handles, reporter).Get(0).([]*apitype.GalleryImage)
}

func (s *MockImageStore) Purge() {
	s.Called()
}

func (s *MockImageStore) GetSizeInMB() float64 {
	return s.Called().Get(0).(float64)
}

func createFiles(t *testing.T, names ...string) string {
	dir := t.TempDir()
	for _, name := range names {
		require.Nil(t, os.WriteFile(filepath.Join(dir, name), []byte{}, 0644))
	}
	return dir
}

func TestService_InitializeFromDirectory(t *testing.T) {
	a := assert.New(t)

	t.Run("Images are passed to the gallery in file name order", func(t *testing.T) {
		dir := createFiles(t, "b.png", "a.jpg", "notes.txt", "c.JPEG")

		sender := new(MockSender)
		gallery := new(MockGallery)
		imageStore := new(MockImageStore)
		images := []*apitype.GalleryImage{
			apitype.NewGalleryImage(apitype.NewHandle(dir, "a.jpg")),
		}
		imageStore.On("Initialize", mock.Anything, mock.Anything).Return(images)
		gallery.On("Initialize", images).Return(nil)

		sut := NewGalleryService(sender, gallery, imageStore)
		sut.InitializeFromDirectory(&api.DirectoryChangedCommand{Directory: dir})

		gallery.AssertExpectations(t)
		handles := imageStore.Calls[0].Arguments.Get(0).([]*apitype.Handle)
		if a.Equal(3, len(handles)) {
			a.Equal("a.jpg", handles[0].File())
			a.Equal("b.png", handles[1].File())
			a.Equal("c.JPEG", handles[2].File())
		}
		a.Equal(dir, sut.Directory())
		sender.AssertNotCalled(t, "SendError", mock.Anything, mock.Anything)
	})
	t.Run("Directory without images", func(t *testing.T) {
		dir := createFiles(t, "notes.txt")

		sender := new(MockSender)
		sender.On("SendError", mock.Anything, mock.Anything).Return()
		gallery := new(MockGallery)
		imageStore := new(MockImageStore)

		sut := NewGalleryService(sender, gallery, imageStore)
		err := sut.initializeFromDirectory(dir)

		a.ErrorIs(err, errNoImages)
		sender.AssertNumberOfCalls(t, "SendError", 1)
		gallery.AssertNotCalled(t, "Initialize", mock.Anything)
		imageStore.AssertNotCalled(t, "Initialize", mock.Anything, mock.Anything)
		a.Equal("", sut.Directory())
	})
	t.Run("Missing directory", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("SendError", mock.Anything, mock.Anything).Return()

		sut := NewGalleryService(sender, new(MockGallery), new(MockImageStore))
		err := sut.initializeFromDirectory(filepath.Join(t.TempDir(), "missing"))

		a.NotNil(err)
		sender.AssertNumberOfCalls(t, "SendError", 1)
	})
	t.Run("No directory", func(t *testing.T) {
		sut := NewGalleryService(new(MockSender), new(MockGallery), new(MockImageStore))

		a.ErrorIs(sut.initializeFromDirectory(""), ErrNoDirectory)
	})
}

func TestService_Navigation(t *testing.T) {
	gallery := new(MockGallery)
	gallery.On("Next").Return()
	gallery.On("Previous").Return()
	gallery.On("GoTo", 4).Return()
	gallery.On("SetShowThumbnails", true).Return()

	sut := NewGalleryService(new(MockSender), gallery, new(MockImageStore))
	sut.RequestNextImage()
	sut.RequestPreviousImage()
	sut.RequestImageAt(&api.ImageAtQuery{Index: 4})
	sut.SetShowThumbnails(&api.ShowThumbnailsCommand{Show: true})

	gallery.AssertExpectations(t)
}

func TestService_Close(t *testing.T) {
	imageStore := new(MockImageStore)
	imageStore.On("GetSizeInMB").Return(1.5)
	imageStore.On("Purge").Return()

	NewGalleryService(new(MockSender), new(MockGallery), imageStore).Close()

	imageStore.AssertCalled(t, "GetSizeInMB")
	imageStore.AssertCalled(t, "Purge")
}
