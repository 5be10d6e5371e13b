package main

import (
	"github.com/AllenDang/giu"
	"github.com/OpenDiablo2/dialog"
	"os"
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/backend"
	"vincit.fi/image-gallery/common"
	"vincit.fi/image-gallery/common/logger"
	"vincit.fi/image-gallery/gallery"
	ui "vincit.fi/image-gallery/ui/giu"
)

func main() {
	params := common.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	if params.RootPath() == "" {
		directory, err := dialog.Directory().Title("Select image directory").Browse()
		if err != nil {
			logger.Error.Printf("No directory selected: %s", err)
			os.Exit(1)
		}
		params.SetRootPath(directory)
	}

	config, err := common.LoadOptionalConfig(params.ConfigPath())
	if err != nil {
		logger.Error.Fatal(err)
	}
	options, err := gallery.OptionsFromConfig(config.Merge(params))
	if err != nil {
		logger.Error.Fatal(err)
	}

	brokers := backend.InitializeEventBrokers(params.EventQueueSize())
	galleryInstance := gallery.NewGallery(brokers.Broker, options)
	services := backend.InitializeServices(options.ThumbnailWidth, brokers, galleryInstance)
	defer services.Close()
	services.Subscribe(brokers.Broker)

	if params.Watch() {
		if err := services.WatchDirectory(brokers, params.RootPath()); err != nil {
			logger.Warn.Printf("Could not watch '%s': %s", params.RootPath(), err)
		}
	}

	gui := ui.NewUi(params, brokers.Broker, galleryInstance, services.ImageCache)
	connectGui(brokers, gui)
	gui.Run()
}

func connectGui(brokers *backend.Brokers, gui api.Gui) {
	brokers.Broker.SetGuiUpdater(giu.Update)
	brokers.Broker.ConnectToGui(api.GalleryReady, gui.Ready)
	brokers.Broker.ConnectToGui(api.GalleryImageChanged, gui.ImageChanged)
	brokers.Broker.ConnectToGui(api.DirectoryChanged, gui.DirectoryChanged)
	brokers.Broker.ConnectToGui(api.ProcessStatusUpdated, gui.UpdateProgress)
	brokers.Broker.ConnectToGui(api.ShowError, gui.ShowError)
}
