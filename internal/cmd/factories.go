package cmd

import (
	"io"

	adaptercodec "satd/internal/adapters/codec"
	adapterconsole "satd/internal/adapters/console"
	adaptermemory "satd/internal/adapters/memory"
	adapterstorage "satd/internal/adapters/storage"
	"satd/internal/ports"
	"satd/internal/services"
)

// ContainerOptions configures the wiring of a Container
type ContainerOptions struct {
	DBPath        string
	Out           io.Writer
	QueueCapacity int
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	ProactiveService *services.ProactiveService

	// Adapters
	Codec   *adaptercodec.GSMCodec
	Console *adapterconsole.Console

	// Internal - for cleanup only
	settingsStore ports.SettingsStore
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	settingsStore, err := adapterstorage.NewSQLiteSettingsStore(opts.DBPath)
	if err != nil {
		return nil, err
	}

	codec := adaptercodec.NewGSMCodec()
	console := adapterconsole.NewConsole(opts.Out)

	proactiveService := services.NewProactiveService(services.ProactiveServiceDeps{
		Browser:    console,
		Calls:      console,
		Channels:   console,
		Codec:      codec,
		Dispatcher: console,
		Emitter:    console,
		Queue:      adaptermemory.NewCommandQueue(opts.QueueCapacity),
		Settings:   settingsStore,
	})

	return &Container{
		Codec:            codec,
		Console:          console,
		ProactiveService: proactiveService,
		settingsStore:    settingsStore,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.settingsStore != nil {
		return c.settingsStore.Close()
	}
	return nil
}
