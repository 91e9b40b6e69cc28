package app

import (
	"io"
	"log/slog"

	"trustchain/internal/domain"
	"trustchain/internal/logging"
	authorsvc "trustchain/internal/services/author"
	devicesvc "trustchain/internal/services/device"
	"trustchain/internal/store"
)

// App bundles the stores and services commands use.
type App struct {
	Config  Config
	Log     *slog.Logger
	KeyPath string
	Devices domain.DeviceKeyService
	Author  *authorsvc.Service
}

// New constructs the dependency graph from cfg. Logs go to logOut.
func New(cfg Config, logOut io.Writer, opts ...store.Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log := logging.New(level, logOut)

	keyStore := store.NewDeviceKeyFileStore(cfg.Home, opts...)
	devices := devicesvc.New(keyStore)

	log.Debug("app ready", "home", cfg.Home, "output", cfg.Output, "encoding", cfg.Encoding)
	return &App{
		Config:  cfg,
		Log:     log,
		KeyPath: keyStore.Path(),
		Devices: devices,
		Author:  authorsvc.New(devices, log),
	}, nil
}
