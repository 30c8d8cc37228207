package service

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/xolan/sip/internal/config"
	"github.com/xolan/sip/internal/diag"
	"github.com/xolan/sip/internal/logstore"
	"github.com/xolan/sip/internal/osutil"
	"github.com/xolan/sip/internal/storage"
	"github.com/xolan/sip/internal/timeutil"
	"github.com/xolan/sip/internal/undo"
)

// Services holds all service instances used by the application
type Services struct {
	Log     *LogService
	Stats   *StatsService
	Catalog *CatalogService
	Config  *ConfigService
}

// Options adjusts how services are built; zero values pick defaults.
type Options struct {
	Now    func() time.Time
	Logger *log.Logger
}

// NewServices creates services from the default config location
func NewServices(opts Options) (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	dataDir, err := osutil.AppDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	if opts.Logger == nil {
		opts.Logger = diag.Stderr(cfg.LogLevel)
	}

	return NewServicesWithPaths(dataDir, configPath, cfg, opts)
}

// NewServicesWithPaths creates services over explicit paths (useful for testing).
// A catalog that fails to load does not fail construction; CatalogService
// reports the error when asked.
func NewServicesWithPaths(dataDir, configPath string, cfg config.Config, opts Options) (*Services, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = diag.Discard()
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	cal := timeutil.NewCalendar(opts.Now, loc, cfg.WeekStart())

	backend, err := storage.Open(cfg.Backend, dataDir)
	if err != nil {
		return nil, err
	}
	store := logstore.New(backend, opts.Logger)

	return &Services{
		Log:     NewLogService(store, backend, filepath.Join(dataDir, undo.TokenFile), cfg, cal, opts.Logger),
		Stats:   NewStatsService(store, cfg, cal),
		Catalog: NewCatalogService(cfg.CatalogPath),
		Config:  NewConfigService(configPath, cfg),
	}, nil
}
