// Package cli holds the shared state of the dockyard command line.
package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/bootstrap"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/build"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
)

const logFileName = "dockyard.log"

// Options tunes how the app is initialized.
type Options struct {
	// LogToFile sends logs to a file, for commands that own the terminal.
	LogToFile bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info
	Engine        *bootstrap.Engine

	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration, sets up logging and prepares the engine.
func NewApp(opts Options) (*App, error) {
	timer := bootstrap.NewPhaseTimer()

	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()
	timer.Mark("config")

	logger, cleanup, err := newLogger(cfg, opts)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithContext(context.Background(), logger)
	timer.Mark("logging")

	engine, err := bootstrap.NewEngine(ctx, cfg)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("prepare engine: %w", err)
	}
	timer.Mark("engine")
	timer.Log(ctx, zerolog.DebugLevel)

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		Engine:        engine,
		ctx:           ctx,
		logCleanup:    cleanup,
	}, nil
}

func newLogger(cfg *config.Config, opts Options) (zerolog.Logger, func(), error) {
	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}

	path := cfg.Logging.File
	if path == "" && opts.LogToFile {
		dir, err := config.GetLogDir()
		if err != nil {
			return zerolog.Nop(), func() {}, fmt.Errorf("resolve log dir: %w", err)
		}
		path = filepath.Join(dir, logFileName)
	}
	if path == "" {
		return logging.New(logCfg), func() {}, nil
	}

	logger, cleanup, err := logging.NewWithFile(logCfg, path)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}
	return logger, cleanup, nil
}

// Ctx returns the context carrying the app logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.Engine != nil {
		return a.Engine.Close()
	}
	return nil
}
