// Package cli wires configuration, logging and the clipboard backend for the
// command-line interface.
package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bnema/clipfetch/internal/application/port"
	"github.com/bnema/clipfetch/internal/application/usecase"
	"github.com/bnema/clipfetch/internal/cli/styles"
	"github.com/bnema/clipfetch/internal/domain/build"
	infraclip "github.com/bnema/clipfetch/internal/infrastructure/clipboard"
	"github.com/bnema/clipfetch/internal/infrastructure/config"
	"github.com/bnema/clipfetch/internal/logging"
	"github.com/bnema/clipfetch/internal/ui/mainloop"
	"github.com/bnema/clipfetch/pkg/clipboard"
)

// Options are the command-line overrides applied on top of the config file.
type Options struct {
	// Backend overrides clipboard.backend when non-empty.
	Backend string
	// LogLevel overrides logging.level when non-empty.
	LogLevel string
	// LogToStderr also writes logs to stderr. Off for full-screen views.
	LogToStderr bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Queue runs worker completions and config reloads on the host loop.
	Queue     *mainloop.Queue
	Coalescer *mainloop.Coalescer

	opts      Options
	clipboard *clipboard.Service
	pumper    infraclip.Pumper

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and sets up logging. The clipboard backend
// is opened lazily by Clipboard so commands that never read it work on
// platforms without one.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if opts.Backend != "" {
		mgr.Set("clipboard.backend", opts.Backend)
	}
	if opts.LogLevel != "" {
		mgr.Set("logging.level", opts.LogLevel)
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Path:          ResolveLogFile(cfg),
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			WriteToStderr: opts.LogToStderr,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)
	mgr.SetLogger(logger.With().Str("component", "config").Logger())
	logger.Debug().Str("config", mgr.ConfigFile()).Str("backend", cfg.Clipboard.Backend).Msg("configuration loaded")

	queue := mainloop.NewQueue(nil)

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		Queue:      queue,
		Coalescer:  mainloop.NewCoalescer(queue.Post),
		opts:       opts,
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// ResolveLogFile returns the absolute log file path, or "" when file logging
// is off. Relative paths live in the XDG state log directory.
func ResolveLogFile(cfg *config.Config) string {
	path := cfg.Logging.File
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	dir, err := config.GetLogDir()
	if err != nil {
		return path
	}
	return filepath.Join(dir, path)
}

// Clipboard opens the configured backend on first use.
func (a *App) Clipboard() (*clipboard.Service, error) {
	if a.clipboard != nil {
		return a.clipboard, nil
	}

	cc := a.Config.Clipboard
	backend, pumper, err := infraclip.Open(a.ctx, infraclip.Options{
		Kind:             cc.Backend,
		Worker:           cc.Worker,
		MaxInFlight:      int64(cc.MaxInFlight),
		Post:             a.Queue.Post,
		WebEmuSource:     cc.WebEmu.Source,
		WebEmuPermission: infraclip.Permission(cc.WebEmu.Permission),
		WebEmuLatency:    cc.WebEmu.LatencyTicks,
	})
	if err != nil {
		return nil, err
	}

	a.clipboard = clipboard.New(backend)
	a.pumper = pumper
	a.ctx = logging.WithBackend(a.ctx, backend.Name())
	return a.clipboard, nil
}

// HostLoop returns the loop that runs posted callbacks and pumps the backend
// event loop. Call after Clipboard.
func (a *App) HostLoop() port.HostLoop {
	return &hostLoop{queue: a.Queue, pumper: a.pumper}
}

// DisplayUseCase builds the watch use case from the current config.
func (a *App) DisplayUseCase() (*usecase.DisplayClipboardUseCase, error) {
	svc, err := a.Clipboard()
	if err != nil {
		return nil, err
	}
	return usecase.NewDisplayClipboardUseCase(svc, usecase.DisplayClipboardOptions{
		Placeholder:  a.Config.Display.Placeholder,
		FetchTimeout: FetchTimeout(a.Config),
	}), nil
}

// FetchOnceUseCase builds the one-shot read use case.
func (a *App) FetchOnceUseCase() (*usecase.FetchOnceUseCase, error) {
	svc, err := a.Clipboard()
	if err != nil {
		return nil, err
	}
	return usecase.NewFetchOnceUseCase(svc, a.HostLoop(), 0), nil
}

// FetchTimeout converts clipboard.fetch_timeout_ms to a duration.
func FetchTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Clipboard.FetchTimeoutMs) * time.Millisecond
}

// Close releases all resources.
func (a *App) Close() error {
	if a.Coalescer != nil {
		a.Coalescer.Destroy()
	}
	if a.Queue != nil {
		a.Queue.Destroy()
	}
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
