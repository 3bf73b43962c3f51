// Package cli holds the state shared by riblet's commands.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/riblet/internal/application/port"
	"github.com/bnema/riblet/internal/application/usecase"
	"github.com/bnema/riblet/internal/bootstrap"
	"github.com/bnema/riblet/internal/cli/styles"
	"github.com/bnema/riblet/internal/domain/build"
	"github.com/bnema/riblet/internal/infrastructure/config"
	"github.com/bnema/riblet/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/riblet/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// Context with logger
	ctx      context.Context
	cleanups []func()
}

// NewApp loads configuration and sets up the logger. configFile overrides
// the XDG config location when non-empty.
func NewApp(configFile string) (*App, error) {
	mgr, err := newConfigManager(configFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	ctx := logging.WithContext(context.Background(), logger)

	logger.Debug().Str("config", mgr.GetConfigFile()).Msg("configuration loaded")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		ctx:           ctx,
	}, nil
}

func newConfigManager(configFile string) (*config.Manager, error) {
	if configFile != "" {
		return config.NewManagerWithFile(configFile)
	}
	return config.NewManager()
}

// DispatcherOptions selects how the dispatcher is assembled.
type DispatcherOptions struct {
	Opener       port.ExternalOpener
	BootstrapURL string
	// NoJournal disables the journal regardless of configuration.
	NoJournal    bool
	PruneJournal bool
}

// Dispatcher assembles the dispatcher from the loaded configuration. Its
// resources are released by Close.
func (a *App) Dispatcher(opts DispatcherOptions) (*bootstrap.Dispatcher, error) {
	cfg := a.Config
	if opts.NoJournal {
		cfg = a.ConfigManager.Get()
		cfg.Journal.Enabled = false
	}

	d, cleanup, err := bootstrap.BuildDispatcher(bootstrap.DispatcherInput{
		Ctx:          a.ctx,
		Config:       cfg,
		Opener:       opts.Opener,
		BootstrapURL: opts.BootstrapURL,
		PruneJournal: opts.PruneJournal,
	})
	if err != nil {
		return nil, err
	}
	a.cleanups = append(a.cleanups, cleanup)
	return d, nil
}

// ErrJournalDisabled is returned by Journal when journal.enabled is false.
var ErrJournalDisabled = errors.New("decision journal is disabled (journal.enabled = false)")

// Journal opens the decision journal on its own, without a route table.
func (a *App) Journal() (*usecase.JournalDecisionsUseCase, error) {
	if !a.Config.Journal.Enabled {
		return nil, ErrJournalDisabled
	}

	db := sqlite.NewLazyDB(a.Config.Database.Path)
	repo := sqlite.NewLazyDecisionRepository(db)
	journal := usecase.NewJournalDecisionsUseCase(logging.WithComponent(a.ctx, "journal"), repo)

	a.cleanups = append(a.cleanups, func() {
		journal.Close()
		_ = db.Close()
	})
	return journal, nil
}

// Close releases all resources.
func (a *App) Close() error {
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		a.cleanups[i]()
	}
	a.cleanups = nil
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
