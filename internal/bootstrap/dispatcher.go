package bootstrap

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/riblet/internal/application/port"
	"github.com/bnema/riblet/internal/application/screen"
	"github.com/bnema/riblet/internal/application/usecase"
	"github.com/bnema/riblet/internal/domain/route"
	domainurl "github.com/bnema/riblet/internal/domain/url"
	"github.com/bnema/riblet/internal/infrastructure/config"
	"github.com/bnema/riblet/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/riblet/internal/infrastructure/routefile"
	"github.com/bnema/riblet/internal/logging"
)

// DispatcherInput configures BuildDispatcher.
type DispatcherInput struct {
	Ctx    context.Context
	Config *config.Config
	Opener port.ExternalOpener

	// Registry resolves builder names. Nil uses the built-in screens.
	Registry *route.Registry

	// BootstrapURL is the request that initialized the surface, if any.
	BootstrapURL string

	// PruneJournal deletes journal records past journal.retention_days
	// while the route table compiles.
	PruneJournal bool
}

// Dispatcher is the assembled navigation stack.
type Dispatcher struct {
	UseCase  *usecase.DispatchRouteUseCase
	Routes   *route.Swappable
	Registry *route.Registry

	// Journal is nil when journal.enabled is false.
	Journal *usecase.JournalDecisionsUseCase

	mu    sync.RWMutex
	specs []route.Spec
	db    *sqlite.LazyDB
	timer *StartupTimer
}

// BuildDispatcher compiles the route table and prepares the journal in
// parallel, then wires the dispatcher. The returned cleanup drains the
// journal and closes the database.
func BuildDispatcher(in DispatcherInput) (*Dispatcher, func(), error) {
	ctx := in.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := in.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	registry := in.Registry
	if registry == nil {
		registry = screen.Register(route.NewRegistry())
	}

	d := &Dispatcher{Registry: registry, timer: NewStartupTimer()}

	var table *route.Table
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer d.timer.Track("routes")()
		specs, t, err := CompileRoutes(cfg, registry)
		if err != nil {
			return err
		}
		d.specs, table = specs, t
		return nil
	})

	if cfg.Journal.Enabled {
		d.db = sqlite.NewLazyDB(cfg.Database.Path)
		repo := sqlite.NewLazyDecisionRepository(d.db)
		d.Journal = usecase.NewJournalDecisionsUseCase(logging.WithComponent(ctx, "journal"), repo)

		if in.PruneJournal {
			g.Go(func() error {
				defer d.timer.Track("journal")()
				maxAge := time.Duration(cfg.Journal.RetentionDays) * 24 * time.Hour
				if err := d.Journal.Prune(gctx, maxAge); err != nil {
					// The journal is best effort; dispatch still works without it.
					logging.FromContext(ctx).Warn().Err(err).Msg("journal prune failed")
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		d.close()
		return nil, func() {}, err
	}

	d.Routes = route.NewSwappable(table)

	opts := []usecase.DispatchOption{
		usecase.WithSchemes(domainurl.Schemes{
			Internal: cfg.Dispatcher.InternalSchemes,
			Web:      cfg.Dispatcher.WebSchemes,
		}),
		usecase.WithCanonicalizeOptions(domainurl.CanonicalizeOptions{
			ExtraTrackingParams: cfg.Dispatcher.ExtraTrackingParams,
		}),
		usecase.WithStrictContexts(cfg.Dispatcher.StrictContexts),
		usecase.WithBootstrapURL(in.BootstrapURL),
	}
	if d.Journal != nil {
		opts = append(opts, usecase.WithRecorder(d.Journal))
	}
	d.UseCase = usecase.NewDispatchRouteUseCase(d.Routes, in.Opener, opts...)

	d.timer.Log(ctx, zerolog.DebugLevel)
	logging.FromContext(ctx).Debug().
		Int("routes", table.Len()).
		Bool("journal", d.Journal != nil).
		Msg("dispatcher ready")

	return d, d.close, nil
}

// Specs returns the route specs the current table was compiled from.
func (d *Dispatcher) Specs() []route.Spec {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]route.Spec(nil), d.specs...)
}

// Reload recompiles routes from cfg and swaps the table in. On error the
// previous table stays in service. Scheme, tracking and strictness settings
// only take effect on restart.
func (d *Dispatcher) Reload(ctx context.Context, cfg *config.Config) error {
	specs, table, err := CompileRoutes(cfg, d.Registry)
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.specs = specs
	d.Routes.Store(table)
	d.mu.Unlock()

	logging.FromContext(ctx).Info().Int("routes", table.Len()).Msg("route table reloaded")
	return nil
}

func (d *Dispatcher) close() {
	if d.Journal != nil {
		d.Journal.Close()
	}
	if d.db != nil {
		_ = d.db.Close()
	}
}

// LoadRouteSpecs returns the configured routes followed by those of
// routes_file, in match order.
func LoadRouteSpecs(cfg *config.Config) ([]route.Spec, error) {
	specs := make([]route.Spec, 0, len(cfg.Routes))
	for _, r := range cfg.Routes {
		specs = append(specs, route.Spec{Pattern: r.Pattern, Builder: r.Builder, Title: r.Title})
	}

	if cfg.RoutesFile == "" {
		return specs, nil
	}
	file, err := routefile.LoadFile(cfg.RoutesFile)
	if err != nil {
		return nil, fmt.Errorf("load routes file: %w", err)
	}
	return append(specs, file.Specs()...), nil
}

// CompileRoutes loads and compiles the route table described by cfg.
func CompileRoutes(cfg *config.Config, registry *route.Registry) ([]route.Spec, *route.Table, error) {
	specs, err := LoadRouteSpecs(cfg)
	if err != nil {
		return nil, nil, err
	}
	table, err := registry.Table(specs)
	if err != nil {
		return nil, nil, err
	}
	return specs, table, nil
}
