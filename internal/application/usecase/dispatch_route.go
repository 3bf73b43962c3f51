package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/riblet/internal/application/port"
	"github.com/bnema/riblet/internal/domain/entity"
	"github.com/bnema/riblet/internal/domain/rib"
	"github.com/bnema/riblet/internal/domain/route"
	domainurl "github.com/bnema/riblet/internal/domain/url"
	"github.com/bnema/riblet/internal/logging"
)

// ErrNoBuilder is reported when a matched route's factory yields no builder.
var ErrNoBuilder = errors.New("route matched but produced no builder")

// DispatchInput is one outgoing navigation request from the hosting surface.
type DispatchInput struct {
	Target string
}

// DispatchOutput describes how a request was decided.
type DispatchOutput struct {
	Decision  entity.Decision
	Class     entity.TargetClass
	Canonical string
	Route     string
	Context   entity.Context
	Unit      *rib.Riblet
	HandedOff bool
	Bootstrap bool
}

// DispatchOption configures DispatchRouteUseCase.
type DispatchOption func(*DispatchRouteUseCase)

// WithSchemes overrides the governed internal and web schemes.
func WithSchemes(s domainurl.Schemes) DispatchOption {
	return func(uc *DispatchRouteUseCase) {
		uc.schemes = s
	}
}

// WithCanonicalizeOptions sets the canonicalization options.
func WithCanonicalizeOptions(opts domainurl.CanonicalizeOptions) DispatchOption {
	return func(uc *DispatchRouteUseCase) {
		uc.canon = opts
	}
}

// WithRecorder journals every decision.
func WithRecorder(r port.DecisionRecorder) DispatchOption {
	return func(uc *DispatchRouteUseCase) {
		uc.recorder = r
	}
}

// WithStrictContexts makes the host router reject a second unit for the same target.
func WithStrictContexts(strict bool) DispatchOption {
	return func(uc *DispatchRouteUseCase) {
		uc.strict = strict
	}
}

// WithBootstrapURL records the request that initialized the surface.
func WithBootstrapURL(raw string) DispatchOption {
	return func(uc *DispatchRouteUseCase) {
		uc.bootstrapRaw = raw
	}
}

// DispatchRouteUseCase decides outgoing navigations: internal routes are built
// and attached under its host unit, unmatched web and deep-link targets are
// handed to the system browser, and everything else is allowed through.
//
// DecidePolicy and SetBootstrap must be called from the control goroutine.
type DispatchRouteUseCase struct {
	matcher  port.RouteMatcher
	opener   port.ExternalOpener
	recorder port.DecisionRecorder
	schemes  domainurl.Schemes
	canon    domainurl.CanonicalizeOptions
	strict   bool
	host     *rib.Riblet

	bootstrapRaw string
	bootstrap    string
}

// NewDispatchRouteUseCase creates a dispatcher with its own host unit.
func NewDispatchRouteUseCase(
	matcher port.RouteMatcher,
	opener port.ExternalOpener,
	opts ...DispatchOption,
) *DispatchRouteUseCase {
	uc := &DispatchRouteUseCase{
		matcher: matcher,
		opener:  opener,
		schemes: domainurl.DefaultSchemes(),
	}
	for _, opt := range opts {
		opt(uc)
	}

	var routerOpts []rib.RouterOption
	if uc.strict {
		routerOpts = append(routerOpts, rib.WithStrictContexts())
	}
	var hostBuilder rib.BuilderFunc
	hostBuilder = func() *rib.Riblet { return rib.New(hostBuilder, routerOpts...) }
	uc.host = hostBuilder.Build()

	if uc.bootstrapRaw != "" {
		uc.SetBootstrap(uc.bootstrapRaw)
	}
	return uc
}

// Host returns the unit that owns every dispatched child. Listeners added to
// its interactor see WillChange/DidChange around each attach (payload: the
// route.Match) and events bubbled up from attached children.
func (uc *DispatchRouteUseCase) Host() *rib.Riblet {
	return uc.host
}

// SetBootstrap records the request that initialized the surface. Later
// requests for the same canonical target are always allowed.
func (uc *DispatchRouteUseCase) SetBootstrap(raw string) {
	uc.bootstrapRaw = raw
	canonical, err := domainurl.Canonicalize(raw, uc.canon)
	if err != nil {
		uc.bootstrap = ""
		return
	}
	uc.bootstrap = canonical
}

// DecidePolicy decides one navigation request and invokes completion exactly
// once before returning. It never returns an error: ambiguous requests
// resolve to allow (unclassifiable) or external hand-off plus cancel.
func (uc *DispatchRouteUseCase) DecidePolicy(
	ctx context.Context,
	input DispatchInput,
	completion DecisionHandler,
) *DispatchOutput {
	token := NewDecisionToken(completion)
	out := &DispatchOutput{Decision: entity.DecisionCancel}

	defer func() {
		// Also runs while a panicking builder unwinds, so no request stays pending.
		if !token.Resolved() {
			_ = token.Resolve(out.Decision)
		}
		uc.record(ctx, input, out)
	}()

	uc.decide(ctx, input.Target, out)
	_ = token.Resolve(out.Decision)
	return out
}

func (uc *DispatchRouteUseCase) decide(ctx context.Context, raw string, out *DispatchOutput) {
	log := logging.FromContext(ctx)

	canonical, target, err := domainurl.CanonicalizeURL(raw, uc.canon)
	if err != nil {
		log.Debug().Err(err).Str("target", logging.TruncateURL(raw, logURLMaxLen)).Msg("unclassifiable target, allowing")
		out.Class = entity.ClassOther
		out.Decision = entity.DecisionAllow
		return
	}
	out.Canonical = canonical

	if uc.bootstrap != "" && canonical == uc.bootstrap {
		log.Debug().Str("url", logging.TruncateURL(canonical, logURLMaxLen)).Msg("bootstrap request, allowing")
		out.Bootstrap = true
		out.Class = uc.schemes.Classify(target)
		out.Decision = entity.DecisionAllow
		return
	}

	out.Class = uc.schemes.Classify(target)
	if out.Class == entity.ClassOther {
		out.Decision = entity.DecisionAllow
		return
	}

	out.Decision = entity.DecisionCancel

	match, ok := uc.matcher.Match(target)
	if !ok {
		uc.handOff(ctx, canonical, out)
		return
	}
	out.Route = match.Entry.Name

	err = uc.attach(ctx, match, out)
	switch {
	case err == nil:
	case errors.Is(err, rib.ErrDuplicateContext):
		log.Warn().
			Str("url", logging.TruncateURL(canonical, logURLMaxLen)).
			Str("context", out.Context.String()).
			Msg("context already presented, keeping existing unit")
	default:
		log.Warn().Err(err).Str("route", match.Entry.Name).Msg("route could not be built, handing off")
		uc.handOff(ctx, canonical, out)
	}
}

func (uc *DispatchRouteUseCase) attach(ctx context.Context, match route.Match, out *DispatchOutput) error {
	log := logging.FromContext(ctx)

	builder := match.Entry.Factory(match)
	if builder == nil {
		return ErrNoBuilder
	}

	hostInteractor := uc.host.Interactor
	hostInteractor.Broadcast(entity.NewEvent(entity.ActionWillChange, match))

	unit := rib.BuildWithParent(builder, hostInteractor)
	if unit == nil {
		return ErrNoBuilder
	}

	out.Context = entity.ContextFor(match.Canonical)
	previous, err := uc.host.Router.AttachChild(out.Context, unit)
	if err != nil {
		return err
	}
	if previous != nil {
		log.Warn().
			Str("context", out.Context.String()).
			Str("replaced", previous.ID.String()).
			Msg("duplicate context, replacing child")
	}

	out.Unit = unit
	log.Debug().
		Str("route", match.Entry.Name).
		Str("unit", unit.ID.String()).
		Msg("route attached")

	hostInteractor.Broadcast(entity.NewEvent(entity.ActionDidChange, match))
	return nil
}

func (uc *DispatchRouteUseCase) handOff(ctx context.Context, canonical string, out *DispatchOutput) {
	log := logging.FromContext(ctx)
	out.HandedOff = true

	if uc.opener == nil {
		log.Warn().Str("url", logging.TruncateURL(canonical, logURLMaxLen)).Msg("no external opener configured")
		return
	}
	if err := uc.opener.OpenExternally(ctx, canonical); err != nil {
		log.Warn().Err(err).Str("url", logging.TruncateURL(canonical, logURLMaxLen)).Msg("external hand-off failed")
		return
	}
	log.Info().Str("url", logging.TruncateURL(canonical, logURLMaxLen)).Msg("handed off to system browser")
}

func (uc *DispatchRouteUseCase) record(ctx context.Context, input DispatchInput, out *DispatchOutput) {
	if uc.recorder == nil {
		return
	}
	uc.recorder.Record(ctx, entity.DecisionRecord{
		Target:    input.Target,
		Canonical: out.Canonical,
		Class:     out.Class,
		Decision:  out.Decision,
		Route:     out.Route,
		HandedOff: out.HandedOff,
		Bootstrap: out.Bootstrap,
		DecidedAt: time.Now(),
	})
}
