// Package port defines the boundaries between use cases and adapters.
package port

import (
	"context"
	"net/url"

	"github.com/bnema/riblet/internal/domain/entity"
	"github.com/bnema/riblet/internal/domain/route"
)

//go:generate mockgen -source=navigation.go -destination=mocks/mock_navigation.go -package=mocks

// ExternalOpener hands a URI to the system browser.
type ExternalOpener interface {
	OpenExternally(ctx context.Context, uri string) error
}

// RouteMatcher resolves canonical targets against the route table.
// Implementations must not mutate shared state during Match.
type RouteMatcher interface {
	Match(target *url.URL) (route.Match, bool)
}

// DecisionRecorder receives every navigation decision once it is made.
// Record must not block the caller.
type DecisionRecorder interface {
	Record(ctx context.Context, record entity.DecisionRecord)
}
