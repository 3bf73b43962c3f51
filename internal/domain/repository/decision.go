package repository

import (
	"context"
	"time"

	"github.com/bnema/riblet/internal/domain/entity"
)

//go:generate mockgen -source=decision.go -destination=mocks/mock_decision.go -package=mocks

// DecisionRepository defines persistence for the navigation decision journal.
type DecisionRepository interface {
	// Save appends a record and sets its ID.
	Save(ctx context.Context, record *entity.DecisionRecord) error

	// GetRecent retrieves the newest records first.
	GetRecent(ctx context.Context, limit int) ([]*entity.DecisionRecord, error)

	// DeleteOlderThan removes records decided before the given time.
	DeleteOlderThan(ctx context.Context, before time.Time) error
}
