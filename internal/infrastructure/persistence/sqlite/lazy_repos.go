package sqlite

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/riblet/internal/application/port"
	"github.com/bnema/riblet/internal/domain/entity"
	"github.com/bnema/riblet/internal/domain/repository"
)

// LazyDecisionRepository wraps the decision journal with lazy database
// initialization, so commands that never journal never open the database.
type LazyDecisionRepository struct {
	provider port.DatabaseProvider
	repo     repository.DecisionRepository
	once     sync.Once
	initErr  error
}

// NewLazyDecisionRepository creates a lazy-loading decision repository.
func NewLazyDecisionRepository(provider port.DatabaseProvider) repository.DecisionRepository {
	return &LazyDecisionRepository{provider: provider}
}

func (r *LazyDecisionRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewDecisionRepository(db)
	})
	return r.initErr
}

func (r *LazyDecisionRepository) Save(ctx context.Context, record *entity.DecisionRecord) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, record)
}

func (r *LazyDecisionRepository) GetRecent(ctx context.Context, limit int) ([]*entity.DecisionRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.GetRecent(ctx, limit)
}

func (r *LazyDecisionRepository) DeleteOlderThan(ctx context.Context, before time.Time) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.DeleteOlderThan(ctx, before)
}
