package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/riblet/internal/domain/entity"
	"github.com/bnema/riblet/internal/domain/repository"
	"github.com/bnema/riblet/internal/logging"
)

const (
	// journalQueueSize is the buffer size for the async journal queue.
	// If the queue is full, new records are dropped with a warning.
	journalQueueSize = 100

	// logURLMaxLen is the max length for URLs in log messages.
	logURLMaxLen = 60
)

// JournalDecisionsUseCase persists navigation decisions off the control goroutine.
type JournalDecisionsUseCase struct {
	repo repository.DecisionRepository

	queue     chan entity.DecisionRecord
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	ctx       context.Context // Base context for background worker
}

// NewJournalDecisionsUseCase starts the background writer. ctx supplies the
// worker's logger. Call Close to drain and stop it.
func NewJournalDecisionsUseCase(ctx context.Context, repo repository.DecisionRepository) *JournalDecisionsUseCase {
	uc := &JournalDecisionsUseCase{
		repo:  repo,
		queue: make(chan entity.DecisionRecord, journalQueueSize),
		done:  make(chan struct{}),
		ctx:   ctx,
	}

	uc.wg.Add(1)
	go uc.worker()

	return uc
}

// Record queues a decision without blocking. Records arriving after Close
// or while the queue is full are dropped.
func (uc *JournalDecisionsUseCase) Record(ctx context.Context, record entity.DecisionRecord) {
	select {
	case <-uc.done:
		return
	default:
	}

	select {
	case uc.queue <- record:
	default:
		logging.FromContext(ctx).Warn().
			Str("url", logging.TruncateURL(record.Canonical, logURLMaxLen)).
			Msg("journal queue full, dropping record")
	}
}

// Recent returns the most recent journaled decisions, newest first.
func (uc *JournalDecisionsUseCase) Recent(ctx context.Context, limit int) ([]*entity.DecisionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	records, err := uc.repo.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal: %w", err)
	}
	return records, nil
}

// Prune removes records older than maxAge.
func (uc *JournalDecisionsUseCase) Prune(ctx context.Context, maxAge time.Duration) error {
	if maxAge <= 0 {
		return nil
	}
	if err := uc.repo.DeleteOlderThan(ctx, time.Now().Add(-maxAge)); err != nil {
		return fmt.Errorf("failed to prune journal: %w", err)
	}
	return nil
}

// Close shuts down the background worker and drains any pending records.
func (uc *JournalDecisionsUseCase) Close() {
	uc.closeOnce.Do(func() {
		close(uc.done)
		uc.wg.Wait()
	})
}

func (uc *JournalDecisionsUseCase) worker() {
	defer uc.wg.Done()

	log := logging.FromContext(uc.ctx).With().
		Str("component", "journal-worker").
		Logger()

	drainQueue := func() {
		for {
			select {
			case record := <-uc.queue:
				uc.persist(record)
			default:
				return
			}
		}
	}

	for {
		select {
		case record := <-uc.queue:
			uc.persist(record)
		case <-uc.done:
			log.Debug().Int("remaining", len(uc.queue)).Msg("draining journal queue")
			drainQueue()
			log.Debug().Msg("journal worker shutdown complete")
			return
		}
	}
}

func (uc *JournalDecisionsUseCase) persist(record entity.DecisionRecord) {
	if err := uc.repo.Save(uc.ctx, &record); err != nil {
		logging.FromContext(uc.ctx).Warn().Err(err).
			Str("url", logging.TruncateURL(record.Canonical, logURLMaxLen)).
			Msg("failed to save decision")
	}
}
