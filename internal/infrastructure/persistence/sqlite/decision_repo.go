package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/riblet/internal/domain/entity"
	"github.com/bnema/riblet/internal/domain/repository"
	"github.com/bnema/riblet/internal/logging"
)

const logURLMaxLen = 60

const (
	insertDecisionSQL = `INSERT INTO decisions
    (target, canonical, class, decision, route, handed_off, bootstrap, decided_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	recentDecisionsSQL = `SELECT id, target, canonical, class, decision, route, handed_off, bootstrap, decided_at
FROM decisions
ORDER BY decided_at DESC, id DESC
LIMIT ?`

	deleteDecisionsBeforeSQL = `DELETE FROM decisions WHERE decided_at < ?`
)

type decisionRepo struct {
	db *sql.DB
}

// NewDecisionRepository creates a new SQLite-backed decision journal.
func NewDecisionRepository(db *sql.DB) repository.DecisionRepository {
	return &decisionRepo{db: db}
}

func (r *decisionRepo) Save(ctx context.Context, record *entity.DecisionRecord) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("url", logging.TruncateURL(record.Target, logURLMaxLen)).Msg("saving decision")

	decidedAt := record.DecidedAt
	if decidedAt.IsZero() {
		decidedAt = time.Now()
	}

	res, err := r.db.ExecContext(ctx, insertDecisionSQL,
		record.Target,
		record.Canonical,
		record.Class.String(),
		record.Decision.String(),
		record.Route,
		record.HandedOff,
		record.Bootstrap,
		decidedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert decision: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert decision: %w", err)
	}
	record.ID = id
	record.DecidedAt = decidedAt
	return nil
}

func (r *decisionRepo) GetRecent(ctx context.Context, limit int) ([]*entity.DecisionRecord, error) {
	rows, err := r.db.QueryContext(ctx, recentDecisionsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("query decisions: %w", err)
	}
	defer rows.Close()

	records := make([]*entity.DecisionRecord, 0, limit)
	for rows.Next() {
		var (
			rec             entity.DecisionRecord
			class, decision string
			decidedAt       int64
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.Target,
			&rec.Canonical,
			&class,
			&decision,
			&rec.Route,
			&rec.HandedOff,
			&rec.Bootstrap,
			&decidedAt,
		); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		rec.Class = entity.ParseTargetClass(class)
		rec.Decision = entity.ParseDecision(decision)
		rec.DecidedAt = time.UnixMilli(decidedAt)
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate decisions: %w", err)
	}
	return records, nil
}

func (r *decisionRepo) DeleteOlderThan(ctx context.Context, before time.Time) error {
	res, err := r.db.ExecContext(ctx, deleteDecisionsBeforeSQL, before.UnixMilli())
	if err != nil {
		return fmt.Errorf("delete decisions: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		logging.FromContext(ctx).Debug().Int64("count", n).Msg("pruned journal")
	}
	return nil
}
