package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/riblet/internal/domain/entity"
	repomocks "github.com/bnema/riblet/internal/domain/repository/mocks"
)

func TestJournal_PersistsQueuedRecordsOnClose(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockDecisionRepository(ctrl)

	var saved []string
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *entity.DecisionRecord) error {
		saved = append(saved, r.Canonical)
		return nil
	}).Times(2)

	uc := NewJournalDecisionsUseCase(ctx, repo)
	uc.Record(ctx, entity.DecisionRecord{Canonical: "fave://item/1"})
	uc.Record(ctx, entity.DecisionRecord{Canonical: "https://example.com/"})
	uc.Close()

	assert.Equal(t, []string{"fave://item/1", "https://example.com/"}, saved)
}

func TestJournal_SaveErrorDoesNotStopWorker(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockDecisionRepository(ctrl)

	gomock.InOrder(
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full")),
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
	)

	uc := NewJournalDecisionsUseCase(ctx, repo)
	uc.Record(ctx, entity.DecisionRecord{Canonical: "a"})
	uc.Record(ctx, entity.DecisionRecord{Canonical: "b"})
	uc.Close()
}

func TestJournal_RecordAfterCloseIsDropped(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockDecisionRepository(ctrl)

	uc := NewJournalDecisionsUseCase(ctx, repo)
	uc.Close()
	uc.Close()
	uc.Record(ctx, entity.DecisionRecord{Canonical: "late"})
}

func TestJournal_Recent(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockDecisionRepository(ctrl)
	want := []*entity.DecisionRecord{{ID: 2}, {ID: 1}}
	repo.EXPECT().GetRecent(gomock.Any(), 20).Return(want, nil)

	uc := NewJournalDecisionsUseCase(ctx, repo)
	defer uc.Close()

	got, err := uc.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestJournal_Prune(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockDecisionRepository(ctrl)
	repo.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, before time.Time) error {
		assert.WithinDuration(t, time.Now().Add(-time.Hour), before, time.Minute)
		return nil
	})

	uc := NewJournalDecisionsUseCase(ctx, repo)
	defer uc.Close()

	require.NoError(t, uc.Prune(ctx, time.Hour))
	require.NoError(t, uc.Prune(ctx, 0))
}
