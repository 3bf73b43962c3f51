package styles

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/riblet/internal/domain/build"
	"github.com/bnema/riblet/internal/domain/entity"
	"github.com/bnema/riblet/internal/domain/route"
)

func TestDecisionRenderer_Render(t *testing.T) {
	r := NewDecisionRenderer(NewTheme())

	out := r.Render(entity.DecisionRecord{
		Target:    "fave://item/1?utm_source=x",
		Canonical: "fave://item/1",
		Class:     entity.ClassInternal,
		Decision:  entity.DecisionCancel,
		Route:     "item",
	}, "unit-123")
	assert.Contains(t, out, "cancel")
	assert.Contains(t, out, "fave://item/1")
	assert.Contains(t, out, "attached item")
	assert.Contains(t, out, "unit-123")
	assert.Contains(t, out, "from fave://item/1?utm_source=x")

	out = r.Render(entity.DecisionRecord{Target: "https://example.com", Canonical: "https://example.com",
		Class: entity.ClassWeb, Decision: entity.DecisionCancel, HandedOff: true}, "")
	assert.Contains(t, out, "handed off")
	assert.NotContains(t, out, "from ")

	out = r.Render(entity.DecisionRecord{Class: entity.ClassOther, Decision: entity.DecisionAllow}, "")
	assert.Contains(t, out, "allow")
	assert.Contains(t, out, "(empty)")
}

func TestDecisionRenderer_RenderJournal(t *testing.T) {
	r := NewDecisionRenderer(NewTheme())
	assert.Contains(t, r.RenderJournal(nil), "No decisions")

	out := r.RenderJournal([]*entity.DecisionRecord{{
		Canonical: "https://example.com/" + strings.Repeat("a", 100),
		Class:     entity.ClassWeb,
		Decision:  entity.DecisionCancel,
		HandedOff: true,
		DecidedAt: time.Now().Add(-2 * time.Hour),
	}})
	assert.Contains(t, out, "Decision journal")
	assert.Contains(t, out, "2h ago")
	assert.Contains(t, out, "…")
}

func TestDecisionRenderer_RenderRoutes(t *testing.T) {
	r := NewDecisionRenderer(NewTheme())
	out := r.RenderRoutes([]route.Spec{{Pattern: "fave://item/{id}", Builder: "page", Title: "item"}}, []string{"page", "webview"})
	assert.Contains(t, out, "fave://item/{id}")
	assert.Contains(t, out, "page, webview")

	assert.Contains(t, r.RenderRoutes(nil, nil), "No routes configured")
}

func TestRelativeTime(t *testing.T) {
	assert.Equal(t, "just now", RelativeTime(time.Now()))
	assert.Equal(t, "5m ago", RelativeTime(time.Now().Add(-5*time.Minute-time.Second)))
	assert.Equal(t, "1d ago", RelativeTime(time.Now().Add(-25*time.Hour)))
	assert.Equal(t, "2w ago", RelativeTime(time.Now().Add(-15*24*time.Hour)))
	assert.Equal(t, "1y ago", RelativeTime(time.Now().Add(-400*24*time.Hour)))
}

func TestAboutRenderer(t *testing.T) {
	out := NewAboutRenderer(NewTheme()).Render(build.Info{Version: "v1.2.3", Commit: "abc"})
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, build.RepoURL())
}
