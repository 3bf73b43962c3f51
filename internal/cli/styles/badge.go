package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/riblet/internal/domain/entity"
)

func (t *Theme) badge(text string, bg lipgloss.Color) string {
	return t.Badge.Background(bg).Render(text)
}

// DecisionBadge renders allow in the accent color and cancel in the warning color.
func (t *Theme) DecisionBadge(d entity.Decision) string {
	if d == entity.DecisionAllow {
		return t.badge(d.String(), t.Success)
	}
	return t.badge(d.String(), t.Warning)
}

// ClassBadge renders a target class badge. Unclassified targets get a muted chip.
func (t *Theme) ClassBadge(c entity.TargetClass) string {
	if c == entity.ClassOther {
		return t.BadgeMuted.Render(c.String())
	}
	return t.Badge.Render(c.String())
}

var relativeUnits = []struct {
	limit  time.Duration
	unit   time.Duration
	suffix string
}{
	{time.Hour, time.Minute, "m"},
	{24 * time.Hour, time.Hour, "h"},
	{7 * 24 * time.Hour, 24 * time.Hour, "d"},
	{365 * 24 * time.Hour, 7 * 24 * time.Hour, "w"},
}

// RelativeTime formats the age of a journal entry, e.g. "5m ago".
func RelativeTime(tm time.Time) string {
	diff := time.Since(tm)
	if diff < time.Minute {
		return "just now"
	}
	for _, u := range relativeUnits {
		if diff < u.limit {
			return fmt.Sprintf("%d%s ago", int(diff/u.unit), u.suffix)
		}
	}
	return fmt.Sprintf("%dy ago", int(diff/(365*24*time.Hour)))
}
