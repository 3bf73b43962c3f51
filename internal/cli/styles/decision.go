package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/riblet/internal/domain/entity"
	"github.com/bnema/riblet/internal/domain/route"
)

const maxTargetWidth = 60

// DecisionRenderer renders dispatch decisions.
type DecisionRenderer struct {
	theme *Theme
}

// NewDecisionRenderer creates a decision renderer.
func NewDecisionRenderer(theme *Theme) *DecisionRenderer {
	return &DecisionRenderer{theme: theme}
}

// Render renders one decision. unitID is the attached unit, if any.
func (r *DecisionRenderer) Render(rec entity.DecisionRecord, unitID string) string {
	t := r.theme
	head := fmt.Sprintf("%s %s %s",
		t.DecisionBadge(rec.Decision),
		t.ClassBadge(rec.Class),
		t.Normal.Render(displayTarget(rec)),
	)

	var details []string
	switch {
	case rec.Bootstrap:
		details = append(details, t.Subtle.Render("bootstrap request"))
	case unitID != "":
		details = append(details, fmt.Sprintf("%s %s %s",
			t.Highlight.Render(IconTree), t.Subtle.Render("attached "+rec.Route), t.Subtle.Render(unitID)))
	case rec.Route != "":
		details = append(details, fmt.Sprintf("%s %s", t.WarningStyle.Render(IconWarning),
			t.Subtle.Render("kept existing unit for "+rec.Route)))
	}
	if rec.HandedOff {
		details = append(details, fmt.Sprintf("%s %s", t.Highlight.Render(IconExternal),
			t.Subtle.Render("handed off to system browser")))
	}
	if rec.Canonical != "" && rec.Canonical != rec.Target {
		details = append(details, t.Subtle.Render("from "+truncate(rec.Target, maxTargetWidth)))
	}

	if len(details) == 0 {
		return head
	}
	return head + "\n  " + strings.Join(details, "\n  ")
}

// DryRunNote renders the hand-off a dry run skipped.
func (r *DecisionRenderer) DryRunNote(uri string) string {
	return fmt.Sprintf("%s %s", r.theme.WarningStyle.Render(IconExternal),
		r.theme.Subtle.Render("dry run, would open "+truncate(uri, maxTargetWidth)))
}

// RenderJournal renders journaled decisions as a table, newest first.
func (r *DecisionRenderer) RenderJournal(records []*entity.DecisionRecord) string {
	if len(records) == 0 {
		return r.theme.Subtle.Render("No decisions journaled yet.")
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		status := rec.Decision.String()
		if rec.HandedOff {
			status += " " + IconExternal
		}
		rows = append(rows, []string{
			RelativeTime(rec.DecidedAt),
			status,
			rec.Class.String(),
			rec.Route,
			truncate(displayTarget(*rec), maxTargetWidth),
		})
	}

	header := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconDatabase), r.theme.Title.Render("Decision journal"))
	tbl := NewStyledTable(r.theme, []string{"When", "Decision", "Class", "Route", "Target"}, rows)
	return lipgloss.JoinVertical(lipgloss.Left, header, tbl.String())
}

// RenderRoutes renders the route table in match order.
func (r *DecisionRenderer) RenderRoutes(specs []route.Spec, builders []string) string {
	header := fmt.Sprintf("%s %s %s",
		r.theme.Highlight.Render(IconLink),
		r.theme.Title.Render("Routes"),
		r.theme.Subtle.Render("(builders: "+strings.Join(builders, ", ")+")"),
	)
	if len(specs) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, r.theme.Subtle.Render("No routes configured."))
	}

	rows := make([][]string, 0, len(specs))
	for i, s := range specs {
		rows = append(rows, []string{strconv.Itoa(i + 1), s.Pattern, s.Builder, s.Title})
	}
	tbl := NewStyledTable(r.theme, []string{"#", "Pattern", "Builder", "Title"}, rows)
	return lipgloss.JoinVertical(lipgloss.Left, header, tbl.String())
}

func displayTarget(rec entity.DecisionRecord) string {
	if rec.Canonical != "" {
		return rec.Canonical
	}
	if rec.Target == "" {
		return "(empty)"
	}
	return rec.Target
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) > width-1 {
		runes = runes[:width-1]
	}
	return string(runes) + "…"
}
