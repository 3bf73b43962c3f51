package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/riblet/internal/cli/styles"
)

var (
	journalLimit     int
	journalJSON      bool
	journalPruneDays int
)

const defaultJournalLimit = 50

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show recent navigation decisions",
	Long: `Show journaled decisions, newest first.

Every dispatched request is journaled to the sqlite database unless
journal.enabled is false. Records older than journal.retention_days are
pruned whenever riblet dispatches.

Examples:
  riblet journal --limit 20
  riblet journal --prune-days 7`,
	Args: cobra.NoArgs,
	RunE: runJournal,
}

func init() {
	rootCmd.AddCommand(journalCmd)

	journalCmd.Flags().IntVar(&journalLimit, "limit", defaultJournalLimit, "maximum records to show")
	journalCmd.Flags().BoolVar(&journalJSON, "json", false, "output as JSON")
	journalCmd.Flags().IntVar(&journalPruneDays, "prune-days", 0, "delete records older than this many days, then exit")
}

func runJournal(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	journal, err := app.Journal()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if journalPruneDays > 0 {
		maxAge := time.Duration(journalPruneDays) * 24 * time.Hour
		if err := journal.Prune(app.Ctx(), maxAge); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s Pruned decisions older than %d days\n", app.Theme.SuccessStyle.Render("✓"), journalPruneDays)
		return nil
	}

	records, err := journal.Recent(app.Ctx(), journalLimit)
	if err != nil {
		return err
	}

	if journalJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	_, err = fmt.Fprintln(out, newDecisionRenderer().RenderJournal(records))
	return err
}

func newDecisionRenderer() *styles.DecisionRenderer {
	return styles.NewDecisionRenderer(GetApp().Theme)
}
