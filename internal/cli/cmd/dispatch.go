package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/riblet/internal/application/port"
	"github.com/bnema/riblet/internal/application/usecase"
	"github.com/bnema/riblet/internal/bootstrap"
	"github.com/bnema/riblet/internal/cli"
	"github.com/bnema/riblet/internal/cli/styles"
	"github.com/bnema/riblet/internal/domain/entity"
	"github.com/bnema/riblet/internal/infrastructure/config"
	"github.com/bnema/riblet/internal/infrastructure/desktop"
	"github.com/bnema/riblet/internal/logging"
)

var (
	dispatchBootstrap string
	dispatchDryRun    bool
	dispatchStdin     bool
	dispatchJSON      bool
)

var dispatchCmd = &cobra.Command{
	Use:   "dispatch [uri]",
	Short: "Decide a navigation request",
	Long: `Decide one navigation request the way the hosting surface would.

Matched internal targets are built and attached as a unit, unmatched web
and deep-link targets are handed to the system browser (xdg-open), and
anything else is allowed.

With --stdin, one target is read per line until EOF and the route table
is reloaded whenever the config file changes.

Examples:
  riblet dispatch fave://restaurant/42
  riblet dispatch --dry-run 'https://example.com/?utm_source=mail'
  tail -f links.log | riblet dispatch --stdin --json`,
	Args: func(cmd *cobra.Command, args []string) error {
		if dispatchStdin {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: runDispatch,
}

func init() {
	rootCmd.AddCommand(dispatchCmd)

	dispatchCmd.Flags().StringVar(&dispatchBootstrap, "bootstrap", "", "URL that initialized the surface; requests for it are allowed")
	dispatchCmd.Flags().BoolVar(&dispatchDryRun, "dry-run", false, "report hand-offs instead of opening the system browser; nothing is journaled")
	dispatchCmd.Flags().BoolVar(&dispatchStdin, "stdin", false, "read targets from stdin, one per line")
	dispatchCmd.Flags().BoolVar(&dispatchJSON, "json", false, "output as JSON")
}

// dispatchResult is the JSON form of one decision.
type dispatchResult struct {
	entity.DecisionRecord
	Context string `json:"context,omitempty"`
	Unit    string `json:"unit,omitempty"`
	Opened  string `json:"opened,omitempty"`
}

// dryRunOpener records hand-offs instead of performing them.
type dryRunOpener struct {
	last string
}

func (o *dryRunOpener) OpenExternally(_ context.Context, uri string) error {
	o.last = uri
	return nil
}

func (o *dryRunOpener) take() string {
	uri := o.last
	o.last = ""
	return uri
}

func runDispatch(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	var opener port.ExternalOpener
	dry := &dryRunOpener{}
	if dispatchDryRun {
		opener = dry
	} else {
		opener = desktop.NewOpener()
	}

	d, err := app.Dispatcher(cli.DispatcherOptions{
		Opener:       opener,
		BootstrapURL: dispatchBootstrap,
		NoJournal:    dispatchDryRun,
		PruneJournal: !dispatchDryRun,
	})
	if err != nil {
		return err
	}

	printer := &decisionPrinter{
		out:      cmd.OutOrStdout(),
		renderer: styles.NewDecisionRenderer(app.Theme),
		asJSON:   dispatchJSON,
		dry:      dry,
	}

	if !dispatchStdin {
		return printer.print(dispatchOne(app.Ctx(), d, args[0]))
	}
	return dispatchLines(app.Ctx(), app, d, cmd.InOrStdin(), printer)
}

func dispatchOne(ctx context.Context, d *bootstrap.Dispatcher, target string) (string, *usecase.DispatchOutput) {
	// The decision is reported from the output; there is no surface to resume.
	out := d.UseCase.DecidePolicy(ctx, usecase.DispatchInput{Target: target}, func(entity.Decision) {})
	return target, out
}

// dispatchLines decides one target per input line on the calling goroutine.
// Config changes swap in a new route table between lines.
func dispatchLines(ctx context.Context, app *cli.App, d *bootstrap.Dispatcher, in io.Reader, p *decisionPrinter) error {
	log := logging.FromContext(ctx)

	app.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		if err := d.Reload(ctx, cfg); err != nil {
			log.Warn().Err(err).Msg("route reload failed, keeping previous table")
		}
	})
	if err := app.ConfigManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		target := strings.TrimSpace(scanner.Text())
		if target == "" || strings.HasPrefix(target, "#") {
			continue
		}
		if err := p.print(dispatchOne(ctx, d, target)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

type decisionPrinter struct {
	out      io.Writer
	renderer *styles.DecisionRenderer
	asJSON   bool
	dry      *dryRunOpener
}

func (p *decisionPrinter) print(target string, out *usecase.DispatchOutput) error {
	rec := entity.DecisionRecord{
		Target:    target,
		Canonical: out.Canonical,
		Class:     out.Class,
		Decision:  out.Decision,
		Route:     out.Route,
		HandedOff: out.HandedOff,
		Bootstrap: out.Bootstrap,
		DecidedAt: time.Now(),
	}
	unitID := ""
	if out.Unit != nil {
		unitID = out.Unit.ID.String()
	}
	opened := p.dry.take()

	if !p.asJSON {
		line := p.renderer.Render(rec, unitID)
		if opened != "" {
			line += "\n  " + p.renderer.DryRunNote(opened)
		}
		_, err := fmt.Fprintln(p.out, line)
		return err
	}

	result := dispatchResult{DecisionRecord: rec, Unit: unitID, Opened: opened}
	if out.Route != "" {
		result.Context = out.Context.String()
	}
	return json.NewEncoder(p.out).Encode(result)
}
