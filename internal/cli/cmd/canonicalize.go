package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/riblet/internal/domain/entity"
	domainurl "github.com/bnema/riblet/internal/domain/url"
)

var (
	canonicalizeNormalize bool
	canonicalizeJSON      bool
)

var canonicalizeCmd = &cobra.Command{
	Use:   "canonicalize <uri>...",
	Short: "Print the canonical form of targets",
	Long: `Print the canonical form and scheme class of each target, as the
dispatcher computes them before route matching: scheme and host are
lowercased and tracking parameters (utm_*, fbclid, gclid, ... plus
dispatcher.extra_tracking_params) are removed.

Examples:
  riblet canonicalize 'HTTPS://Example.com/a?utm_source=x&id=1'
  riblet canonicalize --normalize example.com`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCanonicalize,
}

func init() {
	rootCmd.AddCommand(canonicalizeCmd)

	canonicalizeCmd.Flags().BoolVar(&canonicalizeNormalize, "normalize", false, "add a scheme to bare domains first")
	canonicalizeCmd.Flags().BoolVar(&canonicalizeJSON, "json", false, "output as JSON")
}

type canonicalResult struct {
	Input     string             `json:"input"`
	Canonical string             `json:"canonical,omitempty"`
	Class     entity.TargetClass `json:"class"`
	Error     string             `json:"error,omitempty"`
}

func runCanonicalize(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	cfg := app.Config.Dispatcher
	schemes := domainurl.Schemes{Internal: cfg.InternalSchemes, Web: cfg.WebSchemes}
	opts := domainurl.CanonicalizeOptions{ExtraTrackingParams: cfg.ExtraTrackingParams}
	theme := app.Theme
	out := cmd.OutOrStdout()

	for _, input := range args {
		raw := input
		if canonicalizeNormalize {
			raw = domainurl.Normalize(raw)
		}

		result := canonicalResult{Input: input, Class: entity.ClassOther}
		canonical, parsed, cerr := domainurl.CanonicalizeURL(raw, opts)
		if cerr != nil {
			result.Error = cerr.Error()
		} else {
			result.Canonical = canonical
			result.Class = schemes.Classify(parsed)
		}

		if canonicalizeJSON {
			if err := json.NewEncoder(out).Encode(result); err != nil {
				return err
			}
			continue
		}
		if cerr != nil {
			fmt.Fprintf(out, "%s %s %s\n", theme.ClassBadge(result.Class), input, theme.ErrorStyle.Render(result.Error))
			continue
		}
		fmt.Fprintf(out, "%s %s\n", theme.ClassBadge(result.Class), result.Canonical)
	}
	return nil
}
