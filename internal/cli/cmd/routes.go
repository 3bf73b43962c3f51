package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/bnema/riblet/internal/application/screen"
	"github.com/bnema/riblet/internal/bootstrap"
	"github.com/bnema/riblet/internal/domain/route"
	domainurl "github.com/bnema/riblet/internal/domain/url"
	"github.com/bnema/riblet/internal/infrastructure/routefile"
)

var (
	routesExportFormat string
	routesMatchJSON    bool
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the route table",
	Long: `List configured routes in match order: the config file's routes
first, then those of routes_file. The table is compiled, so an unknown
builder or a bad pattern is reported here.`,
	Args: cobra.NoArgs,
	RunE: runRoutes,
}

var routesSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of route files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := routefile.SchemaJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

var routesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the route table as a route file",
	Long: `Write every configured route as a route file on stdout, ready to be
used as routes_file.

Examples:
  riblet routes export > routes.yaml
  riblet routes export --format toml > routes.toml`,
	Args: cobra.NoArgs,
	RunE: runRoutesExport,
}

var routesMatchCmd = &cobra.Command{
	Use:   "match <uri>",
	Short: "Show which route a target matches",
	Long: `Canonicalize a target and report the first route it matches, with
the parameters a builder would receive. Nothing is built or opened.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoutesMatch,
}

func init() {
	rootCmd.AddCommand(routesCmd)
	routesCmd.AddCommand(routesSchemaCmd)
	routesCmd.AddCommand(routesExportCmd)
	routesCmd.AddCommand(routesMatchCmd)

	routesExportCmd.Flags().StringVar(&routesExportFormat, "format", string(routefile.FormatYAML), "yaml, toml or json")
	routesMatchCmd.Flags().BoolVar(&routesMatchJSON, "json", false, "output as JSON")
}

func compileRoutes() ([]route.Spec, *route.Table, *route.Registry, error) {
	app, err := requireApp()
	if err != nil {
		return nil, nil, nil, err
	}
	registry := screen.Register(route.NewRegistry())
	specs, table, err := bootstrap.CompileRoutes(app.Config, registry)
	if err != nil {
		return nil, nil, nil, err
	}
	return specs, table, registry, nil
}

func runRoutes(cmd *cobra.Command, _ []string) error {
	specs, _, registry, err := compileRoutes()
	if err != nil {
		return err
	}
	renderer := newDecisionRenderer()
	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderRoutes(specs, registry.Names()))
	return err
}

func runRoutesExport(cmd *cobra.Command, _ []string) error {
	specs, _, _, err := compileRoutes()
	if err != nil {
		return err
	}
	return routefile.Encode(cmd.OutOrStdout(), routefile.FromSpecs(specs), routefile.Format(routesExportFormat))
}

type matchResult struct {
	Canonical string            `json:"canonical"`
	Matched   bool              `json:"matched"`
	Route     string            `json:"route,omitempty"`
	Pattern   string            `json:"pattern,omitempty"`
	Params    map[string]string `json:"params,omitempty"`
}

func runRoutesMatch(cmd *cobra.Command, args []string) error {
	_, table, _, err := compileRoutes()
	if err != nil {
		return err
	}
	app := GetApp()
	opts := domainurl.CanonicalizeOptions{ExtraTrackingParams: app.Config.Dispatcher.ExtraTrackingParams}

	canonical, target, err := domainurl.CanonicalizeURL(args[0], opts)
	if err != nil {
		return err
	}

	result := matchResult{Canonical: canonical}
	if m, ok := table.Match(target); ok {
		result.Matched = true
		result.Route = m.Entry.Name
		result.Pattern = m.Entry.Pattern
		result.Params = m.Params
	}

	out := cmd.OutOrStdout()
	if routesMatchJSON {
		return json.NewEncoder(out).Encode(result)
	}

	theme := app.Theme
	if !result.Matched {
		fmt.Fprintf(out, "%s %s %s\n", theme.WarningStyle.Render("✗"), canonical, theme.Subtle.Render("matches no route"))
		return nil
	}
	fmt.Fprintf(out, "%s %s %s %s\n", theme.SuccessStyle.Render("✓"), canonical,
		theme.Subtle.Render("→"), theme.Highlight.Render(result.Route))

	keys := make([]string, 0, len(result.Params))
	for k := range result.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "  %s = %s\n", theme.Subtle.Render(k), result.Params[k])
	}
	return nil
}
