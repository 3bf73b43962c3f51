package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/riblet/internal/application/usecase"
	"github.com/bnema/riblet/internal/infrastructure/desktop"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Setup desktop integration",
	Long: `Register riblet with the desktop environment as the handler for the
configured internal schemes (dispatcher.internal_schemes).

Subcommands:
  install  - Install riblet.desktop and claim x-scheme-handler/<scheme>
  remove   - Remove riblet.desktop`,
}

var setupInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the scheme handler",
	Long: `Install riblet.desktop to $XDG_DATA_HOME/applications/ with
Exec=riblet dispatch %u, then make it the default handler for every
internal scheme using xdg-mime.

This command is idempotent - safe to run multiple times.`,
	RunE: runSetupInstall,
}

var setupRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the scheme handler",
	RunE:  runSetupRemove,
}

func init() {
	rootCmd.AddCommand(setupCmd)
	setupCmd.AddCommand(setupInstallCmd)
	setupCmd.AddCommand(setupRemoveCmd)
}

func runSetupInstall(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	theme := app.Theme
	out := cmd.OutOrStdout()

	uc := usecase.NewInstallSchemeHandlerUseCase(desktop.NewSchemeHandler())
	result, err := uc.Execute(app.Ctx(), usecase.InstallSchemeHandlerInput{
		Schemes: app.Config.Dispatcher.InternalSchemes,
	})
	if err != nil {
		fmt.Fprintf(out, "%s %s\n", theme.ErrorStyle.Render("\u2717"), err.Error())
		return err
	}

	// Desktop file status
	if result.WasDesktopExisting {
		fmt.Fprintf(out, "%s Desktop file updated at %s\n",
			theme.SuccessStyle.Render("\u2713"),
			theme.Highlight.Render(result.DesktopPath))
	} else {
		fmt.Fprintf(out, "%s Desktop file installed to %s\n",
			theme.SuccessStyle.Render("\u2713"),
			theme.Highlight.Render(result.DesktopPath))
	}

	if len(result.Claimed) > 0 {
		fmt.Fprintf(out, "%s Now handling %s\n",
			theme.SuccessStyle.Render("\u2713"),
			theme.Highlight.Render(strings.Join(result.Claimed, ", ")))
	} else {
		fmt.Fprintln(out, theme.Subtle.Render("Already the default handler for every internal scheme"))
	}
	return nil
}

func runSetupRemove(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	theme := app.Theme
	out := cmd.OutOrStdout()

	result, err := usecase.NewRemoveSchemeHandlerUseCase(desktop.NewSchemeHandler()).Execute(app.Ctx())
	if err != nil {
		fmt.Fprintf(out, "%s %s\n", theme.ErrorStyle.Render("\u2717"), err.Error())
		return err
	}

	if !result.WasDesktopInstalled {
		fmt.Fprintln(out, theme.Subtle.Render("Scheme handler was not installed"))
		return nil
	}
	fmt.Fprintf(out, "%s Removed %s\n", theme.SuccessStyle.Render("\u2713"), theme.Highlight.Render(result.RemovedDesktopPath))
	return nil
}
