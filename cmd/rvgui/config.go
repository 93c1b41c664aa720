package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oukeidos/rvgui/internal/apperrors"
	"github.com/oukeidos/rvgui/internal/configstore"
	"github.com/oukeidos/rvgui/internal/prompt"
)

var confirmer = prompt.DefaultConfirmer

func newConfigCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change remembered settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.SetUsageTemplate(groupUsageTemplate)
	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigSetCmd(app),
		newConfigResetCmd(app),
		newConfigPathCmd(),
	)
	return cmd
}

func newConfigShowCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.open(); err != nil {
				return err
			}
			printRecord(cmd, app.shell.Record())
			fmt.Fprintf(cmd.OutOrStdout(), "store:        %s (%s)\n", app.store.Path(), app.store.State())
			if app.logs != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "log file:     %s\n", app.logs)
			}
			return nil
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func printRecord(cmd *cobra.Command, rec configstore.Record) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "cli_jar_path: %s\n", displayPath(rec.CLIJarPath))
	fmt.Fprintf(out, "patches_path: %s\n", displayPath(rec.PatchesPath))
	fmt.Fprintf(out, "save_logs:    %t\n", rec.SaveLogsEnabled)
	fmt.Fprintf(out, "save_config:  %t\n", rec.SaveConfigEnabled)
}

func displayPath(p string) string {
	if p == "" {
		return "(not set)"
	}
	return p
}

type configSetOptions struct {
	cliJar     string
	patches    string
	saveLogs   bool
	saveConfig bool
}

func newConfigSetCmd(app *appState) *cobra.Command {
	opts := &configSetOptions{}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more settings",
		Long: `Change one or more settings.

Only the flags given are changed. Settings are written to disk only while
save_config is true; pass --save-config=false to stop remembering them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, app, opts)
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	flags := cmd.Flags()
	flags.StringVar(&opts.cliJar, "cli-jar", "", "Path to the ReVanced CLI JAR (empty to forget)")
	flags.StringVar(&opts.patches, "patches", "", "Path to the patches RVP bundle (empty to forget)")
	flags.BoolVar(&opts.saveLogs, "save-logs", false, "Write a log file for each run")
	flags.BoolVar(&opts.saveConfig, "save-config", true, "Remember settings between runs")
	return cmd
}

func runConfigSet(cmd *cobra.Command, app *appState, opts *configSetOptions) error {
	flags := cmd.Flags()
	if !anyChanged(flags, "cli-jar", "patches", "save-logs", "save-config") {
		return apperrors.InvalidInput("no settings given; see 'rvgui config set --help'", nil)
	}
	if err := absPaths(map[string]*string{"cli-jar": &opts.cliJar, "patches": &opts.patches}); err != nil {
		return err
	}
	if err := app.open(); err != nil {
		return err
	}

	app.shell.Update(func(rec *configstore.Record) {
		if flags.Changed("cli-jar") {
			rec.CLIJarPath = opts.cliJar
		}
		if flags.Changed("patches") {
			rec.PatchesPath = opts.patches
		}
		if flags.Changed("save-logs") {
			rec.SaveLogsEnabled = opts.saveLogs
		}
		if flags.Changed("save-config") {
			rec.SaveConfigEnabled = opts.saveConfig
		}
	})
	reportCheckpoint(cmd, app)
	return nil
}

func anyChanged(flags *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if flags.Changed(name) {
			return true
		}
	}
	return false
}

// reportCheckpoint saves the record and tells the user what happened. A failed
// save is a warning, never a command failure.
func reportCheckpoint(cmd *cobra.Command, app *appState) {
	saved, err := app.shell.Checkpoint()
	switch {
	case err != nil:
		fmt.Fprintln(cmd.ErrOrStderr(), shutdownWarning(err))
	case !saved:
		fmt.Fprintln(cmd.OutOrStdout(), "Settings not saved (config saving disabled)")
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "Settings saved to %s\n", app.store.Path())
	}
}

func newConfigResetCmd(app *appState) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget all saved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.open(); err != nil {
				return err
			}
			c := confirmer()
			c.Out = cmd.OutOrStdout()
			ok, err := c.Confirm(fmt.Sprintf("Remove saved settings at %s?", app.store.Path()), yes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled")
				return nil
			}
			if err := app.shell.Reset(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Settings reset to defaults")
			return nil
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print where settings are stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), store.Path())
			return nil
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
