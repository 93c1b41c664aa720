package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oukeidos/rvgui/internal/apperrors"
	"github.com/oukeidos/rvgui/internal/cleanup"
	"github.com/oukeidos/rvgui/internal/logger"
	"github.com/oukeidos/rvgui/internal/version"
)

func execute() {
	cmd := newRootCmd()
	err := runGuarded("command", cmd.Execute)
	if cleanupErr := cleanup.RunAll(); cleanupErr != nil {
		// Shutdown failures are warnings; the requested work already finished.
		fmt.Fprintln(os.Stderr, shutdownWarning(cleanupErr))
	}
	if err != nil {
		os.Exit(1)
	}
}

func shutdownWarning(err error) string {
	if apperrors.IsPersistence(err) {
		return "Warning: settings not saved: " + apperrors.PublicMessage(err)
	}
	return "Warning: " + apperrors.PublicMessage(err)
}

type globalOptions struct {
	verbose  bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	app := &appState{opts: opts}

	cmd := &cobra.Command{
		Use:   "rvgui",
		Short: "Settings and session helper for the ReVanced CLI",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(opts.level(), nil)
		},
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.Version = version.Info()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging (same as --log-level debug)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	cmd.AddCommand(
		newConfigCmd(app),
		newPrepareCmd(app),
		newGuideCmd(),
		newAboutCmd(),
		newLicensesCmd(),
	)
	return cmd
}

func (o *globalOptions) level() logger.Level {
	if o.verbose {
		return logger.LevelDebug
	}
	return logger.ParseLevel(o.logLevel)
}
