package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oukeidos/rvgui/internal/apperrors"
	"github.com/oukeidos/rvgui/internal/logger"
	"github.com/oukeidos/rvgui/internal/session"
)

type prepareOptions struct {
	apk        string
	cliJar     string
	patches    string
	outputDir  string
	outputName string
	javaBin    string
}

func newPrepareCmd(app *appState) *cobra.Command {
	opts := &prepareOptions{}
	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Check a patch run and print the ReVanced CLI command",
		Long: `Check a patch run and print the ReVanced CLI command.

The CLI JAR and patches bundle default to the remembered ones. The output is
written next to the APK with a "-patched" suffix unless overridden, and is
moved aside from any existing file. Nothing is executed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrepare(cmd, app, opts)
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	flags := cmd.Flags()
	flags.StringVar(&opts.apk, "apk", "", "APK file to patch (required)")
	flags.StringVar(&opts.cliJar, "cli-jar", "", "ReVanced CLI JAR (default: remembered)")
	flags.StringVar(&opts.patches, "patches", "", "Patches RVP bundle (default: remembered)")
	flags.StringVar(&opts.outputDir, "output-dir", "", "Output directory (default: the APK's directory)")
	flags.StringVar(&opts.outputName, "output-name", "", "Output file name (default: <apk>-patched.apk)")
	flags.StringVar(&opts.javaBin, "java", "java", "Java executable")
	_ = cmd.MarkFlagRequired("apk")
	return cmd
}

func runPrepare(cmd *cobra.Command, app *appState, opts *prepareOptions) error {
	err := absPaths(map[string]*string{
		"apk":        &opts.apk,
		"cli-jar":    &opts.cliJar,
		"patches":    &opts.patches,
		"output-dir": &opts.outputDir,
	})
	if err != nil {
		return err
	}
	if err := app.open(); err != nil {
		return err
	}

	sess := session.FromRecord(app.shell.Record())
	if opts.cliJar != "" {
		sess.CLIJarPath = opts.cliJar
	}
	if opts.patches != "" {
		sess.PatchesPath = opts.patches
	}
	sess.SetAPK(opts.apk)
	if opts.outputDir != "" {
		sess.OutputDir = opts.outputDir
	}
	if opts.outputName != "" {
		sess.OutputName = opts.outputName
	}

	if err := sess.Validate(); err != nil {
		return err
	}
	output, err := sess.OutputPath()
	if err != nil {
		return apperrors.InvalidInput("output location unusable", err)
	}
	logger.Debug("Patch run prepared", "apk", sess.APKPath, "output_path", output)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Output: %s\n", output)
	fmt.Fprintln(out, quoteArgs(sess.PatchArgs(opts.javaBin, output)))

	// Paths that passed validation are remembered for the next run.
	app.shell.Update(sess.Remember)
	reportCheckpoint(cmd, app)
	return nil
}

func quoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t\"'") {
			quoted[i] = strconv.Quote(arg)
			continue
		}
		quoted[i] = arg
	}
	return strings.Join(quoted, " ")
}
