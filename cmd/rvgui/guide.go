package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const guideText = `USAGE

1. Remember the ReVanced CLI JAR and patches bundle:
     rvgui config set --save-config --cli-jar cli.jar --patches patches.rvp
2. Prepare a run for an APK:
     rvgui prepare --apk app.apk
   The output goes next to the APK as app-patched.apk unless
   --output-dir or --output-name say otherwise.
3. Run the printed command to patch.

SETTINGS

  save_config  Remember the JAR and RVP paths between runs.
  save_logs    Write a log file per run under the settings directory.

  rvgui config show    Print the current settings
  rvgui config reset   Forget everything
  rvgui config path    Print where settings live (override with RVGUI_HOME)

Inputs are checked before anything is printed: the JAR, RVP and APK
must exist with the right extension and the output directory must exist.
`

func newGuideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Show usage instructions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), guideText)
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
