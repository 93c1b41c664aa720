package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oukeidos/rvgui/internal/licenses"
)

func newLicensesCmd() *cobra.Command {
	var disclaimer bool
	cmd := &cobra.Command{
		Use:   "licenses",
		Short: "Show the license or disclaimer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := licenses.LicenseText()
			name := "LICENSE"
			if disclaimer {
				text = licenses.DisclaimerText()
				name = "DISCLAIMER"
			}
			if text == "" {
				return fmt.Errorf("embedded %s is empty", name)
			}
			_, err := cmd.OutOrStdout().Write([]byte(text))
			return err
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().BoolVar(&disclaimer, "disclaimer", false, "Print the disclaimer instead")
	return cmd
}
