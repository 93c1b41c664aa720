package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oukeidos/rvgui/internal/version"
)

var aboutLinks = []struct {
	label string
	url   string
}{
	{"Source Code", "https://github.com/HelllGuest/PyReVanced"},
	{"ReVanced Project", "https://github.com/revanced"},
	{"CLI Downloads", "https://github.com/revanced/revanced-cli/releases"},
	{"Patches", "https://github.com/revanced/revanced-patches/releases"},
}

func newAboutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "about",
		Short: "Show a short description and links",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", version.AppName, version.Version)
			fmt.Fprintln(out, "Unofficial helper for the ReVanced CLI. Use ReVanced responsibly.")
			fmt.Fprintf(out, "Developer: %s\n", version.Author)
			fmt.Fprintf(out, "License:   %s\n\n", version.License)
			for _, link := range aboutLinks {
				fmt.Fprintf(out, "%-17s %s\n", link.label+":", link.url)
			}
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
