// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		data := VersionData{
			Version: version,
			Commit:  commit,
			Date:    date,
			Model:   cfg.Gemini.Model,
		}
		out := cmd.OutOrStdout()
		if versionJSON {
			return NewJSONResponse("version", data).Write(out)
		}
		printf(out, "%s %s\n", NameStyle.Render("zamam"), data.Version)
		printf(out, "%s%s\n", RenderLabel("Commit"), data.Commit)
		printf(out, "%s%s\n", RenderLabel("Built"), data.Date)
		printf(out, "%s%s/%s %s\n", RenderLabel("Platform"), runtime.GOOS, runtime.GOARCH, runtime.Version())
		printf(out, "%s%s\n", RenderLabel("Model"), data.Model)
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(versionCmd)
}
