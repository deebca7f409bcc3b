// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

type versionOutput struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show lmsconf build information",
		Args:  cobra.NoArgs,
		// no configuration is needed to print the build
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := versionOutput{
				Version: a.buildInfo.BuildVersion(),
				Commit:  a.buildInfo.BuildCommit(),
				Date:    a.buildInfo.BuildDate(),
				Go:      runtime.Version(),
			}

			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, titleStyle.Render("lmsconf"))
			fmt.Fprintln(w, renderField("version", out.Version))
			fmt.Fprintln(w, renderField("commit", out.Commit))
			fmt.Fprintln(w, renderField("date", out.Date))
			fmt.Fprintln(w, renderField("go", out.Go))
			return nil
		},
	}
}
