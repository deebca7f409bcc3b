// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-lms/internal/settings"
	"github.com/spf13/cobra"
)

func newGetCmd(a *app) *cobra.Command {
	var def string

	cmd := &cobra.Command{
		Use:   "get <section.key>",
		Short: "Print the raw value of an option",
		Long: `Print the raw value of an option. An empty value counts as absent: the
--default value is printed instead, or the command fails without one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.loadStore(cmd)
			if err != nil {
				return err
			}

			name := args[0]
			v, ok := st.Get(name)
			if !ok {
				if !cmd.Flags().Changed("default") {
					return fmt.Errorf("%w: %s", ErrOptionNotSet, name)
				}
				v = settings.String(def)
			}

			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"name": name, "value": v})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return err
		},
	}

	cmd.Flags().StringVar(&def, "default", "", "value printed when the option is absent")

	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <section.key>",
		Short: "Resolve an option to true or false",
		Long: `Resolve an option to a boolean. Unknown options are false. For a
superuser every privileges.* option is true except privileges.hide*.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.loadStore(cmd)
			if err != nil {
				return err
			}

			name := args[0]
			enabled := st.Check(name)

			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"name": name, "enabled": enabled})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(enabled))
			return err
		},
	}
}

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump [section]",
		Short: "Print every resolved option, defaults included",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.loadStore(cmd)
			if err != nil {
				return err
			}

			tree := st.Snapshot()
			if len(args) == 1 {
				section := strings.ToLower(args[0])
				tree = settings.Tree{section: tree[section]}
			}

			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), tree)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderOptions(tree))
			return err
		},
	}
}

func (a *app) loadStore(cmd *cobra.Command) (*settings.Store, error) {
	svc, closeFn, err := a.settingsService(cmd.Context())
	if err != nil {
		return nil, err
	}
	defer closeFn()

	st, err := svc.Load(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("error loading options: %w", err)
	}
	return st, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
