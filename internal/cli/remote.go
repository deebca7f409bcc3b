// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-lms/internal/adapter"
	"github.com/spf13/cobra"
)

func newRemoteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Ask a running LMS server",
	}

	cmd.AddCommand(
		newRemoteCheckCmd(a),
		newRemoteVersionCmd(a),
		newRemoteInfoCenterCmd(a),
	)

	return cmd
}

func (a *app) serverAdapter() (adapter.ServerAdapter, error) {
	srv, err := a.newAdapter(a.cfg.Adapter, a.logger)
	if err != nil {
		return nil, fmt.Errorf("error creating server adapter: %w", err)
	}
	return srv, nil
}

func newRemoteCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <section.key>",
		Short: "Resolve an option on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := a.serverAdapter()
			if err != nil {
				return err
			}

			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			check, err := srv.CheckOption(ctx, args[0])
			if err != nil {
				return fmt.Errorf("error checking option on server: %w", err)
			}

			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), check)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(check.Enabled))
			return err
		},
	}
}

func newRemoteVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := a.serverAdapter()
			if err != nil {
				return err
			}

			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			version, err := srv.GetServerVersion(ctx)
			if err != nil {
				return fmt.Errorf("error getting server version: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}

func newRemoteInfoCenterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "infocenter <topic-id>",
		Short: "Print a topic with its latest posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topicID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || topicID <= 0 {
				return fmt.Errorf("%w: %q", ErrInvalidTopicID, args[0])
			}

			srv, err := a.serverAdapter()
			if err != nil {
				return err
			}

			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			thread, err := srv.GetShortThread(ctx, topicID)
			if err != nil {
				return fmt.Errorf("error getting info center topic: %w", err)
			}

			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), thread)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(thread.Topic.Topic))
			if thread.Topic.Description != "" {
				fmt.Fprintln(out, thread.Topic.Description)
			}
			for _, post := range thread.Posts {
				fmt.Fprintf(out, "\n%s %s\n%s\n",
					post.CreatedAt.Format("2006-01-02 15:04"), post.CreatedByLogin, post.Post)
			}
			return nil
		},
	}
}
