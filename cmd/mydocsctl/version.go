// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(d *deps) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information, and with --server the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), d.buildInfo)
			if !remote {
				return nil
			}

			serverAdapter, err := d.connect(cmd)
			if err != nil {
				return err
			}

			version, err := serverAdapter.Version(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Server version: %s\n", version)
			return nil
		},
	}
	cmd.Flags().BoolVar(&remote, "server", false, "also query the server version")

	return cmd
}
