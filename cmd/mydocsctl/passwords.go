// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPasswordsCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "passwords",
		Aliases: []string{"pw"},
		Short:   "Read vault entries from the server",
	}
	cmd.AddCommand(newPasswordsListCmd(d), newPasswordsRevealCmd(d))
	return cmd
}

func newPasswordsListCmd(d *deps) *cobra.Command {
	var folderID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vault entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			serverAdapter, err := d.connect(cmd)
			if err != nil {
				return err
			}

			var folder *string
			if folderID != "" {
				folder = &folderID
			}

			passwords, err := serverAdapter.ListPasswords(cmd.Context(), folder)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tUSERNAME\tWEBSITE")
			for _, p := range passwords {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Title, deref(p.Username), deref(p.Website))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&folderID, "folder", "", "only entries in this folder")

	return cmd
}

func newPasswordsRevealCmd(d *deps) *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "reveal <id>",
		Short: "Print the decrypted secret of a vault entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serverAdapter, err := d.connect(cmd)
			if err != nil {
				return err
			}

			revealed, err := serverAdapter.RevealPassword(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if copyToClipboard {
				if err = d.copyText(revealed.Value); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "secret copied to clipboard")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), revealed.Value)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "copy to the clipboard instead of printing")

	return cmd
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
