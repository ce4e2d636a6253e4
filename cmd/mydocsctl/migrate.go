// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations to STORAGE_DB_DATABASE_URI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := d.cipherConfig()
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}
			if cfg.Storage.DB.DSN == "" {
				return errors.New("STORAGE_DB_DATABASE_URI is not set")
			}

			if err = d.migrate(cmd.Context(), cfg.Storage.DB, d.log); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
