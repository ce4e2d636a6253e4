// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/mydocs/models"
	"github.com/spf13/cobra"
)

func newLoginCmd(d *deps) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a session token",
		Long: `Log in to the server and print the session token on stdout.

Example:
  export MYDOCS_TOKEN=$(mydocsctl login --email ada@example.com)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email = strings.TrimSpace(email)
			if email == "" {
				return errors.New("--email is required")
			}

			serverAdapter, err := d.connect(cmd)
			if err != nil {
				return err
			}

			password, err := d.readSecret(cmd, "Password: ")
			if err != nil {
				return err
			}

			token, err := serverAdapter.Login(cmd.Context(), models.LoginRequest{Email: email, Password: password})
			if err != nil {
				return err
			}

			if !token.ExpiresAt.IsZero() {
				fmt.Fprintf(cmd.ErrOrStderr(), "token valid until %s\n", token.ExpiresAt.Local().Format(time.RFC1123))
			}
			fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")

	return cmd
}
