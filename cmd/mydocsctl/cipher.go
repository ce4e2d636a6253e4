// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/mydocs/internal/crypto"
	"github.com/spf13/cobra"
)

func (d *deps) vaultCipher() (crypto.VaultCipher, error) {
	cfg, err := d.cipherConfig()
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}
	return crypto.NewVaultCipher(cfg.App.EncryptionKey, d.log)
}

// inputArg returns args[0], or all of stdin without the trailing newline.
func inputArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func newEncryptCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt [plaintext]",
		Short: "Encrypt a value with APP_ENCRYPTION_KEY",
		Long: `Encrypt a value into an iv:authTag:ciphertext envelope.

The plaintext is taken from the argument or, when absent, from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cipher, err := d.vaultCipher()
			if err != nil {
				return err
			}

			plaintext, err := inputArg(cmd, args)
			if err != nil {
				return err
			}

			envelope, err := cipher.Encrypt(plaintext)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), envelope)
			return nil
		},
	}
}

func newDecryptCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt [envelope]",
		Short: "Decrypt an envelope with APP_ENCRYPTION_KEY",
		Long: `Decrypt an iv:authTag:ciphertext envelope.

The envelope is taken from the argument or, when absent, from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cipher, err := d.vaultCipher()
			if err != nil {
				return err
			}

			envelope, err := inputArg(cmd, args)
			if err != nil {
				return err
			}

			plaintext, err := cipher.Decrypt(strings.TrimSpace(envelope))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), plaintext)
			return nil
		},
	}
}
