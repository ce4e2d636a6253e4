// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/mydocs/internal/adapter"
	"github.com/MKhiriev/mydocs/internal/config"
	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/internal/store"
	"github.com/MKhiriev/mydocs/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// tokenEnv holds the session token between mydocsctl invocations.
const tokenEnv = "MYDOCS_TOKEN"

// deps are the side effects the commands need. Tests replace them.
type deps struct {
	log       *logger.Logger
	buildInfo models.AppBuildInfo

	cipherConfig func() (*config.StructuredConfig, error)
	clientConfig func() (*config.StructuredConfig, error)
	newAdapter   func(cfg config.Client, log *logger.Logger) (adapter.ServerAdapter, error)
	migrate      func(ctx context.Context, cfg config.DB, log *logger.Logger) error
	readSecret   func(cmd *cobra.Command, prompt string) (string, error)
	copyText     func(text string) error
}

func defaultDeps(log *logger.Logger, buildInfo models.AppBuildInfo) *deps {
	return &deps{
		log:          log,
		buildInfo:    buildInfo,
		cipherConfig: config.GetCipherConfig,
		clientConfig: config.GetClientConfig,
		newAdapter:   adapter.NewHTTPServerAdapter,
		migrate:      migrateDatabase,
		readSecret:   readSecret,
		copyText:     clipboard.WriteAll,
	}
}

func newRootCmd(d *deps) *cobra.Command {
	root := &cobra.Command{
		Use:          "mydocsctl",
		Short:        "mydocsctl manages a mydocs workspace server",
		Version:      d.buildInfo.BuildVersion(),
		SilenceUsage: true,
	}
	root.PersistentFlags().String("token", os.Getenv(tokenEnv), "session token (defaults to $"+tokenEnv+")")

	root.AddCommand(
		newEncryptCmd(d),
		newDecryptCmd(d),
		newMigrateCmd(d),
		newLoginCmd(d),
		newPasswordsCmd(d),
		newVersionCmd(d),
	)

	return root
}

// connect builds an adapter for the configured server and attaches the
// session token from --token.
func (d *deps) connect(cmd *cobra.Command) (adapter.ServerAdapter, error) {
	cfg, err := d.clientConfig()
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	serverAdapter, err := d.newAdapter(cfg.Client, d.log)
	if err != nil {
		return nil, err
	}

	token, _ := cmd.Flags().GetString("token")
	serverAdapter.SetToken(token)
	return serverAdapter, nil
}

func migrateDatabase(ctx context.Context, cfg config.DB, log *logger.Logger) error {
	db, err := store.NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.Migrate()
}

// readSecret prompts on stderr and reads without echo from a terminal, or a
// single line from piped input.
func readSecret(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(secret), nil
	}

	return readLine(cmd.InOrStdin())
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
