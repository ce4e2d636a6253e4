// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command mydocsctl is the operator tool for a mydocs installation. It runs
// the vault cipher offline, applies database migrations, and reads vault
// entries from a running server.
package main

import (
	"os"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewCLILogger("mydocsctl")
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := newRootCmd(defaultDeps(log, buildInfo)).Execute(); err != nil {
		os.Exit(1)
	}
}
