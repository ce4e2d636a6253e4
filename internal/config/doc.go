// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//
// The main entry points are [GetStructuredConfig] for the server,
// [GetClientConfig] for mydocsctl commands that call the server, and
// [GetCipherConfig] for offline mydocsctl commands.
package config
