// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the mydocs HTTP server.
//
// It owns the server lifecycle: startup, signal handling, and a graceful
// shutdown bounded by the configured shutdown timeout.
package server
