// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the workspace server.
//
// It wires routes on a chi router, decodes requests, and delegates to the
// service layer. Cross-cutting concerns such as authentication, request
// tracing, access logging, response compression, and request timeouts are
// handled by middleware before a handler runs. Service errors are turned
// into status codes by a single table in errors_mapper.go.
package http
