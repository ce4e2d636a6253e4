// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the services.
//
// A Validator accepts any supported request model and, optionally, a list of
// field names that restricts which rules run. Without field names every rule
// for the model is applied.
package validators

import "context"

// Validator validates the provided input and optionally restricts validation
// to specific named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
