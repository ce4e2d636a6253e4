// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by [VaultCipher.Decrypt]. Both are final: the
// envelope cannot be opened with the current key no matter how often the call
// is repeated.
var (
	// ErrInvalidEnvelope is returned when the envelope does not consist of
	// exactly three colon-separated hex segments, or when the IV or tag
	// segment has the wrong length.
	ErrInvalidEnvelope = errors.New("invalid vault envelope format")

	// ErrAuthenticationFailed is returned when the GCM tag does not verify:
	// the envelope was tampered with, corrupted, or sealed under another key.
	ErrAuthenticationFailed = errors.New("vault envelope authentication failed")
)
