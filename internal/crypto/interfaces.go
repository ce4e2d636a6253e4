// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the server-side encryption of vault entries.
//
// A vault entry is stored as an envelope string of the form
//
//	hex(iv):hex(authTag):hex(ciphertext)
//
// produced by AES-256-GCM with a 16-byte IV. The envelope is opaque to the
// rest of the application; only [VaultCipher] interprets its structure.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_cipher_mock.go -package=mock

// VaultCipher converts plaintext secrets to storable envelopes and back.
//
// Implementations hold only immutable key material and are safe for
// concurrent use.
type VaultCipher interface {
	// Encrypt seals plaintext under the configured key and returns the
	// envelope. Every call uses a fresh random IV, so encrypting the same
	// plaintext twice yields two different envelopes.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens an envelope produced by Encrypt. It returns
	// [ErrInvalidEnvelope] if the envelope cannot be parsed and
	// [ErrAuthenticationFailed] if the authentication tag does not verify.
	Decrypt(envelope string) (string, error)
}
