// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/mydocs/internal/logger"
)

const (
	// DefaultInsecureSecret is used when no encryption secret is configured.
	// It is publicly known; anything sealed under it is effectively plaintext.
	DefaultInsecureSecret = "vaultmind-default-insecure-key"

	// IVSize is the length of the random GCM nonce in bytes.
	IVSize = 16

	// TagSize is the length of the GCM authentication tag in bytes.
	TagSize = 16

	// KeySize is the length of the AES-256 key in bytes.
	KeySize = 32

	envelopeSeparator = ":"
	envelopeParts     = 3
)

// aesVaultCipher is the AES-256-GCM implementation of [VaultCipher].
type aesVaultCipher struct {
	aead   cipher.AEAD
	random io.Reader
}

// NewVaultCipher builds a [VaultCipher] keyed from secret.
//
// An empty secret falls back to [DefaultInsecureSecret]; the fallback is
// reported as a warning through log so it cannot go unnoticed.
func NewVaultCipher(secret string, log *logger.Logger) (VaultCipher, error) {
	if secret == "" {
		log.Warn().
			Str("func", "NewVaultCipher").
			Msg("APP_ENCRYPTION_KEY is not set, vault entries are encrypted with the publicly known default key")
		secret = DefaultInsecureSecret
	}

	return newAESVaultCipher(DeriveKey(secret), rand.Reader)
}

func newAESVaultCipher(key []byte, random io.Reader) (*aesVaultCipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("error creating AES block cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, fmt.Errorf("error creating GCM: %w", err)
	}

	return &aesVaultCipher{aead: aead, random: random}, nil
}

// DeriveKey turns the configured secret into the AES-256 key.
//
// The key is the first 32 characters of the padded standard base64 encoding
// of SHA-256(secret). Existing envelopes depend on this exact derivation.
func DeriveKey(secret string) []byte {
	digest := sha256.Sum256([]byte(secret))
	encoded := base64.StdEncoding.EncodeToString(digest[:])
	return []byte(encoded[:KeySize])
}

// IsDefaultSecret reports whether secret resolves to [DefaultInsecureSecret].
func IsDefaultSecret(secret string) bool {
	return secret == "" || secret == DefaultInsecureSecret
}

// Encrypt implements [VaultCipher].
func (c *aesVaultCipher) Encrypt(plaintext string) (string, error) {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return "", fmt.Errorf("error generating IV: %w", err)
	}

	// Seal appends the tag to the ciphertext.
	sealed := c.aead.Seal(nil, iv, []byte(plaintext), nil)
	ciphertext, tag := sealed[:len(sealed)-TagSize], sealed[len(sealed)-TagSize:]

	return strings.Join([]string{
		hex.EncodeToString(iv),
		hex.EncodeToString(tag),
		hex.EncodeToString(ciphertext),
	}, envelopeSeparator), nil
}

// Decrypt implements [VaultCipher].
func (c *aesVaultCipher) Decrypt(envelope string) (string, error) {
	iv, tag, ciphertext, err := parseEnvelope(envelope)
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := c.aead.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", ErrAuthenticationFailed
	}

	return string(plaintext), nil
}

func parseEnvelope(envelope string) (iv, tag, ciphertext []byte, err error) {
	parts := strings.Split(envelope, envelopeSeparator)
	if len(parts) != envelopeParts {
		return nil, nil, nil, fmt.Errorf("%w: expected %d segments, got %d", ErrInvalidEnvelope, envelopeParts, len(parts))
	}

	decoded := make([][]byte, envelopeParts)
	for i, part := range parts {
		decoded[i], err = hex.DecodeString(part)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%w: segment %d is not hex", ErrInvalidEnvelope, i)
		}
	}

	iv, tag, ciphertext = decoded[0], decoded[1], decoded[2]
	if len(iv) != IVSize {
		return nil, nil, nil, fmt.Errorf("%w: iv must be %d bytes, got %d", ErrInvalidEnvelope, IVSize, len(iv))
	}
	if len(tag) != TagSize {
		return nil, nil, nil, fmt.Errorf("%w: auth tag must be %d bytes, got %d", ErrInvalidEnvelope, TagSize, len(tag))
	}

	return iv, tag, ciphertext, nil
}
