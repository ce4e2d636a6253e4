// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is an issued or verified access token.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be sent in the Authorization header.
// UserID is the parsed "sub" claim.
type Token struct {
	SignedString string    `json:"-"`
	UserID       int64     `json:"-"`
	ExpiresAt    time.Time `json:"-"`
}

// UserIDFromClaims parses the "sub" claim as a base-10 int64.
func UserIDFromClaims(claims jwt.Claims) (int64, error) {
	subject, err := claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if subject == "" {
		return 0, fmt.Errorf("error extracting UserID from token: empty subject")
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
