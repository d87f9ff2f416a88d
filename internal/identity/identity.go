// Package identity assigns human-readable document numbers and
// unguessable client-facing access tokens.
package identity

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors surfaced by stores when a database uniqueness
// constraint rejects a generated value. Callers retry with a freshly
// generated number or token; they never mutate the colliding value.
var (
	ErrNumberCollision = errors.New("document number already taken")
	ErrTokenCollision  = errors.New("access token already taken")
)

// TokenBytes is the entropy of a client-facing access token.
const TokenBytes = 32

// DocumentNumber formats a sequential document number as
// {prefix}{YYMM}{4-digit-zero-padded-sequence}, e.g. K26010007.
// The sequence is derived by the caller from a count of existing
// numbers sharing the same prefix and month.
func DocumentNumber(prefix string, t time.Time, sequence int) string {
	return fmt.Sprintf("%s%s%04d", prefix, t.Format("0601"), sequence)
}

// NewToken returns a cryptographically random, URL-safe access token.
func NewToken() string {
	buf := make([]byte, TokenBytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(fmt.Sprintf("reading random bytes: %v", err))
	}

	return base64.RawURLEncoding.EncodeToString(buf)
}
