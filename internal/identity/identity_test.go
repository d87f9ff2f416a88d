package identity_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgoodwin/quoteforge/internal/identity"
)

func TestDocumentNumber(t *testing.T) {
	jan := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		prefix   string
		t        time.Time
		sequence int
		want     string
	}{
		{name: "KitchenQuote", prefix: "K", t: jan, sequence: 7, want: "K26010007"},
		{name: "Job", prefix: "J", t: jan, sequence: 1, want: "J26010001"},
		{name: "LargeSequence", prefix: "B", t: jan, sequence: 12345, want: "B260112345"},
		{name: "December", prefix: "C", t: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), sequence: 42, want: "C25120042"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identity.DocumentNumber(tt.prefix, tt.t, tt.sequence))
		})
	}
}

func TestNewToken(t *testing.T) {
	token := identity.NewToken()

	// 32 bytes of entropy, base64 url-encoded without padding.
	require.Len(t, token, 43)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		tok := identity.NewToken()
		_, dup := seen[tok]
		require.False(t, dup, "tokens must not repeat")

		seen[tok] = struct{}{}
	}
}

func TestNewToken_URLSafe(t *testing.T) {
	for i := 0; i < 20; i++ {
		token := identity.NewToken()
		assert.Equal(t, token, strings.Map(func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
				return r
			}

			return -1
		}, token))
	}
}
