// Package client manages a company's customers and their long-lived
// portal magic links.
package client

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MagicLinkTTL is how long a magic link stays valid after being
// issued or regenerated.
const MagicLinkTTL = 30 * 24 * time.Hour

type Client struct {
	ID                 uuid.UUID
	CompanyID          uuid.UUID
	Name               string
	Email              string
	Phone              string
	Address            string
	City               string
	State              string
	ZipCode            string
	Notes              string
	MagicLinkToken     string
	MagicLinkExpiresAt *time.Time
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// FullAddress joins the present address parts with commas.
func (c *Client) FullAddress() string {
	parts := make([]string, 0, 4)

	for _, p := range []string{c.Address, c.City, c.State, c.ZipCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", ")
}

// MagicLinkValidAt reports whether the client's magic link grants
// portal access at the given instant.
func (c *Client) MagicLinkValidAt(now time.Time) bool {
	return c.MagicLinkToken != "" && c.MagicLinkExpiresAt != nil && c.MagicLinkExpiresAt.After(now)
}
