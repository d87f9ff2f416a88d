package client

import (
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/client"
)

type clientResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email,omitempty"`
	Phone              string     `json:"phone,omitempty"`
	Address            string     `json:"address,omitempty"`
	City               string     `json:"city,omitempty"`
	State              string     `json:"state,omitempty"`
	ZipCode            string     `json:"zip_code,omitempty"`
	Notes              string     `json:"notes,omitempty"`
	MagicLinkToken     string     `json:"magic_link_token,omitempty"`
	MagicLinkExpiresAt *time.Time `json:"magic_link_expires_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

func toResponse(c *client.Client) clientResponse {
	return clientResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Email:              c.Email,
		Phone:              c.Phone,
		Address:            c.Address,
		City:               c.City,
		State:              c.State,
		ZipCode:            c.ZipCode,
		Notes:              c.Notes,
		MagicLinkToken:     c.MagicLinkToken,
		MagicLinkExpiresAt: c.MagicLinkExpiresAt,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func toResponseList(clients []*client.Client) []clientResponse {
	resp := make([]clientResponse, len(clients))
	for i, c := range clients {
		resp[i] = toResponse(c)
	}

	return resp
}
