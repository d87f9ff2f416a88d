package client

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/identity"
)

var ErrNotFound = errors.New("client not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=client
type Repository interface {
	CreateClient(ctx context.Context, c *Client) error
	GetClient(ctx context.Context, companyID, id uuid.UUID) (*Client, error)
	GetClientByMagicLink(ctx context.Context, token string) (*Client, error)
	ListClients(ctx context.Context, companyID uuid.UUID, search string) ([]*Client, error)
	UpdateClient(ctx context.Context, c *Client) error
	DeleteClient(ctx context.Context, companyID, id uuid.UUID) error
	RotateMagicLink(ctx context.Context, companyID, id uuid.UUID, token string, expiresAt time.Time) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	State   string
	ZipCode string
	Notes   string
}

func (p CreateParams) validate() error {
	if p.Name == "" {
		return fmt.Errorf("client name is required")
	}

	if p.Email != "" {
		if _, err := mail.ParseAddress(p.Email); err != nil {
			return fmt.Errorf("invalid client email: %w", err)
		}
	}

	return nil
}

func (s *Service) Create(ctx context.Context, companyID uuid.UUID, params CreateParams) (*Client, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	expires := time.Now().Add(MagicLinkTTL)
	c := &Client{
		CompanyID:          companyID,
		Name:               params.Name,
		Email:              params.Email,
		Phone:              params.Phone,
		Address:            params.Address,
		City:               params.City,
		State:              params.State,
		ZipCode:            params.ZipCode,
		Notes:              params.Notes,
		MagicLinkToken:     identity.NewToken(),
		MagicLinkExpiresAt: &expires,
	}
	if err := s.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, companyID, id uuid.UUID) (*Client, error) {
	return s.repo.GetClient(ctx, companyID, id)
}

// GetByMagicLink resolves a portal magic link to a client. Expired or
// unknown tokens both come back as ErrNotFound; the portal never
// reveals which.
func (s *Service) GetByMagicLink(ctx context.Context, token string) (*Client, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	c, err := s.repo.GetClientByMagicLink(ctx, token)
	if err != nil {
		return nil, err
	}

	if !c.MagicLinkValidAt(time.Now()) {
		return nil, ErrNotFound
	}

	return c, nil
}

func (s *Service) List(ctx context.Context, companyID uuid.UUID, search string) ([]*Client, error) {
	return s.repo.ListClients(ctx, companyID, search)
}

func (s *Service) Update(ctx context.Context, c *Client) error {
	if c.Name == "" {
		return fmt.Errorf("client name is required")
	}

	return s.repo.UpdateClient(ctx, c)
}

func (s *Service) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return s.repo.DeleteClient(ctx, companyID, id)
}

// RegenerateMagicLink rotates the client's magic link and resets its
// expiry. The previous token stops resolving immediately.
func (s *Service) RegenerateMagicLink(ctx context.Context, companyID, id uuid.UUID) (*Client, error) {
	token := identity.NewToken()
	expires := time.Now().Add(MagicLinkTTL)

	if err := s.repo.RotateMagicLink(ctx, companyID, id, token, expires); err != nil {
		return nil, err
	}

	return s.repo.GetClient(ctx, companyID, id)
}
