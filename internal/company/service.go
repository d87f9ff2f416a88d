package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("company not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=company
type Repository interface {
	CreateCompany(ctx context.Context, c *Company) error
	GetCompany(ctx context.Context, id uuid.UUID) (*Company, error)
	UpdateCompany(ctx context.Context, c *Company) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	City          string
	State         string
	ZipCode       string
	LicenseNumber string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Company, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("company name is required")
	}

	c := &Company{
		Name:          params.Name,
		Email:         params.Email,
		Phone:         params.Phone,
		Address:       params.Address,
		City:          params.City,
		State:         params.State,
		ZipCode:       params.ZipCode,
		LicenseNumber: params.LicenseNumber,
	}
	c.ApplyDefaults()

	if err := s.repo.CreateCompany(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Company, error) {
	return s.repo.GetCompany(ctx, id)
}

// UpdateSettings replaces the company's settings with the given
// values. Blank boilerplate falls back to the defaults so a company
// can never end up sending change orders with no legal text.
func (s *Service) UpdateSettings(ctx context.Context, c *Company) error {
	c.ApplyDefaults()
	return s.repo.UpdateCompany(ctx, c)
}
