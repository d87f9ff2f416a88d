package template

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a template does not exist for the
// requesting company.
var ErrNotFound = errors.New("template not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=template
type Repository interface {
	CreateTemplate(ctx context.Context, tpl *Template) error
	GetTemplate(ctx context.Context, companyID, id uuid.UUID) (*Template, error)
	ListTemplates(ctx context.Context, companyID uuid.UUID) ([]*Template, error)
	UpdateTemplate(ctx context.Context, tpl *Template) error
	DeleteTemplate(ctx context.Context, companyID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name  string
	Type  Type
	Items []LineItemConfig
}

func (s *Service) Create(ctx context.Context, companyID uuid.UUID, params CreateParams) (*Template, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("template name is required")
	}

	tpl := &Template{
		CompanyID: &companyID,
		Name:      params.Name,
		Type:      params.Type,
		Items:     params.Items,
	}
	if err := s.repo.CreateTemplate(ctx, tpl); err != nil {
		return nil, err
	}

	return tpl, nil
}

// List returns the system templates followed by the company's own.
func (s *Service) List(ctx context.Context, companyID uuid.UUID) ([]*Template, error) {
	own, err := s.repo.ListTemplates(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return append(SystemTemplates(), own...), nil
}

func (s *Service) Get(ctx context.Context, companyID, id uuid.UUID) (*Template, error) {
	return s.repo.GetTemplate(ctx, companyID, id)
}

func (s *Service) Update(ctx context.Context, companyID uuid.UUID, tpl *Template) error {
	if tpl.IsSystem {
		return fmt.Errorf("system templates are immutable")
	}

	if tpl.CompanyID == nil || *tpl.CompanyID != companyID {
		return ErrNotFound
	}

	return s.repo.UpdateTemplate(ctx, tpl)
}

func (s *Service) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return s.repo.DeleteTemplate(ctx, companyID, id)
}

// Resolve picks the template to seed a new quote from: a company
// template by id when given, otherwise the system template for the
// quote's template type. Custom quotes with no template resolve to nil
// and start empty.
func (s *Service) Resolve(ctx context.Context, companyID uuid.UUID, templateID *uuid.UUID, t Type) (*Template, error) {
	if templateID != nil {
		return s.repo.GetTemplate(ctx, companyID, *templateID)
	}

	return SystemTemplateFor(t), nil
}
