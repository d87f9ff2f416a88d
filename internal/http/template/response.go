package template

import (
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/template"
)

type templateResponse struct {
	ID        uuid.UUID                 `json:"id"`
	Name      string                    `json:"name"`
	Type      template.Type             `json:"type"`
	IsSystem  bool                      `json:"is_system"`
	Items     []template.LineItemConfig `json:"items"`
	CreatedAt time.Time                 `json:"created_at"`
	UpdatedAt *time.Time                `json:"updated_at,omitempty"`
}

func toResponse(tpl *template.Template) templateResponse {
	return templateResponse{
		ID:        tpl.ID,
		Name:      tpl.Name,
		Type:      tpl.Type,
		IsSystem:  tpl.IsSystem,
		Items:     tpl.Items,
		CreatedAt: tpl.CreatedAt,
		UpdatedAt: tpl.UpdatedAt,
	}
}

func toResponseList(templates []*template.Template) []templateResponse {
	resp := make([]templateResponse, len(templates))
	for i, tpl := range templates {
		resp[i] = toResponse(tpl)
	}

	return resp
}
