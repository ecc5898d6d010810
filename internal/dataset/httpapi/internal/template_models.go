package internal

import (
	"dataforge-server/internal/dataset/domain"
	"dataforge-server/internal/dataset/usecases"
)

// Request models
type TemplateCreateRequest struct {
	Name        string              `json:"name" validate:"required"`
	Description *string             `json:"description,omitempty"`
	Fields      []TypedFieldRequest `json:"fields" validate:"dive"`
}

// Response models
type TemplateResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Fields      []FieldResponse `json:"fields"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}

// Conversion functions
func (r TemplateCreateRequest) ToDraft() usecases.TemplateDraft {
	return usecases.TemplateDraft{
		Name:        r.Name,
		Description: r.Description,
		Fields:      ToTypedFields(r.Fields),
	}
}

func ToTemplateResponse(template domain.Template) TemplateResponse {
	return TemplateResponse{
		ID:          template.ID.String(),
		Name:        template.Name,
		Description: template.Description,
		Fields:      ToFieldListResponse(template.Fields).Fields,
	}
}

func ToTemplateListResponse(templates []domain.Template) []TemplateResponse {
	responses := make([]TemplateResponse, len(templates))
	for i, template := range templates {
		responses[i] = ToTemplateResponse(template)
	}
	return responses
}
