package internal

import (
	"dataforge-server/internal/dataset/domain"
)

// Request models
type FieldRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required"`
	Type  string `json:"type" validate:"required"`
	Order int    `json:"order" validate:"gte=0"`
}

// TypedFieldRequest only accepts the supported data types.
type TypedFieldRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required"`
	Type  string `json:"type" validate:"required,datatype"`
	Order int    `json:"order" validate:"gte=0"`
}

// Response models
type FieldResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Order int    `json:"order"`
}

type FieldListResponse struct {
	Fields []FieldResponse `json:"fields"`
}

// Conversion functions
func (r FieldRequest) ToField() domain.Field {
	return domain.Field{
		ID:    domain.ID(r.ID),
		Name:  r.Name,
		Type:  domain.DataType(r.Type),
		Order: r.Order,
	}
}

func (r TypedFieldRequest) ToField() domain.Field {
	return FieldRequest(r).ToField()
}

func ToFields(requests []FieldRequest) []domain.Field {
	fields := make([]domain.Field, len(requests))
	for i, request := range requests {
		fields[i] = request.ToField()
	}
	return fields
}

func ToTypedFields(requests []TypedFieldRequest) []domain.Field {
	fields := make([]domain.Field, len(requests))
	for i, request := range requests {
		fields[i] = request.ToField()
	}
	return fields
}

func ToFieldResponse(field domain.Field) FieldResponse {
	return FieldResponse{
		ID:    field.ID.String(),
		Name:  field.Name,
		Type:  field.Type.String(),
		Order: field.Order,
	}
}

func ToFieldListResponse(fields []domain.Field) FieldListResponse {
	responses := make([]FieldResponse, len(fields))
	for i, field := range fields {
		responses[i] = ToFieldResponse(field)
	}
	return FieldListResponse{Fields: responses}
}
