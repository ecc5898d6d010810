package internal

import (
	"dataforge-server/internal/dataset/domain"
)

// Request models
type PreviewRequest struct {
	Fields   []FieldRequest `json:"fields" validate:"required,min=1,dive"`
	RowCount *int           `json:"rowCount,omitempty"`
}

// ExportRequest leaves the row count bounds to the data service, which owns the limit.
type ExportRequest struct {
	Fields   []TypedFieldRequest `json:"fields" validate:"required,min=1,dive"`
	RowCount int                 `json:"rowCount"`
	Format   string              `json:"format" validate:"required"`
}

// Response models
type PreviewResponse struct {
	Data []domain.Record `json:"data"`
}

func ToPreviewResponse(table domain.Table) PreviewResponse {
	return PreviewResponse{Data: table.Records()}
}
