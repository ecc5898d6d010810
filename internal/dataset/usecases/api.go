package usecases

import (
	"context"

	"dataforge-server/internal/dataset/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/dataset/usecases/api_mock.go -package=usecases

type SchemaService interface {
	InferFromUpload(ctx context.Context, filename string, content []byte) ([]domain.Field, error)
	GenerateFromPrompt(ctx context.Context, prompt string) ([]domain.Field, error)
}

type DataService interface {
	Preview(ctx context.Context, fields []domain.Field, rowCount *int) (domain.Table, error)
	Export(ctx context.Context, fields []domain.Field, rowCount int, format domain.ExportFormat) (domain.Export, error)
}

type TemplateService interface {
	CreateTemplate(ctx context.Context, draft TemplateDraft) (domain.Template, error)
	ListTemplates(ctx context.Context) ([]domain.Template, error)
	DeleteTemplate(ctx context.Context, id domain.ID) error
}

// TemplateDraft is the insert shape of a template. Field ids are ignored.
type TemplateDraft struct {
	Name        string
	Description *string
	Fields      []domain.Field
}
