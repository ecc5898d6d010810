package usecases

import (
	"context"

	"dataforge-server/internal/dataset/domain"
)

//go:generate mockgen -source=port.go -destination=../../../test/unit/doubles/dataset/usecases/port_mock.go -package=usecases -mock_names=TemplateRepository=MockTemplateRepository,LanguageModel=MockLanguageModel,FieldInferrer=MockFieldInferrer,RecordGenerator=MockRecordGenerator

type TemplateRepository interface {
	Create(ctx context.Context, template domain.Template) error
	FindAll(ctx context.Context) ([]domain.Template, error)
	// Delete returns ErrTemplateNotFound when no template has the given id.
	Delete(ctx context.Context, id domain.ID) error
}

// LanguageModel answers a prompt with a JSON document.
type LanguageModel interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

type FieldInferrer interface {
	InferFields(filename string, content []byte) ([]domain.Field, error)
}

type RecordGenerator interface {
	Table(fields []domain.Field, rows int) domain.Table
}
