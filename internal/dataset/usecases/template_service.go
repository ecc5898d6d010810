package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dataforge-server/internal/dataset/domain"
)

var ErrTemplateNotFound = domain.NewNotFoundError("Template not found")

func NewTemplateService(repository TemplateRepository) *SimpleTemplateService {
	return &SimpleTemplateService{
		repository: repository,
	}
}

var _ TemplateService = &SimpleTemplateService{}

type SimpleTemplateService struct {
	repository TemplateRepository
}

// CreateTemplate builds a template from draft. Every field gets a fresh id.
func (s *SimpleTemplateService) CreateTemplate(ctx context.Context, draft TemplateDraft) (domain.Template, error) {
	template, err := domain.NewTemplateBuilder().
		WithName(draft.Name).
		WithDescription(draft.Description).
		WithFields(draft.Fields).
		Build()
	if err != nil {
		return domain.Template{}, domain.AsInputError(err)
	}

	if err := s.repository.Create(ctx, template); err != nil {
		slog.Error("creating template", slog.String("error", err.Error()))
		return domain.Template{}, fmt.Errorf("creating template: %w", err)
	}

	slog.Info("template created successfully",
		slog.String("id", template.ID.String()),
		slog.String("name", template.Name),
		slog.Int("fields", len(template.Fields)))

	return template, nil
}

func (s *SimpleTemplateService) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	templates, err := s.repository.FindAll(ctx)
	if err != nil {
		slog.Error("listing templates", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	return templates, nil
}

func (s *SimpleTemplateService) DeleteTemplate(ctx context.Context, id domain.ID) error {
	err := s.repository.Delete(ctx, id)
	if errors.Is(err, ErrTemplateNotFound) {
		slog.Warn("template not found", slog.String("id", id.String()))
		return ErrTemplateNotFound
	}
	if err != nil {
		slog.Error("deleting template",
			slog.String("id", id.String()),
			slog.String("error", err.Error()))
		return fmt.Errorf("deleting template: %w", err)
	}

	slog.Info("template deleted", slog.String("id", id.String()))

	return nil
}
