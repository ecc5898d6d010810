package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dataforge-server/internal/dataset/domain"
	"dataforge-server/internal/dataset/persistence/internal"
	"dataforge-server/internal/dataset/usecases"
	"dataforge-server/internal/infra/sql"
)

func NewTemplateRepository(orm sql.ORM) (*SimpleTemplateRepository, error) {
	err := orm.AutoMigrate(&internal.Template{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleTemplateRepository{
		orm: orm,
	}, nil
}

var _ usecases.TemplateRepository = (*SimpleTemplateRepository)(nil)

// SimpleTemplateRepository lists templates in creation order. Every read decodes fresh
// values, so callers never share memory with the store.
type SimpleTemplateRepository struct {
	orm sql.ORM
}

func (r *SimpleTemplateRepository) Create(ctx context.Context, template domain.Template) error {
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		var last internal.Template
		position := int64(1)
		err := tx.Order("position desc").First(&last).Error()
		switch {
		case errors.Is(err, sql.ErrRecordNotFound):
		case err != nil:
			return fmt.Errorf("reading last position: %w", err)
		default:
			position = last.Position + 1
		}

		entity := internal.FromTemplate(template, position)
		return tx.Create(&entity).Error()
	})
	if err != nil {
		return fmt.Errorf("storing template %s: %w", template.ID, err)
	}

	slog.Debug("template stored", slog.String("id", template.ID.String()))

	return nil
}

func (r *SimpleTemplateRepository) FindAll(ctx context.Context) ([]domain.Template, error) {
	var entities []internal.Template
	err := r.orm.
		WithContext(ctx).
		Order("position asc").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Template, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleTemplateRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		var entity internal.Template
		err := tx.First(&entity, "id = ?", id.String()).Error()
		if errors.Is(err, sql.ErrRecordNotFound) {
			return usecases.ErrTemplateNotFound
		}
		if err != nil {
			return fmt.Errorf("database query: %w", err)
		}

		if err := tx.Delete(&internal.Template{}, "id = ?", id.String()).Error(); err != nil {
			return fmt.Errorf("deleting template %s: %w", id, err)
		}
		return nil
	})
}
