package domain

import (
	"errors"
	"fmt"
	"strings"

	"dataforge-server/internal/infra/utils"
)

var (
	ErrTemplateNameRequired = errors.New("template name is required")
	ErrTemplateFieldInvalid = errors.New("template field is invalid")
)

// Template is a named, reusable bundle of fields. Templates are never updated once built.
type Template struct {
	ID          ID
	Name        string
	Description *string
	Fields      []Field
}

// Clone returns a copy that shares no memory with t.
func (t Template) Clone() Template {
	result := t
	if t.Description != nil {
		description := *t.Description
		result.Description = &description
	}
	result.Fields = make([]Field, len(t.Fields))
	copy(result.Fields, t.Fields)
	return result
}

func NewTemplateBuilder() *templateBuilder {
	return &templateBuilder{}
}

type templateBuilder struct {
	actions []templateHandler
}

type templateHandler func(t *Template) error

func (b *templateBuilder) WithName(name string) *templateBuilder {
	b.actions = append(b.actions, func(t *Template) error {
		if strings.TrimSpace(name) == "" {
			return ErrTemplateNameRequired
		}
		t.Name = name
		return nil
	})
	return b
}

func (b *templateBuilder) WithDescription(description *string) *templateBuilder {
	b.actions = append(b.actions, func(t *Template) error {
		t.Description = description
		return nil
	})
	return b
}

// WithFields copies the given fields into the template. Every field receives a fresh ID,
// whatever ID the caller supplied.
func (b *templateBuilder) WithFields(fields []Field) *templateBuilder {
	b.actions = append(b.actions, func(t *Template) error {
		t.Fields = make([]Field, 0, len(fields))
		for i, field := range fields {
			if !field.Type.IsValid() {
				return fmt.Errorf("%w: field %d has unknown type %q", ErrTemplateFieldInvalid, i, field.Type)
			}
			built, err := NewFieldBuilder().
				WithName(field.Name).
				WithType(field.Type).
				WithOrder(field.Order).
				Build()
			if err != nil {
				return fmt.Errorf("%w: field %d: %w", ErrTemplateFieldInvalid, i, err)
			}
			t.Fields = append(t.Fields, built)
		}
		return nil
	})
	return b
}

func (b *templateBuilder) Build() (Template, error) {
	result := Template{
		ID:     ID(utils.GenerateUUID()),
		Fields: []Field{},
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Template{}, err
		}
	}

	if result.Name == "" {
		return Template{}, ErrTemplateNameRequired
	}

	return result, nil
}
