package domain

import (
	"errors"
	"sort"
	"strings"

	"dataforge-server/internal/infra/utils"
)

var (
	ErrFieldNameRequired = errors.New("field name is required")
	ErrFieldOrderInvalid = errors.New("field order must not be negative")
)

type Field struct {
	ID    ID
	Name  string
	Type  DataType
	Order int
}

// SortFields returns a copy of fields ordered by Order. Ties keep their input position.
func SortFields(fields []Field) []Field {
	result := make([]Field, len(fields))
	copy(result, fields)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})
	return result
}

func NewFieldBuilder() *fieldBuilder {
	return &fieldBuilder{}
}

type fieldBuilder struct {
	actions []fieldHandler
}

type fieldHandler func(f *Field) error

func (b *fieldBuilder) WithName(name string) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		if strings.TrimSpace(name) == "" {
			return ErrFieldNameRequired
		}
		f.Name = name
		return nil
	})
	return b
}

// WithType does not reject unknown tags: the AI-assisted path keeps them verbatim.
func (b *fieldBuilder) WithType(dataType DataType) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		f.Type = dataType
		return nil
	})
	return b
}

func (b *fieldBuilder) WithOrder(order int) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		if order < 0 {
			return ErrFieldOrderInvalid
		}
		f.Order = order
		return nil
	})
	return b
}

func (b *fieldBuilder) Build() (Field, error) {
	result := Field{
		ID:   ID(utils.GenerateUUID()),
		Type: DataTypeString,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Field{}, err
		}
	}

	if result.Name == "" {
		return Field{}, ErrFieldNameRequired
	}

	return result, nil
}
