package internal

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"dataforge-server/internal/dataset/domain"
)

type Template struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Position    int64          `json:"position" gorm:"uniqueIndex;not null"`
	Name        string         `json:"name" gorm:"not null"`
	Description *string        `json:"description,omitempty"`
	Fields      TemplateFields `json:"fields" gorm:"type:json"`
}

func (Template) TableName() string {
	return "templates"
}

func (t Template) ToDomain() domain.Template {
	return domain.Template{
		ID:          domain.ID(t.ID),
		Name:        t.Name,
		Description: t.Description,
		Fields:      t.Fields.ToDomain(),
	}
}

func FromTemplate(value domain.Template, position int64) Template {
	return Template{
		ID:          value.ID.String(),
		Position:    position,
		Name:        value.Name,
		Description: value.Description,
		Fields:      FromFields(value.Fields),
	}
}

type TemplateField struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Order int    `json:"order"`
}

type TemplateFields []TemplateField

func (f TemplateFields) ToDomain() []domain.Field {
	result := make([]domain.Field, len(f))
	for i, field := range f {
		result[i] = domain.Field{
			ID:    domain.ID(field.ID),
			Name:  field.Name,
			Type:  domain.DataType(field.Type),
			Order: field.Order,
		}
	}
	return result
}

func FromFields(fields []domain.Field) TemplateFields {
	result := make(TemplateFields, len(fields))
	for i, field := range fields {
		result[i] = TemplateField{
			ID:    field.ID.String(),
			Name:  field.Name,
			Type:  field.Type.String(),
			Order: field.Order,
		}
	}
	return result
}

func (f *TemplateFields) Scan(value any) error {
	switch raw := value.(type) {
	case nil:
		*f = TemplateFields{}
		return nil
	case []byte:
		return json.Unmarshal(raw, f)
	case string:
		return json.Unmarshal([]byte(raw), f)
	default:
		return fmt.Errorf("unsupported template fields column type %T", value)
	}
}

func (f TemplateFields) Value() (driver.Value, error) {
	if len(f) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(f)
}
