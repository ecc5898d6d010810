package inference

import (
	"strings"

	"dataforge-server/internal/dataset/domain"
)

// sampleSize is the number of non-missing values inspected per column.
const sampleSize = 5

type nameRule struct {
	dataType domain.DataType
	matches  func(name string) bool
}

// Name rules run in order and win over anything the values suggest.
var nameRules = []nameRule{
	{domain.DataTypeEmail, containsAny("email", "e-mail")},
	{domain.DataTypePhone, containsAny("phone", "mobile", "tel")},
	{domain.DataTypeAddress, containsAny("address", "location", "street")},
	{domain.DataTypeURL, containsAny("url", "website", "link")},
	{domain.DataTypeDate, containsAny("date", "time", "dob", "birth")},
	{domain.DataTypeCurrency, containsAny("price", "amount", "cost", "salary")},
	{domain.DataTypeUUID, func(name string) bool {
		return strings.Contains(name, "id") && containsAny("uuid", "guid")(name)
	}},
	{domain.DataTypeBoolean, func(name string) bool {
		switch name {
		case "active", "enabled", "verified":
			return true
		}
		return strings.HasPrefix(name, "is_")
	}},
}

func containsAny(needles ...string) func(string) bool {
	return func(name string) bool {
		for _, needle := range needles {
			if strings.Contains(name, needle) {
				return true
			}
		}
		return false
	}
}

// InferDataType assigns a type to a column from its name first and its samples second.
func InferDataType(column Column) domain.DataType {
	name := strings.ToLower(column.Name)
	for _, rule := range nameRules {
		if rule.matches(name) {
			return rule.dataType
		}
	}

	samples := column.Samples
	if len(samples) > sampleSize {
		samples = samples[:sampleSize]
	}
	if len(samples) == 0 {
		return domain.DataTypeString
	}

	switch column.Native {
	case NativeBoolean:
		return domain.DataTypeBoolean
	case NativeNumber:
		return domain.DataTypeNumber
	}

	for _, sample := range samples {
		switch strings.ToLower(sample) {
		case "true", "false", "0", "1":
		default:
			return domain.DataTypeString
		}
	}
	return domain.DataTypeBoolean
}

// InferFields turns every column of table into a field, keeping column order.
func InferFields(table Table) ([]domain.Field, error) {
	fields := make([]domain.Field, 0, len(table.Columns))
	for i, column := range table.Columns {
		field, err := domain.NewFieldBuilder().
			WithName(column.Name).
			WithType(InferDataType(column)).
			WithOrder(i).
			Build()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}
