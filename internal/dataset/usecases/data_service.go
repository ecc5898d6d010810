package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dataforge-server/internal/dataset/domain"
	"dataforge-server/internal/dataset/export"
)

const (
	DefaultPreviewMaxRows = 10
	DefaultExportMaxRows  = 100000
)

type DataServiceOptions struct {
	PreviewMaxRows int
	ExportMaxRows  int
}

func NewDataService(generator RecordGenerator, opts DataServiceOptions) *SimpleDataService {
	if opts.PreviewMaxRows <= 0 {
		opts.PreviewMaxRows = DefaultPreviewMaxRows
	}
	if opts.ExportMaxRows <= 0 {
		opts.ExportMaxRows = DefaultExportMaxRows
	}
	return &SimpleDataService{
		generator: generator,
		options:   opts,
		now:       time.Now,
	}
}

var _ DataService = &SimpleDataService{}

type SimpleDataService struct {
	generator RecordGenerator
	options   DataServiceOptions
	now       func() time.Time
}

// WithClock replaces the time source used to name exports.
func (s *SimpleDataService) WithClock(now func() time.Time) *SimpleDataService {
	s.now = now
	return s
}

// Preview generates at most PreviewMaxRows records. A nil rowCount asks for the maximum.
// Unknown field types are generated as strings.
func (s *SimpleDataService) Preview(ctx context.Context, fields []domain.Field, rowCount *int) (domain.Table, error) {
	if err := validateFields(fields, false); err != nil {
		return domain.Table{}, err
	}

	rows := s.options.PreviewMaxRows
	if rowCount != nil {
		rows = min(max(*rowCount, 0), s.options.PreviewMaxRows)
	}

	table := s.generator.Table(fields, rows)

	slog.Debug("preview generated",
		slog.Int("fields", len(fields)),
		slog.Int("rows", table.Len()))

	return table, nil
}

func (s *SimpleDataService) Export(ctx context.Context, fields []domain.Field, rowCount int, format domain.ExportFormat) (domain.Export, error) {
	if err := validateFields(fields, true); err != nil {
		return domain.Export{}, err
	}

	if rowCount < 1 || rowCount > s.options.ExportMaxRows {
		return domain.Export{}, domain.NewInputError("Row count must be between 1 and %d", s.options.ExportMaxRows)
	}

	if !format.IsValid() {
		return domain.Export{}, domain.NewInputError("Unsupported format: %s", format)
	}

	table := s.generator.Table(fields, rowCount)

	result, err := export.Serialize(table, format)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return domain.Export{}, err
		}
		slog.Error("exporting data", slog.String("error", err.Error()))
		return domain.Export{}, fmt.Errorf("Failed to export data: %w", err)
	}

	result.Filename = fmt.Sprintf("data-export-%d.%s", s.now().UnixMilli(), result.Extension)

	slog.Info("data exported",
		slog.String("format", format.String()),
		slog.Int("rows", rowCount),
		slog.String("filename", result.Filename))

	return result, nil
}

func validateFields(fields []domain.Field, strictTypes bool) error {
	if len(fields) == 0 {
		return domain.NewInputError("No fields provided")
	}
	for i, field := range fields {
		if field.Name == "" {
			return domain.NewInputError("Field %d must have a name", i)
		}
		if strictTypes && !field.Type.IsValid() {
			return domain.NewInputError("Field %q has unknown type %q", field.Name, field.Type)
		}
		if field.Order < 0 {
			return domain.NewInputError("Field %q must not have a negative order", field.Name)
		}
	}
	return nil
}
