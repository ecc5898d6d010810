package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"dataforge-server/internal/dataset/domain"
)

const MinPromptLength = 10

var ErrInvalidModelReply = errors.New("Invalid response from AI")

const schemaPromptTemplate = `You are a data schema expert. Given a user's description of a dataset, generate an appropriate schema with field names and data types.

Available data types: %s

User request: %s

Respond ONLY with valid JSON in this exact format (no markdown, no code blocks):
{
  "fields": [
    { "name": "field_name", "type": "data_type", "order": 0 },
    { "name": "field_name2", "type": "data_type2", "order": 1 }
  ]
}

Be intelligent about field types based on context. For example:
- Names should be "string"
- Ages should be "number"
- Birth dates should be "date"
- Email addresses should be "email"
- Phone numbers should be "phone"
- Prices/amounts should be "currency"
- True/false values should be "boolean"
`

func NewSchemaService(inferrer FieldInferrer, model LanguageModel) *SimpleSchemaService {
	return &SimpleSchemaService{
		inferrer: inferrer,
		model:    model,
	}
}

var _ SchemaService = &SimpleSchemaService{}

type SimpleSchemaService struct {
	inferrer FieldInferrer
	model    LanguageModel
}

func (s *SimpleSchemaService) InferFromUpload(ctx context.Context, filename string, content []byte) ([]domain.Field, error) {
	fields, err := s.inferrer.InferFields(filename, content)
	if err != nil {
		slog.Warn("inferring fields from upload",
			slog.String("filename", filename),
			slog.String("error", err.Error()))
		return nil, err
	}

	slog.Info("schema inferred from upload",
		slog.String("filename", filename),
		slog.Int("fields", len(fields)))

	return fields, nil
}

func (s *SimpleSchemaService) GenerateFromPrompt(ctx context.Context, prompt string) ([]domain.Field, error) {
	if utf8.RuneCountInString(prompt) < MinPromptLength {
		return nil, domain.NewInputError("Prompt must be at least %d characters", MinPromptLength)
	}

	reply, err := s.model.GenerateJSON(ctx, SchemaPrompt(prompt))
	if err != nil {
		slog.Error("generating schema", slog.String("error", err.Error()))
		return nil, domain.NewUpstreamError(err, "Failed to generate schema")
	}

	fields, err := parseModelReply(reply)
	if err != nil {
		slog.Error("parsing model reply", slog.String("error", err.Error()))
		return nil, domain.NewUpstreamError(err, "Failed to generate schema")
	}

	slog.Info("schema generated from prompt", slog.Int("fields", len(fields)))

	return fields, nil
}

// SchemaPrompt wraps a user request into the instructions sent to the model.
func SchemaPrompt(request string) string {
	types := make([]string, 0, len(domain.DataTypes()))
	for _, dataType := range domain.DataTypes() {
		types = append(types, dataType.String())
	}
	return fmt.Sprintf(schemaPromptTemplate, strings.Join(types, ", "), request)
}

// ValidateModelReply accepts the replies GenerateFromPrompt can turn into fields.
func ValidateModelReply(reply string) error {
	_, err := parseModelReply(reply)
	return err
}

type modelField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// parseModelReply only checks the shape of the reply. Types are kept verbatim and the
// order is the position in the returned list.
func parseModelReply(reply string) ([]domain.Field, error) {
	var document struct {
		Fields json.RawMessage `json:"fields"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModelReply, err)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(document.Fields, &entries); err != nil || len(entries) == 0 {
		return nil, ErrInvalidModelReply
	}

	fields := make([]domain.Field, 0, len(entries))
	for i, entry := range entries {
		var candidate modelField
		if err := json.Unmarshal(entry, &candidate); err != nil {
			return nil, fmt.Errorf("%w: field %d: %w", ErrInvalidModelReply, i, err)
		}

		builder := domain.NewFieldBuilder().WithName(candidate.Name).WithOrder(i)
		if candidate.Type != "" {
			builder = builder.WithType(domain.DataType(candidate.Type))
		}
		field, err := builder.Build()
		if err != nil {
			return nil, fmt.Errorf("%w: field %d: %w", ErrInvalidModelReply, i, err)
		}
		fields = append(fields, field)
	}

	return fields, nil
}

func stripCodeFence(reply string) string {
	text := strings.TrimSpace(reply)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if newline := strings.IndexByte(text, '\n'); newline >= 0 {
		text = text[newline+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "```"))
}
