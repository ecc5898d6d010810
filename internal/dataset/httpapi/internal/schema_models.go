package internal

type GenerateSchemaRequest struct {
	Prompt string `json:"prompt" validate:"required,min=10"`
}
