package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

var (
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable is required for AI-powered schema generation. Please add it to enable this feature.")
	ErrEmptyReply    = errors.New("model returned an empty reply")
)

// Model answers a prompt with a JSON document.
type Model interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

var _ Model = &GeminiClient{}

// GeminiClient talks to the Gemini API. The underlying client is created on first use so a
// server without credentials still starts.
type GeminiClient struct {
	config GeminiConfig

	once   sync.Once
	client *genai.Client
	err    error
}

func NewGeminiClient(config GeminiConfig) *GeminiClient {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	return &GeminiClient{config: config}
}

func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(c.config.APIKey) == "" {
		return "", ErrMissingAPIKey
	}

	client, err := c.connect(ctx)
	if err != nil {
		return "", err
	}

	ctx, span := otel.Tracer("dataforge-server").Start(ctx, "llm.generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("llm.model", c.config.Model),
		attribute.Int("llm.prompt_length", len(prompt)),
	)

	resp, err := client.Models.GenerateContent(ctx, c.config.Model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		span.RecordError(err)
		slog.Error("calling gemini", slog.String("model", c.config.Model), slog.String("error", err.Error()))
		return "", fmt.Errorf("calling gemini: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyReply
	}

	slog.Debug("gemini reply received", slog.Int("length", len(text)))

	return text, nil
}

func (c *GeminiClient) connect(ctx context.Context) (*genai.Client, error) {
	c.once.Do(func() {
		c.client, c.err = genai.NewClient(context.WithoutCancel(ctx), &genai.ClientConfig{
			APIKey:  c.config.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if c.err != nil {
			c.err = fmt.Errorf("creating gemini client: %w", c.err)
		}
	})
	return c.client, c.err
}
