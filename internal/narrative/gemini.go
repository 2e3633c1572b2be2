package narrative

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
)

// ErrEmptyNarrative is returned when the model produced no text.
var ErrEmptyNarrative = errors.New("narrative model returned no text")

// contentGenerator is the part of *genai.Models the narrator uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiNarrator asks a Gemini model to explain a report.
type GeminiNarrator struct {
	models contentGenerator
	model  string
}

// NewGeminiNarrator creates a narrator backed by the Gemini API.
func NewGeminiNarrator(ctx context.Context, apiKey, model string) (*GeminiNarrator, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiNarrator{models: client.Models, model: model}, nil
}

// Narrate sends the report to the model and returns its answer as plain text.
func (n *GeminiNarrator) Narrate(ctx context.Context, req *domain.DiscountRequest, report *domain.DiscountReport) (string, error) {
	prompt, err := execute(promptTmpl, newReportView(req, report))
	if err != nil {
		return "", err
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.2)),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	}

	result, err := n.models.GenerateContent(ctx, n.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := PlainText(result.Text())
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyNarrative
	}
	return text, nil
}
