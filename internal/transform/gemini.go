package transform

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// defaultGeminiModel is the model used unless overridden.
const defaultGeminiModel = "gemini-1.5-flash"

// Gemini transforms text through the Google generative AI API. The
// client is created per call: genai clients hold a connection and the
// provider is expected to run rarely, from a worker goroutine.
type Gemini struct {
	apiKey string
	model  string
	system string
}

// GeminiOption configures the Gemini provider.
type GeminiOption func(*Gemini)

// WithGeminiModel overrides the default model.
func WithGeminiModel(model string) GeminiOption {
	return func(g *Gemini) {
		g.model = model
	}
}

// WithGeminiSystemPrompt sets an instruction prepended to every
// transformation request.
func WithGeminiSystemPrompt(prompt string) GeminiOption {
	return func(g *Gemini) {
		g.system = prompt
	}
}

// NewGemini creates the provider. With an empty API key the provider
// reports not ready and refuses to run.
func NewGemini(apiKey string, opts ...GeminiOption) *Gemini {
	g := &Gemini{apiKey: apiKey, model: defaultGeminiModel}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name implements Provider.
func (g *Gemini) Name() string { return "gemini" }

// Ready implements Provider.
func (g *Gemini) Ready() bool { return g.apiKey != "" }

// Run implements Provider.
func (g *Gemini) Run(ctx context.Context, input string) (string, error) {
	if !g.Ready() {
		return "", ErrNotReady
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini transform: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	if g.system != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(g.system)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(input))
	if err != nil {
		return "", fmt.Errorf("gemini transform: %w", err)
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
		break
	}
	if b.Len() == 0 {
		return "", ErrEmptyResult
	}
	return b.String(), nil
}
