package transform

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Defaults for the Anthropic provider.
const (
	defaultAnthropicModel     = anthropic.ModelClaudeSonnet4_0
	defaultAnthropicMaxTokens = 1024
)

// Anthropic transforms text through the Anthropic Messages API.
type Anthropic struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
	system    string
	ready     bool
}

// AnthropicOption configures the Anthropic provider.
type AnthropicOption func(*Anthropic)

// WithAnthropicModel overrides the default model.
func WithAnthropicModel(model anthropic.Model) AnthropicOption {
	return func(a *Anthropic) {
		a.model = model
	}
}

// WithAnthropicMaxTokens sets the response token budget.
func WithAnthropicMaxTokens(n int64) AnthropicOption {
	return func(a *Anthropic) {
		if n > 0 {
			a.maxTokens = n
		}
	}
}

// WithAnthropicSystemPrompt sets an instruction prepended to every
// transformation request.
func WithAnthropicSystemPrompt(prompt string) AnthropicOption {
	return func(a *Anthropic) {
		a.system = prompt
	}
}

// NewAnthropic creates the provider. With an empty API key the
// provider reports not ready and refuses to run.
func NewAnthropic(apiKey string, opts ...AnthropicOption) *Anthropic {
	a := &Anthropic{
		model:     defaultAnthropicModel,
		maxTokens: defaultAnthropicMaxTokens,
	}
	for _, opt := range opts {
		opt(a)
	}
	if apiKey != "" {
		a.client = anthropic.NewClient(option.WithAPIKey(apiKey))
		a.ready = true
	}
	return a
}

// Name implements Provider.
func (a *Anthropic) Name() string { return "anthropic" }

// Ready implements Provider.
func (a *Anthropic) Ready() bool { return a.ready }

// Run implements Provider.
func (a *Anthropic) Run(ctx context.Context, input string) (string, error) {
	if !a.ready {
		return "", ErrNotReady
	}

	params := anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(input)),
		},
	}
	if a.system != "" {
		params.System = []anthropic.TextBlockParam{{Text: a.system}}
	}

	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic transform: %w", err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", ErrEmptyResult
}
