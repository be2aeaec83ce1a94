package transform

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// defaultOpenAIModel is the model used unless overridden.
const defaultOpenAIModel = openai.ChatModelGPT4o

// OpenAI transforms text through the OpenAI chat completions API.
type OpenAI struct {
	client openai.Client
	model  openai.ChatModel
	system string
	ready  bool
}

// OpenAIOption configures the OpenAI provider.
type OpenAIOption func(*OpenAI)

// WithOpenAIModel overrides the default model.
func WithOpenAIModel(model openai.ChatModel) OpenAIOption {
	return func(o *OpenAI) {
		o.model = model
	}
}

// WithOpenAISystemPrompt sets an instruction prepended to every
// transformation request.
func WithOpenAISystemPrompt(prompt string) OpenAIOption {
	return func(o *OpenAI) {
		o.system = prompt
	}
}

// NewOpenAI creates the provider. With an empty API key the provider
// reports not ready and refuses to run.
func NewOpenAI(apiKey string, opts ...OpenAIOption) *OpenAI {
	o := &OpenAI{model: defaultOpenAIModel}
	for _, opt := range opts {
		opt(o)
	}
	if apiKey != "" {
		o.client = openai.NewClient(option.WithAPIKey(apiKey))
		o.ready = true
	}
	return o
}

// Name implements Provider.
func (o *OpenAI) Name() string { return "openai" }

// Ready implements Provider.
func (o *OpenAI) Ready() bool { return o.ready }

// Run implements Provider.
func (o *OpenAI) Run(ctx context.Context, input string) (string, error) {
	if !o.ready {
		return "", ErrNotReady
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if o.system != "" {
		messages = append(messages, openai.SystemMessage(o.system))
	}
	messages = append(messages, openai.UserMessage(input))

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    o.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("openai transform: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResult
	}
	return resp.Choices[0].Message.Content, nil
}
