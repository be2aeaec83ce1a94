package transform

import "context"

// Speech is the declared speech-to-text provider. The key binding and
// registry slot exist so hosts can surface the feature, but no backend
// is wired yet; Run always reports ErrNotIntegrated.
//
// TODO: integrate a streaming transcription backend and feed partial
// results through the host's result channel.
type Speech struct{}

// NewSpeech creates the placeholder provider.
func NewSpeech() *Speech { return &Speech{} }

// Name implements Provider.
func (s *Speech) Name() string { return "speech" }

// Ready implements Provider.
func (s *Speech) Ready() bool { return false }

// Run implements Provider.
func (s *Speech) Run(ctx context.Context, input string) (string, error) {
	return "", ErrNotIntegrated
}
