// Package transform hosts the text-transformation providers behind
// the editing session: thin wrappers over inference SDKs plus a
// user-scriptable Lua provider.
//
// Providers run on worker goroutines owned by the host. Results must
// be delivered back onto the host's input-processing goroutine before
// touching any editing surface; that contract belongs to the host,
// not to this package.
package transform

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Errors returned by providers and the registry.
var (
	// ErrNotReady indicates the provider is missing credentials or a
	// script and cannot run.
	ErrNotReady = errors.New("transform provider is not ready")

	// ErrNotIntegrated indicates a declared feature whose backing
	// model has not been integrated yet.
	ErrNotIntegrated = errors.New("transform backend not integrated")

	// ErrEmptyResult indicates the backend returned no usable text.
	ErrEmptyResult = errors.New("transform returned no text")

	// ErrUnknownProvider indicates a registry lookup for an
	// unregistered name.
	ErrUnknownProvider = errors.New("unknown transform provider")
)

// Provider transforms input text into output text.
type Provider interface {
	// Name returns the provider identifier.
	Name() string

	// Ready reports whether the provider can run.
	Ready() bool

	// Run performs the transformation. It blocks until the backend
	// answers or ctx is done, and must be called off the input path.
	Run(ctx context.Context, input string) (string, error)
}

// Registry holds named providers. It is an explicit instance injected
// into whatever owns the input session.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a provider, replacing any with the same name.
func (r *Registry) Register(p Provider) {
	r.providers[p.Name()] = p
}

// Get returns the provider with the given name.
func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}
	return p, nil
}

// Names returns the registered provider names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run looks up a provider and runs it.
func (r *Registry) Run(ctx context.Context, name, input string) (string, error) {
	p, err := r.Get(name)
	if err != nil {
		return "", err
	}
	if !p.Ready() {
		return "", fmt.Errorf("%w: %s", ErrNotReady, name)
	}
	return p.Run(ctx, input)
}
