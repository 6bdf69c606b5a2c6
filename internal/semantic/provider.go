// Package semantic scores resume/job similarity in embedding space. The
// embedding backend is a capability: when it is unavailable the matcher
// degrades to a neutral pass-through instead of penalizing candidates.
package semantic

import "context"

// EmbeddingProvider embeds text into fixed-size vectors. Implementations
// must be safe for concurrent use and should initialize any underlying
// client lazily, at most once per process.
type EmbeddingProvider interface {
	// Embed returns the embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// Available reports whether the backend can produce embeddings at all.
	Available() bool
}

// Disabled is the EmbeddingProvider used when no backend initialized.
// Its matcher result never penalizes a candidate.
type Disabled struct{}

// NewDisabled returns the no-capability provider.
func NewDisabled() Disabled {
	return Disabled{}
}

// Embed always fails; the matcher checks Available first.
func (Disabled) Embed(context.Context, string) ([]float32, error) {
	return nil, ErrUnavailable
}

// Available implements EmbeddingProvider.
func (Disabled) Available() bool {
	return false
}
