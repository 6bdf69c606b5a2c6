package semantic

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultEmbeddingModel is the Gemini embedding model used when none is configured.
const DefaultEmbeddingModel = "text-embedding-004"

// Gemini is an EmbeddingProvider backed by the Gemini embedding API.
// The underlying client is created lazily on first use and cached for the
// process lifetime.
type Gemini struct {
	apiKey string
	model  string

	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewGemini returns a Gemini provider. model may be "" for the default.
// The API key is required; construction with an empty key should select the
// Disabled provider instead (see NewProvider).
func NewGemini(apiKey, model string) *Gemini {
	if model == "" {
		model = DefaultEmbeddingModel
	}
	return &Gemini{apiKey: apiKey, model: model}
}

// NewProvider selects the embedding capability at construction time:
// Gemini when an API key is present, Disabled otherwise.
func NewProvider(apiKey, model string) EmbeddingProvider {
	if apiKey == "" {
		return NewDisabled()
	}
	return NewGemini(apiKey, model)
}

// Available implements EmbeddingProvider.
func (g *Gemini) Available() bool {
	return g.apiKey != ""
}

// Embed implements EmbeddingProvider using the Gemini EmbedContent API.
func (g *Gemini) Embed(ctx context.Context, text string) ([]float32, error) {
	client, err := g.getClient(ctx)
	if err != nil {
		return nil, err
	}

	em := client.EmbeddingModel(g.model)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("embedding response contained no values")
	}

	return resp.Embedding.Values, nil
}

// Close releases the underlying client if it was ever created.
func (g *Gemini) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func (g *Gemini) getClient(ctx context.Context) (*genai.Client, error) {
	g.once.Do(func() {
		client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
		if err != nil {
			g.initErr = fmt.Errorf("failed to create Gemini client: %w", err)
			return
		}
		g.client = client
	})
	if g.initErr != nil {
		return nil, g.initErr
	}
	return g.client, nil
}
