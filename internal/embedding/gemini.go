package embedding

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// maxEmbedInputChars keeps requests under the embedding model's token limit.
const maxEmbedInputChars = 40000

// GeminiProvider wraps the Gemini embedding API. The client is created once
// at startup; a failure here is fatal for the process, never per-request.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(apiKey, model string) (*GeminiProvider, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Embed implements Provider. Inference errors propagate to the caller;
// retry policy belongs to the calling boundary.
func (g *GeminiProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	if len(text) > maxEmbedInputChars {
		text = text[:maxEmbedInputChars]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.model, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// ModelVersion implements Provider.
func (g *GeminiProvider) ModelVersion() string {
	return g.model
}
