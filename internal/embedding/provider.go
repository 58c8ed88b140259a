package embedding

import (
	"context"
	"math"
)

// Provider produces fixed-length vectors for arbitrary text. Implementations
// must be safe for concurrent use; vectors are only comparable when produced
// by the same model version.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	ModelVersion() string
}

// Cosine returns the cosine similarity of two vectors, in [-1, 1].
// Mismatched lengths or zero-magnitude vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
