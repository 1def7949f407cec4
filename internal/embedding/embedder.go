// Package embedding provides query embedding via an OpenAI-compatible API,
// with caching. Embedding is an optional capability: every consumer must
// tolerate its absence and degrade to lexical-only behaviour.
package embedding

import "context"

// Embedder produces vector embeddings for text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimensions() int
}
