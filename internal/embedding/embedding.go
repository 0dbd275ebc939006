// Package embedding constructs the text embedder used for document indexing
// and retrieval queries.
package embedding

import (
	"fmt"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	// Model is the OpenAI embedding model. Its vectors have Dimension
	// components; the vector index must be created with the same dimension.
	Model     = "text-embedding-ada-002"
	Dimension = 1536

	// BatchSize caps how many texts go to the embeddings API per call.
	BatchSize = 100
)

// NewOpenAI returns an embedder backed by the OpenAI embeddings API.
func NewOpenAI(apiKey string) (embeddings.Embedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required for embeddings")
	}

	client, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithEmbeddingModel(Model),
	)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithBatchSize(BatchSize))
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}
	return embedder, nil
}
