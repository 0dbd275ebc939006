// Package vectorstore persists document chunks in a Pinecone serverless
// index and answers similarity queries over them.
package vectorstore

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pinecone-io/go-pinecone/v3/pinecone"
	"github.com/samber/lo"
	"github.com/tmc/langchaingo/embeddings"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/abhisek/docent/internal/docproc"
	"github.com/abhisek/docent/internal/embedding"
)

const (
	DefaultIndexName = "ai-assistant-index"
	DefaultRegion    = "us-east-1"

	// Pinecone caps upserts at 100 vectors per request.
	upsertBatchSize = 100
	listPageSize    = uint32(100)
)

// Config holds Pinecone connection settings.
type Config struct {
	APIKey    string
	IndexName string
	Region    string
	Namespace string
}

// ConfigFromEnv builds a Config from environment variables.
func ConfigFromEnv() Config {
	cfg := Config{
		APIKey:    os.Getenv("PINECONE_API_KEY"),
		IndexName: DefaultIndexName,
		Region:    DefaultRegion,
	}
	if n := os.Getenv("PINECONE_INDEX_NAME"); n != "" {
		cfg.IndexName = n
	}
	if r := os.Getenv("PINECONE_REGION"); r != "" {
		cfg.Region = r
	}
	if ns := os.Getenv("PINECONE_NAMESPACE"); ns != "" {
		cfg.Namespace = ns
	}
	return cfg
}

// Match is one retrieval hit: the chunk text with its similarity score and
// source position.
type Match struct {
	Text       string  `json:"text"`
	Score      float32 `json:"score"`
	DocumentID string  `json:"document_id"`
	ChunkIndex int     `json:"chunk_index"`
}

// Stats summarizes the index contents.
type Stats struct {
	IndexName     string            `json:"index_name"`
	Dimension     uint32            `json:"dimension"`
	TotalVectors  uint32            `json:"total_vectors"`
	IndexFullness float32           `json:"index_fullness"`
	Namespaces    map[string]uint32 `json:"namespaces"`
}

// Service stores and retrieves embedded chunks.
type Service struct {
	client    *pinecone.Client
	embedder  embeddings.Embedder
	indexName string
	namespace string
}

// NewService connects to Pinecone and makes sure the index exists, creating
// a serverless index on first use.
func NewService(ctx context.Context, cfg Config, embedder embeddings.Embedder) (*Service, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("pinecone api key is required")
	}
	if cfg.IndexName == "" {
		cfg.IndexName = DefaultIndexName
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}

	client, err := pinecone.NewClient(pinecone.NewClientParams{ApiKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create pinecone client: %w", err)
	}

	s := &Service{
		client:    client,
		embedder:  embedder,
		indexName: cfg.IndexName,
		namespace: cfg.Namespace,
	}
	if err := s.ensureIndex(ctx, cfg.Region); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) ensureIndex(ctx context.Context, region string) error {
	indexes, err := s.client.ListIndexes(ctx)
	if err != nil {
		return fmt.Errorf("list indexes: %w", err)
	}
	for _, idx := range indexes {
		if idx.Name == s.indexName {
			return nil
		}
	}

	dimension := int32(embedding.Dimension)
	metric := pinecone.Cosine
	deletionProtection := pinecone.DeletionProtectionDisabled

	_, err = s.client.CreateServerlessIndex(ctx, &pinecone.CreateServerlessIndexRequest{
		Name:               s.indexName,
		Dimension:          &dimension,
		Metric:             &metric,
		Cloud:              pinecone.Aws,
		Region:             region,
		DeletionProtection: &deletionProtection,
	})
	if err != nil {
		return fmt.Errorf("create index %s: %w", s.indexName, err)
	}

	for {
		idx, err := s.client.DescribeIndex(ctx, s.indexName)
		if err != nil {
			return fmt.Errorf("describe index %s: %w", s.indexName, err)
		}
		if idx.Status.Ready {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
		}
	}
}

func (s *Service) connect(ctx context.Context) (*pinecone.IndexConnection, error) {
	desc, err := s.client.DescribeIndex(ctx, s.indexName)
	if err != nil {
		return nil, fmt.Errorf("describe index %s: %w", s.indexName, err)
	}
	conn, err := s.client.Index(pinecone.NewIndexConnParams{
		Host:      desc.Host,
		Namespace: s.namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to index %s: %w", s.indexName, err)
	}
	return conn, nil
}

// VectorID names the vector for one chunk of a document. The document ID
// prefix is what makes per-document deletion possible on a serverless index.
func VectorID(documentID string, chunkIndex int) string {
	return fmt.Sprintf("doc_%s_%d", documentID, chunkIndex)
}

func vectorPrefix(documentID string) string {
	return fmt.Sprintf("doc_%s_", documentID)
}

// AddChunks embeds the chunks and upserts them under the document's vector
// ID prefix. Returns the number of vectors written.
func (s *Service) AddChunks(ctx context.Context, documentID string, chunks []docproc.Chunk) (int, error) {
	if len(chunks) == 0 {
		return 0, fmt.Errorf("no chunks provided")
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	vecs, err := s.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embed %d chunks: %w", len(chunks), err)
	}
	if len(vecs) != len(chunks) {
		return 0, fmt.Errorf("embedded %d of %d chunks", len(vecs), len(chunks))
	}

	vectors, err := buildVectors(documentID, chunks, vecs)
	if err != nil {
		return 0, err
	}

	conn, err := s.connect(ctx)
	if err != nil {
		return 0, err
	}

	for _, batch := range lo.Chunk(vectors, upsertBatchSize) {
		if _, err := conn.UpsertVectors(ctx, batch); err != nil {
			return 0, fmt.Errorf("upsert batch: %w", err)
		}
	}
	return len(vectors), nil
}

// buildVectors pairs chunks with their embeddings and packs the chunk text
// into metadata so retrieval can return it without a second lookup.
func buildVectors(documentID string, chunks []docproc.Chunk, vecs [][]float32) ([]*pinecone.Vector, error) {
	vectors := make([]*pinecone.Vector, 0, len(chunks))
	for i := range chunks {
		metadata, err := structpb.NewStruct(map[string]any{
			"document_id": documentID,
			"chunk_index": chunks[i].Index,
			"text":        chunks[i].Text,
		})
		if err != nil {
			return nil, fmt.Errorf("metadata for chunk %d: %w", chunks[i].Index, err)
		}
		vectors = append(vectors, &pinecone.Vector{
			Id:       VectorID(documentID, chunks[i].Index),
			Values:   &vecs[i],
			Metadata: metadata,
		})
	}
	return vectors, nil
}

// Search embeds the query and returns the topK most similar chunks.
func (s *Service) Search(ctx context.Context, query string, topK int) ([]Match, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	if topK <= 0 {
		topK = 5
	}

	queryVec, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	conn, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}

	result, err := conn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          queryVec,
		TopK:            uint32(topK),
		IncludeValues:   false,
		IncludeMetadata: true,
	})
	if err != nil {
		return nil, fmt.Errorf("query vectors: %w", err)
	}

	matches := make([]Match, 0, len(result.Matches))
	for _, m := range result.Matches {
		if m == nil || m.Vector == nil {
			continue
		}
		matches = append(matches, matchFromVector(m.Vector, m.Score))
	}
	return matches, nil
}

func matchFromVector(v *pinecone.Vector, score float32) Match {
	match := Match{Score: score}
	if v.Metadata == nil {
		return match
	}
	fields := v.Metadata.AsMap()
	if text, ok := fields["text"].(string); ok {
		match.Text = text
	}
	if id, ok := fields["document_id"].(string); ok {
		match.DocumentID = id
	}
	if idx, ok := fields["chunk_index"].(float64); ok {
		match.ChunkIndex = int(idx)
	}
	return match
}

// DeleteDocument removes every vector carrying the document's ID prefix.
// Serverless indexes cannot delete by metadata filter, so this lists IDs by
// prefix and deletes them in pages. Returns the number of vectors deleted.
func (s *Service) DeleteDocument(ctx context.Context, documentID string) (int, error) {
	conn, err := s.connect(ctx)
	if err != nil {
		return 0, err
	}

	prefix := vectorPrefix(documentID)
	limit := listPageSize

	listResp, err := conn.ListVectors(ctx, &pinecone.ListVectorsRequest{
		Prefix: &prefix,
		Limit:  &limit,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Namespace not found") {
			return 0, nil
		}
		return 0, fmt.Errorf("list vectors: %w", err)
	}

	deleted := 0
	for {
		ids := make([]string, 0, len(listResp.VectorIds))
		for _, id := range listResp.VectorIds {
			if id != nil {
				ids = append(ids, *id)
			}
		}
		if len(ids) > 0 {
			if err := conn.DeleteVectorsById(ctx, ids); err != nil {
				return deleted, fmt.Errorf("delete vector batch: %w", err)
			}
			deleted += len(ids)
		}

		if listResp.NextPaginationToken == nil {
			break
		}
		listResp, err = conn.ListVectors(ctx, &pinecone.ListVectorsRequest{
			Prefix:          &prefix,
			Limit:           &limit,
			PaginationToken: listResp.NextPaginationToken,
		})
		if err != nil {
			return deleted, fmt.Errorf("list next vector page: %w", err)
		}
	}
	return deleted, nil
}

// Stats reports index-wide vector counts.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	conn, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := conn.DescribeIndexStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("describe index stats: %w", err)
	}

	stats := &Stats{
		IndexName:     s.indexName,
		TotalVectors:  resp.TotalVectorCount,
		IndexFullness: resp.IndexFullness,
		Namespaces:    make(map[string]uint32, len(resp.Namespaces)),
	}
	if resp.Dimension != nil {
		stats.Dimension = *resp.Dimension
	}
	for name, summary := range resp.Namespaces {
		if summary != nil {
			stats.Namespaces[name] = summary.VectorCount
		}
	}
	return stats, nil
}
