// Package rag answers free-form questions about ingested documents by
// retrieving similar chunks and grounding the completion on them.
package rag

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/vectorstore"
)

const (
	DefaultTopK          = 5
	DefaultContextWindow = 2000
)

const (
	purposeRAGChat    = "rag-chat"
	purposeDirectChat = "direct-chat"
)

// chatSystemPrompt matches the tutoring completions: answers read as spoken
// dialogue because voice chat shares this path.
const chatSystemPrompt = "You are a helpful, friendly, and conversational AI assistant. Keep responses concise and natural, as if speaking."

const (
	chatMaxTokens   = 500
	chatTemperature = 0.7
	chatTimeout     = 30 * time.Second
)

// Searcher finds chunks similar to a query.
type Searcher interface {
	Search(ctx context.Context, query string, topK int) ([]vectorstore.Match, error)
}

// Service wires retrieval to a completion provider.
type Service struct {
	searcher      Searcher
	provider      llm.Provider
	topK          int
	contextWindow int
}

// NewService creates a RAG service. RAG_TOP_K and RAG_CONTEXT_WINDOW
// override the retrieval depth and the context character cap.
func NewService(searcher Searcher, provider llm.Provider) *Service {
	s := &Service{
		searcher:      searcher,
		provider:      provider,
		topK:          DefaultTopK,
		contextWindow: DefaultContextWindow,
	}
	if v, err := strconv.Atoi(os.Getenv("RAG_TOP_K")); err == nil && v > 0 {
		s.topK = v
	}
	if v, err := strconv.Atoi(os.Getenv("RAG_CONTEXT_WINDOW")); err == nil && v > 0 {
		s.contextWindow = v
	}
	return s
}

// RetrieveContext returns the chunks most similar to the query. Retrieval
// failures degrade to no context rather than blocking the chat. With no
// searcher configured there is never any context.
func (s *Service) RetrieveContext(ctx context.Context, query string) []vectorstore.Match {
	if s.searcher == nil || strings.TrimSpace(query) == "" {
		return nil
	}
	matches, err := s.searcher.Search(ctx, query, s.topK)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: context retrieval failed: %v\n", err)
		return nil
	}
	return matches
}

// BuildContextPrompt embeds the retrieved chunks into the question prompt.
// The joined context is capped at window characters. With no matches the
// query passes through untouched.
func BuildContextPrompt(matches []vectorstore.Match, query string, window int) string {
	if len(matches) == 0 {
		return query
	}

	parts := make([]string, len(matches))
	for i, m := range matches {
		parts[i] = fmt.Sprintf("Context %d:\n%s", i+1, m.Text)
	}
	contextText := strings.Join(parts, "\n\n---\n\n")
	if window > 0 && len(contextText) > window {
		contextText = contextText[:window] + "..."
	}

	return fmt.Sprintf(`Use the following context to answer the question. If the context doesn't contain relevant information, answer based on your general knowledge.

Context:
%s

Question: %s

Answer:`, contextText, query)
}

// Chat answers one user message, optionally grounded on retrieved context.
// history is the prior conversation, oldest first, without the new message.
func (s *Service) Chat(ctx context.Context, message string, history []llm.Message, useRAG bool) (string, error) {
	prompt := message
	purpose := purposeDirectChat

	if useRAG {
		if matches := s.RetrieveContext(ctx, message); len(matches) > 0 {
			prompt = BuildContextPrompt(matches, message, s.contextWindow)
			purpose = purposeRAGChat
		}
	}

	ctx, cancel := context.WithTimeout(llm.WithPurpose(ctx, purpose), chatTimeout)
	defer cancel()

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: prompt})

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      chatSystemPrompt,
		Messages:    messages,
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}
