package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/vectorstore"
)

type fakeSearcher struct {
	matches []vectorstore.Match
	err     error
	queries []string
	topKs   []int
}

func (f *fakeSearcher) Search(_ context.Context, query string, topK int) ([]vectorstore.Match, error) {
	f.queries = append(f.queries, query)
	f.topKs = append(f.topKs, topK)
	return f.matches, f.err
}

func TestBuildContextPromptFormat(t *testing.T) {
	matches := []vectorstore.Match{
		{Text: "The sky is blue because of Rayleigh scattering."},
		{Text: "Sunsets look red for the same reason."},
	}

	prompt := BuildContextPrompt(matches, "Why is the sky blue?", DefaultContextWindow)

	if !strings.Contains(prompt, "Context 1:\nThe sky is blue because of Rayleigh scattering.") {
		t.Errorf("prompt missing numbered first chunk:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Context 2:\nSunsets look red for the same reason.") {
		t.Errorf("prompt missing numbered second chunk:\n%s", prompt)
	}
	if !strings.Contains(prompt, "\n\n---\n\n") {
		t.Error("chunks should be separated by ---")
	}
	if !strings.Contains(prompt, "Question: Why is the sky blue?") {
		t.Error("prompt missing the question line")
	}
	if !strings.HasSuffix(prompt, "Answer:") {
		t.Errorf("prompt should end with Answer:, got ...%q", prompt[len(prompt)-20:])
	}
}

func TestBuildContextPromptCapsWindow(t *testing.T) {
	matches := []vectorstore.Match{{Text: strings.Repeat("x", 5000)}}

	prompt := BuildContextPrompt(matches, "q", 2000)

	if !strings.Contains(prompt, strings.Repeat("x", 100)+"...") && !strings.Contains(prompt, "...\n") {
		t.Error("oversized context should be truncated with an ellipsis")
	}
	// The context block is capped, not the whole prompt.
	start := strings.Index(prompt, "Context:")
	end := strings.Index(prompt, "Question:")
	if start < 0 || end < 0 {
		t.Fatalf("malformed prompt:\n%.200s", prompt)
	}
	if block := prompt[start:end]; len(block) > 2000+100 {
		t.Errorf("context block is %d chars, want about 2000", len(block))
	}
}

func TestBuildContextPromptNoMatches(t *testing.T) {
	if got := BuildContextPrompt(nil, "bare question", DefaultContextWindow); got != "bare question" {
		t.Errorf("expected pass-through, got %q", got)
	}
}

func TestChatUsesRetrievedContext(t *testing.T) {
	searcher := &fakeSearcher{matches: []vectorstore.Match{{Text: "relevant chunk"}}}
	provider := llm.NewMockProvider(llm.MockResponse{Text: "grounded answer"})
	svc := NewService(searcher, provider)

	got, err := svc.Chat(context.Background(), "what is this about?", nil, true)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if got != "grounded answer" {
		t.Errorf("Chat = %q", got)
	}

	if len(searcher.queries) != 1 || searcher.queries[0] != "what is this about?" {
		t.Errorf("searcher saw queries %v", searcher.queries)
	}
	if searcher.topKs[0] != DefaultTopK {
		t.Errorf("topK = %d, want %d", searcher.topKs[0], DefaultTopK)
	}

	req := provider.Calls[0]
	last := req.Messages[len(req.Messages)-1]
	if !strings.Contains(last.Content, "relevant chunk") {
		t.Errorf("final message should embed the context, got %q", last.Content)
	}
	if !strings.Contains(last.Content, "what is this about?") {
		t.Errorf("final message should carry the question, got %q", last.Content)
	}
}

func TestChatDirectWhenRAGDisabled(t *testing.T) {
	searcher := &fakeSearcher{matches: []vectorstore.Match{{Text: "should not appear"}}}
	provider := llm.NewMockProvider(llm.MockResponse{Text: "plain answer"})
	svc := NewService(searcher, provider)

	got, err := svc.Chat(context.Background(), "hello", nil, false)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if got != "plain answer" {
		t.Errorf("Chat = %q", got)
	}
	if len(searcher.queries) != 0 {
		t.Errorf("searcher should not be consulted, saw %v", searcher.queries)
	}
	if content := provider.Calls[0].Messages[0].Content; content != "hello" {
		t.Errorf("prompt = %q, want bare message", content)
	}
}

func TestChatFallsBackOnRetrievalFailure(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("index offline")}
	provider := llm.NewMockProvider(llm.MockResponse{Text: "still answered"})
	svc := NewService(searcher, provider)

	got, err := svc.Chat(context.Background(), "question", nil, true)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if got != "still answered" {
		t.Errorf("Chat = %q", got)
	}
	if content := provider.Calls[0].Messages[0].Content; content != "question" {
		t.Errorf("prompt = %q, want bare message after retrieval failure", content)
	}
}

func TestChatKeepsConversationHistory(t *testing.T) {
	searcher := &fakeSearcher{}
	provider := llm.NewMockProvider(llm.MockResponse{Text: "ok"})
	svc := NewService(searcher, provider)

	history := []llm.Message{
		{Role: llm.RoleUser, Content: "first"},
		{Role: llm.RoleAssistant, Content: "second"},
	}
	if _, err := svc.Chat(context.Background(), "third", history, true); err != nil {
		t.Fatalf("Chat: %v", err)
	}

	msgs := provider.Calls[0].Messages
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].Content != "first" || msgs[1].Content != "second" || msgs[2].Content != "third" {
		t.Errorf("history out of order: %+v", msgs)
	}
}

func TestChatPropagatesProviderError(t *testing.T) {
	searcher := &fakeSearcher{}
	provider := llm.NewMockProvider(llm.MockResponse{Err: errors.New("rate limited")})
	svc := NewService(searcher, provider)

	if _, err := svc.Chat(context.Background(), "q", nil, false); err == nil {
		t.Fatal("expected error from provider")
	}
}

func TestRetrieveContextBlankQuery(t *testing.T) {
	searcher := &fakeSearcher{matches: []vectorstore.Match{{Text: "x"}}}
	svc := NewService(searcher, llm.NewMockProvider())

	if got := svc.RetrieveContext(context.Background(), "   "); got != nil {
		t.Errorf("expected nil for blank query, got %v", got)
	}
	if len(searcher.queries) != 0 {
		t.Error("searcher should not run for blank queries")
	}
}

func TestChatWithoutSearcher(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Text: "plain answer"})
	svc := NewService(nil, provider)

	reply, err := svc.Chat(context.Background(), "What is entropy?", nil, true)
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply != "plain answer" {
		t.Errorf("reply = %q", reply)
	}
	if prompt := provider.Calls[0].Messages[0].Content; prompt != "What is entropy?" {
		t.Errorf("prompt = %q, want the raw question", prompt)
	}
}
