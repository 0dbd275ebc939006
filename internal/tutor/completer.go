package tutor

import (
	"context"
	"strings"
	"time"

	"github.com/abhisek/docent/internal/llm"
)

// Completer is the text-completion capability the tutoring core consumes.
// Implementations return the generated text, or an empty string on any
// failure; the core never sees an error from this boundary and falls back
// to deterministic text at every call site.
type Completer interface {
	Complete(ctx context.Context, prompt string) string
}

// completerSystemPrompt frames every tutoring completion as spoken dialogue.
const completerSystemPrompt = "You are a helpful, friendly, and conversational AI assistant. Keep responses concise and natural, as if speaking."

const (
	completerMaxTokens   = 500
	completerTemperature = 0.7
	completerTimeout     = 30 * time.Second
)

// ProviderCompleter adapts an llm.Provider to the Completer contract.
type ProviderCompleter struct {
	provider llm.Provider
	timeout  time.Duration
}

// NewProviderCompleter wraps a provider for use by the tutoring engine.
func NewProviderCompleter(p llm.Provider) *ProviderCompleter {
	return &ProviderCompleter{provider: p, timeout: completerTimeout}
}

// Complete runs one completion and absorbs every failure into an empty
// string. Purpose tagging on ctx flows through to the provider's event log.
func (c *ProviderCompleter) Complete(ctx context.Context, prompt string) string {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      completerSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   completerMaxTokens,
		Temperature: completerTemperature,
	})
	if err != nil || resp == nil {
		return ""
	}
	return strings.TrimSpace(resp.Text)
}
