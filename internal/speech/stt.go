// Package speech converts between audio and text: Whisper transcription in,
// ElevenLabs synthesis out.
package speech

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Transcriber converts recorded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

const sttTimeout = 30 * time.Second

// STT transcribes audio with the OpenAI Whisper API.
type STT struct {
	client *openai.Client
}

// NewSTT creates a Whisper-backed transcriber.
func NewSTT(apiKey string) (*STT, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required for transcription")
	}
	return &STT{client: openai.NewClient(apiKey)}, nil
}

// Transcribe sends the audio to Whisper and returns the recognized text.
// filename carries the container format hint (browser recordings arrive as
// .webm).
func (s *STT) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	if filename == "" {
		filename = "audio.webm"
	}

	ctx, cancel := context.WithTimeout(ctx, sttTimeout)
	defer cancel()

	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   audio,
		FilePath: filename,
		Language: "en",
	})
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}
