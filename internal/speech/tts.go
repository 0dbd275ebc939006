package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	// DefaultVoiceID is the Arabella voice.
	DefaultVoiceID = "aEO01A4wXwd1O8GPgGlF"

	ttsBaseURL = "https://api.elevenlabs.io/v1/text-to-speech"

	// eleven_turbo_v2_5 with low-latency settings: the audio plays while the
	// user is still reading the reply, so speed beats polish here.
	ttsModelID = "eleven_turbo_v2_5"
	ttsTimeout = 15 * time.Second
)

// Synthesizer turns text into spoken audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// TTS synthesizes speech through the ElevenLabs REST API. The pack has no
// ElevenLabs SDK, so this talks to the endpoint directly.
type TTS struct {
	apiKey  string
	voiceID string
	baseURL string
	client  *http.Client
}

// NewTTS creates an ElevenLabs synthesizer. ELEVENLABS_VOICE_ID overrides
// the default voice.
func NewTTS(apiKey string) (*TTS, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("elevenlabs api key is required for speech synthesis")
	}

	voiceID := DefaultVoiceID
	if v := os.Getenv("ELEVENLABS_VOICE_ID"); v != "" {
		voiceID = v
	}

	return &TTS{
		apiKey:  apiKey,
		voiceID: voiceID,
		baseURL: ttsBaseURL,
		client:  &http.Client{Timeout: ttsTimeout},
	}, nil
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

type synthesizeRequest struct {
	Text                     string        `json:"text"`
	ModelID                  string        `json:"model_id"`
	VoiceSettings            voiceSettings `json:"voice_settings"`
	OptimizeStreamingLatency int           `json:"optimize_streaming_latency"`
}

// Synthesize returns MP3 bytes for the given text.
func (t *TTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	payload, err := json.Marshal(synthesizeRequest{
		Text:    text,
		ModelID: ttsModelID,
		VoiceSettings: voiceSettings{
			Stability:       0.4,
			SimilarityBoost: 0.4,
			Style:           0.0,
			UseSpeakerBoost: false,
		},
		OptimizeStreamingLatency: 3,
	})
	if err != nil {
		return nil, fmt.Errorf("encode tts request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", t.baseURL, t.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", t.apiKey)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("tts API returned %d: %s", resp.StatusCode, body)
	}

	return io.ReadAll(resp.Body)
}
