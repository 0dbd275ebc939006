package speech

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSynthesizeSendsExpectedRequest(t *testing.T) {
	audio := []byte("mp3-bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/voice-123" {
			t.Errorf("path = %s, want /voice-123", r.URL.Path)
		}
		if got := r.Header.Get("xi-api-key"); got != "secret" {
			t.Errorf("xi-api-key = %q", got)
		}
		if got := r.Header.Get("Accept"); got != "audio/mpeg" {
			t.Errorf("Accept = %q", got)
		}

		var req synthesizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if req.Text != "hello there" {
			t.Errorf("text = %q", req.Text)
		}
		if req.ModelID != "eleven_turbo_v2_5" {
			t.Errorf("model_id = %q", req.ModelID)
		}
		if req.VoiceSettings.Stability != 0.4 || req.VoiceSettings.SimilarityBoost != 0.4 {
			t.Errorf("voice settings = %+v", req.VoiceSettings)
		}
		if req.OptimizeStreamingLatency != 3 {
			t.Errorf("optimize_streaming_latency = %d", req.OptimizeStreamingLatency)
		}

		_, _ = w.Write(audio)
	}))
	defer server.Close()

	tts := &TTS{
		apiKey:  "secret",
		voiceID: "voice-123",
		baseURL: server.URL,
		client:  server.Client(),
	}

	got, err := tts.Synthesize(context.Background(), "hello there")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if string(got) != string(audio) {
		t.Errorf("audio = %q", got)
	}
}

func TestSynthesizeErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad key"))
	}))
	defer server.Close()

	tts := &TTS{
		apiKey:  "wrong",
		voiceID: "v",
		baseURL: server.URL,
		client:  server.Client(),
	}

	_, err := tts.Synthesize(context.Background(), "text")
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error should carry the status code: %v", err)
	}
}

func TestNewTTSRequiresKey(t *testing.T) {
	if _, err := NewTTS(""); err == nil {
		t.Error("expected error for missing api key")
	}
}

func TestNewSTTRequiresKey(t *testing.T) {
	if _, err := NewSTT(""); err == nil {
		t.Error("expected error for missing api key")
	}
}

type fakeSynth struct {
	audio []byte
	err   error
	texts []string
}

func (f *fakeSynth) Synthesize(_ context.Context, text string) ([]byte, error) {
	f.texts = append(f.texts, text)
	return f.audio, f.err
}

func TestNarratorSaveSpeech(t *testing.T) {
	dir := t.TempDir()
	synth := &fakeSynth{audio: []byte("sound")}

	n, err := NewNarrator(synth, filepath.Join(dir, "audio"))
	if err != nil {
		t.Fatalf("NewNarrator: %v", err)
	}

	filename, err := n.SaveSpeech(context.Background(), "say this", "greeting")
	if err != nil {
		t.Fatalf("SaveSpeech: %v", err)
	}
	if !strings.HasPrefix(filename, "greeting_") || !strings.HasSuffix(filename, ".mp3") {
		t.Errorf("filename = %q, want greeting_<timestamp>.mp3", filename)
	}

	data, err := os.ReadFile(n.FilePath(filename))
	if err != nil {
		t.Fatalf("read saved audio: %v", err)
	}
	if string(data) != "sound" {
		t.Errorf("saved audio = %q", data)
	}
	if len(synth.texts) != 1 || synth.texts[0] != "say this" {
		t.Errorf("synthesizer saw %v", synth.texts)
	}
}

func TestNarratorSaveSpeechSynthesisError(t *testing.T) {
	n, err := NewNarrator(&fakeSynth{err: errors.New("api down")}, t.TempDir())
	if err != nil {
		t.Fatalf("NewNarrator: %v", err)
	}
	if _, err := n.SaveSpeech(context.Background(), "x", "reply"); err == nil {
		t.Error("expected synthesis error to propagate")
	}
}

func TestNarratorFilePathStaysInDir(t *testing.T) {
	dir := t.TempDir()
	n, err := NewNarrator(&fakeSynth{}, dir)
	if err != nil {
		t.Fatalf("NewNarrator: %v", err)
	}

	got := n.FilePath("../../etc/passwd")
	if filepath.Dir(got) != dir {
		t.Errorf("FilePath escaped the audio dir: %s", got)
	}
}

func TestSpeakAsyncWritesEventually(t *testing.T) {
	dir := t.TempDir()
	synth := &fakeSynth{audio: []byte("bg")}
	n, err := NewNarrator(synth, dir)
	if err != nil {
		t.Fatalf("NewNarrator: %v", err)
	}

	n.SpeakAsync("background text", "comment")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		entries, _ := os.ReadDir(dir)
		if len(entries) == 1 {
			if !strings.HasPrefix(entries[0].Name(), "comment_") {
				t.Errorf("async file = %q", entries[0].Name())
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("async narration never wrote a file")
}
