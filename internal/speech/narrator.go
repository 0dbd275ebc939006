package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Narrator synthesizes speech and files the MP3s under one audio directory,
// named {kind}_{timestamp}.mp3 so the files sort by origin and time.
type Narrator struct {
	synth Synthesizer
	dir   string
}

// NewNarrator creates the audio directory if needed.
func NewNarrator(synth Synthesizer, dir string) (*Narrator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio directory: %w", err)
	}
	return &Narrator{synth: synth, dir: dir}, nil
}

// Dir returns the audio directory.
func (n *Narrator) Dir() string {
	return n.dir
}

// FilePath resolves a stored audio file by name. The base-name reduction
// keeps request paths from escaping the audio directory.
func (n *Narrator) FilePath(filename string) string {
	return filepath.Join(n.dir, filepath.Base(filename))
}

// SaveSpeech synthesizes text and writes the MP3. Returns the generated
// filename.
func (n *Narrator) SaveSpeech(ctx context.Context, text, kind string) (string, error) {
	audio, err := n.synth.Synthesize(ctx, text)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%s.mp3", kind, time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(n.dir, filename), audio, 0o644); err != nil {
		return "", fmt.Errorf("save audio %s: %w", filename, err)
	}
	return filename, nil
}

// SpeakAsync synthesizes in the background. The caller's response does not
// wait on the audio; failures only warn.
func (n *Narrator) SpeakAsync(text, kind string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ttsTimeout)
		defer cancel()
		if _, err := n.SaveSpeech(ctx, text, kind); err != nil {
			fmt.Fprintf(os.Stderr, "warning: background narration failed: %v\n", err)
		}
	}()
}
