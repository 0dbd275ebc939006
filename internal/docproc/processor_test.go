package docproc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestChunkTextShortText(t *testing.T) {
	p := NewProcessor()
	chunks := p.ChunkText("Just a short paragraph that fits in one chunk.")

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Index != 0 {
		t.Errorf("Index = %d, want 0", chunks[0].Index)
	}
	if chunks[0].Text != "Just a short paragraph that fits in one chunk." {
		t.Errorf("unexpected chunk text: %q", chunks[0].Text)
	}
	if chunks[0].ID == "" {
		t.Error("expected non-empty chunk ID")
	}
}

func TestChunkTextEmpty(t *testing.T) {
	p := NewProcessor()
	if got := p.ChunkText(""); got != nil {
		t.Errorf("expected nil for empty text, got %d chunks", len(got))
	}
	if got := p.ChunkText("   \n\t  "); got != nil {
		t.Errorf("expected nil for blank text, got %d chunks", len(got))
	}
}

func TestChunkTextOverlapAndOrder(t *testing.T) {
	para := strings.Repeat("Plain prose continues here with nothing special about it at all. ", 2)
	text := strings.Repeat(para+"\n\n", 10)

	p := NewProcessor()
	chunks := p.ChunkText(text)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if c.Index != i {
			t.Errorf("chunk %d has Index %d", i, c.Index)
		}
		if len(c.Text) > DefaultChunkSize {
			t.Errorf("chunk %d is %d chars, want <= %d", i, len(c.Text), DefaultChunkSize)
		}
		if i > 0 && c.Start >= chunks[i-1].End {
			t.Errorf("chunk %d starts at %d, after previous end %d (no overlap)", i, c.Start, chunks[i-1].End)
		}
	}
}

func TestChunkTextPrefersParagraphBreak(t *testing.T) {
	first := strings.Repeat("Opening paragraph sentence. ", 10)
	text := strings.TrimSpace(first) + "\n\n" + strings.Repeat("Second paragraph sentence. ", 40)

	p := NewProcessor()
	chunks := p.ChunkText(text)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	if chunks[0].Text != strings.TrimSpace(first) {
		t.Errorf("first chunk should end at the paragraph break, got %q", chunks[0].Text)
	}
}

func TestChunkTextSentenceFallback(t *testing.T) {
	text := strings.Repeat("Another sentence ends right here. ", 30)

	p := NewProcessor()
	chunks := p.ChunkText(text)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	if !strings.HasSuffix(chunks[0].Text, ".") {
		t.Errorf("first chunk should end at a sentence break, got ...%q", chunks[0].Text[len(chunks[0].Text)-20:])
	}
}

func TestChunkTextHardCut(t *testing.T) {
	text := strings.Repeat("a", 600)

	p := NewProcessor()
	chunks := p.ChunkText(text)

	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if len(chunks[0].Text) != DefaultChunkSize {
		t.Errorf("first chunk is %d chars, want %d", len(chunks[0].Text), DefaultChunkSize)
	}
	if chunks[1].Start != DefaultChunkSize-DefaultChunkOverlap {
		t.Errorf("second chunk starts at %d, want %d", chunks[1].Start, DefaultChunkSize-DefaultChunkOverlap)
	}
}

func TestChunkTextNormalizesLineEndings(t *testing.T) {
	p := NewProcessor()
	chunks := p.ChunkText("first line\r\nsecond line\rthird line")

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if strings.Contains(chunks[0].Text, "\r") {
		t.Errorf("chunk text still contains carriage returns: %q", chunks[0].Text)
	}
}

func TestExtractTextPlainFiles(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor()

	for _, ext := range []string{".txt", ".md", ".markdown", ".text"} {
		path := filepath.Join(dir, "doc"+ext)
		if err := os.WriteFile(path, []byte("file content here"), 0644); err != nil {
			t.Fatal(err)
		}
		got, err := p.ExtractText(path)
		if err != nil {
			t.Fatalf("ExtractText(%s): %v", ext, err)
		}
		if got != "file content here" {
			t.Errorf("ExtractText(%s) = %q", ext, got)
		}
	}
}

func TestExtractTextRejectsPDF(t *testing.T) {
	p := NewProcessor()
	_, err := p.ExtractText("notes.pdf")
	if err == nil {
		t.Fatal("expected error for pdf input")
	}
	if !strings.Contains(err.Error(), "pdf") {
		t.Errorf("error should mention pdf: %v", err)
	}
}

func TestExtractTextUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor()

	// Readable UTF-8 passes through.
	textPath := filepath.Join(dir, "notes.rst")
	if err := os.WriteFile(textPath, []byte("restructured text"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := p.ExtractText(textPath)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if got != "restructured text" {
		t.Errorf("ExtractText = %q", got)
	}

	// Binary garbage is rejected.
	binPath := filepath.Join(dir, "image.bin")
	if err := os.WriteFile(binPath, []byte{0xff, 0xfe, 0x00, 0x80}, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := p.ExtractText(binPath); err == nil {
		t.Error("expected error for non-UTF-8 content")
	}
}

func TestProcessAssignsDocumentID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guide.md")
	if err := os.WriteFile(path, []byte("# Guide\n\nSome content worth chunking."), 0644); err != nil {
		t.Fatal(err)
	}

	p := NewProcessor()

	doc, err := p.Process(path, "")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if doc.DocumentID == "" {
		t.Error("expected generated document ID")
	}
	if doc.FileName != "guide.md" {
		t.Errorf("FileName = %q, want guide.md", doc.FileName)
	}
	if doc.SourceType != "md" {
		t.Errorf("SourceType = %q, want md", doc.SourceType)
	}
	if len(doc.Chunks) == 0 {
		t.Error("expected at least one chunk")
	}

	doc2, err := p.Process(path, "doc-42")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if doc2.DocumentID != "doc-42" {
		t.Errorf("DocumentID = %q, want doc-42", doc2.DocumentID)
	}
}
