package docproc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Default chunking parameters. Chunks are sized for embedding: small enough
// to stay on-topic, with overlap so sentences straddling a boundary are not
// lost to retrieval.
const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 50
)

// Chunk is a contiguous slice of document text prepared for embedding.
// Start and End are byte offsets into the normalized document text.
type Chunk struct {
	ID    string `json:"id"`
	Index int    `json:"chunk_index"`
	Text  string `json:"text"`
	Start int    `json:"start_char"`
	End   int    `json:"end_char"`
}

// ProcessedDocument is the result of extracting and chunking one file.
type ProcessedDocument struct {
	DocumentID string  `json:"document_id"`
	FileName   string  `json:"file_name"`
	SourceType string  `json:"source_type"`
	Text       string  `json:"text"`
	Chunks     []Chunk `json:"chunks"`
}

// Processor extracts text from files and splits it into overlapping chunks.
type Processor struct {
	ChunkSize    int
	ChunkOverlap int
}

// NewProcessor returns a processor with the default chunk parameters.
func NewProcessor() *Processor {
	return &Processor{
		ChunkSize:    DefaultChunkSize,
		ChunkOverlap: DefaultChunkOverlap,
	}
}

// Process extracts text from the file at path and chunks it. If documentID
// is empty a fresh UUID is assigned.
func (p *Processor) Process(path, documentID string) (*ProcessedDocument, error) {
	if documentID == "" {
		documentID = uuid.NewString()
	}

	text, err := p.ExtractText(path)
	if err != nil {
		return nil, err
	}

	return &ProcessedDocument{
		DocumentID: documentID,
		FileName:   filepath.Base(path),
		SourceType: sourceType(path),
		Text:       text,
		Chunks:     p.ChunkText(text),
	}, nil
}

// ExtractText reads the file at path and returns its text content.
// Plain text and markdown are read directly; anything else is attempted
// as UTF-8 text and rejected if it is not.
func (p *Processor) ExtractText(path string) (string, error) {
	switch sourceType(path) {
	case "pdf":
		return "", fmt.Errorf("pdf extraction not supported: %s", filepath.Base(path))
	case "txt", "md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		if !utf8.Valid(data) {
			return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
		}
		return string(data), nil
	}
}

// sourceType normalizes a file extension to one of the known source types.
func sourceType(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "txt", "text":
		return "txt"
	case "md", "markdown":
		return "md"
	case "pdf":
		return "pdf"
	default:
		return ext
	}
}

// sentenceBreaks are scanned right-to-left when a chunk boundary does not
// land on a paragraph break.
var sentenceBreaks = []string{". ", "! ", "? ", ".\n", "!\n", "?\n"}

// ChunkText splits text into overlapping chunks, preferring paragraph
// boundaries and then sentence boundaries over hard cuts. Returns nil for
// blank input.
func (p *Processor) ChunkText(text string) []Chunk {
	text = normalize(text)
	if text == "" {
		return nil
	}

	size := p.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}
	overlap := p.ChunkOverlap
	if overlap < 0 {
		overlap = 0
	}

	var chunks []Chunk
	start := 0
	for start < len(text) {
		// end may overshoot the text on the last chunk; the slice below
		// clamps, but the overlap step uses the unclamped value so the
		// loop terminates.
		end := start + size
		if end < len(text) {
			end = breakPoint(text, start, end)
		}
		limit := min(end, len(text))

		piece := strings.TrimSpace(text[start:limit])
		if piece != "" {
			chunks = append(chunks, Chunk{
				ID:    uuid.NewString(),
				Index: len(chunks),
				Text:  piece,
				Start: start,
				End:   limit,
			})
		}

		next := end - overlap
		if next <= start {
			// A boundary landed so early that overlap would walk backwards.
			next = limit
		}
		start = next
	}
	return chunks
}

// breakPoint finds the best cut position in text[start:end], preferring the
// last paragraph break, then the last sentence break, then the hard limit
// snapped back to a rune boundary.
func breakPoint(text string, start, end int) int {
	window := text[start:end]

	if para := strings.LastIndex(window, "\n\n"); para > 0 {
		return start + para + 2
	}

	best := -1
	for _, brk := range sentenceBreaks {
		if pos := strings.LastIndex(window, brk); pos > best {
			best = pos
		}
	}
	if best >= 0 {
		// All sentence breaks are two bytes: the punctuation plus the
		// following space or newline.
		return start + best + 2
	}

	for end > start && !utf8.RuneStart(text[end]) {
		end--
	}
	return end
}

// normalize trims the text and converts all line endings to \n.
func normalize(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
