package httpapi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/docent/internal/library"
	"github.com/abhisek/docent/internal/tutor"
)

// handleUploadDocument ingests an uploaded file: saves it, extracts and
// chunks the text, identifies sections, indexes the chunks, and puts
// the document in the library. The assistant's spoken comment about the
// upload is generated in the background so the response is not blocked
// on it.
func (s *Server) handleUploadDocument(c *gin.Context) {
	start := time.Now()

	if !s.ragAvailable() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "RAG service not available. Configure Pinecone API key."})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	if header.Filename == "" || header.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty file"})
		return
	}

	documentID := c.PostForm("document_id")

	filename := time.Now().Format("20060102_150405") + "_" + filepath.Base(header.Filename)
	path := filepath.Join(s.uploadDir, filename)
	if err := c.SaveUploadedFile(header, path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	extractStart := time.Now()
	processed, err := s.processor.Process(path, documentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	extractTime := time.Since(extractStart)

	sectionsStart := time.Now()
	sections := s.processor.IdentifySections(processed.Text)
	sectionsTime := time.Since(sectionsStart)

	ragStart := time.Now()
	added, err := s.vectors.AddChunks(c.Request.Context(), processed.DocumentID, processed.Chunks)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ragTime := time.Since(ragStart)

	doc := library.Document{
		ID:         processed.DocumentID,
		Title:      header.Filename,
		SourceType: processed.SourceType,
		Text:       processed.Text,
		Sections:   sections,
		FilePath:   path,
		FileName:   filename,
		ChunkCount: len(processed.Chunks),
	}
	if err := s.lib.Add(c.Request.Context(), doc); err != nil {
		fmt.Fprintf(os.Stderr, "warning: library add failed: %v\n", err)
	}

	s.commentAsync(header.Filename, len(processed.Chunks))

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"document_id":         processed.DocumentID,
		"chunks_count":        len(processed.Chunks),
		"sections":            sections,
		"pdf_file_path":       path,
		"pdf_filename":        filename,
		"message":             fmt.Sprintf("Document processed and %d chunks added to vector store", added),
		"auto_start_tutoring": true,
		"processing_time": gin.H{
			"extract":  roundSeconds(extractTime),
			"sections": roundSeconds(sectionsTime),
			"rag":      roundSeconds(ragTime),
			"total":    roundSeconds(time.Since(start)),
		},
	})
}

// commentAsync has the assistant react to a fresh upload out of band.
func (s *Server) commentAsync(filename string, chunks int) {
	if s.narrator == nil {
		return
	}
	go func() {
		ctx := context.Background()
		prompt := fmt.Sprintf("I just processed a document called '%s' with %d sections. Give a brief, friendly comment about it (1-2 sentences). Be conversational and enthusiastic.", filename, chunks)
		comment, err := s.chat.Chat(ctx, prompt, nil, false)
		if err != nil || comment == "" {
			comment = fmt.Sprintf("Great! I've processed %s and extracted %d sections. I'm ready to answer questions about it!", filename, chunks)
		}
		if _, err := s.narrator.SaveSpeech(ctx, comment, "comment"); err != nil {
			fmt.Fprintf(os.Stderr, "warning: upload comment narration failed: %v\n", err)
		}
	}()
}

// handleDeleteDocument removes a document's chunks from the index and
// the document from the library.
func (s *Server) handleDeleteDocument(c *gin.Context) {
	if !s.ragAvailable() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "RAG service not available"})
		return
	}

	var req struct {
		DocumentID string `json:"document_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.DocumentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document_id required"})
		return
	}

	if _, err := s.vectors.DeleteDocument(c.Request.Context(), req.DocumentID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if _, _, err := s.lib.Remove(c.Request.Context(), req.DocumentID); err != nil {
		fmt.Fprintf(os.Stderr, "warning: library remove failed: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Document %s deleted", req.DocumentID),
	})
}

// handleVectorStats reports index statistics.
func (s *Server) handleVectorStats(c *gin.Context) {
	if !s.ragAvailable() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "RAG service not available"})
		return
	}

	stats, err := s.vectors.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// handleStartTutoring opens a tutoring session on an ingested document
// and advances it past the introduction so the first reply already
// presents section one.
func (s *Server) handleStartTutoring(c *gin.Context) {
	if s.engine == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Tutoring service not available"})
		return
	}

	var req struct {
		DocumentID string `json:"document_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.DocumentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document_id required"})
		return
	}

	doc, ok := s.lib.Get(req.DocumentID)
	if !ok {
		var err error
		doc, err = s.reingest(c.Request.Context(), req.DocumentID)
		if errors.Is(err, errUploadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Document file not found for document_id: %s", req.DocumentID)})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	if len(doc.Sections) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not identify sections in document"})
		return
	}

	sess, _, err := s.engine.Start(c.Request.Context(), doc.ID, doc.Text, doc.Sections)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp, err := s.engine.ProcessMessage(c.Request.Context(), sess.ID, "start")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	title := resp.SectionTitle
	if title == "" {
		title = "Section 1"
	}

	c.JSON(http.StatusOK, gin.H{
		"success":               true,
		"session_id":            sess.ID,
		"message":               resp.Message,
		"state":                 resp.State,
		"pdf_file_path":         doc.FilePath,
		"pdf_filename":          doc.FileName,
		"sections":              doc.Sections,
		"current_section_index": resp.SectionIndex,
		"current_section_title": title,
	})
}

var errUploadNotFound = errors.New("upload not found")

// reingest rebuilds a document that fell out of the library from its
// saved upload file.
func (s *Server) reingest(ctx context.Context, documentID string) (library.Document, error) {
	path := s.findUpload(documentID)
	if path == "" {
		return library.Document{}, errUploadNotFound
	}

	processed, err := s.processor.Process(path, documentID)
	if err != nil {
		return library.Document{}, err
	}
	sections := s.processor.IdentifySections(processed.Text)

	if s.ragAvailable() {
		if _, err := s.vectors.AddChunks(ctx, documentID, processed.Chunks); err != nil {
			fmt.Fprintf(os.Stderr, "warning: reindex failed: %v\n", err)
		}
	}

	doc := library.Document{
		ID:         documentID,
		Title:      filepath.Base(path),
		SourceType: processed.SourceType,
		Text:       processed.Text,
		Sections:   sections,
		FilePath:   path,
		FileName:   filepath.Base(path),
		ChunkCount: len(processed.Chunks),
	}
	if err := s.lib.Add(ctx, doc); err != nil {
		fmt.Fprintf(os.Stderr, "warning: library add failed: %v\n", err)
	}
	return doc, nil
}

// findUpload locates a saved upload whose name carries the document id.
func (s *Server) findUpload(documentID string) string {
	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if !e.IsDir() && strings.Contains(e.Name(), documentID) {
			return filepath.Join(s.uploadDir, e.Name())
		}
	}
	return ""
}

// handleTutoringChat runs one tutoring turn and narrates the reply.
// Narration failures never fail the turn.
func (s *Server) handleTutoringChat(c *gin.Context) {
	if s.engine == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Tutoring service not available"})
		return
	}

	var req struct {
		SessionID string `json:"session_id"`
		Message   string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id required"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message required"})
		return
	}

	resp, err := s.engine.ProcessMessage(c.Request.Context(), req.SessionID, req.Message)
	if errors.Is(err, tutor.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	body := gin.H{
		"message":       resp.Message,
		"state":         resp.State,
		"section_index": resp.SectionIndex,
		"section_title": resp.SectionTitle,
		"quiz_question": orNil(resp.QuizQuestion),
		"quiz_options":  nil,
		"user_answer":   orNil(resp.UserAnswer),
	}
	if len(resp.QuizOptions) > 0 {
		body["quiz_options"] = resp.QuizOptions
	}

	if s.narrator != nil {
		name, err := s.narrator.SaveSpeech(c.Request.Context(), resp.Message, "tutoring")
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: tutoring narration failed: %v\n", err)
		} else {
			body["audio_url"] = "/audio/" + name
		}
	}

	c.JSON(http.StatusOK, body)
}

func orNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// roundSeconds reports a duration in seconds at centisecond precision,
// the granularity the client displays.
func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
