package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/docent/internal/docproc"
	"github.com/abhisek/docent/internal/library"
	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/rag"
	"github.com/abhisek/docent/internal/speech"
	"github.com/abhisek/docent/internal/tutor"
	"github.com/abhisek/docent/internal/vectorstore"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeVectors implements VectorStore in memory.
type fakeVectors struct {
	added   map[string]int
	deleted []string
	stats   *vectorstore.Stats
	addErr  error
}

func newFakeVectors() *fakeVectors {
	return &fakeVectors{added: make(map[string]int)}
}

func (f *fakeVectors) AddChunks(_ context.Context, documentID string, chunks []docproc.Chunk) (int, error) {
	if f.addErr != nil {
		return 0, f.addErr
	}
	f.added[documentID] = len(chunks)
	return len(chunks), nil
}

func (f *fakeVectors) DeleteDocument(_ context.Context, documentID string) (int, error) {
	f.deleted = append(f.deleted, documentID)
	return f.added[documentID], nil
}

func (f *fakeVectors) Stats(_ context.Context) (*vectorstore.Stats, error) {
	if f.stats == nil {
		return &vectorstore.Stats{IndexName: "test-index"}, nil
	}
	return f.stats, nil
}

// fakeTranscriber returns scripted transcriptions in order.
type fakeTranscriber struct {
	texts []string
	err   error
}

func (f *fakeTranscriber) Transcribe(_ context.Context, _ io.Reader, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if len(f.texts) == 0 {
		return "", errors.New("no transcription scripted")
	}
	t := f.texts[0]
	f.texts = f.texts[1:]
	return t, nil
}

// fakeSynth produces fixed audio bytes, or fails.
type fakeSynth struct{ err error }

func (f *fakeSynth) Synthesize(_ context.Context, _ string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("mp3-bytes"), nil
}

func testNarrator(t *testing.T) *speech.Narrator {
	t.Helper()
	n, err := speech.NewNarrator(&fakeSynth{}, t.TempDir())
	if err != nil {
		t.Fatalf("narrator: %v", err)
	}
	return n
}

func testEngine(t *testing.T) *tutor.Engine {
	t.Helper()
	st, err := tutor.NewStore(tutor.StoreTypeMemory)
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return tutor.NewEngine(st, nil, nil)
}

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	if opts.Chat == nil {
		opts.Chat = rag.NewService(nil, llm.NewMockProvider(llm.MockResponse{Text: "mock reply"}))
	}
	if opts.UploadDir == "" {
		opts.UploadDir = t.TempDir()
	}
	srv, err := NewServer(opts)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func doMultipart(t *testing.T, router http.Handler, path, fileField, filename string, content []byte, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write form field: %v", err)
		}
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, path, buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return m
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, Options{})
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := decode(t, rec); body["status"] != "healthy" {
		t.Errorf("status field = %v", body["status"])
	}
}

func TestGreetFallsBack(t *testing.T) {
	// Empty mock queue means every generation fails.
	srv := newTestServer(t, Options{
		Chat: rag.NewService(nil, llm.NewMockProvider()),
	})
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/greet", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decode(t, rec)
	if body["greeting"] != greetingFallback {
		t.Errorf("greeting = %q", body["greeting"])
	}
	if v, ok := body["audio_url"]; !ok || v != nil {
		t.Errorf("audio_url = %v, want null", v)
	}
}

func TestGreetNarrates(t *testing.T) {
	srv := newTestServer(t, Options{
		Chat:     rag.NewService(nil, llm.NewMockProvider(llm.MockResponse{Text: "Hi there, welcome!"})),
		Narrator: testNarrator(t),
	})
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/greet", nil))

	body := decode(t, rec)
	if body["greeting"] != "Hi there, welcome!" {
		t.Errorf("greeting = %q", body["greeting"])
	}
	url, _ := body["audio_url"].(string)
	if !strings.HasPrefix(url, "/audio/greeting_") || !strings.HasSuffix(url, ".mp3") {
		t.Errorf("audio_url = %q", url)
	}
}

func TestSTTUnavailable(t *testing.T) {
	srv := newTestServer(t, Options{})
	rec := doMultipart(t, srv.Router(), "/stt", "audio", "a.webm", []byte("pcm"), nil)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestSTTNoFile(t *testing.T) {
	srv := newTestServer(t, Options{Transcriber: &fakeTranscriber{}})
	rec := doMultipart(t, srv.Router(), "/stt", "", "", nil, map[string]string{"x": "y"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decode(t, rec); body["error"] != "No audio file provided" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestSTTTranscribes(t *testing.T) {
	srv := newTestServer(t, Options{Transcriber: &fakeTranscriber{texts: []string{"hello world"}}})
	rec := doMultipart(t, srv.Router(), "/stt", "audio", "a.webm", []byte("pcm"), nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if body := decode(t, rec); body["text"] != "hello world" {
		t.Errorf("text = %v", body["text"])
	}
}

func TestSTTFailure(t *testing.T) {
	srv := newTestServer(t, Options{Transcriber: &fakeTranscriber{err: errors.New("api down")}})
	rec := doMultipart(t, srv.Router(), "/stt", "audio", "a.webm", []byte("pcm"), nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if body := decode(t, rec); body["error"] != "Failed to transcribe audio" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestChatTextRequiresText(t *testing.T) {
	srv := newTestServer(t, Options{})
	rec := doJSON(t, srv.Router(), http.MethodPost, "/chat-text", map[string]any{"text": ""})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decode(t, rec); body["error"] != "No text provided" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestChatText(t *testing.T) {
	srv := newTestServer(t, Options{
		Chat:     rag.NewService(nil, llm.NewMockProvider(llm.MockResponse{Text: "echo reply"})),
		Vectors:  newFakeVectors(),
		Narrator: testNarrator(t),
	})
	rec := doJSON(t, srv.Router(), http.MethodPost, "/chat-text", map[string]any{"text": "hi"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	if body["reply_text"] != "echo reply" {
		t.Errorf("reply_text = %v", body["reply_text"])
	}
	if url, _ := body["audio_url"].(string); !strings.HasPrefix(url, "/audio/reply_") {
		t.Errorf("audio_url = %v", body["audio_url"])
	}
	if body["rag_used"] != true {
		t.Errorf("rag_used = %v, want true", body["rag_used"])
	}
}

func TestChatTextRAGFlag(t *testing.T) {
	srv := newTestServer(t, Options{
		Chat:     rag.NewService(nil, llm.NewMockProvider(llm.MockResponse{Text: "a"}, llm.MockResponse{Text: "b"})),
		Vectors:  newFakeVectors(),
		Narrator: testNarrator(t),
	})
	router := srv.Router()

	rec := doJSON(t, router, http.MethodPost, "/chat-text", map[string]any{"text": "hi", "use_rag": false})
	if body := decode(t, rec); body["rag_used"] != false {
		t.Errorf("rag_used = %v, want false when disabled", body["rag_used"])
	}

	// With no vector store configured the flag reports false even when
	// the client asks for RAG.
	bare := newTestServer(t, Options{
		Chat:     rag.NewService(nil, llm.NewMockProvider(llm.MockResponse{Text: "c"})),
		Narrator: testNarrator(t),
	})
	rec = doJSON(t, bare.Router(), http.MethodPost, "/chat-text", map[string]any{"text": "hi"})
	if body := decode(t, rec); body["rag_used"] != false {
		t.Errorf("rag_used = %v, want false without vector store", body["rag_used"])
	}
}

func TestChatTextNoTTS(t *testing.T) {
	srv := newTestServer(t, Options{})
	rec := doJSON(t, srv.Router(), http.MethodPost, "/chat-text", map[string]any{"text": "hi"})

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestChatVoiceKeepsSessionHistory(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Text: "resp one"},
		llm.MockResponse{Text: "resp two"},
	)
	srv := newTestServer(t, Options{
		Chat:        rag.NewService(nil, provider),
		Transcriber: &fakeTranscriber{texts: []string{"hi", "what did I say"}},
		Narrator:    testNarrator(t),
	})
	router := srv.Router()

	rec := doMultipart(t, router, "/chat-voice", "audio", "a.webm", []byte("pcm"),
		map[string]string{"session_id": "sess-1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("first turn status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	if body["transcription"] != "hi" || body["reply_text"] != "resp one" {
		t.Errorf("first turn body = %v", body)
	}
	if body["session_id"] != "sess-1" {
		t.Errorf("session_id = %v", body["session_id"])
	}

	rec = doMultipart(t, router, "/chat-voice", "audio", "b.webm", []byte("pcm"),
		map[string]string{"session_id": "sess-1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("second turn status = %d", rec.Code)
	}

	msgs := provider.Calls[1].Messages
	if len(msgs) != 3 {
		t.Fatalf("second turn saw %d messages, want 3", len(msgs))
	}
	if msgs[0].Content != "hi" || msgs[0].Role != llm.RoleUser {
		t.Errorf("history[0] = %+v", msgs[0])
	}
	if msgs[1].Content != "resp one" || msgs[1].Role != llm.RoleAssistant {
		t.Errorf("history[1] = %+v", msgs[1])
	}
	if msgs[2].Content != "what did I say" {
		t.Errorf("history[2] = %+v", msgs[2])
	}
}

func TestChatVoiceGeneratesSessionID(t *testing.T) {
	srv := newTestServer(t, Options{
		Chat:        rag.NewService(nil, llm.NewMockProvider(llm.MockResponse{Text: "ok"})),
		Transcriber: &fakeTranscriber{texts: []string{"hello"}},
		Narrator:    testNarrator(t),
	})
	rec := doMultipart(t, srv.Router(), "/chat-voice", "audio", "a.webm", []byte("pcm"), nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if id, _ := decode(t, rec)["session_id"].(string); id == "" {
		t.Error("expected a generated session_id")
	}
}

func TestAudioServesFile(t *testing.T) {
	narrator := testNarrator(t)
	srv := newTestServer(t, Options{Narrator: narrator})
	router := srv.Router()

	if err := os.WriteFile(narrator.FilePath("x.mp3"), []byte("audio-bytes"), 0o644); err != nil {
		t.Fatalf("write audio: %v", err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/audio/x.mp3", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "audio-bytes" {
		t.Errorf("body = %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/audio/missing.mp3", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing file status = %d, want 404", rec.Code)
	}
}

const uploadText = `Chapter 1 The Water Cycle
Water evaporates from oceans and lakes, rises as vapor, condenses into clouds, and falls back as rain. The cycle repeats endlessly and drives weather across the whole planet, moving enormous amounts of energy as it runs.

Chapter 2 Clouds
Clouds form when moist air cools below its dew point and the vapor condenses onto dust. Their shapes signal the state of the atmosphere, from fair-weather cumulus to towering storm anvils.`

func TestUploadRequiresVectors(t *testing.T) {
	srv := newTestServer(t, Options{})
	rec := doMultipart(t, srv.Router(), "/upload-document", "file", "notes.txt", []byte(uploadText), nil)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if body := decode(t, rec); !strings.Contains(body["error"].(string), "RAG service not available") {
		t.Errorf("error = %v", body["error"])
	}
}

func TestUploadNoFile(t *testing.T) {
	srv := newTestServer(t, Options{Vectors: newFakeVectors()})
	rec := doMultipart(t, srv.Router(), "/upload-document", "", "", nil, map[string]string{"x": "y"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decode(t, rec); body["error"] != "No file provided" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestUploadDocument(t *testing.T) {
	vectors := newFakeVectors()
	lib := library.New(nil, nil)
	srv := newTestServer(t, Options{Vectors: vectors, Library: lib})

	rec := doMultipart(t, srv.Router(), "/upload-document", "file", "notes.txt", []byte(uploadText),
		map[string]string{"document_id": "doc-upload-1"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	if body["document_id"] != "doc-upload-1" {
		t.Errorf("document_id = %v", body["document_id"])
	}
	chunks, _ := body["chunks_count"].(float64)
	if chunks < 1 {
		t.Errorf("chunks_count = %v", body["chunks_count"])
	}
	sections, _ := body["sections"].([]any)
	if len(sections) != 2 {
		t.Errorf("sections = %v", body["sections"])
	}
	if body["auto_start_tutoring"] != true {
		t.Errorf("auto_start_tutoring = %v", body["auto_start_tutoring"])
	}
	if !strings.HasPrefix(body["message"].(string), "Document processed and ") {
		t.Errorf("message = %v", body["message"])
	}
	if name, _ := body["pdf_filename"].(string); !strings.HasSuffix(name, "_notes.txt") {
		t.Errorf("pdf_filename = %v", body["pdf_filename"])
	}
	if _, ok := body["processing_time"].(map[string]any)["total"]; !ok {
		t.Errorf("processing_time = %v", body["processing_time"])
	}

	if vectors.added["doc-upload-1"] != int(chunks) {
		t.Errorf("vector store got %d chunks, response says %v", vectors.added["doc-upload-1"], chunks)
	}

	doc, ok := lib.Get("doc-upload-1")
	if !ok {
		t.Fatal("document missing from library")
	}
	if doc.Title != "notes.txt" || len(doc.Sections) != 2 {
		t.Errorf("library doc = %+v", doc)
	}
	if _, err := os.Stat(doc.FilePath); err != nil {
		t.Errorf("saved upload missing: %v", err)
	}
}

func TestDeleteDocument(t *testing.T) {
	vectors := newFakeVectors()
	lib := library.New(nil, nil)
	if err := lib.Add(context.Background(), library.Document{ID: "doc-1", Title: "x"}); err != nil {
		t.Fatalf("seed library: %v", err)
	}
	srv := newTestServer(t, Options{Vectors: vectors, Library: lib})
	router := srv.Router()

	rec := doJSON(t, router, http.MethodPost, "/delete-document", map[string]any{"document_id": "doc-1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if body := decode(t, rec); body["message"] != "Document doc-1 deleted" {
		t.Errorf("message = %v", body["message"])
	}
	if len(vectors.deleted) != 1 || vectors.deleted[0] != "doc-1" {
		t.Errorf("deleted ids = %v", vectors.deleted)
	}
	if _, ok := lib.Get("doc-1"); ok {
		t.Error("document still in library")
	}

	rec = doJSON(t, router, http.MethodPost, "/delete-document", map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing id status = %d, want 400", rec.Code)
	}
}

func TestDeleteDocumentRequiresVectors(t *testing.T) {
	srv := newTestServer(t, Options{})
	rec := doJSON(t, srv.Router(), http.MethodPost, "/delete-document", map[string]any{"document_id": "doc-1"})

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestVectorStats(t *testing.T) {
	vectors := newFakeVectors()
	vectors.stats = &vectorstore.Stats{IndexName: "ai-assistant-index", TotalVectors: 42}
	srv := newTestServer(t, Options{Vectors: vectors})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vector-stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	stats, _ := body["stats"].(map[string]any)
	if stats["index_name"] != "ai-assistant-index" {
		t.Errorf("stats = %v", stats)
	}
	if stats["total_vectors"] != float64(42) {
		t.Errorf("total_vectors = %v", stats["total_vectors"])
	}
}

func libraryDoc() library.Document {
	return library.Document{
		ID:         "doc-1",
		Title:      "bio.txt",
		SourceType: "txt",
		Text:       "Photosynthesis converts light into sugar. Respiration burns it back.",
		Sections: []tutor.Section{
			{Title: "Photosynthesis", Text: "Photosynthesis converts light into sugar."},
			{Title: "Respiration", Text: "Respiration burns it back."},
		},
		FilePath:   "uploads/bio.txt",
		FileName:   "bio.txt",
		ChunkCount: 1,
	}
}

func TestStartTutoring(t *testing.T) {
	lib := library.New(nil, nil)
	if err := lib.Add(context.Background(), libraryDoc()); err != nil {
		t.Fatalf("seed library: %v", err)
	}
	srv := newTestServer(t, Options{Library: lib, Engine: testEngine(t)})

	rec := doJSON(t, srv.Router(), http.MethodPost, "/start-tutoring", map[string]any{"document_id": "doc-1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	if id, _ := body["session_id"].(string); id == "" {
		t.Error("session_id missing")
	}
	if body["state"] != "section_qna" {
		t.Errorf("state = %v", body["state"])
	}
	if body["current_section_index"] != float64(0) {
		t.Errorf("current_section_index = %v", body["current_section_index"])
	}
	if body["current_section_title"] != "Photosynthesis" {
		t.Errorf("current_section_title = %v", body["current_section_title"])
	}
	if sections, _ := body["sections"].([]any); len(sections) != 2 {
		t.Errorf("sections = %v", body["sections"])
	}
	if msg, _ := body["message"].(string); msg == "" {
		t.Error("message empty")
	}
}

func TestStartTutoringUnknownDocument(t *testing.T) {
	srv := newTestServer(t, Options{Engine: testEngine(t)})

	rec := doJSON(t, srv.Router(), http.MethodPost, "/start-tutoring", map[string]any{"document_id": "ghost"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body := decode(t, rec); !strings.Contains(body["error"].(string), "ghost") {
		t.Errorf("error = %v", body["error"])
	}
}

func TestStartTutoringFromUpload(t *testing.T) {
	vectors := newFakeVectors()
	uploadDir := t.TempDir()
	path := uploadDir + "/20250101_000000_mydoc-1_notes.txt"
	if err := os.WriteFile(path, []byte(uploadText), 0o644); err != nil {
		t.Fatalf("write upload: %v", err)
	}
	lib := library.New(nil, nil)
	srv := newTestServer(t, Options{
		Vectors:   vectors,
		Library:   lib,
		Engine:    testEngine(t),
		UploadDir: uploadDir,
	})

	rec := doJSON(t, srv.Router(), http.MethodPost, "/start-tutoring", map[string]any{"document_id": "mydoc-1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if _, ok := lib.Get("mydoc-1"); !ok {
		t.Error("reingested document missing from library")
	}
	if vectors.added["mydoc-1"] == 0 {
		t.Error("reingested document was not indexed")
	}
}

func TestStartTutoringValidation(t *testing.T) {
	srv := newTestServer(t, Options{Engine: testEngine(t)})
	rec := doJSON(t, srv.Router(), http.MethodPost, "/start-tutoring", map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing id status = %d, want 400", rec.Code)
	}

	noEngine := newTestServer(t, Options{})
	rec = doJSON(t, noEngine.Router(), http.MethodPost, "/start-tutoring", map[string]any{"document_id": "doc-1"})
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("no engine status = %d, want 503", rec.Code)
	}
}

func TestTutoringChatSessionNotFound(t *testing.T) {
	srv := newTestServer(t, Options{Engine: testEngine(t)})

	rec := doJSON(t, srv.Router(), http.MethodPost, "/tutoring-chat",
		map[string]any{"session_id": "nope", "message": "hi"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body := decode(t, rec); body["error"] != "Session not found" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestTutoringChatValidation(t *testing.T) {
	srv := newTestServer(t, Options{Engine: testEngine(t)})
	router := srv.Router()

	rec := doJSON(t, router, http.MethodPost, "/tutoring-chat", map[string]any{"message": "hi"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing session status = %d, want 400", rec.Code)
	}
	if body := decode(t, rec); body["error"] != "session_id required" {
		t.Errorf("error = %v", body["error"])
	}

	rec = doJSON(t, router, http.MethodPost, "/tutoring-chat", map[string]any{"session_id": "s"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing message status = %d, want 400", rec.Code)
	}
	if body := decode(t, rec); body["error"] != "message required" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestTutoringChatQuizTurn(t *testing.T) {
	lib := library.New(nil, nil)
	if err := lib.Add(context.Background(), libraryDoc()); err != nil {
		t.Fatalf("seed library: %v", err)
	}
	srv := newTestServer(t, Options{Library: lib, Engine: testEngine(t)})
	router := srv.Router()

	rec := doJSON(t, router, http.MethodPost, "/start-tutoring", map[string]any{"document_id": "doc-1"})
	sessionID, _ := decode(t, rec)["session_id"].(string)
	if sessionID == "" {
		t.Fatalf("no session from start: %s", rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/tutoring-chat",
		map[string]any{"session_id": sessionID, "message": "quiz"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	if body["state"] != "quiz_question" {
		t.Errorf("state = %v", body["state"])
	}
	if q, _ := body["quiz_question"].(string); q == "" {
		t.Errorf("quiz_question = %v", body["quiz_question"])
	}
	options, _ := body["quiz_options"].([]any)
	if len(options) != 4 {
		t.Errorf("quiz_options = %v", body["quiz_options"])
	}
	if body["user_answer"] != nil {
		t.Errorf("user_answer = %v, want null", body["user_answer"])
	}
	if _, ok := body["audio_url"]; ok {
		t.Error("audio_url present without a narrator")
	}
}

func TestTutoringChatNarrates(t *testing.T) {
	lib := library.New(nil, nil)
	if err := lib.Add(context.Background(), libraryDoc()); err != nil {
		t.Fatalf("seed library: %v", err)
	}
	srv := newTestServer(t, Options{Library: lib, Engine: testEngine(t), Narrator: testNarrator(t)})
	router := srv.Router()

	rec := doJSON(t, router, http.MethodPost, "/start-tutoring", map[string]any{"document_id": "doc-1"})
	sessionID, _ := decode(t, rec)["session_id"].(string)

	rec = doJSON(t, router, http.MethodPost, "/tutoring-chat",
		map[string]any{"session_id": sessionID, "message": "tell me more"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if url, _ := decode(t, rec)["audio_url"].(string); !strings.HasPrefix(url, "/audio/tutoring_") {
		t.Errorf("audio_url = %v", url)
	}
}

func TestTutoringChatSurvivesNarrationFailure(t *testing.T) {
	lib := library.New(nil, nil)
	if err := lib.Add(context.Background(), libraryDoc()); err != nil {
		t.Fatalf("seed library: %v", err)
	}
	narrator, err := speech.NewNarrator(&fakeSynth{err: errors.New("tts down")}, t.TempDir())
	if err != nil {
		t.Fatalf("narrator: %v", err)
	}
	srv := newTestServer(t, Options{Library: lib, Engine: testEngine(t), Narrator: narrator})
	router := srv.Router()

	rec := doJSON(t, router, http.MethodPost, "/start-tutoring", map[string]any{"document_id": "doc-1"})
	sessionID, _ := decode(t, rec)["session_id"].(string)

	rec = doJSON(t, router, http.MethodPost, "/tutoring-chat",
		map[string]any{"session_id": sessionID, "message": "go on"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 despite narration failure", rec.Code)
	}
	if _, ok := decode(t, rec)["audio_url"]; ok {
		t.Error("audio_url present after narration failure")
	}
}
