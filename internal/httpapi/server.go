// Package httpapi exposes the assistant over HTTP: text and voice chat,
// document ingestion for retrieval, and the tutoring session endpoints.
// Route paths and response bodies are the contract the browser client
// was written against, so field names stay exactly as they are.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/abhisek/docent/internal/docproc"
	"github.com/abhisek/docent/internal/library"
	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/rag"
	"github.com/abhisek/docent/internal/speech"
	"github.com/abhisek/docent/internal/tutor"
	"github.com/abhisek/docent/internal/vectorstore"
)

// DefaultAddr is the listen address unless overridden.
const DefaultAddr = ":3000"

// DefaultUploadDir receives saved uploads unless overridden.
const DefaultUploadDir = "uploads"

// VectorStore is the slice of the vector index the server needs. A nil
// store means no index is configured and the RAG endpoints answer 503.
type VectorStore interface {
	AddChunks(ctx context.Context, documentID string, chunks []docproc.Chunk) (int, error)
	DeleteDocument(ctx context.Context, documentID string) (int, error)
	Stats(ctx context.Context) (*vectorstore.Stats, error)
}

// Options carries the server's collaborators. Chat is required; the
// other services are optional and their endpoints degrade when absent.
type Options struct {
	Chat        *rag.Service
	Vectors     VectorStore
	Transcriber speech.Transcriber
	Narrator    *speech.Narrator
	Processor   *docproc.Processor
	Library     *library.Library
	Engine      *tutor.Engine
	UploadDir   string
}

// Server handles the HTTP surface of the assistant.
type Server struct {
	chat        *rag.Service
	vectors     VectorStore
	transcriber speech.Transcriber
	narrator    *speech.Narrator
	processor   *docproc.Processor
	lib         *library.Library
	engine      *tutor.Engine
	uploadDir   string

	mu    sync.Mutex
	convs map[string][]llm.Message // voice chat history per session
}

// NewServer builds the server and makes sure the upload directory exists.
func NewServer(opts Options) (*Server, error) {
	if opts.Chat == nil {
		return nil, fmt.Errorf("chat service is required")
	}
	if opts.Processor == nil {
		opts.Processor = docproc.NewProcessor()
	}
	if opts.Library == nil {
		opts.Library = library.New(nil, nil)
	}
	if opts.UploadDir == "" {
		opts.UploadDir = DefaultUploadDir
	}
	if err := os.MkdirAll(opts.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &Server{
		chat:        opts.Chat,
		vectors:     opts.Vectors,
		transcriber: opts.Transcriber,
		narrator:    opts.Narrator,
		processor:   opts.Processor,
		lib:         opts.Library,
		engine:      opts.Engine,
		uploadDir:   opts.UploadDir,
		convs:       make(map[string][]llm.Message),
	}, nil
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/health", s.handleHealth)
	r.GET("/greet", s.handleGreet)
	r.POST("/stt", s.handleSTT)
	r.POST("/chat-text", s.handleChatText)
	r.POST("/chat-voice", s.handleChatVoice)
	r.GET("/audio/:filename", s.handleAudio)

	r.POST("/upload-document", s.handleUploadDocument)
	r.POST("/delete-document", s.handleDeleteDocument)
	r.GET("/vector-stats", s.handleVectorStats)

	r.POST("/start-tutoring", s.handleStartTutoring)
	r.POST("/tutoring-chat", s.handleTutoringChat)

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// ragAvailable reports whether a vector index is configured.
func (s *Server) ragAvailable() bool {
	return s.vectors != nil
}

// history returns a copy of one voice session's conversation.
func (s *Server) history(sessionID string) []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.convs[sessionID])
}

// remember appends one user/assistant exchange to a voice session.
func (s *Server) remember(sessionID, userText, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.convs[sessionID] = append(s.convs[sessionID],
		llm.Message{Role: llm.RoleUser, Content: userText},
		llm.Message{Role: llm.RoleAssistant, Content: reply},
	)
}
