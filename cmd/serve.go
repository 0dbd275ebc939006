package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/abhisek/docent/internal/embedding"
	"github.com/abhisek/docent/internal/httpapi"
	"github.com/abhisek/docent/internal/library"
	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/rag"
	"github.com/abhisek/docent/internal/speech"
	"github.com/abhisek/docent/internal/store"
	"github.com/abhisek/docent/internal/tutor"
	"github.com/abhisek/docent/internal/vectorstore"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Run the HTTP API server used by the voice/browser client.

Document ingestion and retrieval need PINECONE_API_KEY and OPENAI_API_KEY;
voice replies need ELEVENLABS_API_KEY. Endpoints degrade gracefully when a
service is not configured.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", httpapi.DefaultAddr, "Listen address")
	serveCmd.Flags().String("uploads", httpapi.DefaultUploadDir, "Directory for uploaded documents")
	serveCmd.Flags().String("audio", "audio_files", "Directory for generated speech files")
	serveCmd.Flags().String("log-dir", "", "Directory for rotated request logs (stdout only when empty)")
	serveCmd.Flags().String("sessions", string(tutor.StoreTypeMemory), "Tutoring session store: memory or redis")
	serveCmd.Flags().String("redis", "localhost:6379", "Redis address for --sessions=redis")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	figure.NewFigure("DOCENT", "", true).Print()
	fmt.Printf("Docent API (%s)\n\n", version)

	if dir, _ := cmd.Flags().GetString("log-dir"); dir != "" {
		gin.DefaultWriter = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   filepath.Join(dir, "docent-server.log"),
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	eventRepo := st.EventRepo()

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	// Vector search is optional; without it the RAG endpoints answer 503.
	var vectors httpapi.VectorStore
	var searcher rag.Searcher
	vcfg := vectorstore.ConfigFromEnv()
	if vcfg.APIKey != "" {
		embedder, err := embedding.NewOpenAI(os.Getenv("OPENAI_API_KEY"))
		if err != nil {
			return fmt.Errorf("embedder: %w", err)
		}
		vs, err := vectorstore.NewService(ctx, vcfg, embedder)
		if err != nil {
			return fmt.Errorf("vector store: %w", err)
		}
		vectors = vs
		searcher = vs
	} else {
		fmt.Fprintln(os.Stderr, "PINECONE_API_KEY not set; document search disabled")
	}

	var transcriber speech.Transcriber
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		stt, err := speech.NewSTT(key)
		if err != nil {
			return fmt.Errorf("speech-to-text: %w", err)
		}
		transcriber = stt
	}

	var narrator *speech.Narrator
	if key := os.Getenv("ELEVENLABS_API_KEY"); key != "" {
		tts, err := speech.NewTTS(key)
		if err != nil {
			return fmt.Errorf("text-to-speech: %w", err)
		}
		audioDir, _ := cmd.Flags().GetString("audio")
		narrator, err = speech.NewNarrator(tts, audioDir)
		if err != nil {
			return fmt.Errorf("narrator: %w", err)
		}
	} else {
		fmt.Fprintln(os.Stderr, "ELEVENLABS_API_KEY not set; voice replies disabled")
	}

	lib := library.New(st.SnapshotRepo(), eventRepo)
	if err := lib.Load(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not restore document library:", err)
	}

	sessions, err := sessionStore(cmd)
	if err != nil {
		return err
	}
	defer sessions.Close()
	engine := tutor.NewEngine(sessions, tutor.NewProviderCompleter(provider), eventRepo)

	uploadDir, _ := cmd.Flags().GetString("uploads")
	srv, err := httpapi.NewServer(httpapi.Options{
		Chat:        rag.NewService(searcher, provider),
		Vectors:     vectors,
		Transcriber: transcriber,
		Narrator:    narrator,
		Library:     lib,
		Engine:      engine,
		UploadDir:   uploadDir,
	})
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	addr, _ := cmd.Flags().GetString("addr")
	fmt.Printf("Model: %s\nListening on %s\n", provider.ModelID(), addr)
	return srv.Router().Run(addr)
}

// sessionStore builds the tutoring session store from the --sessions flag.
func sessionStore(cmd *cobra.Command) (tutor.Store, error) {
	kind, _ := cmd.Flags().GetString("sessions")
	switch tutor.StoreType(kind) {
	case tutor.StoreTypeMemory:
		return tutor.NewStore(tutor.StoreTypeMemory)
	case tutor.StoreTypeRedis:
		addr, _ := cmd.Flags().GetString("redis")
		return tutor.NewStore(tutor.StoreTypeRedis, tutor.WithRedisAddr(addr))
	default:
		return nil, fmt.Errorf("unknown session store %q: use memory or redis", kind)
	}
}
