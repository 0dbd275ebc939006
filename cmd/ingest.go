package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/docent/internal/docproc"
	"github.com/abhisek/docent/internal/embedding"
	"github.com/abhisek/docent/internal/library"
	"github.com/abhisek/docent/internal/store"
	"github.com/abhisek/docent/internal/vectorstore"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>",
	Short: "Add a document to the library",
	Long: `Extract text from a file, split it into sections, and add it to the
document library so tutoring sessions can use it.

With --index the document's chunks are also embedded and upserted into the
vector index (requires PINECONE_API_KEY and OPENAI_API_KEY).`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().String("title", "", "Document title (defaults to the file name)")
	ingestCmd.Flags().Bool("index", false, "Embed and upsert chunks into the vector index")
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	processor := docproc.NewProcessor()
	processed, err := processor.Process(path, "")
	if err != nil {
		return fmt.Errorf("process %s: %w", path, err)
	}
	sections := processor.IdentifySections(processed.Text)

	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		title = filepath.Base(path)
	}

	lib := library.New(st.SnapshotRepo(), st.EventRepo())
	if err := lib.Load(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not restore document library:", err)
	}
	doc := library.Document{
		ID:         processed.DocumentID,
		Title:      title,
		SourceType: processed.SourceType,
		Text:       processed.Text,
		Sections:   sections,
		FilePath:   path,
		FileName:   processed.FileName,
		ChunkCount: len(processed.Chunks),
	}
	if err := lib.Add(ctx, doc); err != nil {
		return fmt.Errorf("add to library: %w", err)
	}

	fmt.Printf("Ingested %s\n", title)
	fmt.Printf("  id:       %s\n", doc.ID)
	fmt.Printf("  chars:    %d\n", len(processed.Text))
	fmt.Printf("  chunks:   %d\n", len(processed.Chunks))
	fmt.Printf("  sections: %d\n", len(sections))
	for i, sec := range sections {
		fmt.Printf("    %d. %s\n", i+1, sec.Title)
	}

	if index, _ := cmd.Flags().GetBool("index"); index {
		vcfg := vectorstore.ConfigFromEnv()
		if vcfg.APIKey == "" {
			return fmt.Errorf("--index requires PINECONE_API_KEY")
		}
		embedder, err := embedding.NewOpenAI(os.Getenv("OPENAI_API_KEY"))
		if err != nil {
			return fmt.Errorf("embedder: %w", err)
		}
		vs, err := vectorstore.NewService(ctx, vcfg, embedder)
		if err != nil {
			return fmt.Errorf("vector store: %w", err)
		}
		added, err := vs.AddChunks(ctx, doc.ID, processed.Chunks)
		if err != nil {
			return fmt.Errorf("index chunks: %w", err)
		}
		fmt.Printf("  indexed:  %d vectors\n", added)
	}

	return nil
}

var sectionsCmd = &cobra.Command{
	Use:   "sections <file>",
	Short: "Show how a file would be split into teaching sections (no database)",
	Long: `Extract text from a file and print the sections the tutor would teach,
without touching the library or the vector index. Useful for checking how a
document will be carved up before ingesting it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		processor := docproc.NewProcessor()
		text, err := processor.ExtractText(args[0])
		if err != nil {
			return err
		}
		sections := processor.IdentifySections(text)

		fmt.Printf("%s — %d chars, %d sections\n\n", filepath.Base(args[0]), len(text), len(sections))
		for i, sec := range sections {
			preview := strings.Join(strings.Fields(sec.Text), " ")
			if len(preview) > 70 {
				preview = preview[:70] + "..."
			}
			fmt.Printf("%2d. %s (%d chars)\n    %s\n", i+1, sec.Title, len(sec.Text), preview)
		}
		return nil
	},
}
