package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/docent/internal/library"
	"github.com/abhisek/docent/internal/store"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage the document library",
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents in the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, st, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		docs := lib.List()
		if len(docs) == 0 {
			fmt.Println("Library is empty. Add a document with: docent ingest <file>")
			return nil
		}

		fmt.Printf("%-36s  %-30s  %-8s  %8s  %8s\n", "ID", "Title", "Sections", "Chunks", "Chars")
		fmt.Println(strings.Repeat("─", 98))
		for _, d := range docs {
			title := d.Title
			if len(title) > 30 {
				title = title[:27] + "..."
			}
			fmt.Printf("%-36s  %-30s  %-8d  %8d  %8d\n",
				d.ID, title, len(d.Sections), d.ChunkCount, d.CharCount)
		}
		fmt.Printf("\n%d documents\n", len(docs))
		return nil
	},
}

var docsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a document from the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, st, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		doc, ok, err := lib.Remove(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("remove document: %w", err)
		}
		if !ok {
			return fmt.Errorf("no document with id %q", args[0])
		}
		fmt.Printf("Removed %s (%s)\n", doc.Title, doc.ID)
		return nil
	},
}

func init() {
	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsRemoveCmd)
}

// openLibrary opens the store and restores the document library from its
// latest snapshot. The caller closes the returned store.
func openLibrary(cmd *cobra.Command) (*library.Library, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	lib := library.New(st.SnapshotRepo(), st.EventRepo())
	if err := lib.Load(cmd.Context()); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not restore document library:", err)
	}
	return lib, st, nil
}
