package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"docsearch/internal/domain"
	"docsearch/internal/usecase"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>...",
	Aliases: []string{"rm"},
	Short:   "Remove documents by id",
	Long: `Remove documents from the store by id. Unknown ids are reported and
make the command exit non-zero after the known ones are removed.
Use 'docsearch list' to see document ids.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	ds, err := openDocumentStore()
	if err != nil {
		return err
	}
	defer ds.Close()

	return removeDocuments(ds, args, os.Stdout)
}

func removeDocuments(ds *usecase.DocumentStore, ids []string, w io.Writer) error {
	var missing []string
	for _, id := range ids {
		doc, ok := ds.Get(id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		if err := ds.Remove(id); err != nil {
			return fmt.Errorf("failed to remove %s: %w", id, err)
		}
		fmt.Fprintf(w, "Removed %s (%s)\n", doc.Name, id)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: no document with id %s", domain.ErrNotFound, strings.Join(missing, ", "))
	}
	return nil
}
