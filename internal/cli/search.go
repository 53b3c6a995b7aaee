package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	searchText string
	searchJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search uploaded document contents",
	Long: `Search uploaded documents for a literal, case-insensitive substring.
Every non-overlapping occurrence is reported with a snippet of surrounding text.

Examples:
  docsearch search -q "bandana"
  docsearch search "a.b*c" --json`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchText, "query", "q", "", "search query")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := searchText
	if query == "" {
		query = strings.Join(args, " ")
	}
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("a query is required (-q or positional)")
	}

	ds, err := openDocumentStore()
	if err != nil {
		return err
	}
	defer ds.Close()

	searcher := newSearcher(ds)
	defer searcher.Close()

	results, err := searcher.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		output, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	newPrinter().Results(query, results)
	return nil
}
