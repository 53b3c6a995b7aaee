package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List uploaded documents in upload order",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	ds, err := openDocumentStore()
	if err != nil {
		return err
	}
	defer ds.Close()

	docs := ds.List()
	if listJSON {
		output, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode documents: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	newPrinter().Documents(docs)
	return nil
}
