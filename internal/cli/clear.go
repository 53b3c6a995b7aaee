package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all uploaded documents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := openDocumentStore()
		if err != nil {
			return err
		}
		defer ds.Close()

		n := ds.Len()
		if err := ds.Clear(); err != nil {
			return fmt.Errorf("failed to clear documents: %w", err)
		}
		fmt.Printf("Removed %d documents\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
