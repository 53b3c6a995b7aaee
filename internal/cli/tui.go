package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"docsearch/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Search interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := openDocumentStore()
		if err != nil {
			return err
		}
		defer ds.Close()

		searcher := newSearcher(ds)
		defer searcher.Close()

		summary := fmt.Sprintf("%d documents loaded. Enter searches, up/down switches results, esc quits.", ds.Len())
		p := tea.NewProgram(tui.New(searcher, summary), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("tui failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
