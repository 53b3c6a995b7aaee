package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"docsearch/internal/usecase"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the remote question-answering backend",
	Long: `Send a question to the backend's /rag endpoint and print the answer
with the response time. The local document store is not consulted.

Examples:
  docsearch ask "what does the report conclude?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	askUC := usecase.NewAskUseCase(newBackendClient())

	answer, err := askUC.Ask(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	newPrinter().Answer(answer)
	return nil
}
