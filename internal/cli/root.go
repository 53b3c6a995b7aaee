package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"docsearch/config"
	"docsearch/internal/logger"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "docsearch",
	Short: "Document search - upload files and search their contents",
	Long: `docsearch keeps a local collection of uploaded documents and searches
their contents for literal, case-insensitive matches with highlighted snippets.
Questions can also be sent to a remote question-answering backend.

Example usage:
  docsearch add notes.txt docs/        # Upload files
  docsearch search -q "bandana"        # Search uploaded contents
  docsearch ask "what is in my notes?" # Ask the backend`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		// A missing .env is normal.
		_ = godotenv.Load(".env")

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger.SetLevel(logger.ParseLevel(cfg.Logging.Level))
		if verbose {
			logger.SetVerbose(true)
		}
		logger.Debug("root=%s backend=%s", rootDir, cfg.Storage.Backend)

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./docsearch.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
