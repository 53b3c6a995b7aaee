package cli

import (
	"fmt"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"docsearch/internal/adapter/extract"
	"docsearch/internal/adapter/fs"
	"docsearch/internal/port"
	"docsearch/internal/usecase"
)

var addRemote bool

var addCmd = &cobra.Command{
	Use:   "add <path|glob>...",
	Short: "Upload files into the document store",
	Long: `Upload files, directories or glob patterns into the document store.
Plain text files are stored verbatim; PDF, image and Word files get a
placeholder instead of extracted text. Re-adding a file replaces it.

Examples:
  docsearch add notes.txt
  docsearch add docs/ "papers/**/*.pdf"
  docsearch add --remote report.pdf   # upload through the backend`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().BoolVar(&addRemote, "remote", false, "upload through the backend (default from config)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	walker := fs.NewWalker(cfg.Upload.Includes, cfg.Upload.Excludes)
	paths, err := walker.Expand(args)
	if err != nil {
		return fmt.Errorf("failed to resolve paths: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no files matched %v", args)
	}

	ds, err := openDocumentStore()
	if err != nil {
		return err
	}
	defer ds.Close()

	var extractor port.Extractor = extract.NewLocalExtractor(cfg.Upload.MaxSize)
	if addRemote || cfg.Upload.Remote {
		extractor = newBackendClient()
	}

	uploadUC := usecase.NewUploadUseCase(ds, extractor)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time

	progressCallback := func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(!noColor),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Uploading[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}

		bar.Set(processed)

		if processed > 0 && processed < total {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			if rate > 0 {
				eta := time.Duration(float64(total-processed)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Uploading[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}

	result, err := uploadUC.Upload(cmd.Context(), paths, progressCallback)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	fmt.Printf("\nUpload complete:\n")
	fmt.Printf("  Files added:       %d\n", len(result.Added)-result.Replaced)
	fmt.Printf("  Files replaced:    %d\n", result.Replaced)
	fmt.Printf("  Unsupported:       %d\n", result.Unsupported)
	fmt.Printf("  Failed:            %d\n", result.Failed)
	fmt.Printf("  Documents stored:  %d\n", ds.Len())

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	if result.PersistFailed {
		return fmt.Errorf("documents could not be saved; they are only available until exit")
	}
	return nil
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
