package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"tsearch/internal/adapter/fs"
	"tsearch/internal/usecase"
)

var (
	scanWord    string
	scanWorkers int
)

var scanCmd = &cobra.Command{
	Use:   "scan [root]",
	Short: "Count occurrences across every file under a directory",
	Long: `Scan every file under the root directory that matches the configured
include/exclude globs and count whole-word occurrences of the word in
each one. Large files are scanned with parallel workers, small ones
sequentially.

Examples:
  tsearch scan -w ERROR ./logs
  tsearch scan -w ERROR --workers 4 .`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVarP(&scanWord, "word", "w", "", "word to search for (required)")
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 0, "workers per file (0 means sequential)")
	scanCmd.MarkFlagRequired("word")
}

func runScan(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	word := truncateWord(scanWord, cfg.Search.MaxWordLength)
	if len(word) == 0 {
		return errors.New("search word is empty")
	}

	walker := fs.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes)
	searchUC := usecase.NewSearchUseCase(cfg.Search.BlockSize)
	scanUC := usecase.NewScanUseCase(searchUC, walker)

	fmt.Printf("Scanning %s for %q...\n", root, word)

	var bar *progressbar.ProgressBar
	progress := func(processed, total int, currentFile string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("Scanning"),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(processed)
	}

	res, err := scanUC.Scan(root, word, scanWorkers, progress)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	for _, f := range res.Files {
		rel, err := filepath.Rel(root, f.Path)
		if err != nil {
			rel = f.Path
		}
		fmt.Printf("  %8d  %s\n", f.Count, rel)
	}

	fmt.Printf("\nFound %d occurrences across %d files in %d ms\n",
		res.Total, res.FilesScanned, res.Elapsed.Milliseconds())

	if len(res.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range res.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	return nil
}
