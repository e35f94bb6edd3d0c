package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"tsearch/config"
	"tsearch/internal/adapter/store"
	"tsearch/internal/domain"
	"tsearch/internal/usecase"
)

// runSearch implements the root invocation: exactly three positional
// arguments — file path, search word, worker count.
func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("expected <file> <word> <workers>, got %d argument(s)", len(args))
	}

	path := args[0]
	word := truncateWord(args[1], cfg.Search.MaxWordLength)
	if len(word) == 0 {
		return errors.New("search word is empty")
	}
	workers := parseWorkers(args[2])

	fmt.Printf("Searching for %q in %s with %d workers\n", word, path, workers)

	searchUC := usecase.NewSearchUseCase(cfg.Search.BlockSize)
	res, err := searchUC.Search(domain.SearchRequest{
		Path:    path,
		Word:    word,
		Workers: workers,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Using %s search\n", res.Mode)
	fmt.Printf("Found %d occurrences in %d ms\n", res.Count, res.Elapsed.Milliseconds())

	recordHistory(res, path)
	return nil
}

// parseWorkers follows the input contract: an 8-bit count where anything
// non-numeric or out of range resolves to 0, which means sequential.
func parseWorkers(s string) int {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0
	}
	return int(n)
}

// truncateWord caps the word at max bytes; long input is truncated, not
// rejected.
func truncateWord(s string, max int) []byte {
	if max > 0 && len(s) > max {
		s = s[:max]
	}
	return []byte(s)
}

// recordHistory appends a successful search to the history store. History
// is best-effort: a store problem is a warning, never a failed search.
func recordHistory(res *domain.SearchResult, path string) {
	if cfg == nil || !cfg.History.Enabled {
		return
	}

	wd, err := os.Getwd()
	if err != nil {
		return
	}
	if err := config.EnsureStateDir(wd); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create state dir: %v\n", err)
		return
	}

	st, err := store.NewHistoryStore(config.HistoryDBPath(wd))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open history: %v\n", err)
		return
	}
	defer st.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	entry := domain.HistoryEntry{
		Word:      res.Word,
		Path:      abs,
		Count:     res.Count,
		Workers:   res.Workers,
		Mode:      res.Mode,
		ElapsedMS: res.Elapsed.Milliseconds(),
		At:        time.Now(),
	}
	if err := st.Append(entry); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record history: %v\n", err)
	}
}
