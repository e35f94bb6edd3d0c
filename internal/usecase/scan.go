package usecase

import (
	"fmt"
	"time"

	"tsearch/internal/domain"
	"tsearch/internal/port"
)

// ProgressFunc reports directory-scan progress to the caller.
type ProgressFunc func(processed, total int, currentFile string)

// ScanUseCase runs the single-file search over every file matched by the
// walker under a root directory.
type ScanUseCase struct {
	search *SearchUseCase
	walker port.FileWalker
}

func NewScanUseCase(search *SearchUseCase, walker port.FileWalker) *ScanUseCase {
	return &ScanUseCase{search: search, walker: walker}
}

// Scan counts occurrences of word in every matched file. A file that
// cannot be scanned is recorded as a warning and does not abort the rest
// of the scan; the per-file mode (sequential or parallel) follows the same
// size threshold as a single-file search.
func (u *ScanUseCase) Scan(root string, word []byte, workers int, progress ProgressFunc) (*domain.ScanResult, error) {
	start := time.Now()

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	res := &domain.ScanResult{Word: string(word)}
	for i, file := range files {
		if progress != nil {
			progress(i, len(files), file.Path)
		}

		sr, err := u.search.Search(domain.SearchRequest{
			Path:    file.Path,
			Word:    word,
			Workers: workers,
		})
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", file.Path, err))
			continue
		}

		res.FilesScanned++
		res.Total += sr.Count
		if sr.Count > 0 {
			res.Files = append(res.Files, domain.FileCount{Path: file.Path, Count: sr.Count})
		}
	}
	if progress != nil {
		progress(len(files), len(files), "")
	}

	res.Elapsed = time.Since(start)
	return res, nil
}
