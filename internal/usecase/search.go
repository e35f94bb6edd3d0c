package usecase

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"tsearch/internal/adapter/planner"
	"tsearch/internal/adapter/scanner"
	"tsearch/internal/domain"
)

// SearchUseCase is the single entry point for one search over one file.
// It decides sequential vs parallel, fans the work out, and merges the
// partial counts into the final result.
type SearchUseCase struct {
	blockSize int
	chunks    *scanner.Chunk
	seq       *scanner.Sequential
}

func NewSearchUseCase(blockSize int) *SearchUseCase {
	if blockSize <= 0 {
		blockSize = scanner.DefaultBlockSize
	}
	return &SearchUseCase{
		blockSize: blockSize,
		chunks:    scanner.NewChunk(blockSize),
		seq:       scanner.NewSequential(blockSize),
	}
}

// Search runs one search to completion. Parallel mode is used only when
// more than one worker is requested and the file spans at least one block;
// below that a single pass is cheaper than planning.
//
// Elapsed time covers everything from before the first byte is read until
// the last partial count is merged; time.Since is monotonic, so wall-clock
// adjustments cannot skew it.
//
// Partial-failure policy: every launched worker is joined before Search
// returns, and any worker error fails the whole search. No degraded count
// is ever reported.
func (u *SearchUseCase) Search(req domain.SearchRequest) (*domain.SearchResult, error) {
	if len(req.Word) == 0 {
		return nil, errors.New("search word is empty")
	}

	info, err := os.Stat(req.Path)
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", req.Path)
	}

	start := time.Now()

	if req.Workers <= 1 || info.Size() < int64(u.blockSize) {
		count, err := u.seq.ScanAll(req.Path, req.Word)
		if err != nil {
			return nil, err
		}
		return &domain.SearchResult{
			Word:    string(req.Word),
			Count:   count,
			Workers: 1,
			Mode:    domain.ModeSequential,
			Elapsed: time.Since(start),
		}, nil
	}

	plan := planner.Plan(info.Size(), req.Workers, len(req.Word))

	// Worker-exclusive slots: each goroutine writes only its own index,
	// and no slot is read before the join barrier below.
	partials := make([]domain.PartialResult, len(plan))
	errs := make([]error, len(plan))

	var wg sync.WaitGroup
	for i, rng := range plan {
		wg.Add(1)
		go func(i int, rng domain.Range) {
			defer wg.Done()
			partials[i], errs[i] = u.chunks.Scan(req.Path, rng, req.Word)
		}(i, rng)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("parallel scan failed: %w", err)
	}

	var total uint64
	for _, p := range partials {
		total += p.Count
	}

	return &domain.SearchResult{
		Word:    string(req.Word),
		Count:   total,
		Workers: len(plan),
		Mode:    domain.ModeParallel,
		Elapsed: time.Since(start),
	}, nil
}
