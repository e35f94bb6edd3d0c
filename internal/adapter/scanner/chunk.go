package scanner

import (
	"errors"
	"fmt"
	"io"
	"os"

	"tsearch/internal/adapter/matcher"
	"tsearch/internal/domain"
)

// DefaultBlockSize is the read granularity for both scanners. Chunks are
// streamed block by block; a chunk is never held in memory whole.
const DefaultBlockSize = 4096

// Chunk scans one planned range of a file. Every Scan call opens its own
// file handle, so concurrent workers share no cursor and need no locking
// around reads.
type Chunk struct {
	blockSize int
}

func NewChunk(blockSize int) *Chunk {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &Chunk{blockSize: blockSize}
}

// Scan counts the occurrences attributed to rng: matches whose first byte
// lies in [LogicalStart, LogicalEnd). Failures to open, seek, or read are
// returned as errors, never as a plausible-looking zero count.
func (c *Chunk) Scan(path string, rng domain.Range, word []byte) (domain.PartialResult, error) {
	res := domain.PartialResult{Worker: rng.Worker}
	if len(word) == 0 {
		return res, errors.New("empty word")
	}

	f, err := os.Open(path)
	if err != nil {
		return res, fmt.Errorf("worker %d: open: %w", rng.Worker, err)
	}
	defer f.Close()

	if _, err := f.Seek(rng.ReadStart, io.SeekStart); err != nil {
		return res, fmt.Errorf("worker %d: seek to %d: %w", rng.Worker, rng.ReadStart, err)
	}

	stream := matcher.NewStream(word, rng.ReadStart, rng.LogicalStart, rng.LogicalEnd)
	buf := make([]byte, c.blockSize)

	var total int64
	for total < rng.ReadLen {
		want := rng.ReadLen - total
		if want > int64(c.blockSize) {
			want = int64(c.blockSize)
		}
		n, err := f.Read(buf[:want])
		if n > 0 {
			stream.Feed(buf[:n])
			total += int64(n)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("worker %d: read at %d: %w", rng.Worker, rng.ReadStart+total, err)
		}
	}

	res.Count = stream.Close()
	return res, nil
}
