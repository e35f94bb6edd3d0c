package scanner

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"tsearch/internal/adapter/matcher"
)

// Sequential scans a whole file end to end in fixed-size blocks, with the
// same cross-block carry discipline as the chunk scanner. Used when one
// worker is requested or the file is too small to be worth partitioning.
type Sequential struct {
	blockSize int
}

func NewSequential(blockSize int) *Sequential {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &Sequential{blockSize: blockSize}
}

// ScanAll counts whole-word occurrences of word over the entire file.
func (s *Sequential) ScanAll(path string, word []byte) (uint64, error) {
	if len(word) == 0 {
		return 0, errors.New("empty word")
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	stream := matcher.NewStream(word, 0, 0, math.MaxInt64)
	buf := make([]byte, s.blockSize)

	for {
		n, err := f.Read(buf)
		if n > 0 {
			stream.Feed(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read: %w", err)
		}
	}

	return stream.Close(), nil
}
