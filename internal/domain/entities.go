package domain

import "time"

// SearchRequest describes one search over a single file. It is immutable
// once constructed; the orchestrator owns it for the duration of the search.
type SearchRequest struct {
	Path    string
	Word    []byte
	Workers int
}

// Range is one worker's slice of the file. The logical range is the
// non-overlapping partition slice this worker attributes matches to; the
// read range is widened with context bytes so every match starting inside
// the logical range is fully decidable from this worker's bytes alone.
type Range struct {
	Worker       int
	LogicalStart int64
	LogicalEnd   int64
	ReadStart    int64
	ReadLen      int64
}

// PartialResult is one worker's occurrence count before aggregation.
type PartialResult struct {
	Worker int
	Count  uint64
}

// Mode records which scan strategy produced a result.
type Mode string

const (
	ModeSequential Mode = "sequential"
	ModeParallel   Mode = "parallel"
)

type SearchResult struct {
	Word    string
	Count   uint64
	Workers int
	Mode    Mode
	Elapsed time.Duration
}

// FileCount is one file's tally within a directory scan.
type FileCount struct {
	Path  string
	Count uint64
}

// ScanResult aggregates a directory scan.
type ScanResult struct {
	Word         string
	Total        uint64
	FilesScanned int
	Files        []FileCount
	Errors       []string
	Elapsed      time.Duration
}

// HistoryEntry is one completed search as recorded in the history store.
type HistoryEntry struct {
	Word      string    `json:"word"`
	Path      string    `json:"path"`
	Count     uint64    `json:"count"`
	Workers   int       `json:"workers"`
	Mode      Mode      `json:"mode"`
	ElapsedMS int64     `json:"elapsed_ms"`
	At        time.Time `json:"at"`
}
