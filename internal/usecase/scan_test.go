package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"tsearch/internal/adapter/fs"
	"tsearch/internal/port"
)

func TestScanDirectory(t *testing.T) {
	root := t.TempDir()

	files := map[string]string{
		"a.txt":       "error error errors",
		"sub/b.txt":   "no matches here",
		"sub/c.log":   "error",
		"skip/d.txt":  "error error error",
		"ignored.dat": "error error",
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	walker := fs.NewWalker([]string{"**/*.txt", "**/*.log"}, []string{"skip/**"})
	uc := NewScanUseCase(NewSearchUseCase(4096), walker)

	var lastProcessed, lastTotal int
	progress := func(processed, total int, currentFile string) {
		lastProcessed, lastTotal = processed, total
	}

	res, err := uc.Scan(root, []byte("error"), 2, progress)
	if err != nil {
		t.Fatal(err)
	}

	// a.txt has 2, c.log has 1; b.txt matches the globs but contains
	// nothing; skip/ and .dat are filtered out.
	if res.Total != 3 {
		t.Errorf("total %d, want 3", res.Total)
	}
	if res.FilesScanned != 3 {
		t.Errorf("scanned %d files, want 3", res.FilesScanned)
	}
	if len(res.Files) != 2 {
		t.Errorf("%d files with matches, want 2", len(res.Files))
	}
	if len(res.Errors) != 0 {
		t.Errorf("unexpected warnings: %v", res.Errors)
	}
	if lastProcessed != lastTotal || lastTotal != 3 {
		t.Errorf("final progress %d/%d, want 3/3", lastProcessed, lastTotal)
	}
}

func TestScanEmptyDirectory(t *testing.T) {
	walker := fs.NewWalker(nil, nil)
	uc := NewScanUseCase(NewSearchUseCase(4096), walker)

	res, err := uc.Scan(t.TempDir(), []byte("word"), 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 0 || res.FilesScanned != 0 {
		t.Errorf("empty dir: total %d over %d files", res.Total, res.FilesScanned)
	}
}

// stubWalker lets the scan path be tested against unreadable files
// without depending on filesystem permissions.
type stubWalker struct {
	files []port.FileInfo
}

func (s *stubWalker) Walk(root string) ([]port.FileInfo, error) {
	return s.files, nil
}

func TestScanRecordsPerFileFailures(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "good.txt")
	if err := os.WriteFile(good, []byte("error"), 0644); err != nil {
		t.Fatal(err)
	}

	walker := &stubWalker{files: []port.FileInfo{
		{Path: good, Size: 5},
		{Path: filepath.Join(root, "missing.txt"), Size: 100},
	}}
	uc := NewScanUseCase(NewSearchUseCase(4096), walker)

	res, err := uc.Scan(root, []byte("error"), 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 1 || res.FilesScanned != 1 {
		t.Errorf("total %d over %d files, want 1 over 1", res.Total, res.FilesScanned)
	}
	if len(res.Errors) != 1 {
		t.Errorf("%d warnings, want 1 for the missing file", len(res.Errors))
	}
}
