package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Search.BlockSize != 4096 {
		t.Errorf("expected BlockSize=4096, got %d", cfg.Search.BlockSize)
	}
	if cfg.Search.MaxWordLength != 128 {
		t.Errorf("expected MaxWordLength=128, got %d", cfg.Search.MaxWordLength)
	}
	if cfg.Search.Workers != 0 {
		t.Errorf("expected Workers=0, got %d", cfg.Search.Workers)
	}
	if !cfg.History.Enabled {
		t.Error("expected history enabled by default")
	}
	if cfg.History.Limit != 20 {
		t.Errorf("expected history Limit=20, got %d", cfg.History.Limit)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/tsearch.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected default config, got nil")
	}
	if cfg.Search.BlockSize != 4096 {
		t.Errorf("expected default BlockSize, got %d", cfg.Search.BlockSize)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "tsearch.yaml")

	content := `
search:
  block_size: 8192
  workers: 4
history:
  enabled: false
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Search.BlockSize != 8192 {
		t.Errorf("expected BlockSize=8192, got %d", cfg.Search.BlockSize)
	}
	if cfg.Search.Workers != 4 {
		t.Errorf("expected Workers=4, got %d", cfg.Search.Workers)
	}
	if cfg.Search.MaxWordLength != 128 {
		t.Errorf("expected default MaxWordLength to survive, got %d", cfg.Search.MaxWordLength)
	}
	if cfg.History.Enabled {
		t.Error("expected history disabled")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "tsearch.yaml")

	if err := os.WriteFile(configPath, []byte("search: ["), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestLoad_GuardsBadValues(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "tsearch.yaml")

	content := `
search:
  block_size: -1
  max_word_length: 0
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Search.BlockSize != 4096 {
		t.Errorf("expected BlockSize reset to 4096, got %d", cfg.Search.BlockSize)
	}
	if cfg.Search.MaxWordLength != 128 {
		t.Errorf("expected MaxWordLength reset to 128, got %d", cfg.Search.MaxWordLength)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	content := "search:\n  workers: 2\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "tsearch.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Search.Workers != 2 {
		t.Errorf("expected Workers=2, got %d", cfg.Search.Workers)
	}
}

func TestHistoryDBPath(t *testing.T) {
	got := HistoryDBPath("/some/dir")
	want := filepath.Join("/some/dir", ".tsearch", "history.db")
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
