package processor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/miralushch/ipa2ru/internal/cli"
	"github.com/miralushch/ipa2ru/internal/ru"
)

func newTestProcessor(t *testing.T) (*Processor, *cli.Flags) {
	t.Helper()

	flags := cli.NewFlags()
	flags.NoHistory = true // keep tests away from the user state dir
	flags.OutputDir = t.TempDir()

	proc := NewProcessor(flags)
	t.Cleanup(proc.Close)
	return proc, flags
}

func TestProcessSingleInput(t *testing.T) {
	proc, flags := newTestProcessor(t)

	if err := proc.ProcessSingleInput("nʲæ"); err != nil {
		t.Fatalf("ProcessSingleInput failed: %v", err)
	}

	// Conversion files are written under a sanitized directory name
	cyrillicFile := filepath.Join(flags.OutputDir, "ня", "cyrillic.txt")
	content, err := os.ReadFile(cyrillicFile)
	if err != nil {
		t.Fatalf("Failed to read cyrillic file: %v", err)
	}
	if strings.TrimSpace(string(content)) != "ня" {
		t.Errorf("cyrillic.txt = %q, expected 'ня'", content)
	}

	ipaFile := filepath.Join(flags.OutputDir, "ня", "ipa.txt")
	content, err = os.ReadFile(ipaFile)
	if err != nil {
		t.Fatalf("Failed to read ipa file: %v", err)
	}
	if strings.TrimSpace(string(content)) != "nʲæ" {
		t.Errorf("ipa.txt = %q, expected 'nʲæ'", content)
	}
}

func TestProcessSingleInput_UnsupportedPhoneme(t *testing.T) {
	proc, _ := newTestProcessor(t)

	err := proc.ProcessSingleInput("ta")
	if err == nil {
		t.Fatal("Expected error for unsupported phoneme")
	}
	if !errors.Is(err, ru.ErrUnsupportedPhoneme) {
		t.Errorf("Expected ErrUnsupportedPhoneme, got %v", err)
	}
}

func TestProcessSingleInput_NoOutputDir(t *testing.T) {
	flags := cli.NewFlags()
	flags.NoHistory = true

	proc := NewProcessor(flags)
	defer proc.Close()

	if err := proc.ProcessSingleInput("nʲæ"); err != nil {
		t.Fatalf("ProcessSingleInput failed: %v", err)
	}
}

func TestProcessBatch(t *testing.T) {
	proc, flags := newTestProcessor(t)

	batchFile := filepath.Join(t.TempDir(), "batch.txt")
	content := "nʲæ\nкотик = mʲæːu\nta\n" // the last line cannot be reduced
	if err := os.WriteFile(batchFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write batch file: %v", err)
	}
	flags.BatchFile = batchFile

	// Per-entry errors are reported but do not abort the batch
	if err := proc.ProcessBatch(); err != nil {
		t.Fatalf("ProcessBatch failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(flags.OutputDir, "ня", "cyrillic.txt")); err != nil {
		t.Errorf("Expected output for 'nʲæ': %v", err)
	}
	if _, err := os.Stat(filepath.Join(flags.OutputDir, "котик", "cyrillic.txt")); err != nil {
		t.Errorf("Expected labeled output for 'mʲæːu': %v", err)
	}
}

func TestProcessBatch_MissingFile(t *testing.T) {
	proc, flags := newTestProcessor(t)
	flags.BatchFile = filepath.Join(t.TempDir(), "missing.txt")

	if err := proc.ProcessBatch(); err == nil {
		t.Error("Expected error for missing batch file")
	}
}
