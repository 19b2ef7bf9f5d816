package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "batch.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write batch file: %v", err)
	}
	return path
}

func TestReadBatchFile(t *testing.T) {
	path := writeBatchFile(t, "nʲæ\nня нян = nʲæ nʲæn\n\n# a comment\nmʲːæːu\n")

	entries, err := ReadBatchFile(path)
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}

	expected := []Entry{
		{IPA: "nʲæ"},
		{Label: "ня нян", IPA: "nʲæ nʲæn"},
		{IPA: "mʲːæːu"},
	}
	if !reflect.DeepEqual(entries, expected) {
		t.Errorf("ReadBatchFile = %v, expected %v", entries, expected)
	}
}

func TestReadBatchFile_EmptyIPASkipped(t *testing.T) {
	path := writeBatchFile(t, "label =\n= nʲæ\n")

	entries, err := ReadBatchFile(path)
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}

	expected := []Entry{
		{Label: "", IPA: "nʲæ"},
	}
	if !reflect.DeepEqual(entries, expected) {
		t.Errorf("ReadBatchFile = %v, expected %v", entries, expected)
	}
}

func TestReadBatchFile_CRLF(t *testing.T) {
	path := writeBatchFile(t, "nʲæ\r\nmʲæːu\r\n")

	entries, err := ReadBatchFile(path)
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}

	if len(entries) != 2 || entries[0].IPA != "nʲæ" || entries[1].IPA != "mʲæːu" {
		t.Errorf("Unexpected entries: %v", entries)
	}
}

func TestReadBatchFile_Missing(t *testing.T) {
	_, err := ReadBatchFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Error("Expected error for missing file")
	}
}
