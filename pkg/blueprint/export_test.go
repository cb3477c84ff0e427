package blueprint

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.json")

	if err := ExportDocument(testDocument(), path); err != nil {
		t.Fatalf("ExportDocument error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if !strings.HasPrefix(string(data), "{\n  \"blueprint\"") {
		t.Errorf("exported file is not pretty-printed JSON: %s", data[:min(len(data), 40)])
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("exported file missing trailing newline")
	}
}

func TestExportExchange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.txt")

	s, err := Encode(testDocument())
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if err := ExportExchange(s, path); err != nil {
		t.Fatalf("ExportExchange error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if string(data) != s+"\n" {
		t.Error("exported exchange string differs from encoded string")
	}
}
