package report

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteOutput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "snapshot.json")

	if err := WriteOutput([]byte(`{"traffic":{}}`), path); err != nil {
		t.Fatalf("WriteOutput: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(data) != `{"traffic":{}}` {
		t.Errorf("unexpected file contents: %s", data)
	}
}

func TestWriteOutput_Stdout(t *testing.T) {
	// "-" and "" both mean stdout and must not touch the filesystem
	if err := WriteOutput([]byte("{}"), "-"); err != nil {
		t.Fatalf("WriteOutput to stdout: %v", err)
	}
	if err := WriteOutput([]byte("{}"), ""); err != nil {
		t.Fatalf("WriteOutput with empty path: %v", err)
	}
}
