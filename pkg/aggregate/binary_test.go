package aggregate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeProbeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write probe file: %v", err)
	}
	return path
}

func TestIsBinaryFileText(t *testing.T) {
	path := writeProbeFile(t, "text.go", []byte("package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n"))

	binary, err := IsBinaryFile(path)
	if err != nil {
		t.Fatalf("IsBinaryFile() error = %v", err)
	}
	if binary {
		t.Error("plain Go source classified as binary")
	}
}

func TestIsBinaryFileNullByte(t *testing.T) {
	path := writeProbeFile(t, "blob", []byte("almost text\x00but not"))

	binary, err := IsBinaryFile(path)
	if err != nil {
		t.Fatalf("IsBinaryFile() error = %v", err)
	}
	if !binary {
		t.Error("content with a null byte classified as text")
	}
}

func TestIsBinaryFileNonPrintableRatio(t *testing.T) {
	// No null bytes, but well over 30% non-printable.
	content := append(bytes.Repeat([]byte{0x01, 0x02}, 200), []byte("tail")...)
	path := writeProbeFile(t, "scrambled", content)

	binary, err := IsBinaryFile(path)
	if err != nil {
		t.Fatalf("IsBinaryFile() error = %v", err)
	}
	if !binary {
		t.Error("mostly non-printable content classified as text")
	}
}

func TestIsBinaryFileEmpty(t *testing.T) {
	path := writeProbeFile(t, "empty", nil)

	binary, err := IsBinaryFile(path)
	if err != nil {
		t.Fatalf("IsBinaryFile() error = %v", err)
	}
	if binary {
		t.Error("empty file classified as binary")
	}
}

func TestIsBinaryFileMissing(t *testing.T) {
	if _, err := IsBinaryFile(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
