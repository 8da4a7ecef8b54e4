package subtrack

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile writes content into a file named name in a fresh temporary directory and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write %q: %v", path, err)
	}
	return path
}

// readFile returns the content of the file at path.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read %q: %v", path, err)
	}
	return string(data)
}

// rec is a short hand to create records in tests.
func rec(owner, name, day string) Record { return Record{Owner: owner, Name: name, PaymentDay: day} }
