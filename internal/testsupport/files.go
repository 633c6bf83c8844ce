package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteBib writes content to dir/name, creating dir if needed, and returns
// the full path.
func WriteBib(t testing.TB, dir, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
