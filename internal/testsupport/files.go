package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"montage/internal/timeline"
)

// WriteComposition marshals the snapshot and writes it to path, creating
// parent directories as needed. It returns path for call-site chaining.
func WriteComposition(t testing.TB, path string, snap *timeline.Snapshot) string {
	t.Helper()

	data, err := timeline.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal composition: %v", err)
	}
	WriteText(t, path, string(data))
	return path
}

// WriteText fills the target path with the given contents, creating parent
// directories as needed.
func WriteText(t testing.TB, path, contents string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
