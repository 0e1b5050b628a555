package testsupport

import (
	"context"
	"testing"

	"montage/internal/config"
	"montage/internal/library"
	"montage/internal/timeline"
)

// MustOpenStore opens a library.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *library.Store {
	t.Helper()

	store, err := library.Open(context.Background(), cfg.Library.Path)
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SaveComposition stores the snapshot under name using the provided store.
func SaveComposition(t testing.TB, store *library.Store, name string, snap *timeline.Snapshot) *library.Composition {
	t.Helper()

	comp, err := store.Save(context.Background(), name, snap)
	if err != nil {
		t.Fatalf("store.Save: %v", err)
	}
	return comp
}

// SampleSnapshot builds a small composition exercising the common layer
// kinds, for tests that need any valid snapshot rather than a specific one.
func SampleSnapshot() *timeline.Snapshot {
	snap := timeline.New()
	snap = timeline.AddVideo(snap, "clip.mp4")
	snap = timeline.AddText(snap, "Sample", timeline.TextOptions{
		Position: timeline.Position{Preset: "bottom"},
	})
	snap = timeline.AddAudio(snap, "music.mp3", timeline.AudioOptions{Volume: 0.5})
	return snap
}
