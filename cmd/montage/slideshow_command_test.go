package main

import (
	"encoding/json"
	"testing"

	"montage/internal/timeline"
)

func TestSlideshowEmitsComposition(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"slideshow", "a.jpg", "b.jpg", "c.jpg", "--slide-duration", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("slideshow: %v", err)
	}

	snap, err := timeline.Unmarshal([]byte(out))
	if err != nil {
		t.Fatalf("decode composition: %v", err)
	}
	layers := snap.Layers()
	if len(layers) != 3 {
		t.Fatalf("expected 3 layers, got %d", len(layers))
	}
	for i, layer := range layers {
		if layer.Kind != timeline.KindImage {
			t.Fatalf("layer %d: expected image, got %s", i, layer.Kind)
		}
		if got := layer.Image.Start; got != float64(i)*2 {
			t.Fatalf("layer %d: expected start %g, got %g", i, float64(i)*2, got)
		}
		if layer.Image.Duration != 2 {
			t.Fatalf("layer %d: expected duration 2, got %g", i, layer.Image.Duration)
		}
	}
}

func TestSlideshowWithSoundtrack(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"slideshow", "a.jpg", "b.jpg", "--audio", "song.mp3"}, env.configPath)
	if err != nil {
		t.Fatalf("slideshow --audio: %v", err)
	}

	snap, err := timeline.Unmarshal([]byte(out))
	if err != nil {
		t.Fatalf("decode composition: %v", err)
	}
	layers := snap.Layers()
	if len(layers) != 3 {
		t.Fatalf("expected 3 layers, got %d", len(layers))
	}
	last := layers[2]
	if last.Kind != timeline.KindAudio || last.Source != "song.mp3" {
		t.Fatalf("expected trailing audio layer, got %#v", last)
	}
	if last.Audio.Duration != 6 {
		t.Fatalf("expected soundtrack clamped to 6s, got %g", last.Audio.Duration)
	}
}

func TestSlideshowSavesToLibrary(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"slideshow", "a.jpg", "b.jpg", "--save", "Trip"}, env.configPath)
	if err != nil {
		t.Fatalf("slideshow --save: %v", err)
	}
	requireContains(t, out, `Saved composition "Trip"`)

	out, _, err = runCLI(t, []string{"library", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("library list: %v", err)
	}
	requireContains(t, out, "Trip")
}

func TestSlideshowAnimateEmitsPerSlideDocuments(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"slideshow", "a.jpg", "b.jpg", "--animate", "--seed", "7"}, env.configPath)
	if err != nil {
		t.Fatalf("slideshow --animate: %v", err)
	}

	var docs []json.RawMessage
	if err := json.Unmarshal([]byte(out), &docs); err != nil {
		t.Fatalf("decode array: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	for i, doc := range docs {
		snap, err := timeline.Unmarshal(doc)
		if err != nil {
			t.Fatalf("document %d: %v", i, err)
		}
		layers := snap.Layers()
		if len(layers) != 2 {
			t.Fatalf("document %d: expected image+filter, got %d layers", i, len(layers))
		}
		if layers[1].Kind != timeline.KindFilter || layers[1].Content != "zoompan" {
			t.Fatalf("document %d: expected zoompan filter, got %#v", i, layers[1])
		}
	}

	again, _, err := runCLI(t, []string{"slideshow", "a.jpg", "b.jpg", "--animate", "--seed", "7"}, env.configPath)
	if err != nil {
		t.Fatalf("slideshow --animate rerun: %v", err)
	}
	if out != again {
		t.Fatal("expected identical output for identical seeds")
	}
}

func TestSlideshowAnimateSavesNumberedEntries(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"slideshow", "a.jpg", "b.jpg", "--animate", "--save", "Slide"}, env.configPath)
	if err != nil {
		t.Fatalf("slideshow --animate --save: %v", err)
	}
	requireContains(t, out, `Saved composition "Slide-01"`)
	requireContains(t, out, `Saved composition "Slide-02"`)
}
