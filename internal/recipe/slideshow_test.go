package recipe

import (
	"math/rand/v2"
	"strings"
	"testing"

	"montage/internal/compile"
)

func TestSlideshowCompilesThroughFastPath(t *testing.T) {
	snap := Slideshow([]string{"a.png", "b.png", "c.png"}, SlideshowOptions{Audio: "beat.mp3"})

	graph, err := compile.Build(snap)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !graph.FastPath() {
		t.Fatalf("expected fast path, script = %v", graph.Script)
	}
	if got, want := graph.Script[0], "[0:v][1:v][2:v]concat=n=3:v=1:a=0[vout]"; got != want {
		t.Errorf("concat fragment = %q, want %q", got, want)
	}
	// Three slides at the default three seconds: nine seconds of soundtrack
	// with the default fade on both ends.
	if got, want := graph.Script[1], "[3:a]afade=t=in:st=0:d=1.5,afade=t=out:st=7.5:d=1.5,atrim=0:9[a1]"; got != want {
		t.Errorf("audio fragment = %q, want %q", got, want)
	}
	if graph.AudioLabel != "a1" {
		t.Errorf("audio label = %q, want a1", graph.AudioLabel)
	}
}

func TestSlideshowSlideTiming(t *testing.T) {
	snap := Slideshow([]string{"a.png", "b.png"}, SlideshowOptions{SlideSeconds: 2})

	layers := snap.Layers()
	if len(layers) != 2 {
		t.Fatalf("layer count = %d, want 2", len(layers))
	}
	if layers[1].Start() != 2 || layers[1].Duration() != 2 {
		t.Errorf("second slide start/duration = %v/%v, want 2/2", layers[1].Start(), layers[1].Duration())
	}

	graph, err := compile.Build(snap)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if in := graph.Inputs[0]; !in.Loop || in.Duration != 2 {
		t.Errorf("slide input = %+v, want looped 2s still", in)
	}
}

func TestSlideshowWithoutAudio(t *testing.T) {
	graph, err := compile.Build(Slideshow([]string{"a.png", "b.png"}, SlideshowOptions{}))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(graph.Script) != 1 {
		t.Fatalf("script = %v, want concat only", graph.Script)
	}
	if graph.AudioLabel != "" {
		t.Errorf("audio label = %q, want none", graph.AudioLabel)
	}
}

func TestAnimatedSlidesReproducible(t *testing.T) {
	images := []string{"a.png", "b.png", "c.png", "d.png"}
	first := AnimatedSlides(images, SlideshowOptions{}, rand.New(rand.NewPCG(7, 0)))
	second := AnimatedSlides(images, SlideshowOptions{}, rand.New(rand.NewPCG(7, 0)))
	if len(first) != len(images) {
		t.Fatalf("slide count = %d, want %d", len(first), len(images))
	}

	for i := range first {
		a, err := compile.Build(first[i])
		if err != nil {
			t.Fatalf("Build slide %d: %v", i, err)
		}
		b, err := compile.Build(second[i])
		if err != nil {
			t.Fatalf("Build slide %d again: %v", i, err)
		}
		got, want := strings.Join(a.Script, ";"), strings.Join(b.Script, ";")
		if got != want {
			t.Errorf("slide %d not reproducible:\n%s\n%s", i, got, want)
		}
		if !strings.HasPrefix(a.Script[0], "[0:v]zoompan=z='") {
			t.Errorf("slide %d fragment = %q, want zoompan on the plate", i, a.Script[0])
		}
	}
}
