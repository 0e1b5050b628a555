package recipe

import (
	"math/rand/v2"
	"testing"
)

func TestKenBurnsSeededSequence(t *testing.T) {
	a := rand.New(rand.NewPCG(42, 0))
	b := rand.New(rand.NewPCG(42, 0))
	for i := 0; i < 20; i++ {
		if got, want := KenBurns(a).Name, KenBurns(b).Name; got != want {
			t.Fatalf("draw %d = %q, want %q", i, got, want)
		}
	}
}

func TestMotionByName(t *testing.T) {
	for _, m := range Motions() {
		found, ok := MotionByName(m.Name)
		if !ok {
			t.Errorf("motion %q not found", m.Name)
			continue
		}
		if found.Zoom == "" || found.X == "" || found.Y == "" {
			t.Errorf("motion %q has empty expressions: %+v", m.Name, found)
		}
	}
	if _, ok := MotionByName("wobble"); ok {
		t.Error("unknown motion resolved")
	}
}
