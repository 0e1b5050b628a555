package timeline

import "testing"

func TestBuildersReturnNewSnapshots(t *testing.T) {
	base := New()
	withVideo := AddVideo(base, "intro.mp4")

	if base.Len() != 0 {
		t.Fatalf("base snapshot mutated: len = %d", base.Len())
	}
	if withVideo.Len() != 1 {
		t.Fatalf("expected 1 layer, got %d", withVideo.Len())
	}
}

func TestIndependentBranchesDoNotShareGrowth(t *testing.T) {
	base := AddVideo(New(), "intro.mp4")

	left := AddText(base, "left branch", TextOptions{})
	right := AddText(base, "right branch", TextOptions{})

	leftLayers := left.Layers()
	rightLayers := right.Layers()
	if got := leftLayers[1].Content; got != "left branch" {
		t.Fatalf("left branch layer = %q", got)
	}
	if got := rightLayers[1].Content; got != "right branch" {
		t.Fatalf("right branch layer = %q", got)
	}
}

func TestLayersReturnsDeepCopy(t *testing.T) {
	snap := AddText(New(), "title", TextOptions{FontSize: 32})

	layers := snap.Layers()
	layers[0].Text.FontSize = 99

	if got := snap.Layers()[0].Text.FontSize; got != 32 {
		t.Fatalf("snapshot leaked mutable state: font size = %d", got)
	}
}

func TestGlobalLastWriteWins(t *testing.T) {
	snap := New()
	snap = WithScale(snap, 640, 360)
	snap = WithScale(snap, 1920, 1080)
	snap = WithAspectRatio(snap, "4:3")
	snap = WithAspectRatio(snap, "16:9")

	global := snap.Global()
	if global.Scale == nil || global.Scale.Width != 1920 || global.Scale.Height != 1080 {
		t.Fatalf("scale = %+v", global.Scale)
	}
	if global.AspectRatio != "16:9" {
		t.Fatalf("aspect ratio = %q", global.AspectRatio)
	}
}

func TestNegativeTimingClampsToZero(t *testing.T) {
	snap := AddAudio(New(), "bed.mp3", AudioOptions{Start: -3, Duration: -1})

	layer := snap.Layers()[0]
	if layer.Start() != 0 {
		t.Fatalf("start = %v, want 0", layer.Start())
	}
	if layer.Duration() != 0 {
		t.Fatalf("duration = %v, want 0", layer.Duration())
	}
}

func TestLayerTimingAccessors(t *testing.T) {
	snap := New()
	snap = AddVideo(snap, "base.mp4")
	snap = AddText(snap, "caption", TextOptions{Start: 2, Duration: 3})
	snap = AddImage(snap, "logo.png", ImageOptions{Start: 1})

	layers := snap.Layers()
	if got := layers[0].Start(); got != 0 {
		t.Fatalf("video start = %v", got)
	}
	if got, dur := layers[1].Start(), layers[1].Duration(); got != 2 || dur != 3 {
		t.Fatalf("text timing = (%v, %v)", got, dur)
	}
	if got := layers[2].Start(); got != 1 {
		t.Fatalf("image start = %v", got)
	}
}

func TestWithCodecCopiesOptionBag(t *testing.T) {
	opts := map[string]string{"crf": "18"}
	snap := WithCodec(New(), CodecSettings{Video: "libx265", Options: opts})
	opts["crf"] = "40"

	global := snap.Global()
	if got := global.Codec.Options["crf"]; got != "18" {
		t.Fatalf("codec options aliased caller map: crf = %q", got)
	}
}
