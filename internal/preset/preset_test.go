package preset

import (
	"sort"
	"strings"
	"testing"

	"montage/internal/compile"
	"montage/internal/timeline"
)

func TestLookupsAreCaseInsensitive(t *testing.T) {
	if _, ok := LookupPlatform("  ShOrTs "); !ok {
		t.Fatal("platform lookup should ignore case and spacing")
	}
	if _, ok := LookupCodec("H264-FAST"); !ok {
		t.Fatal("codec lookup should ignore case")
	}
	if _, ok := LookupPlatform("myspace"); ok {
		t.Fatal("unknown platform should miss")
	}
}

func TestNamesAreSortedAndComplete(t *testing.T) {
	names := PlatformNames()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("platform names unsorted: %v", names)
	}
	if len(names) != len(platforms) {
		t.Fatalf("platform names incomplete: %v", names)
	}

	codecNames := CodecNames()
	if !sort.StringsAreSorted(codecNames) {
		t.Fatalf("codec names unsorted: %v", codecNames)
	}
	for _, name := range codecNames {
		if _, ok := LookupCodec(name); !ok {
			t.Fatalf("codec %q listed but not resolvable", name)
		}
	}
}

func TestLookupCodecReturnsCopies(t *testing.T) {
	first, _ := LookupCodec("h264")
	first.Options["crf"] = "0"

	second, _ := LookupCodec("h264")
	if second.Options["crf"] != "23" {
		t.Fatal("codec table leaked mutable state")
	}
}

func TestApplyStampsCanvasAndCodec(t *testing.T) {
	shorts, _ := LookupPlatform("shorts")
	snap := timeline.AddVideo(timeline.New(), "clip.mp4")
	snap = Apply(snap, shorts)

	global := snap.Global()
	if global.Scale == nil || global.Scale.Width != 1080 || global.Scale.Height != 1920 {
		t.Fatalf("scale = %+v", global.Scale)
	}
	if global.AspectRatio != "9:16" {
		t.Fatalf("aspect = %q", global.AspectRatio)
	}
	if global.Codec == nil || global.Codec.Video != "libx264" {
		t.Fatalf("codec = %+v", global.Codec)
	}
}

func TestEveryPlatformCompiles(t *testing.T) {
	for _, name := range PlatformNames() {
		p, _ := LookupPlatform(name)
		snap := timeline.AddVideo(timeline.New(), "clip.mp4")
		snap = Apply(snap, p)

		cmd, err := compile.Command(snap, "out.mp4", compile.RenderOptions{})
		if err != nil {
			t.Fatalf("platform %q failed to compile: %v", name, err)
		}
		if !strings.Contains(cmd, "-filter_complex") {
			t.Fatalf("platform %q produced no canvas transforms:\n%s", name, cmd)
		}
	}
}
