package compile

import (
	"errors"
	"strings"
	"testing"

	"montage/internal/timeline"
)

func demoSnapshot() *timeline.Snapshot {
	snap := timeline.AddVideo(timeline.New(), "clip.mp4")
	snap = timeline.WithScale(snap, 1280, 720)
	snap = timeline.AddText(snap, "Launch day", timeline.TextOptions{Start: 1, Duration: 4})
	snap = timeline.AddImage(snap, "logo.png", timeline.ImageOptions{Position: timeline.Position{Preset: "top-right"}})
	snap = timeline.AddAudio(snap, "bed.mp3", timeline.AudioOptions{Volume: 0.4, FadeIn: 1})
	return snap
}

func TestCompileIsIdempotent(t *testing.T) {
	snap := demoSnapshot()

	first, err := Command(snap, "out.mp4", RenderOptions{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	second, err := Command(snap, "out.mp4", RenderOptions{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if first != second {
		t.Fatalf("commands differ:\n%s\n%s", first, second)
	}
}

func TestJSONRoundTripCompilesIdentically(t *testing.T) {
	snap := demoSnapshot()
	original, err := Command(snap, "out.mp4", RenderOptions{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	data, err := timeline.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	restored, err := timeline.Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	roundTripped, err := Command(restored, "out.mp4", RenderOptions{})
	if err != nil {
		t.Fatalf("compile restored: %v", err)
	}
	if original != roundTripped {
		t.Fatalf("round trip changed the command:\n%s\n%s", original, roundTripped)
	}
}

func TestCommandSectionOrder(t *testing.T) {
	cmd, err := Command(demoSnapshot(), "out.mp4", RenderOptions{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	markers := []string{
		"ffmpeg",
		"-hwaccel auto",
		"-i clip.mp4",
		"-loop 1 -t 5 -i logo.png",
		"-i bed.mp3",
		"-c:v libx264 -pix_fmt yuv420p -c:a aac -crf 23 -preset medium",
		`-filter_complex "`,
		`-map "[v`,
		`-map "[aout]"`,
		"-y out.mp4",
	}
	last := -1
	for _, marker := range markers {
		idx := strings.Index(cmd, marker)
		if idx < 0 {
			t.Fatalf("missing %q in command:\n%s", marker, cmd)
		}
		if idx < last {
			t.Fatalf("%q out of order in command:\n%s", marker, cmd)
		}
		last = idx
	}
}

func TestFastPathImageInputsUseHalfSecondDefault(t *testing.T) {
	snap := timeline.New()
	snap = timeline.AddImage(snap, "a.png", timeline.ImageOptions{Start: 0})
	snap = timeline.AddImage(snap, "b.png", timeline.ImageOptions{Start: 0.5})

	cmd, err := Command(snap, "out.mp4", RenderOptions{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.Contains(cmd, "-loop 1 -t 0.5 -i a.png") {
		t.Fatalf("fast-path default should be 0.5s:\n%s", cmd)
	}
}

func TestGeneralPathImageInputsUseFiveSecondDefault(t *testing.T) {
	snap := timeline.AddVideo(timeline.New(), "clip.mp4")
	snap = timeline.AddImage(snap, "logo.png", timeline.ImageOptions{})

	cmd, err := Command(snap, "out.mp4", RenderOptions{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.Contains(cmd, "-loop 1 -t 5 -i logo.png") {
		t.Fatalf("general-path default should be 5s:\n%s", cmd)
	}
}

func TestExplicitCodecSettings(t *testing.T) {
	snap := timeline.AddVideo(timeline.New(), "clip.mp4")
	snap = timeline.WithCodec(snap, timeline.CodecSettings{
		Video:   "libx265",
		Audio:   "libopus",
		Options: map[string]string{"preset": "slow", "crf": "28"},
	})

	cmd, err := Command(snap, "out.mp4", RenderOptions{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.Contains(cmd, "-c:v libx265 -c:a libopus -crf 28 -preset slow") {
		t.Fatalf("explicit codec flags wrong or unsorted:\n%s", cmd)
	}
	if strings.Contains(cmd, "libx264") {
		t.Fatalf("fallback codec must not appear:\n%s", cmd)
	}
}

func TestNoFilterScriptMeansNoMaps(t *testing.T) {
	snap := timeline.AddVideo(timeline.New(), "clip.mp4")

	cmd, err := Command(snap, "out.mp4", RenderOptions{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if strings.Contains(cmd, "-filter_complex") || strings.Contains(cmd, "-map") {
		t.Fatalf("plain video should not carry filter flags:\n%s", cmd)
	}
}

func TestRenderOptions(t *testing.T) {
	snap := timeline.AddVideo(timeline.New(), "clip.mp4")

	cmd, err := Command(snap, "out.mp4", RenderOptions{Program: "/usr/local/bin/ffmpeg", HWAccel: "cuda"})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.HasPrefix(cmd, "/usr/local/bin/ffmpeg -hwaccel cuda ") {
		t.Fatalf("render options ignored:\n%s", cmd)
	}

	cmd, err = Command(snap, "out.mp4", RenderOptions{HWAccel: HWAccelNone})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if strings.Contains(cmd, "-hwaccel") {
		t.Fatalf("hwaccel should be suppressed:\n%s", cmd)
	}
}

func TestGlobalTimingFlags(t *testing.T) {
	snap := timeline.AddVideo(timeline.New(), "clip.mp4")
	snap = timeline.WithFrameRate(snap, 30)
	snap = timeline.WithTrim(snap, 2.5, 12)
	snap = timeline.WithDuration(snap, 8)

	cmd, err := Command(snap, "out.mp4", RenderOptions{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.Contains(cmd, "-r 30 -ss 2.5 -to 12 -t 8") {
		t.Fatalf("timing flags wrong:\n%s", cmd)
	}
}

func TestEmptyCompositionPolicy(t *testing.T) {
	empty := timeline.New()

	if _, err := Command(empty, "out.mp4", RenderOptions{}); err != nil {
		t.Fatalf("raw command generation should succeed for empty snapshots: %v", err)
	}
	if _, err := RenderCommand(empty, "out.mp4", RenderOptions{}); !errors.Is(err, ErrEmptyComposition) {
		t.Fatalf("render must reject empty snapshots, got %v", err)
	}
}

func TestDoubleQuotesInTextSurviveShellWrapping(t *testing.T) {
	snap := timeline.AddVideo(timeline.New(), "clip.mp4")
	snap = timeline.AddText(snap, `She said "go"`, timeline.TextOptions{})

	cmd, err := Command(snap, "out.mp4", RenderOptions{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.Contains(cmd, `She said \"go\"`) {
		t.Fatalf("double quotes must be escaped inside the wrapped script:\n%s", cmd)
	}
}

func TestSerializedMapStyles(t *testing.T) {
	snap := timeline.AddVideo(timeline.New(), "clip.mp4")
	snap = timeline.AddAudio(snap, "bed.mp3", timeline.AudioOptions{Volume: 0.5})

	cmd, err := Command(snap, "out.mp4", RenderOptions{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.Contains(cmd, "-map 0:v") {
		t.Fatalf("unfiltered video should map its input pad:\n%s", cmd)
	}
	if !strings.Contains(cmd, `-map "[aout]"`) {
		t.Fatalf("synthetic audio label should be bracket-quoted:\n%s", cmd)
	}
}
