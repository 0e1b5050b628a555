package recipe

import (
	"reflect"
	"strings"
	"testing"

	"montage/internal/compile"
	"montage/internal/timeline"
)

func TestCaptionsBottomCenteredAndGated(t *testing.T) {
	snap := timeline.AddVideo(timeline.New(), "clip.mp4")
	snap = Captions(snap, []Cue{
		{Start: 1, End: 3, Text: "First"},
		{Start: 4, End: 6.5, Text: "Second"},
	}, timeline.TextOptions{})

	graph, err := compile.Build(snap)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := []string{
		"[0:v]drawtext=text='First':x=(w-text_w)/2:y=h-text_h-10:fontsize=24:fontcolor=white:enable='between(t,1,3)'[v1]",
		"[v1]drawtext=text='Second':x=(w-text_w)/2:y=h-text_h-10:fontsize=24:fontcolor=white:enable='between(t,4,6.5)'[v2]",
	}
	if !reflect.DeepEqual(graph.Script, want) {
		t.Errorf("script = %v, want %v", graph.Script, want)
	}
}

func TestCaptionsKeepExplicitStyle(t *testing.T) {
	snap := timeline.AddVideo(timeline.New(), "clip.mp4")
	snap = Captions(snap, []Cue{{Start: 0, End: 2, Text: "Styled"}}, timeline.TextOptions{
		FontSize: 32,
		Position: timeline.Position{Preset: "top"},
	})

	graph, err := compile.Build(snap)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	frag := graph.Script[0]
	if !strings.Contains(frag, "fontsize=32") || !strings.Contains(frag, "y=10") {
		t.Errorf("style not preserved: %q", frag)
	}
}

func TestExportSRTFormat(t *testing.T) {
	got := ExportSRT([]Cue{
		{Start: 4, End: 6.5, Text: "Second"},
		{Start: 1, End: 3, Text: "First"},
	})
	want := "1\n00:00:01,000 --> 00:00:03,000\nFirst\n\n" +
		"2\n00:00:04,000 --> 00:00:06,500\nSecond\n\n"
	if got != want {
		t.Errorf("document = %q, want %q", got, want)
	}
}

func TestParseSRTRoundTrip(t *testing.T) {
	cues := []Cue{
		{Start: 0.5, End: 2.25, Text: "Hello there"},
		{Start: 3661.5, End: 3663, Text: "Over an hour in"},
	}
	parsed, err := ParseSRT(ExportSRT(cues))
	if err != nil {
		t.Fatalf("ParseSRT: %v", err)
	}
	if !reflect.DeepEqual(parsed, cues) {
		t.Errorf("round trip = %+v, want %+v", parsed, cues)
	}
}

func TestParseSRTVariants(t *testing.T) {
	doc := "1\r\n00:00:01.000 --> 00:00:02,500\r\nPeriod millis\r\n\r\n" +
		"no timing line here\n\n" +
		"2\n00:00:03,000 --> 00:00:04,000\nTwo\nlines\n"
	cues, err := ParseSRT(doc)
	if err != nil {
		t.Fatalf("ParseSRT: %v", err)
	}
	if len(cues) != 2 {
		t.Fatalf("cue count = %d, want 2: %+v", len(cues), cues)
	}
	if cues[0].Start != 1 || cues[0].End != 2.5 {
		t.Errorf("first cue timing = %v-%v, want 1-2.5", cues[0].Start, cues[0].End)
	}
	if cues[1].Text != "Two\nlines" {
		t.Errorf("multi-line text = %q", cues[1].Text)
	}
}

func TestParseSRTRejectsBadTimestamp(t *testing.T) {
	if _, err := ParseSRT("1\n00:00 --> 00:01\nBroken\n"); err == nil {
		t.Fatal("expected timestamp error")
	}
}

func TestExtractCuesDefaultsWindow(t *testing.T) {
	snap := timeline.AddVideo(timeline.New(), "clip.mp4")
	snap = timeline.AddText(snap, "Timed", timeline.TextOptions{Start: 2, Duration: 3})
	snap = timeline.AddText(snap, "Default", timeline.TextOptions{Start: 10})

	got := ExtractCues(snap)
	want := []Cue{
		{Start: 2, End: 5, Text: "Timed"},
		{Start: 10, End: 15, Text: "Default"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("cues = %+v, want %+v", got, want)
	}
}
