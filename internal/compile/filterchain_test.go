package compile

import (
	"strings"
	"testing"

	"montage/internal/timeline"
)

func textLayer(content string, opts timeline.TextOptions) timeline.Layer {
	return timeline.Layer{Kind: timeline.KindText, Content: content, Text: &opts}
}

func filterLayer(name string, opts timeline.FilterOptions) timeline.Layer {
	return timeline.Layer{Kind: timeline.KindFilter, Content: name, Filter: &opts}
}

func TestEscapeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"it's", `it'\''s`},
		{`back\slash`, `back\\slash`},
		{"3:2 ratio", "3:2 ratio"},
	}
	for _, tt := range tests {
		if got := escapeText(tt.in); got != tt.want {
			t.Errorf("escapeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTextBodyDefaults(t *testing.T) {
	body := textBody(textLayer("Hello", timeline.TextOptions{}))

	want := "drawtext=text='Hello':x=(w-text_w)/2:y=(h-text_h)/2:fontsize=24:fontcolor=white:enable='between(t,0,5)'"
	if body != want {
		t.Fatalf("body = %q\nwant  %q", body, want)
	}
}

func TestTextBodyTimeGate(t *testing.T) {
	body := textBody(textLayer("x", timeline.TextOptions{Start: 2, Duration: 3}))

	if !strings.Contains(body, "enable='between(t,2,5)'") {
		t.Fatalf("gate missing or wrong: %q", body)
	}
}

func TestTextBodyStyling(t *testing.T) {
	body := textBody(textLayer("styled", timeline.TextOptions{
		FontSize:    48,
		FontColor:   "yellow",
		BoxColor:    "black@0.5",
		BoxBorder:   8,
		BorderColor: "black",
		ShadowColor: "gray",
		Italic:      true,
	}))

	for _, want := range []string{
		"fontsize=48",
		"fontcolor=yellow",
		"box=1:boxcolor=black@0.5:boxborderw=8",
		"bordercolor=black:borderw=1",
		"shadowcolor=gray:shadowx=2:shadowy=2",
		"font='Sans:style=Italic'",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestOverlayBodyUsesOverlayNamespace(t *testing.T) {
	layer := timeline.Layer{
		Kind:   timeline.KindImage,
		Source: "logo.png",
		Image:  &timeline.ImageOptions{Position: timeline.Position{Preset: "top-right"}},
	}

	body := overlayBody(layer)
	want := "overlay=x=main_w-overlay_w-10:y=10:enable='between(t,0,5)'"
	if body != want {
		t.Fatalf("body = %q\nwant  %q", body, want)
	}
}

func TestGenericFilterTemplates(t *testing.T) {
	tests := []struct {
		name string
		opts timeline.FilterOptions
		want string
	}{
		{"blur", timeline.FilterOptions{Radius: 12}, "boxblur=12"},
		{"blur", timeline.FilterOptions{}, "boxblur=5"},
		{"brightness", timeline.FilterOptions{Value: 0.25}, "eq=brightness=0.25"},
		{"brightness", timeline.FilterOptions{}, "eq=brightness=0.1"},
		{"contrast", timeline.FilterOptions{Value: 1.4}, "eq=contrast=1.4"},
		{"saturation", timeline.FilterOptions{}, "eq=saturation=1.5"},
		{"vignette", timeline.FilterOptions{}, "vignette"},
		{"vignette", timeline.FilterOptions{Angle: "PI/5"}, "vignette=angle=PI/5"},
	}
	for _, tt := range tests {
		got := genericBody(filterLayer(tt.name, tt.opts), timeline.GlobalOptions{})
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestUnknownFilterPassesThroughVerbatim(t *testing.T) {
	got := genericBody(filterLayer("glitchcore", timeline.FilterOptions{}), timeline.GlobalOptions{})
	if got != "glitchcore" {
		t.Fatalf("passthrough = %q", got)
	}

	got = genericBody(filterLayer("hue", timeline.FilterOptions{Params: "h=90:s=1"}), timeline.GlobalOptions{})
	if got != "hue=h=90:s=1" {
		t.Fatalf("passthrough with params = %q", got)
	}
}

func TestColorMixerEmitsConfiguredSubset(t *testing.T) {
	rr, gb := 0.393, 0.168
	got := genericBody(filterLayer("colorchannelmixer", timeline.FilterOptions{RR: &rr, GB: &gb}), timeline.GlobalOptions{})
	if got != "colorchannelmixer=rr=0.393:gb=0.168" {
		t.Fatalf("mixer = %q", got)
	}
}

func TestZoompanDefaults(t *testing.T) {
	got := genericBody(filterLayer("zoompan", timeline.FilterOptions{}), timeline.GlobalOptions{})
	want := "zoompan=z='min(zoom+0.0015,1.5)':x='iw/2-(iw/zoom/2)':y='ih/2-(ih/zoom/2)':d=125:s=1280x720:fps=25"
	if got != want {
		t.Fatalf("zoompan = %q\nwant      %q", got, want)
	}
}

func TestZoompanSizeFollowsGlobalScale(t *testing.T) {
	global := timeline.GlobalOptions{Scale: &timeline.ScaleSpec{Width: 1080, Height: 1920}}
	got := genericBody(filterLayer("zoompan", timeline.FilterOptions{}), global)
	if !strings.Contains(got, ":s=1080x1920:") {
		t.Fatalf("zoompan should inherit canvas size: %q", got)
	}
}

func TestQuoteExprOnlyWhenNeeded(t *testing.T) {
	if got := quoteExpr("(w*0.5)-(text_w/2)"); got != "(w*0.5)-(text_w/2)" {
		t.Fatalf("plain expression quoted: %q", got)
	}
	if got := quoteExpr("if(gte(t,2),10,20)"); got != "'if(gte(t,2),10,20)'" {
		t.Fatalf("comma expression not quoted: %q", got)
	}
}
