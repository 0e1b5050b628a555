package compile

import (
	"strings"

	"montage/internal/timeline"
)

const (
	// DefaultProgram is the engine binary invoked when RenderOptions does
	// not name one.
	DefaultProgram = "ffmpeg"

	// DefaultHWAccel is the hardware-acceleration mode emitted before the
	// inputs; HWAccelNone suppresses the flag entirely.
	DefaultHWAccel = "auto"
	HWAccelNone    = "none"
)

// RenderOptions adjust serialization without touching graph semantics.
type RenderOptions struct {
	Program string
	HWAccel string
}

func (o RenderOptions) program() string {
	if o.Program == "" {
		return DefaultProgram
	}
	return o.Program
}

func (o RenderOptions) hwaccel() string {
	switch o.HWAccel {
	case "":
		return DefaultHWAccel
	case HWAccelNone:
		return ""
	default:
		return o.HWAccel
	}
}

// Command compiles the snapshot and serializes the complete engine
// invocation. Empty compositions still produce a command; use RenderCommand
// when the result is destined for an actual render.
func Command(snap *timeline.Snapshot, outputPath string, opts RenderOptions) (string, error) {
	graph, err := Build(snap)
	if err != nil {
		return "", err
	}
	return Serialize(graph, snap.Global(), outputPath, opts), nil
}

// RenderCommand is Command plus the render-time guard: a composition with no
// layers is rejected with ErrEmptyComposition instead of compiling to a
// command that the engine would fail on.
func RenderCommand(snap *timeline.Snapshot, outputPath string, opts RenderOptions) (string, error) {
	if snap.Empty() {
		return "", ErrEmptyComposition
	}
	return Command(snap, outputPath, opts)
}

// Serialize renders an assembled graph into the final command text. The
// section order is fixed: program, hardware acceleration, inputs, encoder
// options, output timing, filter script with stream maps, overwrite flag,
// output path. Malformed parameter values are serialized as-is; the engine
// is the final arbiter.
func Serialize(graph *Graph, global timeline.GlobalOptions, outputPath string, opts RenderOptions) string {
	args := []string{opts.program()}
	if hw := opts.hwaccel(); hw != "" {
		args = append(args, "-hwaccel", hw)
	}
	for _, in := range graph.Inputs {
		if in.Loop {
			args = append(args, "-loop", "1", "-t", formatFloat(in.Duration))
		}
		args = append(args, "-i", in.Source)
	}
	args = append(args, codecArgs(global.Codec)...)
	args = append(args, timingArgs(global)...)
	if len(graph.Script) > 0 {
		script := strings.Join(graph.Script, ";")
		args = append(args, "-filter_complex", `"`+escapeQuotes(script)+`"`)
		if graph.VideoLabel != "" {
			args = append(args, "-map", mapRef(graph.VideoLabel))
		}
		if graph.AudioLabel != "" {
			args = append(args, "-map", mapRef(graph.AudioLabel))
		}
	}
	args = append(args, "-y", outputPath)
	return strings.Join(args, " ")
}

// mapRef formats a -map target: synthetic labels need brackets and quoting,
// raw input pads are passed bare.
func mapRef(label string) string {
	if isStreamPad(label) {
		return label
	}
	return `"` + pad(label) + `"`
}

// codecArgs emits the explicit encoder settings when present, otherwise the
// stock fallback: H.264 with a broadly compatible pixel format, AAC audio,
// CRF 23, medium preset.
func codecArgs(codec *timeline.CodecSettings) []string {
	if codec == nil {
		return []string{"-c:v", "libx264", "-pix_fmt", "yuv420p", "-c:a", "aac", "-crf", "23", "-preset", "medium"}
	}
	var args []string
	if codec.Video != "" {
		args = append(args, "-c:v", codec.Video)
	}
	if codec.Audio != "" {
		args = append(args, "-c:a", codec.Audio)
	}
	for _, name := range codec.SortedOptions() {
		args = append(args, "-"+name, codec.Options[name])
	}
	return args
}

func timingArgs(global timeline.GlobalOptions) []string {
	var args []string
	if global.FrameRate > 0 {
		args = append(args, "-r", formatFloat(global.FrameRate))
	}
	if trim := global.Trim; trim != nil {
		if trim.Start > 0 {
			args = append(args, "-ss", formatFloat(trim.Start))
		}
		if trim.End > 0 {
			args = append(args, "-to", formatFloat(trim.End))
		}
	}
	if global.Duration > 0 {
		args = append(args, "-t", formatFloat(global.Duration))
	}
	return args
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
