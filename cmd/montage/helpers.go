package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"montage/internal/config"
	"montage/internal/timeline"
)

// loadComposition reads and decodes a composition document from path.
func loadComposition(path string) (*timeline.Snapshot, error) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("read composition: %w", err)
	}
	snap, err := timeline.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("composition %s: %w", path, err)
	}
	return snap, nil
}

// writeCompositionOutput emits the snapshot document to outputPath, or to
// the command's stdout when outputPath is empty or "-".
func writeCompositionOutput(cmd *cobra.Command, snap *timeline.Snapshot, outputPath string) error {
	data, err := timeline.Marshal(snap)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	target := strings.TrimSpace(outputPath)
	if target == "" || target == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return writeTextFile(cmd, target, string(data), "Wrote composition to %s\n")
}

// writeTextFile writes contents to path (tilde-expanded) and confirms with
// the printf-style doneFormat, which must contain one %s for the path.
func writeTextFile(cmd *cobra.Command, path, contents, doneFormat string) error {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(expanded, []byte(contents), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), doneFormat, expanded)
	return nil
}

// formatSeconds renders a duration cell; zero values show as a dash.
func formatSeconds(v float64) string {
	if v == 0 {
		return "-"
	}
	return strconv.FormatFloat(v, 'g', -1, 64) + "s"
}

func formatCount(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// layerRows renders one table row per layer: index, kind, subject, timing,
// and a compact detail summary.
func layerRows(layers []timeline.Layer) [][]string {
	rows := make([][]string, 0, len(layers))
	for i, l := range layers {
		subject := l.Source
		if l.Kind == timeline.KindText || l.Kind == timeline.KindFilter {
			subject = l.Content
		}
		start, duration := "-", "-"
		detail := ""
		switch l.Kind {
		case timeline.KindAudio:
			if l.Audio != nil {
				start = formatSeconds(l.Audio.Start)
				duration = formatSeconds(l.Audio.Duration)
				detail = audioDetail(l.Audio)
			}
		case timeline.KindText:
			if l.Text != nil {
				start = formatSeconds(l.Text.Start)
				duration = formatSeconds(l.Text.Duration)
				detail = positionDetail(l.Text.Position)
				if l.Text.FontSize > 0 {
					detail = joinDetail(detail, fmt.Sprintf("size=%d", l.Text.FontSize))
				}
			}
		case timeline.KindImage:
			if l.Image != nil {
				start = formatSeconds(l.Image.Start)
				duration = formatSeconds(l.Image.Duration)
				detail = positionDetail(l.Image.Position)
			}
		case timeline.KindFilter:
			if l.Filter != nil {
				duration = formatSeconds(l.Filter.Duration)
				detail = filterDetail(l.Filter)
			}
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			string(l.Kind),
			subject,
			start,
			duration,
			detail,
		})
	}
	return rows
}

func audioDetail(opts *timeline.AudioOptions) string {
	var parts []string
	if opts.Volume != 0 {
		parts = append(parts, "volume="+formatCount(opts.Volume))
	}
	if opts.FadeIn != 0 {
		parts = append(parts, "fade_in="+formatCount(opts.FadeIn))
	}
	if opts.FadeOut != 0 {
		parts = append(parts, "fade_out="+formatCount(opts.FadeOut))
	}
	if opts.Loop != 0 {
		parts = append(parts, "loop="+strconv.Itoa(opts.Loop))
	}
	if opts.Reverb {
		parts = append(parts, "reverb")
	}
	return strings.Join(parts, " ")
}

func positionDetail(pos timeline.Position) string {
	if pos.Preset != "" {
		return pos.Preset
	}
	if pos.X == "" && pos.Y == "" {
		return ""
	}
	detail := fmt.Sprintf("x=%s y=%s", pos.X, pos.Y)
	if pos.Anchor != "" {
		detail += " anchor=" + pos.Anchor
	}
	return detail
}

func filterDetail(opts *timeline.FilterOptions) string {
	var parts []string
	if opts.Value != 0 {
		parts = append(parts, "value="+formatCount(opts.Value))
	}
	if opts.Radius != 0 {
		parts = append(parts, "radius="+formatCount(opts.Radius))
	}
	if opts.Zoom != "" {
		parts = append(parts, "zoom="+opts.Zoom)
	}
	if opts.Params != "" {
		parts = append(parts, opts.Params)
	}
	return strings.Join(parts, " ")
}

func joinDetail(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + " " + b
}
