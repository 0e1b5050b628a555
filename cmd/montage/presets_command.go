package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"montage/internal/preset"
	"montage/internal/timeline"
)

func newPresetsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "presets [platform|codec]",
		Short:     "List the built-in platform and codec presets",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"platform", "codec"},
		RunE: func(cmd *cobra.Command, args []string) error {
			which := ""
			if len(args) == 1 {
				which = args[0]
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, presetsDocument(which))
			}

			out := cmd.OutOrStdout()
			if which == "" || which == "platform" {
				fmt.Fprintln(out, "Platforms")
				fmt.Fprintln(out, renderTable(
					[]string{"Name", "Canvas", "Aspect", "FPS", "Codec"},
					platformRows(),
					3,
				))
			}
			if which == "" {
				fmt.Fprintln(out)
			}
			if which == "" || which == "codec" {
				fmt.Fprintln(out, "Codec presets")
				fmt.Fprintln(out, renderTable(
					[]string{"Name", "Video", "Audio", "Options"},
					codecRows(),
				))
			}
			return nil
		},
	}
	return cmd
}

func presetsDocument(which string) map[string]any {
	doc := make(map[string]any, 2)
	if which == "" || which == "platform" {
		platforms := make([]preset.Platform, 0)
		for _, name := range preset.PlatformNames() {
			if p, ok := preset.LookupPlatform(name); ok {
				platforms = append(platforms, p)
			}
		}
		doc["platforms"] = platforms
	}
	if which == "" || which == "codec" {
		codecs := make(map[string]timeline.CodecSettings)
		for _, name := range preset.CodecNames() {
			if settings, ok := preset.LookupCodec(name); ok {
				codecs[name] = settings
			}
		}
		doc["codecs"] = codecs
	}
	return doc
}

func platformRows() [][]string {
	names := preset.PlatformNames()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		p, ok := preset.LookupPlatform(name)
		if !ok {
			continue
		}
		rows = append(rows, []string{
			p.Name,
			fmt.Sprintf("%dx%d", p.Width, p.Height),
			p.AspectRatio,
			formatCount(p.FrameRate),
			p.Codec,
		})
	}
	return rows
}

func codecRows() [][]string {
	names := preset.CodecNames()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		settings, ok := preset.LookupCodec(name)
		if !ok {
			continue
		}
		options := make([]string, 0, len(settings.Options))
		for _, key := range settings.SortedOptions() {
			options = append(options, key+"="+settings.Options[key])
		}
		rows = append(rows, []string{
			name,
			settings.Video,
			settings.Audio,
			strings.Join(options, " "),
		})
	}
	return rows
}
