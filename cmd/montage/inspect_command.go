package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"montage/internal/compile"
	"montage/internal/timeline"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <composition.json>",
		Short: "Show the layers, options, and inputs of a composition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadComposition(args[0])
			if err != nil {
				return err
			}

			graph, err := compile.Build(snap)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, inspectDocument{
					Layers:  snap.Layers(),
					Options: snap.Global(),
					Inputs:  newCompileDocument(graph, "").Inputs,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Layers")
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Type", "Source / Content", "Start", "Duration", "Details"},
				layerRows(snap.Layers()),
				0,
			))

			if rows := globalRows(snap.Global()); len(rows) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Options")
				fmt.Fprintln(out, renderTable([]string{"Setting", "Value"}, rows))
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Inputs")
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Source", "Loop", "Seconds"},
				inputRows(graph.Inputs),
				0, 3,
			))
			return nil
		},
	}
	return cmd
}

type inspectDocument struct {
	Layers  []timeline.Layer       `json:"layers"`
	Options timeline.GlobalOptions `json:"options,omitzero"`
	Inputs  []inputDocument        `json:"inputs"`
}

func globalRows(global timeline.GlobalOptions) [][]string {
	var rows [][]string
	if global.Trim != nil {
		rows = append(rows, []string{"trim", fmt.Sprintf("%s - %s", formatCount(global.Trim.Start), formatCount(global.Trim.End))})
	}
	if global.Scale != nil {
		rows = append(rows, []string{"scale", fmt.Sprintf("%dx%d", global.Scale.Width, global.Scale.Height)})
	}
	if global.Crop != nil {
		rows = append(rows, []string{"crop", fmt.Sprintf("%dx%d at (%d, %d)", global.Crop.Width, global.Crop.Height, global.Crop.X, global.Crop.Y)})
	}
	if global.AspectRatio != "" {
		rows = append(rows, []string{"aspect ratio", global.AspectRatio})
	}
	if global.FrameRate > 0 {
		rows = append(rows, []string{"frame rate", formatCount(global.FrameRate)})
	}
	if global.Duration > 0 {
		rows = append(rows, []string{"duration", formatSeconds(global.Duration)})
	}
	if global.Codec != nil {
		value := global.Codec.Video
		if global.Codec.Audio != "" {
			value += " / " + global.Codec.Audio
		}
		rows = append(rows, []string{"codec", value})
	}
	return rows
}

func inputRows(inputs []compile.Input) [][]string {
	rows := make([][]string, 0, len(inputs))
	for i, in := range inputs {
		seconds := "-"
		if in.Loop {
			seconds = formatCount(in.Duration)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i),
			in.Source,
			yesNo(in.Loop),
			seconds,
		})
	}
	return rows
}
