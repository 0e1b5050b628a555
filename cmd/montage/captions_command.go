package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"montage/internal/config"
	"montage/internal/library"
	"montage/internal/recipe"
	"montage/internal/timeline"
)

func newCaptionsCommand(ctx *commandContext) *cobra.Command {
	var srtPath string
	var importPath string
	var outputPath string
	var saveName string
	var fontSize int
	var fontColor string
	var position string

	cmd := &cobra.Command{
		Use:   "captions <composition.json>",
		Short: "Exchange caption cues between compositions and SRT files",
		Long: `Export the timed text layers of a composition as an SRT document,
or import SRT cues into a composition as gated text layers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exporting := strings.TrimSpace(srtPath) != ""
			importing := strings.TrimSpace(importPath) != ""
			if exporting == importing {
				return errors.New("use exactly one of --srt (export) or --import")
			}

			snap, err := loadComposition(args[0])
			if err != nil {
				return err
			}

			if exporting {
				return exportCaptions(cmd, snap, srtPath)
			}
			return importCaptions(cmd, ctx, snap, importPath, outputPath, saveName, timeline.TextOptions{
				FontSize:  fontSize,
				FontColor: strings.TrimSpace(fontColor),
				Position:  timeline.Position{Preset: strings.TrimSpace(position)},
			})
		},
	}

	cmd.Flags().StringVar(&srtPath, "srt", "", "Export cues to this SRT file (\"-\" for stdout)")
	cmd.Flags().StringVar(&importPath, "import", "", "Import cues from this SRT file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the captioned composition here instead of stdout")
	cmd.Flags().StringVar(&saveName, "save", "", "Save the captioned composition to the library under this name")
	cmd.Flags().IntVar(&fontSize, "font-size", 0, "Font size for imported cues")
	cmd.Flags().StringVar(&fontColor, "font-color", "", "Font color for imported cues")
	cmd.Flags().StringVar(&position, "position", "", "Placement preset for imported cues (default bottom)")
	return cmd
}

func exportCaptions(cmd *cobra.Command, snap *timeline.Snapshot, srtPath string) error {
	cues := recipe.ExtractCues(snap)
	if len(cues) == 0 {
		return errors.New("composition has no text layers to export")
	}
	document := recipe.ExportSRT(cues)

	target := strings.TrimSpace(srtPath)
	if target == "-" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), document)
		return err
	}
	return writeTextFile(cmd, target, document, "Wrote %s\n")
}

func importCaptions(cmd *cobra.Command, ctx *commandContext, snap *timeline.Snapshot, importPath, outputPath, saveName string, style timeline.TextOptions) error {
	expanded, err := config.ExpandPath(strings.TrimSpace(importPath))
	if err != nil {
		return err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return fmt.Errorf("read cues: %w", err)
	}
	cues, err := recipe.ParseSRT(string(data))
	if err != nil {
		return err
	}
	if len(cues) == 0 {
		return fmt.Errorf("no cues found in %s", importPath)
	}

	captioned := recipe.Captions(snap, cues, style)
	if saveName != "" {
		return ctx.withStore(cmd.Context(), func(store *library.Store) error {
			comp, err := store.Save(cmd.Context(), saveName, captioned)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved composition %q (%s)\n", comp.Name, comp.ID)
			return nil
		})
	}
	return writeCompositionOutput(cmd, captioned, outputPath)
}
