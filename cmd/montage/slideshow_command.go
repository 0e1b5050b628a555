package main

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"montage/internal/library"
	"montage/internal/recipe"
	"montage/internal/timeline"
)

func newSlideshowCommand(ctx *commandContext) *cobra.Command {
	var slideSeconds float64
	var audioPath string
	var audioVolume float64
	var audioFade float64
	var animate bool
	var seed uint64
	var platformFlag string
	var outputPath string
	var saveName string

	cmd := &cobra.Command{
		Use:   "slideshow <image>...",
		Short: "Build a slideshow composition from still images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := recipe.SlideshowOptions{
				SlideSeconds: slideSeconds,
				Audio:        strings.TrimSpace(audioPath),
				AudioVolume:  audioVolume,
				AudioFade:    audioFade,
			}

			if animate {
				rng := rand.New(rand.NewPCG(seed, 0))
				snaps := recipe.AnimatedSlides(args, opts, rng)
				return emitAnimatedSlides(cmd, ctx, snaps, saveName, outputPath)
			}

			snap := recipe.Slideshow(args, opts)
			snap, err := applyOutputDefaults(snap, ctx, platformFlag, "")
			if err != nil {
				return err
			}
			if saveName != "" {
				return ctx.withStore(cmd.Context(), func(store *library.Store) error {
					comp, err := store.Save(cmd.Context(), saveName, snap)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Saved composition %q (%s)\n", comp.Name, comp.ID)
					return nil
				})
			}
			return writeCompositionOutput(cmd, snap, outputPath)
		},
	}

	cmd.Flags().Float64Var(&slideSeconds, "slide-duration", 0, "Seconds each image is shown (default 3)")
	cmd.Flags().StringVar(&audioPath, "audio", "", "Soundtrack source faded in and out under the slides")
	cmd.Flags().Float64Var(&audioVolume, "audio-volume", 0, "Soundtrack volume multiplier")
	cmd.Flags().Float64Var(&audioFade, "audio-fade", 0, "Soundtrack fade length in seconds (default 1.5)")
	cmd.Flags().BoolVar(&animate, "animate", false, "Emit one animated composition per slide")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Random seed for motion selection")
	cmd.Flags().StringVar(&platformFlag, "platform", "", "Apply a platform preset to the composition")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the composition document here instead of stdout")
	cmd.Flags().StringVar(&saveName, "save", "", "Save the composition to the library under this name")
	return cmd
}

// emitAnimatedSlides writes per-slide compositions either into the library
// as numbered entries or as one JSON array document.
func emitAnimatedSlides(cmd *cobra.Command, ctx *commandContext, snaps []*timeline.Snapshot, saveName, outputPath string) error {
	if saveName != "" {
		return ctx.withStore(cmd.Context(), func(store *library.Store) error {
			for i, snap := range snaps {
				name := fmt.Sprintf("%s-%02d", saveName, i+1)
				comp, err := store.Save(cmd.Context(), name, snap)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved composition %q (%s)\n", comp.Name, comp.ID)
			}
			return nil
		})
	}

	docs := make([]json.RawMessage, 0, len(snaps))
	for _, snap := range snaps {
		data, err := timeline.Marshal(snap)
		if err != nil {
			return err
		}
		docs = append(docs, json.RawMessage(data))
	}
	if strings.TrimSpace(outputPath) != "" && outputPath != "-" {
		payload, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return err
		}
		return writeTextFile(cmd, outputPath, string(payload)+"\n", "Wrote compositions to %s\n")
	}
	return writeJSON(cmd, docs)
}
