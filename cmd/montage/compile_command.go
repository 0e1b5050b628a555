package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"montage/internal/compile"
	"montage/internal/logging"
	"montage/internal/preset"
	"montage/internal/timeline"
)

// compileDocument is the JSON-mode view of a compiled composition.
type compileDocument struct {
	Inputs     []inputDocument `json:"inputs"`
	Script     []string        `json:"filter_script,omitempty"`
	VideoLabel string          `json:"video_label,omitempty"`
	AudioLabel string          `json:"audio_label,omitempty"`
	Command    string          `json:"command"`
}

type inputDocument struct {
	Source   string  `json:"source"`
	Loop     bool    `json:"loop,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

func newCompileCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var platformFlag string
	var codecFlag string
	var hwaccelFlag string

	cmd := &cobra.Command{
		Use:   "compile <composition.json>",
		Short: "Compile a composition into an engine command",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			snap, err := loadComposition(args[0])
			if err != nil {
				return err
			}
			snap, err = applyOutputDefaults(snap, ctx, platformFlag, codecFlag)
			if err != nil {
				return err
			}

			opts := compile.RenderOptions{
				Program: cfg.Engine.Program,
				HWAccel: cfg.Engine.HWAccel,
			}
			if strings.TrimSpace(hwaccelFlag) != "" {
				opts.HWAccel = strings.TrimSpace(hwaccelFlag)
			}

			graph, err := compile.Build(snap)
			if err != nil {
				return err
			}
			command := compile.Serialize(graph, snap.Global(), outputPath, opts)

			logger := ctx.componentLogger("compile")
			logger.Debug("command rendered",
				logging.Int("inputs", len(graph.Inputs)),
				logging.Int("fragments", len(graph.Script)),
				logging.Bool("fast_path", graph.FastPath()),
			)

			if ctx.jsonOutput() {
				return writeJSON(cmd, newCompileDocument(graph, command))
			}
			fmt.Fprintln(cmd.OutOrStdout(), command)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "output.mp4", "Output file the command renders to")
	cmd.Flags().StringVar(&platformFlag, "platform", "", "Apply a platform preset before compiling")
	cmd.Flags().StringVar(&codecFlag, "codec", "", "Apply a codec preset before compiling")
	cmd.Flags().StringVar(&hwaccelFlag, "hwaccel", "", "Override the hardware acceleration mode")
	return cmd
}

func newCompileDocument(graph *compile.Graph, command string) compileDocument {
	doc := compileDocument{
		Script:     graph.Script,
		VideoLabel: graph.VideoLabel,
		AudioLabel: graph.AudioLabel,
		Command:    command,
	}
	doc.Inputs = make([]inputDocument, 0, len(graph.Inputs))
	for _, in := range graph.Inputs {
		doc.Inputs = append(doc.Inputs, inputDocument{
			Source:   in.Source,
			Loop:     in.Loop,
			Duration: in.Duration,
		})
	}
	return doc
}

// applyOutputDefaults stamps platform and codec presets onto the snapshot.
// Explicit flags always apply; the config's output defaults only fill in
// what the composition leaves unset.
func applyOutputDefaults(snap *timeline.Snapshot, ctx *commandContext, platformFlag, codecFlag string) (*timeline.Snapshot, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	global := snap.Global()

	platformName := strings.TrimSpace(platformFlag)
	if platformName == "" && global.Scale == nil && global.AspectRatio == "" {
		platformName = cfg.Output.Platform
	}
	if platformName != "" {
		p, ok := preset.LookupPlatform(platformName)
		if !ok {
			return nil, fmt.Errorf("unknown platform %q (available: %s)", platformName, strings.Join(preset.PlatformNames(), ", "))
		}
		snap = preset.Apply(snap, p)
	}

	codecName := strings.TrimSpace(codecFlag)
	if codecName == "" && snap.Global().Codec == nil {
		codecName = cfg.Output.CodecPreset
	}
	if codecName != "" {
		settings, ok := preset.LookupCodec(codecName)
		if !ok {
			return nil, fmt.Errorf("unknown codec preset %q (available: %s)", codecName, strings.Join(preset.CodecNames(), ", "))
		}
		snap = timeline.WithCodec(snap, settings)
	}

	if cfg.Output.FrameRate > 0 && snap.Global().FrameRate == 0 {
		snap = timeline.WithFrameRate(snap, cfg.Output.FrameRate)
	}

	return snap, nil
}
