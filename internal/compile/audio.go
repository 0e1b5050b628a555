package compile

import (
	"math"
	"strconv"
	"strings"

	"montage/internal/timeline"
)

const (
	defaultEchoDecay = 0.5
	// aloop sizes are in samples; the maximum keeps the whole buffered
	// segment available for every iteration.
	loopSampleWindow = "2147483647"
)

// buildAudio appends one processed chain per audio layer plus, when more
// than one stream contributes, a single longest-duration mix node. Tracks
// with no configured effects contribute their input pad directly. The base
// video's own audio joins as a final, unprocessed input.
func (b *builder) buildAudio(audioLayers []timeline.Layer, baseAudio string) {
	var contributing []string
	for _, layer := range audioLayers {
		idx := b.set.add(layer.Source)
		stages := audioStages(layer)
		if len(stages) == 0 {
			contributing = append(contributing, audioPad(idx))
			continue
		}
		out := b.labels.nextAudio()
		b.script = append(b.script, pad(audioPad(idx))+strings.Join(stages, ",")+pad(out))
		contributing = append(contributing, out)
	}
	if baseAudio != "" {
		contributing = append(contributing, baseAudio)
	}

	switch len(contributing) {
	case 0:
		return
	case 1:
		b.labels.audio = contributing[0]
	default:
		var mix strings.Builder
		for _, label := range contributing {
			mix.WriteString(pad(label))
		}
		mix.WriteString("amix=inputs=" + strconv.Itoa(len(contributing)) + ":duration=longest")
		mix.WriteString(pad("aout"))
		b.script = append(b.script, mix.String())
		b.labels.audio = "aout"
	}
}

// audioStages builds the ordered effect chain for one audio layer, emitting
// only stages whose parameters were configured. The order is fixed: source
// trim, gain, fades, pitch, tempo, tone filters, echo, reverb, placement
// delay, duration clamp, loop.
func audioStages(layer timeline.Layer) []string {
	opts := layer.Audio
	if opts == nil {
		return nil
	}
	var stages []string

	switch {
	case opts.TrimStart > 0 && opts.TrimEnd > 0:
		stages = append(stages, "atrim=start="+formatFloat(opts.TrimStart)+":end="+formatFloat(opts.TrimEnd))
	case opts.TrimStart > 0:
		stages = append(stages, "atrim=start="+formatFloat(opts.TrimStart))
	case opts.TrimEnd > 0:
		stages = append(stages, "atrim=end="+formatFloat(opts.TrimEnd))
	}
	if opts.Volume > 0 {
		stages = append(stages, "volume="+formatFloat(opts.Volume))
	}
	if opts.FadeIn > 0 {
		stages = append(stages, "afade=t=in:st=0:d="+formatFloat(opts.FadeIn))
	}
	if opts.FadeOut > 0 {
		if dur := trackDuration(opts); dur > opts.FadeOut {
			stages = append(stages,
				"afade=t=out:st="+formatFloat(dur-opts.FadeOut)+":d="+formatFloat(opts.FadeOut))
		}
	}
	if opts.Pitch > 0 {
		stages = append(stages, "asetrate=44100*"+formatFloat(opts.Pitch), "aresample=44100")
	}
	if opts.Tempo > 0 {
		stages = append(stages, "atempo="+formatFloat(opts.Tempo))
	}
	if opts.Lowpass > 0 {
		stages = append(stages, "lowpass=f="+formatFloat(opts.Lowpass))
	}
	if opts.Highpass > 0 {
		stages = append(stages, "highpass=f="+formatFloat(opts.Highpass))
	}
	if opts.EchoDelay > 0 {
		decay := opts.EchoDecay
		if decay <= 0 {
			decay = defaultEchoDecay
		}
		stages = append(stages, "aecho=0.8:0.9:"+strconv.Itoa(opts.EchoDelay)+":"+formatFloat(decay))
	}
	if opts.Reverb {
		stages = append(stages, "aecho=0.8:0.88:60|120:0.4|0.3")
	}
	if opts.Start > 0 {
		ms := strconv.Itoa(int(math.Round(opts.Start * 1000)))
		stages = append(stages, "adelay="+ms+"|"+ms)
	}
	if opts.Duration > 0 {
		stages = append(stages, "atrim=0:"+formatFloat(opts.Start+opts.Duration))
	}
	if opts.Loop != 0 {
		stages = append(stages, "aloop=loop="+strconv.Itoa(opts.Loop)+":size="+loopSampleWindow)
	}
	return stages
}

// trackDuration is the length available for fade-out placement: the explicit
// layer duration when set, otherwise the trimmed source span.
func trackDuration(opts *timeline.AudioOptions) float64 {
	if opts.Duration > 0 {
		return opts.Duration
	}
	if opts.TrimEnd > 0 {
		return opts.TrimEnd - opts.TrimStart
	}
	return 0
}
