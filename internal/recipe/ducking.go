package recipe

import "montage/internal/timeline"

const defaultDuckVolume = 0.25

// DuckOptions tunes the voice-over bed laid down by Duck.
type DuckOptions struct {
	// MusicVolume is the bed gain while the voice plays. Zero means 0.25.
	MusicVolume float64
	// MusicSeconds clamps the bed length. When set, the bed also fades out
	// over FadeOut seconds at its end.
	MusicSeconds float64
	// FadeIn and FadeOut are the bed fade lengths in seconds.
	FadeIn  float64
	FadeOut float64
	// VoiceStart delays the narration.
	VoiceStart float64
	// VoiceVolume scales the narration gain. Zero keeps the source level.
	VoiceVolume float64
}

// Duck lays a narration track over a music bed, dropping the bed's gain so
// the voice reads clearly. Both tracks join the composition's audio mix;
// the engine sums them with any other contributing streams.
func Duck(snap *timeline.Snapshot, voice, music string, opts DuckOptions) *timeline.Snapshot {
	gain := opts.MusicVolume
	if gain <= 0 {
		gain = defaultDuckVolume
	}
	bed := timeline.AudioOptions{
		Volume: gain,
		FadeIn: opts.FadeIn,
	}
	if opts.MusicSeconds > 0 {
		bed.Duration = opts.MusicSeconds
		bed.FadeOut = opts.FadeOut
	}
	snap = timeline.AddAudio(snap, music, bed)
	return timeline.AddAudio(snap, voice, timeline.AudioOptions{
		Start:  opts.VoiceStart,
		Volume: opts.VoiceVolume,
	})
}
