package recipe

import (
	"math/rand/v2"

	"montage/internal/timeline"
)

const (
	defaultSlideSeconds = 3
	defaultAudioFade    = 1.5
)

// SlideshowOptions shapes a photo slideshow.
type SlideshowOptions struct {
	// SlideSeconds is how long each still stays on screen. Zero means 3.
	SlideSeconds float64
	// Audio optionally lays a soundtrack under the sequence, faded in and
	// out over AudioFade seconds and clamped to the slideshow length.
	Audio string
	// AudioVolume scales the soundtrack gain. Zero keeps the source level.
	AudioVolume float64
	// AudioFade is the fade length in seconds. Zero means 1.5.
	AudioFade float64
}

func (o SlideshowOptions) slideSeconds() float64 {
	if o.SlideSeconds <= 0 {
		return defaultSlideSeconds
	}
	return o.SlideSeconds
}

// Slideshow lines up stills back to back, one slide per image, and
// optionally lays a soundtrack underneath. Slide timings are contiguous, so
// a multi-image show compiles through the concat fast path.
func Slideshow(images []string, opts SlideshowOptions) *timeline.Snapshot {
	slide := opts.slideSeconds()
	snap := timeline.New()
	for i, img := range images {
		snap = timeline.AddImage(snap, img, timeline.ImageOptions{
			Start:    float64(i) * slide,
			Duration: slide,
		})
	}
	if opts.Audio != "" {
		fade := opts.AudioFade
		if fade <= 0 {
			fade = defaultAudioFade
		}
		snap = timeline.AddAudio(snap, opts.Audio, timeline.AudioOptions{
			Duration: slide * float64(len(images)),
			Volume:   opts.AudioVolume,
			FadeIn:   fade,
			FadeOut:  fade,
		})
	}
	return snap
}

// AnimatedSlides builds one single-still composition per image, each with a
// randomly drawn Ken Burns motion. A concat chain cannot animate its stills
// independently in one pass, so callers render each slide on its own and
// stitch the results.
func AnimatedSlides(images []string, opts SlideshowOptions, rng *rand.Rand) []*timeline.Snapshot {
	slide := opts.slideSeconds()
	out := make([]*timeline.Snapshot, 0, len(images))
	for _, img := range images {
		m := KenBurns(rng)
		snap := timeline.AddImage(timeline.New(), img, timeline.ImageOptions{Duration: slide})
		snap = timeline.AddFilter(snap, "zoompan", timeline.FilterOptions{
			Zoom:     m.Zoom,
			X:        m.X,
			Y:        m.Y,
			Duration: slide,
		})
		out = append(out, snap)
	}
	return out
}
