package timeline

// Snapshot is an immutable composition state: an ordered layer sequence plus
// global options. All builder functions return a fresh Snapshot and leave the
// receiver's state untouched, so snapshots are safe to share across
// goroutines and to extend along independent branches.
type Snapshot struct {
	layers []Layer
	global GlobalOptions
}

// New returns an empty composition.
func New() *Snapshot {
	return &Snapshot{}
}

// Len returns the number of layers.
func (s *Snapshot) Len() int { return len(s.layers) }

// Empty reports whether the composition has no layers.
func (s *Snapshot) Empty() bool { return len(s.layers) == 0 }

// Layers returns a deep copy of the layer sequence in insertion order.
func (s *Snapshot) Layers() []Layer {
	if len(s.layers) == 0 {
		return nil
	}
	out := make([]Layer, len(s.layers))
	for i, l := range s.layers {
		out[i] = l.clone()
	}
	return out
}

// Global returns a copy of the composition-wide options.
func (s *Snapshot) Global() GlobalOptions {
	return s.global.clone()
}

// withLayer appends one layer. The full slice expression pins capacity so the
// append can never write into a backing array shared with another snapshot.
func (s *Snapshot) withLayer(l Layer) *Snapshot {
	return &Snapshot{
		layers: append(s.layers[:len(s.layers):len(s.layers)], l),
		global: s.global,
	}
}

func (s *Snapshot) withGlobal(mutate func(*GlobalOptions)) *Snapshot {
	global := s.global.clone()
	mutate(&global)
	return &Snapshot{layers: s.layers, global: global}
}

// AddVideo appends a video layer. The first video layer becomes the base
// stream every other visual layer is composited onto.
func AddVideo(s *Snapshot, source string) *Snapshot {
	return s.withLayer(Layer{Kind: KindVideo, Source: source})
}

// AddAudio appends an audio layer with its effect-chain options.
func AddAudio(s *Snapshot, source string, opts AudioOptions) *Snapshot {
	clampTiming(&opts.Start, &opts.Duration)
	return s.withLayer(Layer{Kind: KindAudio, Source: source, Audio: &opts})
}

// AddText appends a text layer drawing content over the base stream.
func AddText(s *Snapshot, content string, opts TextOptions) *Snapshot {
	clampTiming(&opts.Start, &opts.Duration)
	return s.withLayer(Layer{Kind: KindText, Content: content, Text: &opts})
}

// AddImage appends an image layer. With no video layers present, the first
// image becomes the base plate; later images are composited as overlays.
func AddImage(s *Snapshot, source string, opts ImageOptions) *Snapshot {
	clampTiming(&opts.Start, &opts.Duration)
	return s.withLayer(Layer{Kind: KindImage, Source: source, Image: &opts})
}

// AddFilter appends a generic filter layer by name. Unknown names are kept
// and later passed to the engine verbatim.
func AddFilter(s *Snapshot, name string, opts FilterOptions) *Snapshot {
	cloned := opts.clone()
	return s.withLayer(Layer{Kind: KindFilter, Content: name, Filter: &cloned})
}

func clampTiming(start, duration *float64) {
	if *start < 0 {
		*start = 0
	}
	if *duration < 0 {
		*duration = 0
	}
}

// WithTrim bounds the output to [start, end) seconds.
func WithTrim(s *Snapshot, start, end float64) *Snapshot {
	return s.withGlobal(func(g *GlobalOptions) {
		g.Trim = &TrimRange{Start: start, End: end}
	})
}

// WithScale resizes the base stream to width x height.
func WithScale(s *Snapshot, width, height int) *Snapshot {
	return s.withGlobal(func(g *GlobalOptions) {
		g.Scale = &ScaleSpec{Width: width, Height: height}
	})
}

// WithCrop cuts a width x height rectangle at (x, y) out of the base stream.
func WithCrop(s *Snapshot, x, y, width, height int) *Snapshot {
	return s.withGlobal(func(g *GlobalOptions) {
		g.Crop = &CropSpec{X: x, Y: y, Width: width, Height: height}
	})
}

// WithAspectRatio requests a target aspect ratio, either one of the named
// ratios (16:9, 9:16, 4:3, 1:1, 21:9) or any "W:H" pair of positive
// integers. Validation happens at compile time.
func WithAspectRatio(s *Snapshot, ratio string) *Snapshot {
	return s.withGlobal(func(g *GlobalOptions) {
		g.AspectRatio = ratio
	})
}

// WithFrameRate sets the output frame rate.
func WithFrameRate(s *Snapshot, fps float64) *Snapshot {
	return s.withGlobal(func(g *GlobalOptions) {
		g.FrameRate = fps
	})
}

// WithDuration caps the rendered output length in seconds.
func WithDuration(s *Snapshot, seconds float64) *Snapshot {
	return s.withGlobal(func(g *GlobalOptions) {
		g.Duration = seconds
	})
}

// WithCodec selects explicit encoder settings, replacing the serializer's
// built-in defaults.
func WithCodec(s *Snapshot, codec CodecSettings) *Snapshot {
	return s.withGlobal(func(g *GlobalOptions) {
		cloned := codec.clone()
		g.Codec = &cloned
	})
}
