package timeline

// LayerKind identifies the variant of a timeline entry.
type LayerKind string

const (
	KindVideo  LayerKind = "video"
	KindAudio  LayerKind = "audio"
	KindText   LayerKind = "text"
	KindImage  LayerKind = "image"
	KindFilter LayerKind = "filter"
)

// Valid reports whether k is one of the known layer kinds.
func (k LayerKind) Valid() bool {
	switch k {
	case KindVideo, KindAudio, KindText, KindImage, KindFilter:
		return true
	}
	return false
}

// Layer is one timeline entry. Source is set for video, audio and image
// layers; Content carries the text for text layers and the filter name for
// filter layers. Exactly one of the per-kind option structs is populated,
// matching Kind; timing lives inside that struct.
type Layer struct {
	Kind    LayerKind `json:"type"`
	Source  string    `json:"source,omitempty"`
	Content string    `json:"content,omitempty"`

	Text   *TextOptions   `json:"text,omitempty"`
	Image  *ImageOptions  `json:"image,omitempty"`
	Audio  *AudioOptions  `json:"audio,omitempty"`
	Filter *FilterOptions `json:"filter,omitempty"`
}

// Start returns the layer's placement offset in seconds. Layers without a
// timing-capable options struct start at zero.
func (l Layer) Start() float64 {
	switch {
	case l.Text != nil:
		return l.Text.Start
	case l.Image != nil:
		return l.Image.Start
	case l.Audio != nil:
		return l.Audio.Start
	}
	return 0
}

// Duration returns the layer's explicit duration in seconds, or zero when the
// layer runs to its natural end (media) or to its type default (text, image).
func (l Layer) Duration() float64 {
	switch {
	case l.Text != nil:
		return l.Text.Duration
	case l.Image != nil:
		return l.Image.Duration
	case l.Audio != nil:
		return l.Audio.Duration
	}
	return 0
}

func (l Layer) clone() Layer {
	out := l
	if l.Text != nil {
		text := *l.Text
		out.Text = &text
	}
	if l.Image != nil {
		image := *l.Image
		out.Image = &image
	}
	if l.Audio != nil {
		audio := *l.Audio
		out.Audio = &audio
	}
	if l.Filter != nil {
		filter := l.Filter.clone()
		out.Filter = &filter
	}
	return out
}
