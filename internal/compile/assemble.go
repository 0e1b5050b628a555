package compile

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"montage/internal/timeline"
)

const (
	// Image inputs loop for half a second each on the fast path and five
	// seconds on the general path. The asymmetry is deliberate: sequences
	// flip through stills quickly, single plates hold long enough to carry
	// overlays.
	fastImageSeconds    = 0.5
	generalImageSeconds = 5.0

	// sequenceTolerance absorbs floating-point drift when checking that
	// consecutive images butt against each other.
	sequenceTolerance = 0.01
)

// Graph is the assembled but not yet serialized compilation result:
// deduplicated inputs, ordered filter fragments, and the final stream
// labels. Labels may be raw input pads when a stream passed through
// unfiltered; an empty label means the composition has no such stream.
type Graph struct {
	Inputs     []Input
	Script     []string
	VideoLabel string
	AudioLabel string
}

// FastPath reports whether the image-sequence strategy produced this graph.
func (g *Graph) FastPath() bool {
	return g.VideoLabel == "vout"
}

type builder struct {
	set     *inputSet
	labels  labelState
	script  []string
	global  timeline.GlobalOptions
	aspectW int
	aspectH int
}

// step chains one video fragment onto the current video label.
func (b *builder) step(body string) {
	cur := b.labels.video
	out := b.labels.nextVideo()
	b.script = append(b.script, pad(cur)+body+pad(out))
}

// overlayStep chains one two-input fragment: the current video plus an
// overlay input pad.
func (b *builder) overlayStep(inputIndex int, body string) {
	cur := b.labels.video
	out := b.labels.nextVideo()
	b.script = append(b.script, pad(cur)+pad(videoPad(inputIndex))+body+pad(out))
}

// Build compiles the snapshot into a filter graph. It never mutates the
// snapshot and is safe to call any number of times; the only error case is
// a structurally invalid aspect-ratio string.
func Build(snap *timeline.Snapshot) (*Graph, error) {
	layers := snap.Layers()
	global := snap.Global()

	var videoLayers, audioLayers, imageLayers, textLayers, filterLayers []timeline.Layer
	for _, l := range layers {
		switch l.Kind {
		case timeline.KindVideo:
			videoLayers = append(videoLayers, l)
		case timeline.KindAudio:
			audioLayers = append(audioLayers, l)
		case timeline.KindImage:
			imageLayers = append(imageLayers, l)
		case timeline.KindText:
			textLayers = append(textLayers, l)
		case timeline.KindFilter:
			filterLayers = append(filterLayers, l)
		}
	}

	b := &builder{set: newInputSet(), global: global}
	if global.AspectRatio != "" {
		w, h, err := parseAspect(global.AspectRatio)
		if err != nil {
			return nil, err
		}
		b.aspectW, b.aspectH = w, h
	}

	if sequence, ok := imageSequence(len(videoLayers), imageLayers); ok {
		b.registerInputs(layers, fastImageSeconds)
		b.buildFastPath(sequence, audioLayers)
	} else {
		b.registerInputs(layers, generalImageSeconds)
		b.buildGeneral(videoLayers, audioLayers, imageLayers, textLayers, filterLayers)
	}

	return &Graph{
		Inputs:     b.set.list(),
		Script:     b.script,
		VideoLabel: b.labels.video,
		AudioLabel: b.labels.audio,
	}, nil
}

// registerInputs assigns input indexes across the whole layer sequence in
// insertion order, so the same source always lands on the same index no
// matter which layer kinds reference it.
func (b *builder) registerInputs(layers []timeline.Layer, imageSeconds float64) {
	for _, l := range layers {
		switch l.Kind {
		case timeline.KindVideo, timeline.KindAudio:
			b.set.add(l.Source)
		case timeline.KindImage:
			dur := l.Duration()
			if dur <= 0 {
				dur = imageSeconds
			}
			b.set.addImage(l.Source, dur)
		}
	}
}

// imageSequence decides the fast path: more than one image, no video, and
// the images sorted by start time form a chain where each ends no later
// than the next one starts, within tolerance.
func imageSequence(videoCount int, images []timeline.Layer) ([]timeline.Layer, bool) {
	if videoCount > 0 || len(images) < 2 {
		return nil, false
	}
	sorted := append([]timeline.Layer(nil), images...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start() < sorted[j].Start()
	})
	for i := 0; i < len(sorted)-1; i++ {
		dur := sorted[i].Duration()
		if dur <= 0 {
			dur = fastImageSeconds
		}
		if sorted[i].Start()+dur > sorted[i+1].Start()+sequenceTolerance {
			return nil, false
		}
	}
	return sorted, true
}

// buildFastPath joins the looped image inputs with a single concat node.
// Overlay and text fragments never appear here; audio layers still get
// their full graph so slideshows can carry a soundtrack.
func (b *builder) buildFastPath(sequence []timeline.Layer, audioLayers []timeline.Layer) {
	var refs strings.Builder
	for _, l := range sequence {
		refs.WriteString(pad(videoPad(b.set.index[l.Source])))
	}
	refs.WriteString("concat=n=" + strconv.Itoa(len(sequence)) + ":v=1:a=0")
	refs.WriteString(pad("vout"))
	b.script = append(b.script, refs.String())
	b.labels.video = "vout"

	b.buildAudio(audioLayers, "")
}

// buildGeneral runs the fixed step order: base selection, aspect ratio,
// scale, crop, zoompan pulled onto an image base, text overlays, image
// overlays, remaining generic filters, audio graph.
func (b *builder) buildGeneral(videoLayers, audioLayers, imageLayers, textLayers, filterLayers []timeline.Layer) {
	imageAsBase := false
	baseIndex := -1
	switch {
	case len(videoLayers) > 0:
		baseIndex = b.set.index[videoLayers[0].Source]
		b.labels.video = videoPad(baseIndex)
	case len(imageLayers) > 0:
		baseIndex = b.set.index[imageLayers[0].Source]
		b.labels.video = videoPad(baseIndex)
		imageAsBase = true
	}

	if b.labels.video != "" {
		if b.aspectW > 0 {
			b.step(aspectBody(b.aspectW, b.aspectH))
		}
		if s := b.global.Scale; s != nil {
			b.step("scale=" + strconv.Itoa(s.Width) + ":" + strconv.Itoa(s.Height))
		}
		if c := b.global.Crop; c != nil {
			b.step(fmt.Sprintf("crop=%d:%d:%d:%d", c.Width, c.Height, c.X, c.Y))
		}

		// A zoompan on an image plate animates the plate itself, so it
		// must run before anything is composited on top and must not be
		// applied again with the other generic filters.
		if imageAsBase {
			if i := firstZoompan(filterLayers); i >= 0 {
				b.step(genericBody(filterLayers[i], b.global))
				filterLayers = append(filterLayers[:i:i], filterLayers[i+1:]...)
			}
		}

		for _, l := range textLayers {
			b.step(textBody(l))
		}
		for i, l := range imageLayers {
			if imageAsBase && i == 0 {
				continue
			}
			b.overlayStep(b.set.index[l.Source], overlayBody(l))
		}
		for _, l := range filterLayers {
			b.step(genericBody(l, b.global))
		}
	}

	baseAudio := ""
	if len(videoLayers) > 0 {
		baseAudio = audioPad(baseIndex)
	}
	b.buildAudio(audioLayers, baseAudio)
}

func firstZoompan(filterLayers []timeline.Layer) int {
	for i, l := range filterLayers {
		if classifyFilter(l.Content) == filterZoompan {
			return i
		}
	}
	return -1
}

// parseAspect accepts the five well-known ratios directly and any other
// "W:H" pair of positive integers.
func parseAspect(ratio string) (w, h int, err error) {
	switch strings.TrimSpace(ratio) {
	case "16:9":
		return 16, 9, nil
	case "9:16":
		return 9, 16, nil
	case "4:3":
		return 4, 3, nil
	case "1:1":
		return 1, 1, nil
	case "21:9":
		return 21, 9, nil
	}
	parts := strings.Split(strings.TrimSpace(ratio), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidAspect, ratio)
	}
	w, errW := strconv.Atoi(parts[0])
	h, errH := strconv.Atoi(parts[1])
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidAspect, ratio)
	}
	return w, h, nil
}

// aspectBody center-crops to the target ratio and snaps both dimensions to
// even values.
func aspectBody(w, h int) string {
	rw, rh := strconv.Itoa(w), strconv.Itoa(h)
	target := rw + "/" + rh
	inverse := rh + "/" + rw
	return "crop='if(gte(iw/ih," + target + "),ih*" + target + ",iw)'" +
		":'if(gte(iw/ih," + target + "),ih,iw*" + inverse + ")'" +
		",scale=trunc(iw/2)*2:trunc(ih/2)*2"
}
