package timeline

import (
	"encoding/json"
	"fmt"
)

// document is the serialized form of a snapshot: layers plus global options,
// nothing else. Compiled artifacts are never part of the persisted state.
type document struct {
	Layers  []Layer       `json:"layers"`
	Options GlobalOptions `json:"options,omitzero"`
}

// Marshal encodes the snapshot as indented JSON.
func Marshal(s *Snapshot) ([]byte, error) {
	doc := document{Layers: s.Layers(), Options: s.Global()}
	if doc.Layers == nil {
		doc.Layers = []Layer{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode composition: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a snapshot produced by Marshal. Layer kinds must be
// known and media layers must carry a source; everything else is accepted
// as-is, mirroring the compiler's serialize-first policy.
func Unmarshal(data []byte) (*Snapshot, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode composition: %w", err)
	}
	snap := &Snapshot{global: doc.Options}
	for i, layer := range doc.Layers {
		if err := validateLayer(layer); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		normalizeLayer(&layer)
		snap.layers = append(snap.layers, layer)
	}
	return snap, nil
}

func validateLayer(l Layer) error {
	if !l.Kind.Valid() {
		return fmt.Errorf("unknown layer type %q", l.Kind)
	}
	switch l.Kind {
	case KindVideo, KindAudio, KindImage:
		if l.Source == "" {
			return fmt.Errorf("%s layer requires a source", l.Kind)
		}
	case KindFilter:
		if l.Content == "" {
			return fmt.Errorf("filter layer requires a filter name")
		}
	}
	return nil
}

// normalizeLayer reestablishes the invariants the builder functions enforce:
// non-negative timing and an options struct matching the layer kind.
func normalizeLayer(l *Layer) {
	switch l.Kind {
	case KindText:
		if l.Text == nil {
			l.Text = &TextOptions{}
		}
		clampTiming(&l.Text.Start, &l.Text.Duration)
	case KindImage:
		if l.Image == nil {
			l.Image = &ImageOptions{}
		}
		clampTiming(&l.Image.Start, &l.Image.Duration)
	case KindAudio:
		if l.Audio == nil {
			l.Audio = &AudioOptions{}
		}
		clampTiming(&l.Audio.Start, &l.Audio.Duration)
	case KindFilter:
		if l.Filter == nil {
			l.Filter = &FilterOptions{}
		}
	}
}
