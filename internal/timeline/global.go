package timeline

import "sort"

// TrimRange bounds the rendered output in seconds. A zero End means "to the
// natural end of the content".
type TrimRange struct {
	Start float64 `json:"start,omitempty"`
	End   float64 `json:"end,omitempty"`
}

// ScaleSpec resizes the base video stream.
type ScaleSpec struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CropSpec cuts a rectangle out of the base video stream.
type CropSpec struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CodecSettings selects the encoders for the final render. Options carries
// encoder-specific flags as name/value pairs; serialization orders them by
// sorted key so identical settings always produce identical commands.
type CodecSettings struct {
	Video   string            `json:"video,omitempty"`
	Audio   string            `json:"audio,omitempty"`
	Options map[string]string `json:"options,omitempty"`
}

// SortedOptions returns the option names in deterministic order.
func (c CodecSettings) SortedOptions() []string {
	if len(c.Options) == 0 {
		return nil
	}
	keys := make([]string, 0, len(c.Options))
	for k := range c.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c CodecSettings) clone() CodecSettings {
	out := c
	if c.Options != nil {
		out.Options = make(map[string]string, len(c.Options))
		for k, v := range c.Options {
			out.Options[k] = v
		}
	}
	return out
}

// GlobalOptions are composition-wide settings, independent of any layer.
// Later writes of the same key replace earlier ones.
type GlobalOptions struct {
	Trim        *TrimRange     `json:"trim,omitempty"`
	Scale       *ScaleSpec     `json:"scale,omitempty"`
	Crop        *CropSpec      `json:"crop,omitempty"`
	AspectRatio string         `json:"aspect_ratio,omitempty"`
	FrameRate   float64        `json:"frame_rate,omitempty"`
	Duration    float64        `json:"duration,omitempty"`
	Codec       *CodecSettings `json:"codec,omitempty"`
}

func (g GlobalOptions) clone() GlobalOptions {
	out := g
	if g.Trim != nil {
		trim := *g.Trim
		out.Trim = &trim
	}
	if g.Scale != nil {
		scale := *g.Scale
		out.Scale = &scale
	}
	if g.Crop != nil {
		crop := *g.Crop
		out.Crop = &crop
	}
	if g.Codec != nil {
		codec := g.Codec.clone()
		out.Codec = &codec
	}
	return out
}
