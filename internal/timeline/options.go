package timeline

import (
	"encoding/json"
	"fmt"
)

// Coord is one positional coordinate. It holds a plain number ("100"), a
// pixel string ("100px"), a percentage ("50%"), or a raw engine expression,
// all kept as text until compile time. JSON numbers decode into their decimal
// text form so callers may write either {"x": 100} or {"x": "100"}.
type Coord string

func (c Coord) String() string { return string(c) }

// MarshalJSON encodes the coordinate as a JSON string.
func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

// UnmarshalJSON accepts both string and numeric JSON values.
func (c *Coord) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Coord(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("coordinate must be a number or string: %w", err)
	}
	*c = Coord(n.String())
	return nil
}

// Position places an element on the canvas. When Preset is set it names one
// of the placement keywords (top, bottom, center and the four corners) and
// wins over X/Y. Otherwise X/Y position the element directly, optionally
// adjusted by a nine-point Anchor (corners, edge centers, center).
type Position struct {
	Preset string `json:"preset,omitempty"`
	X      Coord  `json:"x,omitempty"`
	Y      Coord  `json:"y,omitempty"`
	Anchor string `json:"anchor,omitempty"`
}

// IsZero reports whether no placement was configured at all.
func (p Position) IsZero() bool {
	return p.Preset == "" && p.X == "" && p.Y == "" && p.Anchor == ""
}

// TextOptions styles and times a text layer. Zero-valued fields fall back to
// the drawing defaults: font size 24, white fill, centered placement, five
// second display window.
type TextOptions struct {
	Start    float64  `json:"start,omitempty"`
	Duration float64  `json:"duration,omitempty"`
	Position Position `json:"position,omitzero"`

	FontSize   int    `json:"font_size,omitempty"`
	FontColor  string `json:"font_color,omitempty"`
	FontFile   string `json:"font_file,omitempty"`
	FontFamily string `json:"font_family,omitempty"`
	Italic     bool   `json:"italic,omitempty"`

	BoxColor    string  `json:"box_color,omitempty"`
	BoxBorder   int     `json:"box_border,omitempty"`
	BorderColor string  `json:"border_color,omitempty"`
	BorderWidth int     `json:"border_width,omitempty"`
	ShadowColor string  `json:"shadow_color,omitempty"`
	ShadowX     int     `json:"shadow_x,omitempty"`
	ShadowY     int     `json:"shadow_y,omitempty"`
	Alignment   string  `json:"alignment,omitempty"`
	LineSpacing float64 `json:"line_spacing,omitempty"`
}

// ImageOptions places and times an image overlay layer.
type ImageOptions struct {
	Start    float64  `json:"start,omitempty"`
	Duration float64  `json:"duration,omitempty"`
	Position Position `json:"position,omitzero"`
}

// AudioOptions configures the per-track effect chain for an audio layer.
// A zero value means the corresponding stage is not emitted. Start delays
// the track by padding silence in front of it; Duration clamps the track to
// [Start, Start+Duration); TrimStart/TrimEnd select a segment of the source
// before any other stage runs.
type AudioOptions struct {
	Start    float64 `json:"start,omitempty"`
	Duration float64 `json:"duration,omitempty"`

	TrimStart float64 `json:"trim_start,omitempty"`
	TrimEnd   float64 `json:"trim_end,omitempty"`
	Volume    float64 `json:"volume,omitempty"`
	FadeIn    float64 `json:"fade_in,omitempty"`
	FadeOut   float64 `json:"fade_out,omitempty"`
	Pitch     float64 `json:"pitch,omitempty"`
	Tempo     float64 `json:"tempo,omitempty"`
	Lowpass   float64 `json:"lowpass,omitempty"`
	Highpass  float64 `json:"highpass,omitempty"`
	EchoDelay int     `json:"echo_delay,omitempty"`
	EchoDecay float64 `json:"echo_decay,omitempty"`
	Reverb    bool    `json:"reverb,omitempty"`
	Loop      int     `json:"loop,omitempty"`
}

// FilterOptions parameterizes a generic filter layer. Only the fields
// matching the filter named by the layer's Content are consulted; the
// remainder are ignored. Params carries a raw parameter string for filters
// passed through verbatim.
type FilterOptions struct {
	Value  float64 `json:"value,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Angle  string  `json:"angle,omitempty"`

	Zoom     string  `json:"zoom,omitempty"`
	X        string  `json:"x,omitempty"`
	Y        string  `json:"y,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Size     string  `json:"size,omitempty"`
	FPS      int     `json:"fps,omitempty"`

	RR *float64 `json:"rr,omitempty"`
	RG *float64 `json:"rg,omitempty"`
	RB *float64 `json:"rb,omitempty"`
	GR *float64 `json:"gr,omitempty"`
	GG *float64 `json:"gg,omitempty"`
	GB *float64 `json:"gb,omitempty"`
	BR *float64 `json:"br,omitempty"`
	BG *float64 `json:"bg,omitempty"`
	BB *float64 `json:"bb,omitempty"`

	Params string `json:"params,omitempty"`
}

func (f FilterOptions) clone() FilterOptions {
	out := f
	out.RR = cloneFloat(f.RR)
	out.RG = cloneFloat(f.RG)
	out.RB = cloneFloat(f.RB)
	out.GR = cloneFloat(f.GR)
	out.GG = cloneFloat(f.GG)
	out.GB = cloneFloat(f.GB)
	out.BR = cloneFloat(f.BR)
	out.BG = cloneFloat(f.BG)
	out.BB = cloneFloat(f.BB)
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
