package recipe

import "math/rand/v2"

// Motion is one Ken Burns move expressed as zoompan expressions. Zoom, X
// and Y are evaluated by ffmpeg per output frame; on and duration refer to
// the current and total frame counts of the zoompan run.
type Motion struct {
	Name string
	Zoom string
	X    string
	Y    string
}

// Motion names, in table order.
const (
	MotionZoomIn   = "zoom-in"
	MotionZoomOut  = "zoom-out"
	MotionPanLeft  = "pan-left"
	MotionPanRight = "pan-right"
	MotionPanUp    = "pan-up"
	MotionPanDown  = "pan-down"
)

var motions = []Motion{
	{
		Name: MotionZoomIn,
		Zoom: "min(zoom+0.0015,1.5)",
		X:    "iw/2-(iw/zoom/2)",
		Y:    "ih/2-(ih/zoom/2)",
	},
	{
		Name: MotionZoomOut,
		Zoom: "if(lte(zoom,1.0),1.5,max(1.001,zoom-0.0015))",
		X:    "iw/2-(iw/zoom/2)",
		Y:    "ih/2-(ih/zoom/2)",
	},
	{
		Name: MotionPanLeft,
		Zoom: "1.2",
		X:    "(iw-iw/zoom)-(on/duration)*(iw-iw/zoom)",
		Y:    "ih/2-(ih/zoom/2)",
	},
	{
		Name: MotionPanRight,
		Zoom: "1.2",
		X:    "(on/duration)*(iw-iw/zoom)",
		Y:    "ih/2-(ih/zoom/2)",
	},
	{
		Name: MotionPanUp,
		Zoom: "1.2",
		X:    "iw/2-(iw/zoom/2)",
		Y:    "(ih-ih/zoom)-(on/duration)*(ih-ih/zoom)",
	},
	{
		Name: MotionPanDown,
		Zoom: "1.2",
		X:    "iw/2-(iw/zoom/2)",
		Y:    "(on/duration)*(ih-ih/zoom)",
	},
}

// KenBurns picks a motion using the provided randomness source. A seeded
// source yields the same sequence of motions on every run.
func KenBurns(rng *rand.Rand) Motion {
	return motions[rng.IntN(len(motions))]
}

// MotionByName returns the named motion from the table.
func MotionByName(name string) (Motion, bool) {
	for _, m := range motions {
		if m.Name == name {
			return m, true
		}
	}
	return Motion{}, false
}

// Motions returns a copy of the motion table.
func Motions() []Motion {
	out := make([]Motion, len(motions))
	copy(out, motions)
	return out
}
