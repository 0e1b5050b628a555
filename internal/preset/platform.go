package preset

import (
	"sort"
	"strings"

	"montage/internal/timeline"
)

// Platform is a publishing target: the canvas a composition should be
// rendered on and the encoder bundle that suits the destination.
type Platform struct {
	Name        string  `json:"name"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio string  `json:"aspect_ratio"`
	FrameRate   float64 `json:"frame_rate"`
	Codec       string  `json:"codec"`
}

var platforms = map[string]Platform{
	"youtube":   {Name: "youtube", Width: 1920, Height: 1080, AspectRatio: "16:9", FrameRate: 30, Codec: "h264"},
	"landscape": {Name: "landscape", Width: 1920, Height: 1080, AspectRatio: "16:9", FrameRate: 30, Codec: "h264"},
	"shorts":    {Name: "shorts", Width: 1080, Height: 1920, AspectRatio: "9:16", FrameRate: 30, Codec: "h264"},
	"reel":      {Name: "reel", Width: 1080, Height: 1920, AspectRatio: "9:16", FrameRate: 30, Codec: "h264"},
	"tiktok":    {Name: "tiktok", Width: 1080, Height: 1920, AspectRatio: "9:16", FrameRate: 30, Codec: "h264"},
	"portrait":  {Name: "portrait", Width: 1080, Height: 1920, AspectRatio: "9:16", FrameRate: 30, Codec: "h264"},
	"square":    {Name: "square", Width: 1080, Height: 1080, AspectRatio: "1:1", FrameRate: 30, Codec: "h264"},
	"cinema":    {Name: "cinema", Width: 2560, Height: 1080, AspectRatio: "21:9", FrameRate: 24, Codec: "h265"},
}

// LookupPlatform resolves a platform name case-insensitively.
func LookupPlatform(name string) (Platform, bool) {
	p, ok := platforms[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// PlatformNames lists the available platforms in sorted order.
func PlatformNames() []string {
	names := make([]string, 0, len(platforms))
	for name := range platforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply stamps the platform's canvas and encoder bundle onto a snapshot,
// returning the extended snapshot. Unknown codec suggestions leave the
// snapshot's codec settings untouched.
func Apply(snap *timeline.Snapshot, p Platform) *timeline.Snapshot {
	snap = timeline.WithScale(snap, p.Width, p.Height)
	snap = timeline.WithAspectRatio(snap, p.AspectRatio)
	snap = timeline.WithFrameRate(snap, p.FrameRate)
	if settings, ok := LookupCodec(p.Codec); ok {
		snap = timeline.WithCodec(snap, settings)
	}
	return snap
}
