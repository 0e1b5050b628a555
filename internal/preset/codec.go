package preset

import (
	"sort"
	"strings"

	"montage/internal/timeline"
)

// codecs maps bundle names to encoder settings. CRF values are tuned per
// encoder family: x265 and VP9 rate factors do not compare one-to-one with
// x264.
var codecs = map[string]timeline.CodecSettings{
	"h264": {
		Video: "libx264",
		Audio: "aac",
		Options: map[string]string{
			"crf":     "23",
			"preset":  "medium",
			"pix_fmt": "yuv420p",
		},
	},
	"h264-fast": {
		Video: "libx264",
		Audio: "aac",
		Options: map[string]string{
			"crf":     "23",
			"preset":  "ultrafast",
			"pix_fmt": "yuv420p",
		},
	},
	"h265": {
		Video: "libx265",
		Audio: "aac",
		Options: map[string]string{
			"crf":     "28",
			"preset":  "medium",
			"pix_fmt": "yuv420p",
			"tag:v":   "hvc1",
		},
	},
	"vp9": {
		Video: "libvpx-vp9",
		Audio: "libopus",
		Options: map[string]string{
			"crf":    "31",
			"b:v":    "0",
			"row-mt": "1",
		},
	},
	"av1": {
		Video: "libsvtav1",
		Audio: "libopus",
		Options: map[string]string{
			"crf":    "35",
			"preset": "8",
		},
	},
	"archival": {
		Video: "libx264",
		Audio: "aac",
		Options: map[string]string{
			"crf":     "18",
			"preset":  "slow",
			"pix_fmt": "yuv420p",
		},
	},
	"web": {
		Video: "libx264",
		Audio: "aac",
		Options: map[string]string{
			"crf":      "23",
			"preset":   "veryfast",
			"pix_fmt":  "yuv420p",
			"movflags": "+faststart",
		},
	},
}

// LookupCodec resolves a bundle name case-insensitively. The returned
// settings are a private copy; callers may modify them freely.
func LookupCodec(name string) (timeline.CodecSettings, bool) {
	settings, ok := codecs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return timeline.CodecSettings{}, false
	}
	options := make(map[string]string, len(settings.Options))
	for k, v := range settings.Options {
		options[k] = v
	}
	settings.Options = options
	return settings, true
}

// CodecNames lists the available bundles in sorted order.
func CodecNames() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
