package recipe

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"montage/internal/timeline"
)

// Cue is one caption: Text shown from Start to End, in seconds.
type Cue struct {
	Start float64
	End   float64
	Text  string
}

// defaultCaptionWindow matches the engine's five second text display
// default, used when a layer has no explicit duration.
const defaultCaptionWindow = 5

// Captions burns cues into the composition as timed text layers. The style
// applies to every cue; its timing fields are overwritten per cue, and an
// unset position defaults to bottom-centered.
func Captions(snap *timeline.Snapshot, cues []Cue, style timeline.TextOptions) *timeline.Snapshot {
	for _, c := range cues {
		opts := style
		opts.Start = c.Start
		opts.Duration = c.End - c.Start
		if opts.Duration < 0 {
			opts.Duration = 0
		}
		if opts.Position.IsZero() {
			opts.Position = timeline.Position{Preset: "bottom"}
		}
		snap = timeline.AddText(snap, c.Text, opts)
	}
	return snap
}

// ExtractCues reads a composition's text layers back out as cues, in layer
// order.
func ExtractCues(snap *timeline.Snapshot) []Cue {
	var cues []Cue
	for _, l := range snap.Layers() {
		if l.Kind != timeline.KindText {
			continue
		}
		dur := l.Duration()
		if dur <= 0 {
			dur = defaultCaptionWindow
		}
		cues = append(cues, Cue{Start: l.Start(), End: l.Start() + dur, Text: l.Content})
	}
	return cues
}

// ExportSRT renders cues as an SRT document, sorted by start time and
// numbered from one.
func ExportSRT(cues []Cue) string {
	sorted := append([]Cue(nil), cues...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	var b strings.Builder
	for i, c := range sorted {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n",
			i+1, formatSRTTimestamp(c.Start), formatSRTTimestamp(c.End), strings.TrimSpace(c.Text))
	}
	return b.String()
}

func formatSRTTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	millis := int(math.Round(seconds * 1000))
	h := millis / 3600000
	millis -= h * 3600000
	m := millis / 60000
	millis -= m * 60000
	s := millis / 1000
	millis -= s * 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, millis)
}

// ParseSRT reads an SRT document into cues. Index lines are optional, a
// period before the milliseconds is accepted alongside the standard comma,
// and blocks without a timing line or text are skipped.
func ParseSRT(data string) ([]Cue, error) {
	content := strings.ReplaceAll(data, "\r\n", "\n")
	var cues []Cue
	for _, block := range strings.Split(strings.TrimSpace(content), "\n\n") {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		timing := -1
		for i, line := range lines {
			if strings.Contains(line, "-->") {
				timing = i
				break
			}
		}
		if timing < 0 {
			continue
		}
		parts := strings.Split(lines[timing], "-->")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid timing line %q", lines[timing])
		}
		start, err := parseSRTTimestamp(parts[0])
		if err != nil {
			return nil, err
		}
		end, err := parseSRTTimestamp(parts[1])
		if err != nil {
			return nil, err
		}
		text := strings.TrimSpace(strings.Join(lines[timing+1:], "\n"))
		if text == "" {
			continue
		}
		cues = append(cues, Cue{Start: start, End: end, Text: text})
	}
	return cues, nil
}

func parseSRTTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	// Normalize period to comma; the SRT standard uses a comma before the
	// milliseconds but period variants are common in the wild.
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}
