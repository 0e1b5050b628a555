package compile

import (
	"fmt"
	"strings"
)

// Input is one deduplicated -i entry. Still-image inputs loop their single
// frame for Duration seconds so they can act as video streams.
type Input struct {
	Source   string
	Loop     bool
	Duration float64
}

// inputSet assigns each distinct source one input index, in order of first
// appearance. Adding a known source returns the existing index unchanged.
type inputSet struct {
	inputs []Input
	index  map[string]int
}

func newInputSet() *inputSet {
	return &inputSet{index: make(map[string]int)}
}

func (s *inputSet) add(source string) int {
	if idx, ok := s.index[source]; ok {
		return idx
	}
	idx := len(s.inputs)
	s.inputs = append(s.inputs, Input{Source: source})
	s.index[source] = idx
	return idx
}

// addImage registers a still-image source. The loop duration of the first
// registration wins; sources are never registered twice.
func (s *inputSet) addImage(source string, duration float64) int {
	if idx, ok := s.index[source]; ok {
		return idx
	}
	idx := len(s.inputs)
	s.inputs = append(s.inputs, Input{Source: source, Loop: true, Duration: duration})
	s.index[source] = idx
	return idx
}

func (s *inputSet) list() []Input {
	return s.inputs
}

// labelState threads the current video and audio stream labels through the
// build. Labels start as input pads ("0:v"); each fragment-emitting step
// consumes the current label and advances it to a fresh synthetic one. Steps
// that emit nothing leave the labels untouched.
type labelState struct {
	video    string
	audio    string
	videoSeq int
	audioSeq int
}

func (l *labelState) nextVideo() string {
	l.videoSeq++
	l.video = fmt.Sprintf("v%d", l.videoSeq)
	return l.video
}

func (l *labelState) nextAudio() string {
	l.audioSeq++
	return fmt.Sprintf("a%d", l.audioSeq)
}

// pad formats a label for splicing into a filter fragment.
func pad(label string) string {
	return "[" + label + "]"
}

// isStreamPad distinguishes raw input pads ("0:v", "2:a") from synthetic
// labels; the two are quoted differently in the serialized command.
func isStreamPad(label string) bool {
	return strings.Contains(label, ":")
}

func videoPad(index int) string { return fmt.Sprintf("%d:v", index) }
func audioPad(index int) string { return fmt.Sprintf("%d:a", index) }
