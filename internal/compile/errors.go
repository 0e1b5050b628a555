package compile

import "errors"

var (
	// ErrEmptyComposition signals a render request against a snapshot with
	// no layers. Raw command generation still succeeds for empty snapshots;
	// only render-facing entry points reject them.
	ErrEmptyComposition = errors.New("composition has no layers")

	// ErrInvalidAspect signals an aspect-ratio string that is neither a
	// named ratio nor a "W:H" pair of positive integers.
	ErrInvalidAspect = errors.New("invalid aspect ratio")
)
