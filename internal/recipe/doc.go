// Package recipe builds common composition shapes on top of the timeline
// builders: photo slideshows, voice-over ducking, burned-in captions with
// SRT import/export, and randomized pan/zoom motion for stills.
//
// Recipes only assemble snapshots; they never compile or render. The one
// source of nondeterminism, Ken Burns motion selection, takes an explicit
// randomness source so callers can fix a seed and get reproducible output.
package recipe
