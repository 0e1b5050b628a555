// Package timeline models a video composition as an immutable snapshot of
// ordered layers plus composition-wide options.
//
// A Snapshot is created empty by New and grows through free functions
// (AddVideo, AddAudio, AddText, AddImage, AddFilter) and global setters
// (WithScale, WithAspectRatio, ...). Every builder call returns a new
// Snapshot; existing snapshots are never mutated, so a base composition can
// be extended along independent branches and compiled concurrently without
// coordination.
//
// Marshal and Unmarshal provide a lossless JSON round trip of layers and
// global options. Compiled artifacts are never persisted; compilation is the
// job of the compile package, which reads snapshots through the accessor
// methods only.
package timeline
