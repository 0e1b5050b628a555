// Package preflight verifies the environment a rendered command will run
// in, without ever spawning the engine.
//
// The CLI "montage doctor" command renders each Result as a table row.
// Checks cover the engine binaries (ffmpeg, ffprobe), read/write access to
// the library directory, and free disk space on the filesystem holding it.
// Compilation itself never needs these checks to pass; they exist so a
// user learns about a missing binary or a full disk before pasting the
// command into a shell.
package preflight
