// Package compile turns a timeline snapshot into a single FFmpeg-compatible
// command line.
//
// Compilation is a pure function of the snapshot: no I/O, no process
// execution, no randomness. Identical snapshots always produce byte-identical
// commands, so callers may compile as often as they like and diff the output.
//
// The pipeline runs in fixed stages. Build deduplicates inputs (one -i per
// unique source, first-appearance order), chooses between the image-sequence
// fast path and the general overlay graph, and threads synthetic stream
// labels through every emitted filter fragment. Command serializes the
// resulting graph together with encoder options, stream maps, and the output
// path into one command string; RenderCommand additionally rejects empty
// compositions.
//
// Geometry resolution is namespace-aware: text fragments address the canvas
// as w/h with element size text_w/text_h, while overlay fragments use
// main_w/main_h and overlay_w/overlay_h. The GeometryContext parameter makes
// the namespace an explicit input rather than something inferred from the
// call site.
package compile
