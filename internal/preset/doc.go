// Package preset ships the built-in platform canvases and encoder bundles.
//
// Platforms describe where a composition will be published (canvas size,
// aspect ratio, frame rate, suggested encoder bundle); codecs bundle encoder
// settings under short names. Both tables are fixed at build time, lookups
// are case-insensitive, and the name enumerations are sorted so CLI output
// stays stable.
package preset
