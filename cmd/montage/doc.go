// Package main hosts the montage CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into composition
// compiles, library operations, recipe scaffolding, and environment
// diagnostics. It centralizes configuration resolution, logger setup, and
// output-mode selection so subcommands can focus on user experience.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
