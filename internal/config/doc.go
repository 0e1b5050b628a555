// Package config loads, normalizes, and validates montage configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files resolved from an explicit path, then
// ~/.config/montage/config.toml, then ./montage.toml. A missing file is not
// an error; defaults apply and the caller learns whether a file was found.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
