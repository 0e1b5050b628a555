// Package library persists named compositions in a local SQLite database.
//
// The store keeps one row per composition: a generated id, a unique display
// name, the composition document as JSON, and bookkeeping timestamps. Writes
// retry on SQLITE_BUSY and a lock file beside the database serializes
// concurrent invocations. Lookups accept either an id or a name and report
// misses with ErrNotFound.
package library
