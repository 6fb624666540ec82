// Package itismatch resolves plant names from checklists against an ITIS
// snapshot and aggregates their native status and germination codes.
package itismatch

var (
	// Version of itismatch, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)
