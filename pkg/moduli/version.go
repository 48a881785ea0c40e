// Package moduli exposes module-level metadata shared by the CLI and
// the run-metadata capture.
package moduli

// Version is the moduli sampler release version.
const Version = "0.1.0"
