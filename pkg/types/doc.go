// Package types defines the parameter schema, result records, and
// standard error types shared by the moduli sampler's sampling and
// geometry packages.
package types
