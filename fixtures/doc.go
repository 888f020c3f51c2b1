// Package fixtures generates synthetic elevation grids for tests and
// examples: flat planes, constant slopes, conical peaks, cliff walls, and
// ridges. A small set of deterministic, documented generators stands in
// for fixture files.
package fixtures
