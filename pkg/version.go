// Package ngireports enriches NGI sample reports with project and sample
// fields kept in the status database.
package ngireports

var (
	// Version of ngireports, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
