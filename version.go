// Package webknot provides the version information for the webknot AI core.
package webknot

// Version is the current version of the webknot AI core.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
