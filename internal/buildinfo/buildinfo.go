// Package buildinfo prints the version data injected with -ldflags.
package buildinfo

import (
	"fmt"
	"io"
)

// Set with -ldflags "-X github.com/dmitrijs2005/adatasks/internal/buildinfo.Version=...".
var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// PrintBuildData writes the build version, date and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
