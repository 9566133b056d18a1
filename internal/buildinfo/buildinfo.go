// Package buildinfo exposes version metadata injected at link time.
//
// The variables are meant to be set via -ldflags, for example:
//
//	go build -ldflags "-X 'github.com/greengrove/backoffice/internal/buildinfo.BuildVersion=v1.0.0'"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	BuildVersion = "N/A"
	BuildDate    = "N/A"
	BuildCommit  = "N/A"
)

// PrintBuildData writes the build metadata to w, one line per field.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", BuildVersion)
	fmt.Fprintf(w, "Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "Build commit: %s\n", BuildCommit)
}
