// Package buildinfo holds version data injected at build time, e.g.
//
//	go build -ldflags "-X github.com/dmitrijs2005/kcc/internal/buildinfo.Version=1.0.0" ./cmd/kcc
package buildinfo

import (
	"fmt"
	"io"
	"runtime"
)

// Set via -ldflags.
var (
	Version = "N/A"
	Commit  = "N/A"
	Date    = "N/A"
)

// Short is the version shown by "kcc --version".
func Short() string {
	return "kcc " + Version
}

// PrintBuildData writes version, commit, date and toolchain to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
	fmt.Fprintf(w, "Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
