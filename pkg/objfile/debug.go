package objfile

import (
	"fmt"
	"os"

	"objview/pkg/elfbackend"
	"objview/pkg/machobackend"
	"objview/pkg/pebackend"
	"objview/pkg/wasmbackend"
)

// Verbose gates this package's own diagnostic output, mirroring each
// backend's package-level Verbose switch (Akicuo-expeer's
// analyzer.Analyze(binary, verbose) / xyproto-flapc's VerboseMode global).
var Verbose bool

func debugf(format string, args ...any) {
	if Verbose {
		fmt.Fprintf(os.Stderr, "[objfile] "+format+"\n", args...)
	}
}

// SetVerbose toggles diagnostic output across objfile and every backend it
// dispatches to, so a caller has one knob instead of five.
func SetVerbose(v bool) {
	Verbose = v
	elfbackend.Verbose = v
	machobackend.Verbose = v
	pebackend.Verbose = v
	wasmbackend.Verbose = v
}
