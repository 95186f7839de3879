//go:build windows

package objfile

import (
	"fmt"

	"objview/pkg/obj"
)

// NativeFile aliases File on platforms whose native object format is
// PE/COFF. It carries no behavior of its own beyond the compile-time
// single-format constraint the alias documents (spec.md §6).
type NativeFile = File

// ParseNative parses data and requires it to be a PE/COFF file, the
// native format on this platform.
func ParseNative(data []byte) (*NativeFile, error) {
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if f.Format() != obj.FormatPe32 && f.Format() != obj.FormatPe64 {
		return nil, fmt.Errorf("objfile: expected native PE format, got %v", f.Format())
	}
	return f, nil
}
