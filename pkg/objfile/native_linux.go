//go:build linux

package objfile

import (
	"fmt"

	"objview/pkg/obj"
)

// NativeFile aliases File on platforms whose native object format is ELF.
// It carries no behavior of its own beyond the compile-time single-format
// constraint the alias documents (spec.md §6).
type NativeFile = File

// ParseNative parses data and requires it to be an ELF file, the native
// format on this platform.
func ParseNative(data []byte) (*NativeFile, error) {
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if f.Format() != obj.FormatElf32 && f.Format() != obj.FormatElf64 {
		return nil, fmt.Errorf("objfile: expected native ELF format, got %v", f.Format())
	}
	return f, nil
}
