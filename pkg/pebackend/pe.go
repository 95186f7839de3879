// Package pebackend implements obj.Object over debug/pe, the same stdlib
// package Akicuo-expeer/pkg/parser/parser.go dispatches to for PE input.
package pebackend

import (
	"bytes"
	"debug/pe"
	"fmt"
	"os"

	"objview/pkg/obj"
)

// Verbose gates diagnostic output, mirroring elfbackend.Verbose.
var Verbose bool

func debugf(format string, args ...any) {
	if Verbose {
		fmt.Fprintf(os.Stderr, "[pebackend] "+format+"\n", args...)
	}
}

// Backend wraps a parsed PE file and the raw bytes it was parsed from.
type Backend struct {
	data []byte
	file *pe.File
}

// Parse parses data as a PE/COFF file. Callers must have already matched
// the 'MZ' magic and a plausible PE header pointer; Parse defers to
// debug/pe and wraps any failure.
func Parse(data []byte) (*Backend, error) {
	f, err := pe.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("pe: %w", err)
	}
	debugf("parsed PE machine=0x%x sections=%d", f.Machine, len(f.Sections))
	return &Backend{data: data, file: f}, nil
}

func (b *Backend) Is64() bool {
	_, ok := b.file.OptionalHeader.(*pe.OptionalHeader64)
	return ok
}

// IsLittleEndian is always true: PE/COFF is defined little-endian.
func (b *Backend) IsLittleEndian() bool { return true }

func (b *Backend) Machine() obj.Machine {
	switch b.file.Machine {
	case pe.IMAGE_FILE_MACHINE_I386:
		return obj.MachineX86
	case pe.IMAGE_FILE_MACHINE_AMD64:
		return obj.MachineX86_64
	case pe.IMAGE_FILE_MACHINE_ARM:
		return obj.MachineArm
	case pe.IMAGE_FILE_MACHINE_ARM64:
		return obj.MachineArm64
	default:
		return obj.MachineOther
	}
}

// Entry resolves ImageBase + AddressOfEntryPoint across both optional
// header widths, since pe.OptionalHeader32/64 aren't a common interface.
func (b *Backend) Entry() uint64 {
	switch oh := b.file.OptionalHeader.(type) {
	case *pe.OptionalHeader64:
		return oh.ImageBase + uint64(oh.AddressOfEntryPoint)
	case *pe.OptionalHeader32:
		return uint64(oh.ImageBase) + uint64(oh.AddressOfEntryPoint)
	default:
		return 0
	}
}

func (b *Backend) imageBase() uint64 {
	switch oh := b.file.OptionalHeader.(type) {
	case *pe.OptionalHeader64:
		return oh.ImageBase
	case *pe.OptionalHeader32:
		return uint64(oh.ImageBase)
	default:
		return 0
	}
}
