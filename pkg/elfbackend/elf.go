// Package elfbackend implements obj.Object over debug/elf, the same stdlib
// package Akicuo-expeer/pkg/parser/parser.go dispatches to for ELF input.
package elfbackend

import (
	"bytes"
	"debug/elf"
	"fmt"
	"os"

	"objview/pkg/obj"
)

// Verbose gates diagnostic output, the same on/off switch
// Akicuo-expeer/pkg/analyzer uses for its own verbose-printf tracing.
var Verbose bool

func debugf(format string, args ...any) {
	if Verbose {
		fmt.Fprintf(os.Stderr, "[elfbackend] "+format+"\n", args...)
	}
}

// Backend wraps a parsed ELF file and the raw bytes it was parsed from.
type Backend struct {
	data []byte
	file *elf.File

	statSyms symbolTable
	dynSyms  symbolTable
}

// Parse parses data as an ELF file. Callers must have already matched the
// ELF magic; Parse itself just defers to debug/elf and wraps any failure.
func Parse(data []byte) (*Backend, error) {
	f, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("elf: %w", err)
	}
	debugf("parsed ELF class=%v machine=%v type=%v", f.Class, f.Machine, f.Type)
	b := &Backend{data: data, file: f}
	b.staticSymbols()
	b.dynamicSymbolsRaw()
	return b, nil
}

func (b *Backend) Is64() bool {
	return b.file.Class == elf.ELFCLASS64
}

func (b *Backend) IsLittleEndian() bool {
	return b.file.Data == elf.ELFDATA2LSB
}

func (b *Backend) Machine() obj.Machine {
	switch b.file.Machine {
	case elf.EM_386:
		return obj.MachineX86
	case elf.EM_X86_64:
		return obj.MachineX86_64
	case elf.EM_ARM:
		return obj.MachineArm
	case elf.EM_AARCH64:
		return obj.MachineArm64
	case elf.EM_MIPS:
		return obj.MachineMips
	default:
		return obj.MachineOther
	}
}

func (b *Backend) Entry() uint64 {
	return b.file.Entry
}
