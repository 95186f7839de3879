// Package machobackend implements obj.Object over debug/macho, the same
// stdlib package Akicuo-expeer/pkg/parser/parser.go dispatches to for
// Mach-O input.
package machobackend

import (
	"bytes"
	"debug/macho"
	"encoding/binary"
	"fmt"
	"os"

	"objview/pkg/obj"
)

// Verbose gates diagnostic output, mirroring elfbackend.Verbose.
var Verbose bool

func debugf(format string, args ...any) {
	if Verbose {
		fmt.Fprintf(os.Stderr, "[machobackend] "+format+"\n", args...)
	}
}

// Backend wraps a parsed Mach-O file and the raw bytes it was parsed from.
// Fat (universal) binaries are not unwrapped here; Parse is only ever
// handed a single-architecture Mach-O by the façade's sniffer.
type Backend struct {
	data []byte
	file *macho.File

	statSyms []macho.Symbol
}

// Parse parses data as a (thin) Mach-O file. Callers must have already
// matched one of the four Mach-O magic words; Parse defers to debug/macho
// and wraps any failure.
func Parse(data []byte) (*Backend, error) {
	f, err := macho.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("macho: %w", err)
	}
	debugf("parsed Mach-O cpu=%v type=%v ncmd=%d", f.Cpu, f.Type, f.Ncmd)
	b := &Backend{data: data, file: f}
	if f.Symtab != nil {
		b.statSyms = f.Symtab.Syms
	}
	return b, nil
}

func (b *Backend) Is64() bool {
	switch b.file.Magic {
	case macho.Magic64:
		return true
	default:
		return false
	}
}

func (b *Backend) IsLittleEndian() bool {
	return b.file.ByteOrder == binary.LittleEndian
}

func (b *Backend) Machine() obj.Machine {
	switch b.file.Cpu {
	case macho.Cpu386:
		return obj.MachineX86
	case macho.CpuAmd64:
		return obj.MachineX86_64
	case macho.CpuArm:
		return obj.MachineArm
	case macho.CpuArm64:
		return obj.MachineArm64
	default:
		return obj.MachineOther
	}
}

// Entry scans load commands for LC_MAIN, the modern (non-LC_UNIXTHREAD)
// entry point command. debug/macho exposes neither in typed form, so this
// walks the raw load-command bytes the same way identity.go walks them
// for LC_UUID. LC_MAIN's entryoff is a __TEXT-relative file offset, so it
// is rebased onto the __TEXT segment's virtual address.
func (b *Backend) Entry() uint64 {
	const lcMain = 0x80000028
	order := b.file.ByteOrder
	for _, l := range b.file.Loads {
		raw := l.Raw()
		if len(raw) < 16 || order.Uint32(raw[0:4]) != lcMain {
			continue
		}
		entryOff := order.Uint64(raw[8:16])
		if text := b.file.Segment("__TEXT"); text != nil {
			return text.Addr + entryOff
		}
		return entryOff
	}
	return 0
}
