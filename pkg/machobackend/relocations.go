package machobackend

import (
	"debug/macho"
	"encoding/binary"

	"objview/pkg/obj"
)

// relocEntry is one decoded (non-scattered) Mach-O relocation_info entry.
type relocEntry struct {
	address uint32
	symbol  uint32
	pcRel   bool
	length  uint8 // 0=byte,1=word,2=long,3=quad
	extern  bool
	typ     uint8
}

// decodeRelocations manually walks a section's Reloff/Nreloc raw table
// rather than using debug/macho's parsed Section.Relocs: each 8-byte
// relocation_info entry is decoded by hand the same way elfbackend
// decodes SHT_REL/SHT_RELA, and scattered entries (the top bit of
// r_address set) are skipped since this inspection-only core never needs
// to apply them.
func decodeRelocations(data []byte, order binary.ByteOrder, count int) []relocEntry {
	var out []relocEntry
	for i := 0; i < count; i++ {
		off := i * 8
		if off+8 > len(data) {
			break
		}
		word0 := order.Uint32(data[off : off+4])
		if word0&0x80000000 != 0 {
			continue // scattered relocation, not supported
		}
		word1 := order.Uint32(data[off+4 : off+8])
		out = append(out, relocEntry{
			address: word0,
			symbol:  word1 & 0xffffff,
			pcRel:   (word1>>24)&0x1 != 0,
			length:  uint8((word1 >> 25) & 0x3),
			extern:  (word1>>27)&0x1 != 0,
			typ:     uint8((word1 >> 28) & 0xf),
		})
	}
	return out
}

type relocationIterator struct {
	backend *Backend
	entries []relocEntry
	next    int
}

func (it *relocationIterator) Next() (uint64, obj.Relocation, bool) {
	if it.next >= len(it.entries) {
		return 0, obj.Relocation{}, false
	}
	e := it.entries[it.next]
	it.next++
	kind, size := it.backend.relocationKind(e.typ, e.length)
	return uint64(e.address), obj.NewRelocation(kind, size, obj.SymbolIndex(e.symbol), uint32(e.typ), 0, true), true
}

func (b *Backend) relocationsForSection(sec *macho.Section) obj.RelocationIterator {
	raw, ok := obj.DataRange(b.data, 0, uint64(sec.Reloff), uint64(sec.Nreloc)*8)
	if !ok {
		return &relocationIterator{backend: b}
	}
	entries := decodeRelocations(raw, b.file.ByteOrder, int(sec.Nreloc))
	return &relocationIterator{backend: b, entries: entries}
}

// relocationKind maps the 4-bit r_type (interpreted per CPU, since Mach-O
// reuses the same field number for different meanings on each
// architecture) onto the cross-format RelocationKind algebra.
func (b *Backend) relocationKind(typ uint8, length uint8) (obj.RelocationKind, uint8) {
	size := uint8(8) << length
	switch b.file.Cpu {
	case macho.CpuAmd64:
		switch typ {
		case 0: // X86_64_RELOC_UNSIGNED
			return obj.RelocationAbsolute, size
		case 1: // X86_64_RELOC_SIGNED
			return obj.RelocationAbsoluteSigned, size
		case 2: // X86_64_RELOC_BRANCH
			return obj.RelocationRelative, size
		case 3, 4: // X86_64_RELOC_GOT_LOAD / X86_64_RELOC_GOT
			return obj.RelocationGotRelative, size
		}
	case macho.CpuArm64:
		switch typ {
		case 0: // ARM64_RELOC_UNSIGNED
			return obj.RelocationAbsolute, size
		case 2: // ARM64_RELOC_BRANCH26
			return obj.RelocationRelative, size
		case 3, 4: // ARM64_RELOC_PAGE21 / PAGEOFF12
			return obj.RelocationRelative, size
		case 5, 6: // ARM64_RELOC_GOT_LOAD_PAGE21 / PAGEOFF12
			return obj.RelocationGotRelative, size
		}
	}
	return obj.RelocationOther, 0
}
