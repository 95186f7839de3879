package pebackend

import (
	"debug/pe"
	"encoding/binary"

	"objview/pkg/obj"
)

// relocEntry is one decoded IMAGE_RELOCATION record (10 bytes on disk).
// The table is decoded by hand from the section's PointerToRelocations/
// NumberOfRelocations raw bytes, the same way elfbackend/machobackend
// decode their own raw relocation tables; debug/pe's parsed Section.Relocs
// is not used.
type relocEntry struct {
	virtualAddress uint32
	symbolIndex    uint32
	typ            uint16
}

func decodeRelocations(data []byte, pointer uint32, count uint16) []relocEntry {
	raw, ok := obj.DataRange(data, 0, uint64(pointer), uint64(count)*10)
	if !ok {
		return nil
	}
	le := binary.LittleEndian
	entries := make([]relocEntry, 0, count)
	for i := 0; i < int(count); i++ {
		off := i * 10
		entries = append(entries, relocEntry{
			virtualAddress: le.Uint32(raw[off:]),
			symbolIndex:    le.Uint32(raw[off+4:]),
			typ:            le.Uint16(raw[off+8:]),
		})
	}
	return entries
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
	r := it.entries[it.next]
	it.next++
	kind, size := it.backend.relocationKind(r.typ)
	return uint64(r.virtualAddress), obj.NewRelocation(kind, size, obj.SymbolIndex(r.symbolIndex), uint32(r.typ), 0, true), true
}

// relocationKind maps a raw IMAGE_REL_* type code, per machine, onto the
// cross-format RelocationKind algebra. The numeric codes are transcribed
// from the PE/COFF spec; debug/pe surfaces Reloc.Type as a raw uint16
// without naming them.
func (b *Backend) relocationKind(typ uint16) (obj.RelocationKind, uint8) {
	switch b.file.Machine {
	case pe.IMAGE_FILE_MACHINE_AMD64:
		switch typ {
		case 0x0001: // IMAGE_REL_AMD64_ADDR64
			return obj.RelocationAbsolute, 64
		case 0x0002: // IMAGE_REL_AMD64_ADDR32
			return obj.RelocationAbsolute, 32
		case 0x0003: // IMAGE_REL_AMD64_ADDR32NB
			return obj.RelocationOther, 0
		case 0x0004: // IMAGE_REL_AMD64_REL32
			return obj.RelocationRelative, 32
		}
	case pe.IMAGE_FILE_MACHINE_I386:
		switch typ {
		case 0x0006: // IMAGE_REL_I386_DIR32
			return obj.RelocationAbsolute, 32
		case 0x0007: // IMAGE_REL_I386_DIR32NB
			return obj.RelocationOther, 0
		case 0x0014: // IMAGE_REL_I386_REL32
			return obj.RelocationRelative, 32
		}
	case pe.IMAGE_FILE_MACHINE_ARM64:
		switch typ {
		case 0x0001: // IMAGE_REL_ARM64_ADDR32
			return obj.RelocationAbsolute, 32
		case 0x000E: // IMAGE_REL_ARM64_ADDR64
			return obj.RelocationAbsolute, 64
		case 0x0003: // IMAGE_REL_ARM64_BRANCH26
			return obj.RelocationRelative, 32
		case 0x0011: // IMAGE_REL_ARM64_REL32
			return obj.RelocationRelative, 32
		}
	}
	return obj.RelocationOther, 0
}
