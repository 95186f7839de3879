package elfbackend

import (
	"debug/elf"
	"encoding/binary"

	"objview/pkg/obj"
)

// relocEntry is one decoded Rel/Rela entry, independent of ELF class.
type relocEntry struct {
	offset uint64
	symbol uint32
	typ    uint32
	addend int64
	hasA   bool
}

// decodeRelocSection manually walks a SHT_REL/SHT_RELA section's raw
// bytes, the same approach
// Manu343726-cucaracha/pkg/hw/cpu/llvm/binaryfileparser.go takes for ARM
// relocations: debug/elf does not expose a parsed relocation table, so the
// entries are decoded by hand from r_offset/r_info(/r_addend).
func decodeRelocSection(sec *elf.Section, order binary.ByteOrder, is64 bool, rela bool) ([]relocEntry, error) {
	data, err := sec.Data()
	if err != nil {
		return nil, err
	}

	var entries []relocEntry
	if is64 {
		entSize := 16
		if rela {
			entSize = 24
		}
		for off := 0; off+entSize <= len(data); off += entSize {
			e := data[off : off+entSize]
			r := relocEntry{
				offset: order.Uint64(e[0:8]),
				symbol: uint32(order.Uint64(e[8:16]) >> 32),
				typ:    uint32(order.Uint64(e[8:16])),
			}
			if rela {
				r.addend = int64(order.Uint64(e[16:24]))
				r.hasA = true
			}
			entries = append(entries, r)
		}
	} else {
		entSize := 8
		if rela {
			entSize = 12
		}
		for off := 0; off+entSize <= len(data); off += entSize {
			e := data[off : off+entSize]
			info := order.Uint32(e[4:8])
			r := relocEntry{
				offset: uint64(order.Uint32(e[0:4])),
				symbol: info >> 8,
				typ:    info & 0xff,
			}
			if rela {
				r.addend = int64(int32(order.Uint32(e[8:12])))
				r.hasA = true
			}
			entries = append(entries, r)
		}
	}
	return entries, nil
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
	kind, size := it.backend.relocationKind(e.typ)
	return e.offset, obj.NewRelocation(kind, size, obj.SymbolIndex(e.symbol), e.typ, e.addend, !e.hasA), true
}

// Relocations returns every relocation found across the file's SHT_REL and
// SHT_RELA sections, in on-disk order of the sections themselves. This is
// an elfbackend-specific extension beyond the obj.Object contract (the
// contract surfaces relocations per-section through the façade instead;
// see objfile/relocation.go), kept here so backend tests can assert on it
// directly without going through the façade.
func (b *Backend) Relocations() []obj.Relocation {
	var out []obj.Relocation
	order := b.file.ByteOrder
	for _, sec := range b.file.Sections {
		rela := sec.Type == elf.SHT_RELA
		if sec.Type != elf.SHT_REL && !rela {
			continue
		}
		entries, err := decodeRelocSection(sec, order, b.Is64(), rela)
		if err != nil {
			continue
		}
		for _, e := range entries {
			kind, size := b.relocationKind(e.typ)
			out = append(out, obj.NewRelocation(kind, size, obj.SymbolIndex(e.symbol), e.typ, e.addend, !e.hasA))
		}
	}
	return out
}

// relocationsForSection returns the decoded (offset, relocation) pairs for
// the SHT_REL/SHT_RELA section whose sh_info points at targetIndex.
func (b *Backend) relocationsForSection(targetIndex obj.SectionIndex) obj.RelocationIterator {
	order := b.file.ByteOrder
	var entries []relocEntry
	for _, sec := range b.file.Sections {
		rela := sec.Type == elf.SHT_RELA
		if sec.Type != elf.SHT_REL && !rela {
			continue
		}
		// sh_info on a SHT_REL[A] section names the section being relocated.
		if obj.SectionIndex(sec.Info) != targetIndex {
			continue
		}
		decoded, err := decodeRelocSection(sec, order, b.Is64(), rela)
		if err != nil {
			continue
		}
		entries = append(entries, decoded...)
	}
	return &relocationIterator{backend: b, entries: entries}
}

// relocationKind maps a raw relocation type code, per machine, onto the
// cross-format RelocationKind algebra (spec.md §3). Unknown codes fall
// back to RelocationOther; the caller (Next/Relocations) threads the
// original typ through to Relocation.RawKind so it is never lost, and
// size=0 here is only the "bit width implied by kind" sentinel, unrelated
// to the raw code.
func (b *Backend) relocationKind(typ uint32) (obj.RelocationKind, uint8) {
	switch b.file.Machine {
	case elf.EM_X86_64:
		switch elf.R_X86_64(typ) {
		case elf.R_X86_64_64:
			return obj.RelocationAbsolute, 64
		case elf.R_X86_64_32:
			return obj.RelocationAbsolute, 32
		case elf.R_X86_64_32S:
			return obj.RelocationAbsoluteSigned, 32
		case elf.R_X86_64_PC32:
			return obj.RelocationRelative, 32
		case elf.R_X86_64_GOT32:
			return obj.RelocationGotOffset, 32
		case elf.R_X86_64_GOTPCREL:
			return obj.RelocationGotRelative, 32
		case elf.R_X86_64_PLT32:
			return obj.RelocationPltRelative, 32
		}
	case elf.EM_386:
		switch elf.R_386(typ) {
		case elf.R_386_32:
			return obj.RelocationAbsolute, 32
		case elf.R_386_PC32:
			return obj.RelocationRelative, 32
		case elf.R_386_GOT32:
			return obj.RelocationGotOffset, 32
		case elf.R_386_PLT32:
			return obj.RelocationPltRelative, 32
		case elf.R_386_GOTPC:
			return obj.RelocationGotRelative, 32
		}
	case elf.EM_AARCH64:
		switch elf.R_AARCH64(typ) {
		case elf.R_AARCH64_ABS64:
			return obj.RelocationAbsolute, 64
		case elf.R_AARCH64_ABS32:
			return obj.RelocationAbsolute, 32
		case elf.R_AARCH64_PREL64:
			return obj.RelocationRelative, 64
		case elf.R_AARCH64_PREL32:
			return obj.RelocationRelative, 32
		}
	case elf.EM_ARM:
		switch elf.R_ARM(typ) {
		case elf.R_ARM_ABS32:
			return obj.RelocationAbsolute, 32
		case elf.R_ARM_REL32:
			return obj.RelocationRelative, 32
		case elf.R_ARM_GOT32:
			return obj.RelocationGotOffset, 32
		case elf.R_ARM_PLT32:
			return obj.RelocationPltRelative, 32
		}
	}
	return obj.RelocationOther, 0
}
