package elfbackend

import (
	"bytes"
	"compress/zlib"
	"debug/elf"
	"io"

	"objview/pkg/obj"
)

// Section adapts an *elf.Section into obj.ObjectSection.
type Section struct {
	backend *Backend
	index   obj.SectionIndex
	sec     *elf.Section
}

func (s *Section) Index() obj.SectionIndex { return s.index }

func (s *Section) Name() (string, bool) {
	return s.sec.Name, s.sec.Name != ""
}

// SegmentName is never populated for ELF; only Mach-O groups sections
// under named segments.
func (s *Section) SegmentName() (string, bool) { return "", false }

func (s *Section) Address() uint64 { return s.sec.Addr }
func (s *Section) Size() uint64    { return s.sec.Size }
func (s *Section) Align() uint64   { return s.sec.Addralign }

func (s *Section) Kind() obj.SectionKind {
	return classifySection(s.sec)
}

// Relocations returns the relocations targeting this section, decoded from
// whichever SHT_REL/SHT_RELA section's sh_info names it.
func (s *Section) Relocations() obj.RelocationIterator {
	return s.backend.relocationsForSection(s.index)
}

// Data returns the section's raw on-disk bytes, compressed or not.
func (s *Section) Data() []byte {
	raw, ok := obj.DataRange(s.backend.data, 0, uint64(s.sec.Offset), s.sec.FileSize)
	if !ok {
		return nil
	}
	return raw
}

// UncompressedData returns the transparently-inflated payload when the
// section carries SHF_COMPRESSED, matching spec.md §4.4: raw bytes are
// returned unchanged if the header can't be parsed or inflate fails.
func (s *Section) UncompressedData() []byte {
	raw := s.Data()
	if s.sec.Flags&elf.SHF_COMPRESSED == 0 {
		return raw
	}
	out, ok := inflateElfCompressed(raw, s.backend.Is64())
	if !ok {
		return raw
	}
	return out
}

// inflateElfCompressed decodes an Elf32_Chdr/Elf64_Chdr header followed by
// a zlib stream, per spec.md §4.4. The header layout is (ch_type uint32,
// ch_size/ch_addralign matching the file's word size, with ELF64 inserting
// a 4-byte reserved field after ch_type).
func inflateElfCompressed(raw []byte, is64 bool) ([]byte, bool) {
	var headerSize int
	if is64 {
		headerSize = 24 // type(4) reserved(4) size(8) addralign(8)
	} else {
		headerSize = 12 // type(4) size(4) addralign(4)
	}
	if len(raw) < headerSize {
		return nil, false
	}
	zr, err := zlib.NewReader(bytes.NewReader(raw[headerSize:]))
	if err != nil {
		return nil, false
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, false
	}
	return out, true
}

func classifySection(sec *elf.Section) obj.SectionKind {
	flags := sec.Flags
	typ := sec.Type

	switch typ {
	case elf.SHT_SYMTAB, elf.SHT_DYNSYM, elf.SHT_STRTAB, elf.SHT_REL, elf.SHT_RELA, elf.SHT_DYNAMIC, elf.SHT_HASH:
		return obj.SectionMetadata
	case elf.SHT_NOBITS:
		if flags&elf.SHF_TLS != 0 {
			return obj.SectionUninitializedTls
		}
		return obj.SectionUninitializedData
	case elf.SHT_NULL:
		return obj.SectionUnknown
	}

	if typ != elf.SHT_PROGBITS && typ != elf.SHT_INIT_ARRAY && typ != elf.SHT_FINI_ARRAY && typ != elf.SHT_NOTE {
		return obj.SectionOther
	}

	if flags&elf.SHF_EXECINSTR != 0 {
		return obj.SectionText
	}
	if flags&elf.SHF_TLS != 0 {
		return obj.SectionTls
	}
	if flags&elf.SHF_ALLOC == 0 {
		if flags&elf.SHF_STRINGS != 0 {
			return obj.SectionOtherString
		}
		return obj.SectionOther
	}
	if flags&elf.SHF_WRITE != 0 {
		return obj.SectionData
	}
	if flags&elf.SHF_STRINGS != 0 {
		return obj.SectionReadOnlyString
	}
	return obj.SectionReadOnlyData
}

// sectionIterator walks b.file.Sections in on-disk order.
type sectionIterator struct {
	backend *Backend
	next    int
}

func (it *sectionIterator) Next() (obj.ObjectSection, bool) {
	if it.next >= len(it.backend.file.Sections) {
		return nil, false
	}
	sec := it.backend.file.Sections[it.next]
	s := &Section{backend: it.backend, index: obj.SectionIndex(it.next), sec: sec}
	it.next++
	return s, true
}

func (b *Backend) Sections() obj.SectionIterator {
	return &sectionIterator{backend: b}
}

func (b *Backend) SectionByName(name string) (obj.ObjectSection, bool) {
	for i, sec := range b.file.Sections {
		if sec.Name == name {
			return &Section{backend: b, index: obj.SectionIndex(i), sec: sec}, true
		}
	}
	return nil, false
}

func (b *Backend) SectionByIndex(idx obj.SectionIndex) (obj.ObjectSection, bool) {
	i := int(idx)
	if i < 0 || i >= len(b.file.Sections) {
		return nil, false
	}
	return &Section{backend: b, index: idx, sec: b.file.Sections[i]}, true
}

func (b *Backend) SectionDataByName(name string) ([]byte, bool) {
	sec, ok := b.SectionByName(name)
	if !ok {
		return nil, false
	}
	return sec.UncompressedData(), true
}
