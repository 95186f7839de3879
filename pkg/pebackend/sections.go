package pebackend

import (
	"debug/pe"
	"strings"

	"objview/pkg/obj"
)

// IMAGE_SCN_* section characteristic bits. debug/pe exposes the raw
// Characteristics field but not these flag constants, the same
// literal-constant convention elfbackend/machobackend use for bits their
// stdlib backend doesn't name.
const (
	imageScnCntCode              = 0x00000020
	imageScnCntInitializedData   = 0x00000040
	imageScnCntUninitializedData = 0x00000080
	imageScnLnkInfo              = 0x00000200
	imageScnMemExecute           = 0x20000000
	imageScnMemWrite             = 0x80000000
)

// Section adapts a *pe.Section into obj.ObjectSection. PE has no concept
// of segment-scoped sections, so SegmentName always reports ok=false.
type Section struct {
	backend *Backend
	index   obj.SectionIndex
	sec     *pe.Section
}

func (s *Section) Index() obj.SectionIndex     { return s.index }
func (s *Section) Name() (string, bool)        { return s.sec.Name, s.sec.Name != "" }
func (s *Section) SegmentName() (string, bool) { return "", false }
func (s *Section) Address() uint64             { return uint64(s.sec.VirtualAddress) }
func (s *Section) Size() uint64                { return uint64(s.sec.Size) }
func (s *Section) Align() uint64 { return 1 }

func (s *Section) Kind() obj.SectionKind {
	return classifySection(s.sec)
}

func (s *Section) Data() []byte {
	raw, ok := obj.DataRange(s.backend.data, 0, uint64(s.sec.Offset), uint64(s.sec.Size))
	if !ok {
		return nil
	}
	return raw
}

// UncompressedData always equals Data: PE/COFF sections aren't
// transparently compressed at this layer (spec.md §4.4).
func (s *Section) UncompressedData() []byte { return s.Data() }

func (s *Section) Relocations() obj.RelocationIterator {
	return &relocationIterator{backend: s.backend, entries: decodeRelocations(s.backend.data, s.sec.PointerToRelocations, s.sec.NumberOfRelocations)}
}

func classifySection(sec *pe.Section) obj.SectionKind {
	c := sec.Characteristics

	if c&imageScnLnkInfo != 0 {
		return obj.SectionMetadata
	}
	if c&imageScnCntUninitializedData != 0 {
		if strings.EqualFold(sec.Name, ".tls") {
			return obj.SectionUninitializedTls
		}
		return obj.SectionUninitializedData
	}
	if strings.EqualFold(sec.Name, ".tls") {
		return obj.SectionTls
	}
	if c&imageScnCntCode != 0 && c&imageScnMemExecute != 0 {
		return obj.SectionText
	}
	if c&imageScnCntInitializedData != 0 {
		if c&imageScnMemWrite != 0 {
			return obj.SectionData
		}
		return obj.SectionReadOnlyData
	}
	return obj.SectionOther
}

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
