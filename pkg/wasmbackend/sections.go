package wasmbackend

import (
	"strings"

	"objview/pkg/obj"
)

// Wasm section ids, per the binary format spec §5.5.
const (
	secCustom    = 0
	secType      = 1
	secImport    = 2
	secFunction  = 3
	secTable     = 4
	secMemory    = 5
	secGlobal    = 6
	secExport    = 7
	secStart     = 8
	secElement   = 9
	secCode      = 10
	secData      = 11
	secDataCount = 12
)

var sectionIDNames = map[byte]string{
	secCustom:    "custom",
	secType:      "type",
	secImport:    "import",
	secFunction:  "function",
	secTable:     "table",
	secMemory:    "memory",
	secGlobal:    "global",
	secExport:    "export",
	secStart:     "start",
	secElement:   "element",
	secCode:      "code",
	secData:      "data",
	secDataCount: "datacount",
}

// Section adapts a swept wasmSection into obj.ObjectSection. Non-custom
// sections take their name from the standard id table; custom sections
// use their embedded name.
type Section struct {
	backend *Backend
	index   obj.SectionIndex
	sec     wasmSection
}

func (s *Section) Index() obj.SectionIndex { return s.index }

func (s *Section) Name() (string, bool) {
	if s.sec.id == secCustom {
		return s.sec.name, s.sec.hasName
	}
	name, ok := sectionIDNames[s.sec.id]
	return name, ok
}

// SegmentName is never populated: Wasm has no Mach-O-style named segments.
func (s *Section) SegmentName() (string, bool) { return "", false }

// Address is always 0: Wasm sections aren't placed at a virtual address
// the way ELF/Mach-O/PE sections are; they're sequential regions of the
// module's own byte stream.
func (s *Section) Address() uint64 { return 0 }
func (s *Section) Size() uint64    { return s.sec.size }
func (s *Section) Align() uint64   { return 1 }

func (s *Section) Kind() obj.SectionKind {
	switch s.sec.id {
	case secCode:
		return obj.SectionText
	case secData:
		return obj.SectionData
	case secCustom:
		if strings.HasPrefix(s.sec.name, "name") || strings.Contains(s.sec.name, "str") {
			return obj.SectionOtherString
		}
		return obj.SectionOther
	case secType, secImport, secFunction, secTable, secGlobal, secExport, secElement, secDataCount:
		return obj.SectionMetadata
	default:
		return obj.SectionUnknown
	}
}

func (s *Section) Data() []byte {
	raw, ok := obj.DataRange(s.backend.data, 0, s.sec.offset, s.sec.size)
	if !ok {
		return nil
	}
	return raw
}

// UncompressedData always equals Data: Wasm sections are never stored
// compressed at this layer (spec.md §4.4).
func (s *Section) UncompressedData() []byte { return s.Data() }

// Relocations is always empty: linking-section relocations are outside
// this minimal module view's scope.
func (s *Section) Relocations() obj.RelocationIterator { return &emptyRelocations{} }

type emptyRelocations struct{}

func (*emptyRelocations) Next() (uint64, obj.Relocation, bool) { return 0, obj.Relocation{}, false }

type sectionIterator struct {
	backend *Backend
	next    int
}

func (it *sectionIterator) Next() (obj.ObjectSection, bool) {
	if it.next >= len(it.backend.sections) {
		return nil, false
	}
	sec := it.backend.sections[it.next]
	s := &Section{backend: it.backend, index: obj.SectionIndex(it.next), sec: sec}
	it.next++
	return s, true
}

func (b *Backend) Sections() obj.SectionIterator {
	return &sectionIterator{backend: b}
}

func (b *Backend) SectionByName(name string) (obj.ObjectSection, bool) {
	for i, sec := range b.sections {
		s := &Section{backend: b, index: obj.SectionIndex(i), sec: sec}
		if n, ok := s.Name(); ok && n == name {
			return s, true
		}
	}
	return nil, false
}

func (b *Backend) SectionByIndex(idx obj.SectionIndex) (obj.ObjectSection, bool) {
	i := int(idx)
	if i < 0 || i >= len(b.sections) {
		return nil, false
	}
	return &Section{backend: b, index: idx, sec: b.sections[i]}, true
}

func (b *Backend) SectionDataByName(name string) ([]byte, bool) {
	sec, ok := b.SectionByName(name)
	if !ok {
		return nil, false
	}
	return sec.UncompressedData(), true
}
