package machobackend

import (
	"bytes"
	"compress/zlib"
	"debug/macho"
	"io"
	"strings"

	"objview/pkg/obj"
)

// Mach-O section type/attribute bits. debug/macho exposes the raw Flags
// field but not these constants, the same gap xyproto-flapc/macho.go fills
// by defining them locally for its writer.
const (
	sectionTypeMask = 0x000000ff

	sRegular               = 0x0
	sZerofill              = 0x1
	sCstringLiterals       = 0x2
	sLiteralPointers       = 0x5
	sNonLazySymbolPointers = 0x6
	sLazySymbolPointers    = 0x7
	sSymbolStubs           = 0x8
	sGbZerofill            = 0xc
	sThreadLocalRegular    = 0x11
	sThreadLocalZerofill   = 0x12
	sThreadLocalVariables  = 0x13

	sAttrPureInstructions = 0x80000000
	sAttrSomeInstructions = 0x00000400
	sAttrDebug            = 0x02000000
)

// Section adapts a *macho.Section into obj.ObjectSection.
type Section struct {
	backend *Backend
	index   obj.SectionIndex
	sec     *macho.Section
}

func (s *Section) Index() obj.SectionIndex { return s.index }
func (s *Section) Name() (string, bool)    { return s.sec.Name, s.sec.Name != "" }
func (s *Section) SegmentName() (string, bool) {
	return s.sec.Seg, s.sec.Seg != ""
}
func (s *Section) Address() uint64 { return s.sec.Addr }
func (s *Section) Size() uint64    { return s.sec.Size }
func (s *Section) Align() uint64   { return uint64(1) << s.sec.Align }

func (s *Section) Kind() obj.SectionKind {
	return classifySection(s.sec)
}

func (s *Section) Data() []byte {
	if s.sec.Flags&sectionTypeMask == sZerofill {
		return nil
	}
	raw, ok := obj.DataRange(s.backend.data, 0, uint64(s.sec.Offset), s.sec.Size)
	if !ok {
		return nil
	}
	return raw
}

// UncompressedData inflates __zdebug_-prefixed sections: a "ZLIB" magic,
// an 8-byte big-endian uncompressed size, then a zlib stream, per spec.md
// §4.4.
func (s *Section) UncompressedData() []byte {
	raw := s.Data()
	if !strings.HasPrefix(s.sec.Name, "__zdebug_") {
		return raw
	}
	out, ok := inflateMachoZdebug(raw)
	if !ok {
		return raw
	}
	return out
}

func inflateMachoZdebug(raw []byte) ([]byte, bool) {
	const header = 12 // "ZLIB"(4) + size(8)
	if len(raw) < header || string(raw[:4]) != "ZLIB" {
		return nil, false
	}
	zr, err := zlib.NewReader(bytes.NewReader(raw[header:]))
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

func (s *Section) Relocations() obj.RelocationIterator {
	return s.backend.relocationsForSection(s.sec)
}

func classifySection(sec *macho.Section) obj.SectionKind {
	typ := sec.Flags & sectionTypeMask
	attrs := sec.Flags &^ sectionTypeMask

	switch typ {
	case sThreadLocalZerofill:
		return obj.SectionUninitializedTls
	case sThreadLocalRegular, sThreadLocalVariables:
		return obj.SectionTls
	case sZerofill, sGbZerofill:
		return obj.SectionUninitializedData
	case sNonLazySymbolPointers, sLazySymbolPointers, sSymbolStubs, sLiteralPointers:
		return obj.SectionMetadata
	}

	if attrs&(sAttrPureInstructions|sAttrSomeInstructions) != 0 {
		return obj.SectionText
	}

	if sec.Seg == "__DWARF" {
		if strings.Contains(sec.Name, "str") {
			return obj.SectionOtherString
		}
		return obj.SectionOther
	}
	if attrs&sAttrDebug != 0 {
		return obj.SectionOther
	}

	if typ == sCstringLiterals {
		if sec.Seg == "__TEXT" {
			return obj.SectionReadOnlyString
		}
		return obj.SectionOtherString
	}

	switch sec.Seg {
	case "__TEXT":
		return obj.SectionReadOnlyData
	case "__DATA", "__DATA_CONST":
		return obj.SectionData
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
