package obj

// ObjectSegment is the capability contract a backend's loadable-region
// type must satisfy. A Segment borrows its Data from the file buffer the
// backend was parsed from; it never outlives it.
type ObjectSegment interface {
	Address() uint64
	Size() uint64
	Align() uint64
	Name() (string, bool)
	Data() []byte
}

// ObjectSection is the capability contract a backend's named-region type
// must satisfy.
type ObjectSection interface {
	Index() SectionIndex
	Name() (string, bool)
	SegmentName() (string, bool)
	Address() uint64
	Size() uint64
	Align() uint64
	Kind() SectionKind
	Data() []byte
	UncompressedData() []byte

	// Relocations yields this section's (offset, Relocation) pairs, offset
	// being relative to the section itself (§4.3). Formats that don't
	// relocate this section (or at all) return an iterator that is
	// immediately exhausted.
	Relocations() RelocationIterator
}

// SegmentIterator is a single-pass, finite sequence of a backend's
// segments. Calling Next after it is exhausted keeps returning ok=false.
type SegmentIterator interface {
	Next() (seg ObjectSegment, ok bool)
}

// SectionIterator is a single-pass, finite sequence of a backend's
// sections, in on-disk order.
type SectionIterator interface {
	Next() (sec ObjectSection, ok bool)
}

// SymbolIterator is a single-pass, finite sequence of (index, symbol)
// pairs, in on-disk symbol-table order.
type SymbolIterator interface {
	Next() (idx SymbolIndex, sym Symbol, ok bool)
}

// RelocationIterator is a single-pass, finite sequence of (offset,
// relocation) pairs, where offset is the byte offset within the section
// being relocated.
type RelocationIterator interface {
	Next() (offset uint64, reloc Relocation, ok bool)
}

// Object is the capability contract every concrete format backend
// implements (spec.md §4.7). Construction (Parse) is not part of the
// interface: each backend package exposes its own Parse([]byte) function,
// and the façade's sniffer picks the right one by magic before any
// interface value exists.
type Object interface {
	Is64() bool
	IsLittleEndian() bool
	Machine() Machine

	Segments() SegmentIterator

	Sections() SectionIterator
	SectionByName(name string) (ObjectSection, bool)
	SectionByIndex(idx SectionIndex) (ObjectSection, bool)
	SectionDataByName(name string) ([]byte, bool)

	Symbols() SymbolIterator
	DynamicSymbols() SymbolIterator
	SymbolByIndex(idx SymbolIndex) (Symbol, bool)

	HasDebugSymbols() bool
	MachUUID() ([16]byte, bool)
	BuildID() ([]byte, bool)
	GNUDebugLink() (name string, crc uint32, ok bool)

	Entry() uint64
}
