// Package objfile is the unified, read-only façade over ELF, Mach-O,
// PE/COFF, and Wasm object files (spec.md §4.2). It owns exactly one
// parsed backend per File and forwards every call to it; nothing here
// parses format bytes directly.
package objfile

import (
	"fmt"

	"objview/pkg/obj"
)

// File is the root entity: one parsed backend, tagged by the Format it was
// recognized as. It borrows data for its entire lifetime and is never
// mutated after Parse returns.
type File struct {
	data   []byte
	format obj.Format
	obj    obj.Object
}

// Parse classifies data and dispatches to the matching backend, per
// spec.md §4.1. The returned File borrows data; callers must keep it alive
// for the File's lifetime.
func Parse(data []byte) (*File, error) {
	if len(data) < 16 {
		return nil, obj.ErrFileTooShort
	}
	backend, format, err := sniff(data)
	if err != nil {
		return nil, fmt.Errorf("objfile: %w", err)
	}
	debugf("parsed format=%v machine=%v", format, backend.Machine())
	return &File{data: data, format: format, obj: backend}, nil
}

// Format reports the container and bitness File was recognized as.
func (f *File) Format() obj.Format { return f.format }

// Machine reports the target CPU, derived from the backend's own header
// fields.
func (f *File) Machine() obj.Machine { return f.obj.Machine() }

// IsLittleEndian reports the file's byte order; Wasm is always
// little-endian.
func (f *File) IsLittleEndian() bool { return f.obj.IsLittleEndian() }

// Entry returns the program's entry virtual address, or 0 if the format
// has none (e.g. a relocatable object, or a Wasm module).
func (f *File) Entry() uint64 { return f.obj.Entry() }

// HasDebugSymbols reports a format-specific heuristic: ELF looks for
// .debug_* sections, Mach-O for STAB entries or a __DWARF segment, PE for
// a populated debug directory entry.
func (f *File) HasDebugSymbols() bool { return f.obj.HasDebugSymbols() }

// MachUUID returns the Mach-O LC_UUID payload, or ok=false on every other
// format.
func (f *File) MachUUID() (uuid [16]byte, ok bool) { return f.obj.MachUUID() }

// BuildID returns the ELF .note.gnu.build-id payload, or ok=false on every
// other format.
func (f *File) BuildID() ([]byte, bool) { return f.obj.BuildID() }

// GNUDebugLink returns the ELF .gnu_debuglink's (name, crc32) pair, or
// ok=false on every other format or if the section is absent.
func (f *File) GNUDebugLink() (name string, crc uint32, ok bool) { return f.obj.GNUDebugLink() }

// Segments returns a single-pass iterator over the file's loadable
// regions, in on-disk order.
func (f *File) Segments() *SegmentIterator {
	return &SegmentIterator{inner: f.obj.Segments()}
}

// Sections returns a single-pass iterator over the file's sections, in
// on-disk order.
func (f *File) Sections() *SectionIterator {
	return &SectionIterator{inner: f.obj.Sections()}
}

// SectionByName returns the first section named name in iteration order,
// or ok=false if none matches.
func (f *File) SectionByName(name string) (*Section, bool) {
	s, ok := f.obj.SectionByName(name)
	if !ok {
		return nil, false
	}
	return &Section{inner: s}, true
}

// SectionByIndex returns the section at idx, or ok=false if idx is out of
// range.
func (f *File) SectionByIndex(idx obj.SectionIndex) (*Section, bool) {
	s, ok := f.obj.SectionByIndex(idx)
	if !ok {
		return nil, false
	}
	return &Section{inner: s}, true
}

// SectionDataByName returns the named section's uncompressed data, or
// ok=false if no section has that name.
func (f *File) SectionDataByName(name string) ([]byte, bool) {
	return f.obj.SectionDataByName(name)
}

// Symbols returns a single-pass iterator over the file's static symbol
// table, in on-disk order.
func (f *File) Symbols() *SymbolIterator {
	return &SymbolIterator{inner: f.obj.Symbols()}
}

// DynamicSymbols returns a single-pass iterator over the file's
// dynamic/import symbol table, or an immediately-exhausted iterator if the
// format has none.
func (f *File) DynamicSymbols() *SymbolIterator {
	return &SymbolIterator{inner: f.obj.DynamicSymbols()}
}

// SymbolByIndex returns the symbol at idx from the static table, or
// ok=false if idx is out of range.
func (f *File) SymbolByIndex(idx obj.SymbolIndex) (obj.Symbol, bool) {
	return f.obj.SymbolByIndex(idx)
}

// SymbolMap builds a filtered, address-sorted snapshot of Symbols() for
// address→symbol lookup, per spec.md §4.6.
func (f *File) SymbolMap() *SymbolMap {
	return newSymbolMap(f.Symbols())
}
