package pebackend

import (
	"debug/pe"

	"objview/pkg/obj"
)

// COFF symbol storage-class and section-number sentinels, per the PE/COFF
// spec. debug/pe exposes the raw fields but not these named constants.
const (
	imageSymUndefined = 0
	imageSymAbsolute  = -1
	imageSymDebug     = -2

	imageSymClassExternal = 2
	imageSymClassStatic   = 3
	imageSymClassFunction = 101
	imageSymClassFile     = 103
)

func toObjSymbol(sym *pe.Symbol, idx int) obj.Symbol {
	s := obj.Symbol{
		Name:      sym.Name,
		HasName:   sym.Name != "",
		Address:   uint64(sym.Value),
		Undefined: sym.SectionNumber == imageSymUndefined,
		Global:    sym.StorageClass == imageSymClassExternal,
	}

	switch {
	case sym.SectionNumber == imageSymAbsolute:
		// IMAGE_SYM_ABSOLUTE: Value is the symbol's actual value, not a
		// section-relative offset (e.g. a linker-defined constant).
		s.Kind = obj.SymbolData
	case sym.SectionNumber == imageSymDebug:
		// IMAGE_SYM_DEBUG: a debugging symbol (e.g. a .file aux record's
		// companion), not classifiable into the cross-format SymbolKind set.
		s.Kind = obj.SymbolUnknown
	case sym.StorageClass == imageSymClassFile:
		s.Kind = obj.SymbolFile
	case sym.StorageClass == imageSymClassStatic && sym.Value == 0:
		// A static-class symbol at offset 0 with a section's own name
		// conventionally names the section itself.
		s.Kind = obj.SymbolSection
	case sym.StorageClass == imageSymClassFunction, sym.Type>>4 == 0x2:
		s.Kind = obj.SymbolText
	case sym.SectionNumber > 0:
		s.Kind = obj.SymbolData
	default:
		s.Kind = obj.SymbolUnknown
	}

	if sym.SectionNumber > 0 {
		s.SectionIndex = obj.SectionIndex(sym.SectionNumber - 1)
		s.HasSection = true
	}
	return s
}

type symbolIterator struct {
	syms []*pe.Symbol
	next int
}

func (it *symbolIterator) Next() (obj.SymbolIndex, obj.Symbol, bool) {
	if it.next >= len(it.syms) {
		return 0, obj.Symbol{}, false
	}
	idx := obj.SymbolIndex(it.next)
	sym := toObjSymbol(it.syms[it.next], it.next)
	it.next++
	return idx, sym, true
}

// Symbols returns the COFF symbol table.
func (b *Backend) Symbols() obj.SymbolIterator {
	return &symbolIterator{syms: b.file.Symbols}
}

// DynamicSymbols returns the imported symbol names, resolved through
// pe.File.ImportedSymbols the same way Akicuo-expeer/pkg/parser/parser.go
// populates Binary.Imports, wrapped as undefined Symbol values since the
// import table doesn't carry addresses before the loader binds them.
func (b *Backend) DynamicSymbols() obj.SymbolIterator {
	names, err := b.file.ImportedSymbols()
	if err != nil {
		debugf("imported symbols: %v", err)
		return &symbolIterator{}
	}
	syms := make([]*pe.Symbol, len(names))
	for i, name := range names {
		syms[i] = &pe.Symbol{Name: name, SectionNumber: imageSymUndefined}
	}
	return &symbolIterator{syms: syms}
}

func (b *Backend) SymbolByIndex(idx obj.SymbolIndex) (obj.Symbol, bool) {
	i := int(idx)
	if i < 0 || i >= len(b.file.Symbols) {
		return obj.Symbol{}, false
	}
	return toObjSymbol(b.file.Symbols[i], i), true
}
