package elfbackend

import (
	"debug/elf"

	"objview/pkg/obj"
)

func toObjSymbol(sym elf.Symbol) obj.Symbol {
	kind := symbolKind(elf.ST_TYPE(sym.Info))
	bind := elf.ST_BIND(sym.Info)

	s := obj.Symbol{
		Kind:      kind,
		Undefined: sym.Section == elf.SHN_UNDEF,
		Global:    bind == elf.STB_GLOBAL || bind == elf.STB_WEAK,
		Name:      sym.Name,
		HasName:   sym.Name != "",
		Address:   sym.Value,
		Size:      sym.Size,
	}
	if sym.Section < elf.SHN_LORESERVE {
		s.SectionIndex = obj.SectionIndex(sym.Section)
		s.HasSection = true
	}
	return s
}

func symbolKind(t elf.SymType) obj.SymbolKind {
	switch t {
	case elf.STT_NOTYPE:
		return obj.SymbolNull
	case elf.STT_OBJECT:
		return obj.SymbolData
	case elf.STT_FUNC:
		return obj.SymbolText
	case elf.STT_SECTION:
		return obj.SymbolSection
	case elf.STT_FILE:
		return obj.SymbolFile
	case elf.STT_COMMON:
		return obj.SymbolCommon
	case elf.STT_TLS:
		return obj.SymbolTls
	default:
		return obj.SymbolUnknown
	}
}

// symbolTable caches the decoded static or dynamic symbol table so
// repeated iteration/by-index lookups don't re-parse the section. Parse
// fills both caches, so afterwards they are only read.
type symbolTable struct {
	syms []elf.Symbol
	err  error
	done bool
}

func (b *Backend) staticSymbols() []elf.Symbol {
	if !b.statSyms.done {
		syms, err := b.file.Symbols()
		if err != nil && err != elf.ErrNoSymbols {
			debugf("static symbols: %v", err)
		}
		b.statSyms.syms = syms
		b.statSyms.done = true
	}
	return b.statSyms.syms
}

func (b *Backend) dynamicSymbolsRaw() []elf.Symbol {
	if !b.dynSyms.done {
		syms, err := b.file.DynamicSymbols()
		if err != nil && err != elf.ErrNoSymbols {
			debugf("dynamic symbols: %v", err)
		}
		b.dynSyms.syms = syms
		b.dynSyms.done = true
	}
	return b.dynSyms.syms
}

type symbolIterator struct {
	syms []elf.Symbol
	next int
}

func (it *symbolIterator) Next() (obj.SymbolIndex, obj.Symbol, bool) {
	if it.next >= len(it.syms) {
		return 0, obj.Symbol{}, false
	}
	idx := obj.SymbolIndex(it.next)
	sym := toObjSymbol(it.syms[it.next])
	it.next++
	return idx, sym, true
}

func (b *Backend) Symbols() obj.SymbolIterator {
	return &symbolIterator{syms: b.staticSymbols()}
}

func (b *Backend) DynamicSymbols() obj.SymbolIterator {
	return &symbolIterator{syms: b.dynamicSymbolsRaw()}
}

func (b *Backend) SymbolByIndex(idx obj.SymbolIndex) (obj.Symbol, bool) {
	syms := b.staticSymbols()
	i := int(idx)
	if i < 0 || i >= len(syms) {
		return obj.Symbol{}, false
	}
	return toObjSymbol(syms[i]), true
}
