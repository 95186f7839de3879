package machobackend

import (
	"debug/macho"

	"objview/pkg/obj"
)

// nlist type/flag bits, per <mach-o/nlist.h>. debug/macho's Symbol.Type is
// the raw n_type byte; it is decoded here the same way
// Akicuo-expeer/pkg/parser/parser.go walks f.Symtab.Syms without further
// stdlib help (debug/macho does not classify symbols itself).
const (
	nStab = 0xe0 // if any bit set, a debugging symbol (stab)
	nType = 0x0e // mask for type bits
	nExt  = 0x01 // external (global) symbol

	nUndf = 0x0
	nAbs  = 0x2
	nSect = 0xe
	nPbud = 0xc
	nIndr = 0xa
)

func toObjSymbol(sym macho.Symbol, idx int) obj.Symbol {
	typ := sym.Type
	s := obj.Symbol{
		Name:      sym.Name,
		HasName:   sym.Name != "",
		Address:   sym.Value,
		Global:    typ&nExt != 0,
		Undefined: typ&nType == nUndf,
	}

	if typ&nStab != 0 {
		s.Kind = obj.SymbolUnknown
	} else {
		switch typ & nType {
		case nSect:
			s.Kind = obj.SymbolText
			if int(sym.Sect) > 0 {
				s.SectionIndex = obj.SectionIndex(sym.Sect - 1)
				s.HasSection = true
			}
		case nAbs:
			s.Kind = obj.SymbolData
		case nIndr:
			s.Kind = obj.SymbolUnknown
		case nPbud, nUndf:
			s.Kind = obj.SymbolUnknown
		default:
			s.Kind = obj.SymbolUnknown
		}
	}
	return s
}

type symbolIterator struct {
	syms []macho.Symbol
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

// Symbols returns the Mach-O symbol table. debug/macho doesn't distinguish
// a separate dynamic/import table the way ELF does; DynamicSymbols mirrors
// the same table filtered to undefined (imported) entries, which is the
// closest Mach-O equivalent.
func (b *Backend) Symbols() obj.SymbolIterator {
	return &symbolIterator{syms: b.statSyms}
}

func (b *Backend) DynamicSymbols() obj.SymbolIterator {
	var undefined []macho.Symbol
	for _, s := range b.statSyms {
		if s.Type&nType == nUndf {
			undefined = append(undefined, s)
		}
	}
	return &symbolIterator{syms: undefined}
}

func (b *Backend) SymbolByIndex(idx obj.SymbolIndex) (obj.Symbol, bool) {
	i := int(idx)
	if i < 0 || i >= len(b.statSyms) {
		return obj.Symbol{}, false
	}
	return toObjSymbol(b.statSyms[i], i), true
}
