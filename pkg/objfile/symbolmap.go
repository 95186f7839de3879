package objfile

import (
	"sort"

	"objview/pkg/obj"
)

// SymbolMap is a filtered, address-sorted snapshot of a File's static
// symbol table, built once and read thereafter (spec.md §4.6). It does
// not reflect DynamicSymbols(): the source this spec follows only ever
// feeds SymbolMap from the static table.
type SymbolMap struct {
	syms []obj.Symbol
}

// newSymbolMap admits every symbol from it whose Kind is Unknown, Text, or
// Data, that isn't Undefined, and whose Size is > 0, then sorts the result
// by ascending Address. Ties are broken by insertion (iteration) order,
// which is acceptable because Get returns the first range-containing entry
// the binary search finds, not a unique one.
func newSymbolMap(it *SymbolIterator) *SymbolMap {
	var syms []obj.Symbol
	for {
		_, sym, ok := it.Next()
		if !ok {
			break
		}
		if !admitted(sym) {
			continue
		}
		syms = append(syms, sym)
	}
	sort.SliceStable(syms, func(i, j int) bool {
		return syms[i].Address < syms[j].Address
	})
	return &SymbolMap{syms: syms}
}

func admitted(sym obj.Symbol) bool {
	switch sym.Kind {
	case obj.SymbolUnknown, obj.SymbolText, obj.SymbolData:
	default:
		return false
	}
	return !sym.Undefined && sym.Size > 0
}

// Len reports how many symbols the map admitted.
func (m *SymbolMap) Len() int { return len(m.syms) }

// Get returns the admitted symbol whose half-open range [Address,
// Address+Size) contains addr, if any. When admitted symbols overlap
// (aliases, weak duplicates), any one of the covering symbols may be
// returned; the comparator below is not required to resolve such overlaps
// uniquely (spec.md §9).
func (m *SymbolMap) Get(addr uint64) (obj.Symbol, bool) {
	syms := m.syms
	lo, hi := 0, len(syms)
	for lo < hi {
		mid := (lo + hi) / 2
		s := syms[mid]
		switch {
		case addr < s.Address:
			hi = mid
		case addr >= s.Address+s.Size:
			lo = mid + 1
		default:
			return s, true
		}
	}
	return obj.Symbol{}, false
}
