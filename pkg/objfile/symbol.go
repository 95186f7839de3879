package objfile

import "objview/pkg/obj"

// SymbolIterator is a single-pass, non-restartable sequence of (index,
// symbol) pairs, in on-disk symbol-table order.
type SymbolIterator struct {
	inner obj.SymbolIterator
}

// Next yields the next (SymbolIndex, Symbol) pair, or ok=false when
// exhausted.
func (it *SymbolIterator) Next() (idx obj.SymbolIndex, sym obj.Symbol, ok bool) {
	return it.inner.Next()
}
