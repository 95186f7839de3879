package wasmbackend

import "objview/pkg/obj"

// emptySymbols backs every symbol-table accessor: this minimal module view
// never decodes the "name" custom section or the function/global index
// spaces into obj.Symbol values (spec.md's Wasm Non-goals).
type emptySymbols struct{}

func (*emptySymbols) Next() (obj.SymbolIndex, obj.Symbol, bool) {
	return 0, obj.Symbol{}, false
}

func (b *Backend) Symbols() obj.SymbolIterator        { return &emptySymbols{} }
func (b *Backend) DynamicSymbols() obj.SymbolIterator { return &emptySymbols{} }

func (b *Backend) SymbolByIndex(obj.SymbolIndex) (obj.Symbol, bool) {
	return obj.Symbol{}, false
}
