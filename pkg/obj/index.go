package obj

// SectionIndex is an opaque dense index identifying a section within its
// file. Backends assign their own numbering; the core makes no assumption
// about contiguity or a base value.
type SectionIndex int

// SymbolIndex is an opaque dense index identifying a symbol within one of
// a file's symbol tables.
type SymbolIndex int
