package obj

// Symbol is an immutable record describing one entry in a symbol table.
// Name borrows from the file's backing buffer.
type Symbol struct {
	Kind         SymbolKind
	SectionIndex SectionIndex
	HasSection   bool
	Undefined    bool
	Global       bool
	Name         string
	HasName      bool
	Address      uint64
	Size         uint64
}
