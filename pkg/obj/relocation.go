package obj

// Relocation is an immutable record describing how to patch a byte range
// once a symbol's address is known. Size is in bits; 0 means the bit width
// is implied by Kind and must not be normalized to a derived width (spec.md
// §9, "Relocation size == 0"). RawKind carries the backend's original
// relocation type code, per spec.md §3's `Other(u32 raw code)` variant; it
// is always populated. Several raw codes can map to the same Kind and Size
// (e.g. Mach-O's X86_64_RELOC_GOT_LOAD and X86_64_RELOC_GOT), so RawKind
// is the only field that tells them apart.
type Relocation struct {
	Kind           RelocationKind
	Size           uint8
	Symbol         SymbolIndex
	RawKind        uint32
	addend         int64
	ImplicitAddend bool
}

// NewRelocation builds a Relocation with the given fields. rawKind is the
// backend's original, unmapped relocation type code.
func NewRelocation(kind RelocationKind, size uint8, symbol SymbolIndex, rawKind uint32, addend int64, implicit bool) Relocation {
	return Relocation{
		Kind:           kind,
		Size:           size,
		Symbol:         symbol,
		RawKind:        rawKind,
		addend:         addend,
		ImplicitAddend: implicit,
	}
}

// Addend returns the constant folded into the relocation computation.
func (r Relocation) Addend() int64 {
	return r.addend
}

// SetAddend is the one exported mutator in the data model; every other
// Relocation field is fixed once a backend constructs the value.
func (r *Relocation) SetAddend(addend int64) {
	r.addend = addend
}
