package obj

// SectionKind is the format-independent classification of a Section, per
// the mapping table in spec.md §4.5.
type SectionKind int

const (
	SectionUnknown SectionKind = iota
	SectionText
	SectionData
	SectionReadOnlyData
	SectionReadOnlyString
	SectionUninitializedData
	SectionTls
	SectionUninitializedTls
	SectionOtherString
	SectionOther
	SectionMetadata
)

func (k SectionKind) String() string {
	switch k {
	case SectionText:
		return "Text"
	case SectionData:
		return "Data"
	case SectionReadOnlyData:
		return "ReadOnlyData"
	case SectionReadOnlyString:
		return "ReadOnlyString"
	case SectionUninitializedData:
		return "UninitializedData"
	case SectionTls:
		return "Tls"
	case SectionUninitializedTls:
		return "UninitializedTls"
	case SectionOtherString:
		return "OtherString"
	case SectionOther:
		return "Other"
	case SectionMetadata:
		return "Metadata"
	default:
		return "Unknown"
	}
}

// SymbolKind classifies a Symbol's role.
type SymbolKind int

const (
	SymbolUnknown SymbolKind = iota
	SymbolNull
	SymbolText
	SymbolData
	SymbolSection
	SymbolFile
	SymbolCommon
	SymbolTls
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolNull:
		return "Null"
	case SymbolText:
		return "Text"
	case SymbolData:
		return "Data"
	case SymbolSection:
		return "Section"
	case SymbolFile:
		return "File"
	case SymbolCommon:
		return "Common"
	case SymbolTls:
		return "Tls"
	default:
		return "Unknown"
	}
}

// RelocationKind is the algebraic representation of how a relocation's
// value is computed. Conventions (spec.md §3): A=addend, S=symbol address,
// P=place, G=GOT entry address, GOT=GOT base, L=PLT entry address.
type RelocationKind int

const (
	// RelocationAbsolute computes S+A, treated as unsigned.
	RelocationAbsolute RelocationKind = iota
	// RelocationAbsoluteSigned computes S+A, treated as signed.
	RelocationAbsoluteSigned
	// RelocationRelative computes S+A-P.
	RelocationRelative
	// RelocationGotOffset computes G+A-GOT.
	RelocationGotOffset
	// RelocationGotRelative computes G+A-P.
	RelocationGotRelative
	// RelocationPltRelative computes L+A-P.
	RelocationPltRelative
	// RelocationOther marks a relocation that doesn't map cleanly onto one
	// of the computations above; the backend's raw type code is carried
	// separately in Relocation.RawKind, per spec.md §3's `Other(u32 raw
	// code)` variant.
	RelocationOther
)

func (k RelocationKind) String() string {
	switch k {
	case RelocationAbsolute:
		return "Absolute"
	case RelocationAbsoluteSigned:
		return "AbsoluteSigned"
	case RelocationRelative:
		return "Relative"
	case RelocationGotOffset:
		return "GotOffset"
	case RelocationGotRelative:
		return "GotRelative"
	case RelocationPltRelative:
		return "PltRelative"
	default:
		return "Other"
	}
}
