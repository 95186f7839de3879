package obj

// Error is the single textual error kind the core dispatcher produces
// (spec.md §7). Backends are free to return any error of their own; those
// propagate unchanged, wrapped with fmt.Errorf("...: %w", err) by the
// façade, the same way Akicuo-expeer/pkg/parser/parser.go wraps
// debug/elf's, debug/macho's, and debug/pe's own errors.
type Error string

func (e Error) Error() string { return string(e) }

// Sentinel diagnostics of the core dispatcher. File.Parse returns
// ErrFileTooShort and ErrUnknownMagic; no code path returns ErrBadMagic.
const (
	ErrFileTooShort Error = "File too short"
	ErrBadMagic     Error = "Could not parse file magic"
	ErrUnknownMagic Error = "Unknown file magic"
)
