package pebackend

import "debug/pe"

// imageDirectoryEntryDebug is the data-directory index carrying the debug
// directory (CodeView/PDB pointer), per the PE/COFF spec; debug/pe's
// OptionalHeader32/64 expose DataDirectory as a plain array without
// naming the slots.
const imageDirectoryEntryDebug = 6

// MachUUID is not meaningful for PE.
func (b *Backend) MachUUID() ([16]byte, bool) { return [16]byte{}, false }

// BuildID is ELF-only.
func (b *Backend) BuildID() ([]byte, bool) { return nil, false }

// GNUDebugLink is ELF-only.
func (b *Backend) GNUDebugLink() (string, uint32, bool) { return "", 0, false }

// HasDebugSymbols reports whether the optional header's debug data
// directory entry is populated, per spec.md §4.2.
func (b *Backend) HasDebugSymbols() bool {
	switch oh := b.file.OptionalHeader.(type) {
	case *pe.OptionalHeader64:
		return debugDirSize(oh.DataDirectory[:], oh.NumberOfRvaAndSizes) > 0
	case *pe.OptionalHeader32:
		return debugDirSize(oh.DataDirectory[:], oh.NumberOfRvaAndSizes) > 0
	default:
		return false
	}
}

func debugDirSize(dirs []pe.DataDirectory, count uint32) uint32 {
	if imageDirectoryEntryDebug >= int(count) || imageDirectoryEntryDebug >= len(dirs) {
		return 0
	}
	return dirs[imageDirectoryEntryDebug].Size
}
