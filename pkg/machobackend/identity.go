package machobackend

// MachUUID scans load commands for LC_UUID (0x1b). debug/macho does not
// expose a typed UUID load command, so this reads the raw load-command
// bytes directly, the same "define the constant you need locally"
// approach Manu343726-cucaracha/pkg/hw/cpu/llvm/binaryfileparser.go takes
// for ARM relocation codes debug/elf doesn't name.
const lcUUID = 0x1b

func (b *Backend) MachUUID() ([16]byte, bool) {
	order := b.file.ByteOrder
	for _, l := range b.file.Loads {
		raw := l.Raw()
		if len(raw) < 8 {
			continue
		}
		if order.Uint32(raw[0:4]) != lcUUID {
			continue
		}
		if len(raw) < 24 {
			continue
		}
		var uuid [16]byte
		copy(uuid[:], raw[8:24])
		return uuid, true
	}
	return [16]byte{}, false
}

// HasDebugSymbols reports STAB entries in the symbol table or the presence
// of a __DWARF segment, per spec.md §4.2.
func (b *Backend) HasDebugSymbols() bool {
	for _, s := range b.statSyms {
		if s.Type&nStab != 0 {
			return true
		}
	}
	return b.file.Segment("__DWARF") != nil
}

// BuildID has no Mach-O equivalent in this model; UUID serves that role
// via MachUUID instead.
func (b *Backend) BuildID() ([]byte, bool) { return nil, false }

// GNUDebugLink is ELF-only.
func (b *Backend) GNUDebugLink() (string, uint32, bool) { return "", 0, false }
