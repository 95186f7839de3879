package elfbackend

import (
	"encoding/binary"
	"strings"

	"objview/pkg/obj"
)

// MachUUID is not meaningful for ELF.
func (b *Backend) MachUUID() ([16]byte, bool) { return [16]byte{}, false }

// HasDebugSymbols reports whether any .debug_* section is present.
func (b *Backend) HasDebugSymbols() bool {
	for _, sec := range b.file.Sections {
		if strings.HasPrefix(sec.Name, ".debug_") {
			return true
		}
	}
	return false
}

// BuildID returns the payload of .note.gnu.build-id, if present. ELF note
// records (even in 64-bit files) use 4-byte namesz/descsz/type fields
// followed by the name and description, each padded up to a 4-byte
// boundary.
func (b *Backend) BuildID() ([]byte, bool) {
	sec, ok := b.SectionByName(".note.gnu.build-id")
	if !ok {
		return nil, false
	}
	data := sec.Data()
	return firstNoteDescriptor(data, "GNU", b.file.ByteOrder)
}

// firstNoteDescriptor walks ELF note records using order, the file's own
// byte order: namesz/descsz/type are native-endian fields, not fixed
// little-endian, so a big-endian object (e.g. big-endian MIPS) must be
// read with binary.BigEndian or these fields misparse.
func firstNoteDescriptor(data []byte, wantName string, order binary.ByteOrder) ([]byte, bool) {
	for len(data) >= 12 {
		nameSz := order.Uint32(data[0:4])
		descSz := order.Uint32(data[4:8])
		data = data[12:]

		nameEnd := align4(nameSz)
		if uint64(nameEnd) > uint64(len(data)) {
			return nil, false
		}
		name := strings.TrimRight(string(data[:nameSz]), "\x00")
		data = data[nameEnd:]

		descEnd := align4(descSz)
		if uint64(descEnd) > uint64(len(data)) {
			return nil, false
		}
		desc := data[:descSz]
		data = data[descEnd:]

		if wantName == "" || name == wantName {
			return desc, true
		}
	}
	return nil, false
}

func align4(n uint32) uint32 {
	return (n + 3) &^ 3
}

// GNUDebugLink parses .gnu_debuglink: a NUL-terminated filename, padded to
// a 4-byte boundary, followed by a little-endian CRC32.
func (b *Backend) GNUDebugLink() (string, uint32, bool) {
	sec, ok := b.SectionByName(".gnu_debuglink")
	if !ok {
		return "", 0, false
	}
	data := sec.Data()
	nul := indexByte(data, 0)
	if nul < 0 {
		return "", 0, false
	}
	name := string(data[:nul])
	crcOffset := align4(uint32(nul + 1))
	rng, ok := obj.DataRange(data, 0, uint64(crcOffset), 4)
	if !ok {
		return "", 0, false
	}
	crc := binary.LittleEndian.Uint32(rng)
	return name, crc, true
}

func indexByte(data []byte, b byte) int {
	for i, c := range data {
		if c == b {
			return i
		}
	}
	return -1
}
