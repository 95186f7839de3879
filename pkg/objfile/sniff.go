package objfile

import (
	"encoding/binary"

	"objview/pkg/elfbackend"
	"objview/pkg/machobackend"
	"objview/pkg/obj"
	"objview/pkg/pebackend"
	"objview/pkg/wasmbackend"
)

var wasmMagic = [4]byte{0x00, 0x61, 0x73, 0x6d} // "\0asm"

var elfMagic = [4]byte{0x7f, 'E', 'L', 'F'}

var machoMagics = [][4]byte{
	{0xfe, 0xed, 0xfa, 0xce}, // 32-bit big-endian
	{0xfe, 0xed, 0xfa, 0xcf}, // 64-bit big-endian
	{0xce, 0xfa, 0xed, 0xfe}, // 32-bit little-endian
	{0xcf, 0xfa, 0xed, 0xfe}, // 64-bit little-endian
}

// sniff classifies the first bytes of data per spec.md §4.1 and returns
// the parsed backend, or an error. Callers have already checked len(data)
// >= 16.
func sniff(data []byte) (obj.Object, obj.Format, error) {
	if wasmbackend.Enabled && has4(data, wasmMagic) {
		b, err := wasmbackend.Parse(data)
		if err != nil {
			return nil, obj.FormatUnknown, err
		}
		return b, obj.FormatWasm, nil
	}

	switch {
	case has4(data, elfMagic):
		b, err := elfbackend.Parse(data)
		if err != nil {
			return nil, obj.FormatUnknown, err
		}
		f := obj.FormatElf32
		if b.Is64() {
			f = obj.FormatElf64
		}
		return b, f, nil

	case isMachOMagic(data):
		b, err := machobackend.Parse(data)
		if err != nil {
			return nil, obj.FormatUnknown, err
		}
		f := obj.FormatMachO32
		if b.Is64() {
			f = obj.FormatMachO64
		}
		return b, f, nil

	case isPEMagic(data):
		b, err := pebackend.Parse(data)
		if err != nil {
			return nil, obj.FormatUnknown, err
		}
		f := obj.FormatPe32
		if b.Is64() {
			f = obj.FormatPe64
		}
		return b, f, nil
	}

	return nil, obj.FormatUnknown, obj.ErrUnknownMagic
}

func has4(data []byte, magic [4]byte) bool {
	return len(data) >= 4 && data[0] == magic[0] && data[1] == magic[1] && data[2] == magic[2] && data[3] == magic[3]
}

func isMachOMagic(data []byte) bool {
	for _, m := range machoMagics {
		if has4(data, m) {
			return true
		}
	}
	return false
}

// isPEMagic checks the 'MZ' DOS stub and that e_lfanew (the 32-bit LE
// pointer at offset 0x3C) points to a valid 'PE\0\0' header within data,
// per spec.md §6.
func isPEMagic(data []byte) bool {
	if len(data) < 2 || data[0] != 'M' || data[1] != 'Z' {
		return false
	}
	if len(data) < 0x40 {
		return false
	}
	peOff := binary.LittleEndian.Uint32(data[0x3C:0x40])
	if uint64(peOff)+4 > uint64(len(data)) {
		return false
	}
	sig := data[peOff : peOff+4]
	return sig[0] == 'P' && sig[1] == 'E' && sig[2] == 0 && sig[3] == 0
}
