package pebackend

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"objview/pkg/obj"
)

// buildPE64 assembles a minimal PE32+ (x86-64) image: a DOS stub header,
// COFF file header, a 64-bit optional header, one ".text" section, and a
// single COFF symbol table entry. Field widths and offsets follow the
// PE/COFF spec directly, the same incremental-offset technique
// elfbackend/machobackend's test fixtures use.
type pe64Fixture struct {
	imageBase uint64
	textAddr  uint32
	textData  []byte
	entryRVA  uint32
	symName   string
}

func buildPE64(f pe64Fixture) []byte {
	le := binary.LittleEndian

	const dosHeaderSize = 64
	const peOffset = dosHeaderSize
	const coffHeaderSize = 20
	const optHeaderSize = 240
	const sectionHeaderSize = 40
	const symbolEntrySize = 18

	coffOff := peOffset + 4
	optOff := coffOff + coffHeaderSize
	sectOff := optOff + optHeaderSize
	textOff := sectOff + sectionHeaderSize
	symOff := textOff + len(f.textData)
	strOff := symOff + symbolEntrySize
	total := strOff + 4

	out := make([]byte, total)

	// DOS header: magic "MZ" + e_lfanew at 0x3C.
	out[0], out[1] = 'M', 'Z'
	le.PutUint32(out[0x3C:], uint32(peOffset))

	// PE signature.
	copy(out[peOffset:], "PE\x00\x00")

	// COFF file header.
	le.PutUint16(out[coffOff:], 0x8664) // IMAGE_FILE_MACHINE_AMD64
	le.PutUint16(out[coffOff+2:], 1)    // NumberOfSections
	le.PutUint32(out[coffOff+4:], 0)    // TimeDateStamp
	le.PutUint32(out[coffOff+8:], uint32(symOff))
	le.PutUint32(out[coffOff+12:], 1) // NumberOfSymbols
	le.PutUint16(out[coffOff+16:], optHeaderSize)
	le.PutUint16(out[coffOff+18:], 0x0002|0x0020) // EXECUTABLE_IMAGE | LARGE_ADDRESS_AWARE

	// Optional header (PE32+).
	oh := out[optOff : optOff+optHeaderSize]
	le.PutUint16(oh[0:], 0x20b) // PE32+ magic
	le.PutUint32(oh[16:], f.entryRVA)
	le.PutUint64(oh[24:], f.imageBase)
	le.PutUint32(oh[32:], 0x1000) // SectionAlignment
	le.PutUint32(oh[36:], 0x200)  // FileAlignment
	// NumberOfRvaAndSizes sits at offset 108 within the optional header
	// (240 total - 128 for DataDirectory - 4 for NumberOfRvaAndSizes
	// itself, the field immediately before DataDirectory).
	le.PutUint32(oh[108:], 16)

	// Section header ".text".
	sh := out[sectOff : sectOff+sectionHeaderSize]
	copy(sh[0:8], ".text")
	le.PutUint32(sh[8:], uint32(len(f.textData)))  // VirtualSize
	le.PutUint32(sh[12:], f.textAddr)              // VirtualAddress
	le.PutUint32(sh[16:], uint32(len(f.textData))) // SizeOfRawData
	le.PutUint32(sh[20:], uint32(textOff))         // PointerToRawData
	le.PutUint32(sh[36:], (0x00000020 | 0x20000000 | 0x40000000))

	copy(out[textOff:], f.textData)

	// COFF symbol table: one entry, name inline (<=8 bytes).
	sym := out[symOff : symOff+symbolEntrySize]
	copy(sym[0:8], f.symName)
	le.PutUint32(sym[8:], 0)  // Value
	le.PutUint16(sym[12:], 1) // SectionNumber (1-based, .text)
	le.PutUint16(sym[14:], 0x20)
	sym[16] = imageSymClassExternal
	sym[17] = 0 // NumberOfAuxSymbols

	// String table: 4-byte size prefix, no overflow strings needed.
	le.PutUint32(out[strOff:], 4)

	return out
}

func TestParsePE64ExecutableScenario(t *testing.T) {
	text := make([]byte, 0x40)
	for i := range text {
		text[i] = 0x90
	}

	data := buildPE64(pe64Fixture{
		imageBase: 0x140000000,
		textAddr:  0x1000,
		textData:  text,
		entryRVA:  0x1000,
		symName:   "main",
	})

	b, err := Parse(data)
	require.NoError(t, err)

	assert.True(t, b.Is64())
	assert.True(t, b.IsLittleEndian())
	assert.Equal(t, obj.MachineX86_64, b.Machine())
	assert.Equal(t, uint64(0x140001000), b.Entry())

	sec, ok := b.SectionByName(".text")
	require.True(t, ok)
	assert.Equal(t, obj.SectionText, sec.Kind())
	assert.Equal(t, uint64(0x1000), sec.Address())

	foundMain := false
	it := b.Symbols()
	for {
		_, sym, ok := it.Next()
		if !ok {
			break
		}
		if sym.Name == "main" {
			foundMain = true
			assert.True(t, sym.Global)
			assert.Equal(t, obj.SymbolText, sym.Kind)
		}
	}
	assert.True(t, foundMain)
}

func TestParsePETooShort(t *testing.T) {
	_, err := Parse([]byte{'M', 'Z'})
	assert.Error(t, err)
}
