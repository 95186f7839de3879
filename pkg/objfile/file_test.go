package objfile_test

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"objview/pkg/obj"
	"objview/pkg/objfile"
)

// buildMinimalELF64 assembles a tiny little-endian ELF64 x86-64
// executable: one PT_LOAD .text segment and a single global FUNC symbol
// `main`, following the same manual-offset recipe
// pkg/elfbackend/elf_test.go uses for its own fixtures, trimmed down to
// just what the façade-level scenarios in spec.md §8 exercise.
func buildMinimalELF64(textAddr, entry, symAddr, symSize uint64, textSize int) []byte {
	le := binary.LittleEndian

	shstrtab := []byte{0}
	addName := func(name string) uint32 {
		off := uint32(len(shstrtab))
		shstrtab = append(shstrtab, []byte(name)...)
		shstrtab = append(shstrtab, 0)
		return off
	}
	strtab := []byte{0}
	symNameOff := uint32(len(strtab))
	strtab = append(strtab, []byte("main\x00")...)

	symtab := make([]byte, 24*2)
	le.PutUint32(symtab[24+0:], symNameOff)
	symtab[24+4] = byte(elf.STT_FUNC) | byte(elf.STB_GLOBAL)<<4
	le.PutUint16(symtab[24+6:], 1) // st_shndx = .text
	le.PutUint64(symtab[24+8:], symAddr)
	le.PutUint64(symtab[24+16:], symSize)

	type section struct {
		name  string
		typ   uint32
		flags uint64
		addr  uint64
		data  []byte
		align uint64
		link  uint32
		info  uint32
		entsz uint64
	}
	textData := make([]byte, textSize)
	sections := []section{
		{name: ""},
		{name: ".text", typ: uint32(elf.SHT_PROGBITS), flags: uint64(elf.SHF_ALLOC | elf.SHF_EXECINSTR), addr: textAddr, data: textData, align: 16},
	}
	textIdx := 1
	symtabIdx := len(sections)
	sections = append(sections, section{name: ".symtab", typ: uint32(elf.SHT_SYMTAB), data: symtab, align: 8, info: 1, entsz: 24})
	strtabIdx := len(sections)
	sections = append(sections, section{name: ".strtab", typ: uint32(elf.SHT_STRTAB), data: strtab, align: 1})
	sections[symtabIdx].link = uint32(strtabIdx)
	shstrtabIdx := len(sections)
	sections = append(sections, section{name: ".shstrtab", typ: uint32(elf.SHT_STRTAB), align: 1})

	nameOffsets := make([]uint32, len(sections))
	for i, s := range sections {
		nameOffsets[i] = addName(s.name)
	}
	sections[shstrtabIdx].data = shstrtab

	const ehsize, phentsize, shentsize, phnum = 64, 56, 64, 1

	var buf bytes.Buffer
	buf.Write(make([]byte, ehsize))
	phoff := uint64(buf.Len())
	buf.Write(make([]byte, phentsize*phnum))

	offsets := make([]uint64, len(sections))
	for i, s := range sections {
		if s.name == "" || len(s.data) == 0 {
			offsets[i] = uint64(buf.Len())
			continue
		}
		for buf.Len()%8 != 0 {
			buf.WriteByte(0)
		}
		offsets[i] = uint64(buf.Len())
		buf.Write(s.data)
	}
	for buf.Len()%8 != 0 {
		buf.WriteByte(0)
	}
	shoff := uint64(buf.Len())
	buf.Write(make([]byte, shentsize*len(sections)))

	out := buf.Bytes()
	out[0], out[1], out[2], out[3] = 0x7f, 'E', 'L', 'F'
	out[4], out[5], out[6] = 2, 1, 1
	le.PutUint16(out[16:], 2)
	le.PutUint16(out[18:], 0x3e)
	le.PutUint32(out[20:], 1)
	le.PutUint64(out[24:], entry)
	le.PutUint64(out[32:], phoff)
	le.PutUint64(out[40:], shoff)
	le.PutUint16(out[52:], ehsize)
	le.PutUint16(out[54:], phentsize)
	le.PutUint16(out[56:], phnum)
	le.PutUint16(out[58:], shentsize)
	le.PutUint16(out[60:], uint16(len(sections)))
	le.PutUint16(out[62:], uint16(shstrtabIdx))

	ph := out[phoff : phoff+phentsize]
	le.PutUint32(ph[0:], uint32(elf.PT_LOAD))
	le.PutUint32(ph[4:], 5)
	le.PutUint64(ph[8:], offsets[textIdx])
	le.PutUint64(ph[16:], textAddr)
	le.PutUint64(ph[24:], textAddr)
	le.PutUint64(ph[32:], uint64(textSize))
	le.PutUint64(ph[40:], uint64(textSize))
	le.PutUint64(ph[48:], 0x1000)

	for i, s := range sections {
		sh := out[shoff+uint64(i)*shentsize : shoff+uint64(i+1)*shentsize]
		le.PutUint32(sh[0:], nameOffsets[i])
		le.PutUint32(sh[4:], s.typ)
		le.PutUint64(sh[8:], s.flags)
		le.PutUint64(sh[16:], s.addr)
		le.PutUint64(sh[24:], offsets[i])
		le.PutUint64(sh[32:], uint64(len(s.data)))
		le.PutUint32(sh[40:], s.link)
		le.PutUint32(sh[44:], s.info)
		align := s.align
		if align == 0 {
			align = 1
		}
		le.PutUint64(sh[48:], align)
		le.PutUint64(sh[56:], s.entsz)
	}
	return out
}

// TestParseELF64ExecutableScenario exercises spec.md §8 scenario 1 end to
// end through the public façade, not the elfbackend package directly.
func TestParseELF64ExecutableScenario(t *testing.T) {
	data := buildMinimalELF64(0x1000, 0x1040, 0x1040, 0x30, 0x200)

	f, err := objfile.Parse(data)
	require.NoError(t, err)

	assert.Equal(t, obj.FormatElf64, f.Format())
	assert.Equal(t, obj.MachineX86_64, f.Machine())
	assert.Equal(t, uint64(0x1040), f.Entry())

	sec, ok := f.SectionByName(".text")
	require.True(t, ok)
	assert.Equal(t, obj.SectionText, sec.Kind())

	sm := f.SymbolMap()
	got, ok := sm.Get(0x1050)
	require.True(t, ok)
	assert.Equal(t, "main", got.Name)
	assert.Equal(t, uint64(0x1040), got.Address)

	_, ok = sm.Get(0x2000)
	assert.False(t, ok)
}

func TestParseTooShort(t *testing.T) {
	_, err := objfile.Parse([]byte{0x7f, 'E', 'L', 'F'})
	assert.ErrorIs(t, err, obj.ErrFileTooShort)
}

func TestParseUnknownMagic(t *testing.T) {
	_, err := objfile.Parse(make([]byte, 16))
	assert.Error(t, err)
}

func TestParseWasmModule(t *testing.T) {
	data := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	data = append(data, make([]byte, 8)...) // pad past the 16-byte floor

	f, err := objfile.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, obj.FormatWasm, f.Format())
	assert.True(t, f.IsLittleEndian())
	assert.Equal(t, uint64(0), f.Entry())
	_, ok := f.MachUUID()
	assert.False(t, ok)
}

func TestSegmentIteratorExhaustionIsStable(t *testing.T) {
	data := buildMinimalELF64(0x1000, 0x1000, 0x1000, 4, 4)
	f, err := objfile.Parse(data)
	require.NoError(t, err)

	it := f.Segments()
	var count int
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	assert.Equal(t, 1, count)

	// Calling Next again past exhaustion must keep reporting ok=false.
	_, ok := it.Next()
	assert.False(t, ok)
}
