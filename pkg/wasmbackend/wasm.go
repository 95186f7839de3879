// Package wasmbackend implements a minimal obj.Object over raw WebAssembly
// module bytes. No stdlib package decodes Wasm and none of the example
// repos parse it either, so this is a from-scratch section sweep: enough
// to satisfy the capability contract's format/machine/section surface,
// deliberately not a full Wasm toolchain (no custom-section symbol tables,
// no linking-section relocations), matching spec.md's framing of Wasm as
// an optional, minimal module view.
package wasmbackend

import (
	"fmt"
	"os"

	"objview/pkg/obj"
)

// Enabled gates whether the façade's sniffer dispatches `\0asm`-prefixed
// input here at all, mirroring spec.md §4.1 step 2's "Wasm support is
// enabled" condition.
var Enabled = true

// Verbose gates diagnostic output, mirroring the other backends.
var Verbose bool

func debugf(format string, args ...any) {
	if Verbose {
		fmt.Fprintf(os.Stderr, "[wasmbackend] "+format+"\n", args...)
	}
}

var magic = [4]byte{0x00, 0x61, 0x73, 0x6d} // "\0asm"

type wasmSection struct {
	id      byte
	name    string
	hasName bool
	offset  uint64 // payload start, file-relative
	size    uint64 // payload length
}

// Backend wraps a swept (not fully decoded) Wasm module.
type Backend struct {
	data     []byte
	version  uint32
	sections []wasmSection
}

// Parse sweeps data as a Wasm module: magic, version, then a flat sequence
// of (id, uleb128 size, payload) sections, per the Wasm binary format §5.
func Parse(data []byte) (*Backend, error) {
	if len(data) < 8 || data[0] != magic[0] || data[1] != magic[1] || data[2] != magic[2] || data[3] != magic[3] {
		return nil, fmt.Errorf("wasm: bad magic")
	}
	version := uint32(data[4]) | uint32(data[5])<<8 | uint32(data[6])<<16 | uint32(data[7])<<24

	var sections []wasmSection
	off := 8
	for off < len(data) {
		id := data[off]
		off++
		size, n, ok := readULEB128(data, off)
		if !ok {
			break
		}
		off += n
		payloadOff := off
		if uint64(off)+size > uint64(len(data)) {
			break
		}

		sec := wasmSection{id: id, offset: uint64(payloadOff), size: size}
		if id == 0 {
			nameLen, nn, ok := readULEB128(data, payloadOff)
			if ok && uint64(payloadOff)+uint64(nn)+nameLen <= uint64(len(data)) {
				sec.name = string(data[payloadOff+nn : payloadOff+nn+int(nameLen)])
				sec.hasName = true
			}
		}
		sections = append(sections, sec)
		off = payloadOff + int(size)
	}

	debugf("swept %d sections, version=%d", len(sections), version)
	return &Backend{data: data, version: version, sections: sections}, nil
}

func (b *Backend) Is64() bool           { return false }
func (b *Backend) IsLittleEndian() bool { return true }
func (b *Backend) Machine() obj.Machine { return obj.MachineOther }

// Entry is always 0: a Wasm module's start section names a function
// index, not a virtual address, so there is no comparable entry point in
// this model.
func (b *Backend) Entry() uint64 { return 0 }

// Segments is always empty: Wasm has no loadable-region concept
// equivalent to an ELF program header or Mach-O load command.
func (b *Backend) Segments() obj.SegmentIterator { return &emptySegments{} }

type emptySegments struct{}

func (*emptySegments) Next() (obj.ObjectSegment, bool) { return nil, false }
