package wasmbackend

// readULEB128 decodes an unsigned LEB128 integer starting at data[off],
// returning the value, the number of bytes consumed, and whether decoding
// stayed in bounds. No stdlib package decodes Wasm's variable-length
// integers; this is the textbook 7-bits-per-byte algorithm the Wasm binary
// format spec itself defines.
func readULEB128(data []byte, off int) (uint64, int, bool) {
	var result uint64
	var shift uint
	n := 0
	for {
		if off+n >= len(data) {
			return 0, 0, false
		}
		b := data[off+n]
		n++
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, n, true
		}
		shift += 7
		if shift >= 64 {
			return 0, 0, false
		}
	}
}
