package obj

// DataRange implements spec.md §4.4's shared bounded-slicing helper: given
// the address the backing data begins at (dataAddress) and the size of
// data itself, return the byte range covering [rangeAddress,
// rangeAddress+size) or ok=false if that range doesn't fit fully inside
// data. All arithmetic is checked so overflow never panics and never
// silently wraps into a bogus "valid" range.
func DataRange(data []byte, dataAddress, rangeAddress uint64, size uint64) ([]byte, bool) {
	if rangeAddress < dataAddress {
		return nil, false
	}
	offset := rangeAddress - dataAddress
	end, overflow := addOverflows(offset, size)
	if overflow {
		return nil, false
	}
	if end > uint64(len(data)) {
		return nil, false
	}
	return data[offset:end], true
}

// addOverflows reports whether a+b overflows a uint64, returning the sum
// when it doesn't.
func addOverflows(a, b uint64) (sum uint64, overflow bool) {
	sum = a + b
	return sum, sum < a
}
