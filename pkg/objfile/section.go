package objfile

import "objview/pkg/obj"

// Section is the façade's tagged wrapper over a backend's named, typed
// region.
type Section struct {
	inner obj.ObjectSection
}

// Index returns the section's opaque, backend-assigned dense index.
func (s *Section) Index() obj.SectionIndex { return s.inner.Index() }

// Name returns the section's name, when the format stores one.
func (s *Section) Name() (string, bool) { return s.inner.Name() }

// SegmentName returns the name of the segment this section belongs to,
// populated only by Mach-O-style formats.
func (s *Section) SegmentName() (string, bool) { return s.inner.SegmentName() }

// Address returns the section's virtual address.
func (s *Section) Address() uint64 { return s.inner.Address() }

// Size returns the section's size in bytes.
func (s *Section) Size() uint64 { return s.inner.Size() }

// Align returns the section's alignment, a power of two or 0.
func (s *Section) Align() uint64 { return s.inner.Align() }

// Kind returns the section's format-independent classification (spec.md
// §4.5).
func (s *Section) Kind() obj.SectionKind { return s.inner.Kind() }

// Data returns the section's raw on-disk bytes, compressed or not.
func (s *Section) Data() []byte { return s.inner.Data() }

// UncompressedData returns the section's payload, transparently inflated
// when the section is stored compressed; it equals Data() otherwise, or
// if decompression failed.
func (s *Section) UncompressedData() []byte { return s.inner.UncompressedData() }

// DataRange returns the sub-slice of Data covering [addr, addr+size), or
// ok=false if that range doesn't lie fully within the section and its
// backing bytes (spec.md §4.4).
func (s *Section) DataRange(addr, size uint64) ([]byte, bool) {
	return obj.DataRange(s.inner.Data(), s.inner.Address(), addr, size)
}

// Relocations returns this section's (offset, Relocation) pairs, offset
// being relative to the section itself.
func (s *Section) Relocations() *RelocationIterator {
	return &RelocationIterator{inner: s.inner.Relocations()}
}

// SectionIterator is a single-pass, non-restartable sequence of Section
// bound to the File it was produced from.
type SectionIterator struct {
	inner obj.SectionIterator
}

// Next yields the next Section in on-disk order, or ok=false when
// exhausted.
func (it *SectionIterator) Next() (sec *Section, ok bool) {
	s, ok := it.inner.Next()
	if !ok {
		return nil, false
	}
	return &Section{inner: s}, true
}
