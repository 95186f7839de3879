package objfile

import "objview/pkg/obj"

// Segment is the façade's tagged wrapper over a backend's loadable
// region. It borrows Data from the File it came from and never outlives
// it.
type Segment struct {
	inner obj.ObjectSegment
}

// Address returns the segment's virtual address.
func (s *Segment) Address() uint64 { return s.inner.Address() }

// Size returns the segment's memory footprint in bytes.
func (s *Segment) Size() uint64 { return s.inner.Size() }

// Align returns the segment's alignment, a power of two or 0.
func (s *Segment) Align() uint64 { return s.inner.Align() }

// Name returns the segment's textual name, when the format provides one
// (Mach-O); ok=false otherwise.
func (s *Segment) Name() (string, bool) { return s.inner.Name() }

// Data returns the segment's backing bytes, borrowed from the file
// buffer.
func (s *Segment) Data() []byte { return s.inner.Data() }

// DataRange returns the sub-slice of Data covering [addr, addr+size), or
// ok=false if that range doesn't lie fully within the segment (spec.md
// §4.4).
func (s *Segment) DataRange(addr, size uint64) ([]byte, bool) {
	return obj.DataRange(s.inner.Data(), s.inner.Address(), addr, size)
}

// SegmentIterator is a single-pass, non-restartable sequence of Segment
// bound to the File it was produced from. Next on an exhausted iterator
// keeps returning ok=false.
type SegmentIterator struct {
	inner obj.SegmentIterator
}

// Next yields the next Segment in on-disk order, or ok=false when
// exhausted.
func (it *SegmentIterator) Next() (seg *Segment, ok bool) {
	s, ok := it.inner.Next()
	if !ok {
		return nil, false
	}
	return &Segment{inner: s}, true
}
