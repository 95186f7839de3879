package pebackend

import (
	"objview/pkg/obj"
)

// Segment adapts a mapped *pe.Section into obj.ObjectSegment. PE has no
// program-header equivalent (spec.md §9: "a loadable memory region
// described in ... the optional header (PE)"), so each section with a
// nonzero virtual address stands in for a loadable region, based at
// ImageBase the way the Windows loader actually maps it.
type Segment struct {
	backend *Backend
	sec     interface {
		Address() uint64
		Size() uint64
		Name() (string, bool)
		Data() []byte
	}
}

func (s *Segment) Address() uint64      { return s.backend.imageBase() + s.sec.Address() }
func (s *Segment) Size() uint64         { return s.sec.Size() }
func (s *Segment) Align() uint64        { return 0x1000 }
func (s *Segment) Name() (string, bool) { return s.sec.Name() }
func (s *Segment) Data() []byte         { return s.sec.Data() }

type segmentIterator struct {
	backend *Backend
	next    int
}

func (it *segmentIterator) Next() (obj.ObjectSegment, bool) {
	sections := it.backend.file.Sections
	for it.next < len(sections) {
		sec := sections[it.next]
		it.next++
		if sec.VirtualAddress == 0 {
			continue
		}
		wrapped := &Section{backend: it.backend, index: obj.SectionIndex(it.next - 1), sec: sec}
		return &Segment{backend: it.backend, sec: wrapped}, true
	}
	return nil, false
}

func (b *Backend) Segments() obj.SegmentIterator {
	return &segmentIterator{backend: b}
}
