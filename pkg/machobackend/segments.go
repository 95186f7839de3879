package machobackend

import (
	"debug/macho"

	"objview/pkg/obj"
)

// Segment adapts a *macho.Segment load command into obj.ObjectSegment.
// Unlike ELF's anonymous PT_LOAD entries, Mach-O segments always carry a
// name (e.g. "__TEXT", "__DATA").
type Segment struct {
	backend *Backend
	seg     *macho.Segment
}

func (s *Segment) Address() uint64      { return s.seg.Addr }
func (s *Segment) Size() uint64         { return s.seg.Memsz }
func (s *Segment) Align() uint64        { return 0x1000 }
func (s *Segment) Name() (string, bool) { return s.seg.Name, true }

func (s *Segment) Data() []byte {
	raw, ok := obj.DataRange(s.backend.data, 0, s.seg.Offset, s.seg.Filesz)
	if !ok {
		return nil
	}
	return raw
}

type segmentIterator struct {
	backend *Backend
	loads   []macho.Load
	next    int
}

func (it *segmentIterator) Next() (obj.ObjectSegment, bool) {
	for it.next < len(it.loads) {
		l := it.loads[it.next]
		it.next++
		seg, ok := l.(*macho.Segment)
		if !ok {
			continue
		}
		return &Segment{backend: it.backend, seg: seg}, true
	}
	return nil, false
}

func (b *Backend) Segments() obj.SegmentIterator {
	return &segmentIterator{backend: b, loads: b.file.Loads}
}
