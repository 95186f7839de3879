package elfbackend

import (
	"debug/elf"

	"objview/pkg/obj"
)

// Segment adapts an *elf.Prog (program header entry) into
// obj.ObjectSegment. ELF segments are never named; Name always reports
// ok=false.
type Segment struct {
	backend *Backend
	prog    *elf.Prog
}

func (s *Segment) Address() uint64      { return s.prog.Vaddr }
func (s *Segment) Size() uint64         { return s.prog.Memsz }
func (s *Segment) Align() uint64        { return s.prog.Align }
func (s *Segment) Name() (string, bool) { return "", false }

func (s *Segment) Data() []byte {
	raw, ok := obj.DataRange(s.backend.data, 0, s.prog.Off, s.prog.Filesz)
	if !ok {
		return nil
	}
	return raw
}

type segmentIterator struct {
	backend *Backend
	next    int
}

func (it *segmentIterator) Next() (obj.ObjectSegment, bool) {
	progs := it.backend.file.Progs
	for it.next < len(progs) {
		p := progs[it.next]
		it.next++
		if p.Type != elf.PT_LOAD {
			continue
		}
		return &Segment{backend: it.backend, prog: p}, true
	}
	return nil, false
}

func (b *Backend) Segments() obj.SegmentIterator {
	return &segmentIterator{backend: b}
}
