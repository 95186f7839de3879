package objfile

import "objview/pkg/obj"

// RelocationIterator is a single-pass, non-restartable sequence of
// (offset, relocation) pairs, offset being the byte offset within the
// section being relocated.
type RelocationIterator struct {
	inner obj.RelocationIterator
}

// Next yields the next (offset, Relocation) pair, or ok=false when
// exhausted.
func (it *RelocationIterator) Next() (offset uint64, reloc obj.Relocation, ok bool) {
	return it.inner.Next()
}
