package contiguous

import "github.com/rawbytedev/contiguous/internal/mem"

// Bytes reinterprets the viewed memory as a byte view. Zero-copy: the
// result addresses the same storage, so writes through it are visible to
// the source view and vice versa. A fixed extent scales by the element
// size; a dynamic extent stays dynamic.
func (v View[T]) Bytes() View[byte] {
	n := v.SizeBytes()
	ext := Extent(Dynamic)
	if v.st.extent().IsFixed() {
		ext = Extent(n)
	}
	if n == 0 {
		return View[byte]{st: makeExtent(ext, 0)}
	}
	return View[byte]{data: mem.BytePointer(v.data), st: makeExtent(ext, n)}
}
