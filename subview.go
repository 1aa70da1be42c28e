package contiguous

import "github.com/rawbytedev/contiguous/internal/mem"

// Sub returns a dynamic-extent view over count elements of the same
// storage starting at offset. Passing Dynamic as count takes everything
// from offset on. Requires offset <= Size() and count <= Size()-offset.
// No elements are copied.
func (v View[T]) Sub(offset, count int) View[T] {
	assertf(offset >= 0 && offset <= v.st.len(), "contiguous: offset %d out of range [0,%d]", offset, v.st.len())
	if count == Dynamic {
		count = v.st.len() - offset
	}
	assertf(count >= 0 && count <= v.st.len()-offset, "contiguous: count %d out of range [0,%d]", count, v.st.len()-offset)
	if count == 0 {
		return View[T]{}
	}
	return View[T]{data: mem.Index(v.data, offset), st: makeExtent(Dynamic, count)}
}

// First returns the prefix of count elements. Requires count <= Size().
func (v View[T]) First(count int) View[T] {
	assertf(count >= 0 && count <= v.st.len(), "contiguous: count %d out of range [0,%d]", count, v.st.len())
	return v.Sub(0, count)
}

// Last returns the suffix of count elements. Requires count <= Size().
func (v View[T]) Last(count int) View[T] {
	assertf(count >= 0 && count <= v.st.len(), "contiguous: count %d out of range [0,%d]", count, v.st.len())
	return v.Sub(v.st.len()-count, count)
}

// SubFixed is Sub with the result's extent fixed, for callers that want
// to carry the length contract forward. With count == Dynamic the result
// covers the rest of the view; its extent is fixed only when v's own
// extent is, matching how a known length propagates through a suffix.
func (v View[T]) SubFixed(offset, count int) View[T] {
	sub := v.Sub(offset, count)
	if count == Dynamic && !v.st.extent().IsFixed() {
		return sub
	}
	return sub.WithExtent(sub.st.len())
}

// FirstFixed is First with the result's extent fixed at count.
func (v View[T]) FirstFixed(count int) View[T] {
	return v.First(count).WithExtent(count)
}

// LastFixed is Last with the result's extent fixed at count.
func (v View[T]) LastFixed(count int) View[T] {
	return v.Last(count).WithExtent(count)
}
