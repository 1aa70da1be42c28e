package contiguous

// AsDynamic widens the view to a dynamic extent. Always safe; the
// pointer and length are unchanged.
func (v View[T]) AsDynamic() View[T] {
	v.st.fixed = 0
	return v
}

// WithExtent rebuilds the view with its extent fixed at n. This is the
// construct-exact path: the view's current length must equal n, and a
// mismatch is a contract violation. Use AsDynamic for the always-safe
// widening direction.
func (v View[T]) WithExtent(n int) View[T] {
	assertf(n >= 0, "contiguous: negative extent %d", n)
	v.st = makeExtent(Extent(n), v.st.size)
	return v
}
