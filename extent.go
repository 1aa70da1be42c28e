package contiguous

// Dynamic marks an extent whose length is known only at run time. It is
// also the "rest of the view" sentinel accepted by Sub and SubFixed.
const Dynamic = -1

// Extent is a view's length contract: either Dynamic, or a fixed element
// count settled when the view is built. A fixed extent never changes for
// the lifetime of the view that carries it.
type Extent int

// IsFixed reports whether e is a fixed count rather than Dynamic.
func (e Extent) IsFixed() bool { return e != Dynamic }

// Compatible reports whether a view with extent e can be rebuilt under
// extent other: either side is Dynamic, or both are the same fixed count.
// Fixing a dynamic view additionally needs its runtime length verified,
// which WithExtent does.
func (e Extent) Compatible(other Extent) bool {
	return e == Dynamic || other == Dynamic || e == other
}

// extentStore pairs the extent contract with the runtime count. fixed
// holds the extent plus one so the zero value reads as an empty dynamic
// view. makeExtent enforces agreement between a fixed extent and the
// count, the tagged-representation stand-in for a compile-time length.
type extentStore struct {
	fixed int // 0 = dynamic; n+1 = extent fixed at n
	size  int
}

func makeExtent(ext Extent, count int) extentStore {
	if ext.IsFixed() {
		assertf(count == int(ext), "contiguous: count %d does not match fixed extent %d", count, int(ext))
		return extentStore{fixed: int(ext) + 1, size: count}
	}
	assertf(count >= 0, "contiguous: negative count %d", count)
	return extentStore{size: count}
}

func (s extentStore) extent() Extent {
	if s.fixed == 0 {
		return Dynamic
	}
	return Extent(s.fixed - 1)
}

func (s extentStore) len() int { return s.size }
