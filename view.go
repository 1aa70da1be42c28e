// Package contiguous provides View, a non-owning bounded reference to a
// run of contiguous elements: a base pointer plus a length, passed around
// as one cheap value with bounds-aware sub-range and reinterpretation
// operations, none of which copy elements.
//
// A View never allocates, frees, or resizes the storage it references.
// The caller keeps that storage alive and in place for as long as the
// view, or any view derived from it, is in use; reading through a view
// whose storage has been freed or moved is undefined. Concurrent
// mutation of the storage while a view reads it is likewise on the
// caller.
//
// Precondition breaches (out-of-bounds indices, mismatched fixed
// extents, inverted endpoints) panic. Building with the
// contiguous_unchecked tag compiles the checks out.
package contiguous

import (
	"iter"
	"unsafe"

	"github.com/rawbytedev/contiguous/internal/mem"
)

// View references size contiguous elements of type T starting at data.
// Copies of a View copy only the pointer and length; two views may alias
// the same storage with no tracking between them. The zero value is an
// empty dynamic-extent view.
type View[T any] struct {
	data *T
	st   extentStore
}

// New wraps count elements starting at first as a dynamic-extent view.
// first must address at least count valid contiguous elements; it may be
// nil only when count is zero.
func New[T any](first *T, count int) View[T] {
	assertf(count >= 0, "contiguous: negative count %d", count)
	assertf(count == 0 || first != nil, "contiguous: nil base for %d elements", count)
	return View[T]{data: first, st: makeExtent(Dynamic, count)}
}

// Between wraps the elements in [first, last). Requires first at or
// before last within one allocation.
func Between[T any](first, last *T) View[T] {
	assertf(mem.Precedes(first, last), "contiguous: view endpoints out of order")
	return New(first, mem.Distance(first, last))
}

// ViewOf wraps the elements of s. The view aliases s's backing array;
// writes through the view land in s.
func ViewOf[T any](s []T) View[T] {
	if len(s) == 0 {
		return View[T]{}
	}
	return New(&s[0], len(s))
}

// FixedOf is ViewOf with the extent fixed at len(s).
func FixedOf[T any](s []T) View[T] {
	return ViewOf(s).WithExtent(len(s))
}

// Data returns the base pointer, nil for an empty view built without one.
func (v View[T]) Data() *T { return v.data }

// Size returns the element count.
func (v View[T]) Size() int { return v.st.len() }

// SizeBytes returns the element count scaled by the element size.
func (v View[T]) SizeBytes() int { return v.st.len() * mem.SizeOf[T]() }

// Empty reports whether the view has no elements.
func (v View[T]) Empty() bool { return v.st.len() == 0 }

// Extent returns the view's length contract.
func (v View[T]) Extent() Extent { return v.st.extent() }

// At returns a pointer to element i, usable for reads and writes.
// Requires i < Size().
func (v View[T]) At(i int) *T {
	assertf(uint(i) < uint(v.st.len()), "contiguous: index %d out of range [0,%d)", i, v.st.len())
	return mem.Index(v.data, i)
}

// Front returns a pointer to the first element of a non-empty view.
func (v View[T]) Front() *T {
	assertf(!v.Empty(), "contiguous: Front of empty view")
	return v.data
}

// Back returns a pointer to the last element of a non-empty view.
func (v View[T]) Back() *T {
	assertf(!v.Empty(), "contiguous: Back of empty view")
	return mem.Index(v.data, v.st.len()-1)
}

// All returns an index/element iterator over the view. The sequence is
// finite and restartable: ranging twice yields the same elements, and
// iteration never mutates the view.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.st.len(); i++ {
			if !yield(i, *mem.Index(v.data, i)) {
				return
			}
		}
	}
}

// Values is All without the indices.
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.st.len(); i++ {
			if !yield(*mem.Index(v.data, i)) {
				return
			}
		}
	}
}

// Slice reconstructs a Go slice aliasing the viewed storage, zero-copy.
// The slice is subject to the same lifetime caveats as the view itself.
func (v View[T]) Slice() []T {
	if v.st.len() == 0 {
		return nil
	}
	return unsafe.Slice(v.data, v.st.len())
}
