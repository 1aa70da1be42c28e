package mem

import "unsafe"

// SizeOf returns the size in bytes of one element of type T.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Index returns a pointer to the i-th element after p. The caller must
// ensure element i lies within the same allocation as p.
func Index[T any](p *T, i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(p), uintptr(i)*unsafe.Sizeof(*p)))
}

// Distance returns last - first in elements. Both pointers must address
// elements of the same allocation, with first at or before last.
func Distance[T any](first, last *T) int {
	return int((uintptr(unsafe.Pointer(last)) - uintptr(unsafe.Pointer(first))) / unsafe.Sizeof(*first))
}

// Precedes reports whether first addresses memory at or before last.
func Precedes[T any](first, last *T) bool {
	return uintptr(unsafe.Pointer(first)) <= uintptr(unsafe.Pointer(last))
}

// BytePointer reinterprets p as a pointer to its first byte.
func BytePointer[T any](p *T) *byte {
	return (*byte)(unsafe.Pointer(p))
}
