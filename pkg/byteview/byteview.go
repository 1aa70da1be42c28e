// Package byteview provides ByteView, an immutable view of bytes backed
// by a contiguous.View. It is the read-only face of a view: accessors
// return values, and exported slices are cloned so holders of a ByteView
// can never mutate the shared storage.
package byteview

import "github.com/rawbytedev/contiguous"

// ByteView holds an immutable view of bytes.
type ByteView struct {
	v contiguous.View[byte]
}

// Of wraps b without copying. The caller must not mutate b while the
// ByteView is in use.
func Of(b []byte) ByteView {
	return ByteView{v: contiguous.ViewOf(b)}
}

// FromView wraps an existing byte view.
func FromView(v contiguous.View[byte]) ByteView {
	return ByteView{v: v}
}

// Len returns the view's length in bytes.
func (bv ByteView) Len() int {
	return bv.v.Size()
}

// At returns the byte at index i. Requires i < Len().
func (bv ByteView) At(i int) byte {
	return *bv.v.At(i)
}

// String returns the viewed bytes as a string. Strings are immutable, so
// this is a safe export (at the cost of a copy).
func (bv ByteView) String() string {
	return string(bv.v.Slice())
}

// ByteSlice returns a copy of the viewed bytes.
func (bv ByteView) ByteSlice() []byte {
	return cloneBytes(bv.v.Slice())
}

// Slice returns a ByteView over bytes [from, to) of the same storage,
// without copying. Requires from <= to <= Len().
func (bv ByteView) Slice(from, to int) ByteView {
	if from < 0 || to < from {
		panic("byteview: invalid slice bounds")
	}
	return ByteView{v: bv.v.Sub(from, to-from)}
}

func cloneBytes(bs []byte) []byte {
	copied := make([]byte, len(bs))
	copy(copied, bs)
	return copied
}
