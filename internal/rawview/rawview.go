package rawview

import "unsafe"

// Raw, unchecked views into the backing array of a slice.
//
// SAFETY:
//   - Nothing here checks bounds. Callers must only pass indexes that lie
//     inside the slice the base pointer was taken from.
//   - Views returned from Segment alias the caller's array. Handing out
//     several writable views at once is only sound when their index sets are
//     pairwise disjoint, which is exactly what disjoint.Validate establishes.
//   - The views must not outlive the slice they were derived from in any way
//     that lets the array be reallocated (e.g. append on the original).

// Base returns a pointer to the first element of seq's backing array.
// It is nil for a nil slice and must not be dereferenced for an empty one.
func Base[T any](seq []T) *T {
	return unsafe.SliceData(seq)
}

// Ptr returns a pointer to the i-th element after base.
func Ptr[T any](base *T, i int) *T {
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(base), uintptr(i)*unsafe.Sizeof(zero)))
}

// Segment aliases the half-open index span [start, end) after base as a slice
// without copying. The result has cap == len so an append on it reallocates
// instead of writing into the neighbouring span.
func Segment[T any](base *T, start, end int) []T {
	return unsafe.Slice(Ptr(base, start), end-start)
}
