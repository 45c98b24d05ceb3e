package pool

import "sync"

// Slice pools for the text hot paths: the encoder assembles output runes and
// the decoder keeps per-branchpoint scratch state.
var (
	runeSlicePool = sync.Pool{
		New: func() any { return &[]rune{} },
	}
	intSlicePool = sync.Pool{
		New: func() any { return &[]int{} },
	}
)

// GetRuneSlice retrieves an empty rune slice with at least the given capacity.
//
// The caller must call the returned cleanup function to return the slice to
// the pool, and must not retain the slice afterwards.
//
// Example:
//
//	out, cleanup := pool.GetRuneSlice(len(text))
//	defer cleanup()
//	out = append(out, ...)
func GetRuneSlice(capacity int) ([]rune, func()) {
	ptr, _ := runeSlicePool.Get().(*[]rune)
	slice := (*ptr)[:0]
	if cap(slice) < capacity {
		slice = make([]rune, 0, capacity)
	}

	return slice, func() {
		*ptr = slice[:0]
		runeSlicePool.Put(ptr)
	}
}

// GetIntSlice retrieves an int slice of exactly size elements, each set to fill.
//
// The caller must call the returned cleanup function to return the slice to the pool.
func GetIntSlice(size int, fill int) ([]int, func()) {
	ptr, _ := intSlicePool.Get().(*[]int)
	slice := (*ptr)[:0]
	if cap(slice) < size {
		slice = make([]int, size)
	} else {
		slice = slice[:size]
	}
	for i := range slice {
		slice[i] = fill
	}
	*ptr = slice

	return slice, func() { intSlicePool.Put(ptr) }
}
