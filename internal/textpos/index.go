// Package textpos converts between byte offsets and rune offsets of a string.
package textpos

import (
	"sort"
	"unicode/utf8"
)

// Index maps byte offsets of a string to rune offsets.
type Index struct {
	starts []int // byte offset of every rune start, plus len(s)
}

// New builds an Index for s.
func New(s string) *Index {
	starts := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		starts = append(starts, i)
	}
	starts = append(starts, len(s))

	return &Index{starts: starts}
}

// Len returns the number of runes in the indexed string.
func (ix *Index) Len() int {
	return len(ix.starts) - 1
}

// Rune returns the rune offset for a byte offset.
// Byte offsets inside a multi-byte rune map to that rune.
func (ix *Index) Rune(byteOff int) int {
	i := sort.SearchInts(ix.starts, byteOff)
	if i < len(ix.starts) && ix.starts[i] == byteOff {
		return i
	}

	return i - 1
}

// Byte returns the byte offset of the rune at runeOff.
func (ix *Index) Byte(runeOff int) int {
	if runeOff < 0 {
		return 0
	}
	if runeOff >= len(ix.starts) {
		return ix.starts[len(ix.starts)-1]
	}

	return ix.starts[runeOff]
}

// Spans converts regexp byte index pairs into rune offset pairs.
func (ix *Index) Spans(matches [][]int) [][2]int {
	out := make([][2]int, 0, len(matches))
	for _, m := range matches {
		out = append(out, [2]int{ix.Rune(m[0]), ix.Rune(m[1])})
	}

	return out
}
