package codec

import (
	"github.com/arloliu/steganos/branchpoint"
	"github.com/arloliu/steganos/candidate"
	"github.com/arloliu/steganos/mask"
)

// Generate returns the canonical branchpoint set of text.
//
// Globals come first, then locals ordered by start offset. No two edits of
// different branchpoints overlap or touch.
func Generate(text string) branchpoint.Set {
	candidates := candidate.Generate(text)
	regions := mask.Find(text)

	return branchpoint.SelectExclusive(branchpoint.Normalize(candidates, regions))
}

// Capacity returns the number of bits text can carry.
func Capacity(text string) int {
	return Generate(text).Capacity()
}
