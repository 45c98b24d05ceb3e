package candidate

import (
	"slices"

	"github.com/arloliu/steganos/branchpoint"
	"github.com/arloliu/steganos/internal/textpos"
)

// Globals returns the global candidates of text: quotes first, then digits.
func Globals(text string) []branchpoint.Branchpoint {
	runes := []rune(text)
	var out []branchpoint.Branchpoint
	if bp, ok := quotes(runes); ok {
		out = append(out, bp)
	}
	if bp, ok := digits(runes); ok {
		out = append(out, bp)
	}

	return out
}

// Locals returns the local candidates of text, stably sorted by start offset.
// Candidates sharing a start keep family order: tab, contraction,
// directional mark, word joiner, zero-width space.
func Locals(text string) []branchpoint.Branchpoint {
	runes := []rune(text)
	ix := textpos.New(text)

	var out []branchpoint.Branchpoint
	out = append(out, tabs(runes)...)
	out = append(out, contractions(text, runes, ix)...)
	out = append(out, directionalMarks(runes)...)
	out = append(out, wordJoiners(runes)...)
	out = append(out, zeroWidthSpaces(runes)...)

	slices.SortStableFunc(out, func(a, b branchpoint.Branchpoint) int {
		return a.Start() - b.Start()
	})

	return out
}

// Generate returns every raw candidate of text: globals followed by locals.
func Generate(text string) []branchpoint.Branchpoint {
	return append(Globals(text), Locals(text)...)
}
