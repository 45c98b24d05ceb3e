package codec

import (
	"fmt"
	"slices"

	"github.com/arloliu/steganos/branchpoint"
	"github.com/arloliu/steganos/errs"
	"github.com/arloliu/steganos/format"
	"github.com/arloliu/steganos/internal/pool"
)

// DecodeFull recovers the bits hidden in encoded, which must be the whole
// output of Encode for original.
//
// The result has one bit per branchpoint of Generate(original); bits past
// the encoded message read as whatever the encoder filled in. It returns
// errs.ErrAlignment when encoded does not correspond to original outside the
// branchpoint edits, or when the occurrences of a global branchpoint disagree.
func DecodeFull(encoded, original string) (format.Bits, error) {
	return DecodeFullSet(encoded, original, Generate(original))
}

// DecodeFullSet is DecodeFull with a precomputed set, which must be
// Generate(original).
func DecodeFullSet(encoded, original string, set branchpoint.Set) (format.Bits, error) {
	orig := []rune(original)
	enc := []rune(encoded)
	sites := set.Sites()

	assign, release := pool.GetIntSlice(len(set), -1)
	defer release()

	pos, epos := 0, 0
	for k, site := range sites {
		fixed := orig[pos:site.Start]
		if !hasPrefixAt(enc, epos, fixed) {
			return nil, fmt.Errorf("%w: fixed text at original offset %d", errs.ErrAlignment, pos)
		}
		epos += len(fixed)

		next := len(orig)
		if k+1 < len(sites) {
			next = sites[k+1].Start
		}
		follow := orig[site.End:next]

		bit, width, ok := matchSite(enc, epos, site.Edit, follow)
		if !ok {
			return nil, fmt.Errorf("%w: edit %s matches neither form", errs.ErrAlignment, site.Edit)
		}
		switch assign[site.Owner] {
		case -1:
			assign[site.Owner] = int(bit)
		case int(bit):
		default:
			return nil, fmt.Errorf("%w: occurrences of branchpoint %d disagree at %s",
				errs.ErrAlignment, site.Owner, site.Span)
		}
		epos += width
		pos = site.End
	}
	if !slices.Equal(enc[epos:], orig[pos:]) {
		return nil, fmt.Errorf("%w: trailing text at original offset %d", errs.ErrAlignment, pos)
	}

	bits := make(format.Bits, len(set))
	for i, v := range assign {
		bits[i] = format.Bit(v)
	}

	return bits, nil
}

// matchSite decides which form of e is present in enc at pos. The longer form
// is tried first; when both forms match, the one followed by follow wins.
func matchSite(enc []rune, pos int, e branchpoint.Edit, follow []rune) (format.Bit, int, bool) {
	forms := alternatives(e)
	order := []format.Bit{format.One, format.Zero}
	if len(forms[format.Zero]) > len(forms[format.One]) {
		order[0], order[1] = order[1], order[0]
	}

	found := false
	var bit format.Bit
	for _, b := range order {
		form := forms[b]
		if !hasPrefixAt(enc, pos, form) {
			continue
		}
		if hasPrefixAt(enc, pos+len(form), follow) {
			return b, len(form), true
		}
		if !found {
			found, bit = true, b
		}
	}

	return bit, len(forms[bit]), found
}

// alternatives returns the runes of e indexed by bit: Original for
// format.Zero and Replacement for format.One.
func alternatives(e branchpoint.Edit) [2][]rune {
	return [2][]rune{[]rune(e.Original), []rune(e.Replacement)}
}

func hasPrefixAt(s []rune, pos int, prefix []rune) bool {
	if pos < 0 || pos+len(prefix) > len(s) {
		return false
	}

	return slices.Equal(s[pos:pos+len(prefix)], prefix)
}

// Applied reports whether e was applied to before to produce after.
//
// The original slice is read from before at e's span; after is inspected at
// e.Start. The longer of the two forms is checked first. It returns
// errs.ErrAlignment when after shows neither form there.
func Applied(before, after string, e branchpoint.Edit) (bool, error) {
	b := []rune(before)
	if e.Start < 0 || e.Start > e.End || e.End > len(b) {
		return false, fmt.Errorf("%w: %s over %d runes", errs.ErrInvalidEdit, e.Span, len(b))
	}
	e.Original = string(b[e.Start:e.End])

	bit, _, ok := matchSite([]rune(after), e.Start, e, nil)
	if !ok {
		return false, fmt.Errorf("%w: edit %s matches neither form", errs.ErrAlignment, e)
	}

	return bit == format.One, nil
}

// Undo restores the text as it was before e was applied. e.Start is the
// offset of the replacement in text.
//
// Besides a complete replacement, truncated forms are accepted: at offset 0
// the text may begin part way into the replacement (the longest visible
// suffix is assumed), the text may end part way into it, or the whole text
// may lie inside it. In each case the whole Original is restored.
// It returns errs.ErrAlignment when no form of the replacement is found.
func Undo(text string, e branchpoint.Edit) (string, error) {
	runes := []rune(text)
	pos := e.Start
	if pos < 0 || pos > len(runes) {
		return "", fmt.Errorf("%w: %s over %d runes", errs.ErrInvalidEdit, e.Span, len(runes))
	}
	repl := []rune(e.Replacement)
	orig := []rune(e.Original)

	splice := func(from, to int) string {
		out := make([]rune, 0, len(runes)-(to-from)+len(orig))
		out = append(out, runes[:from]...)
		out = append(out, orig...)
		out = append(out, runes[to:]...)

		return string(out)
	}

	if hasPrefixAt(runes, pos, repl) {
		return splice(pos, pos+len(repl)), nil
	}
	if pos == 0 {
		for k := 1; k < len(repl); k++ {
			if hasPrefixAt(runes, 0, repl[k:]) {
				return splice(0, len(repl)-k), nil
			}
		}
	}
	if rest := runes[pos:]; len(rest) > 0 && len(rest) < len(repl) && slices.Equal(rest, repl[:len(rest)]) {
		return splice(pos, len(runes)), nil
	}
	if pos == 0 && len(runes) > 0 {
		for k := 1; k+len(runes) < len(repl); k++ {
			if slices.Equal(runes, repl[k:k+len(runes)]) {
				return string(orig), nil
			}
		}
	}

	return "", fmt.Errorf("%w: replacement of %s not found", errs.ErrAlignment, e)
}
