package branchpoint

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/arloliu/steganos/format"
)

// Span is a half-open rune offset range [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the width of the span in runes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span is a zero-width insertion point.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Touches reports whether s and o overlap or share an endpoint.
// Spans are assumed ordered so that s.Start <= o.Start.
func (s Span) Touches(o Span) bool {
	return s.End >= o.Start
}

// Contains reports whether o lies entirely within s.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Edit replaces the Original slice at Span with Replacement.
type Edit struct {
	Span
	Original    string
	Replacement string
}

// NewEdit builds an edit over text (as runes) at [start, end).
func NewEdit(text []rune, start, end int, replacement string) Edit {
	return Edit{
		Span:        Span{Start: start, End: end},
		Original:    string(text[start:end]),
		Replacement: replacement,
	}
}

// Delta returns the change in rune length caused by applying the edit.
func (e Edit) Delta() int {
	return utf8.RuneCountInString(e.Replacement) - e.Len()
}

// IsNoop reports whether applying the edit would not change the text.
func (e Edit) IsNoop() bool {
	return e.Original == e.Replacement
}

func (e Edit) String() string {
	return fmt.Sprintf("%s %q->%q", e.Span, e.Original, e.Replacement)
}

// Branchpoint is a group of edits controlled by a single bit.
type Branchpoint struct {
	Scope   format.Scope
	Pattern format.Pattern
	Edits   []Edit
}

// Start returns the start offset of the first edit, or -1 when there are none.
func (bp Branchpoint) Start() int {
	if len(bp.Edits) == 0 {
		return -1
	}

	return bp.Edits[0].Start
}

// Area weights a branchpoint for overlap resolution: edit count times the
// total width of its edits.
func (bp Branchpoint) Area() int {
	width := 0
	for _, e := range bp.Edits {
		width += e.Len()
	}

	return len(bp.Edits) * width
}

// Clone returns a deep copy of the branchpoint.
func (bp Branchpoint) Clone() Branchpoint {
	bp.Edits = slices.Clone(bp.Edits)
	return bp
}

// Set is an ordered list of branchpoints; its length is the bit capacity.
type Set []Branchpoint

// Capacity returns the number of bits the set can carry.
func (s Set) Capacity() int {
	return len(s)
}

// Site is one edit of a set together with the index of its owning branchpoint.
type Site struct {
	Edit
	Owner int
}

// Sites flattens every edit of the set, ordered by start offset.
// Edits with equal starts keep set order.
func (s Set) Sites() []Site {
	n := 0
	for _, bp := range s {
		n += len(bp.Edits)
	}
	sites := make([]Site, 0, n)
	for i, bp := range s {
		for _, e := range bp.Edits {
			sites = append(sites, Site{Edit: e, Owner: i})
		}
	}
	slices.SortStableFunc(sites, func(a, b Site) int {
		return a.Start - b.Start
	})

	return sites
}

// Validate checks the set invariants: local branchpoints hold one edit,
// globals precede locals, locals are ordered by start, and no two edits of
// different branchpoints overlap or touch.
func (s Set) Validate() error {
	seenLocal := false
	lastLocal := -1
	for i, bp := range s {
		if len(bp.Edits) == 0 {
			return fmt.Errorf("branchpoint %d has no edits", i)
		}
		switch bp.Scope {
		case format.ScopeGlobal:
			if seenLocal {
				return fmt.Errorf("global branchpoint %d follows a local one", i)
			}
		case format.ScopeLocal:
			if len(bp.Edits) != 1 {
				return fmt.Errorf("local branchpoint %d has %d edits", i, len(bp.Edits))
			}
			if bp.Start() < lastLocal {
				return fmt.Errorf("local branchpoint %d starts at %d before %d", i, bp.Start(), lastLocal)
			}
			seenLocal = true
			lastLocal = bp.Start()
		default:
			return fmt.Errorf("branchpoint %d has invalid scope %d", i, bp.Scope)
		}
	}

	// best holds the furthest-reaching edit seen so far, other the furthest
	// reaching edit of any different owner.
	type reach struct{ end, owner int }
	best, other := reach{-1, -1}, reach{-1, -1}
	for _, cur := range s.Sites() {
		limit := best
		if best.owner == cur.Owner {
			limit = other
		}
		if limit.end >= cur.Start {
			return fmt.Errorf("edit %s of branchpoint %d touches an edit of branchpoint %d",
				cur.Span, cur.Owner, limit.owner)
		}
		switch {
		case cur.End > best.end:
			if cur.Owner != best.owner {
				other = best
			}
			best = reach{cur.End, cur.Owner}
		case cur.Owner != best.owner && cur.End > other.end:
			other = reach{cur.End, cur.Owner}
		}
	}

	return nil
}
