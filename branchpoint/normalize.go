package branchpoint

import (
	"slices"

	"github.com/arloliu/steganos/format"
)

// Intersects reports whether edit span e may not be applied because of region r.
//
// That is the case when an endpoint of r falls strictly inside e, when an
// endpoint of e falls strictly inside r, or when r contains e. A zero-width
// edit on a region boundary counts as contained.
func Intersects(e, r Span) bool {
	strictlyInside := func(x int, s Span) bool { return x > s.Start && x < s.End }

	return strictlyInside(r.Start, e) || strictlyInside(r.End, e) ||
		strictlyInside(e.Start, r) || strictlyInside(e.End, r) ||
		r.Contains(e)
}

// Mask removes every edit that intersects one of regions. Branchpoints left
// without edits are dropped. The input is not modified.
func Mask(bps []Branchpoint, regions []Span) []Branchpoint {
	out := make([]Branchpoint, 0, len(bps))
	for _, bp := range bps {
		edits := make([]Edit, 0, len(bp.Edits))
		for _, e := range bp.Edits {
			if !intersectsAny(e.Span, regions) {
				edits = append(edits, e)
			}
		}
		if len(edits) == 0 {
			continue
		}
		bp.Edits = edits
		out = append(out, bp)
	}

	return out
}

func intersectsAny(e Span, regions []Span) bool {
	for _, r := range regions {
		if Intersects(e, r) {
			return true
		}
	}

	return false
}

// Trim shrinks e to its minimal differing region: the longest common prefix
// of Original and Replacement is skipped (advancing Start), then the longest
// common suffix of what remains (retracting End). Trim is idempotent.
func Trim(e Edit) Edit {
	orig := []rune(e.Original)
	repl := []rune(e.Replacement)

	p := 0
	for p < len(orig) && p < len(repl) && orig[p] == repl[p] {
		p++
	}
	orig, repl = orig[p:], repl[p:]

	q := 0
	for q < len(orig) && q < len(repl) && orig[len(orig)-1-q] == repl[len(repl)-1-q] {
		q++
	}
	orig, repl = orig[:len(orig)-q], repl[:len(repl)-q]

	return Edit{
		Span:        Span{Start: e.Start + p, End: e.End - q},
		Original:    string(orig),
		Replacement: string(repl),
	}
}

// Normalize masks bps against regions, trims every surviving edit and drops
// edits that became no-ops. Local branchpoints are then stably re-sorted by
// the start of their first edit; globals keep their leading position.
func Normalize(bps []Branchpoint, regions []Span) []Branchpoint {
	masked := Mask(bps, regions)
	out := make([]Branchpoint, 0, len(masked))
	for _, bp := range masked {
		edits := make([]Edit, 0, len(bp.Edits))
		for _, e := range bp.Edits {
			if t := Trim(e); !t.IsNoop() {
				edits = append(edits, t)
			}
		}
		if len(edits) == 0 {
			continue
		}
		slices.SortStableFunc(edits, func(a, b Edit) int { return a.Start - b.Start })
		bp.Edits = edits
		out = append(out, bp)
	}

	SortLocals(out)

	return out
}

// SortLocals stably orders globals before locals and locals by first-edit start.
func SortLocals(bps []Branchpoint) {
	slices.SortStableFunc(bps, func(a, b Branchpoint) int {
		switch {
		case a.Scope == format.ScopeGlobal && b.Scope == format.ScopeGlobal:
			return 0
		case a.Scope == format.ScopeGlobal:
			return -1
		case b.Scope == format.ScopeGlobal:
			return 1
		default:
			return a.Start() - b.Start()
		}
	})
}
