package branchpoint

import "slices"

// entry is one edit of the selector sweep.
type entry struct {
	Span
	owner int
	area  int
}

// SelectExclusive keeps a subset of bps in which no two edits of different
// branchpoints overlap or touch. The input order is preserved.
//
// This is a greedy O(n log n) sweep, not an exact weighted interval
// schedule: every edit is flattened into an entry weighted by its owner's
// Area and sorted by start. Each entry is compared with the nearest live
// entry before it; on conflict the owner with the smaller area is discarded,
// and on a tie the owner of the later entry. When the earlier owner loses,
// the newly exposed predecessor is examined next.
func SelectExclusive(bps []Branchpoint) Set {
	areas := make([]int, len(bps))
	n := 0
	for i, bp := range bps {
		areas[i] = bp.Area()
		n += len(bp.Edits)
	}

	entries := make([]entry, 0, n)
	for i, bp := range bps {
		for _, e := range bp.Edits {
			entries = append(entries, entry{Span: e.Span, owner: i, area: areas[i]})
		}
	}
	slices.SortStableFunc(entries, func(a, b entry) int { return a.Start - b.Start })

	removed := make([]bool, len(bps))
	live := make([]entry, 0, len(entries))
	for _, cur := range entries {
		if removed[cur.owner] {
			continue
		}
		merged := false
		for {
			for len(live) > 0 && removed[live[len(live)-1].owner] {
				live = live[:len(live)-1]
			}
			if len(live) == 0 {
				break
			}
			top := &live[len(live)-1]
			if top.owner == cur.owner {
				// Consecutive edits of one owner collapse into their hull, so a
				// wide edit is not hidden behind a narrower later one.
				top.End = max(top.End, cur.End)
				merged = true

				break
			}
			if !top.Touches(cur.Span) {
				break
			}
			if top.area < cur.area {
				removed[top.owner] = true
				continue
			}
			removed[cur.owner] = true

			break
		}
		if !merged && !removed[cur.owner] {
			live = append(live, cur)
		}
	}

	out := make(Set, 0, len(bps))
	for i, bp := range bps {
		if !removed[i] {
			out = append(out, bp)
		}
	}

	return out
}
