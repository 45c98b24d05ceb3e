package codec

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/steganos/branchpoint"
	"github.com/arloliu/steganos/errs"
	"github.com/arloliu/steganos/format"
	"github.com/arloliu/steganos/internal/pool"
)

// Window is the believed span of the original text an excerpt came from.
//
// Negative offsets count back from the end of the text: an offset o < 0
// means len+o. Offsets beyond the text are clamped to it.
type Window struct {
	Start int
	End   int
}

// Anywhere is the window covering the whole original text.
var Anywhere = Window{Start: 0, End: math.MaxInt}

// Resolve converts w to a span of a text of n runes.
func (w Window) Resolve(n int) (branchpoint.Span, error) {
	lo, hi := w.Start, w.End
	if lo < 0 {
		lo += n
	}
	if hi < 0 {
		hi += n
	}
	lo = min(max(lo, 0), n)
	hi = min(max(hi, 0), n)
	if lo > hi {
		return branchpoint.Span{}, fmt.Errorf("%w: [%d,%d) over %d runes", errs.ErrInvalidWindow, w.Start, w.End, n)
	}

	return branchpoint.Span{Start: lo, End: hi}, nil
}

// DecodePartial recovers the bits visible in excerpt, a contiguous piece of
// an encoded text produced from original.
//
// Edits elsewhere in the carrier shift offsets, so w is only a hint: every
// alignment of the excerpt against original is considered. Alignments lying
// inside w are equally plausible; one reaching outside it is penalised by how
// far it reaches, and only the least penalised alignments are kept. A bit is
// known only when all of them agree on it, so branchpoints without evidence
// in the excerpt, or seen differently by two kept alignments, are
// format.Unknown. A global branchpoint is known as soon as one of its
// occurrences is visible. Use Anywhere when nothing is known about the
// excerpt's position.
//
// It returns errs.ErrAlignment when the excerpt aligns nowhere and
// errs.ErrInvalidWindow for a window with Start after End.
func DecodePartial(excerpt, original string, w Window) (format.Bits, error) {
	return DecodePartialSet(excerpt, original, w, Generate(original))
}

// DecodePartialSet is DecodePartial with a precomputed set, which must be
// Generate(original).
func DecodePartialSet(excerpt, original string, w Window, set branchpoint.Set) (format.Bits, error) {
	best, err := align(excerpt, original, w, set)
	if err != nil {
		return nil, err
	}

	bits := make(format.Bits, len(set))
	for owner := range bits {
		bits[owner] = format.Unknown
		if len(best) == 0 {
			continue
		}
		v := best[0].assign[owner]
		for _, al := range best[1:] {
			if al.assign[owner] != v {
				v = -1
				break
			}
		}
		if v >= 0 {
			bits[owner] = format.Bit(v)
		}
	}

	return bits, nil
}

// Locate returns the span of original that excerpt was produced from, using
// the same alignment search as DecodePartial. Among equally plausible
// alignments the leftmost wins.
func Locate(excerpt, original string, w Window) (branchpoint.Span, error) {
	best, err := align(excerpt, original, w, Generate(original))
	if err != nil {
		return branchpoint.Span{}, err
	}
	if len(best) == 0 {
		window, _ := w.Resolve(len([]rune(original)))
		return branchpoint.Span{Start: window.Start, End: window.Start}, nil
	}

	return best[0].span, nil
}

// alignment is one complete match of the excerpt against the original.
type alignment struct {
	span   branchpoint.Span
	assign []int
}

// visit records a site passed in its replaced form: n runes of the
// replacement are visible at excerpt offset at. Either end of the excerpt may
// cut the replacement.
type visit struct {
	site int
	at   int
	n    int
}

// aligner walks the excerpt through the original. Fixed text must match
// exactly; at each site either form may appear, and a form cut off by either
// end of the excerpt still counts as evidence.
type aligner struct {
	ex     []rune
	orig   []rune
	sites  []branchpoint.Site
	forms  [][2][]rune
	window branchpoint.Span

	assign []int
	visits []visit

	best      []alignment
	bestScore int
}

func align(excerpt, original string, w Window, set branchpoint.Set) ([]alignment, error) {
	orig := []rune(original)
	window, err := w.Resolve(len(orig))
	if err != nil {
		return nil, err
	}
	ex := []rune(excerpt)
	if len(ex) == 0 {
		return nil, nil
	}

	sites := set.Sites()
	forms := make([][2][]rune, len(sites))
	for i, s := range sites {
		forms[i] = alternatives(s.Edit)
	}

	assign, release := pool.GetIntSlice(len(set), -1)
	defer release()

	a := &aligner{
		ex:     ex,
		orig:   orig,
		sites:  sites,
		forms:  forms,
		window: window,
		assign: assign,
	}
	a.search()

	if len(a.best) == 0 {
		return nil, fmt.Errorf("%w: excerpt of %d runes not found in original", errs.ErrAlignment, len(ex))
	}
	slices.SortStableFunc(a.best, func(x, y alignment) int { return x.span.Start - y.span.Start })

	return a.best, nil
}

// search tries every start: each original offset outside a site, and each
// proper suffix of either form of every site.
func (a *aligner) search() {
	inside := make([]bool, len(a.orig)+1)
	for _, s := range a.sites {
		for p := s.Start + 1; p < s.End; p++ {
			inside[p] = true
		}
	}

	s := 0
	for p := range a.orig {
		for s < len(a.sites) && a.sites[s].Start < p {
			s++
		}
		if !inside[p] {
			a.fixed(p, s, 0, p)
		}
	}

	for s, site := range a.sites {
		for _, bit := range []format.Bit{format.One, format.Zero} {
			form := a.forms[s][bit]
			for k := 1; k < len(form); k++ {
				start := site.Start
				if bit == format.Zero {
					start += k
				}
				a.enter(s, bit, form[k:], 0, start)
			}
		}
	}
}

// fixed matches original text from p up to site s, then branches at s.
func (a *aligner) fixed(p, s, i, start int) {
	end := len(a.orig)
	if s < len(a.sites) {
		end = a.sites[s].Start
	}
	if end < p {
		return
	}
	n := min(end-p, len(a.ex)-i)
	if !slices.Equal(a.ex[i:i+n], a.orig[p:p+n]) {
		return
	}
	i += n
	p += n
	if i == len(a.ex) {
		a.record(start, p)
		return
	}
	if s == len(a.sites) {
		return
	}

	for _, bit := range []format.Bit{format.One, format.Zero} {
		a.enter(s, bit, a.forms[s][bit], i, start)
	}
}

// enter matches form, the visible part of site s in its bit form, at excerpt
// offset i and continues after the site.
func (a *aligner) enter(s int, bit format.Bit, form []rune, i, start int) {
	site := a.sites[s]
	m := min(len(form), len(a.ex)-i)
	if !slices.Equal(a.ex[i:i+m], form[:m]) {
		return
	}

	// An empty form is evidence only when text precedes it in the excerpt.
	evidence := m > 0 || i > 0
	fresh := false
	if evidence {
		switch a.assign[site.Owner] {
		case -1:
			a.assign[site.Owner] = int(bit)
			fresh = true
		case int(bit):
		default:
			return
		}
	}
	if bit == format.One {
		a.visits = append(a.visits, visit{site: s, at: i, n: m})
	}

	if m < len(form) {
		end := site.End
		if bit == format.Zero {
			end = site.End - (len(form) - m)
		}
		a.record(start, end)
	} else {
		a.fixed(site.End, s+1, i+m, start)
	}

	if bit == format.One {
		a.visits = a.visits[:len(a.visits)-1]
	}
	if fresh {
		a.assign[site.Owner] = -1
	}
}

// record keeps the alignment of the excerpt to original[start:end] when no
// better one is known. The score is how far the span reaches outside the
// window.
func (a *aligner) record(start, end int) {
	score := max(a.window.Start-start, 0) + max(end-a.window.End, 0)
	if len(a.best) > 0 && score > a.bestScore {
		return
	}
	if !a.verify(start, end) {
		return
	}
	if len(a.best) == 0 || score < a.bestScore {
		a.best = a.best[:0]
		a.bestScore = score
	}
	a.best = append(a.best, alignment{
		span:   branchpoint.Span{Start: start, End: end},
		assign: slices.Clone(a.assign),
	})
}

// verify puts the whole original back for every replaced site of the current
// walk and checks that the excerpt turns into original[start:end].
func (a *aligner) verify(start, end int) bool {
	restored := make([]rune, 0, end-start)
	prev := 0
	for _, v := range a.visits {
		restored = append(restored, a.ex[prev:v.at]...)
		restored = append(restored, a.forms[v.site][format.Zero]...)
		prev = v.at + v.n
	}
	restored = append(restored, a.ex[prev:]...)

	return slices.Equal(restored, a.orig[start:end])
}
