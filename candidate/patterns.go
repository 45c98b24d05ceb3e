package candidate

import (
	"regexp"
	"unicode"

	"github.com/arloliu/steganos/branchpoint"
	"github.com/arloliu/steganos/format"
	"github.com/arloliu/steganos/internal/textpos"
)

// Invisible characters inserted by the zero-width patterns.
const (
	RightToLeftMark = "\u200f"
	LeftToRightMark = "\u200e"
	WordJoiner      = "\u2060"
	ZeroWidthSpace  = "\u200b"
	FourSpaces      = "    "
)

// Contraction pairs a contracted form with its expansion.
type Contraction struct {
	Short string
	Long  string
}

// Contractions is the fixed lexicon of contraction/expansion pairs.
var Contractions = []Contraction{
	{"won't", "will not"},
	{"can't", "cannot"},
	{"isn't", "is not"},
	{"doesn't", "does not"},
	{"would've", "would have"},
	{"how'll", "how will"},
	{"hadn't", "had not"},
}

var digitWords = map[rune]string{
	'1': "one",
	'2': "two",
	'3': "three",
	'4': "four",
	'5': "five",
	'6': "six",
	'7': "seven",
	'8': "eight",
	'9': "nine",
}

type contractionMatcher struct {
	short *regexp.Regexp
	long  *regexp.Regexp
	Contraction
}

var contractionMatchers = func() []contractionMatcher {
	out := make([]contractionMatcher, len(Contractions))
	for i, c := range Contractions {
		out[i] = contractionMatcher{
			short:       regexp.MustCompile(`\b` + regexp.QuoteMeta(c.Short) + `\b`),
			long:        regexp.MustCompile(`\b` + regexp.QuoteMeta(c.Long) + `\b`),
			Contraction: c,
		}
	}

	return out
}()

func local(p format.Pattern, e branchpoint.Edit) branchpoint.Branchpoint {
	return branchpoint.Branchpoint{Scope: format.ScopeLocal, Pattern: p, Edits: []branchpoint.Edit{e}}
}

func insertion(at int, s string) branchpoint.Edit {
	return branchpoint.Edit{Span: branchpoint.Span{Start: at, End: at}, Replacement: s}
}

func tabs(runes []rune) []branchpoint.Branchpoint {
	var out []branchpoint.Branchpoint
	for i, r := range runes {
		if r == '\t' {
			out = append(out, local(format.PatternTab, branchpoint.NewEdit(runes, i, i+1, FourSpaces)))
		}
	}

	return out
}

func contractions(text string, runes []rune, ix *textpos.Index) []branchpoint.Branchpoint {
	var out []branchpoint.Branchpoint
	emit := func(re *regexp.Regexp, replacement string) {
		for _, s := range ix.Spans(re.FindAllStringIndex(text, -1)) {
			out = append(out, local(format.PatternContraction, branchpoint.NewEdit(runes, s[0], s[1], replacement)))
		}
	}
	for _, m := range contractionMatchers {
		emit(m.short, m.Long)
		emit(m.long, m.Short)
	}

	return out
}

func directionalMarks(runes []rune) []branchpoint.Branchpoint {
	var out []branchpoint.Branchpoint
	for i := 0; i+1 < len(runes); i++ {
		if runes[i] == '.' && unicode.IsSpace(runes[i+1]) {
			out = append(out, local(format.PatternDirectionalMark, insertion(i, RightToLeftMark+LeftToRightMark)))
		}
	}

	return out
}

func wordJoiners(runes []rune) []branchpoint.Branchpoint {
	var out []branchpoint.Branchpoint
	for i, r := range runes {
		if unicode.IsUpper(r) {
			out = append(out, local(format.PatternWordJoiner, insertion(i+1, WordJoiner)))
		}
	}

	return out
}

func zeroWidthSpaces(runes []rune) []branchpoint.Branchpoint {
	var out []branchpoint.Branchpoint
	for i := 0; i+1 < len(runes); i++ {
		if unicode.IsLetter(runes[i]) && unicode.IsSpace(runes[i+1]) {
			out = append(out, local(format.PatternZeroWidthSpace, insertion(i+1, ZeroWidthSpace)))
		}
	}

	return out
}

func quotes(runes []rune) (branchpoint.Branchpoint, bool) {
	bp := branchpoint.Branchpoint{Scope: format.ScopeGlobal, Pattern: format.PatternQuote}
	for i, r := range runes {
		if r == '"' {
			bp.Edits = append(bp.Edits, branchpoint.NewEdit(runes, i, i+1, "'"))
		}
	}

	return bp, len(bp.Edits) > 0
}

// standaloneDigit reports whether runes[i] is 1-9 with no digit or '.' on either side.
func standaloneDigit(runes []rune, i int) bool {
	if _, ok := digitWords[runes[i]]; !ok {
		return false
	}
	blocks := func(r rune) bool { return r == '.' || unicode.IsDigit(r) }
	if i > 0 && blocks(runes[i-1]) {
		return false
	}
	if i+1 < len(runes) && blocks(runes[i+1]) {
		return false
	}

	return true
}

func digits(runes []rune) (branchpoint.Branchpoint, bool) {
	bp := branchpoint.Branchpoint{Scope: format.ScopeGlobal, Pattern: format.PatternDigit}
	for i := range runes {
		if standaloneDigit(runes, i) {
			bp.Edits = append(bp.Edits, branchpoint.NewEdit(runes, i, i+1, digitWords[runes[i]]))
		}
	}

	return bp, len(bp.Edits) > 0
}
