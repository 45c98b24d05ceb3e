package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/steganos/branchpoint"
	"github.com/arloliu/steganos/errs"
	"github.com/arloliu/steganos/format"
)

// runeSlice slices s by rune offsets; end -1 means the end of s.
func runeSlice(s string, start, end int) string {
	r := []rune(s)
	if end < 0 {
		end += len(r) + 1
	}

	return string(r[start:end])
}

// indexOf returns the bit index of the branchpoint with the given pattern
// whose first edit starts at start, or the first with that pattern when
// start is negative.
func indexOf(t *testing.T, set branchpoint.Set, p format.Pattern, start int) int {
	t.Helper()
	for i, bp := range set {
		if bp.Pattern == p && (start < 0 || bp.Start() == start) {
			return i
		}
	}
	require.Failf(t, "branchpoint not found", "%s at %d", p, start)

	return -1
}

func TestWindow_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		window  Window
		n       int
		want    [2]int
		wantErr bool
	}{
		{"plain", Window{Start: 2, End: 5}, 10, [2]int{2, 5}, false},
		{"negative offsets", Window{Start: -5, End: -1}, 10, [2]int{5, 9}, false},
		{"clamped", Window{Start: -100, End: 100}, 10, [2]int{0, 10}, false},
		{"anywhere", Anywhere, 10, [2]int{0, 10}, false},
		{"empty", Window{Start: 4, End: 4}, 10, [2]int{4, 4}, false},
		{"reversed", Window{Start: 6, End: 2}, 10, [2]int{}, true},
		{"reversed after negative", Window{Start: -1, End: 3}, 10, [2]int{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.window.Resolve(tt.n)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidWindow)
				return
			}
			require.NoError(t, err)
			require.Equal(t, span(tt.want[0], tt.want[1]), got)
		})
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name     string
		original string
		excerpt  string
		want     [2]int
	}{
		{
			name:     "excerpt at start",
			original: `Chapter 9 - "Hello!", Chapter 10 - "Goodbye!"`,
			excerpt:  "Chapter nine - 'Hello!'",
			want:     [2]int{0, 20},
		},
		{
			name:     "excerpt not at start",
			original: `Chapter 9 - "Hello!", Chapter 8 - "Goodbye!"`,
			excerpt:  `nine - "Hello!", Chapter eight`,
			want:     [2]int{8, 31},
		},
		{
			name:     "edit is not the start of the excerpt",
			original: `Chapter 9 - "Hello!", Chapter 10 - "Goodbye!"`,
			excerpt:  " - 'Hello!', Chapter ",
			want:     [2]int{9, 30},
		},
		{
			name:     "end inside a replacement",
			original: `Chapter 9 - "Hello!", Chapter 8 - "Goodbye!"`,
			excerpt:  " - 'Hello!', Chapter eig",
			want:     [2]int{9, 31},
		},
		{
			name:     "end inside an applied contraction",
			original: "I won't.",
			excerpt:  "I will",
			want:     [2]int{0, 6},
		},
		{
			name:     "start inside an unapplied contraction",
			original: "I won't turn 9",
			excerpt:  "n't turn nine",
			want:     [2]int{4, 14},
		},
		{
			name:     "end inside an unapplied contraction",
			original: "I won't turn 9.",
			excerpt:  "I wo",
			want:     [2]int{0, 4},
		},
		{
			name:     "start inside an applied contraction",
			original: "I won't do it. Fine",
			excerpt:  "not do it. Fine",
			want:     [2]int{3, 19},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Locate(tt.excerpt, tt.original, Anywhere)
			require.NoError(t, err)
			require.Equal(t, span(tt.want[0], tt.want[1]), got)
		})
	}
}

func TestDecodePartial_GlobalOutsideExcerpt(t *testing.T) {
	text := `I am 9, but I say "I am 8".`
	encoded := mustEncode(t, "11", text)
	require.Equal(t, "I\u2060 am nine, but I say \"I am eight\".", encoded)

	got, err := DecodePartial(runeSlice(encoded, 0, 9), text, Window{Start: 0, End: 6})
	require.NoError(t, err)
	require.Equal(t, "110?????", got.String())
}

func TestDecodePartial_NegativeWindowLateGlobal(t *testing.T) {
	text := `I am 9, but I say "I am 8".`
	encoded := mustEncode(t, "1000001", text)
	excerpt := runeSlice(encoded, 17, len([]rune(encoded)))
	require.Equal(t, "say \"I\u2060 am eight\".", excerpt)

	got, err := DecodePartial(excerpt, text, Window{Start: -13, End: 27})
	require.NoError(t, err)
	require.Equal(t, "1????010", got.String())
}

func TestDecodePartial_AmbiguousAlignment(t *testing.T) {
	// "Go" occurs twice; equally close alignments disagree on which
	// word joiner was seen.
	got, err := DecodePartial("Go", "Go Go", Window{Start: 0, End: 5})
	require.NoError(t, err)
	require.Equal(t, "???", got.String())

	// a tighter window settles it
	got, err = DecodePartial("Go", "Go Go", Window{Start: 0, End: 2})
	require.NoError(t, err)
	require.Equal(t, "0??", got.String())

	loc, err := Locate("Go", "Go Go", Window{Start: 3, End: 5})
	require.NoError(t, err)
	require.Equal(t, span(3, 5), loc)
}

func TestDecodePartial_CompetingAlignments(t *testing.T) {
	// "n't go." is the tail of "don't go." as written, but would equally be
	// the tail of "I won't go." had the contraction been applied.
	text := "I will not go. You don't go."
	set := Generate(text)
	will := indexOf(t, set, format.PatternContraction, 3)
	lastSpace := indexOf(t, set, format.PatternZeroWidthSpace, 24)

	encoded := mustEncode(t, "0", text)
	require.Equal(t, text, encoded)
	excerpt := encoded[strings.Index(encoded, "n't go"):]

	got, err := DecodePartial(excerpt, text, Anywhere)
	require.NoError(t, err)
	require.Equal(t, format.Unknown, got[will])
	require.Equal(t, format.Unknown, got[lastSpace])

	// a window on the second sentence rules out the first
	got, err = DecodePartial(excerpt, text, Window{Start: 15, End: 28})
	require.NoError(t, err)
	require.Equal(t, format.Unknown, got[will])
	require.Equal(t, format.Zero, got[lastSpace])

	loc, err := Locate(excerpt, text, Window{Start: 15, End: 28})
	require.NoError(t, err)
	require.Equal(t, span(21, 28), loc)
}

func TestDecodePartial_CutReplacement(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		bits    string
		pattern format.Pattern
		from    int
		to      int
	}{
		// the spaces after the tab repeat its replacement
		{"tab followed by spaces", "a\t  b", "1", format.PatternTab, 3, -1},
		{"both ends inside the replacement", "a9", "1", format.PatternDigit, 2, 4},
		{"start inside, end after", "a9 b", "1", format.PatternDigit, 3, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Generate(tt.text)
			site := indexOf(t, set, tt.pattern, -1)
			encoded := mustEncode(t, tt.bits, tt.text)

			got, err := DecodePartial(runeSlice(encoded, tt.from, tt.to), tt.text, Anywhere)
			require.NoError(t, err)
			require.Equal(t, format.One, got[site])
		})
	}
}

func TestDecodePartial_WholeTextMatchesFullDecode(t *testing.T) {
	for _, text := range corpus {
		if text == "" {
			continue
		}
		t.Run(text, func(t *testing.T) {
			bits := randomBits(len(text), Capacity(text))
			encoded := mustEncode(t, bits.String(), text)

			full, err := DecodeFull(encoded, text)
			require.NoError(t, err)

			partial, err := DecodePartial(encoded, text, Window{Start: 0, End: len([]rune(text))})
			require.NoError(t, err)
			require.Len(t, partial, len(full))
			for i := range full {
				if partial[i] != format.Unknown {
					require.Equal(t, full[i], partial[i], "bit %d", i)
				}
			}
		})
	}
}

func TestDecodePartial_Errors(t *testing.T) {
	_, err := DecodePartial("xyz", "I am 9 years old.", Window{Start: 0, End: -1})
	require.ErrorIs(t, err, errs.ErrAlignment)

	_, err = DecodePartial("am", "I am 9 years old.", Window{Start: 9, End: 3})
	require.ErrorIs(t, err, errs.ErrInvalidWindow)

	_, err = Locate("xyz", "I am 9 years old.", Window{Start: 0, End: -1})
	require.ErrorIs(t, err, errs.ErrAlignment)
}

func TestDecodePartial_EmptyExcerpt(t *testing.T) {
	got, err := DecodePartial("", "I am 9 years old.", Window{Start: 0, End: -1})
	require.NoError(t, err)
	require.Equal(t, "????", got.String())

	loc, err := Locate("", "I am 9 years old.", Window{Start: 4, End: -1})
	require.NoError(t, err)
	require.Equal(t, span(4, 4), loc)
}
