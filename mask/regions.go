// Package mask finds the regions of a text that must never be edited:
// URLs, fenced code blocks and markdown links or images.
package mask

import (
	"regexp"

	"github.com/arloliu/steganos/branchpoint"
	"github.com/arloliu/steganos/internal/textpos"
)

var (
	urlPattern       = regexp.MustCompile(`https?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\(\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)
	codeFencePattern = regexp.MustCompile("(?s)```.+?```")
	markdownPattern  = regexp.MustCompile(`!?\[[^\]]+?\]\([^)]+?\)`)
)

// Kind names the family of an unchangeable region.
type Kind uint8

const (
	KindURL Kind = iota + 1
	KindCodeFence
	KindMarkdownLink
)

func (k Kind) String() string {
	switch k {
	case KindURL:
		return "URL"
	case KindCodeFence:
		return "CodeFence"
	case KindMarkdownLink:
		return "MarkdownLink"
	default:
		return "Unknown"
	}
}

// Region is an unchangeable span together with the family that produced it.
type Region struct {
	branchpoint.Span
	Kind Kind
}

// FindRegions returns every unchangeable region of text in rune offsets.
// Regions of different families may overlap; no ordering is guaranteed.
func FindRegions(text string) []Region {
	ix := textpos.New(text)
	var out []Region
	for _, fam := range []struct {
		kind Kind
		re   *regexp.Regexp
	}{
		{KindCodeFence, codeFencePattern},
		{KindURL, urlPattern},
		{KindMarkdownLink, markdownPattern},
	} {
		for _, s := range ix.Spans(fam.re.FindAllStringIndex(text, -1)) {
			out = append(out, Region{Span: branchpoint.Span{Start: s[0], End: s[1]}, Kind: fam.kind})
		}
	}

	return out
}

// Find returns the spans of every unchangeable region of text.
func Find(text string) []branchpoint.Span {
	regions := FindRegions(text)
	spans := make([]branchpoint.Span, len(regions))
	for i, r := range regions {
		spans[i] = r.Span
	}

	return spans
}
