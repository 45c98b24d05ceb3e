package format

import "strings"

type (
	Scope           uint8
	Pattern         uint8
	CompressionType uint8
)

const (
	ScopeLocal  Scope = 0x1 // ScopeLocal means one bit per single occurrence.
	ScopeGlobal Scope = 0x2 // ScopeGlobal means one bit controls every occurrence in lockstep.

	PatternTab             Pattern = 0x1 // PatternTab represents tab -> four spaces.
	PatternContraction     Pattern = 0x2 // PatternContraction represents contraction <-> expansion.
	PatternDirectionalMark Pattern = 0x3 // PatternDirectionalMark represents RLM+LRM before a sentence period.
	PatternWordJoiner      Pattern = 0x4 // PatternWordJoiner represents a word joiner after an uppercase letter.
	PatternZeroWidthSpace  Pattern = 0x5 // PatternZeroWidthSpace represents a zero-width space after a word.
	PatternQuote           Pattern = 0x6 // PatternQuote represents double quote -> single quote.
	PatternDigit           Pattern = 0x7 // PatternDigit represents a single digit -> English word.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionXZ   CompressionType = 0x5 // CompressionXZ represents XZ (LZMA2) compression.
)

func (s Scope) String() string {
	switch s {
	case ScopeLocal:
		return "Local"
	case ScopeGlobal:
		return "Global"
	default:
		return "Unknown"
	}
}

func (p Pattern) String() string {
	switch p {
	case PatternTab:
		return "Tab"
	case PatternContraction:
		return "Contraction"
	case PatternDirectionalMark:
		return "DirectionalMark"
	case PatternWordJoiner:
		return "WordJoiner"
	case PatternZeroWidthSpace:
		return "ZeroWidthSpace"
	case PatternQuote:
		return "Quote"
	case PatternDigit:
		return "Digit"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionXZ:
		return "XZ"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a case-insensitive name such as "zstd" to its CompressionType.
func ParseCompression(name string) (CompressionType, bool) {
	for _, c := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4, CompressionXZ} {
		if strings.EqualFold(c.String(), name) {
			return c, true
		}
	}

	return 0, false
}
