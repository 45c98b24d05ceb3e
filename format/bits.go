package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/steganos/errs"
)

// Bit is a single decoded or to-be-encoded value.
//
// Unknown only appears in partial decode results and marks a branchpoint
// with no visible evidence in the excerpt.
type Bit uint8

const (
	Zero    Bit = 0
	One     Bit = 1
	Unknown Bit = 2
)

// Bits is an ordered bit string.
type Bits []Bit

func (b Bit) String() string {
	switch b {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return "?"
	}
}

// String renders the bits as "0", "1" and "?" characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		sb.WriteString(bit.String())
	}

	return sb.String()
}

// Known reports whether no bit is Unknown.
func (b Bits) Known() bool {
	for _, bit := range b {
		if bit == Unknown {
			return false
		}
	}

	return true
}

// ParseBits parses a string of '0', '1' and '?' characters.
func ParseBits(s string) (Bits, error) {
	bits := make(Bits, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			bits = append(bits, Zero)
		case '1':
			bits = append(bits, One)
		case '?':
			bits = append(bits, Unknown)
		default:
			return nil, fmt.Errorf("%w: %q at position %d", errs.ErrInvalidBit, r, i)
		}
	}

	return bits, nil
}

// BytesToBits expands data into bits, most significant bit first.
func BytesToBits(data []byte) Bits {
	bits := make(Bits, 0, len(data)*8)
	for _, b := range data {
		for shift := 7; shift >= 0; shift-- {
			bits = append(bits, Bit((b>>shift)&1))
		}
	}

	return bits
}

// BitsToBytes packs bits into bytes, most significant bit first.
//
// A trailing partial byte is zero-padded. Unknown bits are treated as zero;
// callers that care must check Known first.
func BitsToBytes(bits Bits) []byte {
	data := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit == One {
			data[i/8] |= 1 << (7 - uint(i%8))
		}
	}

	return data
}
