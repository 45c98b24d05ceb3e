package codec

import (
	"fmt"
	"slices"

	"github.com/arloliu/steganos/branchpoint"
	"github.com/arloliu/steganos/errs"
	"github.com/arloliu/steganos/format"
	"github.com/arloliu/steganos/internal/options"
	"github.com/arloliu/steganos/internal/pool"
)

// Encoder writes bit strings into carrier texts.
//
// An Encoder holds only configuration and may be shared between goroutines.
type Encoder struct {
	cyclicFill bool
}

// EncoderOption is a functional option for configuring Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCyclicFill repeats the bit string until it fills the carrier capacity.
// Default is false: branchpoints past the end of the bit string stay unchanged.
func WithCyclicFill(enabled bool) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.cyclicFill = enabled
	})
}

// NewEncoder creates an Encoder configured by opts.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	return options.Build(&Encoder{}, opts...)
}

// Encode hides bits in text.
//
// Bit i controls branchpoint i of Generate(text). It returns
// errs.ErrCapacityExceeded when bits is longer than the capacity and
// errs.ErrInvalidBit when bits contains format.Unknown. Encoding is
// deterministic.
func (enc *Encoder) Encode(bits format.Bits, text string) (string, error) {
	return enc.EncodeSet(bits, text, Generate(text))
}

// EncodeSet is Encode with a precomputed set, which must be Generate(text).
func (enc *Encoder) EncodeSet(bits format.Bits, text string, set branchpoint.Set) (string, error) {
	if len(bits) > set.Capacity() {
		return "", fmt.Errorf("%w: %d bits, capacity %d", errs.ErrCapacityExceeded, len(bits), set.Capacity())
	}
	for i, b := range bits {
		if b != format.Zero && b != format.One {
			return "", fmt.Errorf("%w: %s at index %d", errs.ErrInvalidBit, b, i)
		}
	}

	var edits []branchpoint.Edit
	for i, bp := range set {
		if enc.bitAt(bits, i) == format.One {
			edits = append(edits, bp.Edits...)
		}
	}
	if len(edits) == 0 {
		return text, nil
	}

	// rightmost first
	slices.SortFunc(edits, func(a, b branchpoint.Edit) int { return b.Start - a.Start })

	return apply([]rune(text), edits)
}

func (enc *Encoder) bitAt(bits format.Bits, i int) format.Bit {
	switch {
	case i < len(bits):
		return bits[i]
	case enc.cyclicFill && len(bits) > 0:
		return bits[i%len(bits)]
	default:
		return format.Zero
	}
}

// apply splices edits, sorted by descending start, into runes. Edits never
// overlap, so walking them back to front gives the same text as applying
// them one by one from the right.
func apply(runes []rune, edits []branchpoint.Edit) (string, error) {
	size := len(runes)
	for _, e := range edits {
		size += e.Delta()
	}
	out, cleanup := pool.GetRuneSlice(size)
	defer cleanup()

	prev := 0
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		if e.Start < prev || e.End > len(runes) {
			return "", fmt.Errorf("%w: %s over %d runes", errs.ErrInvalidEdit, e.Span, len(runes))
		}
		out = append(out, runes[prev:e.Start]...)
		out = append(out, []rune(e.Replacement)...)
		prev = e.End
	}
	out = append(out, runes[prev:]...)

	return string(out), nil
}
