// Package steganos hides bit strings in ordinary prose by making small,
// individually reversible edits that a reader does not notice.
//
// Every text offers a set of branchpoints: places where the text can be
// written two equivalent ways. Each branchpoint carries one bit.
//
// # Branchpoint Families
//
//   - literal tab <-> four spaces (local)
//   - contraction <-> expansion, e.g. "won't" and "will not" (local)
//   - invisible right-to-left and left-to-right marks before a sentence period (local)
//   - invisible word joiner after an uppercase letter (local)
//   - zero-width space after a word (local)
//   - every double quote <-> single quote (global)
//   - every standalone digit 1-9 <-> its English word (global)
//
// A local branchpoint is one occurrence; a global one switches every
// occurrence of its pattern together, so its bit can be read from any
// excerpt that shows one occurrence. URLs, fenced code blocks and markdown
// links are never edited.
//
// # Basic Usage
//
// Hiding and recovering raw bits:
//
//	import "github.com/arloliu/steganos"
//
//	text := "I am 9 years old."
//	bits, _ := format.ParseBits("1")
//	encoded, _ := steganos.Encode(bits, text)   // "I am nine years old."
//	decoded, _ := steganos.DecodeFullText(encoded, text)
//	fmt.Println(decoded) // 1000
//
// Hiding a byte message with a checksummed header:
//
//	encoded, err := steganos.HideMessage([]byte("hi"), carrier)
//	msg, err := steganos.RevealMessage(encoded, carrier)
//
// Decoding needs the original text. Only the excerpt of an encoded text is
// needed; DecodePartialText reports format.Unknown for bits it cannot see.
//
// # Package Structure
//
// This package wraps the codec and payload packages for the common cases.
// Use codec directly for encoder options, precomputed branchpoint sets and
// alignment details.
package steganos

import (
	"fmt"

	"github.com/arloliu/steganos/branchpoint"
	"github.com/arloliu/steganos/codec"
	"github.com/arloliu/steganos/format"
	"github.com/arloliu/steganos/internal/hash"
	"github.com/arloliu/steganos/payload"
)

// GenerateBranchpoints returns the canonical branchpoint set of text.
//
// Globals come first, then locals by position. Bit i of an encoded bit
// string controls branchpoint i.
func GenerateBranchpoints(text string) branchpoint.Set {
	return codec.Generate(text)
}

// BitCapacity returns the maximum number of bits text can carry.
func BitCapacity(text string) int {
	return codec.Capacity(text)
}

// Encode hides bits in text.
//
// Branchpoints past the end of bits are left unchanged unless
// codec.WithCyclicFill is given. Returns errs.ErrCapacityExceeded when bits
// does not fit.
//
// Example:
//
//	encoded, err := steganos.Encode(bits, text, codec.WithCyclicFill(true))
func Encode(bits format.Bits, text string, opts ...codec.EncoderOption) (string, error) {
	enc, err := codec.NewEncoder(opts...)
	if err != nil {
		return "", err
	}

	return enc.Encode(bits, text)
}

// DecodeFullText recovers one bit per branchpoint of original from encoded.
// Returns errs.ErrAlignment when encoded was not produced from original.
func DecodeFullText(encoded, original string) (format.Bits, error) {
	return codec.DecodeFull(encoded, original)
}

// DecodePartialText recovers the bits visible in an excerpt of an encoded
// text. w is the believed span of original the excerpt came from; negative
// offsets count from the end. Bits without evidence are format.Unknown.
func DecodePartialText(excerpt, original string, w codec.Window) (format.Bits, error) {
	return codec.DecodePartial(excerpt, original, w)
}

// MessageCapacity returns the largest message, in bytes, that HideMessage can
// store in text without compression.
func MessageCapacity(text string) int {
	return max(BitCapacity(text)/8-payload.HeaderSize, 0)
}

// HideMessage packs msg into a checksummed payload and encodes it in text.
//
// Returns errs.ErrCapacityExceeded when the payload does not fit.
//
// Example:
//
//	encoded, err := steganos.HideMessage([]byte("at dawn"), carrier,
//	    payload.WithCompression(format.CompressionZstd),
//	)
func HideMessage(msg []byte, text string, opts ...payload.Option) (string, error) {
	bits, err := payload.Pack(msg, opts...)
	if err != nil {
		return "", err
	}

	encoded, err := Encode(bits, text)
	if err != nil {
		return "", fmt.Errorf("failed to hide %d byte message: %w", len(msg), err)
	}

	return encoded, nil
}

// RevealMessage extracts a message hidden by HideMessage.
func RevealMessage(encoded, original string) ([]byte, error) {
	bits, err := DecodeFullText(encoded, original)
	if err != nil {
		return nil, err
	}

	return payload.Unpack(bits)
}

// RevealMessagePartial extracts a message from an excerpt of an encoded text.
//
// It succeeds only when every payload bit is visible in the excerpt;
// otherwise it returns errs.ErrIncompletePayload.
func RevealMessagePartial(excerpt, original string, w codec.Window) ([]byte, error) {
	bits, err := DecodePartialText(excerpt, original, w)
	if err != nil {
		return nil, err
	}

	msg, err := payload.Unpack(bits)
	if err != nil {
		return nil, fmt.Errorf("failed to reveal message from excerpt: %w", err)
	}

	return msg, nil
}

// CarrierID returns a 64-bit identifier of a carrier text.
//
// Decoding needs the exact original text; storing its ID next to an encoded
// copy lets callers find the right carrier again.
func CarrierID(text string) uint64 {
	return hash.CarrierID(text)
}
