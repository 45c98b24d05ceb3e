// Package errs defines the sentinel errors returned by steganos packages.
//
// Errors are wrapped with context using fmt.Errorf("%w: ...") and should be
// matched with errors.Is.
package errs

import "errors"

var (
	// ErrAlignment indicates the encoded text (or excerpt) does not correspond
	// to the original text outside the branchpoint edits.
	ErrAlignment = errors.New("encoded text does not align with original text")

	// ErrCapacityExceeded indicates the bit string is longer than the carrier's capacity.
	ErrCapacityExceeded = errors.New("bit string exceeds carrier capacity")

	// ErrInvalidBit indicates a bit other than 0 or 1 was supplied for encoding.
	ErrInvalidBit = errors.New("invalid bit value")

	// ErrInvalidWindow indicates a partial-decode window that does not fit the original text.
	ErrInvalidWindow = errors.New("invalid alignment window")

	// ErrInvalidEdit indicates an edit whose span does not fit the text it refers to.
	ErrInvalidEdit = errors.New("invalid edit span")

	// ErrInvalidPayloadHeader indicates a malformed payload header.
	ErrInvalidPayloadHeader = errors.New("invalid payload header")

	// ErrIncompletePayload indicates the bit string does not contain the whole payload.
	ErrIncompletePayload = errors.New("incomplete payload")

	// ErrChecksumMismatch indicates the payload body failed checksum verification.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrPayloadTooLarge indicates a message body larger than the header can describe.
	ErrPayloadTooLarge = errors.New("payload too large")
)
