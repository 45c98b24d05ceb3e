package payload

import (
	"fmt"
	"math"

	"github.com/arloliu/steganos/compress"
	"github.com/arloliu/steganos/endian"
	"github.com/arloliu/steganos/errs"
	"github.com/arloliu/steganos/format"
	"github.com/arloliu/steganos/internal/hash"
	"github.com/arloliu/steganos/internal/options"
	"github.com/arloliu/steganos/internal/pool"
)

const (
	// Version is the payload format version written by Pack.
	Version = 1

	// HeaderSize is the size of the payload header in bytes.
	HeaderSize = 7

	// HeaderBits is the number of bits of the payload header.
	HeaderBits = HeaderSize * 8

	// MaxBodySize is the largest stored body the header can describe.
	MaxBodySize = math.MaxUint16
)

var engine = endian.GetLittleEndianEngine()

// Header is the decoded payload header.
type Header struct {
	Version     uint8
	Compression format.CompressionType
	Length      uint16
	Checksum    uint32
}

// Bits returns the total bit length of a payload with this header.
func (h Header) Bits() int {
	return (HeaderSize + int(h.Length)) * 8
}

// ParseHeader decodes the header at the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: need %d header bytes, got %d", errs.ErrIncompletePayload, HeaderSize, len(data))
	}

	h := Header{
		Version:     data[0] >> 4,
		Compression: format.CompressionType(data[0] & 0x0f),
		Length:      engine.Uint16(data[1:3]),
		Checksum:    engine.Uint32(data[3:7]),
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidPayloadHeader, h.Version)
	}
	if _, err := compress.GetCodec(h.Compression); err != nil {
		return Header{}, fmt.Errorf("%w: %w", errs.ErrInvalidPayloadHeader, err)
	}

	return h, nil
}

// Pack frames msg as a bit string.
//
// It returns errs.ErrPayloadTooLarge when msg is longer than
// compress.MaxDecompressedSize or the stored body exceeds MaxBodySize.
func Pack(msg []byte, opts ...Option) (format.Bits, error) {
	cfg, err := options.Build(newConfig(), opts...)
	if err != nil {
		return nil, err
	}

	if len(msg) > compress.MaxDecompressedSize {
		return nil, fmt.Errorf("%w: message of %d bytes, max %d", errs.ErrPayloadTooLarge, len(msg), compress.MaxDecompressedSize)
	}

	body, err := cfg.codec.Compress(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}
	if len(body) > MaxBodySize {
		return nil, fmt.Errorf("%w: %d bytes, max %d", errs.ErrPayloadTooLarge, len(body), MaxBodySize)
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	buf.B = append(buf.B, Version<<4|byte(cfg.compression))
	buf.B = engine.AppendUint16(buf.B, uint16(len(body)))
	buf.B = engine.AppendUint32(buf.B, hash.Checksum32(body))
	buf.MustWrite(body)

	return format.BytesToBits(buf.Bytes()), nil
}

// Unpack extracts the message framed at the start of bits.
//
// Bits after the payload are ignored. It returns errs.ErrIncompletePayload
// when bits ends early or holds format.Unknown within the payload,
// errs.ErrInvalidPayloadHeader for a malformed header and
// errs.ErrChecksumMismatch when the body is corrupted.
func Unpack(bits format.Bits) ([]byte, error) {
	if len(bits) < HeaderBits {
		return nil, fmt.Errorf("%w: need %d header bits, got %d", errs.ErrIncompletePayload, HeaderBits, len(bits))
	}
	if !bits[:HeaderBits].Known() {
		return nil, fmt.Errorf("%w: header has unknown bits", errs.ErrIncompletePayload)
	}

	h, err := ParseHeader(format.BitsToBytes(bits[:HeaderBits]))
	if err != nil {
		return nil, err
	}
	if len(bits) < h.Bits() {
		return nil, fmt.Errorf("%w: need %d bits, got %d", errs.ErrIncompletePayload, h.Bits(), len(bits))
	}
	if !bits[HeaderBits:h.Bits()].Known() {
		return nil, fmt.Errorf("%w: body has unknown bits", errs.ErrIncompletePayload)
	}

	body := format.BitsToBytes(bits[HeaderBits:h.Bits()])
	if sum := hash.Checksum32(body); sum != h.Checksum {
		return nil, fmt.Errorf("%w: got %#08x, want %#08x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayloadHeader, err)
	}
	msg, err := codec.Decompress(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	return msg, nil
}

// Size returns the number of bits Pack would produce for msg.
func Size(msg []byte, opts ...Option) (int, error) {
	bits, err := Pack(msg, opts...)
	if err != nil {
		return 0, err
	}

	return len(bits), nil
}
