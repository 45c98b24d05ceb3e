package compress

import "github.com/klauspost/compress/s2"

// S2Compressor stores payload bodies as single S2 blocks.
//
// Payload bodies are tiny, so it always uses the best-ratio encoder.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBest(nil, data), nil
}

// Decompress checks the length prefix before allocating the output.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n > MaxDecompressedSize {
		return nil, errTooLarge("s2")
	}

	return s2.Decode(make([]byte, n), data)
}
