// Package compress provides compression codecs for hidden message payloads.
//
// Carrier capacity is scarce: a paragraph of prose yields a few dozen bits.
// Compressing a message body before it is framed and embedded can therefore
// make the difference between a message fitting or not. Short messages rarely
// benefit, which is why CompressionNone is the payload default.
//
// Supported algorithms:
//   - None: No compression
//   - Zstd: Best ratio on longer text
//   - S2: Fast, moderate ratio
//   - LZ4: Fast, moderate ratio, smallest framing overhead
//   - XZ: LZMA2, large framing overhead, good ratio on long text
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "payload")
//	if err != nil {
//	    return err
//	}
//	body, err := codec.Compress([]byte(message))
//
// All codecs are stateless values and safe for concurrent use.
package compress
