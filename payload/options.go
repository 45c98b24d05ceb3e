package payload

import (
	"fmt"

	"github.com/arloliu/steganos/compress"
	"github.com/arloliu/steganos/format"
	"github.com/arloliu/steganos/internal/options"
)

// Config holds the packing configuration.
type Config struct {
	compression format.CompressionType
	codec       compress.Codec
}

func newConfig() *Config {
	codec, _ := compress.GetCodec(format.CompressionNone)

	return &Config{compression: format.CompressionNone, codec: codec}
}

// Option is a functional option for configuring Pack.
type Option = options.Option[*Config]

// WithCompression selects the body compression.
// Default is format.CompressionNone; short messages rarely shrink.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *Config) error {
		codec, err := compress.CreateCodec(c, "payload")
		if err != nil {
			return fmt.Errorf("payload option: %w", err)
		}
		cfg.compression = c
		cfg.codec = codec

		return nil
	})
}
