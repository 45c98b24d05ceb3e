package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCarrierID(t *testing.T) {
	tests := []struct {
		name string
		text string
		id   uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"sentence", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.id, CarrierID(tt.text))
		})
	}
}

func TestCarrierID_DistinguishesEncodedCopy(t *testing.T) {
	original := "I am 9 years old."
	encoded := "I\u2060 am nine years old."
	require.NotEqual(t, CarrierID(original), CarrierID(encoded))
}

func TestChecksum32(t *testing.T) {
	require.Equal(t, uint32(0xdb678139), Checksum32([]byte("test")))
	require.Equal(t, uint32(CarrierID("hi")), Checksum32([]byte("hi")))
	require.NotEqual(t, Checksum32([]byte("hi")), Checksum32([]byte("ih")))
}

func BenchmarkCarrierID(b *testing.B) {
	text := strings.Repeat("The Quick Fox can't stop. ", 40)
	for b.Loop() {
		CarrierID(text)
	}
}
