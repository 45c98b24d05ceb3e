// Package hash holds the xxHash64 helpers for carrier identity and payload
// checksums.
package hash

import "github.com/cespare/xxhash/v2"

// CarrierID identifies an original text. Encoded copies of the same carrier
// hash differently, so only the original should be passed in.
func CarrierID(text string) uint64 {
	return xxhash.Sum64String(text)
}

// Checksum32 returns the low 32 bits of the xxHash64 of data.
func Checksum32(data []byte) uint32 {
	return uint32(xxhash.Sum64(data))
}
