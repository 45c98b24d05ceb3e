// Package payload frames byte messages as bit strings for hiding in text.
//
// A packed payload is a fixed header followed by the (optionally compressed)
// body:
//
//	+---------+-------------+--------+-----------+----------+
//	| Byte 0  | Byte 0      | 1..2   | 3..6      | 7..      |
//	| bits 7-4| bits 3-0    |        |           |          |
//	+---------+-------------+--------+-----------+----------+
//	| version | compression | length | checksum  | body     |
//	+---------+-------------+--------+-----------+----------+
//
// Length and checksum are little-endian. The checksum is the low 32 bits of
// the xxHash64 of the stored body. Bytes become bits most significant bit
// first, so the result can be passed straight to codec.Encoder.
//
// Carriers usually have more capacity than a message needs; Unpack reads the
// header to find the end of the payload and ignores any bits after it.
package payload
