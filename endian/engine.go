// Package endian provides the byte order used by the payload header.
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so the
// payload writer can append fixed-width fields without scratch buffers:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint16(buf, uint16(len(body)))
//	size := engine.Uint16(buf[1:3])
package endian

import "encoding/binary"

// EndianEngine reads and appends fixed-width integers in one byte order.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the engine for the payload header fields.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
