// Package crc32util provides the IEEE 802.3 CRC32 helpers shared by the
// bytewords, fountain and ur packages.
package crc32util

import (
	"encoding/binary"
	"hash/crc32"
)

// Int returns the IEEE CRC32 of data.
func Int(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// Bytes returns the IEEE CRC32 of data as a 4-byte big-endian slice.
func Bytes(data []byte) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, Int(data))
	return buf
}
