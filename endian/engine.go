// Package endian provides byte order utilities for encoding metric values.
//
// The external mapped-value format fixes a single byte order for the whole
// producing process: every numeric slot in the shared region is written in
// that one order, and readers learn it from the file header emitted by the
// registry. This package models that choice as an explicit EndianEngine value
// that callers thread into every encode call, rather than as ambient global
// state.
//
// Most producers should use Native(), since the reader normally runs on the
// same host:
//
//	import "github.com/arloliu/mmv/endian"
//
//	m, err := metric.New("cpu.user", 1, format.SemInstant, 0, values.Uint64(0),
//	    "user CPU", "", metric.WithByteOrder(endian.Native()))
//
// For regions consumed by a remote or cross-architecture reader, pick
// Little() or Big() explicitly and keep it for the life of the process.
//
// The returned EndianEngine instances are immutable and stateless, and are
// safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for byte order operations. It is satisfied by
// binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Native returns the engine matching the host's byte order.
//
// This is the default order for metric regions: a process that never calls
// WithByteOrder writes every numeric value in host order.
func Native() EndianEngine {
	if IsNativeBigEndian() {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Little returns the little-endian engine.
func Little() EndianEngine {
	return binary.LittleEndian
}

// Big returns the big-endian engine.
func Big() EndianEngine {
	return binary.BigEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return !IsNativeBigEndian()
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	// 0x0100 is 256. On a big-endian host the MSB (0x01) sits at the lowest
	// address; on a little-endian host the LSB (0x00) does.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	return b[0] == 0x01
}
