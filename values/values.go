// Package values implements the value codec for mapped metric slots.
//
// Every storable value type satisfies the Value interface: it reports one of
// the seven fixed type codes from the format package and serializes itself
// into a byte sink in the exact shape the external reader expects.
//
// Numeric types always encode as 8 bytes regardless of native width: the
// value's bit pattern is extracted into an unsigned integer of matching
// width, widened to 64 bits, and written in the caller's byte order. Keeping
// every numeric slot the same width lets the reader locate and decode a value
// from its type code alone, at the cost of four wasted bytes for 32-bit
// types.
//
// Strings encode as their raw bytes followed by exactly one zero byte. A
// string containing a zero byte cannot be represented and fails before
// anything reaches the sink.
package values

import (
	"io"
	"math"

	"github.com/arloliu/mmv/endian"
	"github.com/arloliu/mmv/errs"
	"github.com/arloliu/mmv/format"
)

// Value is the capability every storable metric value type provides.
//
// Implementations are the seven defined types in this package; the type code
// and the encoded shape are fixed per type and must stay in lockstep with the
// external binary layout.
type Value interface {
	// Type returns the fixed on-wire type code for this value type.
	Type() format.Type

	// Encode writes the value's canonical encoded form to w using the given
	// byte order. It fails only if the sink fails, or for String values that
	// contain an embedded zero byte. On failure nothing is written.
	Encode(engine endian.EndianEngine, w io.Writer) error
}

type (
	Int32   int32
	Uint32  uint32
	Int64   int64
	Uint64  uint64
	Float32 float32
	Float64 float64
	String  string
)

func (v Int32) Type() format.Type   { return format.TypeInt32 }
func (v Uint32) Type() format.Type  { return format.TypeUint32 }
func (v Int64) Type() format.Type   { return format.TypeInt64 }
func (v Uint64) Type() format.Type  { return format.TypeUint64 }
func (v Float32) Type() format.Type { return format.TypeFloat32 }
func (v Float64) Type() format.Type { return format.TypeFloat64 }
func (v String) Type() format.Type  { return format.TypeString }

func (v Int32) Encode(engine endian.EndianEngine, w io.Writer) error {
	// int32 -> uint32 keeps the bit pattern; uint32 -> uint64 zero-extends.
	return encodeBits(engine, w, uint64(uint32(v)))
}

func (v Uint32) Encode(engine endian.EndianEngine, w io.Writer) error {
	return encodeBits(engine, w, uint64(v))
}

func (v Int64) Encode(engine endian.EndianEngine, w io.Writer) error {
	return encodeBits(engine, w, uint64(v))
}

func (v Uint64) Encode(engine endian.EndianEngine, w io.Writer) error {
	return encodeBits(engine, w, uint64(v))
}

func (v Float32) Encode(engine endian.EndianEngine, w io.Writer) error {
	return encodeBits(engine, w, uint64(math.Float32bits(float32(v))))
}

func (v Float64) Encode(engine endian.EndianEngine, w io.Writer) error {
	return encodeBits(engine, w, math.Float64bits(float64(v)))
}

func (v String) Encode(engine endian.EndianEngine, w io.Writer) error {
	s := string(v)
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return errs.ErrEmbeddedNul
		}
	}

	// Single write so a failing sink never leaves a partial value behind.
	buf := make([]byte, 0, len(s)+1)
	buf = append(buf, s...)
	buf = append(buf, 0)

	_, err := w.Write(buf)

	return err
}

// encodeBits writes the widened 64-bit pattern as one 8-byte write.
func encodeBits(engine endian.EndianEngine, w io.Writer, bits uint64) error {
	var buf [format.NumericValueLen]byte
	engine.PutUint64(buf[:], bits)

	_, err := w.Write(buf[:])

	return err
}
