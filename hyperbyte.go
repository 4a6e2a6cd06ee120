// Package hyperbyte converts fixed-width numeric values to and from raw
// bytes in little-endian, big-endian and native byte order, with two API
// tiers trading safety for speed.
//
// The bottom tier is a set of primitive codec functions (Uint32LE,
// PutFloat64BE, ...) that reinterpret a byte slice of exactly the type's
// width. They carry no bounds check of their own; callers guarantee the
// slice length.
//
// On top of that sit two cursor styles:
//
//   - Checked cursor functions (ReadUint32LE, WriteUint32LE, ...) thread an
//     externally owned position through every call and return a descriptive
//     error when the requested range falls outside the buffer. The position
//     is never advanced on failure, so several independent cursors can walk
//     one buffer. SafeByteReader and SafeByteWriter wrap the same checks in
//     a sticky-error type so checked code can be driven through the order
//     interfaces.
//
//   - FastByteReader and FastByteWriter own their position internally and
//     skip the explicit range comparison; an out-of-range access panics at
//     the slice operation instead of returning an error. Misuse is a
//     programming error here, not a data error.
//
// An instance is not bound to one byte order: the order is chosen per call
// by method name, or at compile time by asking for one of the capability
// interfaces (LittleEndianReader, BigEndianWriter, ...). HyperStream and
// the narrowed NetworkStream/LittleStream/NativeStream compose one reader
// and one writer into a single bidirectional object.
package hyperbyte

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
)

var ErrShortBuffer = errors.New("hyperbyte: short buffer")

// uintWidth is the encoded size of uint/int on this platform.
const uintWidth = bits.UintSize / 8

var hostLittle = binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 1

// Uint128 is a 128-bit unsigned integer held as two 64-bit halves.
type Uint128 struct {
	Hi, Lo uint64
}

// Int128 is a 128-bit two's-complement signed integer.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Uint128From64 widens v to a Uint128.
func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Int128From64 sign-extends v to an Int128.
func Int128From64(v int64) Int128 {
	return Int128{Hi: v >> 63, Lo: uint64(v)}
}

// checkRange validates that w bytes are available at offset p in b.
func checkRange(what string, b []byte, p, w int) error {
	if p < 0 || len(b)-p < w {
		return fmt.Errorf("%w: %s needs bytes [%d:%d], buffer has %d", ErrShortBuffer, what, p, p+w, len(b))
	}
	return nil
}
