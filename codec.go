package hyperbyte

import (
	"math"
	"math/bits"
	"unsafe"

	"github.com/x448/float16"
)

// Primitive codec. Every function in this file reinterprets a byte slice of
// exactly the numeric type's width; callers guarantee the length. The only
// bounds handling is the leading index hint, so a short slice panics at the
// hint instead of reading garbage.

// Little-endian decode.

func Uint8LE(b []byte) uint8 { return b[0] }

// Uint16LE decodes b[0:2] as a little-endian uint16.
func Uint16LE(b []byte) uint16 {
	_ = b[1]
	return uint16(b[0]) | uint16(b[1])<<8
}

// Uint32LE decodes b[0:4] as a little-endian uint32.
func Uint32LE(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// Uint64LE decodes b[0:8] as a little-endian uint64.
func Uint64LE(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// Uint128LE decodes b[0:16] as a little-endian Uint128.
func Uint128LE(b []byte) Uint128 {
	_ = b[15]
	return Uint128{Lo: Uint64LE(b), Hi: Uint64LE(b[8:])}
}

// UintLE decodes b[0:uintWidth] as a little-endian platform-width uint.
func UintLE(b []byte) uint {
	if bits.UintSize == 32 {
		return uint(Uint32LE(b))
	}
	return uint(Uint64LE(b))
}

func Int8LE(b []byte) int8 { return int8(b[0]) }

// Int16LE decodes b[0:2] as a little-endian int16.
func Int16LE(b []byte) int16 { return int16(Uint16LE(b)) }

// Int32LE decodes b[0:4] as a little-endian int32.
func Int32LE(b []byte) int32 { return int32(Uint32LE(b)) }

// Int64LE decodes b[0:8] as a little-endian int64.
func Int64LE(b []byte) int64 { return int64(Uint64LE(b)) }

// Int128LE decodes b[0:16] as a little-endian Int128.
func Int128LE(b []byte) Int128 {
	u := Uint128LE(b)
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}
}

// IntLE decodes b[0:uintWidth] as a little-endian platform-width int.
func IntLE(b []byte) int { return int(UintLE(b)) }

// Float16LE decodes b[0:2] as a little-endian half-precision float.
func Float16LE(b []byte) float16.Float16 { return float16.Frombits(Uint16LE(b)) }

// Float32LE decodes b[0:4] as a little-endian float32.
func Float32LE(b []byte) float32 { return math.Float32frombits(Uint32LE(b)) }

// Float64LE decodes b[0:8] as a little-endian float64.
func Float64LE(b []byte) float64 { return math.Float64frombits(Uint64LE(b)) }

// Little-endian encode.

func PutUint8LE(b []byte, v uint8) { b[0] = v }

// PutUint16LE encodes v into b[0:2] in little-endian order.
func PutUint16LE(b []byte, v uint16) {
	_ = b[1]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

// PutUint32LE encodes v into b[0:4] in little-endian order.
func PutUint32LE(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// PutUint64LE encodes v into b[0:8] in little-endian order.
func PutUint64LE(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

// PutUint128LE encodes v into b[0:16] in little-endian order.
func PutUint128LE(b []byte, v Uint128) {
	_ = b[15]
	PutUint64LE(b, v.Lo)
	PutUint64LE(b[8:], v.Hi)
}

// PutUintLE encodes v into b[0:uintWidth] in little-endian order.
func PutUintLE(b []byte, v uint) {
	if bits.UintSize == 32 {
		PutUint32LE(b, uint32(v))
		return
	}
	PutUint64LE(b, uint64(v))
}

func PutInt8LE(b []byte, v int8) { b[0] = byte(v) }

// PutInt16LE encodes v into b[0:2] in little-endian order.
func PutInt16LE(b []byte, v int16) { PutUint16LE(b, uint16(v)) }

// PutInt32LE encodes v into b[0:4] in little-endian order.
func PutInt32LE(b []byte, v int32) { PutUint32LE(b, uint32(v)) }

// PutInt64LE encodes v into b[0:8] in little-endian order.
func PutInt64LE(b []byte, v int64) { PutUint64LE(b, uint64(v)) }

// PutInt128LE encodes v into b[0:16] in little-endian order.
func PutInt128LE(b []byte, v Int128) {
	PutUint128LE(b, Uint128{Hi: uint64(v.Hi), Lo: v.Lo})
}

// PutIntLE encodes v into b[0:uintWidth] in little-endian order.
func PutIntLE(b []byte, v int) { PutUintLE(b, uint(v)) }

// PutFloat16LE encodes v into b[0:2] in little-endian order.
func PutFloat16LE(b []byte, v float16.Float16) { PutUint16LE(b, v.Bits()) }

// PutFloat32LE encodes v into b[0:4] in little-endian order.
func PutFloat32LE(b []byte, v float32) { PutUint32LE(b, math.Float32bits(v)) }

// PutFloat64LE encodes v into b[0:8] in little-endian order.
func PutFloat64LE(b []byte, v float64) { PutUint64LE(b, math.Float64bits(v)) }

// Big-endian decode.

func Uint8BE(b []byte) uint8 { return b[0] }

// Uint16BE decodes b[0:2] as a big-endian uint16.
func Uint16BE(b []byte) uint16 {
	_ = b[1]
	return uint16(b[1]) | uint16(b[0])<<8
}

// Uint32BE decodes b[0:4] as a big-endian uint32.
func Uint32BE(b []byte) uint32 {
	_ = b[3]
	return uint32(b[3]) | uint32(b[2])<<8 | uint32(b[1])<<16 | uint32(b[0])<<24
}

// Uint64BE decodes b[0:8] as a big-endian uint64.
func Uint64BE(b []byte) uint64 {
	_ = b[7]
	return uint64(b[7]) | uint64(b[6])<<8 | uint64(b[5])<<16 | uint64(b[4])<<24 |
		uint64(b[3])<<32 | uint64(b[2])<<40 | uint64(b[1])<<48 | uint64(b[0])<<56
}

// Uint128BE decodes b[0:16] as a big-endian Uint128.
func Uint128BE(b []byte) Uint128 {
	_ = b[15]
	return Uint128{Hi: Uint64BE(b), Lo: Uint64BE(b[8:])}
}

// UintBE decodes b[0:uintWidth] as a big-endian platform-width uint.
func UintBE(b []byte) uint {
	if bits.UintSize == 32 {
		return uint(Uint32BE(b))
	}
	return uint(Uint64BE(b))
}

func Int8BE(b []byte) int8 { return int8(b[0]) }

// Int16BE decodes b[0:2] as a big-endian int16.
func Int16BE(b []byte) int16 { return int16(Uint16BE(b)) }

// Int32BE decodes b[0:4] as a big-endian int32.
func Int32BE(b []byte) int32 { return int32(Uint32BE(b)) }

// Int64BE decodes b[0:8] as a big-endian int64.
func Int64BE(b []byte) int64 { return int64(Uint64BE(b)) }

// Int128BE decodes b[0:16] as a big-endian Int128.
func Int128BE(b []byte) Int128 {
	u := Uint128BE(b)
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}
}

// IntBE decodes b[0:uintWidth] as a big-endian platform-width int.
func IntBE(b []byte) int { return int(UintBE(b)) }

// Float16BE decodes b[0:2] as a big-endian half-precision float.
func Float16BE(b []byte) float16.Float16 { return float16.Frombits(Uint16BE(b)) }

// Float32BE decodes b[0:4] as a big-endian float32.
func Float32BE(b []byte) float32 { return math.Float32frombits(Uint32BE(b)) }

// Float64BE decodes b[0:8] as a big-endian float64.
func Float64BE(b []byte) float64 { return math.Float64frombits(Uint64BE(b)) }

// Big-endian encode.

func PutUint8BE(b []byte, v uint8) { b[0] = v }

// PutUint16BE encodes v into b[0:2] in big-endian order.
func PutUint16BE(b []byte, v uint16) {
	_ = b[1]
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

// PutUint32BE encodes v into b[0:4] in big-endian order.
func PutUint32BE(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// PutUint64BE encodes v into b[0:8] in big-endian order.
func PutUint64BE(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}

// PutUint128BE encodes v into b[0:16] in big-endian order.
func PutUint128BE(b []byte, v Uint128) {
	_ = b[15]
	PutUint64BE(b, v.Hi)
	PutUint64BE(b[8:], v.Lo)
}

// PutUintBE encodes v into b[0:uintWidth] in big-endian order.
func PutUintBE(b []byte, v uint) {
	if bits.UintSize == 32 {
		PutUint32BE(b, uint32(v))
		return
	}
	PutUint64BE(b, uint64(v))
}

func PutInt8BE(b []byte, v int8) { b[0] = byte(v) }

// PutInt16BE encodes v into b[0:2] in big-endian order.
func PutInt16BE(b []byte, v int16) { PutUint16BE(b, uint16(v)) }

// PutInt32BE encodes v into b[0:4] in big-endian order.
func PutInt32BE(b []byte, v int32) { PutUint32BE(b, uint32(v)) }

// PutInt64BE encodes v into b[0:8] in big-endian order.
func PutInt64BE(b []byte, v int64) { PutUint64BE(b, uint64(v)) }

// PutInt128BE encodes v into b[0:16] in big-endian order.
func PutInt128BE(b []byte, v Int128) {
	PutUint128BE(b, Uint128{Hi: uint64(v.Hi), Lo: v.Lo})
}

// PutIntBE encodes v into b[0:uintWidth] in big-endian order.
func PutIntBE(b []byte, v int) { PutUintBE(b, uint(v)) }

// PutFloat16BE encodes v into b[0:2] in big-endian order.
func PutFloat16BE(b []byte, v float16.Float16) { PutUint16BE(b, v.Bits()) }

// PutFloat32BE encodes v into b[0:4] in big-endian order.
func PutFloat32BE(b []byte, v float32) { PutUint32BE(b, math.Float32bits(v)) }

// PutFloat64BE encodes v into b[0:8] in big-endian order.
func PutFloat64BE(b []byte, v float64) { PutUint64BE(b, math.Float64bits(v)) }

// Native-endian decode. These reinterpret the slice memory directly as the
// platform's in-memory representation, so no byte shuffling happens at all.

func Uint8NE(b []byte) uint8 { return b[0] }

// Uint16NE reinterprets b[0:2] as a native-order uint16.
func Uint16NE(b []byte) uint16 {
	_ = b[1]
	return *(*uint16)(unsafe.Pointer(unsafe.SliceData(b)))
}

// Uint32NE reinterprets b[0:4] as a native-order uint32.
func Uint32NE(b []byte) uint32 {
	_ = b[3]
	return *(*uint32)(unsafe.Pointer(unsafe.SliceData(b)))
}

// Uint64NE reinterprets b[0:8] as a native-order uint64.
func Uint64NE(b []byte) uint64 {
	_ = b[7]
	return *(*uint64)(unsafe.Pointer(unsafe.SliceData(b)))
}

// Uint128NE reinterprets b[0:16] as a native-order Uint128.
func Uint128NE(b []byte) Uint128 {
	if hostLittle {
		return Uint128LE(b)
	}
	return Uint128BE(b)
}

// UintNE reinterprets b[0:uintWidth] as a native-order uint.
func UintNE(b []byte) uint {
	_ = b[uintWidth-1]
	return *(*uint)(unsafe.Pointer(unsafe.SliceData(b)))
}

func Int8NE(b []byte) int8 { return int8(b[0]) }

// Int16NE reinterprets b[0:2] as a native-order int16.
func Int16NE(b []byte) int16 { return int16(Uint16NE(b)) }

// Int32NE reinterprets b[0:4] as a native-order int32.
func Int32NE(b []byte) int32 { return int32(Uint32NE(b)) }

// Int64NE reinterprets b[0:8] as a native-order int64.
func Int64NE(b []byte) int64 { return int64(Uint64NE(b)) }

// Int128NE reinterprets b[0:16] as a native-order Int128.
func Int128NE(b []byte) Int128 {
	u := Uint128NE(b)
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}
}

// IntNE reinterprets b[0:uintWidth] as a native-order int.
func IntNE(b []byte) int { return int(UintNE(b)) }

// Float16NE reinterprets b[0:2] as a native-order half-precision float.
func Float16NE(b []byte) float16.Float16 { return float16.Frombits(Uint16NE(b)) }

// Float32NE reinterprets b[0:4] as a native-order float32.
func Float32NE(b []byte) float32 {
	_ = b[3]
	return *(*float32)(unsafe.Pointer(unsafe.SliceData(b)))
}

// Float64NE reinterprets b[0:8] as a native-order float64.
func Float64NE(b []byte) float64 {
	_ = b[7]
	return *(*float64)(unsafe.Pointer(unsafe.SliceData(b)))
}

// Native-endian encode.

func PutUint8NE(b []byte, v uint8) { b[0] = v }

// PutUint16NE stores v into b[0:2] in native order.
func PutUint16NE(b []byte, v uint16) {
	_ = b[1]
	*(*uint16)(unsafe.Pointer(unsafe.SliceData(b))) = v
}

// PutUint32NE stores v into b[0:4] in native order.
func PutUint32NE(b []byte, v uint32) {
	_ = b[3]
	*(*uint32)(unsafe.Pointer(unsafe.SliceData(b))) = v
}

// PutUint64NE stores v into b[0:8] in native order.
func PutUint64NE(b []byte, v uint64) {
	_ = b[7]
	*(*uint64)(unsafe.Pointer(unsafe.SliceData(b))) = v
}

// PutUint128NE stores v into b[0:16] in native order.
func PutUint128NE(b []byte, v Uint128) {
	if hostLittle {
		PutUint128LE(b, v)
		return
	}
	PutUint128BE(b, v)
}

// PutUintNE stores v into b[0:uintWidth] in native order.
func PutUintNE(b []byte, v uint) {
	_ = b[uintWidth-1]
	*(*uint)(unsafe.Pointer(unsafe.SliceData(b))) = v
}

func PutInt8NE(b []byte, v int8) { b[0] = byte(v) }

// PutInt16NE stores v into b[0:2] in native order.
func PutInt16NE(b []byte, v int16) { PutUint16NE(b, uint16(v)) }

// PutInt32NE stores v into b[0:4] in native order.
func PutInt32NE(b []byte, v int32) { PutUint32NE(b, uint32(v)) }

// PutInt64NE stores v into b[0:8] in native order.
func PutInt64NE(b []byte, v int64) { PutUint64NE(b, uint64(v)) }

// PutInt128NE stores v into b[0:16] in native order.
func PutInt128NE(b []byte, v Int128) {
	PutUint128NE(b, Uint128{Hi: uint64(v.Hi), Lo: v.Lo})
}

// PutIntNE stores v into b[0:uintWidth] in native order.
func PutIntNE(b []byte, v int) { PutUintNE(b, uint(v)) }

// PutFloat16NE stores v into b[0:2] in native order.
func PutFloat16NE(b []byte, v float16.Float16) { PutUint16NE(b, v.Bits()) }

// PutFloat32NE stores v into b[0:4] in native order.
func PutFloat32NE(b []byte, v float32) {
	_ = b[3]
	*(*float32)(unsafe.Pointer(unsafe.SliceData(b))) = v
}

// PutFloat64NE stores v into b[0:8] in native order.
func PutFloat64NE(b []byte, v float64) {
	_ = b[7]
	*(*float64)(unsafe.Pointer(unsafe.SliceData(b))) = v
}
