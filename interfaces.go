package hyperbyte

import "github.com/x448/float16"

// Capability interfaces. A concrete reader or writer is not bound to one
// byte order; it satisfies all three order interfaces at once and callers
// pick the order at compile time by asking for one of them. Generic code
// written against LittleEndianReader runs unchanged over FastByteReader,
// SafeByteReader or HyperStream.

// RawReader is the order-independent part of the read surface: position
// accounting and the variable-length block operation.
type RawReader interface {
	ReadN(n int) []byte
	Skip(n int)
	Pos() int
	Remaining() int
}

// RawWriter is the order-independent part of the write surface.
type RawWriter interface {
	WriteBytes(p []byte)
	Bytes() []byte
	ToBytes() []byte
	Len() int
}

// LittleEndianReader reads every supported fixed-width type in
// little-endian order.
type LittleEndianReader interface {
	Uint8LE() uint8
	Uint16LE() uint16
	Uint32LE() uint32
	Uint64LE() uint64
	Uint128LE() Uint128
	UintLE() uint
	Int8LE() int8
	Int16LE() int16
	Int32LE() int32
	Int64LE() int64
	Int128LE() Int128
	IntLE() int
	Float16LE() float16.Float16
	Float32LE() float32
	Float64LE() float64
}

// BigEndianReader reads every supported fixed-width type in big-endian
// order.
type BigEndianReader interface {
	Uint8BE() uint8
	Uint16BE() uint16
	Uint32BE() uint32
	Uint64BE() uint64
	Uint128BE() Uint128
	UintBE() uint
	Int8BE() int8
	Int16BE() int16
	Int32BE() int32
	Int64BE() int64
	Int128BE() Int128
	IntBE() int
	Float16BE() float16.Float16
	Float32BE() float32
	Float64BE() float64
}

// NativeEndianReader reads every supported fixed-width type in the
// platform's native order.
type NativeEndianReader interface {
	Uint8NE() uint8
	Uint16NE() uint16
	Uint32NE() uint32
	Uint64NE() uint64
	Uint128NE() Uint128
	UintNE() uint
	Int8NE() int8
	Int16NE() int16
	Int32NE() int32
	Int64NE() int64
	Int128NE() Int128
	IntNE() int
	Float16NE() float16.Float16
	Float32NE() float32
	Float64NE() float64
}

// LittleEndianWriter writes every supported fixed-width type in
// little-endian order.
type LittleEndianWriter interface {
	PutUint8LE(uint8)
	PutUint16LE(uint16)
	PutUint32LE(uint32)
	PutUint64LE(uint64)
	PutUint128LE(Uint128)
	PutUintLE(uint)
	PutInt8LE(int8)
	PutInt16LE(int16)
	PutInt32LE(int32)
	PutInt64LE(int64)
	PutInt128LE(Int128)
	PutIntLE(int)
	PutFloat16LE(float16.Float16)
	PutFloat32LE(float32)
	PutFloat64LE(float64)
}

// BigEndianWriter writes every supported fixed-width type in big-endian
// order.
type BigEndianWriter interface {
	PutUint8BE(uint8)
	PutUint16BE(uint16)
	PutUint32BE(uint32)
	PutUint64BE(uint64)
	PutUint128BE(Uint128)
	PutUintBE(uint)
	PutInt8BE(int8)
	PutInt16BE(int16)
	PutInt32BE(int32)
	PutInt64BE(int64)
	PutInt128BE(Int128)
	PutIntBE(int)
	PutFloat16BE(float16.Float16)
	PutFloat32BE(float32)
	PutFloat64BE(float64)
}

// NativeEndianWriter writes every supported fixed-width type in the
// platform's native order.
type NativeEndianWriter interface {
	PutUint8NE(uint8)
	PutUint16NE(uint16)
	PutUint32NE(uint32)
	PutUint64NE(uint64)
	PutUint128NE(Uint128)
	PutUintNE(uint)
	PutInt8NE(int8)
	PutInt16NE(int16)
	PutInt32NE(int32)
	PutInt64NE(int64)
	PutInt128NE(Int128)
	PutIntNE(int)
	PutFloat16NE(float16.Float16)
	PutFloat32NE(float32)
	PutFloat64NE(float64)
}

var (
	_ RawReader          = (*FastByteReader)(nil)
	_ LittleEndianReader = (*FastByteReader)(nil)
	_ BigEndianReader    = (*FastByteReader)(nil)
	_ NativeEndianReader = (*FastByteReader)(nil)

	_ RawReader          = (*SafeByteReader)(nil)
	_ LittleEndianReader = (*SafeByteReader)(nil)
	_ BigEndianReader    = (*SafeByteReader)(nil)
	_ NativeEndianReader = (*SafeByteReader)(nil)

	_ RawWriter          = (*FastByteWriter)(nil)
	_ LittleEndianWriter = (*FastByteWriter)(nil)
	_ BigEndianWriter    = (*FastByteWriter)(nil)
	_ NativeEndianWriter = (*FastByteWriter)(nil)

	_ RawWriter          = (*SafeByteWriter)(nil)
	_ LittleEndianWriter = (*SafeByteWriter)(nil)
	_ BigEndianWriter    = (*SafeByteWriter)(nil)
	_ NativeEndianWriter = (*SafeByteWriter)(nil)
)
