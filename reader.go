package hyperbyte

import (
	"io"

	"github.com/x448/float16"
)

// FastByteReader walks a borrowed byte slice with an internally owned,
// monotonically advancing position. There is no explicit range comparison:
// the slice expression in each method is the single bounds assertion, so
// reading past the end panics rather than returning an error, and the
// position is only advanced once the slice succeeded.
type FastByteReader struct {
	src []byte
	pos int
}

// NewFastByteReader returns a reader positioned at the start of src. The
// reader borrows src; it never copies or mutates it.
func NewFastByteReader(src []byte) *FastByteReader {
	r := &FastByteReader{}
	r.Reset(src)
	return r
}

// Pos reports how many bytes have been consumed so far.
func (r *FastByteReader) Pos() int { return r.pos }

// Remaining reports how many bytes are left to read.
func (r *FastByteReader) Remaining() int { return len(r.src) - r.pos }

// Reset rewinds the reader onto a new source slice. The capacity is clamped
// to the length so every slice expression traps at len(src), never at spare
// capacity behind it.
func (r *FastByteReader) Reset(src []byte) {
	r.src = src[:len(src):len(src)]
	r.pos = 0
}

// ReadN consumes the next n bytes and returns them as a view into the
// source slice, without copying.
func (r *FastByteReader) ReadN(n int) []byte {
	b := r.src[r.pos : r.pos+n]
	r.pos += n
	return b
}

// Skip advances past n bytes without decoding them.
func (r *FastByteReader) Skip(n int) {
	_ = r.src[r.pos : r.pos+n]
	r.pos += n
}

// Read copies remaining bytes into p, implementing io.Reader.
func (r *FastByteReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.src) {
		return 0, io.EOF
	}
	n := copy(p, r.src[r.pos:])
	r.pos += n
	return n, nil
}

func (r *FastByteReader) Uint8LE() uint8 {
	v := r.src[r.pos]
	r.pos++
	return v
}

func (r *FastByteReader) Uint16LE() uint16 {
	v := Uint16LE(r.src[r.pos : r.pos+2])
	r.pos += 2
	return v
}

func (r *FastByteReader) Uint32LE() uint32 {
	v := Uint32LE(r.src[r.pos : r.pos+4])
	r.pos += 4
	return v
}

func (r *FastByteReader) Uint64LE() uint64 {
	v := Uint64LE(r.src[r.pos : r.pos+8])
	r.pos += 8
	return v
}

func (r *FastByteReader) Uint128LE() Uint128 {
	v := Uint128LE(r.src[r.pos : r.pos+16])
	r.pos += 16
	return v
}

func (r *FastByteReader) UintLE() uint {
	v := UintLE(r.src[r.pos : r.pos+uintWidth])
	r.pos += uintWidth
	return v
}

func (r *FastByteReader) Int8LE() int8 { return int8(r.Uint8LE()) }

func (r *FastByteReader) Int16LE() int16 { return int16(r.Uint16LE()) }

func (r *FastByteReader) Int32LE() int32 { return int32(r.Uint32LE()) }

func (r *FastByteReader) Int64LE() int64 { return int64(r.Uint64LE()) }

func (r *FastByteReader) Int128LE() Int128 {
	v := r.Uint128LE()
	return Int128{Hi: int64(v.Hi), Lo: v.Lo}
}

func (r *FastByteReader) IntLE() int { return int(r.UintLE()) }

func (r *FastByteReader) Float16LE() float16.Float16 {
	return float16.Frombits(r.Uint16LE())
}

func (r *FastByteReader) Float32LE() float32 {
	v := Float32LE(r.src[r.pos : r.pos+4])
	r.pos += 4
	return v
}

func (r *FastByteReader) Float64LE() float64 {
	v := Float64LE(r.src[r.pos : r.pos+8])
	r.pos += 8
	return v
}

func (r *FastByteReader) Uint8BE() uint8 { return r.Uint8LE() }

func (r *FastByteReader) Uint16BE() uint16 {
	v := Uint16BE(r.src[r.pos : r.pos+2])
	r.pos += 2
	return v
}

func (r *FastByteReader) Uint32BE() uint32 {
	v := Uint32BE(r.src[r.pos : r.pos+4])
	r.pos += 4
	return v
}

func (r *FastByteReader) Uint64BE() uint64 {
	v := Uint64BE(r.src[r.pos : r.pos+8])
	r.pos += 8
	return v
}

func (r *FastByteReader) Uint128BE() Uint128 {
	v := Uint128BE(r.src[r.pos : r.pos+16])
	r.pos += 16
	return v
}

func (r *FastByteReader) UintBE() uint {
	v := UintBE(r.src[r.pos : r.pos+uintWidth])
	r.pos += uintWidth
	return v
}

func (r *FastByteReader) Int8BE() int8 { return int8(r.Uint8LE()) }

func (r *FastByteReader) Int16BE() int16 { return int16(r.Uint16BE()) }

func (r *FastByteReader) Int32BE() int32 { return int32(r.Uint32BE()) }

func (r *FastByteReader) Int64BE() int64 { return int64(r.Uint64BE()) }

func (r *FastByteReader) Int128BE() Int128 {
	v := r.Uint128BE()
	return Int128{Hi: int64(v.Hi), Lo: v.Lo}
}

func (r *FastByteReader) IntBE() int { return int(r.UintBE()) }

func (r *FastByteReader) Float16BE() float16.Float16 {
	return float16.Frombits(r.Uint16BE())
}

func (r *FastByteReader) Float32BE() float32 {
	v := Float32BE(r.src[r.pos : r.pos+4])
	r.pos += 4
	return v
}

func (r *FastByteReader) Float64BE() float64 {
	v := Float64BE(r.src[r.pos : r.pos+8])
	r.pos += 8
	return v
}

func (r *FastByteReader) Uint8NE() uint8 { return r.Uint8LE() }

func (r *FastByteReader) Uint16NE() uint16 {
	v := Uint16NE(r.src[r.pos : r.pos+2])
	r.pos += 2
	return v
}

func (r *FastByteReader) Uint32NE() uint32 {
	v := Uint32NE(r.src[r.pos : r.pos+4])
	r.pos += 4
	return v
}

func (r *FastByteReader) Uint64NE() uint64 {
	v := Uint64NE(r.src[r.pos : r.pos+8])
	r.pos += 8
	return v
}

func (r *FastByteReader) Uint128NE() Uint128 {
	v := Uint128NE(r.src[r.pos : r.pos+16])
	r.pos += 16
	return v
}

func (r *FastByteReader) UintNE() uint {
	v := UintNE(r.src[r.pos : r.pos+uintWidth])
	r.pos += uintWidth
	return v
}

func (r *FastByteReader) Int8NE() int8 { return int8(r.Uint8LE()) }

func (r *FastByteReader) Int16NE() int16 { return int16(r.Uint16NE()) }

func (r *FastByteReader) Int32NE() int32 { return int32(r.Uint32NE()) }

func (r *FastByteReader) Int64NE() int64 { return int64(r.Uint64NE()) }

func (r *FastByteReader) Int128NE() Int128 {
	v := r.Uint128NE()
	return Int128{Hi: int64(v.Hi), Lo: v.Lo}
}

func (r *FastByteReader) IntNE() int { return int(r.UintNE()) }

func (r *FastByteReader) Float16NE() float16.Float16 {
	return float16.Frombits(r.Uint16NE())
}

func (r *FastByteReader) Float32NE() float32 {
	v := Float32NE(r.src[r.pos : r.pos+4])
	r.pos += 4
	return v
}

func (r *FastByteReader) Float64NE() float64 {
	v := Float64NE(r.src[r.pos : r.pos+8])
	r.pos += 8
	return v
}
