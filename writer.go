package hyperbyte

import (
	"io"
	"slices"

	"github.com/x448/float16"
)

// FastByteWriter accumulates encoded values in an owned, growable byte
// buffer. Writes never fail; the buffer grows as needed.
type FastByteWriter struct {
	buf []byte
}

// NewFastByteWriter returns an empty writer.
func NewFastByteWriter() *FastByteWriter {
	return &FastByteWriter{}
}

// NewFastByteWriterBuffer returns a writer that appends to buf. Useful for
// reusing a preallocated buffer across frames.
func NewFastByteWriterBuffer(buf []byte) *FastByteWriter {
	return &FastByteWriter{buf: buf}
}

// grow extends the buffer by n bytes and returns the offset of the new span.
func (w *FastByteWriter) grow(n int) int {
	l := len(w.buf)
	w.buf = slices.Grow(w.buf, n)[:l+n]
	return l
}

// Len reports the number of bytes written so far.
func (w *FastByteWriter) Len() int { return len(w.buf) }

// Bytes returns the accumulated bytes as a view; the writer keeps ownership
// and further writes may invalidate the view.
func (w *FastByteWriter) Bytes() []byte { return w.buf }

// ToBytes finalizes the writer, handing the accumulated buffer to the
// caller and leaving the writer empty.
func (w *FastByteWriter) ToBytes() []byte {
	b := w.buf
	w.buf = nil
	return b
}

// Reset discards accumulated bytes but keeps the allocation.
func (w *FastByteWriter) Reset() { w.buf = w.buf[:0] }

// WriteBytes appends p verbatim.
func (w *FastByteWriter) WriteBytes(p []byte) {
	w.buf = append(w.buf, p...)
}

// Write implements io.Writer.
func (w *FastByteWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// FillFrom reads exactly n bytes from r into the tail of the buffer without
// an intermediate copy. On a short read the buffer is extended by only the
// bytes actually read and the io error is returned.
func (w *FastByteWriter) FillFrom(r io.Reader, n int) (int, error) {
	off := w.grow(n)
	m, err := io.ReadFull(r, w.buf[off:off+n])
	if err != nil {
		w.buf = w.buf[:off+m]
	}
	return m, err
}

func (w *FastByteWriter) PutUint8LE(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *FastByteWriter) PutUint16LE(v uint16) {
	n := w.grow(2)
	PutUint16LE(w.buf[n:], v)
}

func (w *FastByteWriter) PutUint32LE(v uint32) {
	n := w.grow(4)
	PutUint32LE(w.buf[n:], v)
}

func (w *FastByteWriter) PutUint64LE(v uint64) {
	n := w.grow(8)
	PutUint64LE(w.buf[n:], v)
}

func (w *FastByteWriter) PutUint128LE(v Uint128) {
	n := w.grow(16)
	PutUint128LE(w.buf[n:], v)
}

func (w *FastByteWriter) PutUintLE(v uint) {
	n := w.grow(uintWidth)
	PutUintLE(w.buf[n:], v)
}

func (w *FastByteWriter) PutInt8LE(v int8) { w.buf = append(w.buf, byte(v)) }

func (w *FastByteWriter) PutInt16LE(v int16) { w.PutUint16LE(uint16(v)) }

func (w *FastByteWriter) PutInt32LE(v int32) { w.PutUint32LE(uint32(v)) }

func (w *FastByteWriter) PutInt64LE(v int64) { w.PutUint64LE(uint64(v)) }

func (w *FastByteWriter) PutInt128LE(v Int128) {
	w.PutUint128LE(Uint128{Hi: uint64(v.Hi), Lo: v.Lo})
}

func (w *FastByteWriter) PutIntLE(v int) { w.PutUintLE(uint(v)) }

func (w *FastByteWriter) PutFloat16LE(v float16.Float16) { w.PutUint16LE(v.Bits()) }

func (w *FastByteWriter) PutFloat32LE(v float32) {
	n := w.grow(4)
	PutFloat32LE(w.buf[n:], v)
}

func (w *FastByteWriter) PutFloat64LE(v float64) {
	n := w.grow(8)
	PutFloat64LE(w.buf[n:], v)
}

func (w *FastByteWriter) PutUint8BE(v uint8) { w.buf = append(w.buf, v) }

func (w *FastByteWriter) PutUint16BE(v uint16) {
	n := w.grow(2)
	PutUint16BE(w.buf[n:], v)
}

func (w *FastByteWriter) PutUint32BE(v uint32) {
	n := w.grow(4)
	PutUint32BE(w.buf[n:], v)
}

func (w *FastByteWriter) PutUint64BE(v uint64) {
	n := w.grow(8)
	PutUint64BE(w.buf[n:], v)
}

func (w *FastByteWriter) PutUint128BE(v Uint128) {
	n := w.grow(16)
	PutUint128BE(w.buf[n:], v)
}

func (w *FastByteWriter) PutUintBE(v uint) {
	n := w.grow(uintWidth)
	PutUintBE(w.buf[n:], v)
}

func (w *FastByteWriter) PutInt8BE(v int8) { w.buf = append(w.buf, byte(v)) }

func (w *FastByteWriter) PutInt16BE(v int16) { w.PutUint16BE(uint16(v)) }

func (w *FastByteWriter) PutInt32BE(v int32) { w.PutUint32BE(uint32(v)) }

func (w *FastByteWriter) PutInt64BE(v int64) { w.PutUint64BE(uint64(v)) }

func (w *FastByteWriter) PutInt128BE(v Int128) {
	w.PutUint128BE(Uint128{Hi: uint64(v.Hi), Lo: v.Lo})
}

func (w *FastByteWriter) PutIntBE(v int) { w.PutUintBE(uint(v)) }

func (w *FastByteWriter) PutFloat16BE(v float16.Float16) { w.PutUint16BE(v.Bits()) }

func (w *FastByteWriter) PutFloat32BE(v float32) {
	n := w.grow(4)
	PutFloat32BE(w.buf[n:], v)
}

func (w *FastByteWriter) PutFloat64BE(v float64) {
	n := w.grow(8)
	PutFloat64BE(w.buf[n:], v)
}

func (w *FastByteWriter) PutUint8NE(v uint8) { w.buf = append(w.buf, v) }

func (w *FastByteWriter) PutUint16NE(v uint16) {
	n := w.grow(2)
	PutUint16NE(w.buf[n:], v)
}

func (w *FastByteWriter) PutUint32NE(v uint32) {
	n := w.grow(4)
	PutUint32NE(w.buf[n:], v)
}

func (w *FastByteWriter) PutUint64NE(v uint64) {
	n := w.grow(8)
	PutUint64NE(w.buf[n:], v)
}

func (w *FastByteWriter) PutUint128NE(v Uint128) {
	n := w.grow(16)
	PutUint128NE(w.buf[n:], v)
}

func (w *FastByteWriter) PutUintNE(v uint) {
	n := w.grow(uintWidth)
	PutUintNE(w.buf[n:], v)
}

func (w *FastByteWriter) PutInt8NE(v int8) { w.buf = append(w.buf, byte(v)) }

func (w *FastByteWriter) PutInt16NE(v int16) { w.PutUint16NE(uint16(v)) }

func (w *FastByteWriter) PutInt32NE(v int32) { w.PutUint32NE(uint32(v)) }

func (w *FastByteWriter) PutInt64NE(v int64) { w.PutUint64NE(uint64(v)) }

func (w *FastByteWriter) PutInt128NE(v Int128) {
	w.PutUint128NE(Uint128{Hi: uint64(v.Hi), Lo: v.Lo})
}

func (w *FastByteWriter) PutIntNE(v int) { w.PutUintNE(uint(v)) }

func (w *FastByteWriter) PutFloat16NE(v float16.Float16) { w.PutUint16NE(v.Bits()) }

func (w *FastByteWriter) PutFloat32NE(v float32) {
	n := w.grow(4)
	PutFloat32NE(w.buf[n:], v)
}

func (w *FastByteWriter) PutFloat64NE(v float64) {
	n := w.grow(8)
	PutFloat64NE(w.buf[n:], v)
}
