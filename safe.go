package hyperbyte

import "github.com/x448/float16"

// SafeByteReader is the checked counterpart of FastByteReader: same method
// set, but every call goes through the checked cursor tier. The first range
// violation is latched; from then on every read is a no-op returning the
// zero value, and the position stays where the failure left it. Err reports
// the latched failure.
type SafeByteReader struct {
	src []byte
	pos int
	err error
}

// NewSafeByteReader returns a checked reader positioned at the start of src.
func NewSafeByteReader(src []byte) *SafeByteReader {
	return &SafeByteReader{src: src}
}

// Err returns the first range violation encountered, or nil.
func (r *SafeByteReader) Err() error { return r.err }

// Pos reports how many bytes have been consumed so far.
func (r *SafeByteReader) Pos() int { return r.pos }

// Remaining reports how many bytes are left to read.
func (r *SafeByteReader) Remaining() int { return len(r.src) - r.pos }

// Reset rewinds the reader onto a new source slice and clears the error.
func (r *SafeByteReader) Reset(src []byte) {
	r.src = src
	r.pos = 0
	r.err = nil
}

// ReadN consumes the next n bytes as a view into the source, or returns nil
// after latching an error if fewer than n bytes remain.
func (r *SafeByteReader) ReadN(n int) []byte {
	if r.err != nil {
		return nil
	}
	if err := checkRange("bytes", r.src, r.pos, n); err != nil {
		r.err = err
		return nil
	}
	b := r.src[r.pos : r.pos+n]
	r.pos += n
	return b
}

// Skip advances past n bytes, latching an error if fewer remain.
func (r *SafeByteReader) Skip(n int) {
	if r.err != nil {
		return
	}
	if err := checkRange("bytes", r.src, r.pos, n); err != nil {
		r.err = err
		return
	}
	r.pos += n
}

func (r *SafeByteReader) Uint8LE() (v uint8) {
	if r.err == nil {
		v, r.err = ReadUint8LE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Uint16LE() (v uint16) {
	if r.err == nil {
		v, r.err = ReadUint16LE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Uint32LE() (v uint32) {
	if r.err == nil {
		v, r.err = ReadUint32LE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Uint64LE() (v uint64) {
	if r.err == nil {
		v, r.err = ReadUint64LE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Uint128LE() (v Uint128) {
	if r.err == nil {
		v, r.err = ReadUint128LE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) UintLE() (v uint) {
	if r.err == nil {
		v, r.err = ReadUintLE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Int8LE() (v int8) {
	if r.err == nil {
		v, r.err = ReadInt8LE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Int16LE() (v int16) {
	if r.err == nil {
		v, r.err = ReadInt16LE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Int32LE() (v int32) {
	if r.err == nil {
		v, r.err = ReadInt32LE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Int64LE() (v int64) {
	if r.err == nil {
		v, r.err = ReadInt64LE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Int128LE() (v Int128) {
	if r.err == nil {
		v, r.err = ReadInt128LE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) IntLE() (v int) {
	if r.err == nil {
		v, r.err = ReadIntLE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Float16LE() (v float16.Float16) {
	if r.err == nil {
		v, r.err = ReadFloat16LE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Float32LE() (v float32) {
	if r.err == nil {
		v, r.err = ReadFloat32LE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Float64LE() (v float64) {
	if r.err == nil {
		v, r.err = ReadFloat64LE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Uint8BE() (v uint8) {
	if r.err == nil {
		v, r.err = ReadUint8BE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Uint16BE() (v uint16) {
	if r.err == nil {
		v, r.err = ReadUint16BE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Uint32BE() (v uint32) {
	if r.err == nil {
		v, r.err = ReadUint32BE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Uint64BE() (v uint64) {
	if r.err == nil {
		v, r.err = ReadUint64BE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Uint128BE() (v Uint128) {
	if r.err == nil {
		v, r.err = ReadUint128BE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) UintBE() (v uint) {
	if r.err == nil {
		v, r.err = ReadUintBE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Int8BE() (v int8) {
	if r.err == nil {
		v, r.err = ReadInt8BE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Int16BE() (v int16) {
	if r.err == nil {
		v, r.err = ReadInt16BE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Int32BE() (v int32) {
	if r.err == nil {
		v, r.err = ReadInt32BE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Int64BE() (v int64) {
	if r.err == nil {
		v, r.err = ReadInt64BE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Int128BE() (v Int128) {
	if r.err == nil {
		v, r.err = ReadInt128BE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) IntBE() (v int) {
	if r.err == nil {
		v, r.err = ReadIntBE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Float16BE() (v float16.Float16) {
	if r.err == nil {
		v, r.err = ReadFloat16BE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Float32BE() (v float32) {
	if r.err == nil {
		v, r.err = ReadFloat32BE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Float64BE() (v float64) {
	if r.err == nil {
		v, r.err = ReadFloat64BE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Uint8NE() (v uint8) {
	if r.err == nil {
		v, r.err = ReadUint8NE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Uint16NE() (v uint16) {
	if r.err == nil {
		v, r.err = ReadUint16NE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Uint32NE() (v uint32) {
	if r.err == nil {
		v, r.err = ReadUint32NE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Uint64NE() (v uint64) {
	if r.err == nil {
		v, r.err = ReadUint64NE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Uint128NE() (v Uint128) {
	if r.err == nil {
		v, r.err = ReadUint128NE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) UintNE() (v uint) {
	if r.err == nil {
		v, r.err = ReadUintNE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Int8NE() (v int8) {
	if r.err == nil {
		v, r.err = ReadInt8NE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Int16NE() (v int16) {
	if r.err == nil {
		v, r.err = ReadInt16NE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Int32NE() (v int32) {
	if r.err == nil {
		v, r.err = ReadInt32NE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Int64NE() (v int64) {
	if r.err == nil {
		v, r.err = ReadInt64NE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Int128NE() (v Int128) {
	if r.err == nil {
		v, r.err = ReadInt128NE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) IntNE() (v int) {
	if r.err == nil {
		v, r.err = ReadIntNE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Float16NE() (v float16.Float16) {
	if r.err == nil {
		v, r.err = ReadFloat16NE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Float32NE() (v float32) {
	if r.err == nil {
		v, r.err = ReadFloat32NE(r.src, &r.pos)
	}
	return v
}

func (r *SafeByteReader) Float64NE() (v float64) {
	if r.err == nil {
		v, r.err = ReadFloat64NE(r.src, &r.pos)
	}
	return v
}

// SafeByteWriter is the checked counterpart of FastByteWriter. It encodes
// into a caller-supplied fixed-capacity buffer instead of growing one, and
// latches the first range violation the same way SafeByteReader does.
type SafeByteWriter struct {
	dst []byte
	pos int
	err error
}

// NewSafeByteWriter returns a checked writer over dst, starting at offset 0.
func NewSafeByteWriter(dst []byte) *SafeByteWriter {
	return &SafeByteWriter{dst: dst}
}

// Err returns the first range violation encountered, or nil.
func (w *SafeByteWriter) Err() error { return w.err }

// Pos reports how many bytes have been written so far.
func (w *SafeByteWriter) Pos() int { return w.pos }

// Len reports the number of bytes written so far.
func (w *SafeByteWriter) Len() int { return w.pos }

// Bytes returns the written prefix of the destination buffer.
func (w *SafeByteWriter) Bytes() []byte { return w.dst[:w.pos] }

// ToBytes finalizes the writer: it returns the written prefix and rewinds,
// so afterwards Len is zero and new writes start over. The returned slice
// still aliases the fixed destination buffer, so writing again after ToBytes
// clobbers it; copy first if the prefix must survive.
func (w *SafeByteWriter) ToBytes() []byte {
	b := w.dst[:w.pos]
	w.pos = 0
	return b
}

// Reset points the writer at a new destination buffer and clears the error.
func (w *SafeByteWriter) Reset(dst []byte) {
	w.dst = dst
	w.pos = 0
	w.err = nil
}

// WriteBytes copies p verbatim, latching an error if it does not fit.
func (w *SafeByteWriter) WriteBytes(p []byte) {
	if w.err != nil {
		return
	}
	if err := checkRange("bytes", w.dst, w.pos, len(p)); err != nil {
		w.err = err
		return
	}
	copy(w.dst[w.pos:], p)
	w.pos += len(p)
}

func (w *SafeByteWriter) PutUint8LE(v uint8) {
	if w.err == nil {
		w.err = WriteUint8LE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutUint16LE(v uint16) {
	if w.err == nil {
		w.err = WriteUint16LE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutUint32LE(v uint32) {
	if w.err == nil {
		w.err = WriteUint32LE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutUint64LE(v uint64) {
	if w.err == nil {
		w.err = WriteUint64LE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutUint128LE(v Uint128) {
	if w.err == nil {
		w.err = WriteUint128LE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutUintLE(v uint) {
	if w.err == nil {
		w.err = WriteUintLE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutInt8LE(v int8) {
	if w.err == nil {
		w.err = WriteInt8LE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutInt16LE(v int16) {
	if w.err == nil {
		w.err = WriteInt16LE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutInt32LE(v int32) {
	if w.err == nil {
		w.err = WriteInt32LE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutInt64LE(v int64) {
	if w.err == nil {
		w.err = WriteInt64LE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutInt128LE(v Int128) {
	if w.err == nil {
		w.err = WriteInt128LE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutIntLE(v int) {
	if w.err == nil {
		w.err = WriteIntLE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutFloat16LE(v float16.Float16) {
	if w.err == nil {
		w.err = WriteFloat16LE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutFloat32LE(v float32) {
	if w.err == nil {
		w.err = WriteFloat32LE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutFloat64LE(v float64) {
	if w.err == nil {
		w.err = WriteFloat64LE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutUint8BE(v uint8) {
	if w.err == nil {
		w.err = WriteUint8BE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutUint16BE(v uint16) {
	if w.err == nil {
		w.err = WriteUint16BE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutUint32BE(v uint32) {
	if w.err == nil {
		w.err = WriteUint32BE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutUint64BE(v uint64) {
	if w.err == nil {
		w.err = WriteUint64BE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutUint128BE(v Uint128) {
	if w.err == nil {
		w.err = WriteUint128BE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutUintBE(v uint) {
	if w.err == nil {
		w.err = WriteUintBE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutInt8BE(v int8) {
	if w.err == nil {
		w.err = WriteInt8BE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutInt16BE(v int16) {
	if w.err == nil {
		w.err = WriteInt16BE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutInt32BE(v int32) {
	if w.err == nil {
		w.err = WriteInt32BE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutInt64BE(v int64) {
	if w.err == nil {
		w.err = WriteInt64BE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutInt128BE(v Int128) {
	if w.err == nil {
		w.err = WriteInt128BE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutIntBE(v int) {
	if w.err == nil {
		w.err = WriteIntBE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutFloat16BE(v float16.Float16) {
	if w.err == nil {
		w.err = WriteFloat16BE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutFloat32BE(v float32) {
	if w.err == nil {
		w.err = WriteFloat32BE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutFloat64BE(v float64) {
	if w.err == nil {
		w.err = WriteFloat64BE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutUint8NE(v uint8) {
	if w.err == nil {
		w.err = WriteUint8NE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutUint16NE(v uint16) {
	if w.err == nil {
		w.err = WriteUint16NE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutUint32NE(v uint32) {
	if w.err == nil {
		w.err = WriteUint32NE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutUint64NE(v uint64) {
	if w.err == nil {
		w.err = WriteUint64NE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutUint128NE(v Uint128) {
	if w.err == nil {
		w.err = WriteUint128NE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutUintNE(v uint) {
	if w.err == nil {
		w.err = WriteUintNE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutInt8NE(v int8) {
	if w.err == nil {
		w.err = WriteInt8NE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutInt16NE(v int16) {
	if w.err == nil {
		w.err = WriteInt16NE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutInt32NE(v int32) {
	if w.err == nil {
		w.err = WriteInt32NE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutInt64NE(v int64) {
	if w.err == nil {
		w.err = WriteInt64NE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutInt128NE(v Int128) {
	if w.err == nil {
		w.err = WriteInt128NE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutIntNE(v int) {
	if w.err == nil {
		w.err = WriteIntNE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutFloat16NE(v float16.Float16) {
	if w.err == nil {
		w.err = WriteFloat16NE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutFloat32NE(v float32) {
	if w.err == nil {
		w.err = WriteFloat32NE(w.dst, &w.pos, v)
	}
}

func (w *SafeByteWriter) PutFloat64NE(v float64) {
	if w.err == nil {
		w.err = WriteFloat64NE(w.dst, &w.pos, v)
	}
}
