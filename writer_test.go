package hyperbyte

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestFastWriterGrow(t *testing.T) {
	w := NewFastByteWriter()
	require.Equal(t, 0, w.Len())

	w.PutUint8LE(1)
	w.PutUint16LE(2)
	w.PutUint32LE(3)
	w.PutUint64LE(4)
	w.PutUint128LE(Uint128{Lo: 5})
	require.Equal(t, 31, w.Len())
}

func TestFastWriterBufferReuse(t *testing.T) {
	scratch := make([]byte, 0, 64)
	w := NewFastByteWriterBuffer(scratch)
	w.PutUint32BE(0xCAFEBABE)
	require.Equal(t, []byte{0xCA, 0xFE, 0xBA, 0xBE}, w.Bytes())

	w.Reset()
	require.Equal(t, 0, w.Len())
	w.PutUint16BE(0x1234)
	require.Equal(t, []byte{0x12, 0x34}, w.Bytes())
}

func TestToBytesFinalizes(t *testing.T) {
	w := NewFastByteWriter()
	w.PutUint16BE(0xABCD)
	out := w.ToBytes()
	require.Equal(t, []byte{0xAB, 0xCD}, out)

	// after finalization the writer is empty and usable again
	require.Equal(t, 0, w.Len())
	w.PutUint8LE(9)
	require.Equal(t, []byte{9}, w.Bytes())
	require.Equal(t, []byte{0xAB, 0xCD}, out, "handed-out buffer is not shared")
}

func TestSafeWriterToBytesFinalizes(t *testing.T) {
	w := NewSafeByteWriter(make([]byte, 8))
	w.PutUint16BE(0xABCD)
	out := w.ToBytes()
	require.Equal(t, []byte{0xAB, 0xCD}, out)

	// same contract as the fast writer: empty and usable again
	require.Equal(t, 0, w.Len())
	w.PutUint8LE(9)
	require.Equal(t, []byte{9}, w.Bytes())
}

func TestFastWriterIoWriter(t *testing.T) {
	w := NewFastByteWriter()
	n, err := io.WriteString(w, "abc")
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []byte("abc"), w.Bytes())
}

func TestFillFrom(t *testing.T) {
	w := NewFastByteWriter()
	w.PutUint8LE(0xEE)

	n, err := w.FillFrom(bytes.NewReader([]byte{1, 2, 3, 4}), 3)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []byte{0xEE, 1, 2, 3}, w.Bytes())
}

func TestFillFromShortSource(t *testing.T) {
	w := NewFastByteWriter()
	n, err := w.FillFrom(bytes.NewReader([]byte{1, 2}), 5)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, 2, n)
	require.Equal(t, []byte{1, 2}, w.Bytes(), "buffer keeps only the bytes actually read")
}

func TestSafeWriterBounds(t *testing.T) {
	dst := make([]byte, 6)
	w := NewSafeByteWriter(dst)

	w.PutUint32BE(0x01020304)
	w.PutUint16BE(0x0506)
	require.NoError(t, w.Err())
	require.Equal(t, 6, w.Len())
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6}, w.Bytes())

	w.PutUint8LE(7)
	require.ErrorIs(t, w.Err(), ErrShortBuffer)
	require.Equal(t, 6, w.Len())
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6}, dst)

	w.Reset(dst[:2])
	require.NoError(t, w.Err())
	w.PutUint16LE(0xAABB)
	require.NoError(t, w.Err())
	require.Equal(t, []byte{0xBB, 0xAA}, w.Bytes())
}

func TestSafeWriterWriteBytes(t *testing.T) {
	w := NewSafeByteWriter(make([]byte, 3))
	w.WriteBytes([]byte{1, 2})
	require.NoError(t, w.Err())
	w.WriteBytes([]byte{3, 4})
	require.ErrorIs(t, w.Err(), ErrShortBuffer)
	require.Equal(t, []byte{1, 2}, w.Bytes())
}

func TestWriterReaderEveryWidth(t *testing.T) {
	w := NewFastByteWriter()
	w.PutUint8BE(0x01)
	w.PutUint16LE(0x0203)
	w.PutUint32NE(0x04050607)
	w.PutUint64BE(0x08090A0B0C0D0E0F)
	w.PutUint128BE(Uint128{Hi: 0xAA, Lo: 0xBB})
	w.PutUintNE(99)
	w.PutInt8LE(-1)
	w.PutInt16BE(-2)
	w.PutInt32LE(-3)
	w.PutInt64NE(-4)
	w.PutInt128LE(Int128From64(-5))
	w.PutIntLE(-6)
	w.PutFloat16BE(float16.Fromfloat32(0.5))
	w.PutFloat32LE(1.5)
	w.PutFloat64BE(-2.5)

	r := NewSafeByteReader(w.Bytes())
	require.Equal(t, uint8(0x01), r.Uint8BE())
	require.Equal(t, uint16(0x0203), r.Uint16LE())
	require.Equal(t, uint32(0x04050607), r.Uint32NE())
	require.Equal(t, uint64(0x08090A0B0C0D0E0F), r.Uint64BE())
	require.Equal(t, Uint128{Hi: 0xAA, Lo: 0xBB}, r.Uint128BE())
	require.Equal(t, uint(99), r.UintNE())
	require.Equal(t, int8(-1), r.Int8LE())
	require.Equal(t, int16(-2), r.Int16BE())
	require.Equal(t, int32(-3), r.Int32LE())
	require.Equal(t, int64(-4), r.Int64NE())
	require.Equal(t, Int128From64(-5), r.Int128LE())
	require.Equal(t, -6, r.IntLE())
	require.Equal(t, float16.Fromfloat32(0.5), r.Float16BE())
	require.Equal(t, float32(1.5), r.Float32LE())
	require.Equal(t, -2.5, r.Float64BE())
	require.NoError(t, r.Err())
	require.Equal(t, 0, r.Remaining())
}

func FuzzFastRoundTrip(f *testing.F) {
	f.Add(uint64(0), int64(-1), uint32(7), int16(-2), uint8(255), 3.14, float32(-0.5))
	f.Add(uint64(math.MaxUint64), int64(math.MinInt64), uint32(0), int16(0), uint8(0), math.Inf(-1), float32(math.NaN()))
	f.Fuzz(fuzzFastRoundTrip)
}

func fuzzFastRoundTrip(t *testing.T, a uint64, b int64, c uint32, d int16, e uint8, g float64, h float32) {
	w := NewFastByteWriter()
	w.PutUint64LE(a)
	w.PutInt64BE(b)
	w.PutUint32NE(c)
	w.PutInt16LE(d)
	w.PutUint8BE(e)
	w.PutFloat64BE(g)
	w.PutFloat32LE(h)

	r := NewFastByteReader(w.Bytes())
	require.Equal(t, a, r.Uint64LE())
	require.Equal(t, b, r.Int64BE())
	require.Equal(t, c, r.Uint32NE())
	require.Equal(t, d, r.Int16LE())
	require.Equal(t, e, r.Uint8BE())
	require.Equal(t, math.Float64bits(g), math.Float64bits(r.Float64BE()))
	require.Equal(t, math.Float32bits(h), math.Float32bits(r.Float32LE()))
	require.Equal(t, 0, r.Remaining())
}
