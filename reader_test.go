package hyperbyte

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFastReaderSequential(t *testing.T) {
	w := NewFastByteWriter()
	w.PutUint8LE(7)
	w.PutUint16BE(0x0102)
	w.PutUint32LE(0x03040506)
	w.PutUint64BE(0x0708090A0B0C0D0E)
	w.PutUint128LE(Uint128{Hi: 11, Lo: 22})

	r := NewFastByteReader(w.Bytes())
	require.Equal(t, 0, r.Pos())

	require.Equal(t, uint8(7), r.Uint8LE())
	require.Equal(t, 1, r.Pos())
	require.Equal(t, uint16(0x0102), r.Uint16BE())
	require.Equal(t, 3, r.Pos())
	require.Equal(t, uint32(0x03040506), r.Uint32LE())
	require.Equal(t, 7, r.Pos())
	require.Equal(t, uint64(0x0708090A0B0C0D0E), r.Uint64BE())
	require.Equal(t, 15, r.Pos())
	require.Equal(t, Uint128{Hi: 11, Lo: 22}, r.Uint128LE())
	require.Equal(t, 31, r.Pos())
	require.Equal(t, 0, r.Remaining())
}

func TestFastReaderPanicsPastEnd(t *testing.T) {
	r := NewFastByteReader([]byte{1, 2, 3})
	require.Panics(t, func() { r.Uint32LE() })
	require.Panics(t, func() { r.ReadN(4) })
	require.Panics(t, func() { r.Skip(4) })

	// a failed slice never advanced the cursor
	require.Equal(t, 0, r.Pos())
	require.Equal(t, uint16(0x0201), r.Uint16LE())
}

func TestFastReaderPanicsDespiteSpareCapacity(t *testing.T) {
	// a sub-slice with live bytes behind len must still trap at len, not
	// run on into the spare capacity
	backing := []byte{1, 2, 3, 0xEE, 0xEE, 0xEE, 0xEE, 0xEE}
	r := NewFastByteReader(backing[:3])
	require.Equal(t, 3, r.Remaining())

	require.Panics(t, func() { r.Uint32LE() })
	require.Panics(t, func() { r.ReadN(5) })
	require.Panics(t, func() { r.Skip(5) })
	require.Equal(t, 0, r.Pos())

	r.Reset(backing[:2])
	require.Panics(t, func() { r.Uint32NE() })

	s := NewNetworkStream(backing[:3])
	require.Panics(t, func() { s.Uint64BE() })
}

func TestFastReaderReadN(t *testing.T) {
	r := NewFastByteReader([]byte{1, 2, 3, 4, 5})
	require.Equal(t, []byte{1, 2}, r.ReadN(2))
	r.Skip(1)
	require.Equal(t, []byte{4, 5}, r.ReadN(2))
	require.Equal(t, 0, r.Remaining())
}

func TestReadNWriteBytesMirror(t *testing.T) {
	src := []byte{9, 8, 7, 6, 5, 4}
	r := NewFastByteReader(src)
	block := r.ReadN(len(src))

	w := NewFastByteWriter()
	w.WriteBytes(block)
	require.Equal(t, src, w.Bytes())
}

func TestFastReaderIoReader(t *testing.T) {
	r := NewFastByteReader([]byte{1, 2, 3, 4})
	r.Skip(1)
	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, []byte{2, 3, 4}, rest)

	_, err = r.Read(make([]byte, 1))
	require.ErrorIs(t, err, io.EOF)
}

func TestFastReaderReset(t *testing.T) {
	r := NewFastByteReader([]byte{0xAA})
	require.Equal(t, uint8(0xAA), r.Uint8NE())

	r.Reset([]byte{0xBB, 0xCC})
	require.Equal(t, 0, r.Pos())
	require.Equal(t, uint16(0xBBCC), r.Uint16BE())
}

func TestFastReaderAllOrders(t *testing.T) {
	w := NewFastByteWriter()
	w.PutInt8BE(-3)
	w.PutInt16NE(-300)
	w.PutInt32BE(-70000)
	w.PutInt64LE(-5e15)
	w.PutInt128NE(Int128From64(-9))
	w.PutUintLE(777)
	w.PutIntBE(-777)
	w.PutFloat32NE(0.5)
	w.PutFloat64LE(-0.125)

	r := NewFastByteReader(w.Bytes())
	require.Equal(t, int8(-3), r.Int8BE())
	require.Equal(t, int16(-300), r.Int16NE())
	require.Equal(t, int32(-70000), r.Int32BE())
	require.Equal(t, int64(-5e15), r.Int64LE())
	require.Equal(t, Int128From64(-9), r.Int128NE())
	require.Equal(t, uint(777), r.UintLE())
	require.Equal(t, -777, r.IntBE())
	require.Equal(t, float32(0.5), r.Float32NE())
	require.Equal(t, -0.125, r.Float64LE())
	require.Equal(t, 0, r.Remaining())
}

func TestSafeReaderSticky(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00}
	r := NewSafeByteReader(buf)

	require.Equal(t, uint32(4294967295), r.Uint32BE())
	require.NoError(t, r.Err())
	require.Equal(t, 4, r.Pos())

	require.Zero(t, r.Uint32BE())
	require.ErrorIs(t, r.Err(), ErrShortBuffer)
	require.Equal(t, 4, r.Pos())

	// latched: even a read that would fit is refused now
	require.Zero(t, r.Uint8LE())
	require.Equal(t, 4, r.Pos())

	r.Reset(buf)
	require.NoError(t, r.Err())
	require.Equal(t, uint8(0xFF), r.Uint8LE())
}

func TestSafeReaderReadN(t *testing.T) {
	r := NewSafeByteReader([]byte{1, 2, 3})
	require.Equal(t, []byte{1, 2}, r.ReadN(2))
	require.Nil(t, r.ReadN(2))
	require.ErrorIs(t, r.Err(), ErrShortBuffer)
	require.Equal(t, 2, r.Pos())
}

func TestSafeReaderSkip(t *testing.T) {
	r := NewSafeByteReader([]byte{1, 2, 3, 4})
	r.Skip(3)
	require.Equal(t, 3, r.Pos())
	r.Skip(2)
	require.ErrorIs(t, r.Err(), ErrShortBuffer)
	require.Equal(t, 3, r.Pos())
}
