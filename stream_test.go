package hyperbyte

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// frame helpers written once against the capability interfaces; every
// concrete reader/writer must be drivable through them.

func putFrame(w BigEndianWriter, id uint32, seq uint16, payload int64) {
	w.PutUint32BE(id)
	w.PutUint16BE(seq)
	w.PutInt64BE(payload)
}

func getFrame(r BigEndianReader) (uint32, uint16, int64) {
	return r.Uint32BE(), r.Uint16BE(), r.Int64BE()
}

func TestGenericFrameFastTier(t *testing.T) {
	w := NewFastByteWriter()
	putFrame(w, 0xDEAD, 7, -1234)

	id, seq, payload := getFrame(NewFastByteReader(w.Bytes()))
	require.Equal(t, uint32(0xDEAD), id)
	require.Equal(t, uint16(7), seq)
	require.Equal(t, int64(-1234), payload)
}

func TestGenericFrameCheckedTier(t *testing.T) {
	dst := make([]byte, 14)
	sw := NewSafeByteWriter(dst)
	putFrame(sw, 0xBEEF, 9, 42)
	require.NoError(t, sw.Err())

	sr := NewSafeByteReader(sw.Bytes())
	id, seq, payload := getFrame(sr)
	require.NoError(t, sr.Err())
	require.Equal(t, uint32(0xBEEF), id)
	require.Equal(t, uint16(9), seq)
	require.Equal(t, int64(42), payload)
}

func TestGenericFrameBothTiersAgree(t *testing.T) {
	fast := NewFastByteWriter()
	putFrame(fast, 1, 2, 3)

	safe := NewSafeByteWriter(make([]byte, 14))
	putFrame(safe, 1, 2, 3)
	require.NoError(t, safe.Err())

	require.Equal(t, fast.Bytes(), safe.Bytes())
}

func TestNetworkStream(t *testing.T) {
	in := NewFastByteWriter()
	in.PutUint32BE(0x01020304)
	in.PutUint16BE(0xAABB)

	s := NewNetworkStream(in.Bytes())
	require.Equal(t, uint32(0x01020304), s.Uint32BE())
	require.Equal(t, uint16(0xAABB), s.Uint16BE())
	require.Equal(t, 0, s.Remaining())

	s.PutUint32BE(0x05060708)
	require.Equal(t, []byte{5, 6, 7, 8}, s.Bytes())
}

func TestLittleAndNativeStreams(t *testing.T) {
	var b [4]byte
	PutUint32LE(b[:], 77)
	ls := NewLittleStream(b[:])
	require.Equal(t, uint32(77), ls.Uint32LE())

	PutUint32NE(b[:], 88)
	ns := NewNativeStream(b[:])
	require.Equal(t, uint32(88), ns.Uint32NE())
}

func TestHyperStreamAllOrders(t *testing.T) {
	src := NewFastByteWriter()
	src.PutUint16LE(1)
	src.PutUint16BE(2)
	src.PutUint16NE(3)

	s := NewHyperStream(src.Bytes())
	require.Equal(t, uint16(1), s.Uint16LE())
	require.Equal(t, uint16(2), s.Uint16BE())
	require.Equal(t, uint16(3), s.Uint16NE())

	s.PutUint64LE(4)
	s.PutUint64BE(5)
	require.Equal(t, 16, s.Len())

	out := NewFastByteReader(s.ToBytes())
	require.Equal(t, uint64(4), out.Uint64LE())
	require.Equal(t, uint64(5), out.Uint64BE())
}

func TestHyperStreamEcho(t *testing.T) {
	// read a block, write it back, result equals input
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	s := NewHyperStream(src)
	s.WriteBytes(s.ReadN(len(src)))
	require.Equal(t, src, s.Bytes())
}

func TestHyperStreamReset(t *testing.T) {
	s := NewHyperStream([]byte{0xAA})
	require.Equal(t, uint8(0xAA), s.Uint8NE())
	s.PutUint8NE(0xBB)

	s.Reset([]byte{0xCC})
	require.Equal(t, 0, s.Pos())
	require.Equal(t, 0, s.Len())
	require.Equal(t, uint8(0xCC), s.Uint8NE())
}
