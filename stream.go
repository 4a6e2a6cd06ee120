package hyperbyte

// HyperStream composes a FastByteReader over caller-supplied input with an
// owned FastByteWriter, giving one object full read+write access in every
// byte order. It adds no codec or bounds logic of its own.
type HyperStream struct {
	FastByteReader
	FastByteWriter
}

// NewHyperStream returns a stream reading from src and writing to an
// internal growable buffer.
func NewHyperStream(src []byte) *HyperStream {
	return &HyperStream{FastByteReader: FastByteReader{src: src[:len(src):len(src)]}}
}

// Reset rewinds the read side onto src and discards written output.
func (s *HyperStream) Reset(src []byte) {
	s.FastByteReader.Reset(src)
	s.FastByteWriter.Reset()
}

// NetworkStream is a bidirectional stream fixed to big-endian order, the
// conventional network byte order.
type NetworkStream interface {
	RawReader
	RawWriter
	BigEndianReader
	BigEndianWriter
}

// LittleStream is a bidirectional stream fixed to little-endian order.
type LittleStream interface {
	RawReader
	RawWriter
	LittleEndianReader
	LittleEndianWriter
}

// NativeStream is a bidirectional stream fixed to the platform's native
// order.
type NativeStream interface {
	RawReader
	RawWriter
	NativeEndianReader
	NativeEndianWriter
}

// NewNetworkStream returns a big-endian-only view of a HyperStream over
// src.
func NewNetworkStream(src []byte) NetworkStream {
	return NewHyperStream(src)
}

// NewLittleStream returns a little-endian-only view of a HyperStream over
// src.
func NewLittleStream(src []byte) LittleStream {
	return NewHyperStream(src)
}

// NewNativeStream returns a native-order-only view of a HyperStream over
// src.
func NewNativeStream(src []byte) NativeStream {
	return NewHyperStream(src)
}

var (
	_ NetworkStream = (*HyperStream)(nil)
	_ LittleStream  = (*HyperStream)(nil)
	_ NativeStream  = (*HyperStream)(nil)
)
