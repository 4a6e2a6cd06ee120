package hyperbyte

import "github.com/x448/float16"

// Checked cursor tier. Every function validates the requested range against
// the buffer before touching the primitive codec, and only advances *pos on
// success. The position is owned by the caller, so any number of independent
// cursors can walk the same buffer.

// Little-endian reads.

// ReadUint8LE reads a uint8 at *pos.
func ReadUint8LE(b []byte, pos *int) (uint8, error) {
	p := *pos
	if err := checkRange("uint8", b, p, 1); err != nil {
		return 0, err
	}
	*pos = p + 1
	return b[p], nil
}

// ReadUint16LE reads a little-endian uint16 at *pos.
func ReadUint16LE(b []byte, pos *int) (uint16, error) {
	p := *pos
	if err := checkRange("uint16", b, p, 2); err != nil {
		return 0, err
	}
	*pos = p + 2
	return Uint16LE(b[p:]), nil
}

// ReadUint32LE reads a little-endian uint32 at *pos.
func ReadUint32LE(b []byte, pos *int) (uint32, error) {
	p := *pos
	if err := checkRange("uint32", b, p, 4); err != nil {
		return 0, err
	}
	*pos = p + 4
	return Uint32LE(b[p:]), nil
}

// ReadUint64LE reads a little-endian uint64 at *pos.
func ReadUint64LE(b []byte, pos *int) (uint64, error) {
	p := *pos
	if err := checkRange("uint64", b, p, 8); err != nil {
		return 0, err
	}
	*pos = p + 8
	return Uint64LE(b[p:]), nil
}

// ReadUint128LE reads a little-endian Uint128 at *pos.
func ReadUint128LE(b []byte, pos *int) (Uint128, error) {
	p := *pos
	if err := checkRange("uint128", b, p, 16); err != nil {
		return Uint128{}, err
	}
	*pos = p + 16
	return Uint128LE(b[p:]), nil
}

// ReadUintLE reads a little-endian platform-width uint at *pos.
func ReadUintLE(b []byte, pos *int) (uint, error) {
	p := *pos
	if err := checkRange("uint", b, p, uintWidth); err != nil {
		return 0, err
	}
	*pos = p + uintWidth
	return UintLE(b[p:]), nil
}

// ReadInt8LE reads an int8 at *pos.
func ReadInt8LE(b []byte, pos *int) (int8, error) {
	v, err := ReadUint8LE(b, pos)
	return int8(v), err
}

// ReadInt16LE reads a little-endian int16 at *pos.
func ReadInt16LE(b []byte, pos *int) (int16, error) {
	v, err := ReadUint16LE(b, pos)
	return int16(v), err
}

// ReadInt32LE reads a little-endian int32 at *pos.
func ReadInt32LE(b []byte, pos *int) (int32, error) {
	v, err := ReadUint32LE(b, pos)
	return int32(v), err
}

// ReadInt64LE reads a little-endian int64 at *pos.
func ReadInt64LE(b []byte, pos *int) (int64, error) {
	v, err := ReadUint64LE(b, pos)
	return int64(v), err
}

// ReadInt128LE reads a little-endian Int128 at *pos.
func ReadInt128LE(b []byte, pos *int) (Int128, error) {
	v, err := ReadUint128LE(b, pos)
	return Int128{Hi: int64(v.Hi), Lo: v.Lo}, err
}

// ReadIntLE reads a little-endian platform-width int at *pos.
func ReadIntLE(b []byte, pos *int) (int, error) {
	v, err := ReadUintLE(b, pos)
	return int(v), err
}

// ReadFloat16LE reads a little-endian half-precision float at *pos.
func ReadFloat16LE(b []byte, pos *int) (float16.Float16, error) {
	v, err := ReadUint16LE(b, pos)
	return float16.Frombits(v), err
}

// ReadFloat32LE reads a little-endian float32 at *pos.
func ReadFloat32LE(b []byte, pos *int) (float32, error) {
	p := *pos
	if err := checkRange("float32", b, p, 4); err != nil {
		return 0, err
	}
	*pos = p + 4
	return Float32LE(b[p:]), nil
}

// ReadFloat64LE reads a little-endian float64 at *pos.
func ReadFloat64LE(b []byte, pos *int) (float64, error) {
	p := *pos
	if err := checkRange("float64", b, p, 8); err != nil {
		return 0, err
	}
	*pos = p + 8
	return Float64LE(b[p:]), nil
}

// Big-endian reads.

// ReadUint8BE reads a uint8 at *pos.
func ReadUint8BE(b []byte, pos *int) (uint8, error) {
	return ReadUint8LE(b, pos)
}

// ReadUint16BE reads a big-endian uint16 at *pos.
func ReadUint16BE(b []byte, pos *int) (uint16, error) {
	p := *pos
	if err := checkRange("uint16", b, p, 2); err != nil {
		return 0, err
	}
	*pos = p + 2
	return Uint16BE(b[p:]), nil
}

// ReadUint32BE reads a big-endian uint32 at *pos.
func ReadUint32BE(b []byte, pos *int) (uint32, error) {
	p := *pos
	if err := checkRange("uint32", b, p, 4); err != nil {
		return 0, err
	}
	*pos = p + 4
	return Uint32BE(b[p:]), nil
}

// ReadUint64BE reads a big-endian uint64 at *pos.
func ReadUint64BE(b []byte, pos *int) (uint64, error) {
	p := *pos
	if err := checkRange("uint64", b, p, 8); err != nil {
		return 0, err
	}
	*pos = p + 8
	return Uint64BE(b[p:]), nil
}

// ReadUint128BE reads a big-endian Uint128 at *pos.
func ReadUint128BE(b []byte, pos *int) (Uint128, error) {
	p := *pos
	if err := checkRange("uint128", b, p, 16); err != nil {
		return Uint128{}, err
	}
	*pos = p + 16
	return Uint128BE(b[p:]), nil
}

// ReadUintBE reads a big-endian platform-width uint at *pos.
func ReadUintBE(b []byte, pos *int) (uint, error) {
	p := *pos
	if err := checkRange("uint", b, p, uintWidth); err != nil {
		return 0, err
	}
	*pos = p + uintWidth
	return UintBE(b[p:]), nil
}

// ReadInt8BE reads an int8 at *pos.
func ReadInt8BE(b []byte, pos *int) (int8, error) {
	v, err := ReadUint8BE(b, pos)
	return int8(v), err
}

// ReadInt16BE reads a big-endian int16 at *pos.
func ReadInt16BE(b []byte, pos *int) (int16, error) {
	v, err := ReadUint16BE(b, pos)
	return int16(v), err
}

// ReadInt32BE reads a big-endian int32 at *pos.
func ReadInt32BE(b []byte, pos *int) (int32, error) {
	v, err := ReadUint32BE(b, pos)
	return int32(v), err
}

// ReadInt64BE reads a big-endian int64 at *pos.
func ReadInt64BE(b []byte, pos *int) (int64, error) {
	v, err := ReadUint64BE(b, pos)
	return int64(v), err
}

// ReadInt128BE reads a big-endian Int128 at *pos.
func ReadInt128BE(b []byte, pos *int) (Int128, error) {
	v, err := ReadUint128BE(b, pos)
	return Int128{Hi: int64(v.Hi), Lo: v.Lo}, err
}

// ReadIntBE reads a big-endian platform-width int at *pos.
func ReadIntBE(b []byte, pos *int) (int, error) {
	v, err := ReadUintBE(b, pos)
	return int(v), err
}

// ReadFloat16BE reads a big-endian half-precision float at *pos.
func ReadFloat16BE(b []byte, pos *int) (float16.Float16, error) {
	v, err := ReadUint16BE(b, pos)
	return float16.Frombits(v), err
}

// ReadFloat32BE reads a big-endian float32 at *pos.
func ReadFloat32BE(b []byte, pos *int) (float32, error) {
	p := *pos
	if err := checkRange("float32", b, p, 4); err != nil {
		return 0, err
	}
	*pos = p + 4
	return Float32BE(b[p:]), nil
}

// ReadFloat64BE reads a big-endian float64 at *pos.
func ReadFloat64BE(b []byte, pos *int) (float64, error) {
	p := *pos
	if err := checkRange("float64", b, p, 8); err != nil {
		return 0, err
	}
	*pos = p + 8
	return Float64BE(b[p:]), nil
}

// Native-endian reads.

// ReadUint8NE reads a uint8 at *pos.
func ReadUint8NE(b []byte, pos *int) (uint8, error) {
	return ReadUint8LE(b, pos)
}

// ReadUint16NE reads a native-order uint16 at *pos.
func ReadUint16NE(b []byte, pos *int) (uint16, error) {
	p := *pos
	if err := checkRange("uint16", b, p, 2); err != nil {
		return 0, err
	}
	*pos = p + 2
	return Uint16NE(b[p:]), nil
}

// ReadUint32NE reads a native-order uint32 at *pos.
func ReadUint32NE(b []byte, pos *int) (uint32, error) {
	p := *pos
	if err := checkRange("uint32", b, p, 4); err != nil {
		return 0, err
	}
	*pos = p + 4
	return Uint32NE(b[p:]), nil
}

// ReadUint64NE reads a native-order uint64 at *pos.
func ReadUint64NE(b []byte, pos *int) (uint64, error) {
	p := *pos
	if err := checkRange("uint64", b, p, 8); err != nil {
		return 0, err
	}
	*pos = p + 8
	return Uint64NE(b[p:]), nil
}

// ReadUint128NE reads a native-order Uint128 at *pos.
func ReadUint128NE(b []byte, pos *int) (Uint128, error) {
	p := *pos
	if err := checkRange("uint128", b, p, 16); err != nil {
		return Uint128{}, err
	}
	*pos = p + 16
	return Uint128NE(b[p:]), nil
}

// ReadUintNE reads a native-order platform-width uint at *pos.
func ReadUintNE(b []byte, pos *int) (uint, error) {
	p := *pos
	if err := checkRange("uint", b, p, uintWidth); err != nil {
		return 0, err
	}
	*pos = p + uintWidth
	return UintNE(b[p:]), nil
}

// ReadInt8NE reads an int8 at *pos.
func ReadInt8NE(b []byte, pos *int) (int8, error) {
	v, err := ReadUint8NE(b, pos)
	return int8(v), err
}

// ReadInt16NE reads a native-order int16 at *pos.
func ReadInt16NE(b []byte, pos *int) (int16, error) {
	v, err := ReadUint16NE(b, pos)
	return int16(v), err
}

// ReadInt32NE reads a native-order int32 at *pos.
func ReadInt32NE(b []byte, pos *int) (int32, error) {
	v, err := ReadUint32NE(b, pos)
	return int32(v), err
}

// ReadInt64NE reads a native-order int64 at *pos.
func ReadInt64NE(b []byte, pos *int) (int64, error) {
	v, err := ReadUint64NE(b, pos)
	return int64(v), err
}

// ReadInt128NE reads a native-order Int128 at *pos.
func ReadInt128NE(b []byte, pos *int) (Int128, error) {
	v, err := ReadUint128NE(b, pos)
	return Int128{Hi: int64(v.Hi), Lo: v.Lo}, err
}

// ReadIntNE reads a native-order platform-width int at *pos.
func ReadIntNE(b []byte, pos *int) (int, error) {
	v, err := ReadUintNE(b, pos)
	return int(v), err
}

// ReadFloat16NE reads a native-order half-precision float at *pos.
func ReadFloat16NE(b []byte, pos *int) (float16.Float16, error) {
	v, err := ReadUint16NE(b, pos)
	return float16.Frombits(v), err
}

// ReadFloat32NE reads a native-order float32 at *pos.
func ReadFloat32NE(b []byte, pos *int) (float32, error) {
	p := *pos
	if err := checkRange("float32", b, p, 4); err != nil {
		return 0, err
	}
	*pos = p + 4
	return Float32NE(b[p:]), nil
}

// ReadFloat64NE reads a native-order float64 at *pos.
func ReadFloat64NE(b []byte, pos *int) (float64, error) {
	p := *pos
	if err := checkRange("float64", b, p, 8); err != nil {
		return 0, err
	}
	*pos = p + 8
	return Float64NE(b[p:]), nil
}

// Little-endian writes into a fixed-capacity buffer.

// WriteUint8LE writes v at *pos.
func WriteUint8LE(b []byte, pos *int, v uint8) error {
	p := *pos
	if err := checkRange("uint8", b, p, 1); err != nil {
		return err
	}
	b[p] = v
	*pos = p + 1
	return nil
}

// WriteUint16LE writes v at *pos in little-endian order.
func WriteUint16LE(b []byte, pos *int, v uint16) error {
	p := *pos
	if err := checkRange("uint16", b, p, 2); err != nil {
		return err
	}
	PutUint16LE(b[p:], v)
	*pos = p + 2
	return nil
}

// WriteUint32LE writes v at *pos in little-endian order.
func WriteUint32LE(b []byte, pos *int, v uint32) error {
	p := *pos
	if err := checkRange("uint32", b, p, 4); err != nil {
		return err
	}
	PutUint32LE(b[p:], v)
	*pos = p + 4
	return nil
}

// WriteUint64LE writes v at *pos in little-endian order.
func WriteUint64LE(b []byte, pos *int, v uint64) error {
	p := *pos
	if err := checkRange("uint64", b, p, 8); err != nil {
		return err
	}
	PutUint64LE(b[p:], v)
	*pos = p + 8
	return nil
}

// WriteUint128LE writes v at *pos in little-endian order.
func WriteUint128LE(b []byte, pos *int, v Uint128) error {
	p := *pos
	if err := checkRange("uint128", b, p, 16); err != nil {
		return err
	}
	PutUint128LE(b[p:], v)
	*pos = p + 16
	return nil
}

// WriteUintLE writes v at *pos in little-endian order.
func WriteUintLE(b []byte, pos *int, v uint) error {
	p := *pos
	if err := checkRange("uint", b, p, uintWidth); err != nil {
		return err
	}
	PutUintLE(b[p:], v)
	*pos = p + uintWidth
	return nil
}

// WriteInt8LE writes v at *pos.
func WriteInt8LE(b []byte, pos *int, v int8) error {
	return WriteUint8LE(b, pos, uint8(v))
}

// WriteInt16LE writes v at *pos in little-endian order.
func WriteInt16LE(b []byte, pos *int, v int16) error {
	return WriteUint16LE(b, pos, uint16(v))
}

// WriteInt32LE writes v at *pos in little-endian order.
func WriteInt32LE(b []byte, pos *int, v int32) error {
	return WriteUint32LE(b, pos, uint32(v))
}

// WriteInt64LE writes v at *pos in little-endian order.
func WriteInt64LE(b []byte, pos *int, v int64) error {
	return WriteUint64LE(b, pos, uint64(v))
}

// WriteInt128LE writes v at *pos in little-endian order.
func WriteInt128LE(b []byte, pos *int, v Int128) error {
	return WriteUint128LE(b, pos, Uint128{Hi: uint64(v.Hi), Lo: v.Lo})
}

// WriteIntLE writes v at *pos in little-endian order.
func WriteIntLE(b []byte, pos *int, v int) error {
	return WriteUintLE(b, pos, uint(v))
}

// WriteFloat16LE writes v at *pos in little-endian order.
func WriteFloat16LE(b []byte, pos *int, v float16.Float16) error {
	return WriteUint16LE(b, pos, v.Bits())
}

// WriteFloat32LE writes v at *pos in little-endian order.
func WriteFloat32LE(b []byte, pos *int, v float32) error {
	p := *pos
	if err := checkRange("float32", b, p, 4); err != nil {
		return err
	}
	PutFloat32LE(b[p:], v)
	*pos = p + 4
	return nil
}

// WriteFloat64LE writes v at *pos in little-endian order.
func WriteFloat64LE(b []byte, pos *int, v float64) error {
	p := *pos
	if err := checkRange("float64", b, p, 8); err != nil {
		return err
	}
	PutFloat64LE(b[p:], v)
	*pos = p + 8
	return nil
}

// Big-endian writes.

// WriteUint8BE writes v at *pos.
func WriteUint8BE(b []byte, pos *int, v uint8) error {
	return WriteUint8LE(b, pos, v)
}

// WriteUint16BE writes v at *pos in big-endian order.
func WriteUint16BE(b []byte, pos *int, v uint16) error {
	p := *pos
	if err := checkRange("uint16", b, p, 2); err != nil {
		return err
	}
	PutUint16BE(b[p:], v)
	*pos = p + 2
	return nil
}

// WriteUint32BE writes v at *pos in big-endian order.
func WriteUint32BE(b []byte, pos *int, v uint32) error {
	p := *pos
	if err := checkRange("uint32", b, p, 4); err != nil {
		return err
	}
	PutUint32BE(b[p:], v)
	*pos = p + 4
	return nil
}

// WriteUint64BE writes v at *pos in big-endian order.
func WriteUint64BE(b []byte, pos *int, v uint64) error {
	p := *pos
	if err := checkRange("uint64", b, p, 8); err != nil {
		return err
	}
	PutUint64BE(b[p:], v)
	*pos = p + 8
	return nil
}

// WriteUint128BE writes v at *pos in big-endian order.
func WriteUint128BE(b []byte, pos *int, v Uint128) error {
	p := *pos
	if err := checkRange("uint128", b, p, 16); err != nil {
		return err
	}
	PutUint128BE(b[p:], v)
	*pos = p + 16
	return nil
}

// WriteUintBE writes v at *pos in big-endian order.
func WriteUintBE(b []byte, pos *int, v uint) error {
	p := *pos
	if err := checkRange("uint", b, p, uintWidth); err != nil {
		return err
	}
	PutUintBE(b[p:], v)
	*pos = p + uintWidth
	return nil
}

// WriteInt8BE writes v at *pos.
func WriteInt8BE(b []byte, pos *int, v int8) error {
	return WriteUint8LE(b, pos, uint8(v))
}

// WriteInt16BE writes v at *pos in big-endian order.
func WriteInt16BE(b []byte, pos *int, v int16) error {
	return WriteUint16BE(b, pos, uint16(v))
}

// WriteInt32BE writes v at *pos in big-endian order.
func WriteInt32BE(b []byte, pos *int, v int32) error {
	return WriteUint32BE(b, pos, uint32(v))
}

// WriteInt64BE writes v at *pos in big-endian order.
func WriteInt64BE(b []byte, pos *int, v int64) error {
	return WriteUint64BE(b, pos, uint64(v))
}

// WriteInt128BE writes v at *pos in big-endian order.
func WriteInt128BE(b []byte, pos *int, v Int128) error {
	return WriteUint128BE(b, pos, Uint128{Hi: uint64(v.Hi), Lo: v.Lo})
}

// WriteIntBE writes v at *pos in big-endian order.
func WriteIntBE(b []byte, pos *int, v int) error {
	return WriteUintBE(b, pos, uint(v))
}

// WriteFloat16BE writes v at *pos in big-endian order.
func WriteFloat16BE(b []byte, pos *int, v float16.Float16) error {
	return WriteUint16BE(b, pos, v.Bits())
}

// WriteFloat32BE writes v at *pos in big-endian order.
func WriteFloat32BE(b []byte, pos *int, v float32) error {
	p := *pos
	if err := checkRange("float32", b, p, 4); err != nil {
		return err
	}
	PutFloat32BE(b[p:], v)
	*pos = p + 4
	return nil
}

// WriteFloat64BE writes v at *pos in big-endian order.
func WriteFloat64BE(b []byte, pos *int, v float64) error {
	p := *pos
	if err := checkRange("float64", b, p, 8); err != nil {
		return err
	}
	PutFloat64BE(b[p:], v)
	*pos = p + 8
	return nil
}

// Native-endian writes.

// WriteUint8NE writes v at *pos.
func WriteUint8NE(b []byte, pos *int, v uint8) error {
	return WriteUint8LE(b, pos, v)
}

// WriteUint16NE writes v at *pos in native order.
func WriteUint16NE(b []byte, pos *int, v uint16) error {
	p := *pos
	if err := checkRange("uint16", b, p, 2); err != nil {
		return err
	}
	PutUint16NE(b[p:], v)
	*pos = p + 2
	return nil
}

// WriteUint32NE writes v at *pos in native order.
func WriteUint32NE(b []byte, pos *int, v uint32) error {
	p := *pos
	if err := checkRange("uint32", b, p, 4); err != nil {
		return err
	}
	PutUint32NE(b[p:], v)
	*pos = p + 4
	return nil
}

// WriteUint64NE writes v at *pos in native order.
func WriteUint64NE(b []byte, pos *int, v uint64) error {
	p := *pos
	if err := checkRange("uint64", b, p, 8); err != nil {
		return err
	}
	PutUint64NE(b[p:], v)
	*pos = p + 8
	return nil
}

// WriteUint128NE writes v at *pos in native order.
func WriteUint128NE(b []byte, pos *int, v Uint128) error {
	p := *pos
	if err := checkRange("uint128", b, p, 16); err != nil {
		return err
	}
	PutUint128NE(b[p:], v)
	*pos = p + 16
	return nil
}

// WriteUintNE writes v at *pos in native order.
func WriteUintNE(b []byte, pos *int, v uint) error {
	p := *pos
	if err := checkRange("uint", b, p, uintWidth); err != nil {
		return err
	}
	PutUintNE(b[p:], v)
	*pos = p + uintWidth
	return nil
}

// WriteInt8NE writes v at *pos.
func WriteInt8NE(b []byte, pos *int, v int8) error {
	return WriteUint8LE(b, pos, uint8(v))
}

// WriteInt16NE writes v at *pos in native order.
func WriteInt16NE(b []byte, pos *int, v int16) error {
	return WriteUint16NE(b, pos, uint16(v))
}

// WriteInt32NE writes v at *pos in native order.
func WriteInt32NE(b []byte, pos *int, v int32) error {
	return WriteUint32NE(b, pos, uint32(v))
}

// WriteInt64NE writes v at *pos in native order.
func WriteInt64NE(b []byte, pos *int, v int64) error {
	return WriteUint64NE(b, pos, uint64(v))
}

// WriteInt128NE writes v at *pos in native order.
func WriteInt128NE(b []byte, pos *int, v Int128) error {
	return WriteUint128NE(b, pos, Uint128{Hi: uint64(v.Hi), Lo: v.Lo})
}

// WriteIntNE writes v at *pos in native order.
func WriteIntNE(b []byte, pos *int, v int) error {
	return WriteUintNE(b, pos, uint(v))
}

// WriteFloat16NE writes v at *pos in native order.
func WriteFloat16NE(b []byte, pos *int, v float16.Float16) error {
	return WriteUint16NE(b, pos, v.Bits())
}

// WriteFloat32NE writes v at *pos in native order.
func WriteFloat32NE(b []byte, pos *int, v float32) error {
	p := *pos
	if err := checkRange("float32", b, p, 4); err != nil {
		return err
	}
	PutFloat32NE(b[p:], v)
	*pos = p + 4
	return nil
}

// WriteFloat64NE writes v at *pos in native order.
func WriteFloat64NE(b []byte, pos *int, v float64) error {
	p := *pos
	if err := checkRange("float64", b, p, 8); err != nil {
		return err
	}
	PutFloat64NE(b[p:], v)
	*pos = p + 8
	return nil
}
