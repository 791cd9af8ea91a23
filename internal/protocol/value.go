package protocol

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// EncodeValue returns the wire bytes for v. Integer is 4 bytes
// two's-complement big-endian; Counter and TimeTicks are 4 bytes unsigned
// big-endian; String is raw UTF-8 capped at MaxValueBytes.
func EncodeValue(v Value) ([]byte, error) {
	switch v.Type {
	case TypeInteger:
		buf := make([]byte, 4)
		binary.BigEndian.PutUint32(buf, uint32(v.Int))
		return buf, nil
	case TypeString:
		if len(v.Str) > MaxValueBytes {
			return nil, fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(v.Str))
		}
		if !utf8.ValidString(v.Str) {
			return nil, ErrInvalidUTF8
		}
		return []byte(v.Str), nil
	case TypeCounter, TypeTimeTicks:
		buf := make([]byte, 4)
		binary.BigEndian.PutUint32(buf, v.Uint)
		return buf, nil
	default:
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownValueType, byte(v.Type))
	}
}

// DecodeValue is the inverse of EncodeValue. The numeric types require
// exactly 4 bytes; strings take the bytes as-is.
func DecodeValue(t ValueType, data []byte) (Value, error) {
	switch t {
	case TypeInteger:
		if len(data) != 4 {
			return Value{}, fmt.Errorf("%w: integer value is %d bytes", ErrTruncated, len(data))
		}
		return IntegerValue(int32(binary.BigEndian.Uint32(data))), nil
	case TypeString:
		if !utf8.Valid(data) {
			return Value{}, ErrInvalidUTF8
		}
		return StringValue(string(data)), nil
	case TypeCounter, TypeTimeTicks:
		if len(data) != 4 {
			return Value{}, fmt.Errorf("%w: %d-byte value for type 0x%02x", ErrTruncated, len(data), byte(t))
		}
		v := binary.BigEndian.Uint32(data)
		if t == TypeCounter {
			return CounterValue(v), nil
		}
		return TimeTicksValue(v), nil
	default:
		return Value{}, fmt.Errorf("%w: 0x%02x", ErrUnknownValueType, byte(t))
	}
}
