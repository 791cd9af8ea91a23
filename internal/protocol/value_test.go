package protocol

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncodeValueKnownBytes(t *testing.T) {
	cases := []struct {
		name  string
		value Value
		want  []byte
	}{
		{"integer zero", IntegerValue(0), []byte{0x00, 0x00, 0x00, 0x00}},
		{"integer 42", IntegerValue(42), []byte{0x00, 0x00, 0x00, 0x2a}},
		{"integer -1", IntegerValue(-1), []byte{0xff, 0xff, 0xff, 0xff}},
		{"integer min", IntegerValue(-2147483648), []byte{0x80, 0x00, 0x00, 0x00}},
		{"string", StringValue("test"), []byte("test")},
		{"empty string", StringValue(""), []byte{}},
		{"counter", CounterValue(1000000), []byte{0x00, 0x0f, 0x42, 0x40}},
		{"counter max", CounterValue(4294967295), []byte{0xff, 0xff, 0xff, 0xff}},
		{"timeticks one second", TimeTicksValue(100), []byte{0x00, 0x00, 0x00, 0x64}},
	}
	for _, tc := range cases {
		got, err := EncodeValue(tc.value)
		if err != nil {
			t.Fatalf("%s: encode: %v", tc.name, err)
		}
		if !bytes.Equal(got, tc.want) {
			t.Fatalf("%s: got=%x want=%x", tc.name, got, tc.want)
		}
	}
}

func TestValueRoundTrip(t *testing.T) {
	cases := []Value{
		IntegerValue(-2147483648),
		IntegerValue(2147483647),
		StringValue("Hello 🌍"),
		CounterValue(0),
		TimeTicksValue(360000),
	}
	for _, v := range cases {
		encoded, err := EncodeValue(v)
		if err != nil {
			t.Fatalf("encode %+v: %v", v, err)
		}
		decoded, err := DecodeValue(v.Type, encoded)
		if err != nil {
			t.Fatalf("decode %+v: %v", v, err)
		}
		if decoded != v {
			t.Fatalf("round trip mismatch: got=%+v want=%+v", decoded, v)
		}
	}
}

func TestEncodeValueRejectsLongString(t *testing.T) {
	_, err := EncodeValue(StringValue(strings.Repeat("x", MaxValueBytes+1)))
	if !errors.Is(err, ErrStringTooLong) {
		t.Fatalf("expected ErrStringTooLong, got %v", err)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation kind, got %v", err)
	}
}

func TestEncodeValueRejectsInvalidUTF8(t *testing.T) {
	_, err := EncodeValue(StringValue(string([]byte{0xff, 0xfe})))
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestDecodeValueLengthMismatch(t *testing.T) {
	for _, vt := range []ValueType{TypeInteger, TypeCounter, TypeTimeTicks} {
		if _, err := DecodeValue(vt, []byte{1, 2, 3}); !errors.Is(err, ErrTruncated) {
			t.Fatalf("type 0x%02x: expected ErrTruncated, got %v", byte(vt), err)
		}
	}
}

func TestDecodeValueUnknownType(t *testing.T) {
	_, err := DecodeValue(ValueType(0x99), []byte{0, 0, 0, 0})
	if !errors.Is(err, ErrUnknownValueType) {
		t.Fatalf("expected ErrUnknownValueType, got %v", err)
	}
	if !errors.Is(err, ErrProtocol) {
		t.Fatalf("expected protocol kind, got %v", err)
	}
}
