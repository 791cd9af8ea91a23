package protocol

import (
	"bytes"
	"encoding/binary"
	"errors"
	"reflect"
	"testing"
)

func TestGetRequestGoldenBytes(t *testing.T) {
	req := &GetRequest{RequestID: 1234, OIDs: []string{"1.3.6.1.2.1.1.5.0"}}
	got, err := req.Pack()
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	want := []byte{
		0x00, 0x00, 0x00, 0x14, // total size 20
		0x00, 0x00, 0x04, 0xd2, // request id 1234
		0xa0,       // GetRequest
		0x01,       // oid count
		0x09,       // oid length
		0x01, 0x03, 0x06, 0x01, 0x02, 0x01, 0x01, 0x05, 0x00,
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("golden mismatch:\n got=%x\nwant=%x", got, want)
	}
}

func TestGetResponseGoldenBytes(t *testing.T) {
	resp := &GetResponse{
		RequestID: 1234,
		Code:      NoError,
		Bindings:  []Binding{{OID: "1.3.6.1.2.1.1.5.0", Value: StringValue("router-main")}},
	}
	got, err := resp.Pack()
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	want := []byte{
		0x00, 0x00, 0x00, 0x23, // total size 35
		0x00, 0x00, 0x04, 0xd2, // request id 1234
		0xa1, 0x00, // GetResponse, success
		0x01,       // binding count
		0x09,       // oid length
		0x01, 0x03, 0x06, 0x01, 0x02, 0x01, 0x01, 0x05, 0x00,
		0x04,       // string type
		0x00, 0x0b, // value length 11
	}
	want = append(want, []byte("router-main")...)
	if !bytes.Equal(got, want) {
		t.Fatalf("golden mismatch:\n got=%x\nwant=%x", got, want)
	}
}

func TestMessageRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		msg  Message
	}{
		{"get request", &GetRequest{RequestID: 7, OIDs: []string{"1.3.6.1.2.1.1.1.0", "1.3.6.1.2.1.1.5.0"}}},
		{"get request empty", &GetRequest{RequestID: 8, OIDs: []string{}}},
		{"set request", &SetRequest{RequestID: 9, Bindings: []Binding{
			{OID: "1.3.6.1.2.1.1.5.0", Value: StringValue("router1")},
			{OID: "1.3.6.1.2.1.1.7.0", Value: IntegerValue(-5)},
		}}},
		{"response success", &GetResponse{RequestID: 10, Code: NoError, Bindings: []Binding{
			{OID: "1.3.6.1.2.1.1.3.0", Value: TimeTicksValue(4711)},
			{OID: "1.3.6.1.2.1.4.3.0", Value: CounterValue(98765432)},
		}}},
		{"response error empty", &GetResponse{RequestID: 11, Code: NoSuchName, Bindings: []Binding{}}},
	}
	for _, tc := range cases {
		packed, err := tc.msg.Pack()
		if err != nil {
			t.Fatalf("%s: pack: %v", tc.name, err)
		}
		if declared := binary.BigEndian.Uint32(packed[:4]); int(declared) != len(packed) {
			t.Fatalf("%s: size field %d but message is %d bytes", tc.name, declared, len(packed))
		}
		decoded, err := Unpack(packed)
		if err != nil {
			t.Fatalf("%s: unpack: %v", tc.name, err)
		}
		if !reflect.DeepEqual(decoded, tc.msg) {
			t.Fatalf("%s: round trip mismatch:\n got=%+v\nwant=%+v", tc.name, decoded, tc.msg)
		}
	}
}

func TestUnpackSizeMismatch(t *testing.T) {
	packed, err := (&GetRequest{RequestID: 1, OIDs: []string{"1.3"}}).Pack()
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	binary.BigEndian.PutUint32(packed[:4], uint32(len(packed)+1))
	if _, err := Unpack(packed); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestUnpackUnknownPDUType(t *testing.T) {
	packed, err := (&GetRequest{RequestID: 1, OIDs: []string{"1.3"}}).Pack()
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	packed[8] = 0xB7
	_, err = Unpack(packed)
	if !errors.Is(err, ErrUnknownPDUType) {
		t.Fatalf("expected ErrUnknownPDUType, got %v", err)
	}
	if !errors.Is(err, ErrProtocol) {
		t.Fatalf("expected protocol kind, got %v", err)
	}
}

func TestUnpackTruncatedOID(t *testing.T) {
	// Declares one oid of 9 bytes but supplies only 3.
	payload := []byte{0x01, 0x09, 0x01, 0x03, 0x06}
	msg := packMessage(1, PDUGetRequest, nil, payload)
	if _, err := Unpack(msg); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestUnpackTruncatedValue(t *testing.T) {
	// One binding whose declared value length runs past the buffer end.
	payload := []byte{0x01, 0x02, 0x01, 0x03, byte(TypeString), 0x00, 0x10, 'x'}
	msg := packMessage(1, PDUSetRequest, nil, payload)
	if _, err := Unpack(msg); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestUnpackTrailingBytes(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x01, 0x03, 0xde, 0xad}
	msg := packMessage(1, PDUGetRequest, nil, payload)
	if _, err := Unpack(msg); !errors.Is(err, ErrTrailingBytes) {
		t.Fatalf("expected ErrTrailingBytes, got %v", err)
	}
}

func TestUnpackResponseTooShortForErrorCode(t *testing.T) {
	msg := packMessage(1, PDUGetResponse, nil, nil) // 9 bytes, no error code byte
	if _, err := Unpack(msg); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestPackRejectsInvalidOID(t *testing.T) {
	_, err := (&GetRequest{RequestID: 1, OIDs: []string{"1.999"}}).Pack()
	if !errors.Is(err, ErrBadOID) {
		t.Fatalf("expected ErrBadOID, got %v", err)
	}
}
