package protocol

import (
	"encoding/binary"
	"fmt"
)

// Pack serializes a GetRequest: header, oid count, then each oid
// length-prefixed.
func (m *GetRequest) Pack() ([]byte, error) {
	if len(m.OIDs) > MaxItems {
		return nil, fmt.Errorf("%w: %d oids", ErrTooManyItems, len(m.OIDs))
	}
	payload := []byte{byte(len(m.OIDs))}
	for _, oid := range m.OIDs {
		encoded, err := EncodeOID(oid)
		if err != nil {
			return nil, err
		}
		payload = append(payload, byte(len(encoded)))
		payload = append(payload, encoded...)
	}
	return packMessage(m.RequestID, PDUGetRequest, nil, payload), nil
}

// Pack serializes a SetRequest: header, binding count, then each binding as
// oid + type tag + 2-byte value length + value bytes.
func (m *SetRequest) Pack() ([]byte, error) {
	payload, err := packBindings(m.Bindings)
	if err != nil {
		return nil, err
	}
	return packMessage(m.RequestID, PDUSetRequest, nil, payload), nil
}

// Pack serializes a GetResponse. The header gains the one-byte error code;
// the payload layout matches SetRequest.
func (m *GetResponse) Pack() ([]byte, error) {
	payload, err := packBindings(m.Bindings)
	if err != nil {
		return nil, err
	}
	code := m.Code
	return packMessage(m.RequestID, PDUGetResponse, &code, payload), nil
}

func packBindings(bindings []Binding) ([]byte, error) {
	if len(bindings) > MaxItems {
		return nil, fmt.Errorf("%w: %d bindings", ErrTooManyItems, len(bindings))
	}
	payload := []byte{byte(len(bindings))}
	for _, b := range bindings {
		oid, err := EncodeOID(b.OID)
		if err != nil {
			return nil, err
		}
		value, err := EncodeValue(b.Value)
		if err != nil {
			return nil, err
		}
		payload = append(payload, byte(len(oid)))
		payload = append(payload, oid...)
		payload = append(payload, byte(b.Value.Type))
		payload = binary.BigEndian.AppendUint16(payload, uint16(len(value)))
		payload = append(payload, value...)
	}
	return payload, nil
}

// packMessage assembles header plus payload. The size field is computed from
// the finished payload, never guessed.
func packMessage(requestID uint32, pdu PDUType, code *ErrorCode, payload []byte) []byte {
	headerLen := HeaderSize
	if code != nil {
		headerLen = ResponseHeaderSize
	}
	msg := make([]byte, 0, headerLen+len(payload))
	msg = binary.BigEndian.AppendUint32(msg, uint32(headerLen+len(payload)))
	msg = binary.BigEndian.AppendUint32(msg, requestID)
	msg = append(msg, byte(pdu))
	if code != nil {
		msg = append(msg, byte(*code))
	}
	return append(msg, payload...)
}

// Unpack parses one complete message. The supplied buffer must be exactly
// the message: the declared size field has to equal len(data).
func Unpack(data []byte) (Message, error) {
	if len(data) < MinMessageSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(data))
	}
	declared := binary.BigEndian.Uint32(data[0:4])
	if int64(declared) != int64(len(data)) {
		return nil, fmt.Errorf("%w: declared %d, have %d", ErrSizeMismatch, declared, len(data))
	}
	requestID := binary.BigEndian.Uint32(data[4:8])

	switch pdu := PDUType(data[8]); pdu {
	case PDUGetRequest:
		return unpackGetRequest(requestID, data[HeaderSize:])
	case PDUSetRequest:
		bindings, err := unpackBindings(data[HeaderSize:])
		if err != nil {
			return nil, err
		}
		return &SetRequest{RequestID: requestID, Bindings: bindings}, nil
	case PDUGetResponse:
		if len(data) < ResponseHeaderSize {
			return nil, fmt.Errorf("%w: response without error code", ErrTruncated)
		}
		bindings, err := unpackBindings(data[ResponseHeaderSize:])
		if err != nil {
			return nil, err
		}
		return &GetResponse{RequestID: requestID, Code: ErrorCode(data[9]), Bindings: bindings}, nil
	default:
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownPDUType, byte(pdu))
	}
}

func unpackGetRequest(requestID uint32, payload []byte) (*GetRequest, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("%w: missing oid count", ErrTruncated)
	}
	count := int(payload[0])
	offset := 1
	oids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		oid, next, err := readOID(payload, offset)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
		offset = next
	}
	if offset != len(payload) {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, len(payload)-offset)
	}
	return &GetRequest{RequestID: requestID, OIDs: oids}, nil
}

func unpackBindings(payload []byte) ([]Binding, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("%w: missing binding count", ErrTruncated)
	}
	count := int(payload[0])
	offset := 1
	bindings := make([]Binding, 0, count)
	for i := 0; i < count; i++ {
		oid, next, err := readOID(payload, offset)
		if err != nil {
			return nil, err
		}
		offset = next
		if len(payload)-offset < 3 {
			return nil, fmt.Errorf("%w: binding %d missing value header", ErrTruncated, i)
		}
		valueType := ValueType(payload[offset])
		valueLen := int(binary.BigEndian.Uint16(payload[offset+1 : offset+3]))
		offset += 3
		if len(payload)-offset < valueLen {
			return nil, fmt.Errorf("%w: binding %d value runs past end", ErrTruncated, i)
		}
		value, err := DecodeValue(valueType, payload[offset:offset+valueLen])
		if err != nil {
			return nil, err
		}
		offset += valueLen
		bindings = append(bindings, Binding{OID: oid, Value: value})
	}
	if offset != len(payload) {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, len(payload)-offset)
	}
	return bindings, nil
}

func readOID(payload []byte, offset int) (string, int, error) {
	if len(payload)-offset < 1 {
		return "", 0, fmt.Errorf("%w: missing oid length", ErrTruncated)
	}
	oidLen := int(payload[offset])
	offset++
	if oidLen == 0 {
		return "", 0, fmt.Errorf("%w: zero-length oid", ErrProtocol)
	}
	if len(payload)-offset < oidLen {
		return "", 0, fmt.Errorf("%w: oid runs past end", ErrTruncated)
	}
	oid := DecodeOID(payload[offset : offset+oidLen])
	return oid, offset + oidLen, nil
}
