package protocol

import (
	"errors"
	"fmt"
)

// ErrValidation and ErrProtocol are the two failure kinds callers branch on
// with errors.Is. Every specific sentinel below wraps exactly one of them:
// validation failures are raised before any I/O, protocol failures during
// decode of bytes already received.
var (
	ErrValidation = errors.New("protocol: validation failed")
	ErrProtocol   = errors.New("protocol: malformed message")

	ErrBadOID        = fmt.Errorf("%w: invalid oid", ErrValidation)
	ErrStringTooLong = fmt.Errorf("%w: string value too long", ErrValidation)
	ErrInvalidUTF8   = fmt.Errorf("%w: string value is not valid utf-8", ErrValidation)
	ErrBadValueText  = fmt.Errorf("%w: cannot convert value text", ErrValidation)
	ErrTooManyItems  = fmt.Errorf("%w: too many items for one message", ErrValidation)

	ErrSizeMismatch      = fmt.Errorf("%w: declared size does not match message length", ErrProtocol)
	ErrUnknownPDUType    = fmt.Errorf("%w: unknown pdu type", ErrProtocol)
	ErrUnknownValueType  = fmt.Errorf("%w: unknown value type", ErrProtocol)
	ErrTruncated         = fmt.Errorf("%w: truncated data", ErrProtocol)
	ErrTrailingBytes     = fmt.Errorf("%w: payload has trailing bytes", ErrProtocol)
	ErrRequestIDMismatch = fmt.Errorf("%w: response request id does not match request", ErrProtocol)

	// ErrConnectionClosed means the peer closed the stream before a complete
	// message arrived. It is its own kind: neither validation nor decode.
	ErrConnectionClosed = errors.New("protocol: connection closed before complete message")
)
