package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeOID converts dot-decimal oid text to its wire form, one byte per
// component. Components must be decimal integers in 0..255; empty text and
// oids longer than MaxOIDComponents are rejected.
func EncodeOID(oid string) ([]byte, error) {
	if oid == "" {
		return nil, fmt.Errorf("%w: empty oid", ErrBadOID)
	}
	parts := strings.Split(oid, ".")
	if len(parts) > MaxOIDComponents {
		return nil, fmt.Errorf("%w: %d components exceeds %d", ErrBadOID, len(parts), MaxOIDComponents)
	}
	out := make([]byte, len(parts))
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: component %q", ErrBadOID, part)
		}
		out[i] = byte(n)
	}
	return out, nil
}

// DecodeOID converts wire-form oid bytes back to dot-decimal text. Every
// byte is representable, so decoding cannot fail; callers validate length.
func DecodeOID(oid []byte) string {
	var b strings.Builder
	for i, c := range oid {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(int(c)))
	}
	return b.String()
}
