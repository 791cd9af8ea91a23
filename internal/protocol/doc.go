// Package protocol owns the wire contract and parsing primitives.
//
// Ownership boundary:
// - oid and value codecs
// - message pack/unpack for the three PDU kinds
// - the error taxonomy callers branch on
package protocol
