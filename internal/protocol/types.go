package protocol

// PDUType identifies the payload kind following the message header.
type PDUType byte

const (
	PDUGetRequest  PDUType = 0xA0
	PDUGetResponse PDUType = 0xA1
	PDUSetRequest  PDUType = 0xA3
)

// ValueType tags the wire encoding of one typed value.
type ValueType byte

const (
	TypeInteger   ValueType = 0x02
	TypeString    ValueType = 0x04
	TypeCounter   ValueType = 0x41
	TypeTimeTicks ValueType = 0x43
)

// ErrorCode is the semantic result carried by a GetResponse. These are
// normal protocol outcomes, not errors in the Go sense.
type ErrorCode byte

const (
	NoError     ErrorCode = 0
	NoSuchName  ErrorCode = 1
	BadValue    ErrorCode = 2
	NotWritable ErrorCode = 3
)

const (
	// HeaderSize covers total_size(4) + request_id(4) + pdu_type(1).
	HeaderSize = 9
	// ResponseHeaderSize adds the error_code byte only GetResponse carries.
	ResponseHeaderSize = 10
	// MinMessageSize is the smallest valid message: an empty-binding response
	// would be 10, but a request header alone is 9.
	MinMessageSize = 9
	// MaxMessageSize caps one message at 64KB to bound decode memory.
	MaxMessageSize = 64 * 1024
	// MaxItems is the largest count a one-byte count field can carry.
	MaxItems = 255
	// MaxValueBytes is the largest value a two-byte length field can carry.
	MaxValueBytes = 65535
	// MaxOIDComponents is the largest oid a one-byte length field can carry.
	MaxOIDComponents = 255
)

// Value is one typed scalar. Exactly one of Int, Uint, Str is meaningful,
// selected by Type.
type Value struct {
	Type ValueType
	Int  int32  // TypeInteger
	Uint uint32 // TypeCounter, TypeTimeTicks
	Str  string // TypeString
}

// IntegerValue creates a signed 32-bit integer value.
func IntegerValue(v int32) Value {
	return Value{Type: TypeInteger, Int: v}
}

// StringValue creates a UTF-8 string value.
func StringValue(s string) Value {
	return Value{Type: TypeString, Str: s}
}

// CounterValue creates an unsigned 32-bit counter value.
func CounterValue(v uint32) Value {
	return Value{Type: TypeCounter, Uint: v}
}

// TimeTicksValue creates a time value in hundredths of a second.
func TimeTicksValue(v uint32) Value {
	return Value{Type: TypeTimeTicks, Uint: v}
}

// Binding pairs an oid with a typed value.
type Binding struct {
	OID   string
	Value Value
}

// Message is one complete protocol message.
type Message interface {
	PDU() PDUType
	Pack() ([]byte, error)
}

// GetRequest asks the agent for the values bound to OIDs.
type GetRequest struct {
	RequestID uint32
	OIDs      []string
}

func (m *GetRequest) PDU() PDUType { return PDUGetRequest }

// SetRequest asks the agent to replace the values bound in Bindings.
type SetRequest struct {
	RequestID uint32
	Bindings  []Binding
}

func (m *SetRequest) PDU() PDUType { return PDUSetRequest }

// GetResponse answers either request kind. Code is NoError exactly when
// every requested item succeeded; on failure Bindings is empty.
type GetResponse struct {
	RequestID uint32
	Code      ErrorCode
	Bindings  []Binding
}

func (m *GetResponse) PDU() PDUType { return PDUGetResponse }
