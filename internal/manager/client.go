// Package manager is the client side of the management protocol: it builds
// requests, correlates responses by request id and surfaces result codes.
package manager

import (
	"fmt"
	"net"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/snmpctl/internal/protocol"
	"github.com/danmuck/snmpctl/internal/protocol/framing"
)

// DefaultTimeout bounds dialing and the whole exchange. A stalled agent
// surfaces as ConnectionClosed, same as a dropped one.
const DefaultTimeout = 5 * time.Second

// Client issues one-shot request/response exchanges. Request ids are unique
// within the process lifetime; the counter starts from the clock so quick
// restarts do not replay ids.
type Client struct {
	Timeout time.Duration
	nextID  atomic.Uint32
}

func NewClient() *Client {
	c := &Client{Timeout: DefaultTimeout}
	c.nextID.Store(uint32(time.Now().UnixNano()))
	return c
}

// Result is one completed exchange: the agent's result code and, on
// success, the returned bindings.
type Result struct {
	Code     protocol.ErrorCode
	Bindings []protocol.Binding
}

// Get queries the agent for one or more oids.
func (c *Client) Get(host string, port int, oids []string) (*Result, error) {
	if len(oids) == 0 {
		return nil, fmt.Errorf("%w: at least one oid required", protocol.ErrValidation)
	}
	id := c.nextID.Add(1)
	return c.roundTrip(host, port, &protocol.GetRequest{RequestID: id, OIDs: oids}, id)
}

// Set asks the agent to replace the given bindings atomically.
func (c *Client) Set(host string, port int, bindings []protocol.Binding) (*Result, error) {
	if len(bindings) == 0 {
		return nil, fmt.Errorf("%w: at least one binding required", protocol.ErrValidation)
	}
	id := c.nextID.Add(1)
	return c.roundTrip(host, port, &protocol.SetRequest{RequestID: id, Bindings: bindings}, id)
}

func (c *Client) roundTrip(host string, port int, req protocol.Message, wantID uint32) (*Result, error) {
	out, err := req.Pack()
	if err != nil {
		return nil, err
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("manager dial %s: %w", addr, err)
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(timeout))

	if _, err := conn.Write(out); err != nil {
		return nil, fmt.Errorf("manager send: %w", err)
	}

	raw, err := framing.NewFrameReader(conn).ReadFrame()
	if err != nil {
		return nil, err
	}
	msg, err := protocol.Unpack(raw)
	if err != nil {
		return nil, err
	}
	resp, ok := msg.(*protocol.GetResponse)
	if !ok {
		return nil, fmt.Errorf("%w: expected response, got pdu 0x%02x", protocol.ErrProtocol, byte(msg.PDU()))
	}
	if resp.RequestID != wantID {
		return nil, fmt.Errorf("%w: sent %d, got %d", protocol.ErrRequestIDMismatch, wantID, resp.RequestID)
	}

	log.Debug().
		Str("agent", addr).
		Uint32("request_id", wantID).
		Uint8("code", uint8(resp.Code)).
		Int("bindings", len(resp.Bindings)).
		Msg("exchange complete")
	return &Result{Code: resp.Code, Bindings: resp.Bindings}, nil
}
