// Package agent serves the management protocol: accept a connection, read
// one framed request, dispatch it against the store, write one response,
// close.
package agent

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	reuseport "github.com/kavu/go_reuseport"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/snmpctl/internal/config"
	"github.com/danmuck/snmpctl/internal/mib"
	"github.com/danmuck/snmpctl/internal/observability"
	"github.com/danmuck/snmpctl/internal/protocol"
	"github.com/danmuck/snmpctl/internal/protocol/framing"
)

// Agent owns the listener and the single lock that serializes all store
// access across connection handlers.
type Agent struct {
	cfg   config.AgentConfig
	store mib.Store

	mu sync.Mutex // guards store: reads and validate-then-apply sequences
	ln net.Listener
}

func New(cfg config.AgentConfig, store mib.Store) *Agent {
	return &Agent{cfg: cfg, store: store}
}

// Listen opens the listener without accepting. Splitting this from Serve
// lets callers bind port 0 and read Addr before any traffic.
func (a *Agent) Listen() error {
	addr := a.cfg.ListenAddr()
	var (
		ln  net.Listener
		err error
	)
	if a.cfg.Reuseport {
		ln, err = reuseport.Listen("tcp", addr)
	} else {
		ln, err = net.Listen("tcp", addr)
	}
	if err != nil {
		return fmt.Errorf("agent listen on %s: %w", addr, err)
	}
	a.ln = ln
	return nil
}

// Addr reports the bound address; nil before Listen.
func (a *Agent) Addr() net.Addr {
	if a.ln == nil {
		return nil
	}
	return a.ln.Addr()
}

// Serve accepts until ctx is cancelled. One connection's failure never
// stops the loop.
func (a *Agent) Serve(ctx context.Context) error {
	if a.ln == nil {
		if err := a.Listen(); err != nil {
			return err
		}
	}
	defer a.ln.Close()
	log.Info().Str("addr", a.ln.Addr().String()).Msg("agent listening")

	go func() {
		<-ctx.Done()
		_ = a.ln.Close()
	}()

	for {
		conn, err := a.ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		go a.handleConn(conn)
	}
}

// handleConn runs the one-shot request/response exchange. Every exit path
// closes the connection; a panic in dispatch is contained here.
func (a *Agent) handleConn(conn net.Conn) {
	defer conn.Close()
	remote := conn.RemoteAddr().String()
	observability.ConnectionOpened()
	defer observability.ConnectionClosed()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("remote", remote).Any("panic", r).Msg("agent connection handler panicked")
		}
	}()

	if a.cfg.ReadTimeoutSeconds > 0 {
		deadline := time.Now().Add(time.Duration(a.cfg.ReadTimeoutSeconds) * time.Second)
		_ = conn.SetDeadline(deadline)
	}

	raw, err := framing.NewFrameReader(conn).ReadFrame()
	if err != nil {
		observability.RecordDecodeFailure("frame")
		if errors.Is(err, protocol.ErrConnectionClosed) {
			log.Debug().Str("remote", remote).Err(err).Msg("connection closed before complete request")
		} else {
			log.Warn().Str("remote", remote).Err(err).Msg("malformed frame")
		}
		return
	}

	msg, err := protocol.Unpack(raw)
	if err != nil {
		// An unparseable request cannot be correlated, so no response is
		// fabricated; the close is the signal.
		observability.RecordDecodeFailure("decode")
		log.Warn().Str("remote", remote).Err(err).Msg("undecodable request")
		return
	}

	var resp *protocol.GetResponse
	switch req := msg.(type) {
	case *protocol.GetRequest:
		resp = a.handleGet(req)
	case *protocol.SetRequest:
		resp = a.handleSet(req)
	default:
		observability.RecordDecodeFailure("dispatch")
		log.Warn().Str("remote", remote).Uint8("pdu", uint8(msg.PDU())).Msg("request pdu not dispatchable")
		return
	}

	out, err := resp.Pack()
	if err != nil {
		log.Error().Str("remote", remote).Err(err).Msg("response pack failed")
		return
	}
	if _, err := conn.Write(out); err != nil {
		log.Warn().Str("remote", remote).Err(err).Msg("response write failed")
		return
	}
	observability.RecordRequest(pduName(msg.PDU()), byte(resp.Code))
	log.Debug().
		Str("remote", remote).
		Str("pdu", pduName(msg.PDU())).
		Uint8("code", uint8(resp.Code)).
		Int("bindings", len(resp.Bindings)).
		Msg("request served")
}

func pduName(pdu protocol.PDUType) string {
	switch pdu {
	case protocol.PDUGetRequest:
		return "get"
	case protocol.PDUSetRequest:
		return "set"
	case protocol.PDUGetResponse:
		return "response"
	default:
		return fmt.Sprintf("0x%02x", byte(pdu))
	}
}
