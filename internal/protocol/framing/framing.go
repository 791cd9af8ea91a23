// Package framing reassembles exact message boundaries from an
// arbitrarily-chunked byte stream.
package framing

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/snmpctl/internal/protocol"
)

// maxReadChunk bounds one underlying read. This is policy, not a transport
// limit: the reader must behave identically whether the transport delivers a
// whole message at once or one byte at a time.
const maxReadChunk = 4096

const sizeFieldLen = 4

var (
	ErrFrameTooSmall = fmt.Errorf("%w: declared size below minimum message size", protocol.ErrProtocol)
	ErrFrameTooLarge = fmt.Errorf("%w: declared size above maximum message size", protocol.ErrProtocol)
	ErrReaderDone    = errors.New("framing: reader already reached a terminal state")
)

// Limits constrains the declared size a frame may carry.
type Limits struct {
	MinMessageBytes int
	MaxMessageBytes int
}

func DefaultLimits() Limits {
	return Limits{
		MinMessageBytes: protocol.MinMessageSize,
		MaxMessageBytes: protocol.MaxMessageSize,
	}
}

type frameState int

const (
	stateAwaitingHeaderSize frameState = iota
	stateSizeKnown
	stateAwaitingBody
	stateComplete
	stateFailed
)

// FrameReader accumulates exactly one message from src. It never requests
// more bytes than the current message still needs, so nothing past the
// message boundary is consumed. A reader is single-use: after ReadFrame
// returns, the instance is done.
type FrameReader struct {
	src      io.Reader
	limits   Limits
	state    frameState
	buf      []byte
	declared int
}

func NewFrameReader(src io.Reader) *FrameReader {
	return NewFrameReaderWithLimits(src, DefaultLimits())
}

func NewFrameReaderWithLimits(src io.Reader, limits Limits) *FrameReader {
	return &FrameReader{src: src, limits: limits}
}

// ReadFrame drives the state machine to a terminal state and returns the
// complete message bytes, ready for protocol.Unpack. A stream that ends
// before the declared size is satisfied fails with ErrConnectionClosed,
// whether or not any bytes had arrived.
func (fr *FrameReader) ReadFrame() ([]byte, error) {
	for {
		switch fr.state {
		case stateAwaitingHeaderSize:
			if err := fr.fill(sizeFieldLen); err != nil {
				return nil, fr.fail(err)
			}
			fr.state = stateSizeKnown

		case stateSizeKnown:
			fr.declared = int(binary.BigEndian.Uint32(fr.buf[:sizeFieldLen]))
			if fr.declared < fr.limits.MinMessageBytes {
				return nil, fr.fail(fmt.Errorf("%w: declared %d", ErrFrameTooSmall, fr.declared))
			}
			if fr.declared > fr.limits.MaxMessageBytes {
				return nil, fr.fail(fmt.Errorf("%w: declared %d", ErrFrameTooLarge, fr.declared))
			}
			fr.state = stateAwaitingBody

		case stateAwaitingBody:
			if err := fr.fill(fr.declared); err != nil {
				return nil, fr.fail(err)
			}
			fr.state = stateComplete

		case stateComplete:
			out := fr.buf
			fr.buf = nil
			fr.state = stateFailed // single-use; further calls error
			return out, nil

		case stateFailed:
			return nil, ErrReaderDone
		}
	}
}

// fill reads until the buffer holds total bytes, requesting at most the
// shortfall per read and never more than maxReadChunk.
func (fr *FrameReader) fill(total int) error {
	for len(fr.buf) < total {
		want := total - len(fr.buf)
		if want > maxReadChunk {
			want = maxReadChunk
		}
		chunk := make([]byte, want)
		n, err := fr.src.Read(chunk)
		if n > 0 {
			fr.buf = append(fr.buf, chunk[:n]...)
		}
		if err != nil {
			if len(fr.buf) >= total {
				return nil
			}
			if errors.Is(err, io.EOF) {
				return protocol.ErrConnectionClosed
			}
			// Deadlines, resets and friends look the same to the caller:
			// the stream ended before a complete message.
			return fmt.Errorf("%w: %v", protocol.ErrConnectionClosed, err)
		}
	}
	return nil
}

func (fr *FrameReader) fail(err error) error {
	fr.state = stateFailed
	fr.buf = nil
	return err
}
