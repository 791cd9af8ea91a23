package framing

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/danmuck/snmpctl/internal/protocol"
)

// chunkedReader delivers at most chunk bytes per Read regardless of how
// much the caller asks for, mimicking a transport that fragments delivery.
type chunkedReader struct {
	data  []byte
	chunk int
}

func (c *chunkedReader) Read(p []byte) (int, error) {
	if len(c.data) == 0 {
		return 0, io.EOF
	}
	n := len(p)
	if n > c.chunk {
		n = c.chunk
	}
	if n > len(c.data) {
		n = len(c.data)
	}
	copy(p, c.data[:n])
	c.data = c.data[n:]
	return n, nil
}

// recordingReader tracks the largest single request made of the source.
type recordingReader struct {
	inner   io.Reader
	maxWant int
}

func (r *recordingReader) Read(p []byte) (int, error) {
	if len(p) > r.maxWant {
		r.maxWant = len(p)
	}
	return r.inner.Read(p)
}

func packedRequest(t *testing.T, oids ...string) []byte {
	t.Helper()
	msg, err := (&protocol.GetRequest{RequestID: 42, OIDs: oids}).Pack()
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	return msg
}

func TestReadFrameAnyChunking(t *testing.T) {
	msg := packedRequest(t, "1.3.6.1.2.1.1.1.0", "1.3.6.1.2.1.1.5.0")
	for _, chunk := range []int{1, 2, 3, 5, 7, len(msg), len(msg) + 100} {
		fr := NewFrameReader(&chunkedReader{data: msg, chunk: chunk})
		got, err := fr.ReadFrame()
		if err != nil {
			t.Fatalf("chunk=%d: %v", chunk, err)
		}
		if !bytes.Equal(got, msg) {
			t.Fatalf("chunk=%d: frame mismatch", chunk)
		}
	}
}

func TestReadFrameLeavesNextMessageUntouched(t *testing.T) {
	first := packedRequest(t, "1.3.6.1.2.1.1.1.0")
	second := packedRequest(t, "1.3.6.1.2.1.1.5.0")
	src := bytes.NewReader(append(append([]byte{}, first...), second...))

	got1, err := NewFrameReader(src).ReadFrame()
	if err != nil {
		t.Fatalf("first frame: %v", err)
	}
	if !bytes.Equal(got1, first) {
		t.Fatalf("first frame mismatch")
	}
	got2, err := NewFrameReader(src).ReadFrame()
	if err != nil {
		t.Fatalf("second frame: %v", err)
	}
	if !bytes.Equal(got2, second) {
		t.Fatalf("second frame mismatch: reader consumed past the boundary")
	}
}

func TestReadFrameNeverRequestsMoreThanChunkCap(t *testing.T) {
	// A maximum-size frame forces multiple body reads.
	body := make([]byte, protocol.MaxMessageSize)
	binary.BigEndian.PutUint32(body[:4], uint32(len(body)))
	rec := &recordingReader{inner: bytes.NewReader(body)}
	if _, err := NewFrameReader(rec).ReadFrame(); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if rec.maxWant > maxReadChunk {
		t.Fatalf("requested %d bytes in one read, cap is %d", rec.maxWant, maxReadChunk)
	}
}

func TestReadFrameEOFBeforeHeader(t *testing.T) {
	for _, data := range [][]byte{nil, {0x00}, {0x00, 0x00, 0x00}} {
		_, err := NewFrameReader(bytes.NewReader(data)).ReadFrame()
		if !errors.Is(err, protocol.ErrConnectionClosed) {
			t.Fatalf("%d header bytes: expected ErrConnectionClosed, got %v", len(data), err)
		}
	}
}

func TestReadFrameEOFMidBody(t *testing.T) {
	msg := packedRequest(t, "1.3.6.1.2.1.1.1.0")
	_, err := NewFrameReader(bytes.NewReader(msg[:len(msg)-3])).ReadFrame()
	if !errors.Is(err, protocol.ErrConnectionClosed) {
		t.Fatalf("expected ErrConnectionClosed, got %v", err)
	}
}

func TestReadFrameDeclaredSizeTooSmall(t *testing.T) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], 8) // below the 9-byte minimum
	_, err := NewFrameReader(bytes.NewReader(buf[:])).ReadFrame()
	if !errors.Is(err, ErrFrameTooSmall) {
		t.Fatalf("expected ErrFrameTooSmall, got %v", err)
	}
	if !errors.Is(err, protocol.ErrProtocol) {
		t.Fatalf("expected protocol kind, got %v", err)
	}
}

func TestReadFrameDeclaredSizeTooLarge(t *testing.T) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], protocol.MaxMessageSize+1)
	_, err := NewFrameReader(bytes.NewReader(buf[:])).ReadFrame()
	if !errors.Is(err, ErrFrameTooLarge) {
		t.Fatalf("expected ErrFrameTooLarge, got %v", err)
	}
}

func TestReaderIsSingleUse(t *testing.T) {
	msg := packedRequest(t, "1.3")
	fr := NewFrameReader(bytes.NewReader(append(append([]byte{}, msg...), msg...)))
	if _, err := fr.ReadFrame(); err != nil {
		t.Fatalf("first read: %v", err)
	}
	if _, err := fr.ReadFrame(); !errors.Is(err, ErrReaderDone) {
		t.Fatalf("expected ErrReaderDone, got %v", err)
	}
}
