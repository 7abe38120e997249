// Package bufrw interposes user-managed byte buffers between a caller and an
// underlying byte stream, batching small reads and writes into fewer, larger
// transfers. It keeps the caller's view of the stream position consistent
// even while either buffer holds pending data.
package bufrw

import (
	"io"
	"math"
)

// Stream is the underlying byte stream a Buffered wraps. *os.File satisfies
// it, as does BytesStream. A Read returning (0, io.EOF) signals exhaustion;
// Seek doubles as the position query.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
}

// Buffered owns a pair of byte buffers for exactly one Stream: a read buffer
// refilled from the stream when it runs dry, and a write buffer flushed to
// the stream when it fills. Buffers are allocated lazily on first use per
// role and released by Close.
//
// A Buffered is not safe for concurrent use.
type Buffered struct {
	s Stream

	rbuf []byte // read buffer, nil until the first read
	rpos int    // next unread byte in rbuf
	rlen int    // valid bytes in rbuf, rpos <= rlen <= len(rbuf)
	rcap int    // capacity rbuf is (re)allocated to

	wbuf []byte // write buffer, nil until the first write
	wpos int    // bytes buffered but not yet flushed
	wcap int    // capacity wbuf is (re)allocated to
}

var _ io.ReadWriteSeeker = (*Buffered)(nil)

// New creates a Buffered around s with DefaultBufferSize buffers.
func New(s Stream) (*Buffered, error) {
	return NewSize(s, DefaultBufferSize, DefaultBufferSize)
}

// NewSize creates a Buffered around s with the given read and write buffer
// capacities. The buffers themselves are not allocated until first use.
func NewSize(s Stream, readSize, writeSize int) (*Buffered, error) {
	if s == nil {
		return nil, ErrNilStream
	}
	if readSize <= 0 || writeSize <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Buffered{s: s, rcap: readSize, wcap: writeSize}, nil
}

// Reset flushes pending writes, drops any buffered read data and redirects
// the Buffered at a new stream. Buffers never carry data across streams;
// this is the only supported way to switch the underlying stream.
func (b *Buffered) Reset(s Stream) error {
	if s == nil {
		return ErrNilStream
	}
	if _, err := b.Flush(); err != nil {
		return err
	}
	b.rpos, b.rlen = 0, 0
	b.s = s
	return nil
}

// Close flushes pending writes and releases both buffers. It does not touch
// the underlying stream. Close is idempotent, and a closed Buffered remains
// usable: the next read or write reallocates its buffer as if freshly
// constructed.
//
// If the flush fails the buffers are kept, so the pending bytes survive for
// a retry, and the flush error is returned.
func (b *Buffered) Close() error {
	if _, err := b.Flush(); err != nil {
		return err
	}
	b.release()
	return nil
}

// release frees both buffers unconditionally and drops the Buffered from the
// shutdown registry. Any pending write bytes have either been flushed by the
// caller or are being abandoned deliberately (Shutdown's best-effort path).
func (b *Buffered) release() {
	if b.rbuf != nil {
		putBuffer(b.rbuf)
		b.rbuf = nil
	}
	b.rpos, b.rlen = 0, 0
	if b.wbuf != nil {
		putBuffer(b.wbuf)
		b.wbuf = nil
	}
	b.wpos = 0
	unregister(b)
}

func (b *Buffered) ensureRead() {
	if b.rbuf == nil {
		b.rbuf = getBuffer(b.rcap)
		b.rpos, b.rlen = 0, 0
		register(b)
	}
}

func (b *Buffered) ensureWrite() {
	if b.wbuf == nil {
		b.wbuf = getBuffer(b.wcap)
		b.wpos = 0
		register(b)
	}
}

// Unread returns the number of buffered bytes not yet delivered to the caller.
func (b *Buffered) Unread() int { return b.rlen - b.rpos }

// Pending returns the number of buffered bytes not yet flushed to the stream.
func (b *Buffered) Pending() int { return b.wpos }

// ReadCapacity returns the configured read buffer capacity.
func (b *Buffered) ReadCapacity() int { return b.rcap }

// WriteCapacity returns the configured write buffer capacity.
func (b *Buffered) WriteCapacity() int { return b.wcap }

// checkItems validates an item-oriented transfer request and returns the
// total byte count. have is the length of the caller's slice.
func checkItems(have, size, count int) (int, error) {
	if size <= 0 {
		return 0, ErrInvalidItemSize
	}
	if count < 0 {
		return 0, ErrInvalidCount
	}
	if count > 0 && size > math.MaxInt/count {
		return 0, ErrSizeOverflow
	}
	total := size * count
	if have < total {
		return 0, io.ErrShortBuffer
	}
	return total, nil
}
