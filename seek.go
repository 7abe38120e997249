package bufrw

import "io"

// Seek implements io.Seeker, reconciling the caller's virtual position with
// whatever either buffer holds before delegating to the stream.
//
// Pending writes are flushed first; a failed flush aborts the seek with the
// pending bytes still buffered. A seek relative to the current position is
// adjusted backwards by the number of prefetched-but-unread bytes, since the
// underlying stream has already advanced past them. Buffered read data is
// invalidated by any seek.
func (b *Buffered) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart, io.SeekCurrent, io.SeekEnd:
	default:
		return 0, ErrInvalidWhence
	}

	if _, err := b.Flush(); err != nil {
		return 0, err
	}

	if whence == io.SeekCurrent && b.rbuf != nil {
		offset -= int64(b.rlen - b.rpos)
	}
	b.rpos, b.rlen = 0, 0

	return b.s.Seek(offset, whence)
}

// Tell returns the caller's virtual stream position. The underlying position
// runs ahead of the caller by the number of prefetched-but-unread bytes, and
// behind by the number of unflushed write bytes; Tell corrects for both.
func (b *Buffered) Tell() (int64, error) {
	pos, err := b.s.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1, err
	}

	if b.wbuf != nil && b.wpos > 0 {
		pos += int64(b.wpos)
	} else if b.rbuf != nil {
		pos -= int64(b.rlen - b.rpos)
	}
	return pos, nil
}
