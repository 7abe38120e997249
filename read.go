package bufrw

import "io"

// Read implements io.Reader. Bytes are served from the read buffer; whenever
// the buffer is empty it is refilled with a single underlying read of up to
// its capacity. At most one underlying read happens per call.
func (b *Buffered) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b.ensureRead()

	if b.rpos >= b.rlen {
		// A reader may legally return data together with io.EOF; serve the
		// data now, the next refill reports the EOF on its own.
		n, err := b.s.Read(b.rbuf)
		b.rpos, b.rlen = 0, n
		if n == 0 {
			if err != nil {
				return 0, err
			}
			return 0, ErrNoProgress
		}
	}

	n := copy(p, b.rbuf[b.rpos:b.rlen])
	b.rpos += n
	return n, nil
}

// ReadItems reads up to count items of size bytes each into dst, refilling
// the read buffer against the stream as needed. It returns the number of
// complete items transferred; a count lower than requested with a nil error
// means the stream was exhausted mid-request. A trailing partial item is
// excluded from the count, though its bytes are delivered to dst.
func (b *Buffered) ReadItems(dst []byte, size, count int) (int, error) {
	total, err := checkItems(len(dst), size, count)
	if err != nil {
		return 0, err
	}

	read := 0
	for read < total {
		n, err := b.Read(dst[read:total])
		read += n
		if err == io.EOF {
			break
		}
		if err != nil {
			return read / size, err
		}
	}
	return read / size, nil
}

// ResizeRead changes the read buffer capacity, taking effect on the next
// refill. It refuses to drop data: while unread bytes remain the resize
// fails with ErrPendingReadData and the caller must consume or Seek past
// them first.
func (b *Buffered) ResizeRead(size int) error {
	if size <= 0 {
		return ErrInvalidCapacity
	}
	if b.rpos < b.rlen {
		return ErrPendingReadData
	}
	if b.rbuf != nil {
		putBuffer(b.rbuf)
		b.rbuf = nil // reallocated lazily at the new capacity
	}
	b.rpos, b.rlen = 0, 0
	b.rcap = size
	return nil
}
