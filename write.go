package bufrw

// Write implements io.Writer. Data accumulates in the write buffer; each
// time the buffer fills, its entire contents go to the stream with a single
// underlying write. The returned count covers bytes accepted into the
// buffer, all of which are either flushed or still pending — a short flush
// stops the transfer without discarding anything.
func (b *Buffered) Write(p []byte) (int, error) {
	b.ensureWrite()

	written := 0
	for written < len(p) {
		n := copy(b.wbuf[b.wpos:], p[written:])
		b.wpos += n
		written += n

		if b.wpos == len(b.wbuf) {
			if _, err := b.Flush(); err != nil {
				return written, err
			}
		}
	}
	return written, nil
}

// WriteItems writes count items of size bytes each from src through the
// write buffer. It returns the number of complete items accepted; on a short
// flush the count covers the items accounted for before the failure.
func (b *Buffered) WriteItems(src []byte, size, count int) (int, error) {
	total, err := checkItems(len(src), size, count)
	if err != nil {
		return 0, err
	}
	n, werr := b.Write(src[:total])
	return n / size, werr
}

// Flush writes the buffered data to the stream with one underlying write and
// returns the number of bytes flushed. On a short write the unwritten tail
// is moved to the front of the buffer and ErrShortFlush reported, so a later
// Flush retries exactly the remainder. Flushing an empty buffer is a no-op.
func (b *Buffered) Flush() (int, error) {
	if b.wbuf == nil || b.wpos == 0 {
		return 0, nil
	}

	n, err := b.s.Write(b.wbuf[:b.wpos])
	if n < 0 {
		n = 0
	}
	if n < b.wpos {
		copy(b.wbuf, b.wbuf[n:b.wpos])
		b.wpos -= n
		if err == nil {
			err = ErrShortFlush
		}
		return n, err
	}
	b.wpos = 0
	return n, err
}

// ResizeWrite changes the write buffer capacity, taking effect on the next
// write. Pending bytes are flushed first so the resize never drops data; a
// failed flush aborts the resize.
func (b *Buffered) ResizeWrite(size int) error {
	if size <= 0 {
		return ErrInvalidCapacity
	}
	if _, err := b.Flush(); err != nil {
		return err
	}
	if b.wbuf != nil {
		putBuffer(b.wbuf)
		b.wbuf = nil // reallocated lazily at the new capacity
	}
	b.wcap = size
	return nil
}
