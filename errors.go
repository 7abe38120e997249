package bufrw

import "errors"

var (
	// ErrNilStream indicates that New/NewSize/Reset was called with a nil Stream.
	ErrNilStream = errors.New("bufrw: called with a nil Stream")

	// ErrInvalidCapacity indicates a buffer capacity that is zero or negative.
	ErrInvalidCapacity = errors.New("bufrw: buffer capacity must be positive")

	// ErrInvalidItemSize indicates an item size that is zero or negative.
	ErrInvalidItemSize = errors.New("bufrw: item size must be positive")

	// ErrInvalidCount indicates a negative item count.
	ErrInvalidCount = errors.New("bufrw: item count must be non-negative")

	// ErrSizeOverflow indicates that item size times item count does not fit in an int.
	ErrSizeOverflow = errors.New("bufrw: item size times item count overflows")

	// ErrPendingReadData indicates a read-side resize while the buffer still
	// holds unread bytes. Consume them or Seek first.
	ErrPendingReadData = errors.New("bufrw: resize would drop unread buffered data")

	// ErrShortFlush indicates that the underlying stream accepted fewer bytes
	// than the write buffer held. The unwritten remainder stays buffered.
	ErrShortFlush = errors.New("bufrw: underlying write flushed fewer bytes than pending")

	// ErrInvalidWhence indicates that an invalid 'whence' parameter was provided to a Seek operation.
	ErrInvalidWhence = errors.New("bufrw: unsupported whence value")

	// ErrInvalidSeek indicates a seek was attempted to an invalid position.
	ErrInvalidSeek = errors.New("bufrw: seek to an invalid position")

	// ErrNoProgress indicates that the underlying stream returned neither
	// bytes nor an error from Read, a contract violation this layer refuses
	// to loop on.
	ErrNoProgress = errors.New("bufrw: underlying stream returned no bytes and no error")
)
