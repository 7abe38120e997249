package bufrw

import "github.com/puzpuzpuz/xsync/v4"

// streams tracks every Buffered currently holding a live buffer, so Shutdown
// can sweep them all at process teardown. Entries are added on first buffer
// allocation and removed when the buffers are released.
var streams = xsync.NewMap[*Buffered, struct{}]()

func register(b *Buffered)   { streams.Store(b, struct{}{}) }
func unregister(b *Buffered) { streams.Delete(b) }

// Shutdown flushes and releases the buffers of every tracked Buffered.
// Flushing is best effort: buffers are released even when the underlying
// write fails, since there is nowhere left to retry at teardown. Shutdown is
// idempotent and safe to call with no streams open; afterwards every
// Buffered remains usable and reallocates lazily.
func Shutdown() {
	streams.Range(func(b *Buffered, _ struct{}) bool {
		_, _ = b.Flush()
		b.release()
		return true
	})
}
