package bufrw

import "sync"

// DefaultBufferSize is the buffer capacity used by New. A 4KB default avoids
// reallocation for common transfer sizes.
const DefaultBufferSize = 4096

// bufPool recycles default-sized buffers between streams. This reduces GC
// pressure when many short-lived Buffered values come and go. We pool a
// pointer to the slice to avoid an allocation on Put.
var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, DefaultBufferSize)
		return &b
	},
}

func getBuffer(size int) []byte {
	if size == DefaultBufferSize {
		return *bufPool.Get().(*[]byte)
	}
	return make([]byte, size)
}

// putBuffer returns a buffer to the pool. Only buffers of exactly
// DefaultBufferSize are kept to avoid size fragmentation; anything else is
// left to the GC.
func putBuffer(b []byte) {
	if len(b) == DefaultBufferSize {
		bufPool.Put(&b)
	}
}
