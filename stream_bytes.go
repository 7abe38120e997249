package bufrw

import "io"

// BytesStream is an in-memory Stream backed by a growable byte slice. It
// behaves like a file: reads and writes share one cursor, a write past the
// end grows the slice, and writing after seeking beyond the end zero-fills
// the gap. The zero value is an empty stream ready for use.
type BytesStream struct {
	B []byte // contents
	N int    // cursor
}

var _ Stream = (*BytesStream)(nil)

// NewBytesStream creates a BytesStream positioned at the start of b.
func NewBytesStream(b []byte) *BytesStream {
	return &BytesStream{B: b}
}

// Read implements the [io.Reader] interface.
func (s *BytesStream) Read(p []byte) (int, error) {
	if s.N >= len(s.B) {
		return 0, io.EOF
	}
	n := copy(p, s.B[s.N:])
	s.N += n
	return n, nil
}

// Write implements the [io.Writer] interface, growing the stream as needed.
func (s *BytesStream) Write(p []byte) (int, error) {
	if need := s.N + len(p); need > len(s.B) {
		if need > cap(s.B) {
			grown := make([]byte, need)
			copy(grown, s.B)
			s.B = grown
		} else {
			old := len(s.B)
			s.B = s.B[:need]
			if old < s.N {
				clear(s.B[old:s.N]) // gap left by a seek past the end
			}
		}
	}
	n := copy(s.B[s.N:], p)
	s.N += n
	return n, nil
}

// Seek implements the [io.Seeker] interface.
func (s *BytesStream) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(s.N) + offset
	case io.SeekEnd:
		abs = int64(len(s.B)) + offset
	default:
		return 0, ErrInvalidWhence
	}

	if abs < 0 {
		return 0, ErrInvalidSeek
	}
	s.N = int(abs)
	return abs, nil
}

// Bytes returns the stream's full contents.
func (s *BytesStream) Bytes() []byte { return s.B }

// Size returns the length of the stream's contents.
func (s *BytesStream) Size() int { return len(s.B) }

// Reset truncates the stream to empty and rewinds the cursor,
// allowing the underlying slice to be reused.
func (s *BytesStream) Reset() {
	s.B = s.B[:0]
	s.N = 0
}
