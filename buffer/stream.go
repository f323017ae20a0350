package buffer

import (
	"io"

	"github.com/ugparu/gobuf"
)

type stream struct {
	writer gobuf.Writer[byte]
}

// Stream adapts a byte writer to io.Writer so it can be filled through fmt,
// encoding and similar APIs. The adapter copies into the writable view and
// advances by the copied count; errors from the writer pass through.
func Stream(w gobuf.Writer[byte]) io.Writer {
	return &stream{writer: w}
}

func (s *stream) Write(p []byte) (int, error) {
	dst, err := s.writer.Writable(len(p))
	if err != nil {
		return 0, err
	}
	n := copy(dst, p)
	if err = s.writer.Advance(n); err != nil {
		return 0, err
	}
	return n, nil
}
