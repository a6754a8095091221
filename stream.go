package posfmt

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// DefaultStreamCapacity is the buffer size of a [Stream] created without
// [WithCapacity].
const DefaultStreamCapacity = 1024

// StreamOption configures a [Stream].
type StreamOption func(*streamConfig)

type streamConfig struct {
	capacity int
	logger   *zap.Logger
}

// WithCapacity sets the stream buffer size. Values below 1 are ignored.
// Default: DefaultStreamCapacity.
func WithCapacity(n int) StreamOption {
	return func(c *streamConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithLogger sets the logger used for flush diagnostics.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) StreamOption {
	return func(c *streamConfig) {
		c.logger = logger
	}
}

// Stream is a line-buffered [Sink] in front of an output device. Bytes are
// held in a fixed buffer and written to the device when the buffer fills,
// when a run of bytes ends in a newline, or on [Stream.Flush].
//
// A Stream is not safe for concurrent use.
type Stream struct {
	dev    io.Writer
	buf    []byte
	used   int
	err    error
	logger *zap.Logger
}

// NewStream returns a Stream that flushes to w.
func NewStream(w io.Writer, opts ...StreamOption) *Stream {
	cfg := streamConfig{capacity: DefaultStreamCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stream{
		dev:    w,
		buf:    make([]byte, cfg.capacity),
		logger: logger,
	}
}

// Put buffers all of p, flushing whenever the buffer fills or the run ends
// in a newline. It always returns len(p).
func (s *Stream) Put(p []byte) int {
	total := len(p)
	for len(p) > 0 {
		n := copy(s.buf[s.used:], p)
		s.used += n
		if s.used == len(s.buf) || p[len(p)-1] == '\n' {
			s.Flush()
		}
		p = p[n:]
	}
	return total
}

// PutString is like [Stream.Put] for a string.
func (s *Stream) PutString(str string) int {
	total := len(str)
	for len(str) > 0 {
		n := copy(s.buf[s.used:], str)
		s.used += n
		if s.used == len(s.buf) || str[len(str)-1] == '\n' {
			s.Flush()
		}
		str = str[n:]
	}
	return total
}

// Write implements [io.Writer]. The returned error is the first device
// error seen by the stream, if any.
func (s *Stream) Write(p []byte) (int, error) {
	return s.Put(p), s.err
}

// Flush writes all buffered bytes to the device. It does nothing when the
// buffer is empty. The buffer is emptied even if the device fails.
func (s *Stream) Flush() {
	if s.used == 0 {
		return
	}
	n, err := s.dev.Write(s.buf[:s.used])
	if err == nil && n < s.used {
		err = io.ErrShortWrite
	}
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		s.logger.Warn("stream device write failed",
			zap.Int("buffered", s.used),
			zap.Int("written", n),
			zap.Error(err),
		)
	} else {
		s.logger.Debug("stream flushed", zap.Int("bytes", n))
	}
	s.used = 0
}

// Format renders tmpl with args into s. Every newline in the template is
// followed by a flush, so each completed line reaches the device.
func (s *Stream) Format(tmpl string, args ...Arg) {
	render(s, tmpl, args, s.Flush)
}

// Buffered returns the number of bytes waiting for a flush.
func (s *Stream) Buffered() int { return s.used }

// Cap returns the stream buffer size.
func (s *Stream) Cap() int { return len(s.buf) }

// Err returns the first device write error since the stream was created or
// since the last [Stream.ResetErr].
func (s *Stream) Err() error { return s.err }

// ResetErr clears the recorded device error.
func (s *Stream) ResetErr() { s.err = nil }

// stdoutDevice resolves os.Stdout on every write so a replaced os.Stdout is
// honoured.
type stdoutDevice struct{}

func (stdoutDevice) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

// Stdout is the process-wide stream over standard output used by [Out],
// [Put], and [Flush].
var Stdout = NewStream(stdoutDevice{})

// Out renders tmpl with args to [Stdout].
func Out(tmpl string, args ...Arg) {
	Stdout.Format(tmpl, args...)
}

// Put writes p to [Stdout] without template processing.
func Put(p []byte) {
	Stdout.Put(p)
}

// Flush writes any bytes buffered in [Stdout].
func Flush() {
	Stdout.Flush()
}
