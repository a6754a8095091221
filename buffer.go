package posfmt

import "io"

// Buffer is a [Sink] over a caller-owned byte region. Bytes past the end of
// the region are dropped. The used count only grows until [Buffer.Reset].
type Buffer struct {
	data []byte
	used int
}

// NewBuffer returns a Buffer writing into data. The caller keeps ownership
// of data and may read it after each render.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Put copies as much of p as fits and returns the number of bytes copied.
func (b *Buffer) Put(p []byte) int {
	n := copy(b.data[b.used:], p)
	b.used += n
	return n
}

// PutString is like [Buffer.Put] for a string.
func (b *Buffer) PutString(s string) int {
	n := copy(b.data[b.used:], s)
	b.used += n
	return n
}

// Write implements [io.Writer]. It returns [io.ErrShortWrite] when p did not
// fit entirely.
func (b *Buffer) Write(p []byte) (int, error) {
	n := b.Put(p)
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Format renders tmpl with args into b and NUL-terminates the result.
//
// The terminator goes at min(used, size-1). If the rendered text filled the
// buffer, the terminator replaces the last byte and the used count shrinks by
// one, so reserve an extra byte when the whole text matters.
func (b *Buffer) Format(tmpl string, args ...Arg) {
	render(b, tmpl, args, nil)
	b.terminate()
}

func (b *Buffer) terminate() {
	if len(b.data) == 0 {
		return
	}
	if b.used == len(b.data) {
		b.used--
	}
	b.data[b.used] = 0
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int { return b.used }

// Cap returns the size of the underlying region.
func (b *Buffer) Cap() int { return len(b.data) }

// Bytes returns the written bytes, without the terminator. The slice aliases
// the caller's region.
func (b *Buffer) Bytes() []byte { return b.data[:b.used] }

// String returns the written bytes as a string.
func (b *Buffer) String() string { return string(b.data[:b.used]) }

// Reset sets the used count back to zero. The region is not cleared.
func (b *Buffer) Reset() { b.used = 0 }

// Format renders tmpl with args into buf. See [Buffer.Format].
func Format(tmpl string, buf *Buffer, args ...Arg) {
	buf.Format(tmpl, args...)
}
