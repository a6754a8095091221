package posfmt

import "math"

var newline = []byte{'\n'}

// Render renders tmpl with args into s. Literal text is copied unchanged and
// each valid, in-range {N} is replaced by the N-th argument. Unlike
// [Buffer.Format] it adds no terminator, and unlike [Stream.Format] it gives
// newlines no special treatment.
func Render(s Sink, tmpl string, args ...Arg) {
	render(s, tmpl, args, nil)
}

// render walks tmpl once, sending literal runs and substituted arguments to
// s. When flush is non-nil, literal runs also break at '\n' and every
// newline is followed by a call to flush.
func render(s Sink, tmpl string, args []Arg, flush func()) {
	i := 0
	for i < len(tmpl) {
		start := i
		for i < len(tmpl) && tmpl[i] != '{' && (flush == nil || tmpl[i] != '\n') {
			i++
		}
		if i > start {
			putString(s, tmpl[start:i])
		}
		if i == len(tmpl) {
			return
		}
		if tmpl[i] == '{' {
			idx, next, ok := parsePlaceholder(tmpl, i)
			if ok && idx < len(args) {
				putArg(s, args[idx])
			}
			i = next
			continue
		}
		s.Put(newline)
		flush()
		i++
	}
}

// parsePlaceholder reads the placeholder opening at tmpl[open]. It returns
// the index, the offset just past the closing brace (or len(tmpl) when the
// brace is missing), and whether the index text was valid. Rejected text is
// consumed all the same.
func parsePlaceholder(tmpl string, open int) (idx, next int, ok bool) {
	start := open + 1
	end := start
	for end < len(tmpl) && tmpl[end] != '}' {
		end++
	}
	next = end
	if next < len(tmpl) {
		next++
	}
	idx, ok = parseIndex(tmpl[start:end])
	return idx, next, ok
}

// parseIndex decodes one or more ASCII digits. Values too large for int
// saturate at math.MaxInt so they fail any bounds check.
func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		d := int(c - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
			continue
		}
		n = n*10 + d
	}
	return n, true
}

// stringSink is implemented by sinks that can take a string without
// converting it to a byte slice first.
type stringSink interface {
	PutString(s string) int
}

func putString(s Sink, str string) {
	if ss, ok := s.(stringSink); ok {
		ss.PutString(str)
		return
	}
	s.Put([]byte(str))
}
