package posfmt

// Sink accepts rendered bytes.
//
// Put takes as many bytes of p as the sink can hold and returns how many it
// took. A bounded sink drops the remainder. A flushing sink makes room and
// takes everything. Put must not modify p or keep it after returning.
type Sink interface {
	Put(p []byte) int
}
