// Package posfmt renders templates with positional placeholders into
// fixed-capacity buffers or a line-buffered output stream.
//
// A template is literal text interleaved with placeholders of the form
// {N}, where N is one or more decimal digits addressing the argument list
// by position. An index may be reused or omitted:
//
//	buf := posfmt.NewBuffer(make([]byte, 16))
//	posfmt.Format("{0}-{1}-{0}", buf, posfmt.I(7), posfmt.I(99))
//	buf.String() // "7-99-7"
//
// # Sinks
//
// Rendered bytes flow into a [Sink]. Two sinks are provided:
//
//   - [Buffer] — a caller-owned byte region; writes past capacity are
//     dropped and the result is NUL-terminated
//   - [Stream] — a fixed-size buffer in front of an [io.Writer], flushed
//     when full and at every newline
//
// [Render] drives any caller-defined [Sink] the same way.
//
// The package-level [Stdout] stream backs [Out], [Put], and [Flush]. Call
// [Flush] before the process exits or trailing output without a newline is
// lost:
//
//	posfmt.Out("The numbers are {1}, {2}, and {0}.\n", posfmt.I(1), posfmt.I(2), posfmt.I(3))
//	defer posfmt.Flush()
//
// # Arguments
//
// An [Arg] is a tagged 64-bit value built with [I], [U], [F], or [None].
// Integer kinds render in base 10. Floats and None render nothing.
//
// Argument lists can also be parsed from text with [ParseArg] or loaded from
// YAML and TOML files with [LoadArgs].
//
// # Errors
//
// Rendering never fails. Malformed placeholders ({} or {x}), out-of-range
// indexes, and unsupported kinds substitute nothing, and overflowing a
// [Buffer] truncates silently. Device write failures in a [Stream] are kept
// for [Stream.Err].
//
// Loading arguments returns wrapped sentinel errors:
//
//   - [ErrInvalidArg] — value is not an integer, float, or null
//   - [ErrUnsupportedArgsFile] — unknown argument file extension
//
// # Concurrency
//
// Nothing in this package locks. A [Stream], including [Stdout], must be
// used by one goroutine at a time; wrap it with a mutex at the integration
// boundary if needed. Distinct [Buffer] values are independent.
package posfmt
