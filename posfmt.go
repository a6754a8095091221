package posfmt

import (
	"errors"
	"math"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidArg          = errors.New("invalid argument")
	ErrUnsupportedArgsFile = errors.New("unsupported args file")
)

// Kind tags the payload of an [Arg].
type Kind uint8

const (
	KindNone Kind = iota
	KindUint
	KindInt
	KindFloat
)

var kindNames = [...]string{
	KindNone:  "none",
	KindUint:  "uint",
	KindInt:   "int",
	KindFloat: "float",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Arg is one formattable value. The zero value is a None argument.
type Arg struct {
	kind Kind
	bits uint64
}

// I returns a signed integer argument.
func I(v int64) Arg { return Arg{kind: KindInt, bits: uint64(v)} }

// U returns an unsigned integer argument.
func U(v uint64) Arg { return Arg{kind: KindUint, bits: v} }

// F returns a float argument. Floats are carried but not rendered.
func F(v float64) Arg { return Arg{kind: KindFloat, bits: math.Float64bits(v)} }

// None returns an argument that renders nothing.
func None() Arg { return Arg{} }

// Kind reports the argument's tag.
func (a Arg) Kind() Kind { return a.kind }

// Int returns the signed payload. Only meaningful for KindInt.
func (a Arg) Int() int64 { return int64(a.bits) }

// Uint returns the unsigned payload. Only meaningful for KindUint.
func (a Arg) Uint() uint64 { return a.bits }

// Float returns the float payload. Only meaningful for KindFloat.
func (a Arg) Float() float64 { return math.Float64frombits(a.bits) }

// Args is an ordered argument list, indexed from 0 by placeholders.
type Args []Arg
