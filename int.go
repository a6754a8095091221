package posfmt

const digitTable = "0123456789abcdefxp"

// scratchSize fits the widest 64-bit value: 64 binary digits and a sign.
const scratchSize = 64 + 1

// RenderUint writes v in the given base so that the digits end exactly at
// len(scratch) and returns the offset of the first digit. Zero renders as
// "0". Digits that do not fit are dropped from the most significant end.
// It panics if base is outside [2, 16].
func RenderUint(scratch []byte, v uint64, base int) int {
	if base < 2 || base > 16 {
		panic("posfmt: RenderUint base out of range")
	}
	i := len(scratch)
	if v == 0 {
		if i > 0 {
			i--
			scratch[i] = '0'
		}
		return i
	}
	b := uint64(base)
	for v != 0 && i > 0 {
		i--
		scratch[i] = digitTable[v%b]
		v /= b
	}
	return i
}

// RenderInt is like [RenderUint] for signed values. Negative values render
// as '-' followed by the magnitude.
func RenderInt(scratch []byte, v int64, base int) int {
	if v >= 0 {
		return RenderUint(scratch, uint64(v), base)
	}
	i := RenderUint(scratch, -uint64(v), base)
	if i > 0 {
		i--
		scratch[i] = '-'
	}
	return i
}

// putArg renders a in base 10 into s. Kinds without a textual form are
// skipped.
func putArg(s Sink, a Arg) {
	var scratch [scratchSize]byte
	var i int
	switch a.kind {
	case KindInt:
		i = RenderInt(scratch[:], a.Int(), 10)
	case KindUint:
		i = RenderUint(scratch[:], a.Uint(), 10)
	default:
		return
	}
	s.Put(scratch[i:])
}
