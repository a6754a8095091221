package posfmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type argsFile struct {
	Args Args `yaml:"args"`
}

// ParseArg converts text to an argument. Integers become KindInt, or
// KindUint when they only fit unsigned. Decimal is tried before the 0x, 0o,
// and 0b prefixes, so "010" is ten. Other numbers become KindFloat, and
// "", "~", and "null" become KindNone.
func ParseArg(s string) (Arg, error) {
	t := strings.TrimSpace(s)
	switch t {
	case "", "~", "null", "Null", "NULL":
		return None(), nil
	}
	for _, base := range [...]int{10, 0} {
		if v, err := strconv.ParseInt(t, base, 64); err == nil {
			return I(v), nil
		}
		if v, err := strconv.ParseUint(t, base, 64); err == nil {
			return U(v), nil
		}
	}
	if v, err := strconv.ParseFloat(t, 64); err == nil {
		return F(v), nil
	}
	return Arg{}, fmt.Errorf("%w: %q", ErrInvalidArg, s)
}

// ParseArgs converts each string with [ParseArg].
func ParseArgs(ss []string) (Args, error) {
	args := make(Args, 0, len(ss))
	for i, s := range ss {
		a, err := ParseArg(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		args = append(args, a)
	}
	return args, nil
}

// LoadArgs reads an argument list from a YAML (.yaml, .yml) or TOML (.toml)
// file. See [DecodeArgsYAML] and [DecodeArgsTOML] for the document shapes.
func LoadArgs(path string) (Args, error) {
	var decode func(io.Reader) (Args, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decode = DecodeArgsYAML
	case ".toml":
		decode = DecodeArgsTOML
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedArgsFile, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	args, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return args, nil
}
