package posfmt

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// DecodeArgsTOML reads an argument list from the "args" array of a TOML
// document:
//
//	args = [7, 99, 2.5]
//
// TOML has no null, so every element is an integer or a float.
func DecodeArgsTOML(r io.Reader) (Args, error) {
	var doc struct {
		Args []any `toml:"args"`
	}
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	args := make(Args, 0, len(doc.Args))
	for i, v := range doc.Args {
		switch v := v.(type) {
		case int64:
			args = append(args, I(v))
		case float64:
			args = append(args, F(v))
		default:
			return nil, fmt.Errorf("%w: args[%d] is %T", ErrInvalidArg, i, v)
		}
	}
	return args, nil
}
