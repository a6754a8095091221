package posfmt

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements [yaml.Unmarshaler]. Integer scalars become
// KindInt (or KindUint past the int64 range), floats become KindFloat, and
// null becomes KindNone. Anything else is [ErrInvalidArg].
func (a *Arg) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrInvalidArg, node.Line)
	}
	switch node.ShortTag() {
	case "!!null":
		*a = None()
		return nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err == nil {
			*a = I(i)
			return nil
		}
		var u uint64
		if err := node.Decode(&u); err != nil {
			return fmt.Errorf("%w: line %d: %q", ErrInvalidArg, node.Line, node.Value)
		}
		*a = U(u)
		return nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("%w: line %d: %q", ErrInvalidArg, node.Line, node.Value)
		}
		*a = F(f)
		return nil
	default:
		return fmt.Errorf("%w: line %d: %q is not a number", ErrInvalidArg, node.Line, node.Value)
	}
}

// MarshalYAML implements [yaml.Marshaler].
func (a Arg) MarshalYAML() (any, error) {
	switch a.kind {
	case KindInt:
		return a.Int(), nil
	case KindUint:
		return a.Uint(), nil
	case KindFloat:
		return a.Float(), nil
	default:
		return nil, nil
	}
}

// UnmarshalYAML implements [yaml.Unmarshaler] for a sequence of scalars.
// Each item goes through [Arg.UnmarshalYAML] directly, so null items stay in
// place as KindNone instead of being skipped by the decoder.
func (args *Args) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: line %d: expected a sequence", ErrInvalidArg, node.Line)
	}
	out := make(Args, len(node.Content))
	for i, item := range node.Content {
		if err := out[i].UnmarshalYAML(item); err != nil {
			return err
		}
	}
	*args = out
	return nil
}

// DecodeArgsYAML reads an argument list from a YAML document holding either
// a bare sequence or a mapping with an "args" sequence:
//
//	args: [7, 99, ~, 2.5]
//
// An empty document, or a mapping without "args", yields an empty list.
func DecodeArgsYAML(r io.Reader) (Args, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Args{}, nil
		}
		return nil, err
	}
	if len(doc.Content) == 0 {
		return Args{}, nil
	}
	root := doc.Content[0]
	var args Args
	if root.Kind == yaml.SequenceNode {
		if err := args.UnmarshalYAML(root); err != nil {
			return nil, err
		}
		return args, nil
	}
	var file argsFile
	if err := root.Decode(&file); err != nil {
		return nil, err
	}
	if file.Args == nil {
		return Args{}, nil
	}
	return file.Args, nil
}
