// Package cli implements the posfmt command-line interface.
//
// The root command renders a template given on the command line against
// positional arguments taken from the remaining command-line words and,
// optionally, a YAML or TOML argument file. Output goes through a
// line-buffered stream that is flushed before the command returns.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bjaus/posfmt"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	errOut       io.Writer
	streamLogger *zap.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		errOut: w,
	}
	c.SetLogLevel(level)
	return c
}

// SetLogLevel updates the logger's level. At debug level stream flushes are
// logged as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level > log.DebugLevel {
		c.streamLogger = zap.NewNop()
		return
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	c.streamLogger = zap.New(zapcore.NewCore(enc, zapcore.AddSync(c.errOut), zapcore.DebugLevel))
}

type renderOptions struct {
	buffer   int
	capacity int
	argsFile string
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	var opts renderOptions
	root := &cobra.Command{
		Use:   "posfmt TEMPLATE [ARG...]",
		Short: "Render a template with positional placeholders",
		Long: `Render TEMPLATE, replacing each {N} with the N-th argument (0-based).

Arguments come from the optional --args-file first, then from the command
line. Integers render in base 10; floats and nulls render nothing.`,
		Example: `  posfmt 'The numbers are {1}, {2}, and {0}.' 1 2 3
  posfmt --buffer 15 'The number is {0}.' 42
  posfmt --args-file args.yaml '{0}-{1}-{0}'
  posfmt '{0} below zero' -- -5`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.render(cmd.OutOrStdout(), args[0], args[1:], opts)
		},
	}

	root.Flags().IntVarP(&opts.buffer, "buffer", "b", 0, "render into a fixed buffer of this many bytes first (0 renders directly)")
	root.Flags().IntVar(&opts.capacity, "capacity", posfmt.DefaultStreamCapacity, "output stream buffer size in bytes")
	root.Flags().StringVarP(&opts.argsFile, "args-file", "f", "", "YAML or TOML file with leading arguments")

	return root
}

func (c *CLI) render(w io.Writer, tmpl string, words []string, opts renderOptions) error {
	var args posfmt.Args
	if opts.argsFile != "" {
		fileArgs, err := posfmt.LoadArgs(opts.argsFile)
		if err != nil {
			return err
		}
		c.Logger.Debug("loaded arguments", "file", opts.argsFile, "count", len(fileArgs))
		args = append(args, fileArgs...)
	}
	cmdArgs, err := posfmt.ParseArgs(words)
	if err != nil {
		return err
	}
	args = append(args, cmdArgs...)

	stream := posfmt.NewStream(w,
		posfmt.WithCapacity(opts.capacity),
		posfmt.WithLogger(c.streamLogger),
	)
	if opts.buffer > 0 {
		buf := posfmt.NewBuffer(make([]byte, opts.buffer))
		buf.Format(tmpl, args...)
		c.Logger.Debug("rendered into buffer", "used", buf.Len(), "size", buf.Cap())
		stream.Put(buf.Bytes())
	} else {
		stream.Format(tmpl, args...)
	}
	stream.Flush()
	return stream.Err()
}
