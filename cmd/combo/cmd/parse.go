package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zostay/combo/arith"
	"github.com/zostay/combo/match"
	"github.com/zostay/combo/parser"
)

type parseOptions struct {
	rule    string
	char    string
	trace   bool
	noColor bool
}

func newParseCmd() *cobra.Command {
	opts := &parseOptions{}

	c := &cobra.Command{
		Use:   "parse [line ...]",
		Short: "Parse each argument, or each line of standard input",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, opts, args)
		},
	}

	c.Flags().StringVarP(&opts.rule, "rule", "r", "expr", "rule to parse with: expr, term, factor, digits, letters")
	c.Flags().StringVarP(&opts.char, "char", "c", "", "match this single character instead of a rule")
	c.Flags().BoolVarP(&opts.trace, "trace", "t", false, "log every rule attempt to standard error")
	c.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	return c
}

func runParse(cmd *cobra.Command, opts *parseOptions, args []string) error {
	var tr parser.Tracer
	if opts.trace {
		logger := newTraceLogger(cmd.ErrOrStderr())
		defer func() { _ = logger.Sync() }()
		tr = logger.Debug
	}

	m, err := selectMatcher(opts, tr)
	if err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout(), opts.noColor)

	if len(args) > 0 {
		for _, line := range args {
			p.print(m.Match(line))
		}
		return nil
	}

	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		p.print(m.Match(sc.Text()))
	}

	return errors.Wrap(sc.Err(), "reading input")
}

// selectMatcher picks the matcher named by the options.
func selectMatcher(opts *parseOptions, tr parser.Tracer) (parser.Matcher, error) {
	if opts.char != "" {
		if len(opts.char) != 1 {
			return nil, errors.Errorf("--char takes a single character, got %q", opts.char)
		}
		return parser.Trace("char", match.Char(opts.char[0]), tr), nil
	}

	switch opts.rule {
	case "digits":
		return parser.Trace("digits", match.Digits, tr), nil
	case "letters":
		return parser.Trace("letters", match.Letters, tr), nil
	}

	if m, ok := arith.New(arith.WithTracer(tr)).Rule(opts.rule); ok {
		return m, nil
	}

	return nil, errors.Errorf("unknown rule %q", opts.rule)
}

func newTraceLogger(w io.Writer) *zap.SugaredLogger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core).Sugar()
}

type printer struct {
	w        io.Writer
	consumed *color.Color
	rest     *color.Color
}

func newPrinter(w io.Writer, noColor bool) *printer {
	p := &printer{
		w:        w,
		consumed: color.New(color.FgGreen),
		rest:     color.New(color.FgRed),
	}

	if noColor {
		p.consumed.DisableColor()
		p.rest.DisableColor()
	}

	return p
}

func (p *printer) print(r parser.Result) {
	fmt.Fprintf(p.w, "consumed: %s\nunconsumed: %s\n",
		p.consumed.Sprint(r.Consumed()),
		p.rest.Sprint(r.Remaining),
	)
}
