package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/zephyrtronium/calc"
)

// repl evaluates expressions and writes their results.
type repl struct {
	cfg  config
	opts []calc.ParseOption
	out  io.Writer
	log  logrus.FieldLogger
	errc *color.Color
	// interactive enables the banner and prompt.
	interactive bool
}

func newREPL(cfg config, out io.Writer, log logrus.FieldLogger) *repl {
	errc := color.New(color.FgRed)
	switch cfg.Color {
	case "always":
		errc.EnableColor()
	case "never":
		errc.DisableColor()
	}
	return &repl{
		cfg:  cfg,
		opts: []calc.ParseOption{calc.ParsingPreset(cfg.options()...)},
		out:  out,
		log:  log,
		errc: errc,
	}
}

// run reads lines from in until EOF or an exit word, evaluating each
// non-empty line. Lines may be any length. Evaluation errors are written to the
// output and do not stop the loop; the result is only an error from reading in.
func (r *repl) run(in io.Reader) error {
	if r.interactive {
		fmt.Fprintln(r.out, "calc: + - * / ( )")
		fmt.Fprintf(r.out, "type %s to quit\n", strings.Join(r.cfg.Exit, " or "))
	}
	br := bufio.NewReader(in)
	for {
		if r.interactive {
			fmt.Fprint(r.out, r.cfg.Prompt)
		}
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		// A final line without a newline still counts.
		line = strings.TrimSpace(line)
		if r.cfg.isExit(line) {
			r.log.Debug("exit requested")
			return nil
		}
		if line != "" {
			r.eval(line, "result: ")
		}
		if err != nil {
			break
		}
	}
	if r.interactive {
		// Leave the terminal on a fresh line after ^D.
		fmt.Fprintln(r.out)
	}
	return nil
}

// eval evaluates one expression and writes its result with the given prefix,
// or writes the error. It reports whether evaluation succeeded.
func (r *repl) eval(src, prefix string) bool {
	log := r.log.WithField("expr", src)
	if r.cfg.Tokens {
		if toks, err := calc.TokenizeString(src); err == nil {
			fmt.Fprintln(r.out, "tokens:", toks)
		}
	}
	v, err := calc.EvalString(src, r.opts...)
	if err != nil {
		log.WithField("err", err).Debug("evaluation failed")
		r.errc.Fprintf(r.out, "%s: %v\n", category(err), err)
		return false
	}
	log.WithField("result", v).Debug("evaluated")
	fmt.Fprint(r.out, prefix)
	fmt.Fprintf(r.out, r.cfg.Format+"\n", v)
	return true
}

// category names the class of an evaluation error for display.
func category(err error) string {
	switch calc.KindOf(err) {
	case nil:
		return "error"
	case calc.ErrDivisionByZero:
		return "math error"
	default:
		return "syntax error"
	}
}
