package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/tliron/commonlog"

	"rpn/internal/evaluator"
	"rpn/internal/formatutil"
	"rpn/internal/runtimeio"
)

const DefaultPrompt = "> "

type Options struct {
	Prompt string
	// Interactive enables the prompt and the newline written at end of input.
	Interactive bool
	ShowHelp    bool
	Color       bool
	MaxDepth    int
}

// LineSource supplies one line of input per call and io.EOF at the end.
type LineSource interface {
	ReadLine() (string, error)
}

func Start(in io.Reader, out io.Writer, opts Options) error {
	return Run(runtimeio.NewLineReader(in), out, opts)
}

// Run evaluates lines from src until a quit command or the end of input, then
// writes the final stack. Only a failing src yields an error; the final stack
// is written in that case too.
func Run(src LineSource, out io.Writer, opts Options) error {
	log := commonlog.GetLogger("rpn.repl")
	ev := evaluator.New()
	ev.SetMaxDepth(opts.MaxDepth)
	r := newRenderer(out, opts.Color)

	if opts.ShowHelp {
		fmt.Fprint(out, evaluator.HelpText())
	}

	for {
		if opts.Interactive {
			fmt.Fprint(out, opts.Prompt)
		}

		line, err := src.ReadLine()
		if err != nil {
			if opts.Interactive {
				fmt.Fprint(out, "\n")
			}
			fmt.Fprintln(out, r.render(evaluator.Result{Kind: evaluator.Quit, Stack: ev.Stack()}))
			if errors.Is(err, io.EOF) {
				log.Debugf("end of input")
				return nil
			}
			log.Errorf("read failed: %s", err)
			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		res := ev.Handle(line)
		if res.Kind == evaluator.Error {
			log.Debugf("%q: %s", line, res.Err)
		} else {
			log.Debugf("%q: %s, depth %d", line, res.Kind, ev.Len())
		}
		fmt.Fprintln(out, r.render(res))
		if res.Kind == evaluator.Quit {
			return nil
		}
	}
}

type renderer struct {
	term *termenv.Output
}

func newRenderer(out io.Writer, color bool) *renderer {
	if !color {
		return &renderer{}
	}
	return &renderer{term: termenv.NewOutput(out, termenv.WithProfile(termenv.ANSI))}
}

func (r *renderer) render(res evaluator.Result) string {
	switch res.Kind {
	case evaluator.NumberPushed:
		return "Number: " + formatutil.FormatNumber(res.Value)
	case evaluator.OperationResult:
		return "Result: " + formatutil.FormatNumber(res.Value)
	case evaluator.StackShown:
		return "Stack: " + formatutil.FormatStack(res.Stack)
	case evaluator.Acknowledged:
		if res.Command == "c" {
			return "Cleared: " + formatutil.FormatStack(res.Stack)
		}
		return "Popped: " + formatutil.FormatNumber(res.Value)
	case evaluator.Help:
		return strings.TrimRight(res.Text, "\n")
	case evaluator.Quit:
		return "Final stack: " + formatutil.FormatStack(res.Stack)
	default:
		return r.errorLabel() + " " + res.Err.Error()
	}
}

func (r *renderer) errorLabel() string {
	if r.term == nil {
		return "Error:"
	}
	return r.term.String("Error:").Foreground(r.term.Color("1")).Bold().String()
}
