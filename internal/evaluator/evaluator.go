// Package evaluator implements the RPN stack machine: every input token is
// handled against an operand stack and produces a Result for the caller to
// render.
package evaluator

import (
	"errors"
	"fmt"
	"strings"

	"rpn/internal/formatutil"
	"rpn/internal/limits"
	"rpn/internal/numlit"
	"rpn/internal/semantics"
)

var (
	ErrInsufficientOperands = errors.New("insufficient operands")
	ErrDivisionByZero       = semantics.ErrDivisionByZero
	ErrInvalidInput         = errors.New("invalid input")
	ErrStackFull            = limits.ErrStackFull
)

type Kind int

const (
	NumberPushed Kind = iota
	OperationResult
	StackShown
	Acknowledged
	Help
	Quit
	Error
)

func (k Kind) String() string {
	switch k {
	case NumberPushed:
		return "number"
	case OperationResult:
		return "result"
	case StackShown:
		return "stack"
	case Acknowledged:
		return "ack"
	case Help:
		return "help"
	case Quit:
		return "quit"
	default:
		return "error"
	}
}

// Result reports the outcome of one Handle call.
//
// Value is set for NumberPushed, OperationResult and for the acknowledgement
// of a pop. Stack holds the shown contents for StackShown, and the discarded
// contents when clearing.
type Result struct {
	Kind    Kind
	Command string
	Value   float64
	Stack   []float64
	Text    string
	Err     error
}

type command func(e *Evaluator) Result

var commands = map[string]command{
	"q": (*Evaluator).quit,
	"p": (*Evaluator).pop,
	"c": (*Evaluator).clear,
	"s": (*Evaluator).show,
	"?": (*Evaluator).help,
}

type Evaluator struct {
	stack []float64
	depth *limits.Depth
}

func New() *Evaluator {
	return &Evaluator{}
}

// SetMaxDepth limits the number of values on the stack; 0 removes the limit.
func (e *Evaluator) SetMaxDepth(max int) {
	e.depth = limits.NewDepth(max)
}

// Stack returns a bottom-to-top copy of the operand stack.
func (e *Evaluator) Stack() []float64 {
	out := make([]float64, len(e.stack))
	copy(out, e.stack)
	return out
}

func (e *Evaluator) Len() int {
	return len(e.stack)
}

// Handle classifies token as a number, an operator or a command, in that
// order, and applies it. Errors never leave the stack modified.
func (e *Evaluator) Handle(token string) Result {
	tok := strings.TrimSpace(token)

	if v, err := numlit.Parse(tok); err == nil {
		return e.push(v)
	}
	if semantics.IsBinaryOp(tok) {
		return e.apply(tok)
	}
	if cmd, ok := commands[tok]; ok {
		res := cmd(e)
		res.Command = tok
		return res
	}
	return errorResult(fmt.Errorf("%w %q", ErrInvalidInput, tok))
}

func (e *Evaluator) push(v float64) Result {
	if err := e.depth.Check(len(e.stack), 1); err != nil {
		return errorResult(err)
	}
	e.stack = append(e.stack, v)
	return Result{Kind: NumberPushed, Value: v}
}

func (e *Evaluator) apply(op string) Result {
	n := len(e.stack)
	if n < 2 {
		return errorResult(ErrInsufficientOperands)
	}
	a, b := e.stack[n-2], e.stack[n-1]
	v, err := semantics.BinaryOp(op, a, b)
	if err != nil {
		return errorResult(err)
	}
	// Operands are only consumed once the operation is known to succeed.
	e.stack = append(e.stack[:n-2], v)
	return Result{Kind: OperationResult, Command: op, Value: v}
}

func (e *Evaluator) pop() Result {
	n := len(e.stack)
	if n == 0 {
		return errorResult(ErrInsufficientOperands)
	}
	v := e.stack[n-1]
	e.stack = e.stack[:n-1]
	return Result{Kind: Acknowledged, Value: v}
}

func (e *Evaluator) clear() Result {
	dropped := e.stack
	e.stack = nil
	return Result{Kind: Acknowledged, Stack: dropped}
}

func (e *Evaluator) show() Result {
	return Result{Kind: StackShown, Stack: e.Stack()}
}

func (e *Evaluator) help() Result {
	return Result{Kind: Help, Text: HelpText()}
}

func (e *Evaluator) quit() Result {
	return Result{Kind: Quit, Stack: e.Stack()}
}

func errorResult(err error) Result {
	return Result{Kind: Error, Err: err}
}

var (
	operatorHelp = []formatutil.HelpRow{
		{Key: "+", Text: "add the top two values"},
		{Key: "-", Text: "subtract the top value from the one below it"},
		{Key: "*", Text: "multiply the top two values"},
		{Key: "/", Text: "divide the second value by the top value"},
		{Key: "%", Text: "remainder of dividing the second value by the top value"},
	}
	commandHelp = []formatutil.HelpRow{
		{Key: "q", Text: "quit and print the final stack"},
		{Key: "p", Text: "pop and discard the top value"},
		{Key: "c", Text: "clear the stack"},
		{Key: "s", Text: "show the stack"},
		{Key: "?", Text: "show this help"},
	}
)

// HelpText lists the operators and commands, one per line.
func HelpText() string {
	return formatutil.FormatTable("Operators:", operatorHelp) +
		formatutil.FormatTable("Commands:", commandHelp)
}
