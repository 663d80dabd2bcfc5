package infix

import (
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger that receives a debug event for every
// reduction and every failed evaluation.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// Evaluator evaluates infix expressions. It holds no per-call state and may be
// shared between goroutines.
type Evaluator struct {
	logger zerolog.Logger
}

func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEvaluator = New()

// Evaluate evaluates expr with a silent Evaluator.
func Evaluate(expr string) (int64, error) {
	return defaultEvaluator.Evaluate(expr)
}

func (e *Evaluator) Evaluate(expr string) (int64, error) {
	return e.EvaluateReader(strings.NewReader(expr))
}

// EvaluateReader reads the whole expression from r and evaluates it. The
// input is tokenized completely before any reduction, so lexical errors are
// reported ahead of arithmetic and structural ones.
func (e *Evaluator) EvaluateReader(r io.Reader) (int64, error) {
	v, err := e.eval(NewLexer(r))
	if err != nil {
		ev := e.logger.Debug().Err(err)
		var ie *Error
		if errors.As(err, &ie) {
			ev = ev.Int("pos", ie.Pos)
		}
		ev.Msg("evaluation failed")
		return 0, err
	}
	return v, nil
}

type machine struct {
	operands  stack[int64]
	operators stack[Token]
	logger    zerolog.Logger
}

func (e *Evaluator) eval(l *Lexer) (int64, error) {
	tokens, err := tokenize(l)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, newError(ErrEmptyExpression, -1)
	}

	m := &machine{logger: e.logger}
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNumber:
			m.operands.push(tok.Value)
		case TokenOperator:
			for {
				top, ok := m.operators.peek()
				if !ok || top.Op.Precedence() < tok.Op.Precedence() {
					break
				}
				if err := m.reduce(); err != nil {
					return 0, err
				}
			}
			m.operators.push(tok)
		}
	}
	for m.operators.size() > 0 {
		if err := m.reduce(); err != nil {
			return 0, err
		}
	}

	if m.operands.size() != 1 {
		return 0, newError(ErrMalformedExpression, -1)
	}
	v, _ := m.operands.pop()
	return v, nil
}

// reduce applies the top operator to the two topmost operands.
func (m *machine) reduce() error {
	tok, ok := m.operators.pop()
	if !ok || m.operands.size() < 2 {
		e := newError(ErrMalformedExpression, tok.Pos)
		if !ok {
			e.Pos = -1
		}
		e.Op = tok.Op
		return e
	}
	right, _ := m.operands.pop()
	left, _ := m.operands.pop()

	v, err := tok.Op.Apply(left, right)
	if err != nil {
		var ie *Error
		if errors.As(err, &ie) {
			ie.Pos = tok.Pos
		}
		return err
	}
	m.logger.Debug().
		Str("op", tok.Op.String()).
		Int64("left", left).
		Int64("right", right).
		Int64("result", v).
		Msg("reduce")
	m.operands.push(v)
	return nil
}
