// Package eval evaluates arithmetic expressions written in prefix
// (Polish) notation, such as "* 10 + 1.23 4.56", using decimal-safe
// operations.
package eval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/numprec"
)

var (
	ErrNoTokens          = errors.New("no tokens")
	ErrNotEnoughOperands = errors.New("not enough operands")
	ErrLeftoverOperands  = errors.New("leftover operands")
)

// Evaluator evaluates prefix expressions with a fixed calculator.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	calc numprec.Calc
}

// New returns an evaluator backed by c.
func New(c numprec.Calc) *Evaluator {
	return &Evaluator{calc: c}
}

// Evaluate returns the value of the prefix expression.
// Tokens are separated by white space.
// Supported operators are "+", "-", "*", and "/".
func (e *Evaluator) Evaluate(input string) (float64, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return 0, ErrNoTokens
	}
	stack, err := e.processTokens(tokens)
	if err != nil {
		return 0, err
	}
	if len(stack) != 1 {
		return 0, fmt.Errorf("post-processed stack contains %v: %w", stack, ErrLeftoverOperands)
	}
	return stack[0], nil
}

func (e *Evaluator) processTokens(tokens []string) ([]float64, error) {
	stack := make([]float64, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/":
			stack, err = e.processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func (e *Evaluator) processOperator(stack []float64, token string) ([]float64, error) {
	if len(stack) < 2 {
		return nil, ErrNotEnoughOperands
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result float64
	var err error
	switch token {
	case "+":
		result, err = e.calc.Add(left, right)
	case "-":
		result, err = e.calc.Sub(left, right)
	case "*":
		result, err = e.calc.Mul(left, right)
	case "/":
		result, err = e.calc.Quo(left, right)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%v %s %v\": %w", left, token, right, err)
	}
	return append(stack, result), nil
}

func processOperand(stack []float64, token string) ([]float64, error) {
	f, err := numprec.Parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, f), nil
}
