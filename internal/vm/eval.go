// Package vm evaluates a postfix token sequence on an integer stack
// machine.
package vm

import (
	"errors"
	"fmt"
	"strconv"

	"intcalc/internal/stack"
	"intcalc/internal/token"
)

// Fatal arithmetic errors. The message text is part of the CLI contract.
var (
	ErrDivisionByZero = errors.New("Cannot evaluate expression, division by zero.")
	ErrZeroPowerZero  = errors.New("Cannot evaluate expression, 0^0 is undefined.")
)

// Evaluate consumes a postfix sequence produced by postfix.Convert and
// returns the integer result. Evaluation aborts on the first arithmetic
// failure; no partial result is ever returned.
//
// A sequence that leaves anything but exactly one value on the stack is an
// internal invariant violation (it cannot come out of a validated infix
// expression) and surfaces as a plain error rather than a user diagnostic.
func Evaluate(toks []token.Token) (int64, error) {
	st := stack.New[int64](8)

	for _, tok := range toks {
		switch {
		case tok.Kind == token.Number:
			v, err := strconv.ParseInt(tok.Text, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("malformed number token %q: %w", tok.Text, err)
			}
			st.Push(v)

		case tok.Kind == token.Neg:
			v, ok := st.Pop()
			if !ok {
				return 0, errUnderflow(tok)
			}
			st.Push(-v)

		case tok.IsBinaryOperator():
			// Самое свежее значение — правый операнд
			right, ok := st.Pop()
			if !ok {
				return 0, errUnderflow(tok)
			}
			left, ok := st.Pop()
			if !ok {
				return 0, errUnderflow(tok)
			}
			res, err := apply(tok.Symbol(), left, right)
			if err != nil {
				return 0, err
			}
			st.Push(res)

		default:
			return 0, fmt.Errorf("unexpected %s token in postfix sequence", tok.Kind)
		}
	}

	result, ok := st.Pop()
	if !ok {
		return 0, errors.New("empty postfix sequence")
	}
	if !st.Empty() {
		return 0, fmt.Errorf("postfix sequence left %d extra values on the stack", st.Len())
	}
	return result, nil
}

func apply(symbol byte, left, right int64) (int64, error) {
	switch symbol {
	case '+':
		return left + right, nil
	case '-':
		return left - right, nil
	case 'x':
		return left * right, nil
	case '/':
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	case '%':
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left % right, nil
	case '^':
		return power(left, right)
	}
	return 0, fmt.Errorf("unknown operator '%c'", symbol)
}

// power computes integer exponentiation by squaring. A negative exponent
// truncates toward zero the way integer division would: bases of magnitude
// two or more collapse to 0, while 1 and -1 keep their sign parity.
func power(base, exp int64) (int64, error) {
	if base == 0 {
		if exp == 0 {
			return 0, ErrZeroPowerZero
		}
		if exp < 0 {
			// 0^-n is 1/0
			return 0, ErrDivisionByZero
		}
		return 0, nil
	}
	if exp < 0 {
		switch base {
		case 1:
			return 1, nil
		case -1:
			if exp%2 == 0 {
				return 1, nil
			}
			return -1, nil
		default:
			return 0, nil
		}
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result, nil
}

func errUnderflow(tok token.Token) error {
	return fmt.Errorf("operand stack underflow at '%c'", tok.Symbol())
}
