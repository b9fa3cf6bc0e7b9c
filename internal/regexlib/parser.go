package regexlib

import "strings"

// Приоритеты операторов: '(' только кладётся в стек, ')' выталкивает,
// всё остальное (литералы, '*', '+') сразу уходит в выход.
func precedence(r rune) int {
	switch r {
	case opLParen:
		return 0
	case opRParen:
		return 1
	case opUnion:
		return 2
	case opConcat:
		return 3
	default:
		return 4
	}
}

// Rewrite turns an infix pattern into the linear operand/operator form the
// decomposer understands: every binary operator follows both operands, while
// '*' and '+' stay glued to the operand they modify.
//
// The empty pattern is returned unchanged.
func Rewrite(pattern string) (string, error) {
	if pattern == "" {
		return "", nil
	}
	in := []rune(InsertConcat(pattern))

	var out strings.Builder
	out.Grow(len(pattern) * 2)
	stack := make([]rune, 0, len(in))

	pop := func() rune {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top
	}

	for _, r := range in {
		switch {
		case isBinary(r):
			// '>=' also pops a pending '|' before another '|'.
			for len(stack) > 0 && precedence(stack[len(stack)-1]) >= precedence(r) {
				out.WriteRune(pop())
			}
			stack = append(stack, r)
		case r == opLParen:
			stack = append(stack, r)
		case r == opRParen:
			for {
				if len(stack) == 0 {
					return "", &CompileError{Pattern: pattern, Err: ErrUnbalanced}
				}
				top := pop()
				if top == opLParen {
					break
				}
				out.WriteRune(top)
			}
		default:
			out.WriteRune(r)
		}
	}

	for len(stack) > 0 {
		top := pop()
		if top == opLParen {
			return "", &CompileError{Pattern: pattern, Err: ErrUnbalanced}
		}
		out.WriteRune(top)
	}
	return out.String(), nil
}
