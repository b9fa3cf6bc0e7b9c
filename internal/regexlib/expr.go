package regexlib

// ExprKind is the governing operator of a rewritten operand string.
type ExprKind int

const (
	Epsilon ExprKind = iota // пустая строка
	Literal
	Concat
	Alternate
	Star
	Plus
)

func (k ExprKind) String() string {
	switch k {
	case Epsilon:
		return "epsilon"
	case Literal:
		return "literal"
	case Concat:
		return "concat"
	case Alternate:
		return "alternate"
	case Star:
		return "star"
	case Plus:
		return "plus"
	default:
		return "unknown"
	}
}

// Expr is one decomposition step. Unary kinds only use Left; terminal
// kinds keep the literal (or nothing) in Left.
type Expr struct {
	Kind  ExprKind
	Left  string
	Right string
}

// Terminal reports whether the expression needs no further rewriting.
func (e Expr) Terminal() bool { return e.Kind == Epsilon || e.Kind == Literal }

// Decompose extracts the operator governing s and its operand strings.
// s is the output of Rewrite or an operand previously returned by Decompose.
func Decompose(s string) (Expr, error) {
	rs := []rune(s)
	switch {
	case len(rs) == 0:
		return Expr{Kind: Epsilon}, nil
	case len(rs) == 1:
		if isOperator(rs[0]) {
			return Expr{}, ErrMalformed
		}
		return Expr{Kind: Literal, Left: s}, nil
	}

	last := rs[len(rs)-1]
	switch last {
	case opStar:
		return Expr{Kind: Star, Left: string(rs[:len(rs)-1])}, nil
	case opPlus:
		return Expr{Kind: Plus, Left: string(rs[:len(rs)-1])}, nil
	case opConcat, opUnion:
		at, err := rightOperandStart(rs)
		if err != nil {
			return Expr{}, err
		}
		kind := Concat
		if last == opUnion {
			kind = Alternate
		}
		return Expr{Kind: kind, Left: string(rs[:at]), Right: string(rs[at : len(rs)-1])}, nil
	default:
		return Expr{}, ErrMalformed
	}
}

// rightOperandStart scans backwards from the rune before the trailing binary
// operator and returns the index where its right operand begins. need counts
// operands still missing: every binary operator met on the way opens one more,
// every literal closes one, '*' and '+' only extend the operand they follow.
// A single literal on the left (with or without a suffix) yields the usual
// first 1-2 runes split.
func rightOperandStart(rs []rune) (int, error) {
	need := 1
	for i := len(rs) - 2; i >= 0; i-- {
		switch r := rs[i]; {
		case isBinary(r):
			need++
		case isUnary(r):
		default:
			need--
		}
		if need == 0 {
			if i == 0 {
				// nothing left for the left operand
				return 0, ErrMalformed
			}
			return i, nil
		}
	}
	return 0, ErrMalformed
}
