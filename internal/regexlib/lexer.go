package regexlib

import "strings"

// Метасимволы шаблона. '.' is never typed by hand in a valid pattern:
// it is the concatenation marker injected by InsertConcat.
const (
	opConcat    = '.'
	opUnion     = '|'
	opStar      = '*'
	opPlus      = '+'
	opLParen    = '('
	opRParen    = ')'
	metaSymbols = ".|*+()"
)

func isOperator(r rune) bool { return strings.ContainsRune(metaSymbols, r) }

func isBinary(r rune) bool { return r == opConcat || r == opUnion }

func isUnary(r rune) bool { return r == opStar || r == opPlus }

// InsertConcat makes concatenation explicit: a '.' goes between two
// neighbours unless the left one opens something ('|' or '(') or the
// right one is an operator other than '('.
func InsertConcat(pattern string) string {
	rs := []rune(pattern)
	if len(rs) < 2 {
		return pattern
	}
	var b strings.Builder
	b.Grow(len(pattern) * 2)
	b.WriteRune(rs[0])
	for i := 1; i < len(rs); i++ {
		prev, cur := rs[i-1], rs[i]
		if prev != opUnion && prev != opLParen && (!isOperator(cur) || cur == opLParen) {
			b.WriteRune(opConcat)
		}
		b.WriteRune(cur)
	}
	return b.String()
}
