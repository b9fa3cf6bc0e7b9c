// Package tlist reads the transition-list text written by regexlib back into
// a simulatable automaton.
//
// One line per state:
//
//	<id>[*]-><label><dest>[|<label><dest>]...
//
// Every label is exactly one character, so a digit label directly followed
// by a destination id is unambiguous. Epsilon (empty) labels are not
// accepted; the format only carries epsilon-free automata.
package tlist

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type listing struct {
	Lines []*Line `parser:"@@*"`
}

// Listing is a parsed transition list. State 0 is the start state.
type Listing struct {
	Lines []*Line

	byID map[int]*Line
}

type Line struct {
	ID        int           `parser:"@Number"`
	Accepting bool          `parser:"@Accept?"`
	Edges     []*Transition `parser:"Arrow (@@ (Sep @@)*)? EOL"`
}

type Transition struct {
	Label string `parser:"@Label"`
	Dest  int    `parser:"@Dest"`
}

var listingLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Number", Pattern: `\d+`, Action: nil},
		{Name: "Accept", Pattern: `\*`, Action: nil},
		{Name: "Arrow", Pattern: `->`, Action: lexer.Push("Edges")},
		{Name: "Newline", Pattern: `\r?\n`, Action: nil},
	},
	"Edges": {
		{Name: "EOL", Pattern: `\r?\n`, Action: lexer.Pop()},
		{Name: "Sep", Pattern: `\|`, Action: nil},
		{Name: "Label", Pattern: `.`, Action: lexer.Push("Target")},
	},
	"Target": {
		{Name: "Dest", Pattern: `\d+`, Action: lexer.Pop()},
	},
})

var parser = participle.MustBuild[listing](
	participle.Lexer(listingLexer),
	participle.Elide("Newline"),
)

// Parse parses and validates a transition list.
func Parse(src string) (*Listing, error) {
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}
	raw, err := parser.ParseString("listing", src)
	if err != nil {
		return nil, fmt.Errorf("parse transition list: %w", err)
	}
	l := &Listing{Lines: raw.Lines}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate checks that ids are unique, state 0 exists and every destination
// refers to a listed state.
func (l *Listing) Validate() error {
	byID := make(map[int]*Line, len(l.Lines))
	for _, ln := range l.Lines {
		if _, dup := byID[ln.ID]; dup {
			return fmt.Errorf("state %d listed twice", ln.ID)
		}
		byID[ln.ID] = ln
	}
	if _, ok := byID[0]; !ok {
		return fmt.Errorf("start state 0 missing")
	}
	for _, ln := range l.Lines {
		for _, e := range ln.Edges {
			if _, ok := byID[e.Dest]; !ok {
				return fmt.Errorf("state %d: transition %q to undefined state %d", ln.ID, e.Label, e.Dest)
			}
		}
	}
	l.byID = byID
	return nil
}

// States is the number of listed states.
func (l *Listing) States() int { return len(l.Lines) }

// Transitions is the number of transitions over all states.
func (l *Listing) Transitions() int {
	c := 0
	for _, ln := range l.Lines {
		c += len(ln.Edges)
	}
	return c
}

// Accepts runs word through the automaton starting at state 0.
func (l *Listing) Accepts(word string) bool {
	if l.byID == nil {
		if err := l.Validate(); err != nil {
			return false
		}
	}
	cur := map[int]bool{0: true}
	for _, r := range word {
		sym := string(r)
		next := map[int]bool{}
		for id := range cur {
			for _, e := range l.byID[id].Edges {
				if e.Label == sym {
					next[e.Dest] = true
				}
			}
		}
		if len(next) == 0 {
			return false
		}
		cur = next
	}
	for id := range cur {
		if l.byID[id].Accepting {
			return true
		}
	}
	return false
}
