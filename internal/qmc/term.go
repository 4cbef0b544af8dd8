package qmc

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/Aniny21/logi/internal/logic"
)

// Literal is a variable reference in a product term. Index is the
// variable's bit position counted from the most significant bit.
type Literal struct {
	Index int
	Neg   bool
}

// Term is a product of literals in bit-position order. An empty Term is
// the constant 1.
type Term struct {
	Lits []Literal
}

// Letter names the variable at index i: A, B, C, ...
func Letter(i int) string { return string(rune('A' + i)) }

// Format renders the term as juxtaposed literals with a postfix quote for
// complements, e.g. "AB'D". name maps a variable index to its name.
func (t Term) Format(name func(int) string) string {
	var b strings.Builder
	for _, l := range t.Lits {
		b.WriteString(name(l.Index))
		if l.Neg {
			b.WriteByte('\'')
		}
	}
	return b.String()
}

func (t Term) String() string { return t.Format(Letter) }

// Tree builds the term over vars, vars[i] being the variable at index i.
func (t Term) Tree(vars []*logic.Var) logic.Node {
	if len(t.Lits) == 0 {
		return logic.True{}
	}
	args := make([]logic.Node, len(t.Lits))
	for i, l := range t.Lits {
		args[i] = vars[l.Index]
		if l.Neg {
			args[i] = logic.NewNot(vars[l.Index])
		}
	}
	if len(args) == 1 {
		return args[0]
	}
	return logic.NewAnd(args...)
}

// pattern reads the literals as a binary number, plain=1, complemented=0.
func (t Term) pattern() uint64 {
	var p uint64
	for _, l := range t.Lits {
		p <<= 1
		if !l.Neg {
			p |= 1
		}
	}
	return p
}

// compareTerms orders terms by literal count, then by the letters they
// use, then by polarity pattern.
func compareTerms(a, b Term) int {
	if len(a.Lits) != len(b.Lits) {
		return len(a.Lits) - len(b.Lits)
	}
	for i := range a.Lits {
		if a.Lits[i].Index != b.Lits[i].Index {
			return a.Lits[i].Index - b.Lits[i].Index
		}
	}
	pa, pb := a.pattern(), b.pattern()
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	}
	return 0
}

// Cover is one minimal sum of products, terms in canonical order.
type Cover []Term

func newCover(terms []Term) Cover {
	c := make(Cover, 0, len(terms))
	for _, t := range terms {
		if len(t.Lits) > 0 {
			c = append(c, t)
		}
	}
	slices.SortStableFunc(c, compareTerms)
	return c
}

// Format joins the terms with " + ". A cover without terms is "1".
func (c Cover) Format(name func(int) string) string {
	if len(c) == 0 {
		return "1"
	}
	parts := make([]string, len(c))
	for i, t := range c {
		parts[i] = t.Format(name)
	}
	return strings.Join(parts, " + ")
}

func (c Cover) String() string { return c.Format(Letter) }

// Tree builds the cover as a sum over vars. A cover without terms is True.
func (c Cover) Tree(vars []*logic.Var) logic.Node {
	if len(c) == 0 {
		return logic.True{}
	}
	if len(c) == 1 {
		return c[0].Tree(vars)
	}
	args := make([]logic.Node, len(c))
	for i, t := range c {
		args[i] = t.Tree(vars)
	}
	return logic.NewOr(args...)
}
