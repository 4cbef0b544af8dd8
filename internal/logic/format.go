package logic

import "strings"

type style struct {
	and, or, xor string
	lparen       string
	rparen       string
	not          func(inner string) string
	leaf         func(n Node) string
}

func plainLeaf(n Node) string {
	switch n := n.(type) {
	case *Var:
		return n.Name
	case True:
		return "1"
	case False:
		return "0"
	}
	return ""
}

func symbolStyle(t Tokens) style {
	return style{
		and:    " " + t.And + " ",
		or:     " " + t.Or + " ",
		xor:    " " + t.Xor + " ",
		lparen: t.LParen,
		rparen: t.RParen,
		not:    func(inner string) string { return t.Not + inner },
		leaf:   plainLeaf,
	}
}

var texStyle = style{
	and:    ` \cdot `,
	or:     " + ",
	xor:    ` \oplus `,
	lparen: "(",
	rparen: ")",
	not:    func(inner string) string { return `\overline{` + inner + `}` },
	leaf:   plainLeaf,
}

// String renders n in infix form with the default symbols, e.g.
// "A * ( B + ~( C * D ) )".
func String(n Node) string { return Format(n, DefaultTokens()) }

// Format renders n in infix form using the symbols of t.
func Format(n Node, t Tokens) string {
	return symbolStyle(t).render(n, Priority(n))
}

// TeX renders n as a LaTeX math fragment.
func TeX(n Node) string { return texStyle.render(n, Priority(n)) }

func (s style) render(n Node, under int) string {
	switch n := n.(type) {
	case *Not:
		return s.not(s.render(n.X, PriorityNot))
	case *And:
		return s.join(n.Args, s.and, PriorityAnd, under, true)
	case *Or:
		return s.join(n.Args, s.or, PriorityOr, under, true)
	case *Xor:
		return s.join(n.Args, s.xor, PriorityXor, under, false)
	default:
		return s.leaf(n)
	}
}

// join renders args separated by sep, wrapped when the surrounding priority
// is higher than the operation's own. XOR groups are wrapped without inner
// padding.
func (s style) join(args []Node, sep string, prio, under int, padded bool) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = s.render(a, prio)
	}
	body := strings.Join(parts, sep)
	if under <= prio {
		return body
	}
	if padded {
		return s.lparen + " " + body + " " + s.rparen
	}
	return s.lparen + body + s.rparen
}

// Object renders n in constructor form, e.g.
// "And(A, Or(B, Not(And(C, D))))".
func Object(n Node) string {
	switch n := n.(type) {
	case *Not:
		return "Not(" + Object(n.X) + ")"
	case *And:
		return "And(" + objectList(n.Args) + ")"
	case *Or:
		return "Or(" + objectList(n.Args) + ")"
	case *Xor:
		return "Xor(" + objectList(n.Args) + ")"
	case *Var:
		return n.Name
	case True:
		return "True()"
	case False:
		return "False()"
	}
	return ""
}

func objectList(args []Node) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = Object(a)
	}
	return strings.Join(parts, ", ")
}

func (n *Not) String() string { return String(n) }
func (n *And) String() string { return String(n) }
func (n *Or) String() string  { return String(n) }
func (n *Xor) String() string { return String(n) }
func (v *Var) String() string { return v.Name }
func (True) String() string   { return "1" }
func (False) String() string  { return "0" }
