package logic

import "math"

// Node AST

// Node is a Boolean expression tree. The set of implementations is closed:
// *Not, *And, *Or, *Xor, *Var, True and False.
type Node interface{ isNode() }

// Render priorities. Leaves are never parenthesized.
const (
	PriorityOr   = 6
	PriorityXor  = 7
	PriorityAnd  = 8
	PriorityNot  = 15
	PriorityLeaf = math.MaxInt
)

type Not struct{ X Node }

func (*Not) isNode() {}

type And struct{ Args []Node }

func (*And) isNode() {}

type Or struct{ Args []Node }

func (*Or) isNode() {}

type Xor struct{ Args []Node }

func (*Xor) isNode() {}

// Var is a named input. Bit holds the value used by the next evaluation and
// is not part of the variable's identity.
type Var struct {
	Name string
	Bit  bool
}

func (*Var) isNode() {}

// Set assigns the value seen by the next evaluation.
func (v *Var) Set(bit bool) { v.Bit = bit }

type True struct{}

func (True) isNode() {}

type False struct{}

func (False) isNode() {}

func NewNot(x Node) *Not       { return &Not{X: x} }
func NewAnd(args ...Node) *And { return &And{Args: args} }
func NewOr(args ...Node) *Or   { return &Or{Args: args} }
func NewXor(args ...Node) *Xor { return &Xor{Args: args} }
func NewVar(name string) *Var  { return &Var{Name: name} }

// NewVars returns one fresh leaf per name, in order.
func NewVars(names []string) []*Var {
	vars := make([]*Var, len(names))
	for i, name := range names {
		vars[i] = NewVar(name)
	}
	return vars
}

// VarMap indexes vars by name so they can be shared across parses.
func VarMap(vars []*Var) map[string]*Var {
	m := make(map[string]*Var, len(vars))
	for _, v := range vars {
		m[v.Name] = v
	}
	return m
}

// Priority returns the render priority of n.
func Priority(n Node) int {
	switch n.(type) {
	case *Not:
		return PriorityNot
	case *And:
		return PriorityAnd
	case *Xor:
		return PriorityXor
	case *Or:
		return PriorityOr
	default:
		return PriorityLeaf
	}
}

// Children returns the operands of an operation, or nil for a leaf.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Not:
		return []Node{n.X}
	case *And:
		return n.Args
	case *Or:
		return n.Args
	case *Xor:
		return n.Args
	default:
		return nil
	}
}

// Eval computes n under the current variable bits.
func Eval(n Node) bool {
	switch n := n.(type) {
	case *Not:
		return !Eval(n.X)
	case *And:
		res := true
		for _, a := range n.Args {
			res = Eval(a) && res
		}
		return res
	case *Or:
		res := false
		for _, a := range n.Args {
			res = Eval(a) || res
		}
		return res
	case *Xor:
		res := false
		for _, a := range n.Args {
			res = res != Eval(a)
		}
		return res
	case *Var:
		return n.Bit
	case True:
		return true
	case False:
		return false
	default:
		panic("logic: unknown node type")
	}
}

// Depth is the length of the longest chain of operations from n down to a
// leaf. Leaves have depth 0.
func Depth(n Node) int {
	children := Children(n)
	if children == nil {
		return 0
	}
	max := 0
	for _, c := range children {
		if d := Depth(c); d > max {
			max = d
		}
	}
	return max + 1
}

// Width counts leaf occurrences below n.
func Width(n Node) int {
	children := Children(n)
	if children == nil {
		return 1
	}
	w := 0
	for _, c := range children {
		w += Width(c)
	}
	return w
}

// Vars lists the distinct variables of n in depth-first, left-to-right order.
func Vars(n Node) []*Var {
	var out []*Var
	seen := make(map[*Var]bool)
	var walk func(Node)
	walk = func(n Node) {
		if v, ok := n.(*Var); ok {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
			return
		}
		for _, c := range Children(n) {
			walk(c)
		}
	}
	walk(n)
	return out
}
