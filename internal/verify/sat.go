// Package verify checks expression trees against each other with a SAT
// solver and with binary decision diagrams.
package verify

import (
	"fmt"

	"github.com/crillab/gophersat/solver"

	"github.com/Aniny21/logi/internal/logic"
)

// cnf is a Tseitin encoding of one or more trees. Variables are numbered
// from 1: named leaves first come, first served, then one auxiliary
// variable per operator node.
type cnf struct {
	clauses [][]int
	names   map[string]int
	order   []string
	next    int
}

func newCNF() *cnf {
	return &cnf{names: make(map[string]int)}
}

func (c *cnf) fresh() int {
	c.next++
	return c.next
}

func (c *cnf) add(lits ...int) {
	c.clauses = append(c.clauses, lits)
}

// encode returns a literal equivalent to n.
func (c *cnf) encode(n logic.Node) int {
	switch n := n.(type) {
	case *logic.Var:
		if v, ok := c.names[n.Name]; ok {
			return v
		}
		v := c.fresh()
		c.names[n.Name] = v
		c.order = append(c.order, n.Name)
		return v
	case logic.True:
		v := c.fresh()
		c.add(v)
		return v
	case logic.False:
		v := c.fresh()
		c.add(-v)
		return v
	case *logic.Not:
		return -c.encode(n.X)
	case *logic.And:
		lits := c.encodeAll(n.Args)
		v := c.fresh()
		long := []int{v}
		for _, l := range lits {
			c.add(-v, l)
			long = append(long, -l)
		}
		c.add(long...)
		return v
	case *logic.Or:
		lits := c.encodeAll(n.Args)
		v := c.fresh()
		long := []int{-v}
		for _, l := range lits {
			c.add(v, -l)
			long = append(long, l)
		}
		c.add(long...)
		return v
	case *logic.Xor:
		acc := c.encode(n.Args[0])
		for _, a := range n.Args[1:] {
			acc = c.xor(acc, c.encode(a))
		}
		return acc
	}
	panic(fmt.Sprintf("verify: unknown node %T", n))
}

func (c *cnf) encodeAll(args []logic.Node) []int {
	out := make([]int, len(args))
	for i, a := range args {
		out[i] = c.encode(a)
	}
	return out
}

func (c *cnf) xor(a, b int) int {
	v := c.fresh()
	c.add(-v, a, b)
	c.add(-v, -a, -b)
	c.add(v, -a, b)
	c.add(v, a, -b)
	return v
}

// solve asserts root and returns a model over the named variables, or nil
// if the clauses are unsatisfiable.
func (c *cnf) solve(root int) map[string]bool {
	c.add(root)
	s := solver.New(solver.ParseSlice(c.clauses))
	if s.Solve() != solver.Sat {
		return nil
	}
	m := s.Model()
	model := make(map[string]bool, len(c.order))
	for _, name := range c.order {
		idx := c.names[name]
		model[name] = idx-1 < len(m) && m[idx-1]
	}
	return model
}

// Satisfiable returns a model of n, or nil if n is a contradiction.
func Satisfiable(n logic.Node) map[string]bool {
	c := newCNF()
	return c.solve(c.encode(n))
}

// Counterexample returns an assignment on which a and b differ, or nil if
// they are equivalent. Variables are matched by name.
func Counterexample(a, b logic.Node) map[string]bool {
	c := newCNF()
	return c.solve(c.xor(c.encode(a), c.encode(b)))
}

// Equivalent reports whether a and b compute the same function.
func Equivalent(a, b logic.Node) bool {
	return Counterexample(a, b) == nil
}
