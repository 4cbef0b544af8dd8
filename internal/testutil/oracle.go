package testutil

import (
	"fmt"
	"strings"

	"github.com/Knetic/govaluate"

	"github.com/Aniny21/logi/internal/logic"
)

// GovaluateExpr renders n fully parenthesized in govaluate syntax. XOR is
// written as boolean inequality.
func GovaluateExpr(n logic.Node) string {
	switch n := n.(type) {
	case *logic.Not:
		return "!(" + GovaluateExpr(n.X) + ")"
	case *logic.And:
		return joinGovaluate(n.Args, " && ")
	case *logic.Or:
		return joinGovaluate(n.Args, " || ")
	case *logic.Xor:
		s := GovaluateExpr(n.Args[0])
		for _, a := range n.Args[1:] {
			s = "(" + s + " != " + GovaluateExpr(a) + ")"
		}
		return s
	case *logic.Var:
		return n.Name
	case logic.True:
		return "true"
	case logic.False:
		return "false"
	}
	panic(fmt.Sprintf("testutil: unknown node %T", n))
}

func joinGovaluate(args []logic.Node, op string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = GovaluateExpr(a)
	}
	return "(" + strings.Join(parts, op) + ")"
}

// Oracle evaluates trees with govaluate instead of logic.Eval.
type Oracle struct {
	expr *govaluate.EvaluableExpression
}

func NewOracle(n logic.Node) (*Oracle, error) {
	e, err := govaluate.NewEvaluableExpression(GovaluateExpr(n))
	if err != nil {
		return nil, err
	}
	return &Oracle{expr: e}, nil
}

// Eval evaluates the expression for one assignment of its variables.
func (o *Oracle) Eval(assign map[string]bool) (bool, error) {
	params := make(map[string]interface{}, len(assign))
	for k, v := range assign {
		params[k] = v
	}
	res, err := o.expr.Evaluate(params)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("non-boolean result %v", res)
	}
	return b, nil
}

// OracleTable evaluates n over every assignment of vars, the first
// variable being the most significant bit.
func OracleTable(n logic.Node, vars []string) ([]int, error) {
	o, err := NewOracle(n)
	if err != nil {
		return nil, err
	}
	k := len(vars)
	out := make([]int, 0, 1<<k)
	for m := 0; m < 1<<k; m++ {
		assign := make(map[string]bool, k)
		for i, v := range vars {
			assign[v] = (m>>(k-1-i))&1 == 1
		}
		b, err := o.Eval(assign)
		if err != nil {
			return nil, err
		}
		if b {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	return out, nil
}
