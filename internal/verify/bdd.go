package verify

import (
	"math/big"

	"github.com/dalzilio/rudd"
	"github.com/pkg/errors"

	"github.com/Aniny21/logi/internal/logic"
)

// Satcount counts the assignments of vars that make n true. Variables of n
// missing from vars are an error.
func Satcount(n logic.Node, vars []*logic.Var) (*big.Int, error) {
	if len(vars) == 0 {
		if logic.Eval(n) {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	}
	b, err := rudd.New(len(vars), rudd.Nodesize(nodesize(len(vars))))
	if err != nil {
		return nil, errors.Wrap(err, "bdd")
	}
	index := varIndex(vars)
	var build func(logic.Node) (rudd.Node, error)
	build = func(n logic.Node) (rudd.Node, error) {
		switch n := n.(type) {
		case *logic.Not:
			x, err := build(n.X)
			if err != nil {
				return nil, err
			}
			return b.Not(x), nil
		case *logic.And, *logic.Or, *logic.Xor:
			args := logic.Children(n)
			nodes := make([]rudd.Node, len(args))
			for i, a := range args {
				x, err := build(a)
				if err != nil {
					return nil, err
				}
				nodes[i] = x
			}
			switch n.(type) {
			case *logic.And:
				return b.And(nodes...), nil
			case *logic.Or:
				return b.Or(nodes...), nil
			}
			acc := nodes[0]
			for _, x := range nodes[1:] {
				acc = b.Apply(acc, x, rudd.OPxor)
			}
			return acc, nil
		case *logic.Var:
			i, ok := index[n.Name]
			if !ok {
				return nil, errors.Errorf("variable %q is not in the variable list", n.Name)
			}
			return b.Ithvar(i), nil
		case logic.True:
			return b.True(), nil
		default:
			return b.False(), nil
		}
	}
	root, err := build(n)
	if err != nil {
		return nil, err
	}
	return b.Satcount(root), nil
}

// EquivalentBDD compares a and b as diagrams over vars.
func EquivalentBDD(a, b logic.Node, vars []*logic.Var) (bool, error) {
	x := logic.NewXor(a, b)
	count, err := Satcount(x, vars)
	if err != nil {
		return false, err
	}
	return count.Sign() == 0, nil
}

func varIndex(vars []*logic.Var) map[string]int {
	m := make(map[string]int, len(vars))
	for i, v := range vars {
		m[v.Name] = i
	}
	return m
}

func nodesize(varnum int) int {
	return 1000 * (varnum + 1)
}
