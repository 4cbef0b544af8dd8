// Package truthtable enumerates the truth table of an expression tree.
package truthtable

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/Aniny21/logi/internal/logic"
)

// Row is one assignment of the table. Inputs follow the order of
// Table.Vars; values are 0 or 1.
type Row struct {
	Inputs []int
	Result int
}

// Table is the full truth table of a function over Vars. Rows are in
// counting order with the first variable as the most significant bit.
type Table struct {
	Vars []string
	Rows []Row
}

// Build evaluates n for all 2^len(vars) assignments of vars. The bits of
// vars are left at the last row's values.
func Build(n logic.Node, vars []*logic.Var) Table {
	k := len(vars)
	t := Table{Vars: make([]string, k), Rows: make([]Row, 0, 1<<k)}
	for i, v := range vars {
		t.Vars[i] = v.Name
	}
	for m := 0; m < 1<<k; m++ {
		inputs := make([]int, k)
		for i, v := range vars {
			bit := (m >> (k - 1 - i)) & 1
			inputs[i] = bit
			v.Set(bit == 1)
		}
		t.Rows = append(t.Rows, Row{Inputs: inputs, Result: boolToInt(logic.Eval(n))})
	}
	return t
}

// Parse parses expr with p and builds its table over the expression's own
// variables, in order of first appearance.
func Parse(p *logic.Parser, expr string) (Table, error) {
	vars, err := p.Vars(expr)
	if err != nil {
		return Table{}, err
	}
	n, err := p.Parse(expr, logic.VarMap(vars))
	if err != nil {
		return Table{}, err
	}
	return Build(n, vars), nil
}

// Lookup returns the result of the row whose inputs equal inputs.
func (t Table) Lookup(inputs []int) (int, bool) {
	for _, r := range t.Rows {
		if slices.Equal(r.Inputs, inputs) {
			return r.Result, true
		}
	}
	return 0, false
}

// Results returns the output column.
func (t Table) Results() []int {
	out := make([]int, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Result
	}
	return out
}

func (t Table) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(t.Vars, " "))
	b.WriteString(" | result\n")
	for _, r := range t.Rows {
		for i, in := range r.Inputs {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(pad(strconv.Itoa(in), len(t.Vars[i])))
		}
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(r.Result))
		b.WriteByte('\n')
	}
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
