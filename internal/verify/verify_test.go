package verify

import (
	"testing"

	"github.com/Aniny21/logi/internal/logic"
	"github.com/Aniny21/logi/internal/qmc"
)

func mustParse(t *testing.T, expr string, vars map[string]*logic.Var) logic.Node {
	t.Helper()
	n, err := logic.NewParser().Parse(expr, vars)
	if err != nil {
		t.Fatalf("parse %q: %v", expr, err)
	}
	return n
}

func TestEquivalent(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"A ^ B", "~A * B + A * ~B", true},
		{"~(A * B)", "~A + ~B", true},
		{"A * (B + C)", "A * B + A * C", true},
		{"A ^ B ^ C", "A * B * C + A * ~B * ~C + ~A * B * ~C + ~A * ~B * C", true},
		{"A + B", "A * B", false},
		{"A + ~A", "1", true},
		{"A * ~A", "0", true},
	}
	for _, tc := range cases {
		t.Run(tc.a+" == "+tc.b, func(t *testing.T) {
			a := mustParse(t, tc.a, nil)
			b := mustParse(t, tc.b, nil)
			if got := Equivalent(a, b); got != tc.want {
				t.Errorf("sat: got %v, want %v", got, tc.want)
			}
			vars := logic.NewVars([]string{"A", "B", "C"})
			shared := logic.VarMap(vars)
			got, err := EquivalentBDD(mustParse(t, tc.a, shared), mustParse(t, tc.b, shared), vars)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("bdd: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCounterexample(t *testing.T) {
	a := mustParse(t, "A + B", nil)
	b := mustParse(t, "A * B", nil)
	model := Counterexample(a, b)
	if model == nil {
		t.Fatal("expected a counterexample")
	}
	if model["A"] == model["B"] {
		t.Errorf("A + B and A * B agree when A == B, got %v", model)
	}
}

func TestSatisfiable(t *testing.T) {
	if m := Satisfiable(mustParse(t, "A * ~A", nil)); m != nil {
		t.Errorf("contradiction has a model %v", m)
	}
	m := Satisfiable(mustParse(t, "A * ~B", nil))
	if m == nil || !m["A"] || m["B"] {
		t.Errorf("got %v, want A=true B=false", m)
	}
}

func TestSatcount(t *testing.T) {
	cases := []struct {
		expr string
		want int64
	}{
		{"(A + B) * (C + D)", 9},
		{"AB + BC + CD", 8},
		{"A ^ B ^ C ^ D", 8},
		{"A + ~A", 16},
		{"A * ~A", 0},
	}
	for _, tc := range cases {
		vars := logic.NewVars([]string{"A", "B", "C", "D"})
		n := mustParse(t, tc.expr, logic.VarMap(vars))
		got, err := Satcount(n, vars)
		if err != nil {
			t.Fatalf("%s: %v", tc.expr, err)
		}
		if got.Int64() != tc.want {
			t.Errorf("%s: got %s, want %d", tc.expr, got, tc.want)
		}
	}

	if _, err := Satcount(mustParse(t, "A + E", nil), logic.NewVars([]string{"A"})); err == nil {
		t.Errorf("expected an error for a variable outside the list")
	}
	if got, err := Satcount(logic.True{}, nil); err != nil || got.Int64() != 1 {
		t.Errorf("constant: got %v, %v", got, err)
	}
}

// Every minimal cover must match its source expression.
func TestMinimizedCoversAreEquivalent(t *testing.T) {
	exprs := []string{
		"A ^ B",
		"(A + B) * (C + D)",
		"AB + BC + CD",
		"~(A ^ B) + C'D",
		"A ^ B ^ C ^ D",
	}
	for _, expr := range exprs {
		p := logic.NewParser()
		vars, err := p.Vars(expr)
		if err != nil {
			t.Fatal(err)
		}
		shared := logic.VarMap(vars)
		n, err := p.Parse(expr, shared)
		if err != nil {
			t.Fatal(err)
		}
		covers, err := qmc.MinimizeExpression(expr)
		if err != nil {
			t.Fatalf("%s: %v", expr, err)
		}
		for _, c := range covers {
			if !Equivalent(n, c) {
				t.Errorf("%s: cover %s is not equivalent", expr, logic.String(c))
			}
			again := mustParse(t, logic.String(c), shared)
			ok, err := EquivalentBDD(n, again, vars)
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Errorf("%s: bdd says cover %s differs", expr, logic.String(c))
			}
		}
	}
}
