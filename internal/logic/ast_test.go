package logic

import "testing"

func TestConstants(t *testing.T) {
	cases := []struct {
		n             Node
		str, obj, tex string
		want          bool
	}{
		{True{}, "1", "True()", "1", true},
		{False{}, "0", "False()", "0", false},
		{&Var{Name: "A", Bit: true}, "A", "A", "A", true},
		{NewNot(True{}), "~1", "Not(True())", `\overline{1}`, false},
		{NewNot(False{}), "~0", "Not(False())", `\overline{0}`, true},
	}
	for _, tc := range cases {
		if got := String(tc.n); got != tc.str {
			t.Errorf("string: got %q, want %q", got, tc.str)
		}
		if got := Object(tc.n); got != tc.obj {
			t.Errorf("object: got %q, want %q", got, tc.obj)
		}
		if got := TeX(tc.n); got != tc.tex {
			t.Errorf("tex: got %q, want %q", got, tc.tex)
		}
		if got := Eval(tc.n); got != tc.want {
			t.Errorf("%s: eval got %v, want %v", tc.str, got, tc.want)
		}
	}
}

func TestBinaryOperations(t *testing.T) {
	one, zero := Node(True{}), Node(False{})
	pairs := [][2]Node{{one, one}, {one, zero}, {zero, one}, {zero, zero}}
	cases := []struct {
		name string
		mk   func(a, b Node) Node
		sep  string
		tex  string
		want [4]bool
	}{
		{"And", func(a, b Node) Node { return NewAnd(a, b) }, " * ", ` \cdot `, [4]bool{true, false, false, false}},
		{"Or", func(a, b Node) Node { return NewOr(a, b) }, " + ", " + ", [4]bool{true, true, true, false}},
		{"Xor", func(a, b Node) Node { return NewXor(a, b) }, " ^ ", ` \oplus `, [4]bool{false, true, true, false}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i, p := range pairs {
				n := tc.mk(p[0], p[1])
				l, r := String(p[0]), String(p[1])
				if got, want := String(n), l+tc.sep+r; got != want {
					t.Errorf("string: got %q, want %q", got, want)
				}
				if got, want := TeX(n), l+tc.tex+r; got != want {
					t.Errorf("tex: got %q, want %q", got, want)
				}
				if got, want := Object(n), tc.name+"("+Object(p[0])+", "+Object(p[1])+")"; got != want {
					t.Errorf("object: got %q, want %q", got, want)
				}
				if got := Eval(n); got != tc.want[i] {
					t.Errorf("%s: eval got %v, want %v", String(n), got, tc.want[i])
				}
			}
		})
	}
}

func TestNestedTree(t *testing.T) {
	a := &Var{Name: "A", Bit: true}
	b := &Var{Name: "B"}
	c := &Var{Name: "C", Bit: true}
	d := &Var{Name: "D"}

	n := NewAnd(a, NewOr(b, NewNot(NewAnd(c, d))))
	if got, want := String(n), "A * ( B + ~( C * D ) )"; got != want {
		t.Errorf("string: got %q, want %q", got, want)
	}
	if got, want := Object(n), "And(A, Or(B, Not(And(C, D))))"; got != want {
		t.Errorf("object: got %q, want %q", got, want)
	}
	if got, want := TeX(n), `A \cdot ( B + \overline{( C \cdot D )} )`; got != want {
		t.Errorf("tex: got %q, want %q", got, want)
	}
	if !Eval(n) {
		t.Errorf("eval: got false, want true")
	}
	if got := Depth(n); got != 4 {
		t.Errorf("depth: got %d, want 4", got)
	}
	if got := Width(n); got != 4 {
		t.Errorf("width: got %d, want 4", got)
	}

	x := NewXor(a, b, c, d)
	if got, want := String(x), "A ^ B ^ C ^ D"; got != want {
		t.Errorf("string: got %q, want %q", got, want)
	}
	if got, want := TeX(x), `A \oplus B \oplus C \oplus D`; got != want {
		t.Errorf("tex: got %q, want %q", got, want)
	}
	if Eval(x) {
		t.Errorf("eval: got true, want false")
	}
}

func TestVarsOrder(t *testing.T) {
	n, err := Parse("C * (A + C) ^ B")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, v := range Vars(n) {
		names = append(names, v.Name)
	}
	if got := len(names); got != 3 || names[0] != "C" || names[1] != "A" || names[2] != "B" {
		t.Errorf("got %v, want [C A B]", names)
	}
}

func TestPriority(t *testing.T) {
	cases := []struct {
		n    Node
		want int
	}{
		{NewNot(True{}), 15},
		{NewAnd(True{}, False{}), 8},
		{NewXor(True{}, False{}), 7},
		{NewOr(True{}, False{}), 6},
		{NewVar("A"), PriorityLeaf},
	}
	for _, tc := range cases {
		if got := Priority(tc.n); got != tc.want {
			t.Errorf("%s: got %d, want %d", String(tc.n), got, tc.want)
		}
	}
}
