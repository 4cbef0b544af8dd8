package truthtable

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Aniny21/logi/examples"
	"github.com/Aniny21/logi/internal/logic"
	"github.com/Aniny21/logi/internal/testutil"
)

func TestBuild(t *testing.T) {
	vars := logic.NewVars([]string{"A", "B", "C", "D"})
	n, err := logic.NewParser().Parse("(A + B) * (C + D)", logic.VarMap(vars))
	if err != nil {
		t.Fatal(err)
	}
	table := Build(n, vars)
	if diff := cmp.Diff([]string{"A", "B", "C", "D"}, table.Vars); diff != "" {
		t.Errorf("vars mismatch (-want +got):\n%s", diff)
	}
	want := []int{0, 0, 0, 0, 0, 1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1}
	if diff := cmp.Diff(want, table.Results()); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 1, 0}, table.Rows[6].Inputs); diff != "" {
		t.Errorf("row 6 inputs mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildUnusedVariable(t *testing.T) {
	vars := logic.NewVars([]string{"A", "B", "C", "D"})
	n, err := logic.NewParser().Parse("(A OR B') & (~C | 1) ⋃ false", logic.VarMap(vars))
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1}
	if diff := cmp.Diff(want, Build(n, vars).Results()); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildNoVariables(t *testing.T) {
	table := Build(logic.NewNot(logic.False{}), nil)
	if len(table.Rows) != 1 || table.Rows[0].Result != 1 || len(table.Rows[0].Inputs) != 0 {
		t.Errorf("got %+v", table)
	}
}

func TestLookup(t *testing.T) {
	table, err := Parse(logic.NewParser(), "A ^ B")
	if err != nil {
		t.Fatal(err)
	}
	if r, ok := table.Lookup([]int{1, 0}); !ok || r != 1 {
		t.Errorf("lookup 10: got %d, %v", r, ok)
	}
	if _, ok := table.Lookup([]int{1, 0, 1}); ok {
		t.Errorf("lookup with extra input should fail")
	}
}

func TestString(t *testing.T) {
	table, err := Parse(logic.NewParser(), "A * B")
	if err != nil {
		t.Fatal(err)
	}
	want := "A B | result\n0 0 | 0\n0 1 | 0\n1 0 | 0\n1 1 | 1\n"
	if got := table.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestGoldenTables(t *testing.T) {
	files, err := fs.Glob(examples.FS, "*.tt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no .tt files found in examples FS")
	}
	for _, path := range files {
		t.Run(strings.TrimSuffix(path, ".tt"), func(t *testing.T) {
			data, err := fs.ReadFile(examples.FS, path)
			if err != nil {
				t.Fatal(err)
			}
			want, err := testutil.ParseTable(data)
			if err != nil {
				t.Fatalf("parse fixture: %v", err)
			}
			table, err := Parse(logic.NewParser(), want.Expr)
			if err != nil {
				t.Fatalf("parse %q: %v", want.Expr, err)
			}
			if diff := testutil.CompareTables(toFixture(want.Expr, table), want); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func toFixture(expr string, table Table) testutil.Table {
	out := testutil.Table{Expr: expr, Vars: table.Vars}
	for _, r := range table.Rows {
		out.Inputs = append(out.Inputs, r.Inputs)
		out.Result = append(out.Result, r.Result)
	}
	return out
}
