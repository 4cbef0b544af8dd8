// Package testutil reads golden fixtures and provides an independent
// evaluator for cross-checking expression trees in tests.
package testutil

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// Table is a truth table read from a .tt fixture:
//
//	*E (A + B) * C
//	*V A B C
//	000 0
//	001 0
//	...
//
// Lines starting with # are comments.
type Table struct {
	Expr   string
	Vars   []string
	Inputs [][]int
	Result []int
}

func ParseTable(data []byte) (Table, error) {
	var t Table
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "*E") {
			t.Expr = strings.TrimSpace(strings.TrimPrefix(line, "*E"))
			continue
		}
		if strings.HasPrefix(line, "*V") {
			t.Vars = strings.Fields(strings.TrimPrefix(line, "*V"))
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 || len(parts[1]) != 1 {
			return t, fmt.Errorf("line %d: invalid row %q", lineNo, line)
		}
		if len(parts[0]) != len(t.Vars) {
			return t, fmt.Errorf("line %d: %d inputs for %d variables", lineNo, len(parts[0]), len(t.Vars))
		}
		inputs := make([]int, len(parts[0]))
		for i, ch := range parts[0] {
			v, err := bit(ch)
			if err != nil {
				return t, fmt.Errorf("line %d: %w", lineNo, err)
			}
			inputs[i] = v
		}
		res, err := bit(rune(parts[1][0]))
		if err != nil {
			return t, fmt.Errorf("line %d: %w", lineNo, err)
		}
		t.Inputs = append(t.Inputs, inputs)
		t.Result = append(t.Result, res)
	}
	if err := scanner.Err(); err != nil {
		return t, err
	}
	if t.Expr == "" {
		return t, fmt.Errorf("missing *E line")
	}
	if want := 1 << len(t.Vars); len(t.Result) != want {
		return t, fmt.Errorf("%d rows, want %d", len(t.Result), want)
	}
	return t, nil
}

func bit(ch rune) (int, error) {
	switch ch {
	case '0':
		return 0, nil
	case '1':
		return 1, nil
	}
	return 0, fmt.Errorf("invalid bit %q", ch)
}

// CompareTables returns a human-readable diff of two tables, or "" when
// they agree.
func CompareTables(got, want Table) string {
	if g, w := strings.Join(got.Vars, " "), strings.Join(want.Vars, " "); g != w {
		return fmt.Sprintf("variables mismatch: got %q want %q", g, w)
	}
	if len(got.Result) != len(want.Result) {
		return fmt.Sprintf("row count mismatch: got %d want %d", len(got.Result), len(want.Result))
	}
	var buf bytes.Buffer
	mismatches := 0
	for i := range got.Result {
		if got.Result[i] == want.Result[i] && fmt.Sprint(got.Inputs[i]) == fmt.Sprint(want.Inputs[i]) {
			continue
		}
		mismatches++
		fmt.Fprintf(&buf, "  row %s: got=%d want=%d\n", FormatInputs(want.Inputs[i]), got.Result[i], want.Result[i])
		if mismatches >= 20 {
			fmt.Fprintf(&buf, "  ... (%d+ mismatches, truncated)\n", mismatches)
			break
		}
	}
	if mismatches == 0 {
		return ""
	}
	return fmt.Sprintf("%d row mismatches:\n%s", mismatches, buf.String())
}

// FormatInputs writes a row's inputs as a bit string.
func FormatInputs(inputs []int) string {
	var b strings.Builder
	for _, v := range inputs {
		fmt.Fprint(&b, v)
	}
	return b.String()
}

// FormatTable writes t in fixture form.
func FormatTable(t Table) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "*E %s\n", t.Expr)
	fmt.Fprintf(&buf, "*V %s\n", strings.Join(t.Vars, " "))
	for i := range t.Result {
		fmt.Fprintf(&buf, "%s %d\n", FormatInputs(t.Inputs[i]), t.Result[i])
	}
	return buf.Bytes()
}
