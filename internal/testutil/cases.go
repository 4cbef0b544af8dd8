package testutil

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// MinimizeCase is one line of minimize.txt. Exactly one of Minterms or
// Expr is set.
type MinimizeCase struct {
	Line      int
	Minterms  []uint64
	DontCares []uint64
	Expr      string
	Want      []string
}

func (c MinimizeCase) Name() string {
	if c.Expr != "" {
		return c.Expr
	}
	return fmt.Sprintf("mt%v_dc%v", c.Minterms, c.DontCares)
}

func ParseMinimizeCases(data []byte) ([]MinimizeCase, error) {
	var cases []MinimizeCase
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		input, want, ok := strings.Cut(line, "=>")
		if !ok {
			return nil, fmt.Errorf("line %d: missing =>", lineNo)
		}
		c := MinimizeCase{Line: lineNo}
		for _, w := range strings.Split(want, ";") {
			c.Want = append(c.Want, strings.TrimSpace(w))
		}
		input = strings.TrimSpace(input)
		switch {
		case strings.HasPrefix(input, "expr "):
			c.Expr = strings.TrimSpace(strings.TrimPrefix(input, "expr "))
		case strings.HasPrefix(input, "mt "):
			fields := strings.Fields(input)
			var err error
			if c.Minterms, err = ParseUints(fields[1]); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if len(fields) == 4 && fields[2] == "dc" {
				if c.DontCares, err = ParseUints(fields[3]); err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
			} else if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: invalid input %q", lineNo, input)
			}
		default:
			return nil, fmt.Errorf("line %d: invalid input %q", lineNo, input)
		}
		cases = append(cases, c)
	}
	return cases, scanner.Err()
}

// ParseUints reads a comma separated list such as "4,8,10".
func ParseUints(s string) ([]uint64, error) {
	var out []uint64
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
