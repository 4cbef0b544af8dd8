package truthtable

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TrueBinaries returns the inputs of every row whose result is 1, each
// written as a binary string in variable order.
func TrueBinaries(t Table) []string { return binaries(t, 1) }

// FalseBinaries returns the inputs of every row whose result is 0.
func FalseBinaries(t Table) []string { return binaries(t, 0) }

// TrueDecimals returns the minterms of t.
func TrueDecimals(t Table) []uint64 { return decimals(t, 1) }

// FalseDecimals returns the maxterms of t.
func FalseDecimals(t Table) []uint64 { return decimals(t, 0) }

func binaries(t Table, result int) []string {
	var out []string
	for _, r := range t.Rows {
		if r.Result != result {
			continue
		}
		var b strings.Builder
		for _, in := range r.Inputs {
			b.WriteString(strconv.Itoa(in))
		}
		out = append(out, b.String())
	}
	return out
}

func decimals(t Table, result int) []uint64 {
	var out []uint64
	for _, r := range t.Rows {
		if r.Result != result {
			continue
		}
		var m uint64
		for _, in := range r.Inputs {
			m = m<<1 | uint64(in)
		}
		out = append(out, m)
	}
	return out
}

// BinToDec parses a binary string such as "0101".
func BinToDec(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 2, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "binary %q", s)
	}
	return v, nil
}

// DecToBin formats a decimal string in binary without leading zeros.
func DecToBin(s string) (string, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return "", errors.Wrapf(err, "decimal %q", s)
	}
	return strconv.FormatUint(v, 2), nil
}
