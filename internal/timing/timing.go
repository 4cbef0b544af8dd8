// Package timing samples signals through a truth table and draws the
// resulting waveforms.
package timing

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/Aniny21/logi/internal/truthtable"
)

var (
	ErrLength    = errors.New("signals have different lengths")
	ErrSignals   = errors.New("signal count does not match the variables")
	ErrNoMatch   = errors.New("no truth table row matches the sample")
	ErrNoSignals = errors.New("no signals")
)

// Diagram is a set of sampled input signals, one per table variable in
// table order, together with the output they produce.
type Diagram struct {
	table   truthtable.Table
	signals [][]int
	output  []int
}

// New validates the signals against table and computes the output.
func New(table truthtable.Table, signals ...[]int) (*Diagram, error) {
	if len(signals) == 0 {
		return nil, ErrNoSignals
	}
	n := len(signals[0])
	for i, s := range signals {
		if len(s) != n {
			return nil, errors.Wrapf(ErrLength, "signal %d has %d samples, want %d", i, len(s), n)
		}
	}
	if len(signals) != len(table.Vars) {
		return nil, errors.Wrapf(ErrSignals, "%d signals for %d variables", len(signals), len(table.Vars))
	}
	d := &Diagram{table: table, signals: signals, output: make([]int, n)}
	for t := 0; t < n; t++ {
		r, ok := table.Lookup(d.sample(t))
		if !ok {
			return nil, errors.Wrapf(ErrNoMatch, "time %d: inputs %v", t, d.sample(t))
		}
		d.output[t] = r
	}
	return d, nil
}

// Output maps each sample instant through table.
func Output(table truthtable.Table, signals ...[]int) ([]int, error) {
	d, err := New(table, signals...)
	if err != nil {
		return nil, err
	}
	return d.Output(), nil
}

func (d *Diagram) sample(t int) []int {
	in := make([]int, len(d.signals))
	for j, s := range d.signals {
		in[j] = s[t]
	}
	return in
}

// Output returns the output signal.
func (d *Diagram) Output() []int { return append([]int(nil), d.output...) }

// Draw writes the diagram with time running downwards. The output column
// "@" comes first, then the inputs from last to first. A rising or
// falling edge is marked with an overline.
func (d *Diagram) Draw(w io.Writer) error {
	vars := make([]string, len(d.table.Vars))
	for i, v := range d.table.Vars {
		vars[len(vars)-1-i] = v
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Time |  @  |  %s  |\n", strings.Join(vars, "  |  "))
	b.WriteString(strings.Repeat("-", 12+6*len(vars)))
	b.WriteByte('\n')
	for t := range d.output {
		fmt.Fprintf(&b, "  %d  |", t)
		b.WriteString(cell(d.output, t))
		for j := len(d.signals) - 1; j >= 0; j-- {
			b.WriteString(cell(d.signals[j], t))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func cell(signal []int, t int) string {
	mark := " "
	if t > 0 && signal[t-1] != signal[t] {
		mark = "‾"
	}
	if signal[t] != 0 {
		return "  " + mark + "┃ |"
	}
	return " ┃" + mark + "  |"
}
