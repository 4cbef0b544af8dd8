// Package qmc minimizes Boolean functions into sums of products with the
// Quine-McCluskey method, resolving cyclic covers with Petrick's method.
package qmc

import (
	"math/bits"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/Aniny21/logi/internal/logic"
	"github.com/Aniny21/logi/internal/truthtable"
)

// MaxWidth is the largest number of variables that can be named A..Z.
const MaxWidth = 26

var ErrInvalidInput = errors.New("invalid minimization input")

type options struct {
	width  int
	parser *logic.Parser
}

// Option configures a minimization.
type Option func(*options)

// WithWidth fixes the number of variables. By default it is the bit length
// of the largest minterm or don't-care.
func WithWidth(n int) Option {
	return func(o *options) { o.width = n }
}

// WithParser sets the parser used to read expressions.
func WithParser(p *logic.Parser) Option {
	return func(o *options) { o.parser = p }
}

func makeOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.parser == nil {
		o.parser = logic.NewParser()
	}
	return o
}

// Result holds the intermediate and final products of one minimization.
// Primes and Essentials are dash patterns such as "1-0".
type Result struct {
	Width      int
	Primes     []string
	Essentials []string
	Covers     []Cover
}

// Solve finds every minimal cover of the function that is 1 on minterms
// and unconstrained on dontCares.
func Solve(minterms, dontCares []uint64, opts ...Option) (*Result, error) {
	o := makeOptions(opts)
	mt := mapset.NewThreadUnsafeSet(minterms...)
	dc := mapset.NewThreadUnsafeSet(dontCares...)
	if mt.Cardinality() == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "no minterms")
	}
	if both := mt.Intersect(dc); both.Cardinality() > 0 {
		overlap := both.ToSlice()
		slices.Sort(overlap)
		return nil, errors.Wrapf(ErrInvalidInput, "minterms %v are also don't-cares", overlap)
	}

	all := mt.Union(dc).ToSlice()
	slices.Sort(all)
	width := max(1, bits.Len64(all[len(all)-1]))
	if o.width > 0 {
		if o.width < width {
			return nil, errors.Wrapf(ErrInvalidInput, "minterm %d does not fit in %d bits", all[len(all)-1], o.width)
		}
		width = o.width
	}
	if width > MaxWidth {
		return nil, errors.Wrapf(ErrInvalidInput, "%d variables, at most %d supported", width, MaxWidth)
	}

	terms := make([]implicant, len(all))
	for i, m := range all {
		terms[i] = minterm(m, width)
	}
	primes := primeImplicants(terms)
	epi, remaining := essentials(coverageChart(primes, dc, width))

	res := &Result{Width: width}
	for _, p := range primes {
		res.Primes = append(res.Primes, p.pattern(width))
	}
	for _, i := range epi {
		res.Essentials = append(res.Essentials, primes[i].pattern(width))
	}
	toTerms := func(idx []int) []Term {
		out := make([]Term, len(idx))
		for i, p := range idx {
			out[i] = primes[p].term(width)
		}
		return out
	}
	if len(remaining) == 0 {
		res.Covers = []Cover{newCover(toTerms(epi))}
		return res, nil
	}
	for _, sol := range petrick(remaining) {
		chosen := append(slices.Clone(epi), sol...)
		res.Covers = append(res.Covers, newCover(toTerms(chosen)))
	}
	return res, nil
}

// MinimizeStrings returns every minimal sum of products over the letters
// A, B, C, ... (A is the most significant bit), e.g. "AB' + AC".
func MinimizeStrings(minterms, dontCares []uint64, opts ...Option) ([]string, error) {
	res, err := Solve(minterms, dontCares, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(res.Covers))
	for i, c := range res.Covers {
		out[i] = c.String()
	}
	return out, nil
}

// Minimize is MinimizeStrings with each result built as a tree over the
// variables A, B, C, ... shared by all results.
func Minimize(minterms, dontCares []uint64, opts ...Option) ([]logic.Node, error) {
	res, err := Solve(minterms, dontCares, opts...)
	if err != nil {
		return nil, err
	}
	vars := LetterVars(res.Width)
	out := make([]logic.Node, len(res.Covers))
	for i, c := range res.Covers {
		out[i] = c.Tree(vars)
	}
	return out, nil
}

// LetterVars returns fresh leaves named A, B, C, ... for width variables.
func LetterVars(width int) []*logic.Var {
	names := make([]string, width)
	for i := range names {
		names[i] = Letter(i)
	}
	return logic.NewVars(names)
}

// MinimizeExpressionStrings minimizes the function of expr. Results use
// the expression's own variable names, e.g. "B'D + BD'".
func MinimizeExpressionStrings(expr string, opts ...Option) ([]string, error) {
	o := makeOptions(opts)
	n, vars, err := parseExpression(o.parser, expr)
	if err != nil {
		return nil, err
	}
	return MinimizeTree(n, vars, opts...)
}

// MinimizeExpression is MinimizeExpressionStrings with each result built
// as a tree. The results share the expression's variables.
func MinimizeExpression(expr string, opts ...Option) ([]logic.Node, error) {
	o := makeOptions(opts)
	n, vars, err := parseExpression(o.parser, expr)
	if err != nil {
		return nil, err
	}
	return MinimizeTreeNodes(n, vars, opts...)
}

// MinimizeTree minimizes n as a function of vars, the first variable being
// the most significant bit. A function that is never true yields "0".
func MinimizeTree(n logic.Node, vars []*logic.Var, opts ...Option) ([]string, error) {
	covers, err := solveTree(n, vars, opts)
	if err != nil {
		return nil, err
	}
	if covers == nil {
		return []string{"0"}, nil
	}
	name := func(i int) string { return vars[i].Name }
	out := make([]string, len(covers))
	for i, c := range covers {
		out[i] = c.Format(name)
	}
	return out, nil
}

// MinimizeTreeNodes is MinimizeTree with each result built over vars.
func MinimizeTreeNodes(n logic.Node, vars []*logic.Var, opts ...Option) ([]logic.Node, error) {
	covers, err := solveTree(n, vars, opts)
	if err != nil {
		return nil, err
	}
	if covers == nil {
		return []logic.Node{logic.False{}}, nil
	}
	out := make([]logic.Node, len(covers))
	for i, c := range covers {
		out[i] = c.Tree(vars)
	}
	return out, nil
}

// solveTree returns the minimal covers of n, or nil if n is never true.
func solveTree(n logic.Node, vars []*logic.Var, opts []Option) ([]Cover, error) {
	if len(vars) > MaxWidth {
		return nil, errors.Wrapf(ErrInvalidInput, "%d variables, at most %d supported", len(vars), MaxWidth)
	}
	if len(vars) == 0 {
		if logic.Eval(n) {
			return []Cover{{}}, nil
		}
		return nil, nil
	}
	mt := truthtable.TrueDecimals(truthtable.Build(n, vars))
	if len(mt) == 0 {
		return nil, nil
	}
	res, err := Solve(mt, nil, append(slices.Clone(opts), WithWidth(len(vars)))...)
	if err != nil {
		return nil, err
	}
	return res.Covers, nil
}

func parseExpression(p *logic.Parser, expr string) (logic.Node, []*logic.Var, error) {
	vars, err := p.Vars(expr)
	if err != nil {
		return nil, nil, err
	}
	n, err := p.Parse(expr, logic.VarMap(vars))
	if err != nil {
		return nil, nil, err
	}
	return n, vars, nil
}
