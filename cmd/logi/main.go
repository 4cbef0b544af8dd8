package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Aniny21/logi"
	"github.com/Aniny21/logi/internal/logic"
	"github.com/Aniny21/logi/internal/qmc"
	"github.com/Aniny21/logi/internal/timing"
	"github.com/Aniny21/logi/internal/truthtable"
	"github.com/Aniny21/logi/internal/verify"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}

	var err error
	verbose := false
	switch args[0] {
	case "parse":
		verbose, err = cmdParse(args[1:], stdout)
	case "table":
		verbose, err = cmdTable(args[1:], stdout)
	case "minimize":
		verbose, err = cmdMinimize(args[1:], stdout)
	case "timing":
		verbose, err = cmdTiming(args[1:], stdout)
	case "version":
		fmt.Fprintln(stdout, logi.Version())
	case "help", "-h", "--help":
		usage(stdout)
	default:
		fmt.Fprintln(stderr, "unknown command:", args[0])
		usage(stderr)
		return 2
	}
	if err == nil {
		return 0
	}
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if verbose {
		fmt.Fprintf(stderr, "error: %+v\n", err)
	} else {
		fmt.Fprintln(stderr, "error:", err)
	}
	if errors.Is(err, errUsage) {
		return 2
	}
	return 1
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "logi - Boolean expression parser and minimizer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  logi parse [-config f.toml] [-strict] [-tex|-object] <expr>")
	fmt.Fprintln(w, "  logi table [-config f.toml] [-count] <expr>")
	fmt.Fprintln(w, "  logi minimize [-dc 9,14] [-width n] [-strings] [-verify] (<expr> | -mt 4,8,10)")
	fmt.Fprintln(w, "  logi timing -signal A=0,0,1,1 -signal B=0,1,0,1 <expr>")
	fmt.Fprintln(w, "  logi version")
}

// common holds the flags shared by every expression command.
type common struct {
	config  string
	strict  bool
	verbose bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", "", "TOML file with operator symbols")
	fs.BoolVar(&c.strict, "strict", false, "reject digits and underscores in expressions")
	fs.BoolVar(&c.verbose, "v", false, "print errors with stack traces")
}

func (c *common) parser() (*logic.Parser, error) {
	var opts []logic.Option
	if c.config != "" {
		tokens, err := logic.LoadTokens(c.config)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logic.WithTokens(tokens))
	}
	if c.strict {
		opts = append(opts, logic.Strict())
	}
	return logic.NewParser(opts...), nil
}

// parseArgs lets flags and expression words interleave. The words are
// joined back into a single expression.
func parseArgs(fs *flag.FlagSet, args []string) (string, error) {
	var words []string
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return "", err
			}
			return "", errors.Wrap(errUsage, err.Error())
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		words = append(words, rest[0])
		args = rest[1:]
	}
	return strings.Join(words, " "), nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func cmdParse(args []string, w io.Writer) (bool, error) {
	var c common
	fs := newFlagSet("parse")
	c.register(fs)
	tex := fs.Bool("tex", false, "render as TeX")
	object := fs.Bool("object", false, "render in constructor form")
	expr, err := parseArgs(fs, args)
	if err != nil {
		return c.verbose, err
	}
	if expr == "" {
		return c.verbose, errors.Wrap(errUsage, "parse requires an expression")
	}
	if *tex && *object {
		return c.verbose, errors.Wrap(errUsage, "-tex and -object are exclusive")
	}
	p, err := c.parser()
	if err != nil {
		return c.verbose, err
	}
	n, err := p.Parse(expr, nil)
	if err != nil {
		return c.verbose, err
	}
	switch {
	case *tex:
		fmt.Fprintln(w, logic.TeX(n))
	case *object:
		fmt.Fprintln(w, logic.Object(n))
	default:
		fmt.Fprintln(w, logic.Format(n, p.Tokens()))
	}
	return c.verbose, nil
}

func cmdTable(args []string, w io.Writer) (bool, error) {
	var c common
	fs := newFlagSet("table")
	c.register(fs)
	count := fs.Bool("count", false, "print only the number of true rows")
	expr, err := parseArgs(fs, args)
	if err != nil {
		return c.verbose, err
	}
	if expr == "" {
		return c.verbose, errors.Wrap(errUsage, "table requires an expression")
	}
	p, err := c.parser()
	if err != nil {
		return c.verbose, err
	}
	if *count {
		vars, err := p.Vars(expr)
		if err != nil {
			return c.verbose, err
		}
		n, err := p.Parse(expr, logic.VarMap(vars))
		if err != nil {
			return c.verbose, err
		}
		models, err := verify.Satcount(n, vars)
		if err != nil {
			return c.verbose, err
		}
		fmt.Fprintln(w, models)
		return c.verbose, nil
	}
	t, err := truthtable.Parse(p, expr)
	if err != nil {
		return c.verbose, err
	}
	fmt.Fprint(w, t.String())
	return c.verbose, nil
}

func cmdMinimize(args []string, w io.Writer) (bool, error) {
	var c common
	fs := newFlagSet("minimize")
	c.register(fs)
	mtFlag := fs.String("mt", "", "comma separated minterms")
	dcFlag := fs.String("dc", "", "comma separated don't-cares")
	width := fs.Int("width", 0, "number of variables for -mt")
	asStrings := fs.Bool("strings", false, "print covers with postfix complements")
	check := fs.Bool("verify", false, "check every cover against the input")
	expr, err := parseArgs(fs, args)
	if err != nil {
		return c.verbose, err
	}
	p, err := c.parser()
	if err != nil {
		return c.verbose, err
	}
	opts := []qmc.Option{qmc.WithParser(p)}

	switch {
	case expr != "" && *mtFlag != "":
		return c.verbose, errors.Wrap(errUsage, "give either an expression or -mt")
	case expr != "":
		if *dcFlag != "" || *width != 0 {
			return c.verbose, errors.Wrap(errUsage, "-dc and -width apply to -mt only")
		}
		return c.verbose, minimizeExpression(w, p, expr, *asStrings, *check)
	case *mtFlag != "":
		mt, err := parseList(*mtFlag)
		if err != nil {
			return c.verbose, errors.Wrap(errUsage, err.Error())
		}
		dc, err := parseList(*dcFlag)
		if err != nil {
			return c.verbose, errors.Wrap(errUsage, err.Error())
		}
		if *width != 0 {
			opts = append(opts, qmc.WithWidth(*width))
		}
		return c.verbose, minimizeMinterms(w, mt, dc, *check, opts)
	}
	return c.verbose, errors.Wrap(errUsage, "minimize requires an expression or -mt")
}

func minimizeExpression(w io.Writer, p *logic.Parser, expr string, asStrings, check bool) error {
	vars, err := p.Vars(expr)
	if err != nil {
		return err
	}
	src, err := p.Parse(expr, logic.VarMap(vars))
	if err != nil {
		return err
	}
	nodes, err := qmc.MinimizeTreeNodes(src, vars, qmc.WithParser(p))
	if err != nil {
		return err
	}
	strs, err := qmc.MinimizeTree(src, vars, qmc.WithParser(p))
	if err != nil {
		return err
	}
	for i, n := range nodes {
		if check {
			if err := checkEquivalent(src, n, vars); err != nil {
				return errors.Wrapf(err, "cover %s", strs[i])
			}
		}
		if asStrings {
			fmt.Fprintln(w, strs[i])
			continue
		}
		fmt.Fprintln(w, logic.Format(n, p.Tokens()))
	}
	return nil
}

// checkEquivalent runs both the SAT and the BDD comparison of src and n.
func checkEquivalent(src, n logic.Node, vars []*logic.Var) error {
	if m := verify.Counterexample(src, n); m != nil {
		return errors.Errorf("differs from the input at %v", m)
	}
	same, err := verify.EquivalentBDD(src, n, vars)
	if err != nil {
		return err
	}
	if !same {
		return errors.New("bdd disagrees with the input")
	}
	return nil
}

func minimizeMinterms(w io.Writer, mt, dc []uint64, check bool, opts []qmc.Option) error {
	res, err := qmc.Solve(mt, dc, opts...)
	if err != nil {
		return err
	}
	vars := qmc.LetterVars(res.Width)
	for _, cov := range res.Covers {
		if check {
			if err := checkCover(cov.Tree(vars), vars, mt, dc); err != nil {
				return errors.Wrapf(err, "cover %s", cov)
			}
		}
		fmt.Fprintln(w, cov.String())
	}
	return nil
}

// checkCover confirms that n is true on every minterm and false outside
// the minterms and don't-cares, and that the BDD model count agrees.
func checkCover(n logic.Node, vars []*logic.Var, mt, dc []uint64) error {
	allowed := make(map[uint64]bool, len(mt)+len(dc))
	for _, m := range dc {
		allowed[m] = true
	}
	for _, m := range mt {
		allowed[m] = true
	}
	got := truthtable.TrueDecimals(truthtable.Build(n, vars))
	on := make(map[uint64]bool, len(got))
	for _, m := range got {
		if !allowed[m] {
			return errors.Errorf("true on %d", m)
		}
		on[m] = true
	}
	for _, m := range mt {
		if !on[m] {
			return errors.Errorf("misses minterm %d", m)
		}
	}
	count, err := verify.Satcount(n, vars)
	if err != nil {
		return err
	}
	if !count.IsInt64() || count.Int64() != int64(len(got)) {
		return errors.Errorf("bdd counts %s models, table has %d", count, len(got))
	}
	return nil
}

func parseList(s string) ([]uint64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []uint64
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad number %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

// signalFlag collects repeated -signal NAME=0,1,... arguments.
type signalFlag map[string][]int

func (s signalFlag) String() string { return fmt.Sprint(map[string][]int(s)) }

func (s signalFlag) Set(v string) error {
	name, samples, ok := strings.Cut(v, "=")
	if !ok || name == "" {
		return errors.Errorf("signal %q is not NAME=0,1,...", v)
	}
	if _, dup := s[name]; dup {
		return errors.Errorf("signal %s given twice", name)
	}
	var bits []int
	for _, f := range strings.Split(samples, ",") {
		switch strings.TrimSpace(f) {
		case "0":
			bits = append(bits, 0)
		case "1":
			bits = append(bits, 1)
		default:
			return errors.Errorf("signal %s: sample %q is not 0 or 1", name, f)
		}
	}
	s[name] = bits
	return nil
}

func cmdTiming(args []string, w io.Writer) (bool, error) {
	var c common
	fs := newFlagSet("timing")
	c.register(fs)
	signals := signalFlag{}
	fs.Var(signals, "signal", "input waveform NAME=0,1,...; repeat per variable")
	expr, err := parseArgs(fs, args)
	if err != nil {
		return c.verbose, err
	}
	if expr == "" {
		return c.verbose, errors.Wrap(errUsage, "timing requires an expression")
	}
	p, err := c.parser()
	if err != nil {
		return c.verbose, err
	}
	t, err := truthtable.Parse(p, expr)
	if err != nil {
		return c.verbose, err
	}
	ordered := make([][]int, 0, len(t.Vars))
	for _, name := range t.Vars {
		s, ok := signals[name]
		if !ok {
			return c.verbose, errors.Wrapf(errUsage, "no -signal for variable %s", name)
		}
		ordered = append(ordered, s)
	}
	if len(signals) != len(t.Vars) {
		return c.verbose, errors.Wrapf(errUsage, "%d signals for %d variables", len(signals), len(t.Vars))
	}
	d, err := timing.New(t, ordered...)
	if err != nil {
		return c.verbose, err
	}
	return c.verbose, d.Draw(w)
}
