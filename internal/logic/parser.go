package logic

// Parser turns expression text into trees. A Parser holds only
// configuration and may be reused.
type Parser struct {
	opts options
}

func NewParser(opts ...Option) *Parser {
	return &Parser{opts: makeOptions(opts)}
}

// Parse parses expr with a default Parser and fresh variables.
func Parse(expr string, opts ...Option) (Node, error) {
	return NewParser(opts...).Parse(expr, nil)
}

// Tokens returns the operator symbols the parser was configured with.
func (p *Parser) Tokens() Tokens { return p.opts.tokens }

func (p *Parser) tokenize(expr string) ([]Token, []string, error) {
	if p.opts.strict {
		return Tokenize(expr, WithTokens(p.opts.tokens), Strict())
	}
	return Tokenize(expr, WithTokens(p.opts.tokens))
}

// Vars returns one fresh leaf for every variable of expr, in order of first
// appearance.
func (p *Parser) Vars(expr string) ([]*Var, error) {
	_, names, err := p.tokenize(expr)
	if err != nil {
		return nil, err
	}
	return NewVars(names), nil
}

// Parse builds the tree for expr. Variables are resolved by name in vars;
// when vars is empty every variable of expr gets a fresh leaf. Passing the
// same map to several parses makes the trees share their leaves.
func (p *Parser) Parse(expr string, vars map[string]*Var) (Node, error) {
	tokens, names, err := p.tokenize(expr)
	if err != nil {
		return nil, err
	}
	if len(vars) == 0 {
		vars = VarMap(NewVars(names))
	}
	rpn, err := toRPN(expr, tokens)
	if err != nil {
		return nil, err
	}
	return reduce(expr, rpn, vars)
}

type opInfo struct {
	prec  int
	right bool
}

var opTable = map[TokenKind]opInfo{
	TokNot: {prec: PriorityNot, right: true},
	TokAnd: {prec: PriorityAnd},
	TokXor: {prec: PriorityXor},
	TokOr:  {prec: PriorityOr},
}

// toRPN reorders tokens into reverse Polish notation. Each parenthesis depth
// has its own operator stack; closing a group flushes its stack entirely.
func toRPN(expr string, tokens []Token) ([]Token, error) {
	var out []Token
	stacks := [][]Token{nil}
	depth := 0
	for _, tok := range tokens {
		switch tok.Kind {
		case TokVar, TokTrue, TokFalse:
			out = append(out, tok)
		case TokLParen:
			depth++
			stacks = append(stacks[:depth], nil)
		case TokRParen:
			out = flush(out, stacks[depth])
			stacks[depth] = nil
			depth--
			if depth < 0 {
				return nil, parseErrorf(expr, ErrUnbalanced, "too many closing parentheses")
			}
		case TokNot, TokAnd, TokXor, TokOr:
			op := opTable[tok.Kind]
			st := stacks[depth]
			if n := len(st); n == 0 || op.prec > opTable[st[n-1].Kind].prec ||
				(op.prec == opTable[st[n-1].Kind].prec && op.right) {
				stacks[depth] = append(st, tok)
				continue
			}
			for len(st) > 0 {
				top := st[len(st)-1]
				if opTable[top.Kind].prec < op.prec {
					break
				}
				out = append(out, top)
				st = st[:len(st)-1]
			}
			stacks[depth] = append(st, tok)
		default:
			return nil, parseErrorf(expr, ErrUnknownToken, "illegal token %q", tok.Text)
		}
	}
	if depth > 0 {
		return nil, parseErrorf(expr, ErrUnbalanced, "%d unclosed parentheses", depth)
	}
	return flush(out, stacks[0]), nil
}

func flush(out, stack []Token) []Token {
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, stack[i])
	}
	return out
}

// reduce evaluates the RPN stream into a tree. A binary operator whose left
// operand is already the same operation gains another child instead of a
// new nested node.
func reduce(expr string, rpn []Token, vars map[string]*Var) (Node, error) {
	var stack []Node
	pop := func() (Node, bool) {
		if len(stack) == 0 {
			return nil, false
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n, true
	}
	for _, tok := range rpn {
		switch tok.Kind {
		case TokVar:
			v, ok := vars[tok.Text]
			if !ok {
				return nil, parseErrorf(expr, ErrUnknownToken, "variable %q is not defined", tok.Text)
			}
			stack = append(stack, v)
		case TokTrue:
			stack = append(stack, True{})
		case TokFalse:
			stack = append(stack, False{})
		case TokNot:
			x, ok := pop()
			if !ok {
				return nil, parseErrorf(expr, ErrIncomplete, "%q has no operand", tok.Text)
			}
			stack = append(stack, NewNot(x))
		case TokAnd, TokOr, TokXor:
			right, ok1 := pop()
			left, ok2 := pop()
			if !ok1 || !ok2 {
				return nil, parseErrorf(expr, ErrIncomplete, "%q is missing an operand", tok.Text)
			}
			stack = append(stack, combine(tok.Kind, left, right))
		default:
			return nil, parseErrorf(expr, ErrUnknownToken, "%q", tok.Text)
		}
	}
	if len(stack) != 1 {
		return nil, parseErrorf(expr, ErrIncomplete, "%d operands left after reduction", len(stack))
	}
	return stack[0], nil
}

func combine(kind TokenKind, left, right Node) Node {
	switch kind {
	case TokAnd:
		if l, ok := left.(*And); ok {
			l.Args = append(l.Args, right)
			return l
		}
		return NewAnd(left, right)
	case TokOr:
		if l, ok := left.(*Or); ok {
			l.Args = append(l.Args, right)
			return l
		}
		return NewOr(left, right)
	default:
		if l, ok := left.(*Xor); ok {
			l.Args = append(l.Args, right)
			return l
		}
		return NewXor(left, right)
	}
}
