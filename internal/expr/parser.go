package expr

import (
	"fmt"
	"strings"
)

// Expression is a compiled formula in the variable x.
type Expression struct {
	source string
	root   node
}

// Parse compiles src. The grammar, lowest precedence first:
//
//	expr  := term (('+' | '-') term)*
//	term  := unary (('*' | '/' | '%') unary)*
//	unary := ('+' | '-') unary | power
//	power := atom ('^' unary)?
//	atom  := number | name | name '(' expr ')' | '(' expr ')'
//
// '**' is accepted as a synonym for '^'. Exponentiation is right-associative
// and binds tighter than a leading minus, so -x^2 is -(x^2).
func Parse(src string) (*Expression, error) {
	if strings.TrimSpace(src) == "" {
		return nil, &SyntaxError{Pos: 0, Msg: "empty expression"}
	}

	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.unexpected(tok)
	}

	return &Expression{source: src, root: root}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(src string) *Expression {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return e
}

// Eval evaluates the expression with x bound to the given value.
func (e *Expression) Eval(x float64) (float64, error) {
	return e.root.eval(x)
}

// String returns the source text the expression was compiled from.
func (e *Expression) String() string {
	return e.source
}

// Eval parses src and evaluates it once.
func Eval(src string, x float64) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval(x)
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) isOp(ops ...string) bool {
	tok := p.peek()
	if tok.kind != tokOp {
		return false
	}
	for _, op := range ops {
		if tok.text == op {
			return true
		}
	}
	return false
}

func (p *parser) unexpected(tok token) error {
	if tok.kind == tokEOF {
		return &SyntaxError{Pos: tok.pos, Msg: "unexpected end of input"}
	}
	return &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("unexpected %s %q", tok.kind, tok.text)}
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.isOp("+", "-") {
		op := p.next().text[0]
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.isOp("*", "/", "%") {
		op := p.next().text[0]
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.isOp("-") {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return negNode{operand: operand}, nil
	}
	if p.isOp("+") {
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.isOp("^") {
		p.next()
		// The exponent may carry its own sign: 2^-1.
		exponent, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return binaryNode{op: '^', left: base, right: exponent}, nil
	}
	return base, nil
}

func (p *parser) parseAtom() (node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		return numberNode{value: tok.num}, nil

	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, &SyntaxError{Pos: closing.pos, Msg: "missing ')'"}
		}
		return inner, nil

	case tokIdent:
		return p.parseName(tok)
	}
	return nil, p.unexpected(tok)
}

func (p *parser) parseName(tok token) (node, error) {
	name := canonicalName(tok.text)

	if p.peek().kind == tokLParen {
		fn, ok := functions[name]
		if !ok {
			return nil, &UnknownNameError{Name: tok.text, Pos: tok.pos}
		}
		p.next()
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, &SyntaxError{Pos: closing.pos, Msg: fmt.Sprintf("%s takes exactly one argument", name)}
		}
		return callNode{fn: fn, arg: arg}, nil
	}

	// The variable is never namespaced: math.x is not a thing.
	if tok.text == VarName {
		return varNode{}, nil
	}
	if v, ok := constants[name]; ok {
		return numberNode{value: v}, nil
	}
	if _, ok := functions[name]; ok {
		return nil, &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("function %s must be called with an argument", name)}
	}
	return nil, &UnknownNameError{Name: tok.text, Pos: tok.pos}
}
