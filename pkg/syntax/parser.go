package syntax

import (
	"fmt"

	"github.com/prologkit/hornlog/pkg/hornlog"
)

// ParseError reports a malformed source text, with the position at which
// the problem was detected.
type ParseError struct {
	Pos Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Msg)
}

type parser struct {
	lx  *lexer
	tok token
}

func newParser(src string) (*parser, error) {
	p := &parser{lx: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	t, err := p.lx.next()
	if err != nil {
		return wrapLexError(err)
	}
	p.tok = t
	return nil
}

func wrapLexError(err error) error {
	if le, ok := err.(*lexError); ok {
		return &ParseError{Pos: le.pos, Msg: le.msg}
	}
	return err
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	if p.tok.kind != kind {
		return token{}, p.errorf("expected %s", what)
	}
	t := p.tok
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return t, nil
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &ParseError{Pos: p.tok.pos, Msg: fmt.Sprintf(format, args...)}
}

// ParseRules parses src as a sequence of clauses (spec.md §6) and returns
// the resulting Rules, in source order.
func ParseRules(src string) (hornlog.Rules, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	var rules hornlog.Rules
	for p.tok.kind != tokEOF {
		c, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		rules = append(rules, c.Lower())
	}
	return rules, nil
}

// ParseQuery parses src as a single literal (not terminated by ".") and
// returns the lowered literal along with the name-to-identifier scope
// used while lowering it, so that a caller can look up an answer
// substitution's binding for a named query variable.
func ParseQuery(src string) (hornlog.Lit, map[string]int64, error) {
	p, err := newParser(src)
	if err != nil {
		return hornlog.Lit{}, nil, err
	}
	lit, err := p.parseLit()
	if err != nil {
		return hornlog.Lit{}, nil, err
	}
	if p.tok.kind != tokEOF {
		return hornlog.Lit{}, nil, p.errorf("unexpected trailing input after query")
	}
	scope := make(map[string]int64)
	return lit.lowerLit(scope), scope, nil
}

func (p *parser) parseClause() (Clause, error) {
	head, err := p.parseLit()
	if err != nil {
		return Clause{}, err
	}

	var body []Lit
	switch p.tok.kind {
	case tokIf:
		if err := p.advance(); err != nil {
			return Clause{}, err
		}
		for {
			lit, err := p.parseLit()
			if err != nil {
				return Clause{}, err
			}
			body = append(body, lit)
			if p.tok.kind != tokComma {
				break
			}
			if err := p.advance(); err != nil {
				return Clause{}, err
			}
		}
	case tokDot:
		// fact: empty body
	default:
		return Clause{}, p.errorf("expected ':-' or '.' after clause head")
	}

	if _, err := p.expect(tokDot, "'.'"); err != nil {
		return Clause{}, err
	}

	return Clause{Head: head, Body: body}, nil
}

// parseLit parses a literal: an atom, optionally followed by a
// parenthesized, comma-separated argument list.
func (p *parser) parseLit() (Lit, error) {
	if p.tok.kind != tokAtom {
		return Lit{}, p.errorf("expected an atom")
	}
	atom := p.tok.text
	if err := p.advance(); err != nil {
		return Lit{}, err
	}

	var args []Term
	if p.tok.kind == tokLParen {
		if err := p.advance(); err != nil {
			return Lit{}, err
		}
		for {
			t, err := p.parseTerm()
			if err != nil {
				return Lit{}, err
			}
			args = append(args, t)
			if p.tok.kind == tokComma {
				if err := p.advance(); err != nil {
					return Lit{}, err
				}
				continue
			}
			break
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return Lit{}, err
		}
	}

	return Lit{Atom: atom, Args: args}, nil
}

// parseTerm parses a single term: a variable, the anonymous variable, a
// number, or a literal (possibly compound).
func (p *parser) parseTerm() (Term, error) {
	switch p.tok.kind {
	case tokAnon:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return Any{}, nil
	case tokVar:
		name := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return VarRef{Name: name}, nil
	case tokNum:
		n := p.tok.num
		if err := p.advance(); err != nil {
			return nil, err
		}
		return NumLit{Value: n}, nil
	case tokAtom:
		return p.parseLit()
	default:
		return nil, p.errorf("expected a term")
	}
}
