package syntax

import "github.com/prologkit/hornlog/pkg/hornlog"

// Term is the concrete-syntax-tree term produced by the parser, before
// variable names have been resolved into fresh identifiers. It mirrors
// original_source/src/cst.rs's Term, including the Any case for the
// anonymous variable.
type Term interface {
	lower(scope map[string]int64) hornlog.Term
}

// Any is the anonymous variable "_": every occurrence lowers to its own
// fresh Var, never shared with any other occurrence (spec.md §6).
type Any struct{}

func (Any) lower(map[string]int64) hornlog.Term {
	return hornlog.FreshVar()
}

// VarRef is a named variable reference. Within one clause, repeated
// VarRef values with the same Name lower to the same hornlog.Var.
type VarRef struct {
	Name string
}

func (v VarRef) lower(scope map[string]int64) hornlog.Term {
	id, ok := scope[v.Name]
	if !ok {
		id = hornlog.Gensym()
		scope[v.Name] = id
	}
	return hornlog.Var(id)
}

// NumLit is a numeric constant.
type NumLit struct {
	Value uint32
}

func (n NumLit) lower(map[string]int64) hornlog.Term {
	return hornlog.Num(n.Value)
}

// Lit is a literal: an atom plus its arguments, used both as a standalone
// clause head/body element and as a compound subterm.
type Lit struct {
	Atom string
	Args []Term
}

func (l Lit) lower(scope map[string]int64) hornlog.Term {
	return l.lowerLit(scope)
}

// lowerLit lowers l to a hornlog.Lit directly, for positions (clause
// heads and body conjuncts) where a literal rather than a general Term is
// required.
func (l Lit) lowerLit(scope map[string]int64) hornlog.Lit {
	args := make([]hornlog.Term, len(l.Args))
	for i, a := range l.Args {
		args[i] = a.lower(scope)
	}
	return hornlog.Lit{Atom: l.Atom, Args: args}
}

// Clause is a parsed clause: a head literal plus an ordered body of
// literals (empty body = fact).
type Clause struct {
	Head Lit
	Body []Lit
}

// Lower resolves every variable name in the clause to a fresh hornlog.Var,
// shared between head and body within the clause (spec.md §6's clause
// scoping rule), and returns the lowered hornlog.Clause.
func (c Clause) Lower() hornlog.Clause {
	scope := make(map[string]int64)
	head := c.Head.lowerLit(scope)
	body := make([]hornlog.Lit, len(c.Body))
	for i, l := range c.Body {
		body[i] = l.lowerLit(scope)
	}
	return hornlog.Clause{Head: head, Body: body}
}
