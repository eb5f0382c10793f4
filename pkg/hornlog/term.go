package hornlog

import (
	"regexp"
	"strconv"
	"strings"
)

// Term is the immutable, tagged-variant representation of a value in a
// clause: a compound or 0-ary literal (Lit), a numeric constant (Num), or
// a logic variable (Var). Terms are never mutated after construction;
// any number of clauses, substitutions, or answers may share one.
//
// Only Lit, Num, and Var implement Term — the termTag method is
// unexported so the set is closed.
type Term interface {
	termTag()

	// String returns a syntax that, read back through the syntax package's
	// parser, reproduces a structurally equal term (variables excepted:
	// a printed variable such as _3 reads back as a new variable, not as
	// the same identifier).
	String() string

	// Equal reports whether two terms are structurally equal: same tag,
	// and recursively equal payload. This is plain equality, not
	// unification — see Unify for that.
	Equal(other Term) bool
}

// Lit is a literal: a pair (Atom, Args) where Args is the ordered sequence
// of arguments (arity = len(Args)). Lit doubles as both the Literal type
// used for clause heads and bodies (§3's "Literal") and the compound-term
// case of Term (§3's "Lit(literal)") — in Go there is no need for the
// Rust original's separate Term::Lit(Lit) wrapper, since Lit already
// satisfies the Term interface directly.
type Lit struct {
	Atom string
	Args []Term
}

func (Lit) termTag() {}

// unquotedAtom matches atom names that may be printed bare, per spec.md §6.
var unquotedAtom = regexp.MustCompile(`^[a-z.][A-Za-z_.]*$`)

// String renders the literal using the quoting rules from spec.md §6 /
// original_source/src/ast.rs's Display for Lit: bare if the atom matches
// the unquoted-atom grammar, single-quoted otherwise, or double-quoted if
// the atom itself contains a single quote. The result is re-parseable by
// the syntax package, except for the one-character atom "." (printed bare,
// but read back as a clause terminator) and atoms containing both quote
// characters (there is no escape syntax).
func (l Lit) String() string {
	var b strings.Builder
	switch {
	case unquotedAtom.MatchString(l.Atom):
		b.WriteString(l.Atom)
	case strings.Contains(l.Atom, "'"):
		b.WriteByte('"')
		b.WriteString(l.Atom)
		b.WriteByte('"')
	default:
		b.WriteByte('\'')
		b.WriteString(l.Atom)
		b.WriteByte('\'')
	}
	if len(l.Args) > 0 {
		b.WriteByte('(')
		for i, a := range l.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteByte(')')
	}
	return b.String()
}

// Equal reports structural equality: same atom, same arity, and every
// argument pairwise equal.
func (l Lit) Equal(other Term) bool {
	o, ok := other.(Lit)
	if !ok || l.Atom != o.Atom || len(l.Args) != len(o.Args) {
		return false
	}
	for i, a := range l.Args {
		if !a.Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// Functor returns the (atom, arity) pair identifying the predicate this
// literal invokes.
func (l Lit) Functor() Functor {
	return Functor{Atom: l.Atom, Arity: len(l.Args)}
}

// Functor identifies a predicate or compound-term shape by name and arity.
// It is comparable and usable as a map key, which is how Env indexes
// clauses.
type Functor struct {
	Atom  string
	Arity int
}

// Num is a 32-bit unsigned numeric constant.
type Num uint32

func (Num) termTag() {}

func (n Num) String() string {
	return strconv.FormatUint(uint64(n), 10)
}

// Equal reports whether other is a Num with the same value.
func (n Num) Equal(other Term) bool {
	o, ok := other.(Num)
	return ok && n == o
}

// Var is a logic variable, identified by a non-negative integer drawn from
// Gensym. Two variables compare equal iff their identifiers are equal.
type Var int64

func (Var) termTag() {}

func (v Var) String() string {
	return "_" + strconv.FormatInt(int64(v), 10)
}

// Equal reports whether other is a Var with the same identifier.
func (v Var) Equal(other Term) bool {
	o, ok := other.(Var)
	return ok && v == o
}

// ID returns the variable's underlying identifier.
func (v Var) ID() int64 {
	return int64(v)
}

// TrueLit is the distinguished 0-ary literal that solveInternal
// short-circuits to success (spec.md §4.5). It is not otherwise special:
// a knowledge base is free to also define rules for true/0, but they are
// never reached, since solveInternal returns before consulting the clause
// index.
var TrueLit = Lit{Atom: "true", Args: nil}
