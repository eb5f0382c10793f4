package hornlog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestUnifySoundness verifies property 1 from spec.md §8: for any successful
// unification of l and r producing substitution σ, applying σ to both l and
// r yields structurally equal terms.
func TestUnifySoundness(t *testing.T) {
	x, y := FreshVar(), FreshVar()
	l := Lit{Atom: "p", Args: []Term{x, Lit{Atom: "f", Args: []Term{y}}}}
	r := Lit{Atom: "p", Args: []Term{Num(1), Lit{Atom: "f", Args: []Term{Num(2)}}}}

	sub, ok := Unify(l, r)
	require.True(t, ok)

	ll := sub.ApplyToTerm(l)
	rr := sub.ApplyToTerm(r)
	require.True(t, ll.Equal(rr), "soundness violated: %s != %s", ll, rr)
}

// TestUnifyMostGeneral is a smoke test for property 2: unifying two already
// ground, equal terms produces an empty substitution (no bindings needed).
func TestUnifyMostGeneral(t *testing.T) {
	l := Lit{Atom: "p", Args: []Term{Num(1), Lit{Atom: "socrates"}}}
	r := Lit{Atom: "p", Args: []Term{Num(1), Lit{Atom: "socrates"}}}

	sub, ok := Unify(l, r)
	require.True(t, ok)
	require.Equal(t, 0, sub.Len())
}

func TestUnifyFunctorMismatchFails(t *testing.T) {
	_, ok := Unify(Lit{Atom: "p", Args: []Term{Num(1)}}, Lit{Atom: "q", Args: []Term{Num(1)}})
	require.False(t, ok)
}

func TestUnifyArityMismatchFails(t *testing.T) {
	_, ok := Unify(Lit{Atom: "p", Args: []Term{Num(1)}}, Lit{Atom: "p", Args: []Term{Num(1), Num(2)}})
	require.False(t, ok)
}

func TestUnifyNumNum(t *testing.T) {
	_, ok := Unify(Num(5), Num(5))
	require.True(t, ok)

	_, ok = Unify(Num(5), Num(6))
	require.False(t, ok)
}

func TestUnifyNumAtomFails(t *testing.T) {
	_, ok := Unify(Num(5), Lit{Atom: "five"})
	require.False(t, ok)
}

func TestUnifyVarVarBinds(t *testing.T) {
	x, y := FreshVar(), FreshVar()
	sub, ok := Unify(x, y)
	require.True(t, ok)
	require.Equal(t, 1, sub.Len())
}

func TestUnifyVarWithCompound(t *testing.T) {
	x := FreshVar()
	compound := Lit{Atom: "f", Args: []Term{Num(1), Num(2)}}

	sub, ok := Unify(x, compound)
	require.True(t, ok)

	got, found := sub.Get(x.ID())
	require.True(t, found)
	require.True(t, got.Equal(compound))
}

// TestUnifyNoOccursCheck documents that this engine, like the reference
// implementation, does not perform an occurs check: binding a variable to a
// term that (syntactically) contains itself succeeds rather than failing,
// leaving a cyclic binding that ApplyToTerm cannot fully expand.
func TestUnifyNoOccursCheck(t *testing.T) {
	x := FreshVar()
	cyclic := Lit{Atom: "f", Args: []Term{x}}

	_, ok := Unify(x, cyclic)
	require.True(t, ok, "reference semantics: no occurs check, so this must succeed")
}

func TestUnifyArgsSeeEarlierBindings(t *testing.T) {
	x := FreshVar()
	l := Lit{Atom: "p", Args: []Term{x, x}}
	r := Lit{Atom: "p", Args: []Term{Num(3), Num(3)}}

	_, ok := Unify(l, r)
	require.True(t, ok)

	r2 := Lit{Atom: "p", Args: []Term{Num(3), Num(4)}}
	_, ok = Unify(l, r2)
	require.False(t, ok, "second occurrence of x must be consistent with the first")
}
