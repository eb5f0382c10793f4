package hornlog

// Unify computes the most general unifier of l and r, with no occurs
// check (rational-tree semantics are accepted — see spec.md §9). It
// returns the unifier and true on success, or an unspecified substitution
// and false if the terms cannot be unified.
//
// Rules (spec.md §4.4):
//   - Var(v), any r: bind v -> r.
//   - any l, Var(v): bind v -> l (only reached once l is known not to be
//     a variable).
//   - Lit(a), Lit(b): fail if the functors differ; otherwise unify
//     arguments pairwise, left to right, re-applying the
//     growing substitution to each pair before recursing so that
//     bindings made by earlier arguments propagate to later ones.
//   - Num(n), Num(m): succeed iff n == m.
//   - anything else: fail.
func Unify(l, r Term) (Subst, bool) {
	s := Subst{m: make(map[int64]Term)}
	if !unify(l, r, &s) {
		return Subst{}, false
	}
	return s, true
}

func unify(l, r Term, s *Subst) bool {
	if lv, ok := l.(Var); ok {
		s.push(lv.ID(), r)
		return true
	}
	if rv, ok := r.(Var); ok {
		s.push(rv.ID(), l)
		return true
	}
	switch lt := l.(type) {
	case Lit:
		rt, ok := r.(Lit)
		if !ok || lt.Atom != rt.Atom || len(lt.Args) != len(rt.Args) {
			return false
		}
		for i := range lt.Args {
			la := s.ApplyToTerm(lt.Args[i])
			ra := s.ApplyToTerm(rt.Args[i])
			if !unify(la, ra, s) {
				return false
			}
		}
		return true
	case Num:
		rt, ok := r.(Num)
		return ok && lt == rt
	default:
		return false
	}
}
