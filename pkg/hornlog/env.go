package hornlog

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// Env is the resolution driver: it indexes a clause database by functor
// and exposes Solve/SolveAll, which return lazy answer sequences over the
// database and a caller-supplied Hook. Its clause index and hook are
// read-only after construction, so a single Env may be shared across
// concurrently running solves (spec.md §5); only the logger can be
// replaced afterwards, via SetLogger.
type Env struct {
	index  map[Functor][]Clause
	hook   Hook
	logger hclog.Logger
}

// NewEnv builds an Env over rules, consulting hook for every goal before
// matching internal clauses. Clauses are grouped by head functor while
// preserving source order, so that clauses sharing a functor are still
// tried in the order they appear in rules.
func NewEnv(rules Rules, hook Hook) *Env {
	index := make(map[Functor][]Clause)
	for _, c := range rules {
		f := c.Head.Functor()
		index[f] = append(index[f], c)
	}
	if hook == nil {
		hook = noopHook{}
	}
	return &Env{index: index, hook: hook, logger: hclog.NewNullLogger()}
}

// NewSelfContainedEnv builds an Env with no external hook: every goal is
// resolved purely against rules.
func NewSelfContainedEnv(rules Rules) *Env {
	return NewEnv(rules, noopHook{})
}

// SetLogger attaches a structured trace logger to e, used to report goal
// entry, depth exhaustion, and clauses skipped because their head does
// not unify with the goal.
// Logging never affects resolution semantics — it exists purely for
// observability, and the default (set by NewEnv) discards everything.
func (e *Env) SetLogger(logger hclog.Logger) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	e.logger = logger
}

// Solve tries to solve for goal at the given depth, returning a lazy
// sequence of answer substitutions. Per spec.md §4.5:
//
//   - depth == 0 yields the empty sequence, and the external hook is not
//     consulted.
//   - Otherwise, the sequence is the hook's answers for goal, followed by
//     the answers derived from internal rule resolution — in that order.
func (e *Env) Solve(ctx context.Context, goal Lit, depth int) *Seq {
	return NewSeq(ctx, func(ctx context.Context, emit func(Subst) bool) error {
		_, err := e.solveGoal(ctx, goal, depth, emit)
		return err
	})
}

// SolveAll tries to solve the conjunction of goals at the given depth,
// left to right, returning a lazy sequence of answer substitutions. An
// empty goal list yields a single empty substitution.
func (e *Env) SolveAll(ctx context.Context, goals []Lit, depth int) *Seq {
	return NewSeq(ctx, func(ctx context.Context, emit func(Subst) bool) error {
		_, err := e.solveAllRec(ctx, goals, depth, emit)
		return err
	})
}

// solveGoal implements solve(goal, depth). It returns cont == false when
// the consumer has asked to stop (via emit returning false, ultimately
// traced back to Seq.Close or context cancellation); callers must stop
// trying further alternatives as soon as cont is false, without treating
// it as an error.
func (e *Env) solveGoal(ctx context.Context, goal Lit, depth int, emit func(Subst) bool) (cont bool, err error) {
	if depth == 0 {
		e.logger.Trace("depth exhausted", "goal", goal.String())
		return true, nil
	}

	e.logger.Trace("solve", "goal", goal.String(), "depth", depth)

	hookSeq := e.hook.Solve(ctx, goal)
	cont = true
	for cont {
		var sub Subst
		var ok bool
		sub, err, ok = hookSeq.Next(ctx)
		if err != nil {
			hookSeq.Close()
			return false, errors.Wrapf(err, "external hook for %s/%d", goal.Atom, len(goal.Args))
		}
		if !ok {
			break
		}
		cont = emit(sub)
	}
	if !cont {
		hookSeq.Close()
		return false, nil
	}

	return e.solveInternal(ctx, goal, depth, emit)
}

// solveInternal implements the "internal rule resolution" half of
// solve(goal, depth): the true/0 short circuit, and matching goal against
// freshened clause heads in source order.
func (e *Env) solveInternal(ctx context.Context, goal Lit, depth int, emit func(Subst) bool) (bool, error) {
	if goal.Equal(TrueLit) {
		return emit(EmptySubst()), nil
	}

	clauses := e.index[goal.Functor()]
	for _, raw := range clauses {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		c := freshen(raw)
		unifier, ok := Unify(c.Head, goal)
		if !ok {
			e.logger.Trace("clause skipped", "goal", goal.String(), "head", c.Head.String())
			continue
		}

		body := make([]Lit, len(c.Body))
		for i, l := range c.Body {
			body[i] = unifier.ApplyToLit(l)
		}

		cont, err := e.solveAllRec(ctx, body, depth-1, func(s Subst) bool {
			return emit(unifier.Merge(s))
		})
		if err != nil {
			return false, err
		}
		if !cont {
			return false, nil
		}
	}
	return true, nil
}

// solveAllRec implements solve_all(goals, depth): take the first goal,
// solve it, and for each answer recursively solve the remaining goals
// (refined by that answer) at the same depth, merging the two
// substitutions for every combined answer.
func (e *Env) solveAllRec(ctx context.Context, goals []Lit, depth int, emit func(Subst) bool) (bool, error) {
	if len(goals) == 0 {
		return emit(EmptySubst()), nil
	}

	head, tail := goals[0], goals[1:]

	var innerErr error
	cont, err := e.solveGoal(ctx, head, depth, func(s Subst) bool {
		refined := make([]Lit, len(tail))
		for i, l := range tail {
			refined[i] = s.ApplyToLit(l)
		}
		c, err2 := e.solveAllRec(ctx, refined, depth, func(s2 Subst) bool {
			return emit(s.Merge(s2))
		})
		if err2 != nil {
			innerErr = err2
			return false
		}
		return c
	})
	if err != nil {
		return false, err
	}
	if innerErr != nil {
		return false, innerErr
	}
	return cont, nil
}
