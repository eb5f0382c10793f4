package hornlog

import "context"

// Hook is the external-predicate collaborator: a caller-supplied answer
// source consulted for every goal before internal rule matching
// (spec.md §4.6). It is invoked with the already-substituted goal
// literal, and its answers are treated as if they had been produced by
// matching an invisible rule whose head equals the goal.
//
// Implementations may be finite or infinite, may produce an error that
// terminates the overall answer sequence, and must be consistent: two
// calls to Solve with structurally equal goals must produce independent,
// equivalent sequences.
type Hook interface {
	Solve(ctx context.Context, goal Lit) *Seq
}

// HookFunc adapts a plain function to the Hook interface.
type HookFunc func(ctx context.Context, goal Lit) *Seq

// Solve calls f.
func (f HookFunc) Solve(ctx context.Context, goal Lit) *Seq {
	return f(ctx, goal)
}

// noopHook is the default hook used by NewSelfContainedEnv: it never
// produces an answer.
type noopHook struct{}

func (noopHook) Solve(ctx context.Context, goal Lit) *Seq {
	return EmptySeq()
}
