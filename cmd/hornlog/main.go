// Command hornlog demonstrates the engine end to end: parsing a small
// knowledge base, building an Env, and streaming answers for a few
// queries. It is a demonstration binary in the teacher repo's
// cmd/example style — a sequence of named functions called from main,
// not a flag-parsing or interactive tool (spec.md §1 treats a CLI/REPL as
// an out-of-scope host concern).
package main

import (
	"context"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/prologkit/hornlog/pkg/hornlog"
	"github.com/prologkit/hornlog/pkg/syntax"
)

var logger = hclog.New(&hclog.LoggerOptions{
	Name:  "hornlog",
	Level: hclog.Info,
})

func main() {
	transitiveClosure()
	externalHook()
}

// transitiveClosure mirrors spec.md §8's S1 scenario: a taught/2 base
// relation and a path/2 rule computing its transitive closure (plus the
// reflexive case), queried for every node reachable from "plato".
func transitiveClosure() {
	logger.Info("=== transitive closure ===")

	rules, err := syntax.ParseRules(`
		taught(socrates, plato).
		taught(plato, aristotle).
		taught(aristotle, alexander).

		path(X, X).
		path(X, Z) :- taught(X, Y), path(Y, Z).
	`)
	if err != nil {
		logger.Error("parse rules", "error", err)
		os.Exit(1)
	}

	query, scope, err := syntax.ParseQuery("path(plato, X)")
	if err != nil {
		logger.Error("parse query", "error", err)
		os.Exit(1)
	}
	ansVar := scope["X"]

	env := hornlog.NewSelfContainedEnv(rules)
	ctx := context.Background()
	answers, err := hornlog.Collect(ctx, env.Solve(ctx, query, 10))
	if err != nil {
		logger.Error("solve", "error", err)
		os.Exit(1)
	}

	for _, sub := range answers {
		binding, _ := sub.Get(ansVar)
		logger.Info("answer", "X", binding.String())
	}
}

// externalHook mirrors spec.md §8's S4 scenario: a rule-free knowledge
// base whose only predicate, succ/2, is answered by a Go function hook
// rather than by any clause.
func externalHook() {
	logger.Info("=== external hook ===")

	succHook := hornlog.HookFunc(func(ctx context.Context, goal hornlog.Lit) *hornlog.Seq {
		if goal.Atom != "succ" || len(goal.Args) != 2 {
			return hornlog.EmptySeq()
		}
		n, ok := goal.Args[0].(hornlog.Num)
		if !ok {
			return hornlog.EmptySeq()
		}
		sub, ok := hornlog.Unify(goal.Args[1], hornlog.Num(n+1))
		if !ok {
			return hornlog.EmptySeq()
		}
		return hornlog.SingleSeq(sub)
	})

	env := hornlog.NewEnv(nil, succHook)
	query, scope, err := syntax.ParseQuery("succ(3, X)")
	if err != nil {
		logger.Error("parse query", "error", err)
		os.Exit(1)
	}
	ansVar := scope["X"]

	ctx := context.Background()
	answers, err := hornlog.Collect(ctx, env.Solve(ctx, query, 1))
	if err != nil {
		logger.Error("solve", "error", err)
		os.Exit(1)
	}
	for _, sub := range answers {
		binding, _ := sub.Get(ansVar)
		logger.Info("answer", "X", binding.String())
	}
}
