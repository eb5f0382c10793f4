// Package hornlog is an embeddable logic-programming engine: given a
// knowledge base of Horn clauses (facts and rules) and a query literal, it
// enumerates every variable binding under which the query is a logical
// consequence of the knowledge base.
//
// The package covers the resolution engine proper — term representation,
// unification, substitution composition, and a lazy SLD-resolution driver
// (Env) that streams answers as they are found. It deliberately does not
// include a surface-syntax parser (see the sibling package
// github.com/prologkit/hornlog/pkg/syntax), a file loader, or any CLI/REPL —
// those are host concerns.
//
// A host embeds the engine by building Rules from Clause values (by hand,
// or via the syntax package), constructing an Env with NewEnv or
// NewSelfContainedEnv, and pulling answers from the Seq returned by
// Env.Solve or Env.SolveAll.
package hornlog
