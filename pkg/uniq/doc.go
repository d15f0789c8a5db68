// Package uniq adapts store-backed existence checkers to the validation
// engine's uniqueness collaborator.
//
// The engine's collaborator reports a plain boolean; real stores can fail.
// Lookup bridges the two with an explicit failure policy: FailClosed treats
// an unreachable store as "value taken" (rejecting the record), FailOpen
// treats it as "value free" (letting the record through). Either way the
// underlying error is logged, never swallowed silently.
//
// # Usage
//
//	checker, _ := pg.NewExistsChecker(pool, "users", map[string]string{"email": "email"})
//	lookup := uniq.Lookup(checker, uniq.FailClosed, log)
//
//	schema := recordkit.New(recordkit.Unique("email", lookup))
package uniq
