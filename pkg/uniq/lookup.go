package uniq

import (
	"context"
	"io"
	"log/slog"

	"github.com/dmitrymomot/recordkit"
)

// Checker is the store-facing side of a uniqueness lookup, implemented by
// the pg, redis and mongo subpackages.
type Checker interface {
	Exists(ctx context.Context, attribute string, value any) (bool, error)
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func(ctx context.Context, attribute string, value any) (bool, error)

func (f CheckerFunc) Exists(ctx context.Context, attribute string, value any) (bool, error) {
	return f(ctx, attribute, value)
}

// FailurePolicy decides what a lookup reports when the store is
// unreachable.
type FailurePolicy int

const (
	// FailClosed reports the value as taken on store errors, rejecting the
	// record. The safe default for uniqueness.
	FailClosed FailurePolicy = iota

	// FailOpen reports the value as free on store errors, letting the
	// record through at the risk of a duplicate.
	FailOpen
)

// Lookup converts a Checker into the engine's bool-only collaborator,
// applying the failure policy and logging store errors. A nil logger
// discards the log output.
func Lookup(c Checker, policy FailurePolicy, log *slog.Logger) recordkit.LookupFunc {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(ctx context.Context, attribute string, value any) bool {
		exists, err := c.Exists(ctx, attribute, value)
		if err != nil {
			log.ErrorContext(ctx, "uniqueness lookup failed",
				"attribute", attribute,
				"policy", policy.String(),
				"error", err,
			)
			return policy == FailClosed
		}
		return exists
	}
}

func (p FailurePolicy) String() string {
	if p == FailOpen {
		return "fail-open"
	}
	return "fail-closed"
}
