// Package recordkit provides a declarative validation engine for attribute-value
// records checked immediately before a persistence operation.
//
// A Schema holds an ordered, immutable set of rules, each bound to a single
// attribute. Validating a Record runs every rule in registration order and
// collects failures into an Errors value that preserves insertion order and
// satisfies the error interface, making it convenient to surface multiple
// field-specific problems at once.
//
// # Architecture
//
// Each source file groups a family of rule factories for a specific concern
// (`presence_rules.go`, `length_rules.go`, `choice_rules.go`, etc.). Every
// exported factory simply constructs and returns a Rule value; the engine has
// no hidden state, so a configured Schema is goroutine-safe and validation of
// the same record is fully deterministic.
//
// Core building blocks:
//   - Record     – attribute name to value mapping, never mutated by the engine
//   - Rule       – one named check bound to one attribute
//   - Schema     – ordered rule set with Validate and ValidateStrict entry points
//   - Errors     – per-run failure collector keyed by attribute
//
// # Usage
//
//	schema := recordkit.New(
//	    recordkit.Presence("name"),
//	    recordkit.LengthMin("name", 2),
//	    recordkit.Unique("email", lookup),
//	)
//
//	ok, errs := schema.Validate(ctx, recordkit.Record{"name": "", "email": "a@b.c"})
//	if !ok {
//	    for _, msg := range errs.FullMessages() {
//	        // render "Name can't be blank" style messages
//	    }
//	}
//
// # Error Handling
//
// Validate never returns a fault; failures are reported through the returned
// boolean and Errors pair. Callers that prefer fail-fast propagation can use
// ValidateStrict, which returns a *RecordInvalidError carrying the same
// Errors and matching ErrRecordInvalid under errors.Is.
//
// # Performance Considerations
//
// All built-in checks are simple comparisons or pattern matches. The one
// exception is the uniqueness rule, whose lookup collaborator is supplied by
// the caller and may perform I/O; see the pg, redis and mongo subpackages for
// ready-made collaborators.
package recordkit
