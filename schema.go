package recordkit

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/recordkit/pkg/sanitizer"
)

// LookupFunc is the collaborator a uniqueness rule calls to find out whether
// a conflicting value already exists elsewhere. The engine treats it as
// opaque; it may block on I/O. See the pg, redis and mongo subpackages for
// implementations backed by real stores.
type LookupFunc func(ctx context.Context, attribute string, value any) bool

// Rule is a single named check bound to one attribute. Rules are plain data
// values built at configuration time and are immutable once registered.
type Rule struct {
	Attribute string
	Check     func(ctx context.Context, r Record) bool
	Error     FieldError
}

// Schema holds an ordered sequence of validation rules. Configure it once,
// then share it freely; Validate touches no schema state.
type Schema struct {
	rules       []Rule
	normalizers map[string][]func(any) any
}

// New builds a Schema from the given rules. It panics on a rule with an
// empty attribute or nil check so that misconfiguration fails at startup
// rather than silently passing records through.
func New(rules ...Rule) *Schema {
	s := &Schema{}
	if err := s.Register(rules...); err != nil {
		panic(fmt.Errorf("recordkit: %w", err))
	}
	return s
}

// Register appends rules in order. Registration order is evaluation order
// and drives message ordering in the collected Errors.
func (s *Schema) Register(rules ...Rule) error {
	for _, r := range rules {
		if r.Attribute == "" {
			return ErrEmptyAttribute
		}
		if r.Check == nil {
			return ErrNilCheck
		}
		s.rules = append(s.rules, r)
	}
	return nil
}

// Normalize registers a transform chain applied to the attribute's value
// before any rule sees it. The caller's record is never mutated; checks run
// against a normalized shadow copy.
func (s *Schema) Normalize(attribute string, transforms ...func(any) any) {
	if attribute == "" || len(transforms) == 0 {
		return
	}
	if s.normalizers == nil {
		s.normalizers = make(map[string][]func(any) any)
	}
	s.normalizers[attribute] = append(s.normalizers[attribute], transforms...)
}

// StringTransform adapts string sanitizer transforms to record values.
// Non-string values pass through untouched.
func StringTransform(transforms ...func(string) string) func(any) any {
	return func(v any) any {
		str, ok := v.(string)
		if !ok {
			return v
		}
		return sanitizer.Apply(str, transforms...)
	}
}

// Validate runs every registered rule, in registration order, against the
// record. It mutates nothing and performs no I/O beyond what a uniqueness
// collaborator does internally; for a fixed collaborator the result is
// deterministic. The boolean is true iff the returned Errors is empty.
func (s *Schema) Validate(ctx context.Context, rec Record) (bool, Errors) {
	view := s.normalizedView(rec)

	var errs Errors
	for _, rule := range s.rules {
		if !rule.Check(ctx, view) {
			errs.Add(rule.Error)
		}
	}
	return errs.IsEmpty(), errs
}

// ValidateStrict is the fail-fast entry point. It returns a
// *RecordInvalidError carrying the same Errors that Validate reports, or nil
// when the record is valid.
func (s *Schema) ValidateStrict(ctx context.Context, rec Record) error {
	ok, errs := s.Validate(ctx, rec)
	if ok {
		return nil
	}
	return &RecordInvalidError{Errors: errs}
}

// normalizedView returns the record the rules should see. Without
// normalizers the record itself is returned to avoid the copy.
func (s *Schema) normalizedView(rec Record) Record {
	if len(s.normalizers) == 0 {
		return rec
	}

	view := make(Record, len(rec))
	for k, v := range rec {
		view[k] = v
	}
	for attr, transforms := range s.normalizers {
		v, ok := view[attr]
		if !ok {
			continue
		}
		for _, transform := range transforms {
			v = transform(v)
		}
		view[attr] = v
	}
	return view
}
