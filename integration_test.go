package recordkit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit"
	"github.com/dmitrymomot/recordkit/pkg/sanitizer"
)

// Exercises the whole engine the way a persistence layer would use it right
// before a write.
func TestValidationWorkflow(t *testing.T) {
	ctx := context.Background()

	t.Run("blank name is rejected with the canonical message", func(t *testing.T) {
		s := recordkit.New(recordkit.Presence("name"))

		ok, errs := s.Validate(ctx, recordkit.Record{"name": ""})
		assert.False(t, ok)
		assert.Equal(t, []string{"can't be blank"}, errs.Get("name"))
	})

	t.Run("minimum length boundary passes", func(t *testing.T) {
		s := recordkit.New(recordkit.LengthMin("name", 2))

		ok, errs := s.Validate(ctx, recordkit.Record{"name": "Al"})
		assert.True(t, ok)
		assert.True(t, errs.IsEmpty())
	})

	t.Run("signup form collects every failure at once", func(t *testing.T) {
		takenEmails := map[any]bool{"jane@example.com": true}
		lookup := func(_ context.Context, _ string, value any) bool {
			return takenEmails[value]
		}

		s := recordkit.New(
			recordkit.Presence("username"),
			recordkit.LengthRange("username", 3, 20),
			recordkit.Format("username", `^[a-z0-9_]+$`),
			recordkit.Presence("email"),
			recordkit.Unique("email", lookup),
			recordkit.Numericality("age"),
			recordkit.GreaterThanOrEqual("age", 18),
		)
		s.Normalize("email", recordkit.StringTransform(sanitizer.Trim, sanitizer.ToLower))

		rec := recordkit.Record{
			"username": "x",
			"email":    "  JANE@EXAMPLE.COM ",
			"age":      "seventeen",
		}

		ok, errs := s.Validate(ctx, rec)
		require.False(t, ok)

		assert.Equal(t, []string{"length must be between 3 and 20 characters"}, errs.Get("username"))
		assert.Equal(t, []string{"has already been taken"}, errs.Get("email"))
		assert.Equal(t, []string{"is not a number", "must be greater than or equal to 18"}, errs.Get("age"))
		assert.Equal(t, []string{"username", "email", "age"}, errs.Fields())

		// Normalization ran against a shadow copy only.
		assert.Equal(t, "  JANE@EXAMPLE.COM ", rec["email"])
	})

	t.Run("valid signup form passes every rule", func(t *testing.T) {
		s := recordkit.New(
			recordkit.Presence("username"),
			recordkit.LengthRange("username", 3, 20),
			recordkit.Unique("email", func(context.Context, string, any) bool { return false }),
			recordkit.GreaterThanOrEqual("age", 18),
		)

		ok, errs := s.Validate(ctx, recordkit.Record{
			"username": "jane_doe",
			"email":    "jane@example.com",
			"age":      30,
		})
		assert.True(t, ok)
		assert.True(t, errs.IsEmpty())
	})

	t.Run("validating the same record twice yields identical errors", func(t *testing.T) {
		s := recordkit.New(
			recordkit.Presence("title"),
			recordkit.LengthMin("title", 5),
			recordkit.Inclusion("state", "draft", "published"),
		)
		rec := recordkit.Record{"title": "", "state": "archived"}

		_, first := s.Validate(ctx, rec)
		_, second := s.Validate(ctx, rec)
		assert.Equal(t, first, second)
	})

	t.Run("strict entry point raises the same errors the boolean one reports", func(t *testing.T) {
		s := recordkit.New(recordkit.Presence("name"))
		rec := recordkit.Record{"name": ""}

		_, expected := s.Validate(ctx, rec)

		err := s.ValidateStrict(ctx, rec)
		require.Error(t, err)
		assert.ErrorIs(t, err, recordkit.ErrRecordInvalid)

		rie := recordkit.AsRecordInvalid(err)
		require.NotNil(t, rie)
		assert.Equal(t, expected, rie.Errors)
	})
}
