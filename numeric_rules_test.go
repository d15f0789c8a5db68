package recordkit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/recordkit"
)

func TestNumericality(t *testing.T) {
	ctx := context.Background()

	t.Run("passes numeric types", func(t *testing.T) {
		rule := recordkit.Numericality("price")
		assert.True(t, rule.Check(ctx, recordkit.Record{"price": 10}))
		assert.True(t, rule.Check(ctx, recordkit.Record{"price": int64(10)}))
		assert.True(t, rule.Check(ctx, recordkit.Record{"price": 9.99}))
		assert.True(t, rule.Check(ctx, recordkit.Record{"price": float32(9.99)}))
		assert.True(t, rule.Check(ctx, recordkit.Record{"price": uint8(3)}))
	})

	t.Run("passes numeric strings", func(t *testing.T) {
		rule := recordkit.Numericality("price")
		assert.True(t, rule.Check(ctx, recordkit.Record{"price": "9.99"}))
		assert.True(t, rule.Check(ctx, recordkit.Record{"price": "-3"}))
	})

	t.Run("fails non-numeric values", func(t *testing.T) {
		rule := recordkit.Numericality("price")
		assert.False(t, rule.Check(ctx, recordkit.Record{"price": "nine"}))
		assert.False(t, rule.Check(ctx, recordkit.Record{"price": true}))
		assert.False(t, rule.Check(ctx, recordkit.Record{}))
	})

	t.Run("reports the expected message", func(t *testing.T) {
		rule := recordkit.Numericality("price")
		assert.Equal(t, "is not a number", rule.Error.Message)
		assert.Equal(t, "validation.not_a_number", rule.Error.TranslationKey)
	})
}

func TestOnlyInteger(t *testing.T) {
	ctx := context.Background()

	t.Run("passes whole numbers", func(t *testing.T) {
		rule := recordkit.OnlyInteger("pages")
		assert.True(t, rule.Check(ctx, recordkit.Record{"pages": 120}))
		assert.True(t, rule.Check(ctx, recordkit.Record{"pages": "120"}))
		assert.True(t, rule.Check(ctx, recordkit.Record{"pages": 120.0}))
	})

	t.Run("fails fractional values", func(t *testing.T) {
		rule := recordkit.OnlyInteger("pages")
		assert.False(t, rule.Check(ctx, recordkit.Record{"pages": 1.5}))
		assert.False(t, rule.Check(ctx, recordkit.Record{"pages": "1.5"}))
	})

	t.Run("reports the expected message", func(t *testing.T) {
		rule := recordkit.OnlyInteger("pages")
		assert.Equal(t, "must be an integer", rule.Error.Message)
	})
}

func TestGreaterThanOrEqual(t *testing.T) {
	ctx := context.Background()

	t.Run("boundary passes", func(t *testing.T) {
		rule := recordkit.GreaterThanOrEqual("age", 18)
		assert.True(t, rule.Check(ctx, recordkit.Record{"age": 18}))
	})

	t.Run("fails below the minimum", func(t *testing.T) {
		rule := recordkit.GreaterThanOrEqual("age", 18)
		assert.False(t, rule.Check(ctx, recordkit.Record{"age": 17}))
	})

	t.Run("fails non-numeric values", func(t *testing.T) {
		rule := recordkit.GreaterThanOrEqual("age", 18)
		assert.False(t, rule.Check(ctx, recordkit.Record{"age": "old enough"}))
	})

	t.Run("reports the expected message", func(t *testing.T) {
		rule := recordkit.GreaterThanOrEqual("age", 18)
		assert.Equal(t, "must be greater than or equal to 18", rule.Error.Message)
		assert.Equal(t, "validation.greater_than_or_equal", rule.Error.TranslationKey)
	})
}

func TestLessThanOrEqual(t *testing.T) {
	ctx := context.Background()

	t.Run("boundary passes", func(t *testing.T) {
		rule := recordkit.LessThanOrEqual("discount", 100)
		assert.True(t, rule.Check(ctx, recordkit.Record{"discount": 100}))
	})

	t.Run("fails above the maximum", func(t *testing.T) {
		rule := recordkit.LessThanOrEqual("discount", 100)
		assert.False(t, rule.Check(ctx, recordkit.Record{"discount": 101}))
	})

	t.Run("reports the expected message", func(t *testing.T) {
		rule := recordkit.LessThanOrEqual("discount", 100)
		assert.Equal(t, "must be less than or equal to 100", rule.Error.Message)
		assert.Equal(t, "validation.less_than_or_equal", rule.Error.TranslationKey)
	})
}
