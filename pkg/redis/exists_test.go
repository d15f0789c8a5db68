package redis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	redisstore "github.com/dmitrymomot/recordkit/pkg/redis"
)

func TestExistsChecker_Key(t *testing.T) {
	t.Run("uses the configured prefix", func(t *testing.T) {
		checker := redisstore.NewExistsChecker(nil, "signup")
		assert.Equal(t, "signup:email", checker.Key("email"))
	})

	t.Run("defaults the prefix to taken", func(t *testing.T) {
		checker := redisstore.NewExistsChecker(nil, "")
		assert.Equal(t, "taken:email", checker.Key("email"))
		assert.Equal(t, "taken:username", checker.Key("username"))
	})
}
