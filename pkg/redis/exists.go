package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ExistsChecker reports whether an attribute value is a member of the
// attribute's set of taken values. Keys follow "<prefix>:<attribute>".
type ExistsChecker struct {
	client redis.UniversalClient
	prefix string
}

// NewExistsChecker builds a checker over per-attribute sets under the given
// key prefix. An empty prefix defaults to "taken".
func NewExistsChecker(client redis.UniversalClient, prefix string) *ExistsChecker {
	if prefix == "" {
		prefix = "taken"
	}
	return &ExistsChecker{client: client, prefix: prefix}
}

// Key returns the set key used for an attribute.
func (c *ExistsChecker) Key(attribute string) string {
	return c.prefix + ":" + attribute
}

// Exists reports whether the attribute's value is already taken. Values are
// stored in their default string form, so lookups stringify the same way.
func (c *ExistsChecker) Exists(ctx context.Context, attribute string, value any) (bool, error) {
	member, err := c.client.SIsMember(ctx, c.Key(attribute), fmt.Sprint(value)).Result()
	if err != nil {
		return false, errors.Join(ErrMembershipQueryFailed, err)
	}
	return member, nil
}
