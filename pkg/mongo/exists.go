package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ExistsChecker reports whether an attribute value already exists in one
// collection, for uniqueness validation. Attribute names double as document
// field names unless remapped with Fields.
type ExistsChecker struct {
	coll   *mongo.Collection
	fields map[string]string
}

// NewExistsChecker builds a checker over the given collection.
func NewExistsChecker(coll *mongo.Collection) *ExistsChecker {
	return &ExistsChecker{coll: coll}
}

// Fields overrides the attribute-to-document-field mapping for attributes
// whose record name differs from the stored field name.
func (c *ExistsChecker) Fields(mapping map[string]string) *ExistsChecker {
	c.fields = mapping
	return c
}

// Exists reports whether a document with the attribute's value is present.
// The count is capped at one document, so the query cost stays flat no
// matter how many duplicates exist.
func (c *ExistsChecker) Exists(ctx context.Context, attribute string, value any) (bool, error) {
	if c.coll == nil {
		return false, ErrNilCollection
	}

	field := attribute
	if mapped, ok := c.fields[attribute]; ok {
		field = mapped
	}

	n, err := c.coll.CountDocuments(ctx, bson.M{field: value}, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Join(ErrCountQueryFailed, err)
	}
	return n > 0, nil
}
