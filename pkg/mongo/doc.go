// Package mongo provides a MongoDB-backed uniqueness collaborator using the
// official mongo-driver/v2, plus the client plumbing it needs.
//
// ExistsChecker runs a limited CountDocuments query against one collection,
// binding record attribute names to document fields. It never writes.
//
// # Usage
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "app")
//	if err != nil {
//	    panic(err)
//	}
//
//	checker := mongo.NewExistsChecker(db.Collection("users"))
//	schema := recordkit.New(
//	    recordkit.Unique("email", uniq.Lookup(checker, uniq.FailClosed, log)),
//	)
package mongo
