// Package redis provides a Redis-backed uniqueness collaborator using the
// go-redis/v9 client, plus the connection plumbing it needs.
//
// Taken values are expected in Redis sets, one set per attribute under a
// configurable key prefix ("<prefix>:<attribute>"). ExistsChecker answers
// membership queries against those sets; maintaining them is the host
// application's job.
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    panic(err)
//	}
//
//	checker := redis.NewExistsChecker(client, "taken")
//	schema := recordkit.New(
//	    recordkit.Unique("username", uniq.Lookup(checker, uniq.FailClosed, log)),
//	)
package redis
