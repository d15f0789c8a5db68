// Package pg provides a PostgreSQL-backed uniqueness collaborator using the
// pgx/v5 driver, plus the small connection plumbing it needs.
//
// The package exposes three cooperating building blocks:
//
//   - Config – a declarative struct whose fields are populated from
//     environment variables via github.com/caarlos0/env. It controls the
//     connection string, pool limits and connection retry cadence.
//
//   - Connect – opens a *pgxpool.Pool based on Config, retrying with a
//     growing back-off until the database becomes available.
//
//   - ExistsChecker – answers "does this attribute value already exist in
//     this table?" for uniqueness validation, without ever writing.
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    panic(err)
//	}
//	defer pool.Close()
//
//	checker, err := pg.NewExistsChecker(pool, "users", map[string]string{
//	    "email": "email",
//	})
//	if err != nil {
//	    panic(err)
//	}
//
//	schema := recordkit.New(
//	    recordkit.Unique("email", uniq.Lookup(checker, uniq.FailClosed, log)),
//	)
//
// # Error Handling
//
// Sentinel errors wrap driver failures via errors.Join, so callers can match
// with errors.Is while keeping the underlying pgx detail available.
package pg
