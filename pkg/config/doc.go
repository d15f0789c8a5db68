// Package config loads environment-backed configuration structs for the
// store-backed uniqueness collaborators and anything else the host
// application wires up.
//
// Values are parsed from environment variables based on `env` struct tags,
// with an optional .env file loaded once per process. Each configuration
// type is parsed exactly once and cached, so repeated Load calls across the
// application are cheap and consistent.
//
// # Usage
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
package config
