package pg

import "errors"

var (
	ErrFailedToParseDBConfig    = errors.New("failed to parse database config")
	ErrFailedToOpenDBConnection = errors.New("failed to open database connection")
	ErrHealthcheckFailed        = errors.New("database healthcheck failed")
	ErrEmptyTableName           = errors.New("exists checker requires a table name")
	ErrUnknownAttribute         = errors.New("no column mapped for attribute")
	ErrExistsQueryFailed        = errors.New("exists query failed")
)
