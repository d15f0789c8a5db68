package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
	ErrNilCollection          = errors.New("exists checker requires a collection")
	ErrCountQueryFailed       = errors.New("count query failed")
)
